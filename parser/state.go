package parser

import (
	"strings"

	"github.com/devside/esparse/ast"
)

// Parser holds the state of one parse. It is single-use: every entry
// point builds a fresh Parser and drops it when the call returns, so no
// state outlives a call, including after a syntax error.
type Parser struct {
	options Options
	input   string

	reservedWords           wordSet
	reservedWordsStrict     wordSet
	reservedWordsStrictBind wordSet

	// Used to signal to callers of readWord1 whether the word contained
	// any escape sequences. This is needed because words with escape
	// sequences must not be interpreted as keywords.
	containsEsc bool

	// The current position of the tokenizer in the input.
	pos       int
	lineStart int
	curLine   int

	// Properties of the current token: its type, the value for tokens
	// that carry more information than their type, its offsets and, if
	// locations are used, the line/column positions of those offsets.
	typ      *TokenType
	value    interface{}
	start    int
	end      int
	startLoc ast.Position
	endLoc   ast.Position

	// Position information for the previous token.
	lastTokStart    int
	lastTokEnd      int
	lastTokStartLoc ast.Position
	lastTokEndLoc   ast.Position

	inModule bool
	strict   bool

	// Used to signify the start of a potential arrow function.
	potentialArrowAt int

	// Positions to delayed-check that yield/await does not exist in
	// default parameters.
	yieldPos      int
	awaitPos      int
	awaitIdentPos int

	// Labels in scope.
	labels []label

	// Thus-far undefined exports.
	undefinedExports map[string]*ast.Identifier

	// Scope tracking for duplicate variable names, see scope.go.
	scopeStack []*scope

	// The stack of private names. When the outermost class definition
	// is exited, every used private name must have been declared.
	privateNameStack []*privateNameFrame

	inTemplateElement bool
}

type label struct {
	name           string
	kind           string
	statementStart int
}

const (
	labelLoop   = "loop"
	labelSwitch = "switch"
)

type privateNameFrame struct {
	declared map[string]string
	used     []*ast.PrivateIdentifier
}

func newParser(options Options, input string, startPos int) *Parser {
	p := &Parser{options: options, input: input}

	reserved := reservedWordsSloppy
	if options.SourceType == SourceModule {
		reserved += " await"
	}
	p.reservedWords = makeWordSet(reserved)
	p.reservedWordsStrict = makeWordSet(reserved, reservedWordsStrict)
	p.reservedWordsStrictBind = makeWordSet(reserved, reservedWordsStrict, reservedWordsStrictBind)

	p.curLine = 1
	if startPos > 0 {
		p.pos = startPos
		info := getLineInfo(input, startPos)
		p.curLine = info.Line
		p.lineStart = startPos - info.Column
	}

	p.typ = tt.eof
	p.start, p.end = p.pos, p.pos
	p.startLoc = p.curPosition()
	p.endLoc = p.startLoc
	p.lastTokStart, p.lastTokEnd = p.pos, p.pos
	p.lastTokStartLoc, p.lastTokEndLoc = p.startLoc, p.startLoc

	p.inModule = options.SourceType == SourceModule
	if p.inModule {
		p.undefinedExports = map[string]*ast.Identifier{}
	}

	// If enabled, skip leading hashbang line.
	if p.pos == 0 && options.AllowHashBang && strings.HasPrefix(input, "#!") {
		p.skipLineComment(2)
	}

	p.strict = p.inModule || options.ImpliedStrict || p.strictDirective(p.pos)
	p.potentialArrowAt = -1
	p.enterScope(scopeTop)
	return p
}

func (p *Parser) parse() *ast.Program {
	node := &ast.Program{Span: p.startNode()}
	p.nextToken()
	return p.parseTopLevel(node)
}

// ## Context queries
//
// These answer the questions early-error rules ask about the enclosing
// frames, so that each rule is a single conditional at its call site.

func (p *Parser) inFunction() bool {
	return p.currentVarScope().flags&scopeFunction != 0
}

func (p *Parser) inGenerator() bool {
	return p.currentVarScope().flags&scopeGenerator != 0
}

func (p *Parser) inAsync() bool {
	return p.currentVarScope().flags&scopeAsync != 0
}

func (p *Parser) canAwait() bool {
	for i := len(p.scopeStack) - 1; i >= 0; i-- {
		s := p.scopeStack[i]
		if s.flags&(scopeClassStaticBlock|scopeClassFieldInit) != 0 {
			return false
		}
		if s.flags&scopeFunction != 0 {
			return s.flags&scopeAsync != 0
		}
	}
	return p.inModule || p.options.AllowAwaitOutsideFunction
}

func (p *Parser) allowSuper() bool {
	return p.currentThisScope().flags&scopeSuper != 0
}

func (p *Parser) allowDirectSuper() bool {
	return p.currentThisScope().flags&scopeDirectSuper != 0
}

func (p *Parser) treatFunctionsAsVar() bool {
	return p.treatFunctionsAsVarInScope(p.currentScope())
}

func (p *Parser) allowNewDotTarget() bool {
	return p.currentThisScope().flags&(scopeFunction|scopeClassStaticBlock|scopeClassFieldInit) != 0
}

func (p *Parser) inClassStaticBlock() bool {
	return p.currentVarScope().flags&scopeClassStaticBlock != 0
}

func (p *Parser) inClassFieldInit() bool {
	return p.currentThisScope().flags&scopeClassFieldInit != 0
}
