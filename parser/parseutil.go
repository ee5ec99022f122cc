package parser

import (
	"regexp"

	"github.com/devside/esparse/ast"
)

// ## Parser utilities

var (
	literal  = regexp.MustCompile(`^(?:'((?:\\.|[^'\\])*?)'|"((?:\\.|[^"\\])*?)")`)
	operator = regexp.MustCompile("[(`.[+\\-/*%<>=,?^&]")
)

// strictDirective reports whether the directive prologue starting at
// start contains a "use strict" directive. It runs over the raw text
// ahead of the tokenizer, so the directive is known before any token of
// the body is scanned.
func (p *Parser) strictDirective(start int) bool {
	for {
		// Try to find string literal.
		start, _ = skipWhiteSpace(p.input, start)
		match := literal.FindStringSubmatch(p.input[start:])
		if match == nil {
			return false
		}
		if match[1] == "use strict" || match[2] == "use strict" {
			end, sawBreak := skipWhiteSpace(p.input, start+len(match[0]))
			next := charAt(p.input, end)
			return next == ';' || next == '}' || next == 0 ||
				sawBreak && !(operator.MatchString(string(next)) || next == '!' && charAt(p.input, end+1) == '=')
		}
		start += len(match[0])

		// Skip semicolon, if any.
		start, _ = skipWhiteSpace(p.input, start)
		if charAt(p.input, start) == ';' {
			start++
		}
	}
}

// Predicate that tests whether the next token is of the given
// type, and if yes, consumes it as a side effect.
func (p *Parser) eat(typ *TokenType) bool {
	if p.typ == typ {
		p.next()
		return true
	}
	return false
}

// Tests whether parsed token is a contextual keyword.
func (p *Parser) isContextual(name string) bool {
	return p.typ == tt.name && p.value == name && !p.containsEsc
}

// Consumes contextual keyword if possible.
func (p *Parser) eatContextual(name string) bool {
	if !p.isContextual(name) {
		return false
	}
	p.next()
	return true
}

// Asserts that following token is given contextual keyword.
func (p *Parser) expectContextual(name string) {
	if !p.eatContextual(name) {
		p.unexpected()
	}
}

// Test whether a semicolon can be inserted at the current position.
func (p *Parser) canInsertSemicolon() bool {
	return p.typ == tt.eof ||
		p.typ == tt.braceR ||
		hasLineBreak(p.input[p.lastTokEnd:p.start])
}

// Consume a semicolon, or, failing that, see if we are allowed to
// pretend that there is a semicolon at this position.
func (p *Parser) semicolon() {
	if !p.eat(tt.semi) && !p.canInsertSemicolon() {
		p.unexpected()
	}
}

func (p *Parser) afterTrailingComma(tokType *TokenType, notNext bool) bool {
	if p.typ != tokType {
		return false
	}
	if !notNext {
		p.next()
	}
	return true
}

// Expect a token of a given type. If found, consume it, otherwise,
// raise an unexpected token error.
func (p *Parser) expect(typ *TokenType) {
	if !p.eat(typ) {
		p.unexpected()
	}
}

// Raise an unexpected token error.
func (p *Parser) unexpected() {
	p.unexpectedAt(p.start)
}

func (p *Parser) unexpectedAt(pos int) {
	if p.typ == tt.eof && pos == p.start {
		p.raise(pos, UnexpectedToken, "Unexpected end of input")
	}
	p.raise(pos, UnexpectedToken, "Unexpected token")
}

// destructuringErrors records constructs seen while parsing an
// expression that may later turn out to be a pattern. Positions are -1
// while unset.
type destructuringErrors struct {
	shorthandAssign     int
	trailingComma       int
	parenthesizedAssign int
	parenthesizedBind   int
	doubleProto         int
}

func newDestructuringErrors() *destructuringErrors {
	return &destructuringErrors{-1, -1, -1, -1, -1}
}

func (p *Parser) checkPatternErrors(refDestructuringErrors *destructuringErrors, isAssign bool) {
	if refDestructuringErrors == nil {
		return
	}
	if refDestructuringErrors.trailingComma > -1 {
		p.raise(refDestructuringErrors.trailingComma, InvalidDestructuringTarget, "Comma is not permitted after the rest element")
	}
	parens := refDestructuringErrors.parenthesizedBind
	if isAssign {
		parens = refDestructuringErrors.parenthesizedAssign
	}
	if parens > -1 {
		p.raise(parens, InvalidDestructuringTarget, "Parenthesized pattern")
	}
}

func (p *Parser) checkExpressionErrors(refDestructuringErrors *destructuringErrors, andThrow bool) bool {
	if refDestructuringErrors == nil {
		return false
	}
	shorthandAssign := refDestructuringErrors.shorthandAssign
	doubleProto := refDestructuringErrors.doubleProto
	if !andThrow {
		return shorthandAssign >= 0 || doubleProto >= 0
	}
	if shorthandAssign >= 0 {
		p.raise(shorthandAssign, InvalidDestructuringTarget, "Shorthand property assignments are valid only in destructuring patterns")
	}
	if doubleProto >= 0 {
		p.raise(doubleProto, DuplicateBinding, "Redefinition of __proto__ property")
	}
	return false
}

func (p *Parser) checkYieldAwaitInDefaultParams() {
	if p.yieldPos != 0 && (p.awaitPos == 0 || p.yieldPos < p.awaitPos) {
		p.raise(p.yieldPos, IllegalYieldOrAwaitUsage, "Yield expression cannot be a default value")
	}
	if p.awaitPos != 0 {
		p.raise(p.awaitPos, IllegalYieldOrAwaitUsage, "Await expression cannot be a default value")
	}
}

func isSimpleAssignTarget(expr ast.Node) bool {
	switch expr := expr.(type) {
	case *ast.ParenthesizedExpression:
		return isSimpleAssignTarget(expr.Expression)
	case *ast.Identifier, *ast.MemberExpression:
		return true
	}
	return false
}
