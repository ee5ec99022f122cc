package parser

import (
	"sort"

	"github.com/devside/esparse/ast"
)

// ### Statement parsing

// Parse a program. Reads any number of statements, and wraps them in
// the Program node.
func (p *Parser) parseTopLevel(node *ast.Program) *ast.Program {
	exports := map[string]bool{}
	for p.typ != tt.eof {
		node.Body = append(node.Body, p.parseStatement("", true, exports))
	}
	if p.inModule && len(p.undefinedExports) > 0 {
		p.raiseUndefinedExport()
	}
	p.adaptDirectivePrologue(node.Body)
	p.next()
	node.SourceType = p.options.SourceType
	p.finishNode(node)
	return node
}

// raiseUndefinedExport reports the first local export, in source order,
// that names no top-level binding.
func (p *Parser) raiseUndefinedExport() {
	ids := make([]*ast.Identifier, 0, len(p.undefinedExports))
	for _, id := range p.undefinedExports {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Start < ids[j].Start })
	p.raise(ids[0].Start, UnexpectedToken, "Export '"+ids[0].Name+"' is not defined")
}

// isLet reports whether a `let` token starts a lexical declaration. If
// context is not empty then only a Statement is allowed there. However,
// `let [` is an explicit negative lookahead for ExpressionStatement, so
// it is special-cased first.
func (p *Parser) isLet(context string) bool {
	if !p.isContextual("let") {
		return false
	}
	next, _ := skipWhiteSpace(p.input, p.pos)
	nextCh, _ := runeAt(p.input, next)
	if nextCh == '[' || nextCh == '\\' {
		return true
	}
	if context != "" {
		return false
	}
	if nextCh == '{' || nextCh > 0xffff {
		return true
	}
	if isIdentifierStart(nextCh) {
		pos := next
		for pos < len(p.input) {
			ch, size := runeAt(p.input, pos)
			if !isIdentifierChar(ch) {
				if ch == '\\' || ch > 0xffff {
					return true
				}
				break
			}
			pos += size
		}
		ident := p.input[next:pos]
		if ident != "in" && ident != "instanceof" {
			return true
		}
	}
	return false
}

// check 'async [no LineTerminator here] function'
// - 'async /*foo*/ function' is OK.
// - 'async /*\n*/ function' is invalid.
func (p *Parser) isAsyncFunction() bool {
	if !p.isContextual("async") {
		return false
	}
	next, sawBreak := skipWhiteSpace(p.input, p.pos)
	if sawBreak || !hasPrefixAt(p.input, next, "function") {
		return false
	}
	if next+8 == len(p.input) {
		return true
	}
	after, _ := runeAt(p.input, next+8)
	return !isIdentifierChar(after) && after != '\\'
}

func hasPrefixAt(s string, pos int, prefix string) bool {
	return pos+len(prefix) <= len(s) && s[pos:pos+len(prefix)] == prefix
}

// Parse a single statement.
//
// If expecting a statement and finding a slash operator, parse a
// regular expression literal. This is to handle cases like
// `if (foo) /blah/.exec(foo)`, where looking at the previous token
// does not help.
//
// context is "" for statement list items, and otherwise names the
// construct the statement is the body of. exports is only set at the
// top level.
func (p *Parser) parseStatement(context string, topLevel bool, exports map[string]bool) ast.Statement {
	starttype := p.typ
	span := p.startNode()
	kind := ""

	if p.isLet(context) {
		starttype = tt._var
		kind = "let"
	}

	// Most types of statements are recognized by the keyword they
	// start with. Many are trivial to parse, some require a bit of
	// complexity.

	switch starttype {
	case tt._break, tt._continue:
		return p.parseBreakContinueStatement(span, starttype.keyword)
	case tt._debugger:
		return p.parseDebuggerStatement(span)
	case tt._do:
		return p.parseDoStatement(span)
	case tt._for:
		return p.parseForStatement(span)
	case tt._function:
		// Function as sole body of either an if statement or a labeled statement
		// works, but not when it is part of a labeled statement that is the sole
		// body of an if statement.
		if context != "" && (p.strict || context != "if" && context != "label") {
			p.unexpected()
		}
		return p.parseFunctionStatement(span, false, context == "")
	case tt._class:
		if context != "" {
			p.unexpected()
		}
		node := &ast.ClassDeclaration{Span: span}
		p.parseClass(node, &node.Class, true, false)
		return node
	case tt._if:
		return p.parseIfStatement(span)
	case tt._return:
		return p.parseReturnStatement(span)
	case tt._switch:
		return p.parseSwitchStatement(span)
	case tt._throw:
		return p.parseThrowStatement(span)
	case tt._try:
		return p.parseTryStatement(span)
	case tt._const, tt._var:
		if kind == "" {
			kind = p.value.(string)
		}
		if context != "" && kind != "var" {
			p.unexpected()
		}
		return p.parseVarStatement(span, kind)
	case tt._while:
		return p.parseWhileStatement(span)
	case tt._with:
		return p.parseWithStatement(span)
	case tt.braceL:
		return p.parseBlock(true, false)
	case tt.semi:
		return p.parseEmptyStatement(span)
	case tt._export, tt._import:
		if starttype == tt._import {
			next, _ := skipWhiteSpace(p.input, p.pos)
			if nextCh := charAt(p.input, next); nextCh == '(' || nextCh == '.' {
				return p.parseExpressionStatement(span, p.parseExpression(false, nil))
			}
		}
		if !topLevel {
			p.raise(p.start, UnexpectedToken, "'import' and 'export' may only appear at the top level")
		}
		if !p.inModule {
			p.raise(p.start, UnexpectedToken, "'import' and 'export' may appear only with 'sourceType: module'")
		}
		if starttype == tt._import {
			return p.parseImport(span)
		}
		return p.parseExport(span, exports)
	}

	// If the statement does not start with a statement keyword or a
	// brace, it's an ExpressionStatement or LabeledStatement. We
	// simply start parsing an expression, and afterwards, if the
	// next token is a colon and the expression was a simple
	// Identifier node, we switch to interpreting it as a label.
	if p.isAsyncFunction() {
		if context != "" {
			p.unexpected()
		}
		p.next()
		return p.parseFunctionStatement(span, true, true)
	}

	maybeName, _ := p.value.(string)
	expr := p.parseExpression(false, nil)
	if id, ok := expr.(*ast.Identifier); ok && starttype == tt.name && p.eat(tt.colon) {
		return p.parseLabeledStatement(span, maybeName, id, context)
	}
	return p.parseExpressionStatement(span, expr)
}

func (p *Parser) parseBreakContinueStatement(span ast.Span, keyword string) ast.Statement {
	isBreak := keyword == "break"
	p.next()
	var lbl *ast.Identifier
	if p.eat(tt.semi) || p.canInsertSemicolon() {
		lbl = nil
	} else if p.typ != tt.name {
		p.unexpected()
	} else {
		lbl = p.parseIdent(false)
		p.semicolon()
	}

	// Verify that there is an actual destination to break or
	// continue to.
	i := 0
	for ; i < len(p.labels); i++ {
		lab := p.labels[i]
		if lbl == nil || lab.name == lbl.Name {
			if lab.kind != "" && (isBreak || lab.kind == labelLoop) {
				break
			}
			if lbl != nil && isBreak {
				break
			}
		}
	}
	if i == len(p.labels) {
		p.raise(span.Start, IllegalControlTransfer, "Unsyntactic "+keyword)
	}
	if isBreak {
		node := &ast.BreakStatement{Span: span, Label: lbl}
		p.finishNode(node)
		return node
	}
	node := &ast.ContinueStatement{Span: span, Label: lbl}
	p.finishNode(node)
	return node
}

func (p *Parser) parseDebuggerStatement(span ast.Span) ast.Statement {
	node := &ast.DebuggerStatement{Span: span}
	p.next()
	p.semicolon()
	p.finishNode(node)
	return node
}

func (p *Parser) parseDoStatement(span ast.Span) ast.Statement {
	node := &ast.DoWhileStatement{Span: span}
	p.next()
	p.labels = append(p.labels, label{kind: labelLoop})
	node.Body = p.parseStatement("do", false, nil)
	p.labels = p.labels[:len(p.labels)-1]
	p.expect(tt._while)
	node.Test = p.parseParenExpression()
	p.eat(tt.semi)
	p.finishNode(node)
	return node
}

// Disambiguating between a `for` and a `for`/`in` or `for`/`of`
// loop is non-trivial. Basically, we have to parse the init `var`
// statement or expression, disallowing the `in` operator (see
// the forInit argument to `parseExpression`), and then check
// whether the next token is `in` or `of`. When there is no init
// part (semicolon immediately after the opening parenthesis), it
// is a regular `for` loop.
func (p *Parser) parseForStatement(span ast.Span) ast.Statement {
	p.next()
	awaitAt := -1
	if p.canAwait() && p.eatContextual("await") {
		awaitAt = p.lastTokStart
	}
	p.labels = append(p.labels, label{kind: labelLoop})
	p.enterScope(0)
	p.expect(tt.parenL)
	if p.typ == tt.semi {
		if awaitAt > -1 {
			p.unexpectedAt(awaitAt)
		}
		return p.parseFor(span, nil)
	}
	isLet := p.isLet("")
	if p.typ == tt._var || p.typ == tt._const || isLet {
		init := &ast.VariableDeclaration{Span: p.startNode()}
		kind := "let"
		if !isLet {
			kind = p.value.(string)
		}
		p.next()
		p.parseVar(init, true, kind)
		p.finishNode(init)
		return p.parseForAfterInit(span, init, awaitAt)
	}
	startsWithLet := p.isContextual("let")
	containsEsc := p.containsEsc
	refDestructuringErrors := newDestructuringErrors()
	initPos := p.start
	var init ast.Expression
	if awaitAt > -1 {
		init = p.parseExprSubscripts(refDestructuringErrors, true)
	} else {
		init = p.parseExpression(true, refDestructuringErrors)
	}
	isForOf := p.isContextual("of")
	if p.typ == tt._in || isForOf {
		forAwait := false
		if awaitAt > -1 {
			if p.typ == tt._in {
				p.unexpectedAt(awaitAt)
			}
			forAwait = true
		} else if isForOf {
			if id, ok := init.(*ast.Identifier); ok && id.Start == initPos && !containsEsc && id.Name == "async" {
				p.unexpected()
			}
		}
		if startsWithLet && isForOf {
			p.raise(init.Pos().Start, UnexpectedToken, "The left-hand side of a for-of loop may not start with 'let'.")
		}
		left := p.toAssignable(init, false, refDestructuringErrors)
		p.checkLValPattern(left, bindNone, nil)
		return p.parseForIn(span, left, forAwait)
	}
	p.checkExpressionErrors(refDestructuringErrors, true)
	if awaitAt > -1 {
		p.unexpectedAt(awaitAt)
	}
	return p.parseFor(span, init)
}

func (p *Parser) parseForAfterInit(span ast.Span, init *ast.VariableDeclaration, awaitAt int) ast.Statement {
	if (p.typ == tt._in || p.isContextual("of")) && len(init.Declarations) == 1 {
		if p.typ == tt._in && awaitAt > -1 {
			p.unexpectedAt(awaitAt)
		}
		return p.parseForIn(span, init, awaitAt > -1)
	}
	if awaitAt > -1 {
		p.unexpectedAt(awaitAt)
	}
	return p.parseFor(span, init)
}

func (p *Parser) parseFunctionStatement(span ast.Span, isAsync, declarationPosition bool) ast.Statement {
	p.next()
	statement := funcStatement
	if !declarationPosition {
		statement |= funcHangingStatement
	}
	node := &ast.FunctionDeclaration{Span: span}
	p.parseFunction(node, &node.Function, statement, isAsync, false)
	return node
}

func (p *Parser) parseIfStatement(span ast.Span) ast.Statement {
	node := &ast.IfStatement{Span: span}
	p.next()
	node.Test = p.parseParenExpression()
	// allow function declarations in branches, but only in non-strict mode
	node.Consequent = p.parseStatement("if", false, nil)
	if p.eat(tt._else) {
		node.Alternate = p.parseStatement("if", false, nil)
	}
	p.finishNode(node)
	return node
}

func (p *Parser) parseReturnStatement(span ast.Span) ast.Statement {
	if !p.inFunction() && !p.options.AllowReturnOutsideFunction {
		p.raise(p.start, IllegalControlTransfer, "'return' outside of function")
	}
	node := &ast.ReturnStatement{Span: span}
	p.next()

	// In `return` (and `break`/`continue`), the keywords with
	// optional arguments, we eagerly look for a semicolon or the
	// possibility to insert one.
	if !p.eat(tt.semi) && !p.canInsertSemicolon() {
		node.Argument = p.parseExpression(false, nil)
		p.semicolon()
	}
	p.finishNode(node)
	return node
}

func (p *Parser) parseSwitchStatement(span ast.Span) ast.Statement {
	node := &ast.SwitchStatement{Span: span}
	p.next()
	node.Discriminant = p.parseParenExpression()
	node.Cases = []*ast.SwitchCase{}
	p.expect(tt.braceL)
	p.labels = append(p.labels, label{kind: labelSwitch})
	p.enterScope(0)

	// Statements under must be grouped (by label) in SwitchCase
	// nodes. `cur` is used to keep the node that we are currently
	// adding statements to.
	var cur *ast.SwitchCase
	sawDefault := false
	for p.typ != tt.braceR {
		if p.typ == tt._case || p.typ == tt._default {
			isCase := p.typ == tt._case
			if cur != nil {
				p.finishNode(cur)
			}
			cur = &ast.SwitchCase{Span: p.startNode(), Consequent: []ast.Statement{}}
			node.Cases = append(node.Cases, cur)
			p.next()
			if isCase {
				cur.Test = p.parseExpression(false, nil)
			} else {
				if sawDefault {
					p.raise(p.lastTokStart, UnexpectedToken, "Multiple default clauses")
				}
				sawDefault = true
			}
			p.expect(tt.colon)
		} else {
			if cur == nil {
				p.unexpected()
			}
			cur.Consequent = append(cur.Consequent, p.parseStatement("", false, nil))
		}
	}
	p.exitScope()
	if cur != nil {
		p.finishNode(cur)
	}
	p.next() // Closing brace
	p.labels = p.labels[:len(p.labels)-1]
	p.finishNode(node)
	return node
}

func (p *Parser) parseThrowStatement(span ast.Span) ast.Statement {
	node := &ast.ThrowStatement{Span: span}
	p.next()
	if hasLineBreak(p.input[p.lastTokEnd:p.start]) {
		p.raise(p.lastTokEnd, UnexpectedToken, "Illegal newline after throw")
	}
	node.Argument = p.parseExpression(false, nil)
	p.semicolon()
	p.finishNode(node)
	return node
}

func (p *Parser) parseCatchClauseParam() ast.Pattern {
	param := p.parseBindingAtom()
	_, simple := param.(*ast.Identifier)
	if simple {
		p.enterScope(scopeSimpleCatch)
		p.checkLValPattern(param, bindSimpleCatch, nil)
	} else {
		p.enterScope(0)
		p.checkLValPattern(param, bindLexical, nil)
	}
	p.expect(tt.parenR)
	return param
}

func (p *Parser) parseTryStatement(span ast.Span) ast.Statement {
	node := &ast.TryStatement{Span: span}
	p.next()
	node.Block = p.parseBlock(true, false)
	if p.typ == tt._catch {
		clause := &ast.CatchClause{Span: p.startNode()}
		p.next()
		if p.eat(tt.parenL) {
			clause.Param = p.parseCatchClauseParam()
		} else {
			p.enterScope(0)
		}
		clause.Body = p.parseBlock(false, false)
		p.exitScope()
		p.finishNode(clause)
		node.Handler = clause
	}
	if p.eat(tt._finally) {
		node.Finalizer = p.parseBlock(true, false)
	}
	if node.Handler == nil && node.Finalizer == nil {
		p.raise(node.Start, UnexpectedToken, "Missing catch or finally clause")
	}
	p.finishNode(node)
	return node
}

func (p *Parser) parseVarStatement(span ast.Span, kind string) ast.Statement {
	node := &ast.VariableDeclaration{Span: span}
	p.next()
	p.parseVar(node, false, kind)
	p.semicolon()
	p.finishNode(node)
	return node
}

func (p *Parser) parseWhileStatement(span ast.Span) ast.Statement {
	node := &ast.WhileStatement{Span: span}
	p.next()
	node.Test = p.parseParenExpression()
	p.labels = append(p.labels, label{kind: labelLoop})
	node.Body = p.parseStatement("while", false, nil)
	p.labels = p.labels[:len(p.labels)-1]
	p.finishNode(node)
	return node
}

func (p *Parser) parseWithStatement(span ast.Span) ast.Statement {
	if p.strict {
		p.raise(p.start, StrictModeViolation, "'with' in strict mode")
	}
	node := &ast.WithStatement{Span: span}
	p.next()
	node.Object = p.parseParenExpression()
	node.Body = p.parseStatement("with", false, nil)
	p.finishNode(node)
	return node
}

func (p *Parser) parseEmptyStatement(span ast.Span) ast.Statement {
	node := &ast.EmptyStatement{Span: span}
	p.next()
	p.finishNode(node)
	return node
}

func (p *Parser) parseLabeledStatement(span ast.Span, maybeName string, expr *ast.Identifier, context string) ast.Statement {
	for _, l := range p.labels {
		if l.name == maybeName {
			p.raise(expr.Start, DuplicateBinding, "Label '"+maybeName+"' is already declared")
		}
	}
	kind := ""
	if p.typ.isLoop {
		kind = labelLoop
	} else if p.typ == tt._switch {
		kind = labelSwitch
	}
	for i := len(p.labels) - 1; i >= 0; i-- {
		if p.labels[i].statementStart != span.Start {
			break
		}
		// Update information about previous labels on this node
		p.labels[i].statementStart = p.start
		p.labels[i].kind = kind
	}
	p.labels = append(p.labels, label{name: maybeName, kind: kind, statementStart: p.start})
	bodyContext := "label"
	if context != "" {
		bodyContext = context
		if !hasSuffixLabel(context) {
			bodyContext += "label"
		}
	}
	node := &ast.LabeledStatement{Span: span}
	node.Body = p.parseStatement(bodyContext, false, nil)
	p.labels = p.labels[:len(p.labels)-1]
	node.Label = expr
	p.finishNode(node)
	return node
}

func hasSuffixLabel(context string) bool {
	return len(context) >= 5 && context[len(context)-5:] == "label"
}

func (p *Parser) parseExpressionStatement(span ast.Span, expr ast.Expression) ast.Statement {
	node := &ast.ExpressionStatement{Span: span, Expression: expr}
	p.semicolon()
	p.finishNode(node)
	return node
}

// Parse a semicolon-enclosed block of statements. exitStrict leaves
// strict mode before the token after the closing brace is read; it is
// set for function bodies that turned strict mode on.
func (p *Parser) parseBlock(createNewLexicalScope, exitStrict bool) *ast.BlockStatement {
	node := &ast.BlockStatement{Span: p.startNode(), Body: []ast.Statement{}}
	p.expect(tt.braceL)
	if createNewLexicalScope {
		p.enterScope(0)
	}
	for p.typ != tt.braceR {
		node.Body = append(node.Body, p.parseStatement("", false, nil))
	}
	if exitStrict {
		p.strict = false
	}
	p.next()
	if createNewLexicalScope {
		p.exitScope()
	}
	p.finishNode(node)
	return node
}

// Parse a regular `for` loop. The disambiguation code in
// `parseForStatement` will already have parsed the init statement or
// expression.
func (p *Parser) parseFor(span ast.Span, init ast.Node) ast.Statement {
	node := &ast.ForStatement{Span: span, Init: init}
	p.expect(tt.semi)
	if p.typ != tt.semi {
		node.Test = p.parseExpression(false, nil)
	}
	p.expect(tt.semi)
	if p.typ != tt.parenR {
		node.Update = p.parseExpression(false, nil)
	}
	p.expect(tt.parenR)
	node.Body = p.parseStatement("for", false, nil)
	p.exitScope()
	p.labels = p.labels[:len(p.labels)-1]
	p.finishNode(node)
	return node
}

// Parse a `for`/`in` and `for`/`of` loop, which are almost
// same from parser's perspective.
func (p *Parser) parseForIn(span ast.Span, init ast.Node, forAwait bool) ast.Statement {
	isForIn := p.typ == tt._in
	p.next()

	if decl, ok := init.(*ast.VariableDeclaration); ok && decl.Declarations[0].Init != nil {
		_, isIdent := decl.Declarations[0].ID.(*ast.Identifier)
		if !isForIn || p.strict || decl.Kind != "var" || !isIdent {
			loop := "for-of"
			if isForIn {
				loop = "for-in"
			}
			p.raise(init.Pos().Start, UnexpectedToken, loop+" loop variable declaration may not have an initializer")
		}
	}
	var right ast.Expression
	if isForIn {
		right = p.parseExpression(false, nil)
	} else {
		right = p.parseMaybeAssign(false, nil)
	}
	p.expect(tt.parenR)
	body := p.parseStatement("for", false, nil)
	p.exitScope()
	p.labels = p.labels[:len(p.labels)-1]
	if isForIn {
		node := &ast.ForInStatement{Span: span, Left: init, Right: right, Body: body}
		p.finishNode(node)
		return node
	}
	node := &ast.ForOfStatement{Span: span, Left: init, Right: right, Body: body, Await: forAwait}
	p.finishNode(node)
	return node
}

// Parse a list of variable declarations.
func (p *Parser) parseVar(node *ast.VariableDeclaration, isFor bool, kind string) {
	node.Kind = kind
	for {
		decl := &ast.VariableDeclarator{Span: p.startNode()}
		p.parseVarID(decl, kind)
		if p.eat(tt.eq) {
			decl.Init = p.parseMaybeAssign(isFor, nil)
		} else if kind == "const" && !(p.typ == tt._in || p.isContextual("of")) {
			p.unexpected()
		} else if _, ok := decl.ID.(*ast.Identifier); !ok && !(isFor && (p.typ == tt._in || p.isContextual("of"))) {
			p.raise(p.lastTokEnd, UnexpectedToken, "Complex binding patterns require an initialization value")
		}
		p.finishNode(decl)
		node.Declarations = append(node.Declarations, decl)
		if !p.eat(tt.comma) {
			break
		}
	}
}

func (p *Parser) parseVarID(decl *ast.VariableDeclarator, kind string) {
	decl.ID = p.parseBindingAtom()
	bindingType := bindLexical
	if kind == "var" {
		bindingType = bindVar
	}
	p.checkLValPattern(decl.ID, bindingType, nil)
}

// Flags for parseFunction.
const (
	funcStatement = 1 << iota
	funcHangingStatement
	funcNullableID
)

// Parse a function declaration or literal (depending on the
// `statement & funcStatement`). The `function` keyword, and `async`
// before it, have been consumed.
func (p *Parser) parseFunction(node ast.Node, fn *ast.Function, statement int, isAsync, forInit bool) {
	if p.typ == tt.star && statement&funcHangingStatement != 0 {
		p.unexpected()
	}
	fn.Generator = p.eat(tt.star)
	fn.Async = isAsync

	if statement&funcStatement != 0 {
		if statement&funcNullableID == 0 || p.typ == tt.name {
			fn.ID = p.parseIdent(false)
		}
		if fn.ID != nil && statement&funcHangingStatement == 0 {
			// If it is a regular function declaration in sloppy mode, then it is
			// subject to Annex B semantics (bindFunction). Otherwise, the binding
			// follows the rules for lexical declarations (bindLexical).
			bindingType := bindFunction
			if p.strict || fn.Generator || fn.Async {
				if p.treatFunctionsAsVar() {
					bindingType = bindVar
				} else {
					bindingType = bindLexical
				}
			}
			p.checkLValSimple(fn.ID, bindingType, nil)
		}
	}

	oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
	p.yieldPos = 0
	p.awaitPos = 0
	p.awaitIdentPos = 0
	p.enterScope(functionFlags(fn.Async, fn.Generator))

	if statement&funcStatement == 0 && p.typ == tt.name {
		fn.ID = p.parseIdent(false)
	}

	p.parseFunctionParams(fn)
	body, _ := p.parseFunctionBody(node.Pos().Start, fn.ID, fn.Params, false, false, forInit)
	fn.Body = body.(*ast.BlockStatement)

	p.yieldPos = oldYieldPos
	p.awaitPos = oldAwaitPos
	p.awaitIdentPos = oldAwaitIdentPos
	p.finishNode(node)
}

func (p *Parser) parseFunctionParams(fn *ast.Function) {
	p.expect(tt.parenL)
	fn.Params = p.parseBindingList(tt.parenR, false, true)
	p.checkYieldAwaitInDefaultParams()
}

func (p *Parser) adaptDirectivePrologue(statements []ast.Statement) {
	for _, stmt := range statements {
		es, ok := p.directiveCandidate(stmt)
		if !ok {
			return
		}
		raw := es.Expression.(*ast.Literal).Raw
		es.Directive = raw[1 : len(raw)-1]
	}
}

func (p *Parser) directiveCandidate(statement ast.Statement) (*ast.ExpressionStatement, bool) {
	es, ok := statement.(*ast.ExpressionStatement)
	if !ok {
		return nil, false
	}
	lit, ok := es.Expression.(*ast.Literal)
	if !ok {
		return nil, false
	}
	if _, ok := lit.Value.(string); !ok {
		return nil, false
	}
	// Reject parenthesized strings.
	c := charAt(p.input, es.Start)
	return es, c == '"' || c == '\''
}
