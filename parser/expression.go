package parser

import (
	"math/big"

	"github.com/devside/esparse/ast"
)

// A recursive descent parser operates by defining functions for all
// syntactic elements, and recursively calling those, each function
// advancing the input stream and returning an AST node. Precedence
// of constructs (for example, the fact that `!x[1]` means `!(x[1])`
// instead of `(!x)[1]` is handled by the fact that the parser
// function that parses unary prefix operators is called first, and
// in turn calls the function that parses `[]` subscripts. That
// way, it'll receive the node for `x[1]` already parsed, and wraps
// *that* in the unary operator node.
//
// Binary operators go through an operator precedence parser, which is
// much more compact than a separate nesting function for each of the
// ten binary precedence levels.

// Check if property name clashes with already added. Only a repeated
// __proto__ data property is an error.
func (p *Parser) checkPropClash(prop ast.ObjectMember, sawProto *bool, refDestructuringErrors *destructuringErrors) {
	property, ok := prop.(*ast.Property)
	if !ok || property.Computed || property.Method || property.Shorthand || property.Kind != "init" {
		return
	}
	var name string
	switch key := property.Key.(type) {
	case *ast.Identifier:
		name = key.Name
	case *ast.Literal:
		name, _ = key.Value.(string)
	default:
		return
	}
	if name != "__proto__" {
		return
	}
	if *sawProto {
		if refDestructuringErrors != nil {
			if refDestructuringErrors.doubleProto < 0 {
				refDestructuringErrors.doubleProto = property.Key.Pos().Start
			}
		} else {
			p.raise(property.Key.Pos().Start, DuplicateBinding, "Redefinition of __proto__ property")
		}
	}
	*sawProto = true
}

// ### Expression parsing

// These nest, from the most general expression type at the top to
// 'atomic', nondivisible expression types at the bottom. Most of
// the functions will simply let the function(s) below them parse,
// and, *if* the syntactic construct they handle is present, wrap
// the AST node that the inner parser gave them in another node.

// Parse a full expression. forInit forbids the `in` operator (in for
// loop initialization expressions) and refDestructuringErrors collects
// the constructs that are only legal if the expression later turns out
// to be a pattern, so the error can be raised at the right position.
func (p *Parser) parseExpression(forInit bool, refDestructuringErrors *destructuringErrors) ast.Expression {
	startPos, startLoc := p.start, p.startLoc
	expr := p.parseMaybeAssign(forInit, refDestructuringErrors)
	if p.typ == tt.comma {
		node := &ast.SequenceExpression{Span: p.startNodeAt(startPos, startLoc)}
		node.Expressions = []ast.Expression{expr}
		for p.eat(tt.comma) {
			node.Expressions = append(node.Expressions, p.parseMaybeAssign(forInit, refDestructuringErrors))
		}
		p.finishNode(node)
		return node
	}
	return expr
}

// Parse an assignment expression. This includes applications of
// operators like `+=`.
func (p *Parser) parseMaybeAssign(forInit bool, refDestructuringErrors *destructuringErrors) ast.Expression {
	if p.isContextual("yield") && p.inGenerator() {
		return p.parseYield(forInit)
	}

	ownDestructuringErrors := false
	oldParenAssign, oldTrailingComma, oldDoubleProto := -1, -1, -1
	if refDestructuringErrors != nil {
		oldParenAssign = refDestructuringErrors.parenthesizedAssign
		oldTrailingComma = refDestructuringErrors.trailingComma
		oldDoubleProto = refDestructuringErrors.doubleProto
		refDestructuringErrors.parenthesizedAssign = -1
		refDestructuringErrors.trailingComma = -1
	} else {
		refDestructuringErrors = newDestructuringErrors()
		ownDestructuringErrors = true
	}

	startPos, startLoc := p.start, p.startLoc
	if p.typ == tt.parenL || p.typ == tt.name {
		p.potentialArrowAt = p.start
	}
	left := p.parseMaybeConditional(forInit, refDestructuringErrors)
	if p.typ.isAssign {
		node := &ast.AssignmentExpression{Span: p.startNodeAt(startPos, startLoc)}
		node.Operator = p.value.(string)
		var target ast.Pattern
		if p.typ == tt.eq {
			target = p.toAssignable(left, false, refDestructuringErrors)
		}
		if !ownDestructuringErrors {
			refDestructuringErrors.parenthesizedAssign = -1
			refDestructuringErrors.trailingComma = -1
			refDestructuringErrors.doubleProto = -1
		}
		if refDestructuringErrors.shorthandAssign >= left.Pos().Start {
			// reset because shorthand default was used correctly
			refDestructuringErrors.shorthandAssign = -1
		}
		if p.typ == tt.eq {
			p.checkLValPattern(target, bindNone, nil)
		} else {
			p.checkLValSimple(left, bindNone, nil)
			target = p.toSimpleAssignTarget(left)
		}
		node.Left = target
		p.next()
		node.Right = p.parseMaybeAssign(forInit, nil)
		if oldDoubleProto > -1 {
			refDestructuringErrors.doubleProto = oldDoubleProto
		}
		p.finishNode(node)
		return node
	} else if ownDestructuringErrors {
		p.checkExpressionErrors(refDestructuringErrors, true)
	}
	if oldParenAssign > -1 {
		refDestructuringErrors.parenthesizedAssign = oldParenAssign
	}
	if oldTrailingComma > -1 {
		refDestructuringErrors.trailingComma = oldTrailingComma
	}
	return left
}

// Parse a ternary conditional (`?:`) operator.
func (p *Parser) parseMaybeConditional(forInit bool, refDestructuringErrors *destructuringErrors) ast.Expression {
	startPos, startLoc := p.start, p.startLoc
	expr := p.parseExprOps(forInit, refDestructuringErrors)
	if p.checkExpressionErrors(refDestructuringErrors, false) {
		return expr
	}
	if p.eat(tt.question) {
		node := &ast.ConditionalExpression{Span: p.startNodeAt(startPos, startLoc)}
		node.Test = expr
		node.Consequent = p.parseMaybeAssign(false, nil)
		p.expect(tt.colon)
		node.Alternate = p.parseMaybeAssign(forInit, nil)
		p.finishNode(node)
		return node
	}
	return expr
}

// Start the precedence parser.
func (p *Parser) parseExprOps(forInit bool, refDestructuringErrors *destructuringErrors) ast.Expression {
	startPos, startLoc := p.start, p.startLoc
	expr := p.parseMaybeUnary(refDestructuringErrors, false, false, forInit)
	if p.checkExpressionErrors(refDestructuringErrors, false) {
		return expr
	}
	if _, ok := expr.(*ast.ArrowFunctionExpression); ok && expr.Pos().Start == startPos {
		return expr
	}
	return p.parseExprOp(expr, startPos, startLoc, -1, forInit)
}

// Parse binary operators with the operator precedence parsing
// algorithm. `left` is the left-hand side of the operator.
// `minPrec` provides context that allows the function to stop and
// defer further parser to one of its callers when it encounters an
// operator that has a lower precedence than the set it is parsing.
func (p *Parser) parseExprOp(left ast.Expression, leftStartPos int, leftStartLoc ast.Position, minPrec int, forInit bool) ast.Expression {
	prec := p.typ.binop
	if prec == 0 || forInit && p.typ == tt._in || prec <= minPrec {
		return left
	}
	logical := p.typ == tt.logicalOR || p.typ == tt.logicalAND
	coalesce := p.typ == tt.coalesce
	if coalesce {
		// Handle the precedence of `??` as equal to the range of logical
		// expressions, so that the right side never holds a logical
		// expression and mixing can be detected below.
		prec = tt.logicalAND.binop
	}
	op := p.value.(string)
	if p.typ.keyword != "" {
		op = p.typ.keyword
	}
	p.next()
	startPos, startLoc := p.start, p.startLoc
	right := p.parseExprOp(p.parseMaybeUnary(nil, false, false, forInit), startPos, startLoc, prec, forInit)
	node := p.buildBinary(leftStartPos, leftStartLoc, left, right, op, logical || coalesce)
	if logical && p.typ == tt.coalesce || coalesce && (p.typ == tt.logicalOR || p.typ == tt.logicalAND) {
		p.raise(p.start, UnexpectedToken, "Logical expressions and coalesce expressions cannot be mixed. Wrap either by parentheses")
	}
	return p.parseExprOp(node, leftStartPos, leftStartLoc, minPrec, forInit)
}

func (p *Parser) buildBinary(startPos int, startLoc ast.Position, left, right ast.Expression, op string, logical bool) ast.Expression {
	if _, ok := right.(*ast.PrivateIdentifier); ok {
		p.raise(right.Pos().Start, UnexpectedToken, "Private identifier can only be left side of binary expression")
	}
	if logical {
		node := &ast.LogicalExpression{Span: p.startNodeAt(startPos, startLoc), Left: left, Operator: op, Right: right}
		p.finishNode(node)
		return node
	}
	node := &ast.BinaryExpression{Span: p.startNodeAt(startPos, startLoc), Left: left, Operator: op, Right: right}
	p.finishNode(node)
	return node
}

// Parse unary operators, both prefix and postfix.
func (p *Parser) parseMaybeUnary(refDestructuringErrors *destructuringErrors, sawUnary, incDec, forInit bool) ast.Expression {
	startPos, startLoc := p.start, p.startLoc
	var expr ast.Expression
	switch {
	case p.isContextual("await") && p.canAwait():
		expr = p.parseAwait(forInit)
		sawUnary = true

	case p.typ.prefix:
		span := p.startNode()
		update := p.typ == tt.incDec
		operator := p.typ.keyword
		if operator == "" {
			operator = p.value.(string)
		}
		p.next()
		argument := p.parseMaybeUnary(nil, true, update, forInit)
		p.checkExpressionErrors(refDestructuringErrors, true)
		if update {
			p.checkLValSimple(argument, bindNone, nil)
			node := &ast.UpdateExpression{Span: span, Operator: operator, Prefix: true, Argument: argument}
			p.finishNode(node)
			expr = node
			break
		}
		if p.strict && operator == "delete" && isLocalVariableAccess(argument) {
			p.raise(span.Start, StrictModeViolation, "Deleting local variable in strict mode")
		} else if operator == "delete" && isPrivateFieldAccess(argument) {
			p.raise(span.Start, UnexpectedToken, "Private fields can not be deleted")
		} else {
			sawUnary = true
		}
		node := &ast.UnaryExpression{Span: span, Operator: operator, Prefix: true, Argument: argument}
		p.finishNode(node)
		expr = node

	case !sawUnary && p.typ == tt.privateID:
		if forInit || len(p.privateNameStack) == 0 {
			p.unexpected()
		}
		expr = p.parsePrivateIdent()
		// only could be private fields in 'in', such as #x in obj
		if p.typ != tt._in {
			p.unexpected()
		}

	default:
		expr = p.parseExprSubscripts(refDestructuringErrors, forInit)
		if p.checkExpressionErrors(refDestructuringErrors, false) {
			return expr
		}
		for p.typ.postfix && !p.canInsertSemicolon() {
			node := &ast.UpdateExpression{Span: p.startNodeAt(startPos, startLoc)}
			node.Operator = p.value.(string)
			node.Argument = expr
			p.checkLValSimple(expr, bindNone, nil)
			p.next()
			p.finishNode(node)
			expr = node
		}
	}

	if !incDec && p.eat(tt.starstar) {
		if sawUnary {
			p.unexpectedAt(p.lastTokStart)
		}
		return p.buildBinary(startPos, startLoc, expr, p.parseMaybeUnary(nil, false, false, forInit), "**", false)
	}
	return expr
}

func isLocalVariableAccess(node ast.Expression) bool {
	switch node := node.(type) {
	case *ast.Identifier:
		return true
	case *ast.ParenthesizedExpression:
		return isLocalVariableAccess(node.Expression)
	}
	return false
}

func isPrivateFieldAccess(node ast.Expression) bool {
	switch node := node.(type) {
	case *ast.MemberExpression:
		_, ok := node.Property.(*ast.PrivateIdentifier)
		return ok
	case *ast.ChainExpression:
		return isPrivateFieldAccess(node.Expression)
	case *ast.ParenthesizedExpression:
		return isPrivateFieldAccess(node.Expression)
	}
	return false
}

// Parse call, dot, and `[]`-subscript expressions.
func (p *Parser) parseExprSubscripts(refDestructuringErrors *destructuringErrors, forInit bool) ast.Expression {
	startPos, startLoc := p.start, p.startLoc
	expr := p.parseExprAtom(refDestructuringErrors, forInit, false)
	if _, ok := expr.(*ast.ArrowFunctionExpression); ok && p.input[p.lastTokStart:p.lastTokEnd] != ")" {
		return expr
	}
	result := p.parseSubscripts(expr, startPos, startLoc, false, forInit)
	if _, ok := result.(*ast.MemberExpression); ok && refDestructuringErrors != nil {
		start := result.Pos().Start
		if refDestructuringErrors.parenthesizedAssign >= start {
			refDestructuringErrors.parenthesizedAssign = -1
		}
		if refDestructuringErrors.parenthesizedBind >= start {
			refDestructuringErrors.parenthesizedBind = -1
		}
		if refDestructuringErrors.trailingComma >= start {
			refDestructuringErrors.trailingComma = -1
		}
	}
	return result
}

func (p *Parser) parseSubscripts(base ast.Expression, startPos int, startLoc ast.Position, noCalls, forInit bool) ast.Expression {
	maybeAsyncArrow := false
	if id, ok := base.(*ast.Identifier); ok {
		maybeAsyncArrow = id.Name == "async" && p.lastTokEnd == id.End && !p.canInsertSemicolon() &&
			id.End-id.Start == 5 && p.potentialArrowAt == id.Start
	}
	optionalChained := false

	for {
		element := p.parseSubscript(base, startPos, startLoc, noCalls, maybeAsyncArrow, optionalChained, forInit)

		switch e := element.(type) {
		case *ast.MemberExpression:
			optionalChained = optionalChained || e.Optional
		case *ast.CallExpression:
			optionalChained = optionalChained || e.Optional
		}
		_, isArrow := element.(*ast.ArrowFunctionExpression)
		if element == base || isArrow {
			if optionalChained {
				chainNode := &ast.ChainExpression{Span: p.startNodeAt(startPos, startLoc), Expression: element}
				p.finishNode(chainNode)
				return chainNode
			}
			return element
		}

		base = element
	}
}

func (p *Parser) shouldParseAsyncArrow() bool {
	return !p.canInsertSemicolon() && p.eat(tt.arrow)
}

func (p *Parser) parseSubscript(base ast.Expression, startPos int, startLoc ast.Position, noCalls, maybeAsyncArrow, optionalChained, forInit bool) ast.Expression {
	optional := p.eat(tt.questionDot)
	if noCalls && optional {
		p.raise(p.lastTokStart, UnexpectedToken, "Optional chaining cannot appear in the callee of new expressions")
	}
	computed := p.eat(tt.bracketL)
	if computed || optional && p.typ != tt.parenL && p.typ != tt.template || p.eat(tt.dot) {
		node := &ast.MemberExpression{Span: p.startNodeAt(startPos, startLoc)}
		node.Object = base
		_, isSuper := base.(*ast.Super)
		if computed {
			node.Property = p.parseExpression(false, nil)
			p.expect(tt.bracketR)
		} else if p.typ == tt.privateID && !isSuper {
			node.Property = p.parsePrivateIdent()
		} else {
			node.Property = p.parseIdent(true)
		}
		node.Computed = computed
		node.Optional = optional
		p.finishNode(node)
		return node
	}
	if !noCalls && p.eat(tt.parenL) {
		refDestructuringErrors := newDestructuringErrors()
		oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
		p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0
		exprList := p.parseExprList(tt.parenR, true, false, refDestructuringErrors)
		if maybeAsyncArrow && !optional && p.shouldParseAsyncArrow() {
			p.checkPatternErrors(refDestructuringErrors, false)
			p.checkYieldAwaitInDefaultParams()
			if p.awaitIdentPos > 0 {
				p.raise(p.awaitIdentPos, IllegalYieldOrAwaitUsage, "Cannot use 'await' as identifier inside an async function")
			}
			p.yieldPos, p.awaitPos, p.awaitIdentPos = oldYieldPos, oldAwaitPos, oldAwaitIdentPos
			return p.parseArrowExpression(p.startNodeAt(startPos, startLoc), exprList, nil, true, forInit)
		}
		p.checkExpressionErrors(refDestructuringErrors, true)
		if oldYieldPos != 0 {
			p.yieldPos = oldYieldPos
		}
		if oldAwaitPos != 0 {
			p.awaitPos = oldAwaitPos
		}
		if oldAwaitIdentPos != 0 {
			p.awaitIdentPos = oldAwaitIdentPos
		}
		node := &ast.CallExpression{Span: p.startNodeAt(startPos, startLoc)}
		node.Callee = base
		node.Arguments = exprList
		node.Optional = optional
		p.finishNode(node)
		return node
	}
	if p.typ == tt.template {
		if optional || optionalChained {
			p.raise(p.start, UnexpectedToken, "Optional chaining cannot appear in the tag of tagged template expressions")
		}
		node := &ast.TaggedTemplateExpression{Span: p.startNodeAt(startPos, startLoc)}
		node.Tag = base
		node.Quasi = p.parseTemplate(true)
		p.finishNode(node)
		return node
	}
	return base
}

// Parse an atomic expression: either a single token that is an
// expression, an expression started by a keyword like `function` or
// `new`, or an expression wrapped in punctuation like `()`, `[]`,
// or `{}`.
func (p *Parser) parseExprAtom(refDestructuringErrors *destructuringErrors, forInit, forNew bool) ast.Expression {
	// A slash in expression position starts a regular expression.
	if p.typ == tt.slash || p.typ == tt.assign && p.value == "/=" {
		p.readRegexp()
	}

	canBeArrow := p.potentialArrowAt == p.start
	switch p.typ {
	case tt._super:
		if !p.allowSuper() {
			p.raise(p.start, IllegalSuperUsage, "'super' keyword outside a method")
		}
		node := &ast.Super{Span: p.startNode()}
		p.next()
		if p.typ == tt.parenL && !p.allowDirectSuper() {
			p.raise(node.Start, IllegalSuperUsage, "super() call outside constructor of a subclass")
		}
		// The `super` keyword can appear at below:
		// SuperProperty:
		//     super [ Expression ]
		//     super . IdentifierName
		// SuperCall:
		//     super ( Arguments )
		if p.typ != tt.dot && p.typ != tt.bracketL && p.typ != tt.parenL {
			p.unexpected()
		}
		p.finishNode(node)
		return node

	case tt._this:
		node := &ast.ThisExpression{Span: p.startNode()}
		p.next()
		p.finishNode(node)
		return node

	case tt.name:
		startPos, startLoc, containsEsc := p.start, p.startLoc, p.containsEsc
		id := p.parseIdent(false)
		if !containsEsc && id.Name == "async" && !p.canInsertSemicolon() && p.eat(tt._function) {
			node := &ast.FunctionExpression{Span: p.startNodeAt(startPos, startLoc)}
			p.parseFunction(node, &node.Function, 0, true, forInit)
			return node
		}
		if canBeArrow && !p.canInsertSemicolon() {
			if p.eat(tt.arrow) {
				return p.parseArrowExpression(p.startNodeAt(startPos, startLoc), []ast.Expression{id}, nil, false, forInit)
			}
			if id.Name == "async" && p.typ == tt.name && !containsEsc {
				id = p.parseIdent(false)
				if p.canInsertSemicolon() || !p.eat(tt.arrow) {
					p.unexpected()
				}
				return p.parseArrowExpression(p.startNodeAt(startPos, startLoc), []ast.Expression{id}, nil, true, forInit)
			}
		}
		return id

	case tt.regexp:
		value := p.value.(*regexpValue)
		node := p.parseLiteral(value.value)
		node.Regex = &ast.RegExpLiteral{Pattern: value.pattern, Flags: value.flags}
		return node

	case tt.num, tt.str:
		return p.parseLiteral(p.value)

	case tt._null, tt._true, tt._false:
		node := &ast.Literal{Span: p.startNode()}
		if p.typ != tt._null {
			node.Value = p.typ == tt._true
		}
		node.Raw = p.typ.keyword
		p.next()
		p.finishNode(node)
		return node

	case tt.parenL:
		start := p.start
		expr := p.parseParenAndDistinguishExpression(canBeArrow, forInit)
		if refDestructuringErrors != nil {
			if refDestructuringErrors.parenthesizedAssign < 0 && !isSimpleAssignTarget(expr) {
				refDestructuringErrors.parenthesizedAssign = start
			}
			if refDestructuringErrors.parenthesizedBind < 0 {
				refDestructuringErrors.parenthesizedBind = start
			}
		}
		return expr

	case tt.bracketL:
		node := &ast.ArrayExpression{Span: p.startNode()}
		p.next()
		node.Elements = p.parseExprList(tt.bracketR, true, true, refDestructuringErrors)
		p.finishNode(node)
		return node

	case tt.braceL:
		return p.parseObj(refDestructuringErrors)

	case tt._function:
		node := &ast.FunctionExpression{Span: p.startNode()}
		p.next()
		p.parseFunction(node, &node.Function, 0, false, false)
		return node

	case tt._class:
		node := &ast.ClassExpression{Span: p.startNode()}
		p.parseClass(node, &node.Class, false, false)
		return node

	case tt._new:
		return p.parseNew()

	case tt.template:
		return p.parseTemplate(false)

	case tt._import:
		return p.parseExprImport(forNew)
	}
	p.unexpected()
	return nil
}

func (p *Parser) parseExprImport(forNew bool) ast.Expression {
	span := p.startNode()
	p.next()
	if p.typ == tt.parenL && !forNew {
		return p.parseDynamicImport(span)
	}
	if p.typ == tt.dot {
		meta := &ast.Identifier{Span: p.startNodeAt(span.Start, p.lastTokStartLoc), Name: "import"}
		p.finishNode(meta)
		return p.parseImportMeta(span, meta)
	}
	p.unexpected()
	return nil
}

func (p *Parser) parseDynamicImport(span ast.Span) ast.Expression {
	node := &ast.ImportExpression{Span: span}
	p.next() // skip `(`

	// Parse node.source.
	node.Source = p.parseMaybeAssign(false, nil)

	// Verify ending.
	if !p.eat(tt.parenR) {
		errorPos := p.start
		if p.eat(tt.comma) && p.eat(tt.parenR) {
			p.raise(errorPos, UnexpectedToken, "Trailing comma is not allowed in import()")
		}
		p.unexpectedAt(errorPos)
	}

	p.finishNode(node)
	return node
}

func (p *Parser) parseImportMeta(span ast.Span, meta *ast.Identifier) ast.Expression {
	node := &ast.MetaProperty{Span: span, Meta: meta}
	p.next() // skip `.`

	containsEsc := p.containsEsc
	node.Property = p.parseIdent(true)

	if node.Property.Name != "meta" {
		p.raise(node.Property.Start, UnexpectedToken, "The only valid meta property for import is 'import.meta'")
	}
	if containsEsc {
		p.raise(node.Start, ReservedWordMisuse, "'import.meta' must not contain escaped characters")
	}
	if !p.inModule {
		p.raise(node.Start, UnexpectedToken, "Cannot use 'import.meta' outside a module")
	}

	p.finishNode(node)
	return node
}

func (p *Parser) parseLiteral(value interface{}) *ast.Literal {
	node := &ast.Literal{Span: p.startNode()}
	node.Value = value
	node.Raw = p.input[p.start:p.end]
	if n, ok := value.(*big.Int); ok {
		node.Bigint = n.String()
	}
	p.next()
	p.finishNode(node)
	return node
}

func (p *Parser) parseParenExpression() ast.Expression {
	p.expect(tt.parenL)
	val := p.parseExpression(false, nil)
	p.expect(tt.parenR)
	return val
}

func (p *Parser) parseParenAndDistinguishExpression(canBeArrow, forInit bool) ast.Expression {
	start, startLoc := p.start, p.startLoc
	p.next()

	innerStartPos, innerStartLoc := p.start, p.startLoc
	var exprList []ast.Expression
	var rest *ast.RestElement
	first, lastIsComma := true, false
	refDestructuringErrors := newDestructuringErrors()
	oldYieldPos, oldAwaitPos := p.yieldPos, p.awaitPos
	spreadStart := -1
	p.yieldPos = 0
	p.awaitPos = 0
	// Do not save awaitIdentPos to allow checking awaits nested in parameters
	for p.typ != tt.parenR {
		if first {
			first = false
		} else {
			p.expect(tt.comma)
		}
		if p.afterTrailingComma(tt.parenR, true) {
			lastIsComma = true
			break
		} else if p.typ == tt.ellipsis {
			spreadStart = p.start
			rest = p.parseRestBinding()
			if p.typ == tt.comma {
				p.raise(p.start, InvalidDestructuringTarget, "Comma is not permitted after the rest element")
			}
			break
		} else {
			exprList = append(exprList, p.parseMaybeAssign(false, refDestructuringErrors))
		}
	}
	innerEndPos, innerEndLoc := p.lastTokEnd, p.lastTokEndLoc
	p.expect(tt.parenR)

	if canBeArrow && !p.canInsertSemicolon() && p.eat(tt.arrow) {
		p.checkPatternErrors(refDestructuringErrors, false)
		p.checkYieldAwaitInDefaultParams()
		p.yieldPos = oldYieldPos
		p.awaitPos = oldAwaitPos
		return p.parseArrowExpression(p.startNodeAt(start, startLoc), exprList, rest, false, forInit)
	}

	if spreadStart >= 0 {
		p.unexpectedAt(spreadStart)
	}
	if len(exprList) == 0 || lastIsComma {
		p.unexpectedAt(p.lastTokStart)
	}
	p.checkExpressionErrors(refDestructuringErrors, true)
	if oldYieldPos != 0 {
		p.yieldPos = oldYieldPos
	}
	if oldAwaitPos != 0 {
		p.awaitPos = oldAwaitPos
	}

	var val ast.Expression
	if len(exprList) > 1 {
		seq := &ast.SequenceExpression{Span: p.startNodeAt(innerStartPos, innerStartLoc), Expressions: exprList}
		p.finishNodeAt(seq, innerEndPos, innerEndLoc)
		val = seq
	} else {
		val = exprList[0]
	}

	if p.options.PreserveParens {
		par := &ast.ParenthesizedExpression{Span: p.startNodeAt(start, startLoc), Expression: val}
		p.finishNode(par)
		return par
	}
	return val
}

// New's precedence is slightly tricky. It must allow its argument to
// be a `[]` or dot subscript expression, but not a call, at least,
// not without wrapping it in parentheses. Thus, it uses the noCalls
// argument to parseSubscripts to prevent it from consuming the
// argument list.
func (p *Parser) parseNew() ast.Expression {
	span := p.startNode()
	p.next()
	if p.typ == tt.dot {
		meta := &ast.Identifier{Span: p.startNodeAt(span.Start, p.lastTokStartLoc), Name: "new"}
		p.finishNode(meta)
		p.next()
		node := &ast.MetaProperty{Span: span, Meta: meta}
		containsEsc := p.containsEsc
		node.Property = p.parseIdent(true)
		if node.Property.Name != "target" {
			p.raise(node.Property.Start, UnexpectedToken, "The only valid meta property for new is 'new.target'")
		}
		if containsEsc {
			p.raise(node.Start, ReservedWordMisuse, "'new.target' must not contain escaped characters")
		}
		if !p.allowNewDotTarget() {
			p.raise(node.Start, UnexpectedToken, "'new.target' can only be used in functions and class static block")
		}
		p.finishNode(node)
		return node
	}
	node := &ast.NewExpression{Span: span}
	startPos, startLoc := p.start, p.startLoc
	node.Callee = p.parseSubscripts(p.parseExprAtom(nil, false, true), startPos, startLoc, true, false)
	if p.eat(tt.parenL) {
		node.Arguments = p.parseExprList(tt.parenR, true, false, nil)
	}
	p.finishNode(node)
	return node
}

// Parse template expression.
func (p *Parser) parseTemplateElement(val *templateValue, isTagged bool) *ast.TemplateElement {
	elem := &ast.TemplateElement{Span: p.startNodeAt(val.contentStart, val.contentLoc[0])}
	if val.cooked == nil && !isTagged {
		p.raise(val.contentStart, LexicalError, "Bad escape sequence in untagged template literal")
	}
	elem.Raw = val.raw
	elem.Cooked = val.cooked
	elem.Tail = val.tail
	p.finishNodeAt(elem, val.contentEnd, val.contentLoc[1])
	return elem
}

// parseTemplate parses a template literal. The current token is its first
// chunk; after each substitution the closing brace is rescanned as the
// next chunk.
func (p *Parser) parseTemplate(isTagged bool) *ast.TemplateLiteral {
	node := &ast.TemplateLiteral{Span: p.startNode()}
	for {
		val := p.value.(*templateValue)
		node.Quasis = append(node.Quasis, p.parseTemplateElement(val, isTagged))
		p.next()
		if val.tail {
			break
		}
		if p.typ == tt.eof {
			p.raise(p.pos, LexicalError, "Unterminated template literal")
		}
		node.Expressions = append(node.Expressions, p.parseExpression(false, nil))
		if p.typ != tt.braceR {
			p.unexpected()
		}
		p.rescanTemplateContinuation()
	}
	p.finishNode(node)
	return node
}

func (p *Parser) isAsyncProp(key ast.Expression, computed bool) bool {
	id, ok := key.(*ast.Identifier)
	return !computed && ok && id.Name == "async" &&
		(p.typ == tt.name || p.typ == tt.num || p.typ == tt.str || p.typ == tt.bracketL || p.typ.keyword != "" || p.typ == tt.star) &&
		!hasLineBreak(p.input[p.lastTokEnd:p.start])
}

// Parse an object literal.
func (p *Parser) parseObj(refDestructuringErrors *destructuringErrors) *ast.ObjectExpression {
	node := &ast.ObjectExpression{Span: p.startNode()}
	first, sawProto := true, false
	p.next()
	for !p.eat(tt.braceR) {
		if !first {
			p.expect(tt.comma)
			if p.afterTrailingComma(tt.braceR, false) {
				break
			}
		} else {
			first = false
		}

		prop := p.parseProperty(refDestructuringErrors)
		p.checkPropClash(prop, &sawProto, refDestructuringErrors)
		node.Properties = append(node.Properties, prop)
	}
	p.finishNode(node)
	return node
}

func (p *Parser) parseProperty(refDestructuringErrors *destructuringErrors) ast.ObjectMember {
	if p.typ == tt.ellipsis {
		spread := &ast.SpreadElement{Span: p.startNode()}
		p.next()
		spread.Argument = p.parseMaybeAssign(false, refDestructuringErrors)
		// To disallow trailing comma via toAssignable.
		if p.typ == tt.comma && refDestructuringErrors != nil && refDestructuringErrors.trailingComma < 0 {
			refDestructuringErrors.trailingComma = p.start
		}
		p.finishNode(spread)
		return spread
	}

	prop := &ast.Property{Span: p.startNode()}
	startPos, startLoc := p.start, p.startLoc
	isGenerator := p.eat(tt.star)
	isAsync := false
	containsEsc := p.containsEsc
	prop.Key, prop.Computed = p.parsePropertyName()
	if !containsEsc && !isGenerator && p.isAsyncProp(prop.Key, prop.Computed) {
		isAsync = true
		isGenerator = p.eat(tt.star)
		prop.Key, prop.Computed = p.parsePropertyName()
	}
	p.parsePropertyValue(prop, isGenerator, isAsync, startPos, startLoc, refDestructuringErrors, containsEsc)
	p.finishNode(prop)
	return prop
}

func (p *Parser) parseGetterSetter(prop *ast.Property) {
	prop.Kind = prop.Key.(*ast.Identifier).Name
	prop.Key, prop.Computed = p.parsePropertyName()
	value := p.parseMethod(false, false, false)
	prop.Value = value
	p.checkAccessorParams(prop.Kind, value)
}

func (p *Parser) checkAccessorParams(kind string, value *ast.FunctionExpression) {
	switch kind {
	case "get":
		if len(value.Params) != 0 {
			p.raise(value.Start, ClassBodyError, "getter should have no params")
		}
	case "set":
		if len(value.Params) != 1 {
			p.raise(value.Start, ClassBodyError, "setter should have exactly one param")
		}
		if rest, ok := value.Params[0].(*ast.RestElement); ok {
			p.raise(rest.Start, ClassBodyError, "Setter cannot use rest params")
		}
	}
}

func (p *Parser) parsePropertyValue(prop *ast.Property, isGenerator, isAsync bool, startPos int, startLoc ast.Position, refDestructuringErrors *destructuringErrors, containsEsc bool) {
	if (isGenerator || isAsync) && p.typ == tt.colon {
		p.unexpected()
	}

	key, isIdent := prop.Key.(*ast.Identifier)
	switch {
	case p.eat(tt.colon):
		prop.Value = p.parseMaybeAssign(false, refDestructuringErrors)
		prop.Kind = "init"

	case p.typ == tt.parenL:
		prop.Kind = "init"
		prop.Method = true
		prop.Value = p.parseMethod(isGenerator, isAsync, false)

	case !containsEsc && !prop.Computed && isIdent && (key.Name == "get" || key.Name == "set") &&
		p.typ != tt.comma && p.typ != tt.braceR && p.typ != tt.eq:
		if isGenerator || isAsync {
			p.unexpected()
		}
		p.parseGetterSetter(prop)

	case !prop.Computed && isIdent:
		if isGenerator || isAsync {
			p.unexpected()
		}
		p.checkUnreserved(key)
		if key.Name == "await" && p.awaitIdentPos == 0 {
			p.awaitIdentPos = startPos
		}
		prop.Kind = "init"
		if p.typ == tt.eq && refDestructuringErrors != nil {
			if refDestructuringErrors.shorthandAssign < 0 {
				refDestructuringErrors.shorthandAssign = p.start
			}
			cover := &ast.CoverInitializedName{Span: p.startNodeAt(startPos, startLoc), Key: copyIdent(key)}
			p.next()
			cover.Init = p.parseMaybeAssign(false, nil)
			p.finishNode(cover)
			prop.Value = cover
		} else {
			prop.Value = copyIdent(key)
		}
		prop.Shorthand = true

	default:
		p.unexpected()
	}
}

func (p *Parser) parsePropertyName() (ast.Expression, bool) {
	if p.eat(tt.bracketL) {
		key := p.parseMaybeAssign(false, nil)
		p.expect(tt.bracketR)
		return key, true
	}
	if p.typ == tt.num || p.typ == tt.str {
		return p.parseExprAtom(nil, false, false), false
	}
	return p.parseIdent(true), false
}

// Parse object or class method.
func (p *Parser) parseMethod(isGenerator, isAsync, allowDirectSuper bool) *ast.FunctionExpression {
	node := &ast.FunctionExpression{Span: p.startNode()}
	oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos

	node.Generator = isGenerator
	node.Async = isAsync

	p.yieldPos = 0
	p.awaitPos = 0
	p.awaitIdentPos = 0
	flags := functionFlags(isAsync, isGenerator) | scopeSuper
	if allowDirectSuper {
		flags |= scopeDirectSuper
	}
	p.enterScope(flags)

	p.expect(tt.parenL)
	node.Params = p.parseBindingList(tt.parenR, false, true)
	p.checkYieldAwaitInDefaultParams()
	body, _ := p.parseFunctionBody(node.Start, nil, node.Params, false, true, false)
	node.Body = body.(*ast.BlockStatement)

	p.yieldPos = oldYieldPos
	p.awaitPos = oldAwaitPos
	p.awaitIdentPos = oldAwaitIdentPos
	p.finishNode(node)
	return node
}

// Parse arrow function expression with given parameters. A rest
// parameter parsed by the parenthesized form is passed separately.
func (p *Parser) parseArrowExpression(span ast.Span, params []ast.Expression, rest *ast.RestElement, isAsync, forInit bool) ast.Expression {
	node := &ast.ArrowFunctionExpression{Span: span, Async: isAsync}
	oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos

	p.enterScope(functionFlags(isAsync, false) | scopeArrow)

	p.yieldPos = 0
	p.awaitPos = 0
	p.awaitIdentPos = 0

	node.Params = p.toAssignableList(params, true, InvalidAssignmentTarget)
	if rest != nil {
		node.Params = append(node.Params, rest)
	}
	node.Body, node.Expression = p.parseFunctionBody(node.Start, nil, node.Params, true, false, forInit)

	p.yieldPos = oldYieldPos
	p.awaitPos = oldAwaitPos
	p.awaitIdentPos = oldAwaitIdentPos
	p.finishNode(node)
	return node
}

// Parse function body and check parameters. The caller has entered the
// function scope; it is left here.
func (p *Parser) parseFunctionBody(start int, id *ast.Identifier, params []ast.Pattern, isArrowFunction, isMethod, forInit bool) (ast.Node, bool) {
	defer p.exitScope()

	if isArrowFunction && p.typ != tt.braceL {
		body := p.parseMaybeAssign(forInit, nil)
		p.checkParams(params, false)
		return body, true
	}

	oldStrict, useStrict := p.strict, false
	// Start a new scope with regard to labels and the `inFunction`
	// flag (restore them to their old value afterwards).
	nonSimple := !isSimpleParamList(params)
	if !oldStrict || nonSimple {
		useStrict = p.strictDirective(p.end)
		// If this is a strict mode function, verify that argument names
		// are not repeated, and it does not try to bind the words `eval`
		// or `arguments`.
		if useStrict && nonSimple {
			p.raise(start, StrictModeViolation, "Illegal 'use strict' directive in function with non-simple parameter list")
		}
	}
	oldLabels := p.labels
	p.labels = nil
	if useStrict {
		p.strict = true
	}

	// Add the params to varDeclaredNames to ensure that an error is thrown
	// if a let/const declaration in the function clashes with one of the params.
	p.checkParams(params, !oldStrict && !useStrict && !isArrowFunction && !isMethod && !nonSimple)
	// Ensure the function name isn't a forbidden identifier in strict mode, e.g. 'eval'
	if p.strict && id != nil {
		p.checkLValSimple(id, bindOutside, nil)
	}
	body := p.parseBlock(false, useStrict && !oldStrict)
	p.adaptDirectivePrologue(body.Body)
	p.labels = oldLabels
	return body, false
}

func isSimpleParamList(params []ast.Pattern) bool {
	for _, param := range params {
		if _, ok := param.(*ast.Identifier); !ok {
			return false
		}
	}
	return true
}

// Checks function params for various disallowed patterns such as using
// "eval" or "arguments" and duplicate parameters.
func (p *Parser) checkParams(params []ast.Pattern, allowDuplicates bool) {
	var nameHash map[string]bool
	if !allowDuplicates {
		nameHash = map[string]bool{}
	}
	for _, param := range params {
		p.checkLValInnerPattern(param, bindVar, nameHash)
	}
}

// Parses a comma-separated list of expressions, and returns them as
// an array. `close` is the token type that ends the list, and
// `allowEmpty` can be turned on to allow subsequent commas with
// nothing in between them to be parsed as nil (which is needed
// for array literals).
func (p *Parser) parseExprList(close *TokenType, allowTrailingComma, allowEmpty bool, refDestructuringErrors *destructuringErrors) []ast.Expression {
	var elts []ast.Expression
	first := true
	for !p.eat(close) {
		if !first {
			p.expect(tt.comma)
			if allowTrailingComma && p.afterTrailingComma(close, false) {
				break
			}
		} else {
			first = false
		}

		var elt ast.Expression
		if allowEmpty && p.typ == tt.comma {
			elt = nil
		} else if p.typ == tt.ellipsis {
			elt = p.parseSpread(refDestructuringErrors)
			if refDestructuringErrors != nil && p.typ == tt.comma && refDestructuringErrors.trailingComma < 0 {
				refDestructuringErrors.trailingComma = p.start
			}
		} else {
			elt = p.parseMaybeAssign(false, refDestructuringErrors)
		}
		elts = append(elts, elt)
	}
	return elts
}

func (p *Parser) checkUnreserved(id *ast.Identifier) {
	start, name := id.Start, id.Name
	if p.inGenerator() && name == "yield" {
		p.raise(start, IllegalYieldOrAwaitUsage, "Cannot use 'yield' as identifier inside a generator")
	}
	if p.inAsync() && name == "await" {
		p.raise(start, IllegalYieldOrAwaitUsage, "Cannot use 'await' as identifier inside an async function")
	}
	if name == "arguments" && p.inClassFieldInit() {
		p.raise(start, ReservedWordMisuse, "Cannot use 'arguments' in class field initializer")
	}
	if name == "arguments" && p.currentThisScope().flags&scopeClassStaticBlock != 0 ||
		name == "await" && p.inClassStaticBlock() {
		p.raise(start, ReservedWordMisuse, "Cannot use "+name+" in class static initialization block")
	}
	if keywords[name] {
		p.raise(start, ReservedWordMisuse, "Unexpected keyword '"+name+"'")
	}
	re := p.reservedWords
	if p.strict {
		re = p.reservedWordsStrict
	}
	if re[name] {
		if !p.inAsync() && name == "await" {
			p.raise(start, IllegalYieldOrAwaitUsage, "Cannot use keyword 'await' outside an async function")
		}
		p.raise(start, ReservedWordMisuse, "The keyword '"+name+"' is reserved")
	}
}

// Parse the next token as an identifier. If `liberal` is true (used
// when parsing properties), it will also convert keywords into
// identifiers.
func (p *Parser) parseIdent(liberal bool) *ast.Identifier {
	node := p.parseIdentNode()
	p.step(liberal)
	p.finishNode(node)
	if !liberal {
		p.checkUnreserved(node)
		if node.Name == "await" && p.awaitIdentPos == 0 {
			p.awaitIdentPos = node.Start
		}
	}
	return node
}

func (p *Parser) parseIdentNode() *ast.Identifier {
	node := &ast.Identifier{Span: p.startNode()}
	switch {
	case p.typ == tt.name:
		node.Name = p.value.(string)
	case p.typ.keyword != "":
		node.Name = p.typ.keyword
		p.typ = tt.name
	default:
		p.unexpected()
	}
	return node
}

func (p *Parser) parsePrivateIdent() *ast.PrivateIdentifier {
	node := &ast.PrivateIdentifier{Span: p.startNode()}
	if p.typ != tt.privateID {
		p.unexpected()
	}
	node.Name = p.value.(string)
	p.next()
	p.finishNode(node)

	// For validating existence
	if len(p.privateNameStack) == 0 {
		p.raise(node.Start, UnexpectedToken, "Private field '#"+node.Name+"' must be declared in an enclosing class")
	}
	frame := p.privateNameStack[len(p.privateNameStack)-1]
	frame.used = append(frame.used, node)
	return node
}

// Parses yield expression inside generator.
func (p *Parser) parseYield(forInit bool) ast.Expression {
	if p.yieldPos == 0 {
		p.yieldPos = p.start
	}

	node := &ast.YieldExpression{Span: p.startNode()}
	p.next()
	if p.typ == tt.semi || p.canInsertSemicolon() || p.typ != tt.star && !p.startsExpr() {
		node.Delegate = false
	} else {
		node.Delegate = p.eat(tt.star)
		node.Argument = p.parseMaybeAssign(forInit, nil)
	}
	p.finishNode(node)
	return node
}

// startsExpr reports whether the current token can start an expression.
// A slash token does, as the start of a regular expression.
func (p *Parser) startsExpr() bool {
	return p.typ.startsExpr || p.typ == tt.slash || p.typ == tt.assign && p.value == "/="
}

func (p *Parser) parseAwait(forInit bool) ast.Expression {
	if p.awaitPos == 0 {
		p.awaitPos = p.start
	}

	node := &ast.AwaitExpression{Span: p.startNode()}
	p.next()
	node.Argument = p.parseMaybeUnary(nil, true, false, forInit)
	p.finishNode(node)
	return node
}
