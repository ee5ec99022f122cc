package parser

import "github.com/devside/esparse/ast"

// Convert an existing expression into a pattern. The expression is left
// untouched; the returned pattern is built from fresh nodes that share
// only leaf subtrees with it. Raises if the expression is not a valid
// assignment target, or binding target when isBinding is set.
func (p *Parser) toAssignable(node ast.Node, isBinding bool, refDestructuringErrors *destructuringErrors) ast.Pattern {
	return p.toPattern(node, isBinding, refDestructuringErrors, InvalidAssignmentTarget)
}

// toPattern does the work of toAssignable. An invalid target is reported
// with kind, which is InvalidDestructuringTarget for the elements of an
// object or array pattern.
func (p *Parser) toPattern(node ast.Node, isBinding bool, refDestructuringErrors *destructuringErrors, kind Kind) ast.Pattern {
	switch node := node.(type) {
	case *ast.Identifier:
		if p.inAsync() && node.Name == "await" {
			p.raise(node.Start, IllegalYieldOrAwaitUsage, "Cannot use 'await' as identifier inside an async function")
		}
		return node

	case *ast.ObjectPattern, *ast.ArrayPattern, *ast.AssignmentPattern, *ast.RestElement:
		return node.(ast.Pattern)

	case *ast.ObjectExpression:
		p.checkPatternErrors(refDestructuringErrors, true)
		pattern := &ast.ObjectPattern{Span: copySpan(&node.Span)}
		for _, prop := range node.Properties {
			switch prop := prop.(type) {
			case *ast.Property:
				pattern.Properties = append(pattern.Properties, p.toAssignableProperty(prop, isBinding))
			case *ast.SpreadElement:
				rest := p.toPattern(prop, isBinding, nil, InvalidDestructuringTarget).(*ast.RestElement)
				switch rest.Argument.(type) {
				case *ast.ArrayPattern, *ast.ObjectPattern:
					p.raise(rest.Argument.Pos().Start, InvalidDestructuringTarget, "Unexpected token")
				}
				pattern.Properties = append(pattern.Properties, rest)
			}
		}
		return pattern

	case *ast.ArrayExpression:
		p.checkPatternErrors(refDestructuringErrors, true)
		return &ast.ArrayPattern{
			Span:     copySpan(&node.Span),
			Elements: p.toAssignableList(node.Elements, isBinding, InvalidDestructuringTarget),
		}

	case *ast.SpreadElement:
		arg := p.toPattern(node.Argument, isBinding, nil, InvalidDestructuringTarget)
		if _, ok := arg.(*ast.AssignmentPattern); ok {
			p.raise(arg.Pos().Start, InvalidDestructuringTarget, "Rest elements cannot have a default value")
		}
		return &ast.RestElement{Span: copySpan(&node.Span), Argument: arg}

	case *ast.AssignmentExpression:
		if node.Operator != "=" {
			p.raise(node.Left.Pos().End, InvalidDestructuringTarget, "Only '=' operator can be used for specifying default value.")
		}
		return &ast.AssignmentPattern{
			Span:  copySpan(&node.Span),
			Left:  p.toPattern(node.Left, isBinding, nil, kind),
			Right: node.Right,
		}

	case *ast.CoverInitializedName:
		return &ast.AssignmentPattern{
			Span:  copySpan(&node.Span),
			Left:  p.toPattern(node.Key, isBinding, nil, kind),
			Right: node.Init,
		}

	case *ast.ParenthesizedExpression:
		return p.toPattern(node.Expression, isBinding, refDestructuringErrors, kind)

	case *ast.ChainExpression:
		p.raise(node.Start, InvalidAssignmentTarget, "Optional chaining cannot appear in left-hand side")

	case *ast.MemberExpression:
		if !isBinding {
			return node
		}
	}
	p.raise(node.Pos().Start, kind, "Assigning to rvalue")
	return nil
}

func (p *Parser) toAssignableProperty(prop *ast.Property, isBinding bool) *ast.AssignmentProperty {
	if prop.Kind != "init" {
		p.raise(prop.Key.Pos().Start, InvalidDestructuringTarget, "Object pattern can't contain getter or setter")
	}
	return &ast.AssignmentProperty{
		Span:      copySpan(&prop.Span),
		Key:       prop.Key,
		Value:     p.toPattern(prop.Value, isBinding, nil, InvalidDestructuringTarget),
		Computed:  prop.Computed,
		Shorthand: prop.Shorthand,
	}
}

// Convert list of expression atoms to binding list.
func (p *Parser) toAssignableList(exprList []ast.Expression, isBinding bool, kind Kind) []ast.Pattern {
	list := make([]ast.Pattern, len(exprList))
	for i, elt := range exprList {
		if elt != nil {
			list[i] = p.toPattern(elt, isBinding, nil, kind)
		}
	}
	return list
}

// toSimpleAssignTarget returns the target of a compound assignment or
// update, which checkLValSimple has already accepted.
func (p *Parser) toSimpleAssignTarget(expr ast.Expression) ast.Pattern {
	switch expr := expr.(type) {
	case *ast.ParenthesizedExpression:
		return p.toSimpleAssignTarget(expr.Expression)
	case *ast.Identifier:
		return expr
	case *ast.MemberExpression:
		return expr
	}
	p.raise(expr.Pos().Start, InvalidAssignmentTarget, "Assigning to rvalue")
	return nil
}

// Parses spread element.
func (p *Parser) parseSpread(refDestructuringErrors *destructuringErrors) *ast.SpreadElement {
	node := &ast.SpreadElement{Span: p.startNode()}
	p.next()
	node.Argument = p.parseMaybeAssign(false, refDestructuringErrors)
	p.finishNode(node)
	return node
}

func (p *Parser) parseRestBinding() *ast.RestElement {
	node := &ast.RestElement{Span: p.startNode()}
	p.next()
	node.Argument = p.parseBindingAtom()
	p.finishNode(node)
	return node
}

// Parses lvalue (assignable) atom.
func (p *Parser) parseBindingAtom() ast.Pattern {
	switch p.typ {
	case tt.bracketL:
		node := &ast.ArrayPattern{Span: p.startNode()}
		p.next()
		node.Elements = p.parseBindingList(tt.bracketR, true, true)
		p.finishNode(node)
		return node
	case tt.braceL:
		return p.parseObjPattern()
	}
	return p.parseIdent(false)
}

func (p *Parser) parseBindingList(close *TokenType, allowEmpty, allowTrailingComma bool) []ast.Pattern {
	var elts []ast.Pattern
	first := true
	for !p.eat(close) {
		if first {
			first = false
		} else {
			p.expect(tt.comma)
		}
		if allowEmpty && p.typ == tt.comma {
			elts = append(elts, nil)
		} else if allowTrailingComma && p.afterTrailingComma(close, false) {
			break
		} else if p.typ == tt.ellipsis {
			rest := p.parseRestBinding()
			elts = append(elts, rest)
			if p.typ == tt.comma {
				p.raise(p.start, InvalidDestructuringTarget, "Comma is not permitted after the rest element")
			}
			p.expect(close)
			break
		} else {
			elts = append(elts, p.parseMaybeDefault(p.start, p.startLoc, nil))
		}
	}
	return elts
}

// parseObjPattern parses an object binding pattern.
func (p *Parser) parseObjPattern() *ast.ObjectPattern {
	node := &ast.ObjectPattern{Span: p.startNode()}
	first := true
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
		node.Properties = append(node.Properties, p.parsePatternProperty())
	}
	p.finishNode(node)
	return node
}

func (p *Parser) parsePatternProperty() ast.PatternMember {
	if p.typ == tt.ellipsis {
		rest := &ast.RestElement{Span: p.startNode()}
		p.next()
		rest.Argument = p.parseIdent(false)
		if p.typ == tt.comma {
			p.raise(p.start, InvalidDestructuringTarget, "Comma is not permitted after the rest element")
		}
		p.finishNode(rest)
		return rest
	}

	prop := &ast.AssignmentProperty{Span: p.startNode()}
	startPos, startLoc := p.start, p.startLoc
	prop.Key, prop.Computed = p.parsePropertyName()
	if p.eat(tt.colon) {
		prop.Value = p.parseMaybeDefault(p.start, p.startLoc, nil)
	} else if key, ok := prop.Key.(*ast.Identifier); ok && !prop.Computed {
		p.checkUnreserved(key)
		if key.Name == "await" && p.awaitIdentPos == 0 {
			p.awaitIdentPos = startPos
		}
		prop.Value = p.parseMaybeDefault(startPos, startLoc, copyIdent(key))
		prop.Shorthand = true
	} else {
		p.unexpected()
	}
	p.finishNode(prop)
	return prop
}

// Parses assignment pattern around given atom if possible.
func (p *Parser) parseMaybeDefault(startPos int, startLoc ast.Position, left ast.Pattern) ast.Pattern {
	if left == nil {
		left = p.parseBindingAtom()
	}
	if !p.eat(tt.eq) {
		return left
	}
	node := &ast.AssignmentPattern{Span: p.startNodeAt(startPos, startLoc)}
	node.Left = left
	node.Right = p.parseMaybeAssign(false, nil)
	p.finishNode(node)
	return node
}

func copyIdent(id *ast.Identifier) *ast.Identifier {
	return &ast.Identifier{Span: copySpan(&id.Span), Name: id.Name}
}

// The following three functions all verify that a node is an lvalue,
// something that can be bound, or assigned to. In order to do so, they
// perform a variety of checks:
//
// - Check that none of the bound/assigned-to identifiers are reserved
//   words.
// - Record name declarations for bindings in the appropriate scope.
// - Check duplicate argument names, if checkClashes is set.
//
// If a complex binding pattern is encountered (e.g., object and array
// destructuring), the entire pattern is recursively checked.
//
// checkLValSimple checks a simple target, which is an identifier or a
// member expression. checkLValPattern checks a whole pattern, and
// checkLValInnerPattern the parts of one that may hold defaults or rest
// elements.

func (p *Parser) checkLValSimple(expr ast.Node, bindingType int, checkClashes map[string]bool) {
	isBind := bindingType != bindNone

	switch expr := expr.(type) {
	case *ast.Identifier:
		if p.strict && p.reservedWordsStrictBind[expr.Name] {
			if isBind {
				p.raise(expr.Start, StrictModeViolation, "Binding "+expr.Name+" in strict mode")
			}
			p.raise(expr.Start, StrictModeViolation, "Assigning to "+expr.Name+" in strict mode")
		}
		if isBind {
			if bindingType == bindLexical && expr.Name == "let" {
				p.raise(expr.Start, ReservedWordMisuse, "let is disallowed as a lexically bound name")
			}
			if checkClashes != nil {
				if checkClashes[expr.Name] {
					p.raise(expr.Start, DuplicateBinding, "Argument name clash")
				}
				checkClashes[expr.Name] = true
			}
			if bindingType != bindOutside {
				p.declareName(expr.Name, bindingType, expr.Start)
			}
		}
		return

	case *ast.ChainExpression:
		p.raise(expr.Start, InvalidAssignmentTarget, "Optional chaining cannot appear in left-hand side")

	case *ast.MemberExpression:
		if isBind {
			p.raise(expr.Start, InvalidAssignmentTarget, "Binding member expression")
		}
		return

	case *ast.ParenthesizedExpression:
		if isBind {
			p.raise(expr.Start, InvalidAssignmentTarget, "Binding parenthesized expression")
		}
		p.checkLValSimple(expr.Expression, bindingType, checkClashes)
		return
	}

	if isBind {
		p.raise(expr.Pos().Start, InvalidAssignmentTarget, "Binding rvalue")
	}
	p.raise(expr.Pos().Start, InvalidAssignmentTarget, "Assigning to rvalue")
}

func (p *Parser) checkLValPattern(expr ast.Node, bindingType int, checkClashes map[string]bool) {
	switch expr := expr.(type) {
	case *ast.ObjectPattern:
		for _, prop := range expr.Properties {
			p.checkLValInnerPattern(prop, bindingType, checkClashes)
		}
	case *ast.ArrayPattern:
		for _, elem := range expr.Elements {
			if elem != nil {
				p.checkLValInnerPattern(elem, bindingType, checkClashes)
			}
		}
	default:
		p.checkLValSimple(expr, bindingType, checkClashes)
	}
}

func (p *Parser) checkLValInnerPattern(expr ast.Node, bindingType int, checkClashes map[string]bool) {
	switch expr := expr.(type) {
	case *ast.AssignmentProperty:
		p.checkLValInnerPattern(expr.Value, bindingType, checkClashes)
	case *ast.AssignmentPattern:
		p.checkLValPattern(expr.Left, bindingType, checkClashes)
	case *ast.RestElement:
		p.checkLValPattern(expr.Argument, bindingType, checkClashes)
	default:
		p.checkLValPattern(expr, bindingType, checkClashes)
	}
}
