package parser

import "github.com/devside/esparse/ast"

// Parse a class declaration or literal (depending on the
// `isStatement` parameter). nullableID allows a declaration without a
// name, as in `export default class {}`.
func (p *Parser) parseClass(node ast.Node, cls *ast.Class, isStatement, nullableID bool) {
	p.next()

	// A class definition is always strict mode code.
	oldStrict := p.strict
	p.strict = true

	p.parseClassID(cls, isStatement, nullableID)
	p.parseClassSuper(cls)
	declared := p.enterClassBody()
	classBody := &ast.ClassBody{Span: p.startNode(), Body: []ast.ClassElement{}}
	hadConstructor := false
	p.expect(tt.braceL)
	for p.typ != tt.braceR {
		element := p.parseClassElement(cls.SuperClass != nil)
		if element == nil {
			continue
		}
		classBody.Body = append(classBody.Body, element)
		if method, ok := element.(*ast.MethodDefinition); ok && method.Kind == "constructor" {
			if hadConstructor {
				p.raise(method.Start, ClassBodyError, "Duplicate constructor in the same class")
			}
			hadConstructor = true
		} else if key, ok := classElementKey(element).(*ast.PrivateIdentifier); ok && isPrivateNameConflicted(declared, element) {
			p.raise(key.Start, DuplicateBinding, "Identifier '#"+key.Name+"' has already been declared")
		}
	}
	p.strict = oldStrict
	p.next()
	p.finishNode(classBody)
	cls.Body = classBody
	p.exitClassBody()
	p.finishNode(node)
}

func classElementKey(element ast.ClassElement) ast.Expression {
	switch element := element.(type) {
	case *ast.MethodDefinition:
		return element.Key
	case *ast.PropertyDefinition:
		return element.Key
	}
	return nil
}

// isPrivateNameConflicted records the private name of element in
// declared and reports whether it was already taken. A getter and a
// setter with the same staticness may share a name.
func isPrivateNameConflicted(declared map[string]string, element ast.ClassElement) bool {
	name := classElementKey(element).(*ast.PrivateIdentifier).Name
	curr := declared[name]

	next := "true"
	if method, ok := element.(*ast.MethodDefinition); ok && (method.Kind == "get" || method.Kind == "set") {
		prefix := "i"
		if method.Static {
			prefix = "s"
		}
		next = prefix + method.Kind
	}

	// `class { get #a(){}; static set #a(_){} }` is also conflict.
	switch {
	case curr == "iget" && next == "iset", curr == "iset" && next == "iget",
		curr == "sget" && next == "sset", curr == "sset" && next == "sget":
		declared[name] = "true"
		return false
	case curr == "":
		declared[name] = next
		return false
	}
	return true
}

func (p *Parser) parseClassElement(constructorAllowsSuper bool) ast.ClassElement {
	if p.eat(tt.semi) {
		return nil
	}

	span := p.startNode()
	keyName := ""
	isGenerator, isAsync, isStatic := false, false, false
	kind := "method"

	if p.eatContextual("static") {
		// Parse static init block
		if p.eat(tt.braceL) {
			return p.parseClassStaticBlock(span)
		}
		if p.isClassElementNameStart() || p.typ == tt.star {
			isStatic = true
		} else {
			keyName = "static"
		}
	}
	if keyName == "" && p.eatContextual("async") {
		if (p.isClassElementNameStart() || p.typ == tt.star) && !p.canInsertSemicolon() {
			isAsync = true
		} else {
			keyName = "async"
		}
	}
	if keyName == "" && p.eat(tt.star) {
		isGenerator = true
	}
	if keyName == "" && !isAsync && !isGenerator {
		lastValue, _ := p.value.(string)
		if p.eatContextual("get") || p.eatContextual("set") {
			if p.isClassElementNameStart() {
				kind = lastValue
			} else {
				keyName = lastValue
			}
		}
	}

	// Parse element name
	var key ast.Expression
	computed := false
	if keyName != "" {
		// 'async', 'get', 'set', or 'static' were not a keyword contextually.
		// The last token is any of those. Make it the element name.
		id := &ast.Identifier{Span: p.startNodeAt(p.lastTokStart, p.lastTokStartLoc), Name: keyName}
		p.finishNode(id)
		key = id
	} else {
		key, computed = p.parseClassElementName()
	}

	// Parse element value
	if p.typ == tt.parenL || kind != "method" || isGenerator || isAsync {
		isConstructor := !isStatic && checkKeyName(key, computed, "constructor")
		allowsDirectSuper := isConstructor && constructorAllowsSuper
		if isConstructor && kind != "method" {
			p.raise(key.Pos().Start, ClassBodyError, "Constructor can't have get/set modifier")
		}
		method := &ast.MethodDefinition{Span: span, Key: key, Computed: computed, Static: isStatic, Kind: kind}
		if isConstructor {
			method.Kind = "constructor"
		}
		p.parseClassMethod(method, isGenerator, isAsync, allowsDirectSuper)
		return method
	}
	field := &ast.PropertyDefinition{Span: span, Key: key, Computed: computed, Static: isStatic}
	p.parseClassField(field)
	return field
}

func (p *Parser) isClassElementNameStart() bool {
	return p.typ == tt.name ||
		p.typ == tt.privateID ||
		p.typ == tt.num ||
		p.typ == tt.str ||
		p.typ == tt.bracketL ||
		p.typ.keyword != ""
}

func (p *Parser) parseClassElementName() (ast.Expression, bool) {
	if p.typ == tt.privateID {
		if p.value == "constructor" {
			p.raise(p.start, ClassBodyError, "Classes can't have an element named '#constructor'")
		}
		return p.parsePrivateIdent(), false
	}
	return p.parsePropertyName()
}

func (p *Parser) parseClassMethod(method *ast.MethodDefinition, isGenerator, isAsync, allowsDirectSuper bool) {
	// Check key and flags
	key := method.Key
	if method.Kind == "constructor" {
		if isGenerator {
			p.raise(key.Pos().Start, ClassBodyError, "Constructor can't be a generator")
		}
		if isAsync {
			p.raise(key.Pos().Start, ClassBodyError, "Constructor can't be an async method")
		}
	} else if method.Static && checkKeyName(key, method.Computed, "prototype") {
		p.raise(key.Pos().Start, ClassBodyError, "Classes may not have a static property named prototype")
	}

	// Parse value
	method.Value = p.parseMethod(isGenerator, isAsync, allowsDirectSuper)

	// Check value
	p.checkAccessorParams(method.Kind, method.Value)

	p.finishNode(method)
}

func (p *Parser) parseClassField(field *ast.PropertyDefinition) {
	if checkKeyName(field.Key, field.Computed, "constructor") {
		p.raise(field.Key.Pos().Start, ClassBodyError, "Classes can't have a field named 'constructor'")
	} else if field.Static && checkKeyName(field.Key, field.Computed, "prototype") {
		p.raise(field.Key.Pos().Start, ClassBodyError, "Classes can't have a static field named 'prototype'")
	}

	if p.eat(tt.eq) {
		// The initializer is evaluated like a method body: `this` and
		// `super.x` refer to the instance, `arguments` is forbidden.
		p.enterScope(scopeClassFieldInit | scopeSuper)
		field.Value = p.parseMaybeAssign(false, nil)
		p.exitScope()
	}
	p.semicolon()

	p.finishNode(field)
}

func (p *Parser) parseClassStaticBlock(span ast.Span) *ast.StaticBlock {
	node := &ast.StaticBlock{Span: span, Body: []ast.Statement{}}

	oldLabels := p.labels
	p.labels = nil
	p.enterScope(scopeClassStaticBlock | scopeSuper)
	for p.typ != tt.braceR {
		node.Body = append(node.Body, p.parseStatement("", false, nil))
	}
	p.next()
	p.exitScope()
	p.labels = oldLabels

	p.finishNode(node)
	return node
}

func (p *Parser) parseClassID(cls *ast.Class, isStatement, nullableID bool) {
	if p.typ == tt.name {
		cls.ID = p.parseIdent(false)
		if isStatement {
			p.checkLValSimple(cls.ID, bindLexical, nil)
		} else {
			// The name of a class expression is bound only inside the
			// class, which is strict code.
			p.checkLValSimple(cls.ID, bindOutside, nil)
		}
	} else if isStatement && !nullableID {
		p.unexpected()
	}
}

func (p *Parser) parseClassSuper(cls *ast.Class) {
	if p.eat(tt._extends) {
		cls.SuperClass = p.parseExprSubscripts(nil, false)
	}
}

func (p *Parser) enterClassBody() map[string]string {
	frame := &privateNameFrame{declared: map[string]string{}}
	p.privateNameStack = append(p.privateNameStack, frame)
	return frame.declared
}

// exitClassBody hands private names used but not declared in the class
// to the enclosing class, or reports the first of them at the outermost
// class.
func (p *Parser) exitClassBody() {
	n := len(p.privateNameStack)
	frame := p.privateNameStack[n-1]
	p.privateNameStack = p.privateNameStack[:n-1]
	var parent *privateNameFrame
	if n > 1 {
		parent = p.privateNameStack[n-2]
	}
	for _, id := range frame.used {
		if _, ok := frame.declared[id.Name]; ok {
			continue
		}
		if parent != nil {
			parent.used = append(parent.used, id)
		} else {
			p.raise(id.Start, UnexpectedToken, "Private field '#"+id.Name+"' must be declared in an enclosing class")
		}
	}
}

func checkKeyName(key ast.Expression, computed bool, name string) bool {
	if computed {
		return false
	}
	switch key := key.(type) {
	case *ast.Identifier:
		return key.Name == name
	case *ast.Literal:
		return key.Value == name
	}
	return false
}
