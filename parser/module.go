package parser

import (
	"strconv"

	"github.com/devside/esparse/ast"
)

func (p *Parser) parseExportAllDeclaration(span ast.Span, exports map[string]bool) ast.Statement {
	node := &ast.ExportAllDeclaration{Span: span}
	if p.eatContextual("as") {
		node.Exported = p.parseModuleExportName()
		p.checkExport(exports, exportName(node.Exported), p.lastTokStart)
	}
	p.expectContextual("from")
	if p.typ != tt.str {
		p.unexpected()
	}
	node.Source = p.parseLiteral(p.value)
	p.semicolon()
	p.finishNode(node)
	return node
}

// Parses module export declaration.
func (p *Parser) parseExport(span ast.Span, exports map[string]bool) ast.Statement {
	p.next()
	// export * from '...'
	if p.eat(tt.star) {
		return p.parseExportAllDeclaration(span, exports)
	}
	if p.eat(tt._default) { // export default ...
		p.checkExport(exports, "default", p.lastTokStart)
		node := &ast.ExportDefaultDeclaration{Span: span}
		node.Declaration = p.parseExportDefaultDeclaration()
		p.finishNode(node)
		return node
	}
	node := &ast.ExportNamedDeclaration{Span: span}
	// export var|const|let|function|class ...
	if p.shouldParseExportStatement() {
		decl, ok := p.parseStatement("", false, nil).(ast.Declaration)
		if !ok {
			p.unexpectedAt(span.Start)
		}
		node.Declaration = decl
		switch decl := decl.(type) {
		case *ast.VariableDeclaration:
			p.checkVariableExport(exports, decl.Declarations)
		case *ast.FunctionDeclaration:
			p.checkExport(exports, decl.ID.Name, decl.ID.Start)
		case *ast.ClassDeclaration:
			p.checkExport(exports, decl.ID.Name, decl.ID.Start)
		}
	} else { // export { x, y as z } [from '...']
		node.Specifiers = p.parseExportSpecifiers(exports)
		if p.eatContextual("from") {
			if p.typ != tt.str {
				p.unexpected()
			}
			node.Source = p.parseLiteral(p.value)
		} else {
			for _, spec := range node.Specifiers {
				local, ok := spec.Local.(*ast.Identifier)
				if !ok {
					p.raise(spec.Local.Pos().Start, UnexpectedToken, "A string literal cannot be used as an exported binding without `from`.")
				}
				// check for keywords used as local names
				p.checkUnreserved(local)
				// check if export is defined
				p.checkLocalExport(local)
			}
		}
		p.semicolon()
	}
	p.finishNode(node)
	return node
}

func (p *Parser) parseExportDefaultDeclaration() ast.Node {
	isAsync := p.typ != tt._function && p.isAsyncFunction()
	if p.typ == tt._function || isAsync {
		fNode := &ast.FunctionDeclaration{Span: p.startNode()}
		p.next()
		if isAsync {
			p.next()
		}
		p.parseFunction(fNode, &fNode.Function, funcStatement|funcNullableID, isAsync, false)
		return fNode
	}
	if p.typ == tt._class {
		cNode := &ast.ClassDeclaration{Span: p.startNode()}
		p.parseClass(cNode, &cNode.Class, true, true)
		return cNode
	}
	declaration := p.parseMaybeAssign(false, nil)
	p.semicolon()
	return declaration
}

func (p *Parser) checkExport(exports map[string]bool, name string, pos int) {
	if exports == nil {
		return
	}
	if exports[name] {
		p.raise(pos, DuplicateBinding, "Duplicate export '"+name+"'")
	}
	exports[name] = true
}

func (p *Parser) checkPatternExport(exports map[string]bool, pat ast.Node) {
	switch pat := pat.(type) {
	case *ast.Identifier:
		p.checkExport(exports, pat.Name, pat.Start)
	case *ast.ObjectPattern:
		for _, prop := range pat.Properties {
			p.checkPatternExport(exports, prop)
		}
	case *ast.ArrayPattern:
		for _, elt := range pat.Elements {
			if elt != nil {
				p.checkPatternExport(exports, elt)
			}
		}
	case *ast.AssignmentProperty:
		p.checkPatternExport(exports, pat.Value)
	case *ast.AssignmentPattern:
		p.checkPatternExport(exports, pat.Left)
	case *ast.RestElement:
		p.checkPatternExport(exports, pat.Argument)
	}
}

func (p *Parser) checkVariableExport(exports map[string]bool, decls []*ast.VariableDeclarator) {
	if exports == nil {
		return
	}
	for _, decl := range decls {
		p.checkPatternExport(exports, decl.ID)
	}
}

func (p *Parser) shouldParseExportStatement() bool {
	switch p.typ.keyword {
	case "var", "const", "class", "function":
		return true
	}
	return p.isLet("") || p.isAsyncFunction()
}

// Parses a comma-separated list of module exports.
func (p *Parser) parseExportSpecifier(exports map[string]bool) *ast.ExportSpecifier {
	node := &ast.ExportSpecifier{Span: p.startNode()}
	node.Local = p.parseModuleExportName()
	if p.eatContextual("as") {
		node.Exported = p.parseModuleExportName()
	} else {
		node.Exported = copyModuleExportName(node.Local)
	}
	p.checkExport(exports, exportName(node.Exported), node.Exported.Pos().Start)
	p.finishNode(node)
	return node
}

func (p *Parser) parseExportSpecifiers(exports map[string]bool) []*ast.ExportSpecifier {
	nodes := []*ast.ExportSpecifier{}
	first := true
	// export { x, y as z } [from '...']
	p.expect(tt.braceL)
	for !p.eat(tt.braceR) {
		if !first {
			p.expect(tt.comma)
			if p.afterTrailingComma(tt.braceR, false) {
				break
			}
		} else {
			first = false
		}
		nodes = append(nodes, p.parseExportSpecifier(exports))
	}
	return nodes
}

// Parses import declaration.
func (p *Parser) parseImport(span ast.Span) ast.Statement {
	node := &ast.ImportDeclaration{Span: span, Specifiers: []ast.ImportClause{}}
	p.next()

	// import '...'
	if p.typ != tt.str {
		node.Specifiers = p.parseImportSpecifiers()
		p.expectContextual("from")
		if p.typ != tt.str {
			p.unexpected()
		}
	}
	node.Source = p.parseLiteral(p.value)
	p.semicolon()
	p.finishNode(node)
	return node
}

func (p *Parser) parseImportSpecifier() *ast.ImportSpecifier {
	node := &ast.ImportSpecifier{Span: p.startNode()}
	node.Imported = p.parseModuleExportName()
	if p.eatContextual("as") {
		node.Local = p.parseIdent(false)
	} else {
		imported, ok := node.Imported.(*ast.Identifier)
		if !ok {
			// A string name needs a local binding.
			p.raise(node.Imported.Pos().Start, InvalidAssignmentTarget, "Binding rvalue")
		}
		p.checkUnreserved(imported)
		node.Local = copyIdent(imported)
	}
	p.checkLValSimple(node.Local, bindLexical, nil)
	p.finishNode(node)
	return node
}

func (p *Parser) parseImportDefaultSpecifier() *ast.ImportDefaultSpecifier {
	// import defaultObj, { x, y as z } from '...'
	node := &ast.ImportDefaultSpecifier{Span: p.startNode()}
	node.Local = p.parseIdent(false)
	p.checkLValSimple(node.Local, bindLexical, nil)
	p.finishNode(node)
	return node
}

func (p *Parser) parseImportNamespaceSpecifier() *ast.ImportNamespaceSpecifier {
	node := &ast.ImportNamespaceSpecifier{Span: p.startNode()}
	p.next()
	p.expectContextual("as")
	node.Local = p.parseIdent(false)
	p.checkLValSimple(node.Local, bindLexical, nil)
	p.finishNode(node)
	return node
}

// Parses a comma-separated list of module imports.
func (p *Parser) parseImportSpecifiers() []ast.ImportClause {
	nodes := []ast.ImportClause{}
	if p.typ == tt.name {
		nodes = append(nodes, p.parseImportDefaultSpecifier())
		if !p.eat(tt.comma) {
			return nodes
		}
	}
	if p.typ == tt.star {
		return append(nodes, p.parseImportNamespaceSpecifier())
	}
	p.expect(tt.braceL)
	first := true
	for !p.eat(tt.braceR) {
		if !first {
			p.expect(tt.comma)
			if p.afterTrailingComma(tt.braceR, false) {
				break
			}
		} else {
			first = false
		}
		nodes = append(nodes, p.parseImportSpecifier())
	}
	return nodes
}

func (p *Parser) parseModuleExportName() ast.Expression {
	if p.typ == tt.str {
		lit := p.parseLiteral(p.value)
		if hasLoneSurrogate(lit.Raw) {
			p.raise(lit.Start, UnexpectedToken, "An export name cannot include a lone surrogate.")
		}
		return lit
	}
	return p.parseIdent(true)
}

func exportName(name ast.Expression) string {
	switch name := name.(type) {
	case *ast.Identifier:
		return name.Name
	case *ast.Literal:
		s, _ := name.Value.(string)
		return s
	}
	return ""
}

func copyModuleExportName(name ast.Expression) ast.Expression {
	switch name := name.(type) {
	case *ast.Identifier:
		return copyIdent(name)
	case *ast.Literal:
		c := *name
		c.Span = copySpan(&name.Span)
		return &c
	}
	return name
}

// hasLoneSurrogate reports whether the raw text of a string literal
// spells a UTF-16 surrogate half through \u escapes without its pair.
// Decoded strings cannot show this since an unpaired half decodes to
// U+FFFD.
func hasLoneSurrogate(raw string) bool {
	pendingHigh := false
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' {
			if pendingHigh {
				return true
			}
			continue
		}
		i++
		if i >= len(raw) {
			break
		}
		if raw[i] != 'u' {
			if pendingHigh {
				return true
			}
			continue
		}
		code, n := unicodeEscapeValue(raw[i+1:])
		i += n
		switch {
		case code >= 0xd800 && code <= 0xdbff:
			if pendingHigh {
				return true
			}
			pendingHigh = true
		case code >= 0xdc00 && code <= 0xdfff:
			if !pendingHigh {
				return true
			}
			pendingHigh = false
		default:
			if pendingHigh {
				return true
			}
		}
	}
	return pendingHigh
}

// unicodeEscapeValue decodes the hex part of a \u escape, either XXXX or
// {X...}, returning the code point and the number of bytes it spans.
func unicodeEscapeValue(s string) (int, int) {
	if len(s) > 0 && s[0] == '{' {
		end := 1
		for end < len(s) && s[end] != '}' {
			end++
		}
		v, err := strconv.ParseInt(s[1:end], 16, 32)
		if err != nil {
			return -1, end
		}
		return int(v), end + 1
	}
	if len(s) < 4 {
		return -1, len(s)
	}
	v, err := strconv.ParseInt(s[:4], 16, 32)
	if err != nil {
		return -1, 4
	}
	return int(v), 4
}
