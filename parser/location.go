package parser

import "github.com/devside/esparse/ast"

// This function is used to raise exceptions on parse errors. It takes an
// offset into the current input to indicate the location of the error,
// and unwinds to the entry point with a *SyntaxError.
func (p *Parser) raise(pos int, kind Kind, message string) {
	panic(&SyntaxError{
		Kind:     kind,
		Message:  message,
		Pos:      pos,
		Loc:      getLineInfo(p.input, pos),
		RaisedAt: p.pos,
	})
}

func (p *Parser) curPosition() ast.Position {
	return ast.Position{Line: p.curLine, Column: p.pos - p.lineStart}
}
