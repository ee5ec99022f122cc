package parser

import "github.com/devside/esparse/ast"

// Start an AST node, attaching a location and range if requested.
func (p *Parser) startNode() ast.Span {
	return p.startNodeAt(p.start, p.startLoc)
}

func (p *Parser) startNodeAt(pos int, loc ast.Position) ast.Span {
	s := ast.Span{Start: pos}
	if p.options.Locations {
		s.Loc = p.sourceLocation(loc, ast.Position{})
	}
	if p.options.Ranges {
		s.Range = &[2]int{pos, 0}
	}
	return s
}

// Finish an AST node at the end of the previous token.
func (p *Parser) finishNode(n ast.Node) {
	p.finishNodeAt(n, p.lastTokEnd, p.lastTokEndLoc)
}

// Finish node at given position
func (p *Parser) finishNodeAt(n ast.Node, pos int, loc ast.Position) {
	s := n.Pos()
	s.End = pos
	if s.Loc != nil {
		s.Loc.End = loc
	}
	if s.Range != nil {
		s.Range[1] = pos
	}
}

// copySpan returns a span with the same extent as s that shares no
// memory with it.
func copySpan(s *ast.Span) ast.Span {
	c := ast.Span{Start: s.Start, End: s.End}
	if s.Loc != nil {
		loc := *s.Loc
		c.Loc = &loc
	}
	if s.Range != nil {
		r := *s.Range
		c.Range = &r
	}
	return c
}
