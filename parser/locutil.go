package parser

import "github.com/devside/esparse/ast"

// The getLineInfo function is mostly useful when the locations option is
// off (for performance reasons) and you want to find the line/column
// position for a given byte offset. input should be the code string that
// the offset refers into.
func getLineInfo(input string, offset int) ast.Position {
	if offset > len(input) {
		offset = len(input)
	}
	line, cur := 1, 0
	for {
		nextBreak := nextLineBreak(input, cur, offset)
		if nextBreak < 0 {
			return ast.Position{Line: line, Column: offset - cur}
		}
		line++
		cur = nextBreak
	}
}

func (p *Parser) sourceLocation(start, end ast.Position) *ast.SourceLocation {
	return &ast.SourceLocation{Source: p.options.SourceFile, Start: start, End: end}
}
