// Package ast declares the syntax tree produced by the parser package.
//
// The tree follows the ESTree shape. Every concrete node is a pointer to a
// struct that embeds Span. Node kinds are grouped into closed sets by the
// Expression, Statement, Declaration and Pattern interfaces; the marker
// methods are unexported so no type outside this package can join a group,
// and a type switch over a group is exhaustive.
package ast

// Position is a line/column pair. Lines are 1-based, columns are 0-based
// byte offsets from the start of the line.
type Position struct {
	Line   int
	Column int
}

// Offset returns a position n bytes further along the same line.
func (p Position) Offset(n int) Position {
	return Position{Line: p.Line, Column: p.Column + n}
}

// SourceLocation is attached to nodes when locations are requested.
type SourceLocation struct {
	Source string
	Start  Position
	End    Position
}

// Span holds the source extent of a node. Start and End are byte offsets
// into the parsed input; Loc and Range are only set on request.
type Span struct {
	Start int
	End   int
	Loc   *SourceLocation
	Range *[2]int
}

// Pos returns the span itself so that every node embedding Span satisfies
// Node.
func (s *Span) Pos() *Span { return s }

// Node is implemented by every tree node.
type Node interface {
	Pos() *Span
	// Type returns the ESTree type name of the node.
	Type() string
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	exprNode()
}

// Statement is a node that may appear in a statement list.
type Statement interface {
	Node
	stmtNode()
}

// Declaration is a statement that introduces bindings.
type Declaration interface {
	Statement
	declNode()
}

// Pattern is a binding or assignment target.
type Pattern interface {
	Node
	patternNode()
}

// ObjectMember is an entry of an object literal: *Property or *SpreadElement.
type ObjectMember interface {
	Node
	objectMember()
}

// PatternMember is an entry of an object pattern: *AssignmentProperty or
// *RestElement.
type PatternMember interface {
	Node
	patternMember()
}

// ClassElement is a member of a class body.
type ClassElement interface {
	Node
	classElement()
}

// ImportClause is one of the specifier kinds of an import declaration.
type ImportClause interface {
	Node
	importClause()
}

// Program is the root of every tree.
type Program struct {
	Span
	Body       []Statement
	SourceType string
}

func (*Program) Type() string { return "Program" }
