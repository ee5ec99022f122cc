package ast

type ImportDeclaration struct {
	Span
	Specifiers []ImportClause
	Source     *Literal
}

// ImportSpecifier Imported is an *Identifier or a string *Literal.
type ImportSpecifier struct {
	Span
	Imported Expression
	Local    *Identifier
}

type ImportDefaultSpecifier struct {
	Span
	Local *Identifier
}

type ImportNamespaceSpecifier struct {
	Span
	Local *Identifier
}

// ExportNamedDeclaration has either a Declaration or a list of Specifiers,
// optionally re-exported from Source.
type ExportNamedDeclaration struct {
	Span
	Declaration Declaration
	Specifiers  []*ExportSpecifier
	Source      *Literal
}

// ExportSpecifier Local and Exported are *Identifier or string *Literal.
type ExportSpecifier struct {
	Span
	Local    Expression
	Exported Expression
}

// ExportDefaultDeclaration Declaration is a *FunctionDeclaration, a
// *ClassDeclaration (both possibly anonymous) or an Expression.
type ExportDefaultDeclaration struct {
	Span
	Declaration Node
}

type ExportAllDeclaration struct {
	Span
	Exported Expression
	Source   *Literal
}

func (*ImportDeclaration) Type() string        { return "ImportDeclaration" }
func (*ImportSpecifier) Type() string          { return "ImportSpecifier" }
func (*ImportDefaultSpecifier) Type() string   { return "ImportDefaultSpecifier" }
func (*ImportNamespaceSpecifier) Type() string { return "ImportNamespaceSpecifier" }
func (*ExportNamedDeclaration) Type() string   { return "ExportNamedDeclaration" }
func (*ExportSpecifier) Type() string          { return "ExportSpecifier" }
func (*ExportDefaultDeclaration) Type() string { return "ExportDefaultDeclaration" }
func (*ExportAllDeclaration) Type() string     { return "ExportAllDeclaration" }

func (*ImportDeclaration) stmtNode()        {}
func (*ExportNamedDeclaration) stmtNode()   {}
func (*ExportDefaultDeclaration) stmtNode() {}
func (*ExportAllDeclaration) stmtNode()     {}

func (*ImportSpecifier) importClause()          {}
func (*ImportDefaultSpecifier) importClause()   {}
func (*ImportNamespaceSpecifier) importClause() {}
