package ast

// ExpressionStatement carries the raw directive text, without quotes, when
// the statement belongs to a directive prologue.
type ExpressionStatement struct {
	Span
	Expression Expression
	Directive  string
}

type BlockStatement struct {
	Span
	Body []Statement
}

type EmptyStatement struct {
	Span
}

type DebuggerStatement struct {
	Span
}

type WithStatement struct {
	Span
	Object Expression
	Body   Statement
}

type ReturnStatement struct {
	Span
	Argument Expression
}

type LabeledStatement struct {
	Span
	Label *Identifier
	Body  Statement
}

type BreakStatement struct {
	Span
	Label *Identifier
}

type ContinueStatement struct {
	Span
	Label *Identifier
}

type IfStatement struct {
	Span
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

type SwitchStatement struct {
	Span
	Discriminant Expression
	Cases        []*SwitchCase
}

// SwitchCase has a nil Test for the default clause.
type SwitchCase struct {
	Span
	Test       Expression
	Consequent []Statement
}

type ThrowStatement struct {
	Span
	Argument Expression
}

type TryStatement struct {
	Span
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

// CatchClause has a nil Param for `catch {}`.
type CatchClause struct {
	Span
	Param Pattern
	Body  *BlockStatement
}

type WhileStatement struct {
	Span
	Test Expression
	Body Statement
}

type DoWhileStatement struct {
	Span
	Body Statement
	Test Expression
}

// ForStatement Init is nil, a *VariableDeclaration or an Expression.
type ForStatement struct {
	Span
	Init   Node
	Test   Expression
	Update Expression
	Body   Statement
}

// ForInStatement Left is a *VariableDeclaration or a Pattern.
type ForInStatement struct {
	Span
	Left  Node
	Right Expression
	Body  Statement
}

// ForOfStatement Left is a *VariableDeclaration or a Pattern.
type ForOfStatement struct {
	Span
	Left  Node
	Right Expression
	Body  Statement
	Await bool
}

type FunctionDeclaration struct {
	Span
	Function
}

// VariableDeclaration Kind is "var", "let" or "const".
type VariableDeclaration struct {
	Span
	Kind         string
	Declarations []*VariableDeclarator
}

type VariableDeclarator struct {
	Span
	ID   Pattern
	Init Expression
}

// Class holds the parts shared by class declarations and expressions.
type Class struct {
	ID         *Identifier
	SuperClass Expression
	Body       *ClassBody
}

type ClassDeclaration struct {
	Span
	Class
}

type ClassBody struct {
	Span
	Body []ClassElement
}

// MethodDefinition Kind is "constructor", "method", "get" or "set".
type MethodDefinition struct {
	Span
	Key      Expression
	Value    *FunctionExpression
	Kind     string
	Computed bool
	Static   bool
}

type PropertyDefinition struct {
	Span
	Key      Expression
	Value    Expression
	Computed bool
	Static   bool
}

type StaticBlock struct {
	Span
	Body []Statement
}

func (*ExpressionStatement) Type() string { return "ExpressionStatement" }
func (*BlockStatement) Type() string      { return "BlockStatement" }
func (*EmptyStatement) Type() string      { return "EmptyStatement" }
func (*DebuggerStatement) Type() string   { return "DebuggerStatement" }
func (*WithStatement) Type() string       { return "WithStatement" }
func (*ReturnStatement) Type() string     { return "ReturnStatement" }
func (*LabeledStatement) Type() string    { return "LabeledStatement" }
func (*BreakStatement) Type() string      { return "BreakStatement" }
func (*ContinueStatement) Type() string   { return "ContinueStatement" }
func (*IfStatement) Type() string         { return "IfStatement" }
func (*SwitchStatement) Type() string     { return "SwitchStatement" }
func (*SwitchCase) Type() string          { return "SwitchCase" }
func (*ThrowStatement) Type() string      { return "ThrowStatement" }
func (*TryStatement) Type() string        { return "TryStatement" }
func (*CatchClause) Type() string         { return "CatchClause" }
func (*WhileStatement) Type() string      { return "WhileStatement" }
func (*DoWhileStatement) Type() string    { return "DoWhileStatement" }
func (*ForStatement) Type() string        { return "ForStatement" }
func (*ForInStatement) Type() string      { return "ForInStatement" }
func (*ForOfStatement) Type() string      { return "ForOfStatement" }
func (*FunctionDeclaration) Type() string { return "FunctionDeclaration" }
func (*VariableDeclaration) Type() string { return "VariableDeclaration" }
func (*VariableDeclarator) Type() string  { return "VariableDeclarator" }
func (*ClassDeclaration) Type() string    { return "ClassDeclaration" }
func (*ClassBody) Type() string           { return "ClassBody" }
func (*MethodDefinition) Type() string    { return "MethodDefinition" }
func (*PropertyDefinition) Type() string  { return "PropertyDefinition" }
func (*StaticBlock) Type() string         { return "StaticBlock" }

func (*ExpressionStatement) stmtNode() {}
func (*BlockStatement) stmtNode()      {}
func (*EmptyStatement) stmtNode()      {}
func (*DebuggerStatement) stmtNode()   {}
func (*WithStatement) stmtNode()       {}
func (*ReturnStatement) stmtNode()     {}
func (*LabeledStatement) stmtNode()    {}
func (*BreakStatement) stmtNode()      {}
func (*ContinueStatement) stmtNode()   {}
func (*IfStatement) stmtNode()         {}
func (*SwitchStatement) stmtNode()     {}
func (*ThrowStatement) stmtNode()      {}
func (*TryStatement) stmtNode()        {}
func (*WhileStatement) stmtNode()      {}
func (*DoWhileStatement) stmtNode()    {}
func (*ForStatement) stmtNode()        {}
func (*ForInStatement) stmtNode()      {}
func (*ForOfStatement) stmtNode()      {}
func (*FunctionDeclaration) stmtNode() {}
func (*VariableDeclaration) stmtNode() {}
func (*ClassDeclaration) stmtNode()    {}

func (*FunctionDeclaration) declNode() {}
func (*VariableDeclaration) declNode() {}
func (*ClassDeclaration) declNode()    {}

func (*MethodDefinition) classElement()   {}
func (*PropertyDefinition) classElement() {}
func (*StaticBlock) classElement()        {}
