package ast

import "math/big"

// Identifier is both an identifier reference and a binding name.
type Identifier struct {
	Span
	Name string
}

// PrivateIdentifier is a `#name` class member name.
type PrivateIdentifier struct {
	Span
	Name string
}

// RegExpLiteral describes a regular expression literal.
type RegExpLiteral struct {
	Pattern string
	Flags   string
}

// Literal covers null, booleans, numbers, bigints, strings and regular
// expressions. Value holds nil, bool, float64, *big.Int, string or a
// compiled *regexp2.Regexp (nil when the pattern could not be compiled).
type Literal struct {
	Span
	Value  interface{}
	Raw    string
	Regex  *RegExpLiteral
	Bigint string
}

// BigInt returns the value of a bigint literal, or nil.
func (l *Literal) BigInt() *big.Int {
	v, _ := l.Value.(*big.Int)
	return v
}

type ThisExpression struct {
	Span
}

// Super only appears as the object of a member expression or the callee of
// a call expression.
type Super struct {
	Span
}

// ArrayExpression elements are nil for holes.
type ArrayExpression struct {
	Span
	Elements []Expression
}

type ObjectExpression struct {
	Span
	Properties []ObjectMember
}

// Property is an object literal entry. Kind is "init", "get" or "set".
type Property struct {
	Span
	Key       Expression
	Value     Expression
	Kind      string
	Method    bool
	Shorthand bool
	Computed  bool
}

// CoverInitializedName is the shorthand `{a = 1}` form. It is only legal
// once the enclosing object literal turns into a pattern, so it never
// survives in a tree returned without error.
type CoverInitializedName struct {
	Span
	Key  *Identifier
	Init Expression
}

type SpreadElement struct {
	Span
	Argument Expression
}

// Function holds the parts shared by function declarations and
// expressions.
type Function struct {
	ID        *Identifier
	Params    []Pattern
	Body      *BlockStatement
	Generator bool
	Async     bool
}

type FunctionExpression struct {
	Span
	Function
}

// ArrowFunctionExpression has a *BlockStatement body, or an Expression body
// when Expression is set.
type ArrowFunctionExpression struct {
	Span
	Params     []Pattern
	Body       Node
	Expression bool
	Async      bool
}

type ClassExpression struct {
	Span
	Class
}

type TemplateElement struct {
	Span
	Tail bool
	Raw  string
	// Cooked is nil when the element holds an escape that is only
	// permitted in tagged templates.
	Cooked *string
}

type TemplateLiteral struct {
	Span
	Quasis      []*TemplateElement
	Expressions []Expression
}

type TaggedTemplateExpression struct {
	Span
	Tag   Expression
	Quasi *TemplateLiteral
}

// MemberExpression property is an *Identifier or *PrivateIdentifier unless
// Computed is set.
type MemberExpression struct {
	Span
	Object   Expression
	Property Expression
	Computed bool
	Optional bool
}

// ChainExpression wraps an optional chain.
type ChainExpression struct {
	Span
	Expression Expression
}

type CallExpression struct {
	Span
	Callee    Expression
	Arguments []Expression
	Optional  bool
}

type NewExpression struct {
	Span
	Callee    Expression
	Arguments []Expression
}

type UpdateExpression struct {
	Span
	Operator string
	Prefix   bool
	Argument Expression
}

type UnaryExpression struct {
	Span
	Operator string
	Prefix   bool
	Argument Expression
}

type BinaryExpression struct {
	Span
	Operator string
	Left     Expression
	Right    Expression
}

type LogicalExpression struct {
	Span
	Operator string
	Left     Expression
	Right    Expression
}

type AssignmentExpression struct {
	Span
	Operator string
	Left     Pattern
	Right    Expression
}

type ConditionalExpression struct {
	Span
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

type SequenceExpression struct {
	Span
	Expressions []Expression
}

type YieldExpression struct {
	Span
	Argument Expression
	Delegate bool
}

type AwaitExpression struct {
	Span
	Argument Expression
}

// MetaProperty is `new.target` or `import.meta`.
type MetaProperty struct {
	Span
	Meta     *Identifier
	Property *Identifier
}

// ImportExpression is a dynamic `import(source)` call.
type ImportExpression struct {
	Span
	Source Expression
}

// ParenthesizedExpression is only produced when parentheses are preserved.
type ParenthesizedExpression struct {
	Span
	Expression Expression
}

func (*Identifier) Type() string               { return "Identifier" }
func (*PrivateIdentifier) Type() string        { return "PrivateIdentifier" }
func (*Literal) Type() string                  { return "Literal" }
func (*ThisExpression) Type() string           { return "ThisExpression" }
func (*Super) Type() string                    { return "Super" }
func (*ArrayExpression) Type() string          { return "ArrayExpression" }
func (*ObjectExpression) Type() string         { return "ObjectExpression" }
func (*Property) Type() string                 { return "Property" }
func (*CoverInitializedName) Type() string     { return "CoverInitializedName" }
func (*SpreadElement) Type() string            { return "SpreadElement" }
func (*FunctionExpression) Type() string       { return "FunctionExpression" }
func (*ArrowFunctionExpression) Type() string  { return "ArrowFunctionExpression" }
func (*ClassExpression) Type() string          { return "ClassExpression" }
func (*TemplateElement) Type() string          { return "TemplateElement" }
func (*TemplateLiteral) Type() string          { return "TemplateLiteral" }
func (*TaggedTemplateExpression) Type() string { return "TaggedTemplateExpression" }
func (*MemberExpression) Type() string         { return "MemberExpression" }
func (*ChainExpression) Type() string          { return "ChainExpression" }
func (*CallExpression) Type() string           { return "CallExpression" }
func (*NewExpression) Type() string            { return "NewExpression" }
func (*UpdateExpression) Type() string         { return "UpdateExpression" }
func (*UnaryExpression) Type() string          { return "UnaryExpression" }
func (*BinaryExpression) Type() string         { return "BinaryExpression" }
func (*LogicalExpression) Type() string        { return "LogicalExpression" }
func (*AssignmentExpression) Type() string     { return "AssignmentExpression" }
func (*ConditionalExpression) Type() string    { return "ConditionalExpression" }
func (*SequenceExpression) Type() string       { return "SequenceExpression" }
func (*YieldExpression) Type() string          { return "YieldExpression" }
func (*AwaitExpression) Type() string          { return "AwaitExpression" }
func (*MetaProperty) Type() string             { return "MetaProperty" }
func (*ImportExpression) Type() string         { return "ImportExpression" }
func (*ParenthesizedExpression) Type() string  { return "ParenthesizedExpression" }

func (*Identifier) exprNode()               {}
func (*PrivateIdentifier) exprNode()        {}
func (*Literal) exprNode()                  {}
func (*ThisExpression) exprNode()           {}
func (*Super) exprNode()                    {}
func (*ArrayExpression) exprNode()          {}
func (*ObjectExpression) exprNode()         {}
func (*CoverInitializedName) exprNode()     {}
func (*SpreadElement) exprNode()            {}
func (*FunctionExpression) exprNode()       {}
func (*ArrowFunctionExpression) exprNode()  {}
func (*ClassExpression) exprNode()          {}
func (*TemplateLiteral) exprNode()          {}
func (*TaggedTemplateExpression) exprNode() {}
func (*MemberExpression) exprNode()         {}
func (*ChainExpression) exprNode()          {}
func (*CallExpression) exprNode()           {}
func (*NewExpression) exprNode()            {}
func (*UpdateExpression) exprNode()         {}
func (*UnaryExpression) exprNode()          {}
func (*BinaryExpression) exprNode()         {}
func (*LogicalExpression) exprNode()        {}
func (*AssignmentExpression) exprNode()     {}
func (*ConditionalExpression) exprNode()    {}
func (*SequenceExpression) exprNode()       {}
func (*YieldExpression) exprNode()          {}
func (*AwaitExpression) exprNode()          {}
func (*MetaProperty) exprNode()             {}
func (*ImportExpression) exprNode()         {}
func (*ParenthesizedExpression) exprNode()  {}

func (*Property) objectMember()      {}
func (*SpreadElement) objectMember() {}
