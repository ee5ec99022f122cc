package ast

type ObjectPattern struct {
	Span
	Properties []PatternMember
}

// AssignmentProperty is a `key: target` entry of an object pattern.
type AssignmentProperty struct {
	Span
	Key       Expression
	Value     Pattern
	Computed  bool
	Shorthand bool
}

// ArrayPattern elements are nil for holes.
type ArrayPattern struct {
	Span
	Elements []Pattern
}

type RestElement struct {
	Span
	Argument Pattern
}

type AssignmentPattern struct {
	Span
	Left  Pattern
	Right Expression
}

func (*ObjectPattern) Type() string      { return "ObjectPattern" }
func (*AssignmentProperty) Type() string { return "Property" }
func (*ArrayPattern) Type() string       { return "ArrayPattern" }
func (*RestElement) Type() string        { return "RestElement" }
func (*AssignmentPattern) Type() string  { return "AssignmentPattern" }

func (*Identifier) patternNode()        {}
func (*MemberExpression) patternNode()  {}
func (*ObjectPattern) patternNode()     {}
func (*ArrayPattern) patternNode()      {}
func (*RestElement) patternNode()       {}
func (*AssignmentPattern) patternNode() {}

func (*AssignmentProperty) patternMember() {}
func (*RestElement) patternMember()        {}
