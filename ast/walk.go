package ast

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a tree in depth-first order. Nil children are skipped.
// It panics on a node type declared outside this package, which cannot
// happen for trees built by the parser.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkStatements(v, n.Body)

	// Expressions
	case *Identifier, *PrivateIdentifier, *Literal, *ThisExpression, *Super:
		// leaves
	case *ArrayExpression:
		walkExpressions(v, n.Elements)
	case *ObjectExpression:
		for _, p := range n.Properties {
			Walk(v, p)
		}
	case *Property:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *CoverInitializedName:
		Walk(v, n.Key)
		Walk(v, n.Init)
	case *SpreadElement:
		Walk(v, n.Argument)
	case *FunctionExpression:
		walkFunction(v, &n.Function)
	case *ArrowFunctionExpression:
		walkPatterns(v, n.Params)
		Walk(v, n.Body)
	case *ClassExpression:
		walkClass(v, &n.Class)
	case *TemplateLiteral:
		for i, q := range n.Quasis {
			Walk(v, q)
			if i < len(n.Expressions) {
				Walk(v, n.Expressions[i])
			}
		}
	case *TemplateElement:
	case *TaggedTemplateExpression:
		Walk(v, n.Tag)
		Walk(v, n.Quasi)
	case *MemberExpression:
		Walk(v, n.Object)
		Walk(v, n.Property)
	case *ChainExpression:
		Walk(v, n.Expression)
	case *CallExpression:
		Walk(v, n.Callee)
		walkExpressions(v, n.Arguments)
	case *NewExpression:
		Walk(v, n.Callee)
		walkExpressions(v, n.Arguments)
	case *UpdateExpression:
		Walk(v, n.Argument)
	case *UnaryExpression:
		Walk(v, n.Argument)
	case *BinaryExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *LogicalExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *AssignmentExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ConditionalExpression:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		Walk(v, n.Alternate)
	case *SequenceExpression:
		walkExpressions(v, n.Expressions)
	case *YieldExpression:
		if n.Argument != nil {
			Walk(v, n.Argument)
		}
	case *AwaitExpression:
		Walk(v, n.Argument)
	case *MetaProperty:
		Walk(v, n.Meta)
		Walk(v, n.Property)
	case *ImportExpression:
		Walk(v, n.Source)
	case *ParenthesizedExpression:
		Walk(v, n.Expression)

	// Patterns
	case *ObjectPattern:
		for _, p := range n.Properties {
			Walk(v, p)
		}
	case *AssignmentProperty:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *ArrayPattern:
		walkPatterns(v, n.Elements)
	case *RestElement:
		Walk(v, n.Argument)
	case *AssignmentPattern:
		Walk(v, n.Left)
		Walk(v, n.Right)

	// Statements
	case *ExpressionStatement:
		Walk(v, n.Expression)
	case *BlockStatement:
		walkStatements(v, n.Body)
	case *EmptyStatement, *DebuggerStatement:
	case *WithStatement:
		Walk(v, n.Object)
		Walk(v, n.Body)
	case *ReturnStatement:
		if n.Argument != nil {
			Walk(v, n.Argument)
		}
	case *LabeledStatement:
		Walk(v, n.Label)
		Walk(v, n.Body)
	case *BreakStatement:
		if n.Label != nil {
			Walk(v, n.Label)
		}
	case *ContinueStatement:
		if n.Label != nil {
			Walk(v, n.Label)
		}
	case *IfStatement:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		if n.Alternate != nil {
			Walk(v, n.Alternate)
		}
	case *SwitchStatement:
		Walk(v, n.Discriminant)
		for _, c := range n.Cases {
			Walk(v, c)
		}
	case *SwitchCase:
		if n.Test != nil {
			Walk(v, n.Test)
		}
		walkStatements(v, n.Consequent)
	case *ThrowStatement:
		Walk(v, n.Argument)
	case *TryStatement:
		Walk(v, n.Block)
		if n.Handler != nil {
			Walk(v, n.Handler)
		}
		if n.Finalizer != nil {
			Walk(v, n.Finalizer)
		}
	case *CatchClause:
		if n.Param != nil {
			Walk(v, n.Param)
		}
		Walk(v, n.Body)
	case *WhileStatement:
		Walk(v, n.Test)
		Walk(v, n.Body)
	case *DoWhileStatement:
		Walk(v, n.Body)
		Walk(v, n.Test)
	case *ForStatement:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Test != nil {
			Walk(v, n.Test)
		}
		if n.Update != nil {
			Walk(v, n.Update)
		}
		Walk(v, n.Body)
	case *ForInStatement:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *ForOfStatement:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)

	// Declarations
	case *FunctionDeclaration:
		walkFunction(v, &n.Function)
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			Walk(v, d)
		}
	case *VariableDeclarator:
		Walk(v, n.ID)
		if n.Init != nil {
			Walk(v, n.Init)
		}
	case *ClassDeclaration:
		walkClass(v, &n.Class)
	case *ClassBody:
		for _, e := range n.Body {
			Walk(v, e)
		}
	case *MethodDefinition:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *PropertyDefinition:
		Walk(v, n.Key)
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *StaticBlock:
		walkStatements(v, n.Body)

	// Modules
	case *ImportDeclaration:
		for _, s := range n.Specifiers {
			Walk(v, s)
		}
		Walk(v, n.Source)
	case *ImportSpecifier:
		Walk(v, n.Imported)
		Walk(v, n.Local)
	case *ImportDefaultSpecifier:
		Walk(v, n.Local)
	case *ImportNamespaceSpecifier:
		Walk(v, n.Local)
	case *ExportNamedDeclaration:
		if n.Declaration != nil {
			Walk(v, n.Declaration)
		}
		for _, s := range n.Specifiers {
			Walk(v, s)
		}
		if n.Source != nil {
			Walk(v, n.Source)
		}
	case *ExportSpecifier:
		Walk(v, n.Local)
		Walk(v, n.Exported)
	case *ExportDefaultDeclaration:
		Walk(v, n.Declaration)
	case *ExportAllDeclaration:
		if n.Exported != nil {
			Walk(v, n.Exported)
		}
		Walk(v, n.Source)

	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

func walkStatements(v Visitor, list []Statement) {
	for _, s := range list {
		Walk(v, s)
	}
}

func walkExpressions(v Visitor, list []Expression) {
	for _, e := range list {
		if e != nil {
			Walk(v, e)
		}
	}
}

func walkPatterns(v Visitor, list []Pattern) {
	for _, p := range list {
		if p != nil {
			Walk(v, p)
		}
	}
}

func walkFunction(v Visitor, f *Function) {
	if f.ID != nil {
		Walk(v, f.ID)
	}
	walkPatterns(v, f.Params)
	Walk(v, f.Body)
}

func walkClass(v Visitor, c *Class) {
	if c.ID != nil {
		Walk(v, c.ID)
	}
	if c.SuperClass != nil {
		Walk(v, c.SuperClass)
	}
	Walk(v, c.Body)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses a tree in depth-first order: It starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node, followed by a
// call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
