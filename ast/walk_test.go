package ast_test

import (
	"testing"

	"github.com/devside/esparse/ast"
	"github.com/devside/esparse/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectVisitsIdentifiersInOrder(t *testing.T) {
	program, err := parser.ParseScript("var a = b + c; function f(d) { return d }")
	require.NoError(t, err)

	var names []string
	ast.Inspect(program, func(n ast.Node) bool {
		if id, ok := n.(*ast.Identifier); ok {
			names = append(names, id.Name)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b", "c", "f", "d", "d"}, names)
}

func TestInspectPrunesSubtrees(t *testing.T) {
	program, err := parser.ParseScript("x; function f() { y }")
	require.NoError(t, err)

	var names []string
	ast.Inspect(program, func(n ast.Node) bool {
		if _, ok := n.(*ast.FunctionDeclaration); ok {
			return false
		}
		if id, ok := n.(*ast.Identifier); ok {
			names = append(names, id.Name)
		}
		return true
	})
	assert.Equal(t, []string{"x"}, names)
}

func TestInspectCallsNilAfterChildren(t *testing.T) {
	program, err := parser.ParseScript("a")
	require.NoError(t, err)

	var trace []string
	ast.Inspect(program, func(n ast.Node) bool {
		if n == nil {
			trace = append(trace, "nil")
		} else {
			trace = append(trace, n.Type())
		}
		return true
	})
	assert.Equal(t, []string{"Program", "ExpressionStatement", "Identifier", "nil", "nil", "nil"}, trace)
}

func TestWalkCoversEveryNodeKind(t *testing.T) {
	src := `
import def, { a as b, "s" as c } from "m";
import * as ns from "m";
export { b as d };
export * as all from "m";
export default class K extends Object {
  static #p = 1;
  static { this.#p; }
  get x() { return super.x }
  constructor() { super(); new.target; }
}
label: for (const [e, ...f] of [[1, , 2]]) { if (e) break label; else continue; }
for (let i = 0; i < 1; i++) ;
for (var k in {}) with0: while (false) do {} while (false)
switch (1) { case 1: debugger; default: }
try { throw 1 } catch ({ m = 1, ...n }) {} finally {}
async function* g(p = 1) { yield* g(); await 1; for await (const q of g()) {} }
let t = tag` + "`a${1}b`" + `, o = { u, [v]: 1, w() {}, ...o }, r = /x/g;
x ??= y?.z ?? (a, b) ? typeof -1 : void 0;
(() => {})(), import("m"), import.meta;
`
	program, err := parser.ParseModule(src)
	require.NoError(t, err)

	seen := map[string]bool{}
	ast.Inspect(program, func(n ast.Node) bool {
		if n != nil {
			seen[n.Type()] = true
		}
		return true
	})
	for _, typ := range []string{
		"ImportDeclaration", "ImportDefaultSpecifier", "ImportSpecifier", "ImportNamespaceSpecifier",
		"ExportNamedDeclaration", "ExportSpecifier", "ExportAllDeclaration", "ExportDefaultDeclaration",
		"ClassDeclaration", "ClassBody", "PropertyDefinition", "PrivateIdentifier", "StaticBlock",
		"MethodDefinition", "Super", "MetaProperty", "LabeledStatement", "ForOfStatement",
		"ArrayPattern", "RestElement", "BreakStatement", "ContinueStatement", "ForStatement",
		"UpdateExpression", "ForInStatement", "WhileStatement", "DoWhileStatement", "SwitchStatement",
		"SwitchCase", "DebuggerStatement", "TryStatement", "ThrowStatement", "CatchClause",
		"ObjectPattern", "AssignmentPattern", "YieldExpression", "AwaitExpression",
		"TaggedTemplateExpression", "TemplateLiteral", "TemplateElement", "ObjectExpression",
		"Property", "SpreadElement", "FunctionExpression", "Literal", "AssignmentExpression",
		"ChainExpression", "LogicalExpression", "ConditionalExpression", "SequenceExpression",
		"UnaryExpression", "ArrowFunctionExpression", "CallExpression", "ImportExpression",
		"EmptyStatement",
	} {
		assert.True(t, seen[typ], typ)
	}
}

func TestSpanPos(t *testing.T) {
	id := &ast.Identifier{Span: ast.Span{Start: 3, End: 5}, Name: "ab"}
	var n ast.Node = id
	assert.Equal(t, 3, n.Pos().Start)
	assert.Equal(t, 5, n.Pos().End)
	assert.Equal(t, ast.Position{Line: 2, Column: 7}, ast.Position{Line: 2, Column: 4}.Offset(3))
}
