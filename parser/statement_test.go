package parser

import (
	"testing"

	"github.com/devside/esparse/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseScript(t *testing.T, src string, opts ...Option) *ast.Program {
	t.Helper()
	program, err := ParseScript(src, opts...)
	require.NoError(t, err, src)
	return program
}

func mustParseModule(t *testing.T, src string, opts ...Option) *ast.Program {
	t.Helper()
	program, err := ParseModule(src, opts...)
	require.NoError(t, err, src)
	return program
}

// assertSyntaxError checks that err is a *SyntaxError of the given kind
// raised at pos.
func assertSyntaxError(t *testing.T, err error, kind Kind, pos int) {
	t.Helper()
	require.Error(t, err)
	se, ok := err.(*SyntaxError)
	require.True(t, ok, "%T is not a *SyntaxError", err)
	assert.Equal(t, kind, se.Kind, se.Message)
	assert.Equal(t, pos, se.Pos, se.Message)
}

func TestProgram(t *testing.T) {
	src := "var a = 1; let b; const c = 2;"
	program := mustParseScript(t, src)
	assert.Equal(t, "script", program.SourceType)
	assert.Equal(t, 0, program.Start)
	assert.Equal(t, len(src), program.End)
	require.Len(t, program.Body, 3)

	kinds := []string{"var", "let", "const"}
	for i, stmt := range program.Body {
		decl, ok := stmt.(*ast.VariableDeclaration)
		require.True(t, ok)
		assert.Equal(t, kinds[i], decl.Kind)
		require.Len(t, decl.Declarations, 1)
	}
	assert.Nil(t, program.Body[1].(*ast.VariableDeclaration).Declarations[0].Init)

	module := mustParseModule(t, "")
	assert.Equal(t, "module", module.SourceType)
	assert.Empty(t, module.Body)
}

func TestDirectives(t *testing.T) {
	program := mustParseScript(t, `"use strict"; 'a\x62'; ("not"); "late"`)
	require.Len(t, program.Body, 4)
	assert.Equal(t, "use strict", program.Body[0].(*ast.ExpressionStatement).Directive)
	assert.Equal(t, `a\x62`, program.Body[1].(*ast.ExpressionStatement).Directive)
	assert.Equal(t, "", program.Body[2].(*ast.ExpressionStatement).Directive)
	assert.Equal(t, "", program.Body[3].(*ast.ExpressionStatement).Directive)

	fn := mustParseScript(t, `function f() { "use strict"; x }`).Body[0].(*ast.FunctionDeclaration)
	assert.Equal(t, "use strict", fn.Body.Body[0].(*ast.ExpressionStatement).Directive)
}

func TestUseStrictScopes(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{`with (a) b`, true},
		{`"use strict"; with (a) b`, false},
		{`function f() { "use strict"; with (a) b }`, false},
		{`function f() { "use strict"; } with (a) b`, true},
		{`"use strict"
+with0`, true},
		{`"use strict"
with (a) b`, false},
		{`"use\x20strict"; with (a) b`, true},
		{`("use strict"); with (a) b`, true},
		{`function eval() { "use strict"; }`, false},
		{`function f(eval) { "use strict"; }`, false},
		{`function f(a, a) { "use strict"; }`, false},
		{`function f(a, a) {}`, true},
		{`(a, a) => 1`, false},
		{`function f(a = 1) { "use strict"; }`, false},
		{`class A { m() { with (a) b } }`, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseScript(tc.input)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestControlStatements(t *testing.T) {
	program := mustParseScript(t, `
if (a) b; else c;
while (x) break;
do continue; while (y)
for (;;) {}
for (var i = 0, j; i < 10; i++) ;
for (k in o) ;
for (const [v] of list) ;
switch (s) { case 1: case 2: f(); break; default: g() }
try { t() } catch { } finally { }
try { t() } catch (e) { }
throw new Error("x");
label: { break label; }
outer: for (;;) { inner: for (;;) { continue outer; } }
debugger;
;
`)
	types := make([]string, len(program.Body))
	for i, stmt := range program.Body {
		types[i] = stmt.Type()
	}
	assert.Equal(t, []string{
		"IfStatement", "WhileStatement", "DoWhileStatement", "ForStatement", "ForStatement",
		"ForInStatement", "ForOfStatement", "SwitchStatement", "TryStatement", "TryStatement",
		"ThrowStatement", "LabeledStatement", "LabeledStatement", "DebuggerStatement", "EmptyStatement",
	}, types)

	sw := program.Body[7].(*ast.SwitchStatement)
	require.Len(t, sw.Cases, 3)
	assert.Empty(t, sw.Cases[0].Consequent)
	assert.Len(t, sw.Cases[1].Consequent, 2)
	assert.Nil(t, sw.Cases[2].Test)

	try := program.Body[8].(*ast.TryStatement)
	assert.Nil(t, try.Handler.Param)
	assert.NotNil(t, try.Finalizer)

	forOf := program.Body[6].(*ast.ForOfStatement)
	decl := forOf.Left.(*ast.VariableDeclaration)
	assert.Equal(t, "const", decl.Kind)
	assert.IsType(t, &ast.ArrayPattern{}, decl.Declarations[0].ID)
}

func TestForStatementForms(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{`for (let in x) ;`, true},
		{`for (let.x in y) ;`, true},
		{`for (let of x) ;`, false},
		{`for (let.x of y) ;`, false},
		{`for (async of x) ;`, false},
		{`for (async of => {};;) ;`, true},
		{`async function f() { for await (async of x) ; }`, true},
		{`for (var a = 1 in b) ;`, true},
		{`"use strict"; for (var a = 1 in b) ;`, false},
		{`for (var [a] = 1 in b) ;`, false},
		{`for (let a = 1 in b) ;`, false},
		{`for (var a = 1 of b) ;`, false},
		{`for (var a, b of c) ;`, false},
		{`for (a + b in c) ;`, false},
		{`for ((a) in b) ;`, true},
		{`for ([a, b] of c) ;`, true},
		{`for ({a, b} of c) ;`, true},
		{`for (x of a, b) ;`, false},
		{`for (x in a, b) ;`, true},
		{`for ("a" in b;;) ;`, false},
		{`for (("a" in b);;) ;`, true},
		{`for (let [a, b] = c;;) ;`, true},
		{`for (let [a, b];;) ;`, false},
		{`for (let a = 0, b;;) ;`, true},
		{`for (const a;;) ;`, false},
		{`for (const a = 1, a = 2;;) ;`, false},
		{`for await (x of y) ;`, false},
		{`async function f() { for await (x in y) ; }`, false},
		{`async function f() { for await (x of y) ; }`, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseScript(tc.input)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLabelsAndJumps(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		pos   int
	}{
		{`break;`, IllegalControlTransfer, 0},
		{`continue;`, IllegalControlTransfer, 0},
		{`a: { continue a; }`, IllegalControlTransfer, 5},
		{`a: while (1) { function f() { break a; } }`, IllegalControlTransfer, 30},
		{`switch (x) { case 1: continue; }`, IllegalControlTransfer, 21},
		{`a: a: ;`, DuplicateBinding, 3},
		{`a: { b: ; break c; }`, IllegalControlTransfer, 10},
		{`return 1`, IllegalControlTransfer, 0},
		{`class A { static { return } }`, IllegalControlTransfer, 19},
		{`a: while (1) { class A { static { break a; } } }`, IllegalControlTransfer, 34},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseScript(tc.input)
			assertSyntaxError(t, err, tc.kind, tc.pos)
		})
	}

	for _, src := range []string{
		`a: { break a; }`,
		`a: b: while (1) { continue a; }`,
		`a: while (1) { b: { break a; } }`,
		`a: ; a: ;`,
		`switch (x) { case 1: break; }`,
		`while (1) { switch (x) { default: continue; } }`,
		`a: while (1) { () => { b: ; }; continue a; }`,
	} {
		_, err := ParseScript(src)
		assert.NoError(t, err, src)
	}

	_, err := ParseScript(`return 1`, WithAllowReturnOutsideFunction())
	assert.NoError(t, err)
}

func TestStatementPositionRestrictions(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{`if (a) function f() {}`, true},
		{`"use strict"; if (a) function f() {}`, false},
		{`if (a) function* f() {}`, false},
		{`if (a) async function f() {}`, false},
		{`while (a) function f() {}`, false},
		{`a: function f() {}`, true},
		{`"use strict"; a: function f() {}`, false},
		{`while (1) a: function f() {}`, false},
		{`if (a) class A {}`, false},
		{`if (a) let x = 1`, false},
		{`if (a) let
x = 1`, true},
		{`if (a) const x = 1`, false},
		{`do function f() {} while (0)`, false},
		{`with (a) function f() {}`, false},
		{`let
let = 1`, false},
		{`let [a] = [1]`, true},
		{`let
[a] = [1]`, true},
		{`let = 1`, true},
		{`"use strict"; let = 1`, false},
		{`throw
new Error()`, false},
		{`try {}`, false},
		{`switch (a) { default: default: }`, false},
		{`const a = 1, b;`, false},
		{`var [a];`, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseScript(tc.input)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAutomaticSemicolonInsertion(t *testing.T) {
	program := mustParseScript(t, "a\nb\n++c")
	require.Len(t, program.Body, 3)
	update := program.Body[2].(*ast.ExpressionStatement).Expression.(*ast.UpdateExpression)
	assert.True(t, update.Prefix)
	assert.Equal(t, "++", update.Operator)

	program = mustParseScript(t, "a = b\n(c)")
	require.Len(t, program.Body, 1)
	assert.IsType(t, &ast.CallExpression{}, program.Body[0].(*ast.ExpressionStatement).Expression.(*ast.AssignmentExpression).Right)

	program = mustParseScript(t, "function f() { return\n1 }")
	ret := program.Body[0].(*ast.FunctionDeclaration).Body.Body[0].(*ast.ReturnStatement)
	assert.Nil(t, ret.Argument)

	_, err := ParseScript("a b")
	assertSyntaxError(t, err, UnexpectedToken, 2)

	_, err = ParseScript("do x; while (0) y")
	assert.NoError(t, err)
}
