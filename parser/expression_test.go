package parser

import (
	"fmt"
	"testing"

	"github.com/devside/esparse/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, src string, opts ...Option) ast.Expression {
	t.Helper()
	program := mustParseScript(t, src, opts...)
	require.Len(t, program.Body, 1)
	stmt, ok := program.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok, "%T", program.Body[0])
	return stmt.Expression
}

func TestBinaryPrecedence(t *testing.T) {
	sum := parseExpr(t, "a + b * c").(*ast.BinaryExpression)
	assert.Equal(t, "+", sum.Operator)
	assert.Equal(t, "*", sum.Right.(*ast.BinaryExpression).Operator)

	diff := parseExpr(t, "a - b - c").(*ast.BinaryExpression)
	assert.Equal(t, "-", diff.Left.(*ast.BinaryExpression).Operator)
	assert.Equal(t, "c", diff.Right.(*ast.Identifier).Name)

	pow := parseExpr(t, "a ** b ** c").(*ast.BinaryExpression)
	assert.Equal(t, "a", pow.Left.(*ast.Identifier).Name)
	assert.Equal(t, "**", pow.Right.(*ast.BinaryExpression).Operator)

	or := parseExpr(t, "a || b && c").(*ast.LogicalExpression)
	assert.Equal(t, "||", or.Operator)
	assert.Equal(t, "&&", or.Right.(*ast.LogicalExpression).Operator)

	in := parseExpr(t, "a instanceof b in c").(*ast.BinaryExpression)
	assert.Equal(t, "in", in.Operator)
	assert.Equal(t, "instanceof", in.Left.(*ast.BinaryExpression).Operator)

	cond := parseExpr(t, "a ? b : c ? d : e").(*ast.ConditionalExpression)
	assert.IsType(t, &ast.ConditionalExpression{}, cond.Alternate)

	seq := parseExpr(t, "a, b = 1, c").(*ast.SequenceExpression)
	assert.Len(t, seq.Expressions, 3)

	unary := parseExpr(t, "typeof void !-x").(*ast.UnaryExpression)
	assert.Equal(t, "typeof", unary.Operator)
	assert.True(t, unary.Prefix)
	assert.Equal(t, "void", unary.Argument.(*ast.UnaryExpression).Operator)
}

func TestOperatorErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		pos   int
	}{
		{"-a ** b", UnexpectedToken, 3},
		{"typeof a ** b", UnexpectedToken, 9},
		{"a ?? b || c", UnexpectedToken, 7},
		{"a || b ?? c", UnexpectedToken, 7},
		{"a && b ?? c", UnexpectedToken, 7},
		{"a +", UnexpectedToken, 3},
		{"(a", UnexpectedToken, 2},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseScript(tc.input)
			assertSyntaxError(t, err, tc.kind, tc.pos)
		})
	}

	for _, src := range []string{"(-a) ** b", "2 ** -1", "a ?? (b || c)", "(a ?? b) || c", "a ?? b ?? c"} {
		_, err := ParseScript(src)
		assert.NoError(t, err, src)
	}
}

func TestAssignmentTargets(t *testing.T) {
	arr := parseExpr(t, "[a, , ...b] = c").(*ast.AssignmentExpression)
	pattern := arr.Left.(*ast.ArrayPattern)
	require.Len(t, pattern.Elements, 3)
	assert.Nil(t, pattern.Elements[1])
	assert.IsType(t, &ast.RestElement{}, pattern.Elements[2])

	obj := parseExpr(t, "({a, b: [c], d = 1, ...e} = f)").(*ast.AssignmentExpression)
	props := obj.Left.(*ast.ObjectPattern).Properties
	require.Len(t, props, 4)
	assert.True(t, props[0].(*ast.AssignmentProperty).Shorthand)
	assert.IsType(t, &ast.ArrayPattern{}, props[1].(*ast.AssignmentProperty).Value)
	assert.IsType(t, &ast.AssignmentPattern{}, props[2].(*ast.AssignmentProperty).Value)
	assert.IsType(t, &ast.RestElement{}, props[3])

	compound := parseExpr(t, "a.b **= 2").(*ast.AssignmentExpression)
	assert.Equal(t, "**=", compound.Operator)
	assert.IsType(t, &ast.MemberExpression{}, compound.Left)

	logical := parseExpr(t, "a ||= b").(*ast.AssignmentExpression)
	assert.Equal(t, "||=", logical.Operator)

	tests := []struct {
		input string
		kind  Kind
		pos   int
	}{
		{"a + 1 = 2", InvalidAssignmentTarget, 0},
		{"f() = 1", InvalidAssignmentTarget, 0},
		{"a?.b = 1", InvalidAssignmentTarget, 0},
		{"a?.b++", InvalidAssignmentTarget, 0},
		{"++a++", InvalidAssignmentTarget, 2},
		{"[a] += 1", InvalidAssignmentTarget, 0},
		{"({a}) = 1", InvalidDestructuringTarget, 0},
		{"[(a = 1)] = 2", InvalidDestructuringTarget, 1},
		{"({a = 1})", InvalidDestructuringTarget, 4},
		{"[...a, b] = c", InvalidDestructuringTarget, 5},
		{"[...a,] = c", InvalidDestructuringTarget, 5},
		{"({get a() {}} = b)", InvalidDestructuringTarget, 6},
		{"[...a = 1] = b", InvalidDestructuringTarget, 4},
		{"({...{a}} = b)", InvalidDestructuringTarget, 5},
		{"[...new a] = 0", InvalidDestructuringTarget, 4},
		{"[0] = 0", InvalidDestructuringTarget, 1},
		{"({a: 0} = 0)", InvalidDestructuringTarget, 5},
		{"({a: b + c} = d)", InvalidDestructuringTarget, 5},
		{"[[f()]] = a", InvalidDestructuringTarget, 2},
		{"(a + b) => 1", InvalidAssignmentTarget, 1},
		{`"use strict"; eval = 1`, StrictModeViolation, 14},
		{`"use strict"; arguments++`, StrictModeViolation, 14},
		{`"use strict"; [eval] = a`, StrictModeViolation, 15},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseScript(tc.input)
			assertSyntaxError(t, err, tc.kind, tc.pos)
		})
	}

	for _, src := range []string{
		"(a) = 1", "(a.b) = 1", "((a)) += 1", "[(a)] = b", "[(a.b)] = c", "({a: (b)} = c)",
		"({a = 1} = b)", "[{a = 1}] = b", "eval = 1", "arguments = 1", "({...a.b} = c)",
		"[...a.b] = c", "({__proto__: a, __proto__: b} = c)",
	} {
		_, err := ParseScript(src)
		assert.NoError(t, err, src)
	}
}

func TestArrowFunctions(t *testing.T) {
	arrow := parseExpr(t, "(a, b) => a + b").(*ast.ArrowFunctionExpression)
	assert.Len(t, arrow.Params, 2)
	assert.True(t, arrow.Expression)
	assert.False(t, arrow.Async)
	assert.IsType(t, &ast.BinaryExpression{}, arrow.Body)

	block := parseExpr(t, "() => {}").(*ast.ArrowFunctionExpression)
	assert.Empty(t, block.Params)
	assert.False(t, block.Expression)
	assert.IsType(t, &ast.BlockStatement{}, block.Body)

	rest := parseExpr(t, "(a, ...b) => b").(*ast.ArrowFunctionExpression)
	assert.IsType(t, &ast.RestElement{}, rest.Params[1])

	destructured := parseExpr(t, "({a}, [b] = []) => a").(*ast.ArrowFunctionExpression)
	assert.IsType(t, &ast.ObjectPattern{}, destructured.Params[0])
	assert.IsType(t, &ast.AssignmentPattern{}, destructured.Params[1])

	async := parseExpr(t, "async (a) => await a").(*ast.ArrowFunctionExpression)
	assert.True(t, async.Async)
	assert.IsType(t, &ast.AwaitExpression{}, async.Body)

	single := parseExpr(t, "async x => x").(*ast.ArrowFunctionExpression)
	assert.True(t, single.Async)
	assert.Equal(t, "x", single.Params[0].(*ast.Identifier).Name)

	named := parseExpr(t, "async => async").(*ast.ArrowFunctionExpression)
	assert.False(t, named.Async)
	assert.Equal(t, "async", named.Params[0].(*ast.Identifier).Name)

	call := parseExpr(t, "async (a, b)").(*ast.CallExpression)
	assert.Equal(t, "async", call.Callee.(*ast.Identifier).Name)

	for _, src := range []string{
		"(a, b)\n=> 1",
		"a\n=> 1",
		"async a\n=> 1",
		"(a + b) => 1",
		"(...a, b) => 1",
		"(a, a) => 1",
		"([a, a]) => 1",
		"({a}) = 1",
		"async (a = await 1) => 1",
		"async (await) => 1",
		"async await => 1",
		"() => { super.x }",
		"(a,,) => 1",
		"() + 1",
		"(...a)",
		`"use strict"; (eval) => 1`,
		"(a) => { 'use strict'; with (a) {} }",
		"([a]) => { 'use strict' }",
		"async\n(a) => 1",
	} {
		_, err := ParseScript(src)
		assert.Error(t, err, src)
	}

	for _, src := range []string{
		"(a,) => 1",
		"(a = yield) => 1",
		"(eval) => 1",
		"a => b => c",
		"x = (y) => z",
		"f((a) => a, b => b)",
		"(a = 1, {b} = {}, [c] = [], ...d) => 0",
	} {
		_, err := ParseScript(src)
		assert.NoError(t, err, src)
	}
}

func TestObjectLiterals(t *testing.T) {
	obj := parseExpr(t, "({a, b: 1, [c]: 2, 'd': 3, 4: 5, e() {}, get f() {}, set f(v) {}, async *g() {}, ...h})").(*ast.ObjectExpression)
	require.Len(t, obj.Properties, 10)

	a := obj.Properties[0].(*ast.Property)
	assert.True(t, a.Shorthand)
	assert.Equal(t, "init", a.Kind)

	c := obj.Properties[2].(*ast.Property)
	assert.True(t, c.Computed)

	e := obj.Properties[5].(*ast.Property)
	assert.True(t, e.Method)

	assert.Equal(t, "get", obj.Properties[6].(*ast.Property).Kind)
	assert.Equal(t, "set", obj.Properties[7].(*ast.Property).Kind)

	g := obj.Properties[8].(*ast.Property).Value.(*ast.FunctionExpression)
	assert.True(t, g.Async)
	assert.True(t, g.Generator)

	assert.IsType(t, &ast.SpreadElement{}, obj.Properties[9])

	keywordKeys := parseExpr(t, "({if: 1, class: 2, new: 3, get: 4, set: 5, async: 6, static: 7})").(*ast.ObjectExpression)
	assert.Len(t, keywordKeys.Properties, 7)

	tests := []struct {
		input string
		kind  Kind
		pos   int
	}{
		{"({__proto__: 1, __proto__: 2})", DuplicateBinding, 16},
		{`({__proto__: 1, "__proto__": 2})`, DuplicateBinding, 16},
		{"({get a(b) {}})", ClassBodyError, 7},
		{"({set a() {}})", ClassBodyError, 7},
		{"({set a(...b) {}})", ClassBodyError, 8},
		{"({a: 1 = 2})", InvalidAssignmentTarget, 5},
		{"({if})", ReservedWordMisuse, 2},
		{"({async get a() {}})", UnexpectedToken, 12},
		{"({*a: 1})", UnexpectedToken, 4},
		{"({async\nfoo() {}})", UnexpectedToken, 8},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseScript(tc.input)
			assertSyntaxError(t, err, tc.kind, tc.pos)
		})
	}

	for _, src := range []string{
		"({__proto__: 1, __proto__})",
		"({__proto__: 1, ['__proto__']: 2})",
		"({__proto__: 1, __proto__() {}})",
		"({get __proto__() {}, __proto__: 1})",
		"({a: 1, a: 2})",
		"({get a() {}, get a() {}})",
		"({async, get, set})",
	} {
		_, err := ParseScript(src)
		assert.NoError(t, err, src)
	}
}

func TestTemplates(t *testing.T) {
	tmpl := parseExpr(t, "`a${b}c${d}`").(*ast.TemplateLiteral)
	require.Len(t, tmpl.Quasis, 3)
	require.Len(t, tmpl.Expressions, 2)
	assert.Equal(t, "a", *tmpl.Quasis[0].Cooked)
	assert.Equal(t, "c", tmpl.Quasis[1].Raw)
	assert.Equal(t, "", tmpl.Quasis[2].Raw)
	assert.False(t, tmpl.Quasis[1].Tail)
	assert.True(t, tmpl.Quasis[2].Tail)

	escaped := parseExpr(t, "`\\n\\u0041`").(*ast.TemplateLiteral)
	assert.Equal(t, "\nA", *escaped.Quasis[0].Cooked)
	assert.Equal(t, `\n\u0041`, escaped.Quasis[0].Raw)

	crlf := parseExpr(t, "`a\r\nb`").(*ast.TemplateLiteral)
	assert.Equal(t, "a\nb", crlf.Quasis[0].Raw)

	tagged := parseExpr(t, "tag`\\unicode and \\u{55}`").(*ast.TaggedTemplateExpression)
	assert.Equal(t, "tag", tagged.Tag.(*ast.Identifier).Name)
	assert.Nil(t, tagged.Quasi.Quasis[0].Cooked)
	assert.Equal(t, `\unicode and \u{55}`, tagged.Quasi.Quasis[0].Raw)

	nested := parseExpr(t, "`a${`b${c}`}`").(*ast.TemplateLiteral)
	assert.IsType(t, &ast.TemplateLiteral{}, nested.Expressions[0])

	_, err := ParseScript("`\\unicode`")
	assertSyntaxError(t, err, LexicalError, 1)

	_, err = ParseScript("`\\01`")
	assert.Error(t, err)

	_, err = ParseScript("`${}`")
	assert.Error(t, err)

	_, err = ParseScript("`${a`")
	assert.Error(t, err)

	_, err = ParseScript("a?.b`c`")
	assertSyntaxError(t, err, UnexpectedToken, 4)
}

func TestOptionalChaining(t *testing.T) {
	chain := parseExpr(t, "a?.b.c").(*ast.ChainExpression)
	member := chain.Expression.(*ast.MemberExpression)
	assert.False(t, member.Optional)
	assert.True(t, member.Object.(*ast.MemberExpression).Optional)

	call := parseExpr(t, "a?.(b)").(*ast.ChainExpression).Expression.(*ast.CallExpression)
	assert.True(t, call.Optional)

	computed := parseExpr(t, "a?.[0]").(*ast.ChainExpression).Expression.(*ast.MemberExpression)
	assert.True(t, computed.Computed)
	assert.True(t, computed.Optional)

	outer := parseExpr(t, "(a?.b).c").(*ast.MemberExpression)
	assert.IsType(t, &ast.ChainExpression{}, outer.Object)

	_, err := ParseScript("new a?.b()")
	assertSyntaxError(t, err, UnexpectedToken, 5)
}

func TestNewAndCalls(t *testing.T) {
	n := parseExpr(t, "new a.b(c)").(*ast.NewExpression)
	assert.IsType(t, &ast.MemberExpression{}, n.Callee)
	assert.Len(t, n.Arguments, 1)

	bare := parseExpr(t, "new a").(*ast.NewExpression)
	assert.Empty(t, bare.Arguments)

	nn := parseExpr(t, "new new a()()").(*ast.NewExpression)
	assert.IsType(t, &ast.NewExpression{}, nn.Callee)

	call := parseExpr(t, "new a()()").(*ast.CallExpression)
	assert.IsType(t, &ast.NewExpression{}, call.Callee)

	spread := parseExpr(t, "f(a, ...b, c,)").(*ast.CallExpression)
	require.Len(t, spread.Arguments, 3)
	assert.IsType(t, &ast.SpreadElement{}, spread.Arguments[1])

	for _, src := range []string{"f(,)", "f(a,,b)", "new import('x')", "new.foo"} {
		_, err := ParseScript(src)
		assert.Error(t, err, src)
	}
}

func TestMetaProperties(t *testing.T) {
	fn := mustParseScript(t, "function f() { return new.target }").Body[0].(*ast.FunctionDeclaration)
	meta := fn.Body.Body[0].(*ast.ReturnStatement).Argument.(*ast.MetaProperty)
	assert.Equal(t, "new", meta.Meta.Name)
	assert.Equal(t, "target", meta.Property.Name)

	for _, src := range []string{
		"function f() { () => new.target }",
		"class A { static { new.target } }",
		"class A { x = new.target }",
		"({ m() { new.target } })",
	} {
		_, err := ParseScript(src)
		assert.NoError(t, err, src)
	}

	_, err := ParseScript("new.target")
	assertSyntaxError(t, err, UnexpectedToken, 0)

	_, err = ParseScript("() => new.target")
	assertSyntaxError(t, err, UnexpectedToken, 6)

	_, err = ParseScript("function f() { new.t\\u0061rget }")
	assertSyntaxError(t, err, ReservedWordMisuse, 15)

	_, err = ParseScript("import.meta")
	assertSyntaxError(t, err, UnexpectedToken, 0)

	module := mustParseModule(t, "import.meta.url")
	member := module.Body[0].(*ast.ExpressionStatement).Expression.(*ast.MemberExpression)
	assert.Equal(t, "meta", member.Object.(*ast.MetaProperty).Property.Name)

	_, err = ParseModule("import.metal")
	assertSyntaxError(t, err, UnexpectedToken, 7)
}

func TestDynamicImport(t *testing.T) {
	imp := parseExpr(t, "import('x')").(*ast.ImportExpression)
	assert.Equal(t, "x", imp.Source.(*ast.Literal).Value)

	_, err := ParseScript("import('x',)")
	assertSyntaxError(t, err, UnexpectedToken, 10)

	_, err = ParseScript("import()")
	assert.Error(t, err)

	_, err = ParseScript("import('a', 'b')")
	assert.Error(t, err)
}

func TestSuper(t *testing.T) {
	for _, src := range []string{
		"({ m() { return super.x } })",
		"({ m() { return super['x'] } })",
		"({ get m() { return () => super.x } })",
		"class A extends B { constructor() { super() } }",
		"class A extends B { constructor() { (() => super())() } }",
		"class A { m() { super.m() } }",
		"class A { static m() { super.m() } }",
		"class A { x = super.x }",
		"class A { static { super.x } }",
	} {
		_, err := ParseScript(src)
		assert.NoError(t, err, src)
	}

	tests := []struct {
		input string
		pos   int
	}{
		{"super.x", 0},
		{"function f() { super.x }", 15},
		{"({ m: function() { super.x } })", 19},
		{"({ m() { super() } })", 9},
		{"class A extends B { m() { super() } }", 26},
		{"class A { constructor() { super() } }", 26},
		{"class A extends B { x = super() }", 24},
		{"class A extends B { constructor() { function f() { super() } } }", 51},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseScript(tc.input)
			assertSyntaxError(t, err, IllegalSuperUsage, tc.pos)
		})
	}

	_, err := ParseScript("({ m() { super } })")
	assertSyntaxError(t, err, UnexpectedToken, 15)
}

func TestYieldAndAwait(t *testing.T) {
	gen := mustParseScript(t, "function* g() { yield; yield a; yield* b }").Body[0].(*ast.FunctionDeclaration)
	require.Len(t, gen.Body.Body, 3)
	plain := gen.Body.Body[0].(*ast.ExpressionStatement).Expression.(*ast.YieldExpression)
	assert.Nil(t, plain.Argument)
	delegate := gen.Body.Body[2].(*ast.ExpressionStatement).Expression.(*ast.YieldExpression)
	assert.True(t, delegate.Delegate)

	async := mustParseScript(t, "async function f() { await x }").Body[0].(*ast.FunctionDeclaration)
	assert.True(t, async.Async)
	assert.IsType(t, &ast.AwaitExpression{}, async.Body.Body[0].(*ast.ExpressionStatement).Expression)

	module := mustParseModule(t, "await x")
	assert.IsType(t, &ast.AwaitExpression{}, module.Body[0].(*ast.ExpressionStatement).Expression)

	_, err := ParseScript("await x", WithAllowAwaitOutsideFunction())
	assert.NoError(t, err)

	for _, src := range []string{
		"var yield = 1",
		"yield: ;",
		"function* g() { function f(yield) {} }",
		"var await = 1",
		"await: ;",
		"function f() { var await }",
		"async function f() { function g(await) {} }",
		"function* g() { var f = function yield() {} }",
		"async function* g() { yield; await x; for await (x of y) ; }",
	} {
		_, err := ParseScript(src)
		assert.NoError(t, err, src)
	}

	tests := []struct {
		input string
		kind  Kind
		pos   int
	}{
		{"function* g() { var yield }", IllegalYieldOrAwaitUsage, 20},
		{"function* g() { function yield() {} }", IllegalYieldOrAwaitUsage, 25},
		{"function* g(a = yield) {}", IllegalYieldOrAwaitUsage, 16},
		{"function* g() { function* h(a = yield) {} }", IllegalYieldOrAwaitUsage, 32},
		{"async function f() { var await }", IllegalYieldOrAwaitUsage, 25},
		{"async function f(a = await 1) {}", IllegalYieldOrAwaitUsage, 21},
		{"async function f(await) {}", IllegalYieldOrAwaitUsage, 17},
		{"function* g() { (yield) => 1 }", IllegalYieldOrAwaitUsage, 17},
		{`"use strict"; yield`, ReservedWordMisuse, 14},
		{"class A { static { await } }", ReservedWordMisuse, 19},
		{"class A { x = arguments }", ReservedWordMisuse, 14},
		{"class A { static { arguments } }", ReservedWordMisuse, 19},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseScript(tc.input)
			assertSyntaxError(t, err, tc.kind, tc.pos)
		})
	}

	for _, src := range []string{"await x", "function f() { await x }", "async function f() { function g() { await x } }"} {
		_, err := ParseScript(src)
		assert.Error(t, err, src)
	}
	_, err = ParseModule("var await")
	assert.Error(t, err)
	_, err = ParseModule("function f() { await x }")
	assert.Error(t, err)
}

func TestLiterals(t *testing.T) {
	re := parseExpr(t, "/a[/]b/gi").(*ast.Literal)
	require.NotNil(t, re.Regex)
	assert.Equal(t, "a[/]b", re.Regex.Pattern)
	assert.Equal(t, "gi", re.Regex.Flags)
	assert.NotNil(t, re.Value)
	assert.Equal(t, "/a[/]b/gi", re.Raw)

	num := parseExpr(t, "0x10").(*ast.Literal)
	assert.Equal(t, 16.0, num.Value)
	assert.Equal(t, "0x10", num.Raw)

	bigint := parseExpr(t, "0x10n").(*ast.Literal)
	assert.Equal(t, "16", bigint.Bigint)
	assert.Equal(t, int64(16), bigint.BigInt().Int64())

	str := parseExpr(t, `'a\'b'`).(*ast.Literal)
	assert.Equal(t, "a'b", str.Value)
	assert.Equal(t, `'a\'b'`, str.Raw)

	null := parseExpr(t, "null").(*ast.Literal)
	assert.Nil(t, null.Value)
	assert.Equal(t, "null", null.Raw)

	boolean := parseExpr(t, "true").(*ast.Literal)
	assert.Equal(t, true, boolean.Value)
}

func TestDelete(t *testing.T) {
	for _, src := range []string{"delete a", "delete (a)", `"use strict"; delete a.b`, `"use strict"; delete a[0]`} {
		_, err := ParseScript(src)
		assert.NoError(t, err, src)
	}

	_, err := ParseScript(`"use strict"; delete a`)
	assertSyntaxError(t, err, StrictModeViolation, 14)

	_, err = ParseScript(`"use strict"; delete (a)`, WithPreserveParens())
	assertSyntaxError(t, err, StrictModeViolation, 14)

	_, err = ParseScript("class A { #x; m() { delete this.#x } }")
	assertSyntaxError(t, err, UnexpectedToken, 20)

	_, err = ParseScript("class A { #x; m() { delete this?.#x } }")
	assertSyntaxError(t, err, UnexpectedToken, 20)
}

func TestPreserveParens(t *testing.T) {
	paren := parseExpr(t, "(a)", WithPreserveParens()).(*ast.ParenthesizedExpression)
	assert.Equal(t, 0, paren.Start)
	assert.Equal(t, 3, paren.End)
	assert.Equal(t, "a", paren.Expression.(*ast.Identifier).Name)

	seq := parseExpr(t, "(a, b)", WithPreserveParens()).(*ast.ParenthesizedExpression)
	inner := seq.Expression.(*ast.SequenceExpression)
	assert.Equal(t, 1, inner.Start)
	assert.Equal(t, 5, inner.End)

	assign := parseExpr(t, "((a)) = 1", WithPreserveParens()).(*ast.AssignmentExpression)
	assert.Equal(t, "a", assign.Left.(*ast.Identifier).Name)

	_, err := ParseScript("([a]) = 1", WithPreserveParens())
	assert.Error(t, err)

	assert.IsType(t, &ast.Identifier{}, parseExpr(t, "(a)"))
}

func TestParseExpressionAt(t *testing.T) {
	expr, err := ParseExpressionAt("x = a + b; rest", 4, DefaultOptions)
	require.NoError(t, err)
	bin := expr.(*ast.BinaryExpression)
	assert.Equal(t, 4, bin.Start)
	assert.Equal(t, 9, bin.End)

	_, err = ParseExpressionAt("x = a + ; rest", 4, DefaultOptions)
	assertSyntaxError(t, err, UnexpectedToken, 8)

	_, err = ParseExpressionAt("a", 0, Options{})
	assert.Error(t, err)
	assert.Equal(t, Unknown, KindOf(err))

	for _, offset := range []int{-1, 4, 100} {
		_, err = ParseExpressionAt("a+b", offset, DefaultOptions)
		require.Error(t, err)
		assert.EqualError(t, err, fmt.Sprintf("offset %d out of range", offset))
		assert.Equal(t, Unknown, KindOf(err))
	}

	expr, err = ParseExpressionAt("a+b", 3, DefaultOptions)
	assertSyntaxError(t, err, UnexpectedToken, 3)
	assert.Nil(t, expr)
}

func TestSpansAndLocations(t *testing.T) {
	program := mustParseScript(t, "foo(\n  bar + 1\n)", WithLocations(), WithRanges(), WithSourceFile("x.js"))
	call := program.Body[0].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	assert.Equal(t, 0, call.Start)
	assert.Equal(t, 16, call.End)
	assert.Equal(t, &[2]int{0, 16}, call.Range)
	require.NotNil(t, call.Loc)
	assert.Equal(t, ast.Position{Line: 1, Column: 0}, call.Loc.Start)
	assert.Equal(t, ast.Position{Line: 3, Column: 1}, call.Loc.End)
	assert.Equal(t, "x.js", call.Loc.Source)

	arg := call.Arguments[0].(*ast.BinaryExpression)
	assert.Equal(t, 7, arg.Start)
	assert.Equal(t, 14, arg.End)
	assert.Equal(t, ast.Position{Line: 2, Column: 2}, arg.Loc.Start)
	assert.Equal(t, ast.Position{Line: 2, Column: 9}, arg.Loc.End)

	plain := mustParseScript(t, "a")
	assert.Nil(t, plain.Loc)
	assert.Nil(t, plain.Range)
}
