package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedeclarationAllowed(t *testing.T) {
	for _, src := range []string{
		"var a; var a",
		"function a() {} var a",
		"var a; function a() {}",
		"function a() {} function a() {}",
		"{ function a() {} function a() {} }",
		"function f() { function a() {} var a }",
		"function f(a) { var a }",
		"function f(a) { function a() {} }",
		"function f(a, a) {}",
		"function f() { var a; { let a } }",
		"let a; { let a }",
		"let a; { function a() {} }",
		"for (let a;;) { let a }",
		"for (let a of b) { let a }",
		"try {} catch (e) { var e }",
		"try {} catch (e) { { let e } }",
		"try {} catch { let e }",
		"switch (x) { case 1: let a } let a",
	} {
		_, err := ParseScript(src)
		assert.NoError(t, err, src)
	}
}

func TestRedeclarationErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		pos   int
	}{
		{"let a; let a", DuplicateBinding, 11},
		{"let a; var a", DuplicateBinding, 11},
		{"var a; let a", DuplicateBinding, 11},
		{"const a = 1; function a() {}", DuplicateBinding, 22},
		{"function a() {} let a", DuplicateBinding, 20},
		{"class a {} var a", DuplicateBinding, 15},
		{"{ let a; { var a } }", DuplicateBinding, 15},
		{"{ function a() {} var a }", DuplicateBinding, 22},
		{"{ let a; function a() {} }", DuplicateBinding, 18},
		{"'use strict'; { function a() {} function a() {} }", DuplicateBinding, 41},
		{"{ async function a() {} function a() {} }", DuplicateBinding, 33},
		{"function f(a) { let a }", DuplicateBinding, 20},
		{"function f() { let a; var a }", DuplicateBinding, 26},
		{"try {} catch (e) { let e }", DuplicateBinding, 23},
		{"try {} catch ([e]) { var e }", DuplicateBinding, 25},
		{"try {} catch ([e, e]) {}", DuplicateBinding, 18},
		{"try {} catch (e) { function e() {} }", DuplicateBinding, 28},
		{"for (let a of b) { var a }", DuplicateBinding, 23},
		{"switch (x) { case 1: let a; case 2: let a }", DuplicateBinding, 40},
		{"let [a, a] = b", DuplicateBinding, 8},
		{"const {a, b: a} = c", DuplicateBinding, 13},
		{"let let = 1", ReservedWordMisuse, 4},
		{"'use strict'; function f(a, a) {}", DuplicateBinding, 28},
		{"function f(a, [a]) {}", DuplicateBinding, 15},
		{"function f(a, a) { 'use strict' }", DuplicateBinding, 14},
		{"(function (a, a) { 'use strict' })", DuplicateBinding, 14},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseScript(tc.input)
			assertSyntaxError(t, err, tc.kind, tc.pos)
		})
	}
}

func TestModuleTopLevelFunctionsAreLexical(t *testing.T) {
	_, err := ParseScript("function a() {} let b; var a")
	assert.NoError(t, err)

	_, err = ParseModule("function a() {} let b; var a")
	assertSyntaxError(t, err, DuplicateBinding, 27)

	_, err = ParseModule("function f() { function a() {} var a }")
	assert.NoError(t, err)
}
