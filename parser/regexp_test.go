package parser

import (
	"testing"

	"github.com/devside/esparse/ast"
	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegExpValues(t *testing.T) {
	tests := []struct {
		src   string
		input string
		match bool
	}{
		{"/ab/", "xaby", true},
		{"/ab/", "AB", false},
		{"/ab/i", "AB", true},
		{"/^b/", "a\nb", false},
		{"/^b/m", "a\nb", true},
		{"/a.b/", "a\nb", false},
		{"/a.b/s", "a\nb", true},
		{"/a.b/si", "A\nB", true},
	}

	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			lit := parseExpr(t, tc.src).(*ast.Literal)
			re, ok := lit.Value.(*regexp2.Regexp)
			require.True(t, ok, "%T", lit.Value)
			matched, err := re.MatchString(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.match, matched)
		})
	}
}

func TestRegExpWithoutRuntimeValue(t *testing.T) {
	assert.Nil(t, compileRegExp("(", ""))
	assert.Nil(t, compileRegExp("a[", "g"))
	assert.NotNil(t, compileRegExp("a|b", "gy"))
}

func TestRegExpFlagErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   int
	}{
		{"/a/gg", 0},
		{"x = /a/x", 4},
		{"/a/uv", 0},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseScript(tc.input)
			assertSyntaxError(t, err, LexicalError, tc.pos)
		})
	}
}
