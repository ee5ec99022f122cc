package parser

import (
	"strings"

	"github.com/dlclark/regexp2"
)

const validRegExpFlags = "dgimsuyv"

// validateRegExpFlags checks the flags of the current regular expression
// token. The pattern body is not validated.
func (p *Parser) validateRegExpFlags(flags string) {
	for i := 0; i < len(flags); i++ {
		flag := flags[i]
		if strings.IndexByte(validRegExpFlags, flag) < 0 {
			p.raise(p.start, LexicalError, "Invalid regular expression flag")
		}
		if strings.IndexByte(flags[i+1:], flag) >= 0 {
			p.raise(p.start, LexicalError, "Duplicate regular expression flag")
		}
	}
	if strings.ContainsRune(flags, 'u') && strings.ContainsRune(flags, 'v') {
		p.raise(p.start, LexicalError, "Invalid regular expression flag")
	}
}

// compileRegExp builds the runtime value of a regular expression literal.
// Patterns the engine cannot handle yield a nil value rather than an
// error, so that the literal still parses.
func compileRegExp(pattern, flags string) interface{} {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if strings.ContainsRune(flags, 's') {
		// The ECMAScript option cannot be combined with Singleline.
		opts = regexp2.Singleline
	}
	if strings.ContainsRune(flags, 'i') {
		opts |= regexp2.IgnoreCase
	}
	if strings.ContainsRune(flags, 'm') {
		opts |= regexp2.Multiline
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		logger().Debugf("regular expression /%s/%s has no runtime value: %s", pattern, flags, err)
		return nil
	}
	return re
}
