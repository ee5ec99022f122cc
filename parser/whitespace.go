package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func isNewLine(code rune) bool {
	return code == 10 || code == 13 || code == 0x2028 || code == 0x2029
}

// isWhiteSpace reports whether code is a WhiteSpace code point other than
// a line terminator.
func isWhiteSpace(code rune) bool {
	switch code {
	case 9, 11, 12, 32, 0xa0, 0xfeff:
		return true
	}
	return code > 0x7f && unicode.Is(unicode.Zs, code)
}

// hasLineBreak reports whether s contains a line terminator.
func hasLineBreak(s string) bool {
	for _, r := range s {
		if isNewLine(r) {
			return true
		}
	}
	return false
}

// nextLineBreak returns the offset just past the first line break in
// code[from:end], or -1.
func nextLineBreak(code string, from, end int) int {
	for i := from; i < end; {
		r, size := utf8.DecodeRuneInString(code[i:])
		if isNewLine(r) {
			if r == 13 && i+1 < end && code[i+1] == 10 {
				return i + 2
			}
			return i + size
		}
		i += size
	}
	return -1
}

// skipWhiteSpace returns the offset of the first byte at or after pos that
// is neither whitespace, a line terminator, nor inside a comment, and
// whether a line terminator was crossed on the way. An unterminated block
// comment runs to the end of the input.
func skipWhiteSpace(input string, pos int) (int, bool) {
	sawBreak := false
	for pos < len(input) {
		c := input[pos]
		switch {
		case c == '/' && pos+1 < len(input) && input[pos+1] == '/':
			pos += 2
			for pos < len(input) {
				r, size := utf8.DecodeRuneInString(input[pos:])
				if isNewLine(r) {
					break
				}
				pos += size
			}
		case c == '/' && pos+1 < len(input) && input[pos+1] == '*':
			end := indexFrom(input, "*/", pos+2)
			if end < 0 {
				if hasLineBreak(input[pos:]) {
					sawBreak = true
				}
				return len(input), sawBreak
			}
			if hasLineBreak(input[pos:end]) {
				sawBreak = true
			}
			pos = end + 2
		default:
			r, size := utf8.DecodeRuneInString(input[pos:])
			if isNewLine(r) {
				sawBreak = true
			} else if !isWhiteSpace(r) {
				return pos, sawBreak
			}
			pos += size
		}
	}
	return pos, sawBreak
}

func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i < 0 {
		return -1
	}
	return from + i
}

func charAt(s string, pos int) byte {
	if pos < 0 || pos >= len(s) {
		return 0
	}
	return s[pos]
}

func runeAt(s string, pos int) (rune, int) {
	if pos >= len(s) {
		return -1, 0
	}
	if c := s[pos]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(s[pos:])
}
