package parser

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// wordSet is a set of reserved words.
type wordSet map[string]bool

func makeWordSet(lists ...string) wordSet {
	set := wordSet{}
	for _, words := range lists {
		for _, w := range strings.Fields(words) {
			set[w] = true
		}
	}
	return set
}

// Reserved word lists for the sloppy, strict and strict-binding dialects.
// `await` is added to every list for module code.
const (
	reservedWordsSloppy     = "enum"
	reservedWordsStrict     = "implements interface let package private protected public static yield"
	reservedWordsStrictBind = "eval arguments"
)

// And the keywords
const keywordList = "break case catch continue debugger default do else finally for function if return switch throw try var while with null true false instanceof typeof void delete new in this const class extends export import super"

var keywords = makeWordSet(keywordList)

// ## Character categories

// ID_Start and ID_Continue as defined by UAX #31, which is what the
// IdentifierName production builds on.
var (
	idStartTable    = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)
	idContinueTable = rangetable.Merge(idStartTable, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
)

// Test whether a given character code starts an identifier.
func isIdentifierStart(code rune) bool {
	if code < 65 {
		return code == 36
	}
	if code < 91 {
		return true
	}
	if code < 97 {
		return code == 95
	}
	if code < 123 {
		return true
	}
	if code < 0xaa {
		return false
	}
	return unicode.Is(idStartTable, code)
}

// Test whether a given character is part of an identifier.
func isIdentifierChar(code rune) bool {
	if code < 48 {
		return code == 36
	}
	if code < 58 {
		return true
	}
	if code < 65 {
		return false
	}
	if code < 91 {
		return true
	}
	if code < 97 {
		return code == 95
	}
	if code < 123 {
		return true
	}
	if code < 0xaa {
		return false
	}
	// ZWNJ and ZWJ
	if code == 0x200c || code == 0x200d {
		return true
	}
	return unicode.Is(idContinueTable, code)
}
