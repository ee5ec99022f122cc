package parser

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/devside/esparse/ast"
)

// Token is the representation of a token handed to the OnToken callback.
// Inside the parser, tokens only exist as fields of the Parser.
type Token struct {
	Type  *TokenType
	Value interface{}
	Start int
	End   int
	Loc   *ast.SourceLocation
	Range *[2]int
}

func newToken(p *Parser) Token {
	tok := Token{Type: p.typ, Value: p.value, Start: p.start, End: p.end}
	if p.options.Locations {
		tok.Loc = p.sourceLocation(p.startLoc, p.endLoc)
	}
	if p.options.Ranges {
		tok.Range = &[2]int{p.start, p.end}
	}
	return tok
}

// templateValue is the value of a template token: one chunk of a
// template literal, between '`' or '}' and '${' or '`'.
type templateValue struct {
	cooked       *string
	raw          string
	tail         bool
	contentStart int
	contentEnd   int
	contentLoc   [2]ast.Position
}

// regexpValue is the value of a regexp token.
type regexpValue struct {
	pattern string
	flags   string
	value   interface{}
}

// ## Tokenizer

// Move to the next token.
func (p *Parser) next() {
	p.step(false)
}

// step moves to the next token. Unless ignoreEscapeSequenceInKeyword is
// set, the current token must not be a keyword spelled with escapes.
func (p *Parser) step(ignoreEscapeSequenceInKeyword bool) {
	if !ignoreEscapeSequenceInKeyword && p.typ.keyword != "" && p.containsEsc {
		p.raise(p.start, ReservedWordMisuse, "Escape sequence in keyword "+p.typ.keyword)
	}
	if p.options.OnToken != nil {
		p.options.OnToken(newToken(p))
	}

	p.lastTokEnd = p.end
	p.lastTokStart = p.start
	p.lastTokEndLoc = p.endLoc
	p.lastTokStartLoc = p.startLoc
	p.nextToken()
}

// Read a single token, updating the parser's token-related fields.
func (p *Parser) nextToken() {
	p.skipSpace()

	p.start = p.pos
	if p.options.Locations {
		p.startLoc = p.curPosition()
	}
	if p.pos >= len(p.input) {
		p.finishToken(tt.eof, nil)
		return
	}

	p.readToken(p.fullCharCodeAtPos())
}

func (p *Parser) readToken(code rune) {
	// Identifier or keyword. '\uXXXX' sequences are allowed in
	// identifiers, so '\' also dispatches to that.
	if isIdentifierStart(code) || code == '\\' {
		p.readWord()
		return
	}
	p.getTokenFromCode(code)
}

func (p *Parser) fullCharCodeAtPos() rune {
	r, _ := runeAt(p.input, p.pos)
	return r
}

func (p *Parser) skipBlockComment() {
	var startLoc ast.Position
	if p.options.OnComment != nil {
		startLoc = p.curPosition()
	}
	start := p.pos
	end := indexFrom(p.input, "*/", p.pos+2)
	if end == -1 {
		p.raise(p.pos, LexicalError, "Unterminated comment")
	}
	p.pos = end + 2
	for next := nextLineBreak(p.input, start, p.pos); next >= 0; next = nextLineBreak(p.input, next, p.pos) {
		p.curLine++
		p.lineStart = next
	}
	if p.options.OnComment != nil {
		p.onComment(true, p.input[start+2:end], start, p.pos, startLoc)
	}
}

func (p *Parser) skipLineComment(startSkip int) {
	start := p.pos
	var startLoc ast.Position
	if p.options.OnComment != nil {
		startLoc = p.curPosition()
	}
	p.pos += startSkip
	for p.pos < len(p.input) {
		ch, size := runeAt(p.input, p.pos)
		if isNewLine(ch) {
			break
		}
		p.pos += size
	}
	if p.options.OnComment != nil {
		p.onComment(false, p.input[start+startSkip:p.pos], start, p.pos, startLoc)
	}
}

func (p *Parser) onComment(block bool, text string, start, end int, startLoc ast.Position) {
	c := Comment{Block: block, Text: text, Start: start, End: end}
	if p.options.Locations {
		c.Loc = p.sourceLocation(startLoc, p.curPosition())
	}
	p.options.OnComment(c)
}

// Called at the start of the parse and after every token. Skips
// whitespace and comments, and keeps track of line numbers.
func (p *Parser) skipSpace() {
loop:
	for p.pos < len(p.input) {
		ch, size := runeAt(p.input, p.pos)
		switch ch {
		case 32, 160, 9, 11, 12, 0xfeff:
			p.pos += size
		case 13:
			if charAt(p.input, p.pos+1) == 10 {
				p.pos++
			}
			fallthrough
		case 10, 0x2028, 0x2029:
			p.pos += size
			p.curLine++
			p.lineStart = p.pos
		case '/':
			switch charAt(p.input, p.pos+1) {
			case '*':
				p.skipBlockComment()
			case '/':
				p.skipLineComment(2)
			default:
				break loop
			}
		default:
			if isWhiteSpace(ch) {
				p.pos += size
			} else {
				break loop
			}
		}
	}
}

// Called at the end of every token. Sets end, value and type.
func (p *Parser) finishToken(typ *TokenType, val interface{}) {
	p.end = p.pos
	if p.options.Locations {
		p.endLoc = p.curPosition()
	}
	p.typ = typ
	p.value = val
}

// ### Token reading

// This is the function that is called to fetch the next token. It is
// somewhat obscure, because it works in character codes rather than
// characters, and because operator parsing has been inlined into it.
//
// All in the name of speed.

func (p *Parser) readTokenDot() {
	next := charAt(p.input, p.pos+1)
	if next >= '0' && next <= '9' {
		p.readNumber(true)
		return
	}
	if next == '.' && charAt(p.input, p.pos+2) == '.' {
		p.pos += 3
		p.finishToken(tt.ellipsis, nil)
		return
	}
	p.pos++
	p.finishToken(tt.dot, nil)
}

func (p *Parser) readTokenSlash() {
	if charAt(p.input, p.pos+1) == '=' {
		p.finishOp(tt.assign, 2)
		return
	}
	p.finishOp(tt.slash, 1)
}

func (p *Parser) readTokenMultModulo(code byte) {
	next := charAt(p.input, p.pos+1)
	size := 1
	typ := tt.modulo
	if code == '*' {
		typ = tt.star
	}

	// exponentiation operator ** and **=
	if code == '*' && next == '*' {
		size++
		typ = tt.starstar
		next = charAt(p.input, p.pos+2)
	}

	if next == '=' {
		p.finishOp(tt.assign, size+1)
		return
	}
	p.finishOp(typ, size)
}

func (p *Parser) readTokenPipeAmp(code byte) {
	next := charAt(p.input, p.pos+1)
	if next == code {
		if charAt(p.input, p.pos+2) == '=' {
			p.finishOp(tt.assign, 3)
			return
		}
		if code == '|' {
			p.finishOp(tt.logicalOR, 2)
		} else {
			p.finishOp(tt.logicalAND, 2)
		}
		return
	}
	if next == '=' {
		p.finishOp(tt.assign, 2)
		return
	}
	if code == '|' {
		p.finishOp(tt.bitwiseOR, 1)
	} else {
		p.finishOp(tt.bitwiseAND, 1)
	}
}

func (p *Parser) readTokenCaret() {
	if charAt(p.input, p.pos+1) == '=' {
		p.finishOp(tt.assign, 2)
		return
	}
	p.finishOp(tt.bitwiseXOR, 1)
}

func (p *Parser) readTokenPlusMin(code byte) {
	next := charAt(p.input, p.pos+1)
	if next == code {
		if next == '-' && !p.inModule && charAt(p.input, p.pos+2) == '>' &&
			(p.lastTokEnd == 0 || hasLineBreak(p.input[p.lastTokEnd:p.pos])) {
			// A `-->` line comment
			p.skipLineComment(3)
			p.skipSpace()
			p.nextToken()
			return
		}
		p.finishOp(tt.incDec, 2)
		return
	}
	if next == '=' {
		p.finishOp(tt.assign, 2)
		return
	}
	p.finishOp(tt.plusMin, 1)
}

func (p *Parser) readTokenLtGt(code byte) {
	next := charAt(p.input, p.pos+1)
	size := 1
	if next == code {
		size = 2
		if code == '>' && charAt(p.input, p.pos+2) == '>' {
			size = 3
		}
		if charAt(p.input, p.pos+size) == '=' {
			p.finishOp(tt.assign, size+1)
			return
		}
		p.finishOp(tt.bitShift, size)
		return
	}
	if next == '!' && code == '<' && !p.inModule && charAt(p.input, p.pos+2) == '-' &&
		charAt(p.input, p.pos+3) == '-' {
		// `<!--`, an XML-style comment that should be interpreted as a line comment
		p.skipLineComment(4)
		p.skipSpace()
		p.nextToken()
		return
	}
	if next == '=' {
		size = 2
	}
	p.finishOp(tt.relational, size)
}

func (p *Parser) readTokenEqExcl(code byte) {
	next := charAt(p.input, p.pos+1)
	if next == '=' {
		size := 2
		if charAt(p.input, p.pos+2) == '=' {
			size = 3
		}
		p.finishOp(tt.equality, size)
		return
	}
	if code == '=' && next == '>' {
		// '=>'
		p.pos += 2
		p.finishToken(tt.arrow, nil)
		return
	}
	if code == '=' {
		p.finishOp(tt.eq, 1)
	} else {
		p.finishOp(tt.prefix, 1)
	}
}

func (p *Parser) readTokenQuestion() {
	next := charAt(p.input, p.pos+1)
	if next == '.' {
		next2 := charAt(p.input, p.pos+2)
		if next2 < '0' || next2 > '9' {
			p.finishOp(tt.questionDot, 2)
			return
		}
	}
	if next == '?' {
		if charAt(p.input, p.pos+2) == '=' {
			p.finishOp(tt.assign, 3)
			return
		}
		p.finishOp(tt.coalesce, 2)
		return
	}
	p.finishOp(tt.question, 1)
}

func (p *Parser) readTokenNumberSign() {
	p.pos++
	code := p.fullCharCodeAtPos()
	if isIdentifierStart(code) || code == '\\' {
		p.finishToken(tt.privateID, p.readWord1())
		return
	}
	p.raise(p.pos-1, LexicalError, "Unexpected character '#'")
}

func (p *Parser) getTokenFromCode(code rune) {
	switch code {
	// The interpretation of a dot depends on whether it is followed
	// by a digit or another two dots.
	case '.':
		p.readTokenDot()

	// Punctuation tokens.
	case '(':
		p.pos++
		p.finishToken(tt.parenL, nil)
	case ')':
		p.pos++
		p.finishToken(tt.parenR, nil)
	case ';':
		p.pos++
		p.finishToken(tt.semi, nil)
	case ',':
		p.pos++
		p.finishToken(tt.comma, nil)
	case '[':
		p.pos++
		p.finishToken(tt.bracketL, nil)
	case ']':
		p.pos++
		p.finishToken(tt.bracketR, nil)
	case '{':
		p.pos++
		p.finishToken(tt.braceL, nil)
	case '}':
		p.pos++
		p.finishToken(tt.braceR, nil)
	case ':':
		p.pos++
		p.finishToken(tt.colon, nil)

	case '?':
		p.readTokenQuestion()

	case '`':
		p.pos++
		p.readTemplateToken()

	case '0':
		switch charAt(p.input, p.pos+1) {
		case 'x', 'X':
			p.readRadixNumber(16)
			return
		case 'o', 'O':
			p.readRadixNumber(8)
			return
		case 'b', 'B':
			p.readRadixNumber(2)
			return
		}
		p.readNumber(false)

	// Anything else beginning with a digit is an integer, octal
	// number, or float.
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		p.readNumber(false)

	// Quotes produce strings.
	case '"', '\'':
		p.readString(byte(code))

	// Operators are parsed inline in tiny state machines. '=' is
	// handled specially because it can also start an arrow.
	case '/':
		p.readTokenSlash()
	case '%', '*':
		p.readTokenMultModulo(byte(code))
	case '|', '&':
		p.readTokenPipeAmp(byte(code))
	case '^':
		p.readTokenCaret()
	case '+', '-':
		p.readTokenPlusMin(byte(code))
	case '<', '>':
		p.readTokenLtGt(byte(code))
	case '=', '!':
		p.readTokenEqExcl(byte(code))
	case '~':
		p.finishOp(tt.prefix, 1)
	case '#':
		p.readTokenNumberSign()

	default:
		p.raise(p.pos, LexicalError, "Unexpected character '"+string(code)+"'")
	}
}

func (p *Parser) finishOp(typ *TokenType, size int) {
	str := p.input[p.pos : p.pos+size]
	p.pos += size
	p.finishToken(typ, str)
}

// readRegexp rescans the current `/` or `/=` token as a regular
// expression literal. The parser calls it when a slash appears where an
// expression may start.
func (p *Parser) readRegexp() {
	p.pos = p.start + 1
	start := p.pos
	escaped, inClass := false, false
	for {
		if p.pos >= len(p.input) {
			p.raise(start, LexicalError, "Unterminated regular expression")
		}
		ch, size := runeAt(p.input, p.pos)
		if isNewLine(ch) {
			p.raise(start, LexicalError, "Unterminated regular expression")
		}
		if !escaped {
			if ch == '[' {
				inClass = true
			} else if ch == ']' && inClass {
				inClass = false
			} else if ch == '/' && !inClass {
				break
			}
			escaped = ch == '\\'
		} else {
			escaped = false
		}
		p.pos += size
	}
	pattern := p.input[start:p.pos]
	p.pos++
	flagsStart := p.pos
	flags := p.readWord1()
	if p.containsEsc {
		p.raise(flagsStart, LexicalError, "Unexpected token")
	}

	p.validateRegExpFlags(flags)
	p.finishToken(tt.regexp, &regexpValue{pattern: pattern, flags: flags, value: compileRegExp(pattern, flags)})
}

// Read an integer in the given radix. Return false if zero digits were
// read, or if length is not -1 and the number of digits differs from it.
// The returned total saturates; it is only meaningful for escapes.
func (p *Parser) readInt(radix int, length int, maybeLegacyOctalNumericLiteral bool) (int, bool) {
	// length is used for character escape sequences. In that case,
	// disallow separators.
	allowSeparators := length < 0
	// maybeLegacyOctalNumericLiteral is true if the number has no prefix
	// (0x, 0o, 0b) and isn't a fraction part nor exponent part. In that
	// case, if the first digit is zero then disallow separators.
	isLegacyOctalNumericLiteral := maybeLegacyOctalNumericLiteral && charAt(p.input, p.pos) == '0'

	start, total, lastCode := p.pos, 0, byte(0)
	for i := 0; length < 0 || i < length; i, p.pos = i+1, p.pos+1 {
		if p.pos >= len(p.input) {
			break
		}
		code := p.input[p.pos]
		if allowSeparators && code == '_' {
			if isLegacyOctalNumericLiteral {
				p.raise(p.pos, LexicalError, "Numeric separator is not allowed in legacy octal numeric literals")
			}
			if lastCode == '_' {
				p.raise(p.pos, LexicalError, "Numeric separator must be exactly one underscore")
			}
			if i == 0 {
				p.raise(p.pos, LexicalError, "Numeric separator is not allowed at the first of digits")
			}
			lastCode = code
			continue
		}
		var val int
		switch {
		case code >= 'a':
			val = int(code) - 'a' + 10
		case code >= 'A':
			val = int(code) - 'A' + 10
		case code >= '0' && code <= '9':
			val = int(code) - '0'
		default:
			val = math.MaxInt32
		}
		if val >= radix {
			break
		}
		lastCode = code
		if total <= math.MaxInt32 {
			total = total*radix + val
		}
	}
	if allowSeparators && lastCode == '_' {
		p.raise(p.pos-1, LexicalError, "Numeric separator is not allowed at the last of digits")
	}
	if p.pos == start || length >= 0 && p.pos-start != length {
		return 0, false
	}
	return total, true
}

func stringToNumber(str string, isLegacyOctalNumericLiteral bool) float64 {
	if isLegacyOctalNumericLiteral {
		n, _ := new(big.Int).SetString(str, 8)
		f, _ := new(big.Float).SetInt(n).Float64()
		return f
	}
	// ParseFloat reports ErrRange with ±Inf or 0 as the value, which is
	// the value the literal denotes.
	f, _ := strconv.ParseFloat(strings.ReplaceAll(str, "_", ""), 64)
	return f
}

func stringToBigInt(str string) *big.Int {
	n, _ := new(big.Int).SetString(strings.ReplaceAll(str, "_", ""), 0)
	return n
}

func (p *Parser) readRadixNumber(radix int) {
	start := p.pos
	p.pos += 2 // 0x
	if _, ok := p.readInt(radix, -1, false); !ok {
		p.raise(start+2, LexicalError, "Expected number in radix "+strconv.Itoa(radix))
	}
	if charAt(p.input, p.pos) == 'n' {
		val := stringToBigInt(p.input[start:p.pos])
		p.pos++
		if isIdentifierStart(p.fullCharCodeAtPos()) {
			p.raise(p.pos, LexicalError, "Identifier directly after number")
		}
		p.finishToken(tt.num, val)
		return
	}
	if isIdentifierStart(p.fullCharCodeAtPos()) {
		p.raise(p.pos, LexicalError, "Identifier directly after number")
	}
	digits := strings.ReplaceAll(p.input[start+2:p.pos], "_", "")
	n, _ := new(big.Int).SetString(digits, radix)
	f, _ := new(big.Float).SetInt(n).Float64()
	p.finishToken(tt.num, f)
}

// Read an integer, octal integer, or floating-point number.
func (p *Parser) readNumber(startsWithDot bool) {
	start := p.pos
	if !startsWithDot {
		if _, ok := p.readInt(10, -1, true); !ok {
			p.raise(start, LexicalError, "Invalid number")
		}
	}
	octal := p.pos-start >= 2 && p.input[start] == '0'
	if octal && p.strict {
		p.raise(start, StrictModeViolation, "Invalid number")
	}
	next := charAt(p.input, p.pos)
	if !octal && !startsWithDot && next == 'n' {
		val := stringToBigInt(p.input[start:p.pos])
		p.pos++
		if isIdentifierStart(p.fullCharCodeAtPos()) {
			p.raise(p.pos, LexicalError, "Identifier directly after number")
		}
		p.finishToken(tt.num, val)
		return
	}
	if octal && strings.ContainsAny(p.input[start:p.pos], "89") {
		octal = false
	}
	if next == '.' && !octal {
		p.pos++
		p.readInt(10, -1, false)
		next = charAt(p.input, p.pos)
	}
	if (next == 'E' || next == 'e') && !octal {
		p.pos++
		next = charAt(p.input, p.pos)
		if next == '+' || next == '-' {
			p.pos++
		}
		if _, ok := p.readInt(10, -1, false); !ok {
			p.raise(start, LexicalError, "Invalid number")
		}
	}
	if isIdentifierStart(p.fullCharCodeAtPos()) {
		p.raise(p.pos, LexicalError, "Identifier directly after number")
	}

	p.finishToken(tt.num, stringToNumber(p.input[start:p.pos], octal))
}

// Read a string value, interpreting backslash-escapes.
func (p *Parser) readCodePoint() rune {
	var code int
	if charAt(p.input, p.pos) == '{' {
		p.pos++
		codePos := p.pos
		length := strings.IndexByte(p.input[p.pos:], '}')
		code = p.readHexChar(length)
		p.pos++
		if code > 0x10FFFF {
			p.invalidStringToken(codePos, "Code point out of bounds")
		}
	} else {
		code = p.readHexChar(4)
	}
	return rune(code)
}

func (p *Parser) readString(quote byte) {
	var out strings.Builder
	p.pos++
	chunkStart := p.pos
	for {
		if p.pos >= len(p.input) {
			p.raise(p.start, LexicalError, "Unterminated string constant")
		}
		ch, size := runeAt(p.input, p.pos)
		if ch == rune(quote) {
			break
		}
		switch {
		case ch == '\\':
			out.WriteString(p.input[chunkStart:p.pos])
			out.WriteString(p.readEscapedChar(false))
			chunkStart = p.pos
		case ch == 0x2028 || ch == 0x2029:
			p.pos += size
			p.curLine++
			p.lineStart = p.pos
		default:
			if isNewLine(ch) {
				p.raise(p.start, LexicalError, "Unterminated string constant")
			}
			p.pos += size
		}
	}
	out.WriteString(p.input[chunkStart:p.pos])
	p.pos++
	p.finishToken(tt.str, out.String())
}

// errInvalidTemplateEscape unwinds the cooked template reader when it
// meets an escape that is only legal in tagged templates.
var errInvalidTemplateEscape = &struct{ name string }{"invalid template escape"}

func (p *Parser) invalidStringToken(pos int, message string) {
	if p.inTemplateElement {
		panic(errInvalidTemplateEscape)
	}
	kind := LexicalError
	if strings.HasPrefix(message, "Octal") || message == "Invalid escape sequence" {
		kind = StrictModeViolation
	}
	p.raise(pos, kind, message)
}

// readTemplateToken reads one template chunk starting at p.pos, which is
// just after the opening '`' or the '}' closing a substitution.
func (p *Parser) readTemplateToken() {
	val := &templateValue{contentStart: p.pos}
	val.contentLoc[0] = p.curPosition()
	cooked, ok := p.tryReadTemplateCooked()
	if ok {
		val.cooked = &cooked
	} else {
		p.readInvalidTemplateToken()
	}
	val.contentEnd = p.pos
	val.contentLoc[1] = p.curPosition()
	val.raw = normalizeLineEndings(p.input[val.contentStart:val.contentEnd])
	if charAt(p.input, p.pos) == '`' {
		val.tail = true
		p.pos++
	} else {
		p.pos += 2 // ${
	}
	p.finishToken(tt.template, val)
}

// rescanTemplateContinuation turns the current `}` token into the template
// chunk that follows a substitution.
func (p *Parser) rescanTemplateContinuation() {
	p.pos = p.start + 1
	p.readTemplateToken()
}

func (p *Parser) tryReadTemplateCooked() (cooked string, ok bool) {
	p.inTemplateElement = true
	defer func() {
		p.inTemplateElement = false
		if r := recover(); r != nil {
			if r != errInvalidTemplateEscape {
				panic(r)
			}
			ok = false
		}
	}()
	return p.readTemplateCooked(), true
}

func (p *Parser) readTemplateCooked() string {
	var out strings.Builder
	chunkStart := p.pos
	for {
		if p.pos >= len(p.input) {
			p.raise(p.start, LexicalError, "Unterminated template")
		}
		ch, size := runeAt(p.input, p.pos)
		if ch == '`' || ch == '$' && charAt(p.input, p.pos+1) == '{' {
			out.WriteString(p.input[chunkStart:p.pos])
			return out.String()
		}
		switch {
		case ch == '\\':
			out.WriteString(p.input[chunkStart:p.pos])
			out.WriteString(p.readEscapedChar(true))
			chunkStart = p.pos
		case isNewLine(ch):
			out.WriteString(p.input[chunkStart:p.pos])
			p.pos += size
			switch ch {
			case 13:
				if charAt(p.input, p.pos) == 10 {
					p.pos++
				}
				out.WriteByte('\n')
			case 10:
				out.WriteByte('\n')
			default:
				out.WriteRune(ch)
			}
			p.curLine++
			p.lineStart = p.pos
			chunkStart = p.pos
		default:
			p.pos += size
		}
	}
}

// Reads a template chunk to find its end, without cooking it.
func (p *Parser) readInvalidTemplateToken() {
	for p.pos < len(p.input) {
		ch, size := runeAt(p.input, p.pos)
		switch ch {
		case '\\':
			p.pos++
			ch, size = runeAt(p.input, p.pos)
			if isNewLine(ch) {
				if ch == 13 && charAt(p.input, p.pos+1) == 10 {
					size++
				}
				p.curLine++
				p.lineStart = p.pos + size
			}
		case '$':
			if charAt(p.input, p.pos+1) == '{' {
				return
			}
		case '`':
			return
		case 13, 10, 0x2028, 0x2029:
			if ch == 13 && charAt(p.input, p.pos+1) == 10 {
				size++
			}
			p.curLine++
			p.lineStart = p.pos + size
		}
		p.pos += size
	}
	p.raise(p.start, LexicalError, "Unterminated template")
}

func normalizeLineEndings(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

// Used to read escaped characters.
func (p *Parser) readEscapedChar(inTemplate bool) string {
	p.pos++
	ch, size := runeAt(p.input, p.pos)
	p.pos += size
	switch ch {
	case 'n':
		return "\n"
	case 'r':
		return "\r"
	case 'x':
		return string(rune(p.readHexChar(2)))
	case 'u':
		return p.readEscapedCodePoint()
	case 't':
		return "\t"
	case 'b':
		return "\b"
	case 'v':
		return "\u000b"
	case 'f':
		return "\f"
	case 13, 10:
		if ch == 13 && charAt(p.input, p.pos) == 10 {
			p.pos++
		}
		p.lineStart = p.pos
		p.curLine++
		return ""
	case '8', '9':
		if p.strict {
			p.invalidStringToken(p.pos-1, "Invalid escape sequence")
		}
		if inTemplate {
			p.invalidStringToken(p.pos-1, "Invalid escape sequence in template string")
		}
		return string(ch)
	case -1:
		p.raise(p.start, LexicalError, "Unterminated string constant")
	}
	if ch >= '0' && ch <= '7' {
		octalEnd := p.pos - 1
		for octalEnd < len(p.input) && octalEnd-(p.pos-1) < 3 && p.input[octalEnd] >= '0' && p.input[octalEnd] <= '7' {
			octalEnd++
		}
		octalStr := p.input[p.pos-1 : octalEnd]
		octal, _ := strconv.ParseInt(octalStr, 8, 32)
		if octal > 255 {
			octalStr = octalStr[:len(octalStr)-1]
			octal, _ = strconv.ParseInt(octalStr, 8, 32)
		}
		p.pos += len(octalStr) - 1
		next := charAt(p.input, p.pos)
		if (octalStr != "0" || next == '8' || next == '9') && (p.strict || inTemplate) {
			msg := "Octal literal in strict mode"
			if inTemplate {
				msg = "Octal literal in template string"
			}
			p.invalidStringToken(p.pos-1-len(octalStr), msg)
		}
		return string(rune(octal))
	}
	if isNewLine(ch) {
		// Unicode new line characters after \ get removed from output in
		// both template literals and strings
		p.lineStart = p.pos
		p.curLine++
		return ""
	}
	return string(ch)
}

// readEscapedCodePoint decodes a \u escape in a string or template,
// pairing a high surrogate with an immediately following low surrogate
// escape. Lone surrogates decode to U+FFFD.
func (p *Parser) readEscapedCodePoint() string {
	code := p.readCodePoint()
	if code >= 0xd800 && code <= 0xdbff && strings.HasPrefix(p.input[p.pos:], `\u`) {
		save := p.pos
		p.pos += 2
		if low, ok := p.peekHex4(); ok && low >= 0xdc00 && low <= 0xdfff {
			p.pos += 4
			return string(utf16.DecodeRune(code, rune(low)))
		}
		p.pos = save
	}
	return string(code)
}

func (p *Parser) peekHex4() (int, bool) {
	if p.pos+4 > len(p.input) {
		return 0, false
	}
	n, err := strconv.ParseUint(p.input[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// Used to read character escape sequences ('\x', '\u', '\U').
func (p *Parser) readHexChar(length int) int {
	codePos := p.pos
	if length < 0 {
		p.invalidStringToken(codePos, "Bad character escape sequence")
	}
	n, ok := p.readInt(16, length, false)
	if !ok {
		p.invalidStringToken(codePos, "Bad character escape sequence")
	}
	return n
}

// Read an identifier, and return it as a string. Sets p.containsEsc to
// whether the word contained a '\u' escape.
//
// Incrementally adds only escaped chars, adding other chunks as-is as a
// micro-optimization.
func (p *Parser) readWord1() string {
	p.containsEsc = false
	var word strings.Builder
	first := true
	chunkStart := p.pos
	for p.pos < len(p.input) {
		ch, size := runeAt(p.input, p.pos)
		if isIdentifierChar(ch) {
			p.pos += size
		} else if ch == '\\' {
			p.containsEsc = true
			word.WriteString(p.input[chunkStart:p.pos])
			escStart := p.pos
			p.pos++
			if charAt(p.input, p.pos) != 'u' {
				p.raise(p.pos, LexicalError, "Expecting Unicode escape sequence \\uXXXX")
			}
			p.pos++
			esc := p.readCodePoint()
			valid := isIdentifierChar(esc)
			if first {
				valid = isIdentifierStart(esc)
			}
			if !valid || !utf8.ValidRune(esc) {
				p.raise(escStart, LexicalError, "Invalid Unicode escape")
			}
			word.WriteRune(esc)
			chunkStart = p.pos
		} else {
			break
		}
		first = false
	}
	word.WriteString(p.input[chunkStart:p.pos])
	return word.String()
}

// Read an identifier or keyword token. Will check for reserved words
// when necessary.
func (p *Parser) readWord() {
	word := p.readWord1()
	typ := tt.name
	if keywords[word] {
		typ = keywordTypes[word]
	}
	p.finishToken(typ, word)
}
