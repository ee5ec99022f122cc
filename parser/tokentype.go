package parser

// ## Token types

// The assignment of fine-grained, information-carrying type objects
// allows the tokenizer to store the information it has about a
// token in a way that is very cheap for the parser to look up.
//
// The `startsExpr` property is used to check if the token ends a
// `yield` expression. It is set on all token types that can directly
// start an expression.
//
// `isLoop` marks a keyword as starting a loop, which is important
// to know when parsing a label, in order to allow or disallow
// continue jumps to that label.

// TokenType describes a kind of token.
type TokenType struct {
	label      string
	keyword    string
	startsExpr bool
	isLoop     bool
	isAssign   bool
	prefix     bool
	postfix    bool
	binop      int
}

// Label returns the token type's display name.
func (t *TokenType) Label() string { return t.label }

// Keyword returns the keyword spelling, or "" for non-keyword tokens.
func (t *TokenType) Keyword() string { return t.keyword }

func (t *TokenType) String() string { return t.label }

func binop(name string, prec int) *TokenType {
	return &TokenType{label: name, binop: prec}
}

// Map keyword names to token types.
var keywordTypes = map[string]*TokenType{}

// Succinct definitions of keyword token types
func kw(name string, t TokenType) *TokenType {
	t.label = name
	t.keyword = name
	keywordTypes[name] = &t
	return &t
}

var tt = struct {
	num, regexp, str, name, privateID, template, eof *TokenType

	// Punctuation token types.
	bracketL, bracketR, braceL, braceR, parenL, parenR *TokenType
	comma, semi, colon, dot, question, questionDot     *TokenType
	arrow, ellipsis                                    *TokenType

	// Operators. `binop`, when present, specifies that this operator
	// is a binary operator, and will refer to its precedence. `prefix`
	// and `postfix` mark the operator as a prefix or postfix unary
	// operator. `isAssign` marks all of `=`, `+=`, `-=` etcetera.
	eq, assign, incDec, prefix                               *TokenType
	logicalOR, logicalAND, bitwiseOR, bitwiseXOR, bitwiseAND *TokenType
	equality, relational, bitShift, plusMin, modulo, star    *TokenType
	slash, starstar, coalesce                                *TokenType

	// Keyword token types.
	_break, _case, _catch, _continue, _debugger, _default, _do *TokenType
	_else, _finally, _for, _function, _if, _return, _switch    *TokenType
	_throw, _try, _var, _const, _while, _with, _new, _this     *TokenType
	_super, _class, _extends, _export, _import, _null, _true   *TokenType
	_false, _in, _instanceof, _typeof, _void, _delete          *TokenType
}{
	num:       &TokenType{label: "num", startsExpr: true},
	regexp:    &TokenType{label: "regexp", startsExpr: true},
	str:       &TokenType{label: "string", startsExpr: true},
	name:      &TokenType{label: "name", startsExpr: true},
	privateID: &TokenType{label: "privateId", startsExpr: true},
	template:  &TokenType{label: "template", startsExpr: true},
	eof:       &TokenType{label: "eof"},

	bracketL:    &TokenType{label: "[", startsExpr: true},
	bracketR:    &TokenType{label: "]"},
	braceL:      &TokenType{label: "{", startsExpr: true},
	braceR:      &TokenType{label: "}"},
	parenL:      &TokenType{label: "(", startsExpr: true},
	parenR:      &TokenType{label: ")"},
	comma:       &TokenType{label: ","},
	semi:        &TokenType{label: ";"},
	colon:       &TokenType{label: ":"},
	dot:         &TokenType{label: "."},
	question:    &TokenType{label: "?"},
	questionDot: &TokenType{label: "?."},
	arrow:       &TokenType{label: "=>"},
	ellipsis:    &TokenType{label: "..."},

	eq:         &TokenType{label: "=", isAssign: true},
	assign:     &TokenType{label: "_=", isAssign: true},
	incDec:     &TokenType{label: "++/--", prefix: true, postfix: true, startsExpr: true},
	prefix:     &TokenType{label: "!/~", prefix: true, startsExpr: true},
	logicalOR:  binop("||", 1),
	logicalAND: binop("&&", 2),
	bitwiseOR:  binop("|", 3),
	bitwiseXOR: binop("^", 4),
	bitwiseAND: binop("&", 5),
	equality:   binop("==/!=/===/!==", 6),
	relational: binop("</>/<=/>=", 7),
	bitShift:   binop("<</>>/>>>", 8),
	plusMin:    &TokenType{label: "+/-", binop: 9, prefix: true, startsExpr: true},
	modulo:     binop("%", 10),
	star:       binop("*", 10),
	slash:      binop("/", 10),
	starstar:   &TokenType{label: "**"},
	coalesce:   binop("??", 1),

	_break:      kw("break", TokenType{}),
	_case:       kw("case", TokenType{}),
	_catch:      kw("catch", TokenType{}),
	_continue:   kw("continue", TokenType{}),
	_debugger:   kw("debugger", TokenType{}),
	_default:    kw("default", TokenType{}),
	_do:         kw("do", TokenType{isLoop: true}),
	_else:       kw("else", TokenType{}),
	_finally:    kw("finally", TokenType{}),
	_for:        kw("for", TokenType{isLoop: true}),
	_function:   kw("function", TokenType{startsExpr: true}),
	_if:         kw("if", TokenType{}),
	_return:     kw("return", TokenType{}),
	_switch:     kw("switch", TokenType{}),
	_throw:      kw("throw", TokenType{}),
	_try:        kw("try", TokenType{}),
	_var:        kw("var", TokenType{}),
	_const:      kw("const", TokenType{}),
	_while:      kw("while", TokenType{isLoop: true}),
	_with:       kw("with", TokenType{}),
	_new:        kw("new", TokenType{startsExpr: true}),
	_this:       kw("this", TokenType{startsExpr: true}),
	_super:      kw("super", TokenType{startsExpr: true}),
	_class:      kw("class", TokenType{startsExpr: true}),
	_extends:    kw("extends", TokenType{}),
	_export:     kw("export", TokenType{}),
	_import:     kw("import", TokenType{startsExpr: true}),
	_null:       kw("null", TokenType{startsExpr: true}),
	_true:       kw("true", TokenType{startsExpr: true}),
	_false:      kw("false", TokenType{startsExpr: true}),
	_in:         kw("in", TokenType{binop: 7}),
	_instanceof: kw("instanceof", TokenType{binop: 7}),
	_typeof:     kw("typeof", TokenType{prefix: true, startsExpr: true}),
	_void:       kw("void", TokenType{prefix: true, startsExpr: true}),
	_delete:     kw("delete", TokenType{prefix: true, startsExpr: true}),
}
