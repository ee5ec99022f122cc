package parser

import (
	"github.com/devside/esparse/ast"
	"github.com/pkg/errors"
)

// Source types.
const (
	SourceScript = "script"
	SourceModule = "module"
)

// Comment is passed to the OnComment callback.
type Comment struct {
	Block bool
	Text  string
	Start int
	End   int
	// Loc is only set when Locations is on.
	Loc *ast.SourceLocation
}

// Options configure a parse. The zero value is not ready for use; start
// from DefaultOptions or use the Option helpers with ParseScript and
// ParseModule.
type Options struct {
	// SourceType indicates the mode the code should be parsed in. Can be
	// either SourceScript or SourceModule. This influences global strict
	// mode and parsing of import and export declarations.
	SourceType string
	// When ImpliedStrict is on the whole input is parsed as if it began
	// with a "use strict" directive.
	ImpliedStrict bool
	// When enabled, a return at the top level is not considered an
	// error.
	AllowReturnOutsideFunction bool
	// By default, await identifiers are allowed to appear at the top-level
	// scope only in modules. When enabled, await expressions are also
	// allowed at the top level of scripts, but they are still not allowed
	// in non-async functions.
	AllowAwaitOutsideFunction bool
	// When enabled, a hashbang directive at the beginning of the input is
	// treated as a line comment.
	AllowHashBang bool
	// When Locations is on, the Loc field of every node holds the
	// line/column extent of the node (line 1-based, column 0-based).
	Locations bool
	// OnToken, when set, is called with every token the parser consumes,
	// in source order. The callback must not call back into the parser.
	OnToken func(Token)
	// OnComment, when set, is called with every comment the tokenizer
	// skips. The callback must not call back into the parser.
	OnComment func(Comment)
	// Nodes have their start and end byte offsets recorded in Start and
	// End. To also fill the Range field with the same pair, set Ranges.
	Ranges bool
	// When Locations is on, SourceFile is recorded in every node's Loc.
	SourceFile string
	// When enabled, parenthesized expressions are represented by
	// ParenthesizedExpression nodes instead of being dropped.
	PreserveParens bool
}

// DefaultOptions is the base configuration for the Option helpers.
var DefaultOptions = Options{
	SourceType:    SourceScript,
	AllowHashBang: true,
}

// Option adjusts Options.
type Option func(*Options)

// WithImpliedStrict parses the whole input as strict mode code.
func WithImpliedStrict() Option {
	return func(o *Options) { o.ImpliedStrict = true }
}

// WithLocations attaches line/column information to every node.
func WithLocations() Option {
	return func(o *Options) { o.Locations = true }
}

// WithRanges attaches [start, end] ranges to every node.
func WithRanges() Option {
	return func(o *Options) { o.Ranges = true }
}

// WithSourceFile records name in every node location.
func WithSourceFile(name string) Option {
	return func(o *Options) { o.SourceFile = name }
}

// WithAllowReturnOutsideFunction accepts top-level return statements.
func WithAllowReturnOutsideFunction() Option {
	return func(o *Options) { o.AllowReturnOutsideFunction = true }
}

// WithAllowAwaitOutsideFunction accepts top-level await in scripts.
func WithAllowAwaitOutsideFunction() Option {
	return func(o *Options) { o.AllowAwaitOutsideFunction = true }
}

// WithAllowHashBang controls whether a leading #! line is skipped.
func WithAllowHashBang(allow bool) Option {
	return func(o *Options) { o.AllowHashBang = allow }
}

// WithPreserveParens keeps ParenthesizedExpression nodes.
func WithPreserveParens() Option {
	return func(o *Options) { o.PreserveParens = true }
}

// WithOnToken registers a token callback.
func WithOnToken(fn func(Token)) Option {
	return func(o *Options) { o.OnToken = fn }
}

// WithOnComment registers a comment callback.
func WithOnComment(fn func(Comment)) Option {
	return func(o *Options) { o.OnComment = fn }
}

func buildOptions(sourceType string, opts []Option) Options {
	options := DefaultOptions
	options.SourceType = sourceType
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

func (o Options) validate() error {
	switch o.SourceType {
	case SourceScript, SourceModule:
		return nil
	case "":
		return errors.New("source type is not set")
	default:
		return errors.Errorf("unknown source type %q", o.SourceType)
	}
}
