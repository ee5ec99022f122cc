// Package parser implements a parser for ECMAScript scripts and modules.
// Early errors, the syntax errors the language requires before any code
// runs, are detected while the tree is built, so a parse either returns a
// complete tree or the first *SyntaxError in the source.
package parser

import (
	"github.com/devside/esparse/ast"
	"github.com/pkg/errors"
)

// ParseScript parses src with the Script goal symbol.
func ParseScript(src string, opts ...Option) (*ast.Program, error) {
	return Parse(src, buildOptions(SourceScript, opts))
}

// ParseModule parses src with the Module goal symbol. Module code is
// always strict and may contain import and export declarations and
// top-level await.
func ParseModule(src string, opts ...Option) (*ast.Program, error) {
	return Parse(src, buildOptions(SourceModule, opts))
}

// Parse parses src with the goal symbol chosen by options.SourceType.
func Parse(src string, options Options) (program *ast.Program, err error) {
	if err := options.validate(); err != nil {
		return nil, err
	}
	defer recoverSyntaxError(&err)
	program = newParser(options, src, 0).parse()
	return program, nil
}

// ParseExpressionAt parses a single expression starting at byte offset
// offset of src. Input after the expression is left unread.
func ParseExpressionAt(src string, offset int, options Options) (expr ast.Expression, err error) {
	if err := options.validate(); err != nil {
		return nil, err
	}
	if offset < 0 || offset > len(src) {
		return nil, errors.Errorf("offset %d out of range", offset)
	}
	defer recoverSyntaxError(&err)
	p := newParser(options, src, offset)
	p.nextToken()
	expr = p.parseExpression(false, nil)
	return expr, nil
}

// recoverSyntaxError turns a raised *SyntaxError back into an error
// return. Anything else is a bug and keeps panicking.
func recoverSyntaxError(err *error) {
	r := recover()
	if r == nil {
		return
	}
	se, ok := r.(*SyntaxError)
	if !ok {
		panic(r)
	}
	logger().Debugf("syntax error: %s at %d (%s)", se.Message, se.Pos, se.Kind)
	*err = se
}
