package parser

import (
	stderrors "errors"
	"fmt"

	"github.com/devside/esparse/ast"
	"github.com/pkg/errors"
)

// Kind classifies a SyntaxError.
type Kind int

// List of syntax error kinds.
const (
	// Unknown is returned by KindOf for errors that are not syntax errors.
	Unknown Kind = iota
	// LexicalError is a malformed token: bad escape, unterminated
	// literal or comment, invalid number or regular expression flags.
	LexicalError
	// UnexpectedToken is a grammar mismatch.
	UnexpectedToken
	// InvalidAssignmentTarget is an expression that cannot be assigned to.
	InvalidAssignmentTarget
	// InvalidDestructuringTarget is an object or array literal that cannot
	// become a pattern.
	InvalidDestructuringTarget
	// DuplicateBinding is a name declared twice where that is not allowed.
	DuplicateBinding
	// ReservedWordMisuse is a reserved word used as an identifier, or an
	// escaped keyword.
	ReservedWordMisuse
	// IllegalControlTransfer is a break, continue or return without a
	// valid target.
	IllegalControlTransfer
	// IllegalSuperUsage is super outside of a method or constructor.
	IllegalSuperUsage
	// IllegalYieldOrAwaitUsage is yield or await in a position that does
	// not allow it.
	IllegalYieldOrAwaitUsage
	// ClassBodyError is a duplicate constructor, an illegal static name or
	// an illegal constructor kind.
	ClassBodyError
	// StrictModeViolation is any other strict-mode-only prohibition.
	StrictModeViolation
)

var kindString = map[Kind]string{
	Unknown:                    "unknown",
	LexicalError:               "lexical error",
	UnexpectedToken:            "unexpected token",
	InvalidAssignmentTarget:    "invalid assignment target",
	InvalidDestructuringTarget: "invalid destructuring target",
	DuplicateBinding:           "duplicate binding",
	ReservedWordMisuse:         "reserved word misuse",
	IllegalControlTransfer:     "illegal control transfer",
	IllegalSuperUsage:          "illegal super usage",
	IllegalYieldOrAwaitUsage:   "illegal yield or await usage",
	ClassBodyError:             "class body error",
	StrictModeViolation:        "strict mode violation",
}

// String representation of a Kind.
func (k Kind) String() string {
	if s, ok := kindString[k]; ok {
		return s
	}
	return fmt.Sprintf("invalid kind (%d)", k)
}

// SyntaxError is the only error a parse returns for invalid input. It
// reports the first violation found.
type SyntaxError struct {
	Kind    Kind
	Message string
	// Pos is the byte offset of the offending source text.
	Pos int
	// Loc is the line/column of Pos.
	Loc ast.Position
	// RaisedAt is the scanner offset when the error was raised.
	RaisedAt int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Message, e.Loc.Line, e.Loc.Column)
}

// KindOf returns the kind of a syntax error returned by a parse, or
// Unknown if err is not a syntax error. Errors wrapped with
// github.com/pkg/errors or fmt.Errorf("%w") are unwrapped first.
func KindOf(err error) Kind {
	if err == nil {
		return Unknown
	}
	var se *SyntaxError
	if stderrors.As(errors.Cause(err), &se) || stderrors.As(err, &se) {
		return se.Kind
	}
	return Unknown
}
