// Package diag implements the message channel of spec.md §2 (C2) and
// §6.3/§7: every pipeline entry point returns a value paired with a list
// of warnings, and a fatal error is a single diagnostic carrying an
// optional position.
//
// Grounded directly on the teacher's source/err/errorfile.go, which maps
// string error-ids to a Message/Explanation pair of functions taking a
// *token.Token and args, plus source/report/errortype.go's Error struct
// (ErrorId, Message, Args, Trace, Token). Here the map is keyed the same
// way but produces diag.Error values instead of being wired to a runtime
// value system, since the front end has no values yet to report on.
package diag

import "github.com/curry-lang/curry-base/position"

// Kind classifies a diagnostic per spec.md §7.
type Kind int

const (
	LiterateError Kind = iota
	LexError
	ParseError
	AmbiguityError
	SelectorMismatch
	InvariantViolation
	Warning
)

func (k Kind) String() string {
	switch k {
	case LiterateError:
		return "literate"
	case LexError:
		return "lex"
	case ParseError:
		return "parse"
	case AmbiguityError:
		return "ambiguity"
	case SelectorMismatch:
		return "selector"
	case InvariantViolation:
		return "invariant"
	case Warning:
		return "warning"
	default:
		return "error"
	}
}

// Error is one diagnostic: a kind, a stable identifier used to look up
// its message text, the rendered message, and the position it was
// raised at (which may be position.None if none is available).
type Error struct {
	Kind    Kind
	ErrorID string
	Message string
	Pos     position.Position
	Label   string // custom label supplied by a parser combinator's <?> operator, if any
}

// String renders an Error in the wire format of spec.md §6.3:
// "<file>:<line>.<column>: <message>". If the position has no
// file/line/column, only the message is shown.
func (e *Error) String() string {
	if s := e.Pos.String(); s != "" {
		return s + ": " + e.Message
	}
	return e.Message
}

// Errors is an ordered list of diagnostics, mirroring the teacher's
// report.Errors / err.Errors slice type used to accumulate warnings and
// to let later errors reference earlier ones (e.g. "likely a knock-on
// effect of the previous error").
type Errors []*Error

// MessageFunc renders the human-readable text of an error-id given the
// position it fired at and the args supplied at the call site.
type MessageFunc func(pos position.Position, args ...any) string

// ErrorCreator is one entry of the error-id map: how to render its
// message. Mirrors the teacher's ErrorCreator (Message + Explanation);
// Explanation is omitted here since this library has no interactive
// help system to serve it to.
type ErrorCreator struct {
	Kind    Kind
	Message MessageFunc
}

// Throw appends a new fatal diagnostic identified by errorID, rendered
// via the ErrorCreatorMap entry for that id, and returns the updated
// Errors slice together with the *Error just created so call sites can
// attach it to a token or AST node.
func Throw(errorID string, errs Errors, pos position.Position, args ...any) (Errors, *Error) {
	creator, ok := ErrorCreatorMap[errorID]
	if !ok {
		e := &Error{Kind: ParseError, ErrorID: errorID, Message: "unregistered error id " + errorID, Pos: pos}
		return append(errs, e), e
	}
	e := &Error{Kind: creator.Kind, ErrorID: errorID, Message: creator.Message(pos, args...), Pos: pos}
	return append(errs, e), e
}

// Result pairs the outcome of a pipeline stage with accumulated
// warnings, per spec.md §6.3. IsFatal reports whether the stage failed:
// when true, Value is meaningless and Fatal is the terminating error.
type Result[T any] struct {
	Value    T
	Warnings Errors
	Fatal    *Error
}

// Ok builds a successful Result.
func Ok[T any](v T, warnings Errors) Result[T] {
	return Result[T]{Value: v, Warnings: warnings}
}

// Fail builds a failed Result carrying the fatal error, plus whatever
// warnings had already accumulated.
func Fail[T any](fatal *Error, warnings Errors) Result[T] {
	return Result[T]{Warnings: warnings, Fatal: fatal}
}

func (r Result[T]) IsFatal() bool { return r.Fatal != nil }
