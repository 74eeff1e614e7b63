// Package combinator implements the top-down parser-combinator engine of
// spec.md §4.4/§4.5 (C5): deterministic composition with a
// construction-time first-set disjointness check, non-deterministic
// composition with longest-match resolution, and the three layout
// combinators that drive the shared layout stack the lexer consults.
//
// Grounded on the teacher's source/parser/parser.go for the overall
// shape of parser state (a current/lookahead token pair, an accumulated
// Errors slice) — see State below — but the combinator algebra itself
// (Parser[A] as first-set-indexed action map plus optional empty action,
// alt/altLong/restrict) is new: the teacher is a Pratt parser without
// this construction-time check, so it is built from spec.md §4.4 and
// Design Notes §9's "implement parsers as values exposing their
// first-set and empty-action, not as opaque closures".
package combinator

import (
	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/layout"
	"github.com/curry-lang/curry-base/lexer"
	"github.com/curry-lang/curry-base/token"
)

// State is the mutable parsing state threaded through every combinator
// action: the lexer, the shared layout stack, one token of lookahead,
// and accumulated diagnostics. It corresponds to the teacher's Parser
// struct's curToken/peekToken/Errors fields.
type State struct {
	Lex    *lexer.Lexer
	Layout *layout.Stack
	Cur    token.Token
	Errs   diag.Errors

	consumed int // monotonic count of tokens consumed, for altLong's longest-match rule
}

// NewState builds parser state over a lexer, pre-fetching the first
// token of lookahead.
func NewState(lex *lexer.Lexer, stack *layout.Stack) *State {
	st := &State{Lex: lex, Layout: stack}
	st.Cur = lex.NextToken()
	return st
}

// Advance consumes the current lookahead token and returns it, fetching
// the next one from the lexer.
func (st *State) Advance() token.Token {
	t := st.Cur
	st.Cur = st.Lex.NextToken()
	st.consumed++
	return t
}

// snapshot captures everything altLong needs to roll back a failed or
// losing trial branch: the lookahead token, the lexer's internal
// scanning state, the layout stack's contents, the diagnostics
// accumulated so far, and the consumption counter.
type snapshot struct {
	cur      token.Token
	lex      lexer.Snapshot
	layout   []int
	errsLen  int
	consumed int
}

func (st *State) snapshot() snapshot {
	return snapshot{
		cur:      st.Cur,
		lex:      st.Lex.Snapshot(),
		layout:   st.Layout.Snapshot(),
		errsLen:  len(st.Errs),
		consumed: st.consumed,
	}
}

func (st *State) restore(s snapshot) {
	st.Cur = s.cur
	st.Lex.Restore(s.lex)
	st.Layout.Restore(s.layout)
	st.Errs = st.Errs[:s.errsLen]
	st.consumed = s.consumed
}
