// Package langparser implements the Language's surface grammar (spec.md
// §4.6, C6) over the combinator engine, producing the ast package's
// surface tree.
//
// Grounded on the teacher's source/parser/parser.go for the overall
// register — a set of mutually recursive parseX functions, one *State
// threaded throughout, errors accumulated rather than panicking on the
// first one where recovery is feasible — but the teacher parses with
// Pratt-style precedence climbing (curToken/peekToken plus a
// precedences map) rather than first-set dispatch, so the productions
// themselves are built fresh over combinator.Parser values per spec.md
// §4.6 rather than adapted from the teacher's parseExpression.
package langparser

import (
	"github.com/curry-lang/curry-base/combinator"
	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/lexer"
	"github.com/curry-lang/curry-base/token"
)

// trialPoint captures enough of *combinator.State for this package's own
// bounded lookahead decision (bind-statement vs. plain expression
// statement in parseStmt) to try one shape and fall back to another on
// failure. combinator.State's own
// snapshot/restore machinery is unexported (it backs AltLong internally),
// so grammar-level backtracking here goes through the same exported
// primitives AltLong is itself built from.
type trialPoint struct {
	cur     token.Token
	lex     lexer.Snapshot
	layout  []int
	errsLen int
}

func mark(st *combinator.State) trialPoint {
	return trialPoint{
		cur:     st.Cur,
		lex:     st.Lex.Snapshot(),
		layout:  st.Layout.Snapshot(),
		errsLen: len(st.Errs),
	}
}

func rewind(st *combinator.State, tp trialPoint) {
	st.Cur = tp.cur
	st.Lex.Restore(tp.lex)
	st.Layout.Restore(tp.layout)
	st.Errs = st.Errs[:tp.errsLen]
}

// rule builds a Parser[A] whose first-set is exactly types, all mapped
// to the same action. Most grammar productions in this package are
// built this way: the production's own leading-token set is usually
// obvious from the grammar even where its body calls back into other
// productions via combinator.Run rather than being assembled purely
// from Alt/Seq.
func rule[A any](types []token.Type, label string, action func(st *combinator.State) (A, *diag.Error)) combinator.Parser[A] {
	first := make(map[token.Type]combinator.Action[A], len(types))
	for _, t := range types {
		first[t] = action
	}
	return combinator.WithLabel(combinator.Parser[A]{First: first}, label)
}

// expect consumes one token of type t or fails with the given
// human-readable description (spec.md §4.6's "then expected"-style
// messages).
func expect(st *combinator.State, t token.Type, what string) (token.Token, *diag.Error) {
	if st.Cur.Type != t {
		_, e := diag.Throw("parse/expected", nil, st.Cur.Pos, what)
		var zero token.Token
		return zero, e
	}
	return st.Advance(), nil
}

func atAny(st *combinator.State, types ...token.Type) bool {
	for _, t := range types {
		if st.Cur.Type == t {
			return true
		}
	}
	return false
}
