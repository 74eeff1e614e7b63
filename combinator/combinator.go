package combinator

import (
	"fmt"

	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/token"
)

// Action runs when the parser it belongs to fires: either because the
// current lookahead token matched one of its first-set entries, or
// because no token matched and it is being invoked as an empty action.
type Action[A any] func(st *State) (A, *diag.Error)

// Parser is a first-set-indexed table of actions plus an optional empty
// (epsilon) action, per spec.md §4.4: "conceptually (optional
// empty-action, map<Token-category, lookahead-action>)". Because the
// first-set is data (map keys), Alt can check disjointness and Seq can
// compute FIRST(p<*>q) without running anything.
type Parser[A any] struct {
	Empty *Action[A]
	First map[token.Type]Action[A]
	Label string
}

// Run drives p against st: dispatches on the current lookahead token, or
// falls back to the empty action if the lookahead isn't in First.
// Failing that, it raises parse/unexpected.
func Run[A any](p Parser[A], st *State) (A, *diag.Error) {
	if act, ok := p.First[st.Cur.Type]; ok {
		return act(st)
	}
	if p.Empty != nil {
		return (*p.Empty)(st)
	}
	var zero A
	_, e := diag.Throw("parse/unexpected", nil, st.Cur.Pos, p.Label, string(st.Cur.Type))
	return zero, e
}

// Parse runs p over the whole state and requires the stream to be
// exhausted afterwards (spec.md §4.6's module-level entry point).
func Parse[A any](p Parser[A], st *State) diag.Result[A] {
	v, err := Run(p, st)
	if err != nil {
		return diag.Fail[A](err, st.Errs)
	}
	if st.Cur.Type != token.EOF {
		_, e := diag.Throw("parse/eof", nil, st.Cur.Pos, string(st.Cur.Type))
		return diag.Fail[A](e, st.Errs)
	}
	return diag.Ok(v, st.Errs)
}

// Token builds a primitive parser matching exactly one token of type t,
// returning the consumed token.
func Token(t token.Type) Parser[token.Token] {
	return Parser[token.Token]{
		First: map[token.Type]Action[token.Token]{
			t: func(st *State) (token.Token, *diag.Error) {
				return st.Advance(), nil
			},
		},
		Label: string(t),
	}
}

// Return builds the epsilon parser: always succeeds without consuming
// input, yielding v.
func Return[A any](v A) Parser[A] {
	act := Action[A](func(st *State) (A, *diag.Error) { return v, nil })
	return Parser[A]{Empty: &act}
}

// Map transforms a parser's result, preserving its first-set and
// empty-ness exactly.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	first := make(map[token.Type]Action[B], len(p.First))
	for k, act := range p.First {
		act := act
		first[k] = func(st *State) (B, *diag.Error) {
			v, err := act(st)
			if err != nil {
				var zero B
				return zero, err
			}
			return f(v), nil
		}
	}
	var empty *Action[B]
	if p.Empty != nil {
		pe := *p.Empty
		e := Action[B](func(st *State) (B, *diag.Error) {
			v, err := pe(st)
			if err != nil {
				var zero B
				return zero, err
			}
			return f(v), nil
		})
		empty = &e
	}
	return Parser[B]{First: first, Empty: empty, Label: p.Label}
}

// Label overrides the description used in parse/unexpected diagnostics
// (spec.md §4.4's <?>).
func WithLabel[A any](p Parser[A], label string) Parser[A] {
	p.Label = label
	return p
}

// Alt is deterministic choice (spec.md §4.4's <|>). It panics at
// construction time — not at parse time — if the two parsers' first-sets
// overlap, or if both carry an empty action: either would make the
// choice ambiguous, and that is a programmer error in how the grammar
// was built, not a parse failure.
func Alt[A any](p, q Parser[A]) Parser[A] {
	for k := range p.First {
		if _, ok := q.First[k]; ok {
			panic(fmt.Sprintf("combinator.Alt: first sets overlap on %s", k))
		}
	}
	if p.Empty != nil && q.Empty != nil {
		panic("combinator.Alt: both branches have an empty action")
	}
	merged := make(map[token.Type]Action[A], len(p.First)+len(q.First))
	for k, act := range p.First {
		merged[k] = act
	}
	for k, act := range q.First {
		merged[k] = act
	}
	empty := p.Empty
	if empty == nil {
		empty = q.Empty
	}
	label := p.Label
	if label == "" {
		label = q.Label
	}
	return Parser[A]{First: merged, Empty: empty, Label: label}
}

// AltN folds Alt across more than two alternatives, left to right.
func AltN[A any](ps ...Parser[A]) Parser[A] {
	if len(ps) == 0 {
		panic("combinator.AltN: no alternatives")
	}
	out := ps[0]
	for _, p := range ps[1:] {
		out = Alt(out, p)
	}
	return out
}

// Seq is deterministic sequencing (spec.md §4.4's <*>, rendered here as
// two parsers plus a combining function rather than a literal applicative
// functor of function-valued parsers — idiomatic Go has no functor
// typeclass to hang that on).
//
// FIRST(p<*>q) is FIRST(p) alone, unless p also has an empty action, in
// which case it is FIRST(p) unioned with FIRST(q); the two must then be
// disjoint; overlap panics as a construction-time invariant violation.
func Seq[A, B, C any](p Parser[A], q Parser[B], combine func(A, B) C) Parser[C] {
	first := make(map[token.Type]Action[C], len(p.First)+len(q.First))
	for k, pact := range p.First {
		pact := pact
		first[k] = func(st *State) (C, *diag.Error) {
			a, err := pact(st)
			if err != nil {
				var zero C
				return zero, err
			}
			b, err := Run(q, st)
			if err != nil {
				var zero C
				return zero, err
			}
			return combine(a, b), nil
		}
	}

	var empty *Action[C]
	if p.Empty != nil {
		pe := *p.Empty
		for k, qact := range q.First {
			if _, exists := first[k]; exists {
				panic(fmt.Sprintf("combinator.Seq: FIRST(p) and FIRST(q) overlap on %s when p has an empty action", k))
			}
			qact := qact
			first[k] = func(st *State) (C, *diag.Error) {
				a, err := pe(st)
				if err != nil {
					var zero C
					return zero, err
				}
				b, err := qact(st)
				if err != nil {
					var zero C
					return zero, err
				}
				return combine(a, b), nil
			}
		}
		if q.Empty != nil {
			qe := *q.Empty
			e := Action[C](func(st *State) (C, *diag.Error) {
				a, err := pe(st)
				if err != nil {
					var zero C
					return zero, err
				}
				b, err := qe(st)
				if err != nil {
					var zero C
					return zero, err
				}
				return combine(a, b), nil
			})
			empty = &e
		}
	}
	return Parser[C]{First: first, Empty: empty}
}

// Restrict removes the given token types from p's first-set, without
// touching its empty action. Used where an outer grammar production
// needs to shrink a shared sub-parser's lookahead to keep an Alt or Seq
// disjointness check passing (spec.md §4.4).
func Restrict[A any](p Parser[A], remove ...token.Type) Parser[A] {
	first := make(map[token.Type]Action[A], len(p.First))
	for k, act := range p.First {
		first[k] = act
	}
	for _, k := range remove {
		delete(first, k)
	}
	return Parser[A]{First: first, Empty: p.Empty, Label: p.Label}
}

// Opt makes p optional, yielding nil (as *A) when it doesn't match
// rather than failing.
func Opt[A any](p Parser[A]) Parser[*A] {
	first := make(map[token.Type]Action[*A], len(p.First))
	for k, act := range p.First {
		act := act
		first[k] = func(st *State) (*A, *diag.Error) {
			v, err := act(st)
			if err != nil {
				return nil, err
			}
			return &v, nil
		}
	}
	empty := Action[*A](func(st *State) (*A, *diag.Error) { return nil, nil })
	return Parser[*A]{First: first, Empty: &empty}
}

// Many repeats p zero or more times. p must not itself have an empty
// action: since Many always matches (possibly zero times), giving it one
// too would make the repetition never terminate, and that is checked
// here rather than left to loop forever at parse time.
func Many[A any](p Parser[A]) Parser[[]A] {
	if p.Empty != nil {
		panic("combinator.Many: element parser has an empty action, repetition would not terminate")
	}
	empty := Action[[]A](func(st *State) ([]A, *diag.Error) {
		var out []A
		for {
			act, ok := p.First[st.Cur.Type]
			if !ok {
				return out, nil
			}
			v, err := act(st)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	})
	return Parser[[]A]{Empty: &empty}
}

// Many1 requires at least one match of p.
func Many1[A any](p Parser[A]) Parser[[]A] {
	rest := Many(p)
	return Seq(p, rest, func(first A, more []A) []A {
		return append([]A{first}, more...)
	})
}

// SepBy1 parses one or more p separated by sep, discarding separators.
// p must not have an empty action, for the same reason as Many.
func SepBy1[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	tail := Many(Seq(sep, p, func(_ S, v A) A { return v }))
	return Seq(p, tail, func(first A, more []A) []A {
		return append([]A{first}, more...)
	})
}
