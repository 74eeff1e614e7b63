package combinator

import (
	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/token"
)

// AltLong is non-deterministic choice (spec.md §4.4's <|?>): unlike Alt,
// it does not require disjoint first-sets. Both branches are tried from
// the same starting position; the one that consumes more input wins,
// success beats failure on equal consumption, and two successes tying at
// the same position is reported as an ambiguous parse rather than
// silently picking one.
func AltLong[A any](p, q Parser[A]) Parser[A] {
	keys := make(map[token.Type]bool, len(p.First)+len(q.First))
	for k := range p.First {
		keys[k] = true
	}
	for k := range q.First {
		keys[k] = true
	}

	action := Action[A](func(st *State) (A, *diag.Error) {
		start := st.snapshot()

		va, erra := tryRun(p, st)
		snapA := st.snapshot()
		consumedA := snapA.consumed - start.consumed

		st.restore(start)
		vb, errb := tryRun(q, st)
		snapB := st.snapshot()
		consumedB := snapB.consumed - start.consumed

		var zero A
		switch {
		case consumedA > consumedB:
			if erra != nil {
				st.restore(start)
				return zero, erra
			}
			st.restore(snapA)
			return va, nil
		case consumedB > consumedA:
			if errb != nil {
				st.restore(start)
				return zero, errb
			}
			st.restore(snapB)
			return vb, nil
		default:
			switch {
			case erra == nil && errb == nil:
				tiePos := snapA.cur.Pos
				st.restore(start)
				_, e := diag.Throw("parse/ambiguous", nil, tiePos)
				return zero, e
			case erra == nil:
				st.restore(snapA)
				return va, nil
			case errb == nil:
				st.restore(snapB)
				return vb, nil
			default:
				st.restore(start)
				return zero, erra
			}
		}
	})

	first := make(map[token.Type]Action[A], len(keys))
	for k := range keys {
		first[k] = action
	}
	var empty *Action[A]
	if p.Empty != nil || q.Empty != nil {
		empty = &action
	}
	return Parser[A]{First: first, Empty: empty}
}

// tryRun dispatches exactly like Run: when neither the first-set nor the
// empty action apply it returns a parse/unexpected failure carrying
// p.Label, which AltLong then compares against the other branch like any
// other failure.
func tryRun[A any](p Parser[A], st *State) (A, *diag.Error) {
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
