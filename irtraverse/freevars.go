package irtraverse

import "github.com/curry-lang/curry-base/irtypes"

// varSet is a small integer set, used only internally: freeVars has no
// need for the ordering or iteration guarantees a slice-based result
// would need to preserve, only membership and union/subtract.
type varSet map[int]struct{}

func singleton(i int) varSet { return varSet{i: {}} }

func (s varSet) union(other varSet) varSet {
	for k := range other {
		s[k] = struct{}{}
	}
	return s
}

func (s varSet) subtract(bound []int) varSet {
	for _, b := range bound {
		delete(s, b)
	}
	return s
}

func (s varSet) slice() []int {
	out := make([]int, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}

// FreeVars computes the free variable indices of e: every variable
// occurrence, minus those bound by enclosing let bindings, free
// declarations, or case-branch patterns (spec.md §3.6, §4.7).
func FreeVars(e irtypes.Expr) []int {
	return freeVars(e).slice()
}

func freeVars(e irtypes.Expr) varSet {
	switch x := e.(type) {
	case irtypes.VarExpr:
		return singleton(x.Idx)
	case irtypes.LitExpr:
		return varSet{}
	case irtypes.CombinedExpr:
		result := varSet{}
		for _, a := range x.Args {
			result = result.union(freeVars(a))
		}
		return result
	case irtypes.LetExpr:
		result := freeVars(x.Body)
		bound := make([]int, len(x.Bindings))
		for i, b := range x.Bindings {
			bound[i] = b.Var
			result = result.union(freeVars(b.Value))
		}
		return result.subtract(bound)
	case irtypes.FreeExpr:
		return freeVars(x.Body).subtract(x.Vars)
	case irtypes.OrExpr:
		return freeVars(x.Left).union(freeVars(x.Right))
	case irtypes.CaseExpr:
		result := freeVars(x.Scrutinee)
		for _, b := range x.Branches {
			bodyFree := freeVars(b.Expr)
			if cp, ok := b.Pattern.(irtypes.ConsPattern); ok {
				bodyFree = bodyFree.subtract(cp.Vars)
			}
			result = result.union(bodyFree)
		}
		return result
	case irtypes.TypedExpr:
		return freeVars(x.Expr)
	default:
		return varSet{}
	}
}
