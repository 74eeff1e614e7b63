package irtypes

// IsWHNF reports whether e is in weak-head normal form (spec.md §3.6): a
// literal, a constructor combination, or any combination whose head is
// not an ordinary (fully-saturated) function call.
func IsWHNF(e Expr) bool {
	switch x := e.(type) {
	case LitExpr:
		return true
	case CombinedExpr:
		return x.CombType != FuncCall
	default:
		return false
	}
}

// IsGround reports whether e is ground (spec.md §3.6): a literal, or a
// constructor call all of whose arguments are ground.
func IsGround(e Expr) bool {
	switch x := e.(type) {
	case LitExpr:
		return true
	case CombinedExpr:
		if x.CombType != ConsCall {
			return false
		}
		for _, a := range x.Args {
			if !IsGround(a) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// CheckArity reports whether a combined expression's argument count is
// consistent with its combination type and the callee's declared arity
// (spec.md §3.6's "argument count equals the function arity" invariant).
func CheckArity(c CombinedExpr, calleeArity int) bool {
	switch c.CombType {
	case FuncCall, ConsCall:
		return c.Missing == 0 && len(c.Args) == calleeArity
	case FuncPartCall, ConsPartCall:
		return c.Missing > 0 && len(c.Args) == calleeArity-c.Missing
	default:
		return false
	}
}

// CheckRuleArity reports whether a defined rule's parameter count
// matches its function's declared arity (spec.md §3.6).
func CheckRuleArity(r DefinedRule, arity int) bool {
	return len(r.Params) == arity
}
