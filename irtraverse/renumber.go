package irtraverse

import "github.com/curry-lang/curry-base/irtypes"

// RenumberVars maps every occurrence of a variable index — pattern
// binders, let-binders, free-declaration binders, and usage sites —
// through f, preserving structure and scoping exactly (spec.md §4.7).
func RenumberVars(f func(int) int, e irtypes.Expr) irtypes.Expr {
	switch x := e.(type) {
	case irtypes.VarExpr:
		x.Idx = f(x.Idx)
		return x
	case irtypes.LitExpr:
		return x
	case irtypes.CombinedExpr:
		args := make([]irtypes.Expr, len(x.Args))
		for i, a := range x.Args {
			args[i] = RenumberVars(f, a)
		}
		x.Args = args
		return x
	case irtypes.LetExpr:
		bindings := make([]irtypes.LetBinding, len(x.Bindings))
		for i, b := range x.Bindings {
			bindings[i] = irtypes.LetBinding{Var: f(b.Var), Value: RenumberVars(f, b.Value)}
		}
		x.Bindings = bindings
		x.Body = RenumberVars(f, x.Body)
		return x
	case irtypes.FreeExpr:
		vars := make([]int, len(x.Vars))
		for i, v := range x.Vars {
			vars[i] = f(v)
		}
		x.Vars = vars
		x.Body = RenumberVars(f, x.Body)
		return x
	case irtypes.OrExpr:
		x.Left = RenumberVars(f, x.Left)
		x.Right = RenumberVars(f, x.Right)
		return x
	case irtypes.CaseExpr:
		x.Scrutinee = RenumberVars(f, x.Scrutinee)
		branches := make([]irtypes.Branch, len(x.Branches))
		for i, b := range x.Branches {
			if cp, ok := b.Pattern.(irtypes.ConsPattern); ok {
				vars := make([]int, len(cp.Vars))
				for j, v := range cp.Vars {
					vars[j] = f(v)
				}
				cp.Vars = vars
				b.Pattern = cp
			}
			b.Expr = RenumberVars(f, b.Expr)
			branches[i] = b
		}
		x.Branches = branches
		return x
	case irtypes.TypedExpr:
		x.Expr = RenumberVars(f, x.Expr)
		return x
	default:
		return e
	}
}

// RenumberRule renumbers a defined rule's formal parameters together
// with its body, keeping both consistent under f.
func RenumberRule(f func(int) int, r irtypes.DefinedRule) irtypes.DefinedRule {
	params := make([]int, len(r.Params))
	for i, p := range r.Params {
		params[i] = f(p)
	}
	r.Params = params
	r.Body = RenumberVars(f, r.Body)
	return r
}
