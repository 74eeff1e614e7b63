// Package irtraverse implements the "Goodies" traversal framework of
// spec.md §4.7 (C9): a single structural fold over flat-IR expressions,
// selectors and testers per sum-type variant, updaters, and the
// qualified-name/variable-index rewriting operations built on top of it.
//
// Grounded on the teacher's source/ast/ast.go tree-walking helpers
// (GetVariableNames, ExtractAllNames, GetPrefixes): each is a type
// switch over Node dispatching to a per-variant case, folding results
// from Children() calls. Here that shape is generalized into one
// explicit fold (spec.md §4.7: "every selector, tester, updater, and
// renamer... expressible via this fold without further recursion").
// FreeVars, RenumberVars, UpdQNames and TypeOf are written as their own
// direct recursions rather than through Fold.
package irtraverse

import "github.com/curry-lang/curry-base/irtypes"

// ExprFold is the package's generic structural fold over Expr (spec.md
// §4.7). Each field handles one Expr variant; Branch is the auxiliary
// callback the fold applies to each case-branch.
type ExprFold[A any] struct {
	Var      func(idx int) A
	Lit      func(lit irtypes.Literal) A
	Combined func(c irtypes.CombinedExpr, args []A) A
	Let      func(bindings []A, body A) A
	Free     func(vars []int, body A) A
	Or       func(left, right A) A
	Case     func(c irtypes.CaseExpr, scrutinee A, branches []A) A
	Typed    func(inner A, t irtypes.TypeExpr) A
	Branch   func(b irtypes.Branch, expr A) A
}

// Fold applies f to e, recursing into every sub-expression the fold's
// contract requires: let-binding right-hand sides, free-declaration
// bodies, or-branches, case scrutinee and branch bodies, and the
// expression inside typed (spec.md §4.7).
func Fold[A any](f ExprFold[A], e irtypes.Expr) A {
	switch x := e.(type) {
	case irtypes.VarExpr:
		return f.Var(x.Idx)
	case irtypes.LitExpr:
		return f.Lit(x.Value)
	case irtypes.CombinedExpr:
		args := make([]A, len(x.Args))
		for i, a := range x.Args {
			args[i] = Fold(f, a)
		}
		return f.Combined(x, args)
	case irtypes.LetExpr:
		bindings := make([]A, len(x.Bindings))
		for i, b := range x.Bindings {
			bindings[i] = Fold(f, b.Value)
		}
		return f.Let(bindings, Fold(f, x.Body))
	case irtypes.FreeExpr:
		return f.Free(x.Vars, Fold(f, x.Body))
	case irtypes.OrExpr:
		return f.Or(Fold(f, x.Left), Fold(f, x.Right))
	case irtypes.CaseExpr:
		branches := make([]A, len(x.Branches))
		for i, b := range x.Branches {
			branches[i] = f.Branch(b, Fold(f, b.Expr))
		}
		return f.Case(x, Fold(f, x.Scrutinee), branches)
	case irtypes.TypedExpr:
		return f.Typed(Fold(f, x.Expr), x.Type)
	default:
		panic("irtraverse.Fold: unhandled Expr variant")
	}
}
