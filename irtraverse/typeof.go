package irtraverse

import (
	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/irtypes"
	"github.com/curry-lang/curry-base/position"
)

// Env is the lookup context typeOf needs: recorded types for variable
// indices (e.g. from enclosing lambda/case-branch binder annotations)
// and declared types for qualified function/constructor names.
type Env struct {
	VarTypes  map[int]irtypes.TypeExpr
	HeadTypes map[string]irtypes.TypeExpr // keyed by QualifiedIdent.String()
}

// preludeCons builds the nullary Prelude.<name> type a literal's type
// resolves to (spec.md §4.7). Its position carries no location: the
// constructor name itself, not any particular occurrence, is what
// matters for this synthetic lookup.
func preludeCons(name string) irtypes.TypeExpr {
	mod := ident.NewModuleIdent(position.None, "Prelude")
	return irtypes.ConsType{QName: ident.NewQualifiedIdentIn(mod, ident.NewIdent(position.None, name))}
}

// TypeOf computes the static type of e under env when it can be
// determined without full type inference (spec.md §4.7). The second
// return value is false ("unknown") when e's type cannot be determined
// this way — an overapplied head, an untyped variable
// with no annotation, or a case with no branch that yields a type.
func TypeOf(env Env, e irtypes.Expr) (irtypes.TypeExpr, bool) {
	switch x := e.(type) {
	case irtypes.VarExpr:
		t, ok := env.VarTypes[x.Idx]
		return t, ok
	case irtypes.LitExpr:
		switch x.Value.(type) {
		case irtypes.IntLit:
			return preludeCons("Int"), true
		case irtypes.FloatLit:
			return preludeCons("Float"), true
		case irtypes.CharLit:
			return preludeCons("Char"), true
		default:
			return nil, false
		}
	case irtypes.TypedExpr:
		return x.Type, true
	case irtypes.LetExpr:
		return TypeOf(env, x.Body)
	case irtypes.FreeExpr:
		return TypeOf(env, x.Body)
	case irtypes.OrExpr:
		if t, ok := TypeOf(env, x.Left); ok {
			return t, true
		}
		return TypeOf(env, x.Right)
	case irtypes.CaseExpr:
		for _, b := range x.Branches {
			if t, ok := TypeOf(env, b.Expr); ok {
				return t, true
			}
		}
		return nil, false
	case irtypes.CombinedExpr:
		head, ok := env.HeadTypes[x.QName.String()]
		if !ok {
			return nil, false
		}
		return peelDomains(head, len(x.Args))
	default:
		return nil, false
	}
}

// peelDomains strips n arrow domains from t, returning the residual
// range type. It fails if t has fewer arrows than n, or stops being a
// function type before n args are peeled (spec.md §4.7).
func peelDomains(t irtypes.TypeExpr, n int) (irtypes.TypeExpr, bool) {
	for i := 0; i < n; i++ {
		fn, ok := t.(irtypes.FuncType)
		if !ok {
			return nil, false
		}
		t = fn.Range
	}
	return t, true
}
