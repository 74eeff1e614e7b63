package irtraverse

import (
	"testing"

	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/irtypes"
	"github.com/curry-lang/curry-base/position"
)

func qname(mod, name string) ident.QualifiedIdent {
	return ident.NewQualifiedIdentIn(ident.NewModuleIdent(position.None, mod), ident.NewIdent(position.None, name))
}

func TestFreeVarsExcludesLetBinders(t *testing.T) {
	// let x = y in f x z  -- free: y, z (not x; f is a qualified name)
	e := irtypes.LetExpr{
		Bindings: []irtypes.LetBinding{{Var: 0, Value: irtypes.VarExpr{Idx: 1}}},
		Body: irtypes.CombinedExpr{
			CombType: irtypes.FuncCall,
			QName:    qname("M", "f"),
			Args:     []irtypes.Expr{irtypes.VarExpr{Idx: 0}, irtypes.VarExpr{Idx: 2}},
		},
	}
	free := FreeVars(e)
	got := map[int]bool{}
	for _, v := range free {
		got[v] = true
	}
	if got[0] {
		t.Fatal("x (bound by let) leaked into free vars")
	}
	if !got[1] || !got[2] {
		t.Fatalf("expected free vars {1, 2}, got %v", free)
	}
}

func TestFreeVarsExcludesCasePatternBinders(t *testing.T) {
	e := irtypes.CaseExpr{
		Scrutinee: irtypes.VarExpr{Idx: 0},
		Branches: []irtypes.Branch{
			{
				Pattern: irtypes.ConsPattern{QName: qname("Prelude", "Cons"), Vars: []int{1, 2}},
				Expr:    irtypes.VarExpr{Idx: 1},
			},
		},
	}
	free := FreeVars(e)
	for _, v := range free {
		if v == 1 {
			t.Fatal("branch binder 1 leaked into free vars")
		}
	}
	if len(free) != 1 || free[0] != 0 {
		t.Fatalf("expected free vars {0}, got %v", free)
	}
}

func TestUpdQNamesRewritesConstructorPatterns(t *testing.T) {
	p := irtypes.Program{
		ModuleName: ident.NewModuleIdent(position.None, "M"),
		FuncDecls: []irtypes.FuncDecl{
			{
				QName: qname("M", "f"),
				Rule: irtypes.DefinedRule{
					Body: irtypes.CaseExpr{
						Scrutinee: irtypes.VarExpr{Idx: 0},
						Branches: []irtypes.Branch{
							{Pattern: irtypes.ConsPattern{QName: qname("M", "Old")}, Expr: irtypes.LitExpr{Value: irtypes.IntLit{Value: 1}}},
						},
					},
				},
			},
		},
	}
	renamed := UpdQNames(func(q ident.QualifiedIdent) ident.QualifiedIdent {
		if q.Ident().Name() == "Old" {
			return qname("M", "New")
		}
		return q
	}, p)
	body := renamed.FuncDecls[0].Rule.(irtypes.DefinedRule).Body.(irtypes.CaseExpr)
	pat := body.Branches[0].Pattern.(irtypes.ConsPattern)
	if pat.QName.Ident().Name() != "New" {
		t.Fatalf("got %s, want New", pat.QName.Ident().Name())
	}
}

func TestRenameProgramRewritesOwnModuleQualifiersOnly(t *testing.T) {
	old := ident.NewModuleIdent(position.None, "Old")
	newName := ident.NewModuleIdent(position.None, "New")
	p := irtypes.Program{
		ModuleName: old,
		FuncDecls: []irtypes.FuncDecl{
			{QName: qname("Old", "f"), Rule: irtypes.DefinedRule{Body: irtypes.CombinedExpr{
				CombType: irtypes.FuncCall,
				QName:    qname("Prelude", "id"),
			}}},
		},
	}
	renamed := RenameProgram(newName, p)
	if !renamed.ModuleName.Equal(newName) {
		t.Fatalf("module name not renamed: %v", renamed.ModuleName)
	}
	if got, _ := renamed.FuncDecls[0].QName.Module(); !got.Equal(newName) {
		t.Fatalf("own-module qualifier not rewritten: %v", got)
	}
	body := renamed.FuncDecls[0].Rule.(irtypes.DefinedRule).Body.(irtypes.CombinedExpr)
	if mod, _ := body.QName.Module(); !mod.Equal(ident.NewModuleIdent(position.None, "Prelude")) {
		t.Fatalf("foreign-module qualifier was rewritten: %v", mod)
	}
}

func TestWHNFAndGround(t *testing.T) {
	lit := irtypes.LitExpr{Value: irtypes.IntLit{Value: 1}}
	if !irtypes.IsWHNF(lit) || !irtypes.IsGround(lit) {
		t.Fatal("a literal must be whnf and ground")
	}
	funcCall := irtypes.CombinedExpr{CombType: irtypes.FuncCall, QName: qname("M", "f")}
	if irtypes.IsWHNF(funcCall) {
		t.Fatal("a saturated function call is not whnf")
	}
	consCall := irtypes.CombinedExpr{CombType: irtypes.ConsCall, QName: qname("Prelude", "Cons"), Args: []irtypes.Expr{lit, lit}}
	if !irtypes.IsWHNF(consCall) || !irtypes.IsGround(consCall) {
		t.Fatal("a constructor call over ground args is whnf and ground")
	}
}

func TestSelectorFailsOnWrongVariant(t *testing.T) {
	_, err := AsDefinedRule(irtypes.ExternalRule{Name: "prim_add"})
	if err == nil {
		t.Fatal("expected a selector mismatch error")
	}
}

func TestExprSelectorsCoverEveryVariant(t *testing.T) {
	if _, err := AsLitExpr(irtypes.LetExpr{}); err == nil {
		t.Fatal("expected AsLitExpr to fail on a let expression")
	}
	if v, err := AsLitExpr(irtypes.LitExpr{Value: irtypes.IntLit{Value: 1}}); err != nil || !IsIntLit(v.Value) {
		t.Fatal("expected AsLitExpr to project a literal expression's int literal")
	}
	if _, err := AsLetExpr(irtypes.FreeExpr{}); err == nil {
		t.Fatal("expected AsLetExpr to fail on a free expression")
	}
	if _, err := AsFreeExpr(irtypes.OrExpr{}); err == nil {
		t.Fatal("expected AsFreeExpr to fail on an or-expression")
	}
	if _, err := AsOrExpr(irtypes.TypedExpr{}); err == nil {
		t.Fatal("expected AsOrExpr to fail on a typed expression")
	}
	if _, err := AsTypedExpr(irtypes.VarExpr{}); err == nil {
		t.Fatal("expected AsTypedExpr to fail on a var expression")
	}
}

func TestLiteralSelectorsAndTestersCoverEveryVariant(t *testing.T) {
	if !IsFloatLit(irtypes.FloatLit{Value: 1.5}) || IsFloatLit(irtypes.CharLit{Value: 'a'}) {
		t.Fatal("IsFloatLit misclassified a literal")
	}
	if !IsCharLit(irtypes.CharLit{Value: 'a'}) || IsCharLit(irtypes.IntLit{Value: 1}) {
		t.Fatal("IsCharLit misclassified a literal")
	}
	if _, err := AsFloatLit(irtypes.IntLit{Value: 1}); err == nil {
		t.Fatal("expected AsFloatLit to fail on an int literal")
	}
	if _, err := AsCharLit(irtypes.FloatLit{Value: 1.5}); err == nil {
		t.Fatal("expected AsCharLit to fail on a float literal")
	}
}
