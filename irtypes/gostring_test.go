package irtypes

import (
	"strings"
	"testing"

	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/position"
)

func TestProgramGoStringRendersCombinedAndCaseExprs(t *testing.T) {
	mod := ident.NewModuleIdent(position.None, "M")
	add := ident.NewQualifiedIdentIn(mod, ident.NewIdent(position.None, "add"))
	p := &Program{
		ModuleName: mod,
		FuncDecls: []FuncDecl{
			{
				QName:      add,
				Arity:      2,
				Visibility: Public,
				Type:       FuncType{Domain: VarType{Idx: 0}, Range: VarType{Idx: 1}},
				Rule: DefinedRule{
					Params: []int{0, 1},
					Body: CaseExpr{
						CaseType:  CaseTypeRigid,
						Scrutinee: VarExpr{Idx: 0},
						Branches: []Branch{
							{
								Pattern: LitPattern{Value: IntLit{Value: 0}},
								Expr:    VarExpr{Idx: 1},
							},
						},
					},
				},
			},
		},
	}
	out := p.GoString()
	if !strings.Contains(out, "module M") {
		t.Fatalf("expected module header, got %q", out)
	}
	if !strings.Contains(out, "func(public, M.add, 2,") {
		t.Fatalf("expected rendered func decl, got %q", out)
	}
	if !strings.Contains(out, "case(0, rigid, variable(0), [(literal(int(, 0)), variable(1))])") {
		t.Fatalf("expected rendered case expr, got %q", out)
	}
}
