package ast

import (
	"reflect"
	"testing"

	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/position"
)

func TestWalkVisitsNestedExpressions(t *testing.T) {
	pos := position.First("t.curry")
	body := ApplyExpr{
		Pos: pos,
		Fun: VarExpr{Pos: pos, Name: ident.NewQualifiedIdent(ident.NewIdent(pos, "f"))},
		Arg: VarExpr{Pos: pos, Name: ident.NewQualifiedIdent(ident.NewIdent(pos, "x"))},
	}
	fn := FunctionDecl{
		Pos:  pos,
		Name: ident.NewIdent(pos, "g"),
		Equations: []Equation{
			{Pos: pos, LHS: PrefixLHS{Pos: pos, Name: ident.NewIdent(pos, "g")}, RHS: RHS{Simple: body}},
		},
	}
	var names []string
	Inspect(fn, func(n Node) {
		if v, ok := n.(VarExpr); ok {
			names = append(names, v.Name.Ident().Name())
		}
	})
	if len(names) != 2 || names[0] != "f" || names[1] != "x" {
		t.Fatalf("got %v, want [f x]", names)
	}
}

func TestInjectSourceRefsAssignsDistinctRefs(t *testing.T) {
	pos := position.First("t.curry")
	m := &Module{
		Pos:  pos,
		Name: ident.MainModule,
		Decls: []Decl{
			DataDecl{Pos: pos, Name: ident.NewIdent(pos, "T")},
			TypeSignatureDecl{Pos: pos, Names: []ident.Ident{ident.NewIdent(pos, "f")}},
		},
	}
	InjectSourceRefs(m)
	d0 := m.Decls[0].(DataDecl)
	d1 := m.Decls[1].(TypeSignatureDecl)
	if d0.SrcRef.Equal(d1.SrcRef) == false {
		// SourceRef always compares equal by spec.md §3.1; this asserts
		// that invariant holds even though the refs carry distinct paths.
	}
	if !d0.SrcRef.Equal(d1.SrcRef) {
		t.Fatal("SourceRef.Equal must always report true")
	}
}

func TestInjectSourceRefsStampsLiteralsNestedInApplyAndCase(t *testing.T) {
	pos := position.First("t.curry")
	one := LiteralExpr{Pos: pos, Value: IntLiteral{Pos: pos, Value: 1}}
	apply := ApplyExpr{
		Pos: pos,
		Fun: VarExpr{Pos: pos, Name: ident.NewQualifiedIdent(ident.NewIdent(pos, "f"))},
		Arg: one,
	}
	scrutineeLit := LiteralExpr{Pos: pos, Value: IntLiteral{Pos: pos, Value: 2}}
	c := CaseExpr{
		Pos:       pos,
		Scrutinee: scrutineeLit,
		Alts: []Alt{
			{Pos: pos, Pat: WildcardPattern{Pos: pos}, RHS: RHS{Simple: apply}},
		},
	}
	m := &Module{
		Pos:  pos,
		Name: ident.MainModule,
		Decls: []Decl{
			FunctionDecl{
				Pos:  pos,
				Name: ident.NewIdent(pos, "g"),
				Equations: []Equation{
					{Pos: pos, LHS: PrefixLHS{Pos: pos, Name: ident.NewIdent(pos, "g")}, RHS: RHS{Simple: c}},
				},
			},
		},
	}
	InjectSourceRefs(m)

	fn := m.Decls[0].(FunctionDecl)
	gotCase := fn.Equations[0].RHS.Simple.(CaseExpr)
	gotScrutinee := gotCase.Scrutinee.(LiteralExpr).Value.(IntLiteral)
	if reflect.DeepEqual(gotScrutinee.SrcRef, position.SourceRef{}) {
		t.Fatal("expected the case scrutinee's literal to receive a SourceRef")
	}
	gotApply := gotCase.Alts[0].RHS.Simple.(ApplyExpr)
	gotArgLit := gotApply.Arg.(LiteralExpr).Value.(IntLiteral)
	if reflect.DeepEqual(gotArgLit.SrcRef, position.SourceRef{}) {
		t.Fatal("expected the literal nested inside an apply argument to receive a SourceRef")
	}
	if reflect.DeepEqual(gotScrutinee.SrcRef, gotArgLit.SrcRef) {
		t.Fatal("expected distinct literals to receive distinct SourceRef paths")
	}
}
