package langparser

import (
	"testing"

	"github.com/curry-lang/curry-base/ast"
	"github.com/curry-lang/curry-base/combinator"
	"github.com/curry-lang/curry-base/layout"
	"github.com/curry-lang/curry-base/lexer"
	"github.com/curry-lang/curry-base/token"
)

func newState(src string) *combinator.State {
	stack := layout.New()
	lex := lexer.New("test", src, stack)
	return combinator.NewState(lex, stack)
}

func TestTypeExprParsesRightAssociativeArrow(t *testing.T) {
	st := newState("Int -> Bool -> Int")
	v, err := combinator.Run(TypeExprP(), st)
	if err != nil {
		t.Fatal(err)
	}
	arrow, ok := v.(ast.TypeArrow)
	if !ok {
		t.Fatalf("got %#v, want a top-level TypeArrow", v)
	}
	if _, ok := arrow.Domain.(ast.TypeCon); !ok {
		t.Fatalf("domain: got %#v, want TypeCon Int", arrow.Domain)
	}
	if _, ok := arrow.Range.(ast.TypeArrow); !ok {
		t.Fatalf("range: got %#v, want another TypeArrow (right-associative)", arrow.Range)
	}
}

func TestTypeExprParsesApplication(t *testing.T) {
	st := newState("Maybe Int")
	v, err := combinator.Run(TypeExprP(), st)
	if err != nil {
		t.Fatal(err)
	}
	con, ok := v.(ast.TypeCon)
	if !ok || con.Name.Ident().Name() != "Maybe" || len(con.Args) != 1 {
		t.Fatalf("got %#v", v)
	}
}

func TestTypeExprRejectsApplicationOfNonConstructor(t *testing.T) {
	st := newState("a b")
	if _, err := combinator.Run(TypeExprP(), st); err == nil {
		t.Fatal("expected an error applying a type variable to an argument")
	}
}

func TestPatternParsesConsInfix(t *testing.T) {
	st := newState("(x:xs)")
	v, err := combinator.Run(PatternP(), st)
	if err != nil {
		t.Fatal(err)
	}
	paren, ok := v.(ast.ParenPattern)
	if !ok {
		t.Fatalf("got %#v, want ParenPattern", v)
	}
	inf, ok := paren.Inner.(ast.InfixPattern)
	if !ok || inf.Op.Ident().Name() != ":" {
		t.Fatalf("got %#v, want infix pattern on ':'", paren.Inner)
	}
}

func TestPatternParsesAsPattern(t *testing.T) {
	st := newState("all@(x:xs)")
	v, err := combinator.Run(PatternP(), st)
	if err != nil {
		t.Fatal(err)
	}
	as, ok := v.(ast.AsPattern)
	if !ok || as.Name.Name() != "all" {
		t.Fatalf("got %#v", v)
	}
}

func TestPatternParsesNegativeLiteral(t *testing.T) {
	st := newState("-1")
	v, err := combinator.Run(PatternP(), st)
	if err != nil {
		t.Fatal(err)
	}
	neg, ok := v.(ast.NegativeLiteralPattern)
	if !ok || neg.Float {
		t.Fatalf("got %#v, want an int NegativeLiteralPattern", v)
	}
}

func TestExprParsesApplicationBeforeInfix(t *testing.T) {
	st := newState("f x + g y")
	v, err := combinator.Run(ExprP(), st)
	if err != nil {
		t.Fatal(err)
	}
	inf, ok := v.(ast.InfixApplyExpr)
	if !ok || inf.Op.Ident().Name() != "+" {
		t.Fatalf("got %#v, want an infix '+' at the top", v)
	}
	if _, ok := inf.Left.(ast.ApplyExpr); !ok {
		t.Fatalf("left operand: got %#v, want ApplyExpr(f, x)", inf.Left)
	}
	if _, ok := inf.Right.(ast.ApplyExpr); !ok {
		t.Fatalf("right operand: got %#v, want ApplyExpr(g, y)", inf.Right)
	}
}

func TestExprParsesIfThenElse(t *testing.T) {
	st := newState("if p x then 1 else 2")
	v, err := combinator.Run(ExprP(), st)
	if err != nil {
		t.Fatal(err)
	}
	ifExpr, ok := v.(ast.IfExpr)
	if !ok {
		t.Fatalf("got %#v", v)
	}
	if _, ok := ifExpr.Cond.(ast.ApplyExpr); !ok {
		t.Fatalf("cond: got %#v, want ApplyExpr(p, x)", ifExpr.Cond)
	}
}

func TestExprParsesLetIn(t *testing.T) {
	st := newState("let { x = 1 } in x")
	v, err := combinator.Run(ExprP(), st)
	if err != nil {
		t.Fatal(err)
	}
	letExpr, ok := v.(ast.LetExpr)
	if !ok || len(letExpr.Locals) != 1 {
		t.Fatalf("got %#v", v)
	}
	if _, ok := letExpr.Locals[0].(ast.FunctionDecl); !ok {
		t.Fatalf("local: got %#v, want FunctionDecl (bare variable head)", letExpr.Locals[0])
	}
}

func TestExprParsesDoBlockWithBind(t *testing.T) {
	st := newState("do { x <- foo; return x }")
	v, err := combinator.Run(ExprP(), st)
	if err != nil {
		t.Fatal(err)
	}
	doExpr, ok := v.(ast.DoExpr)
	if !ok || len(doExpr.Stmts) != 2 {
		t.Fatalf("got %#v", v)
	}
	if _, ok := doExpr.Stmts[0].(ast.BindStmt); !ok {
		t.Fatalf("stmt 0: got %#v, want BindStmt", doExpr.Stmts[0])
	}
	exprStmt, ok := doExpr.Stmts[1].(ast.ExprStmt)
	if !ok {
		t.Fatalf("stmt 1: got %#v, want ExprStmt", doExpr.Stmts[1])
	}
	if _, ok := exprStmt.Expr.(ast.ApplyExpr); !ok {
		t.Fatalf("stmt 1 expr: got %#v, want ApplyExpr(return, x)", exprStmt.Expr)
	}
}

func TestExprParsesCaseOfWithExplicitBraces(t *testing.T) {
	st := newState("case xs of { [] -> 0; (y:ys) -> y }")
	v, err := combinator.Run(ExprP(), st)
	if err != nil {
		t.Fatal(err)
	}
	caseExpr, ok := v.(ast.CaseExpr)
	if !ok || caseExpr.Kind != ast.CaseRigid || len(caseExpr.Alts) != 2 {
		t.Fatalf("got %#v", v)
	}
	if _, ok := caseExpr.Alts[0].Pat.(ast.ListPattern); !ok {
		t.Fatalf("alt 0 pattern: got %#v, want []", caseExpr.Alts[0].Pat)
	}
}

func TestParseBindingDeclDistinguishesFunctionFromPattern(t *testing.T) {
	st := newState("f x = x")
	d, err := parseBindingDecl(st)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.(ast.FunctionDecl); !ok {
		t.Fatalf("got %#v, want FunctionDecl (variable head)", d)
	}

	st2 := newState("Just x = mb")
	d2, err := parseBindingDecl(st2)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d2.(ast.PatternDecl); !ok {
		t.Fatalf("got %#v, want PatternDecl (constructor head)", d2)
	}
}

func TestParseBindingDeclRecognizesInfixOperatorDefinition(t *testing.T) {
	st := newState("x +++ y = x")
	d, err := parseBindingDecl(st)
	if err != nil {
		t.Fatal(err)
	}
	fd, ok := d.(ast.FunctionDecl)
	if !ok || fd.Name.Name() != "+++" {
		t.Fatalf("got %#v, want a FunctionDecl named +++", d)
	}
	if _, ok := fd.Equations[0].LHS.(ast.InfixLHS); !ok {
		t.Fatalf("got %#v, want InfixLHS", fd.Equations[0].LHS)
	}
}

func TestParseModuleGroupsEquationsAndParsesData(t *testing.T) {
	src := `module M where {
data Bool = True | False;
not True = False;
not False = True
}`
	st := newState(src)
	mod, err := ParseModule(st)
	if err != nil {
		t.Fatal(err)
	}
	if mod.Name.String() != "M" {
		t.Fatalf("module name: got %q", mod.Name.String())
	}
	if len(mod.Decls) != 2 {
		t.Fatalf("got %d decls, want 2 (data + one grouped function)", len(mod.Decls))
	}
	if _, ok := mod.Decls[0].(ast.DataDecl); !ok {
		t.Fatalf("decl 0: got %#v, want DataDecl", mod.Decls[0])
	}
	fd, ok := mod.Decls[1].(ast.FunctionDecl)
	if !ok || len(fd.Equations) != 2 {
		t.Fatalf("decl 1: got %#v, want a 2-equation FunctionDecl", mod.Decls[1])
	}
}

func TestParseModuleDefaultsToMainModuleWithoutHeader(t *testing.T) {
	st := newState("f x = x")
	mod, err := ParseModule(st)
	if err != nil {
		t.Fatal(err)
	}
	if !mod.Name.IsMain() {
		t.Fatalf("got module %q, want the default main module", mod.Name.String())
	}
	if len(mod.Decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(mod.Decls))
	}
}

func TestParseModuleParsesImportsAndLanguagePragma(t *testing.T) {
	src := `{-# LANGUAGE LambdaCase, SomeUnknownExtension #-}
module M (f) where {
import Data.List;
import qualified Data.Map as Map hiding (empty);
f x = x
}`
	st := newState(src)
	mod, err := ParseModule(st)
	if err != nil {
		t.Fatal(err)
	}
	if len(mod.Pragmas) != 1 || len(mod.Pragmas[0].Language) != 2 {
		t.Fatalf("got %#v", mod.Pragmas)
	}
	if !mod.Pragmas[0].Language[0].Known || mod.Pragmas[0].Language[1].Known {
		t.Fatalf("got %#v, want LambdaCase known and SomeUnknownExtension unknown", mod.Pragmas[0].Language)
	}
	if len(mod.Imports) != 2 {
		t.Fatalf("got %d imports, want 2", len(mod.Imports))
	}
	if !mod.Imports[1].Qualified || mod.Imports[1].Alias == nil || !mod.Imports[1].Hiding {
		t.Fatalf("got %#v, want qualified+aliased+hiding import", mod.Imports[1])
	}
	if mod.Exports == nil || len(mod.Exports) != 1 {
		t.Fatalf("got %#v, want an explicit one-item export list", mod.Exports)
	}
	if len(mod.Decls) != 1 {
		t.Fatalf("got %d decls", len(mod.Decls))
	}
}

func TestExprParsesListAndEnum(t *testing.T) {
	st := newState("[1, 2, 3]")
	v, err := combinator.Run(ExprP(), st)
	if err != nil {
		t.Fatal(err)
	}
	if l, ok := v.(ast.ListExpr); !ok || len(l.Elems) != 3 {
		t.Fatalf("got %#v", v)
	}

	st2 := newState("[1..10]")
	v2, err := combinator.Run(ExprP(), st2)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v2.(ast.EnumExpr); !ok {
		t.Fatalf("got %#v, want EnumExpr", v2)
	}
}

func TestExprParsesLambdaAndSection(t *testing.T) {
	st := newState("\\x y -> x")
	v, err := combinator.Run(ExprP(), st)
	if err != nil {
		t.Fatal(err)
	}
	lam, ok := v.(ast.LambdaExpr)
	if !ok || len(lam.Params) != 2 {
		t.Fatalf("got %#v", v)
	}

	st2 := newState("(+ 1)")
	v2, err := combinator.Run(ExprP(), st2)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v2.(ast.RightSection); !ok {
		t.Fatalf("got %#v, want RightSection", v2)
	}
}

func TestExprDeterministicOnAmbiguousLookingApplication(t *testing.T) {
	// A single parse tree comes back for "f (g x) y", not an
	// AltLong-style ambiguity: the grammar is fully LL(1) driven, no
	// non-deterministic choice point exists at application spines.
	st := newState("f (g x) y")
	v, err := combinator.Run(ExprP(), st)
	if err != nil {
		t.Fatal(err)
	}
	outer, ok := v.(ast.ApplyExpr)
	if !ok {
		t.Fatalf("got %#v", v)
	}
	inner, ok := outer.Fun.(ast.ApplyExpr)
	if !ok {
		t.Fatalf("fun: got %#v, want ApplyExpr(f, (g x))", outer.Fun)
	}
	if _, ok := inner.Arg.(ast.ParenExpr); !ok {
		t.Fatalf("inner arg: got %#v, want ParenExpr(g x)", inner.Arg)
	}
}

func TestConstructorApplicationInPattern(t *testing.T) {
	st := newState("Cons x xs")
	v, err := combinator.Run(PatternP(), st)
	if err != nil {
		t.Fatal(err)
	}
	con, ok := v.(ast.ConstructorPattern)
	if !ok || len(con.Args) != 2 {
		t.Fatalf("got %#v", v)
	}
}

func TestConstructorFollowedByInfixDoesNotOverconsume(t *testing.T) {
	st := newState("Just x : rest")
	v, err := combinator.Run(PatternP(), st)
	if err != nil {
		t.Fatal(err)
	}
	inf, ok := v.(ast.InfixPattern)
	if !ok {
		t.Fatalf("got %#v, want a top-level cons pattern", v)
	}
	if con, ok := inf.Left.(ast.ConstructorPattern); !ok || len(con.Args) != 1 {
		t.Fatalf("left: got %#v, want Just applied to exactly one arg", inf.Left)
	}
}

func TestRecordPatternParsesFieldList(t *testing.T) {
	st := newState("Person{name=n, age=a}")
	v, err := combinator.Run(PatternP(), st)
	if err != nil {
		t.Fatal(err)
	}
	rec, ok := v.(ast.RecordPattern)
	if !ok || rec.Name.Ident().Name() != "Person" || len(rec.Fields) != 2 {
		t.Fatalf("got %#v, want a 2-field RecordPattern for Person", v)
	}
	if rec.Fields[0].Name.Name() != "name" {
		t.Fatalf("field 0: got %#v, want name", rec.Fields[0])
	}
	if _, ok := rec.Fields[1].Value.(ast.VarPattern); !ok || rec.Fields[1].Name.Name() != "age" {
		t.Fatalf("field 1: got %#v, want age=a", rec.Fields[1])
	}
}

func TestRecordPatternAllowsNoFields(t *testing.T) {
	st := newState("Empty{}")
	v, err := combinator.Run(PatternP(), st)
	if err != nil {
		t.Fatal(err)
	}
	rec, ok := v.(ast.RecordPattern)
	if !ok || len(rec.Fields) != 0 {
		t.Fatalf("got %#v, want an empty RecordPattern", v)
	}
}

func TestFunctionalPatternParsesVariableHeadApplication(t *testing.T) {
	// (f x) is Curry's hallmark functional pattern: a defined function,
	// not a constructor, heading a pattern application.
	st := newState("(f x)")
	v, err := combinator.Run(PatternP(), st)
	if err != nil {
		t.Fatal(err)
	}
	paren, ok := v.(ast.ParenPattern)
	if !ok {
		t.Fatalf("got %#v, want ParenPattern", v)
	}
	fp, ok := paren.Inner.(ast.FunctionPattern)
	if !ok || fp.Name.Ident().Name() != "f" || len(fp.Args) != 1 {
		t.Fatalf("got %#v, want FunctionPattern f applied to one arg", paren.Inner)
	}
	if _, ok := fp.Args[0].(ast.VarPattern); !ok {
		t.Fatalf("arg: got %#v, want VarPattern x", fp.Args[0])
	}
}

func TestBareVariablePatternIsNotPromotedToFunctionPattern(t *testing.T) {
	st := newState("x")
	v, err := combinator.Run(PatternP(), st)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(ast.VarPattern); !ok {
		t.Fatalf("got %#v, want a bare VarPattern (no following argument)", v)
	}
}

func TestInfixFunctionPatternOnNonConstructorOperator(t *testing.T) {
	// "elem" here names a function, not a constructor, so the infix tail
	// must build an InfixFunctionPattern rather than InfixPattern.
	st := newState("x `elem` xs")
	v, err := combinator.Run(PatternP(), st)
	if err != nil {
		t.Fatal(err)
	}
	inf, ok := v.(ast.InfixFunctionPattern)
	if !ok || inf.Op.Ident().Name() != "elem" {
		t.Fatalf("got %#v, want InfixFunctionPattern on elem", v)
	}
}

func TestParseBindingDeclRecognizesParenthesizedInfixFunctionLHS(t *testing.T) {
	st := newState("(x:xs) +++ ys = xs")
	d, err := parseBindingDecl(st)
	if err != nil {
		t.Fatal(err)
	}
	fd, ok := d.(ast.FunctionDecl)
	if !ok || fd.Name.Name() != "+++" {
		t.Fatalf("got %#v, want a FunctionDecl named +++", d)
	}
	lhs, ok := fd.Equations[0].LHS.(ast.InfixLHS)
	if !ok {
		t.Fatalf("got %#v, want InfixLHS", fd.Equations[0].LHS)
	}
	if _, ok := lhs.Left.(ast.ParenPattern); !ok {
		t.Fatalf("left: got %#v, want ParenPattern(x:xs)", lhs.Left)
	}
}

func TestParseIdentHeadedDeclPicksTypeSignatureOverBinding(t *testing.T) {
	st := newState("f :: Int -> Int")
	d, err := parseIdentHeadedDecl(st)
	if err != nil {
		t.Fatal(err)
	}
	sig, ok := d.(ast.TypeSignatureDecl)
	if !ok || len(sig.Names) != 1 || sig.Names[0].Name() != "f" {
		t.Fatalf("got %#v, want TypeSignatureDecl for f", d)
	}
}

func TestParseIdentHeadedDeclPicksFreeDeclOverBinding(t *testing.T) {
	st := newState("x, y free")
	d, err := parseIdentHeadedDecl(st)
	if err != nil {
		t.Fatal(err)
	}
	free, ok := d.(ast.FreeDecl)
	if !ok || len(free.Names) != 2 {
		t.Fatalf("got %#v, want a 2-name FreeDecl", d)
	}
}

func TestParseIdentHeadedDeclFallsBackToBinding(t *testing.T) {
	st := newState("f x = x")
	d, err := parseIdentHeadedDecl(st)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.(ast.FunctionDecl); !ok {
		t.Fatalf("got %#v, want FunctionDecl", d)
	}
}

func TestTokenizesQualifiedConstructorReferenceAsExpr(t *testing.T) {
	st := newState("Data.Maybe.Just")
	v, err := combinator.Run(ExprP(), st)
	if err != nil {
		t.Fatal(err)
	}
	con, ok := v.(ast.ConstructorExpr)
	if !ok {
		t.Fatalf("got %#v, want a ConstructorExpr for a qualified capitalized name", v)
	}
	mod, qualified := con.Name.Module()
	if !qualified || mod.String() != "Data.Maybe" {
		t.Fatalf("got module %v qualified=%v, want Data.Maybe", mod, qualified)
	}
}

var _ = token.EOF
