package irtraverse

import "github.com/curry-lang/curry-base/irtypes"

// Update is a functional in-place rewrite of one designated component of
// A, built from a rewriter over B (spec.md §4.7: "Update<A,B> = a
// function (B->B) -> A -> A").
type Update[A, B any] func(f func(B) B, a A) A

// UpdateFuncDeclRule rewrites a FuncDecl's rule.
var UpdateFuncDeclRule Update[irtypes.FuncDecl, irtypes.Rule] = func(f func(irtypes.Rule) irtypes.Rule, d irtypes.FuncDecl) irtypes.FuncDecl {
	d.Rule = f(d.Rule)
	return d
}

// UpdateDefinedRuleBody rewrites a DefinedRule's body expression.
var UpdateDefinedRuleBody Update[irtypes.DefinedRule, irtypes.Expr] = func(f func(irtypes.Expr) irtypes.Expr, r irtypes.DefinedRule) irtypes.DefinedRule {
	r.Body = f(r.Body)
	return r
}

// UpdateBranchExpr rewrites a Branch's body expression.
var UpdateBranchExpr Update[irtypes.Branch, irtypes.Expr] = func(f func(irtypes.Expr) irtypes.Expr, b irtypes.Branch) irtypes.Branch {
	b.Expr = f(b.Expr)
	return b
}

// UpdateProgramFuncDecls rewrites a Program's function-declaration list.
var UpdateProgramFuncDecls Update[irtypes.Program, []irtypes.FuncDecl] = func(f func([]irtypes.FuncDecl) []irtypes.FuncDecl, p irtypes.Program) irtypes.Program {
	p.FuncDecls = f(p.FuncDecls)
	return p
}

// rewriteExpr applies f to every immediate sub-expression of e and
// rebuilds e around the results, without touching e's own head — the
// primitive every updExprs-style deep rewrite is built from.
func rewriteExpr(e irtypes.Expr, f func(irtypes.Expr) irtypes.Expr) irtypes.Expr {
	switch x := e.(type) {
	case irtypes.CombinedExpr:
		args := make([]irtypes.Expr, len(x.Args))
		for i, a := range x.Args {
			args[i] = f(a)
		}
		x.Args = args
		return x
	case irtypes.LetExpr:
		bindings := make([]irtypes.LetBinding, len(x.Bindings))
		for i, b := range x.Bindings {
			b.Value = f(b.Value)
			bindings[i] = b
		}
		x.Bindings = bindings
		x.Body = f(x.Body)
		return x
	case irtypes.FreeExpr:
		x.Body = f(x.Body)
		return x
	case irtypes.OrExpr:
		x.Left = f(x.Left)
		x.Right = f(x.Right)
		return x
	case irtypes.CaseExpr:
		x.Scrutinee = f(x.Scrutinee)
		branches := make([]irtypes.Branch, len(x.Branches))
		for i, b := range x.Branches {
			b.Expr = f(b.Expr)
			branches[i] = b
		}
		x.Branches = branches
		return x
	case irtypes.TypedExpr:
		x.Expr = f(x.Expr)
		return x
	default: // VarExpr, LitExpr: no sub-expressions
		return e
	}
}

// UpdExprs lifts a bottom-up expression rewriter through an entire
// function body (spec.md §4.7).
func UpdExprs(f func(irtypes.Expr) irtypes.Expr, e irtypes.Expr) irtypes.Expr {
	return f(rewriteExpr(e, func(sub irtypes.Expr) irtypes.Expr { return UpdExprs(f, sub) }))
}

// UpdExprsInProgram applies UpdExprs to every defined function body in
// p, leaving external rules untouched.
func UpdExprsInProgram(f func(irtypes.Expr) irtypes.Expr, p irtypes.Program) irtypes.Program {
	decls := make([]irtypes.FuncDecl, len(p.FuncDecls))
	for i, d := range p.FuncDecls {
		if r, ok := d.Rule.(irtypes.DefinedRule); ok {
			r.Body = UpdExprs(f, r.Body)
			d.Rule = r
		}
		decls[i] = d
	}
	p.FuncDecls = decls
	return p
}
