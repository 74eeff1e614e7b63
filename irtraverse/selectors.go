package irtraverse

import (
	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/irtypes"
	"github.com/curry-lang/curry-base/position"
)

// fail builds the "Goodies.<op>: <reason>" diagnostic spec.md §4.7
// requires every wrong-variant selector to raise. Selector mismatches
// carry no source position of their own: they are a programmer error in
// how the IR was built, not something to blame on the user's source.
func fail(op, reason string) *diag.Error {
	_, e := diag.Throw("goodies/selector", nil, position.None, op, reason)
	return e
}

// Product-type components (Program, ConsDecl, OpDecl, FuncDecl, Branch)
// are plain exported struct fields already, so spec.md §4.7's "named
// projection per component" needs no separate function for them: p.
// TypeDecls *is* that projection. Only the sum types below need
// projections, since selecting a variant can fail.

// -- TypeDecl (sum type) --

// AsAlgebraic projects a TypeDecl to its algebraic variant, failing if
// td is actually a synonym.
func AsAlgebraic(td irtypes.TypeDecl) (irtypes.AlgebraicTypeDecl, *diag.Error) {
	if a, ok := td.(irtypes.AlgebraicTypeDecl); ok {
		return a, nil
	}
	return irtypes.AlgebraicTypeDecl{}, fail("asAlgebraic", "type declaration is a synonym, not algebraic")
}

// AsSynonym projects a TypeDecl to its synonym variant, failing if td is
// actually algebraic.
func AsSynonym(td irtypes.TypeDecl) (irtypes.SynonymTypeDecl, *diag.Error) {
	if s, ok := td.(irtypes.SynonymTypeDecl); ok {
		return s, nil
	}
	return irtypes.SynonymTypeDecl{}, fail("asSynonym", "type declaration is algebraic, not a synonym")
}

// -- TypeExpr (sum type) --

func AsVarType(t irtypes.TypeExpr) (irtypes.VarType, *diag.Error) {
	if v, ok := t.(irtypes.VarType); ok {
		return v, nil
	}
	return irtypes.VarType{}, fail("asVarType", "type expression is not a variable")
}

func AsConsType(t irtypes.TypeExpr) (irtypes.ConsType, *diag.Error) {
	if c, ok := t.(irtypes.ConsType); ok {
		return c, nil
	}
	return irtypes.ConsType{}, fail("asConsType", "type expression is not a constructor application")
}

func AsFuncType(t irtypes.TypeExpr) (irtypes.FuncType, *diag.Error) {
	if f, ok := t.(irtypes.FuncType); ok {
		return f, nil
	}
	return irtypes.FuncType{}, fail("asFuncType", "type expression is not a function type")
}

// -- Rule (sum type) --

func AsDefinedRule(r irtypes.Rule) (irtypes.DefinedRule, *diag.Error) {
	if d, ok := r.(irtypes.DefinedRule); ok {
		return d, nil
	}
	return irtypes.DefinedRule{}, fail("asDefinedRule", "rule is external, not defined")
}

func AsExternalRule(r irtypes.Rule) (irtypes.ExternalRule, *diag.Error) {
	if x, ok := r.(irtypes.ExternalRule); ok {
		return x, nil
	}
	return irtypes.ExternalRule{}, fail("asExternalRule", "rule is defined, not external")
}

// -- Pattern (sum type) --

func AsConsPattern(p irtypes.Pattern) (irtypes.ConsPattern, *diag.Error) {
	if c, ok := p.(irtypes.ConsPattern); ok {
		return c, nil
	}
	return irtypes.ConsPattern{}, fail("asConsPattern", "branch pattern is a literal, not a constructor")
}

func AsLitPattern(p irtypes.Pattern) (irtypes.LitPattern, *diag.Error) {
	if l, ok := p.(irtypes.LitPattern); ok {
		return l, nil
	}
	return irtypes.LitPattern{}, fail("asLitPattern", "branch pattern is a constructor, not a literal")
}

// -- Expr (sum type) --

func AsVarExpr(e irtypes.Expr) (irtypes.VarExpr, *diag.Error) {
	if v, ok := e.(irtypes.VarExpr); ok {
		return v, nil
	}
	return irtypes.VarExpr{}, fail("asVarExpr", "expression is not a bare variable")
}

func AsCombinedExpr(e irtypes.Expr) (irtypes.CombinedExpr, *diag.Error) {
	if c, ok := e.(irtypes.CombinedExpr); ok {
		return c, nil
	}
	return irtypes.CombinedExpr{}, fail("asCombinedExpr", "expression is not a combination")
}

func AsLitExpr(e irtypes.Expr) (irtypes.LitExpr, *diag.Error) {
	if l, ok := e.(irtypes.LitExpr); ok {
		return l, nil
	}
	return irtypes.LitExpr{}, fail("asLitExpr", "expression is not a literal")
}

func AsLetExpr(e irtypes.Expr) (irtypes.LetExpr, *diag.Error) {
	if l, ok := e.(irtypes.LetExpr); ok {
		return l, nil
	}
	return irtypes.LetExpr{}, fail("asLetExpr", "expression is not a let")
}

func AsFreeExpr(e irtypes.Expr) (irtypes.FreeExpr, *diag.Error) {
	if f, ok := e.(irtypes.FreeExpr); ok {
		return f, nil
	}
	return irtypes.FreeExpr{}, fail("asFreeExpr", "expression is not a free declaration")
}

func AsOrExpr(e irtypes.Expr) (irtypes.OrExpr, *diag.Error) {
	if o, ok := e.(irtypes.OrExpr); ok {
		return o, nil
	}
	return irtypes.OrExpr{}, fail("asOrExpr", "expression is not a choice")
}

func AsCaseExpr(e irtypes.Expr) (irtypes.CaseExpr, *diag.Error) {
	if c, ok := e.(irtypes.CaseExpr); ok {
		return c, nil
	}
	return irtypes.CaseExpr{}, fail("asCaseExpr", "expression is not a case")
}

func AsTypedExpr(e irtypes.Expr) (irtypes.TypedExpr, *diag.Error) {
	if t, ok := e.(irtypes.TypedExpr); ok {
		return t, nil
	}
	return irtypes.TypedExpr{}, fail("asTypedExpr", "expression is not type-annotated")
}

// -- Literal (sum type) --

func AsIntLit(l irtypes.Literal) (irtypes.IntLit, *diag.Error) {
	if i, ok := l.(irtypes.IntLit); ok {
		return i, nil
	}
	return irtypes.IntLit{}, fail("asIntLit", "literal is not an int")
}

func AsFloatLit(l irtypes.Literal) (irtypes.FloatLit, *diag.Error) {
	if f, ok := l.(irtypes.FloatLit); ok {
		return f, nil
	}
	return irtypes.FloatLit{}, fail("asFloatLit", "literal is not a float")
}

func AsCharLit(l irtypes.Literal) (irtypes.CharLit, *diag.Error) {
	if c, ok := l.(irtypes.CharLit); ok {
		return c, nil
	}
	return irtypes.CharLit{}, fail("asCharLit", "literal is not a char")
}
