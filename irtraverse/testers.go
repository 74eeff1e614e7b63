package irtraverse

import "github.com/curry-lang/curry-base/irtypes"

func IsAlgebraic(td irtypes.TypeDecl) bool { _, ok := td.(irtypes.AlgebraicTypeDecl); return ok }
func IsSynonym(td irtypes.TypeDecl) bool   { _, ok := td.(irtypes.SynonymTypeDecl); return ok }

func IsVarType(t irtypes.TypeExpr) bool  { _, ok := t.(irtypes.VarType); return ok }
func IsConsType(t irtypes.TypeExpr) bool { _, ok := t.(irtypes.ConsType); return ok }
func IsFuncType(t irtypes.TypeExpr) bool { _, ok := t.(irtypes.FuncType); return ok }

func IsDefinedRule(r irtypes.Rule) bool  { _, ok := r.(irtypes.DefinedRule); return ok }
func IsExternalRule(r irtypes.Rule) bool { _, ok := r.(irtypes.ExternalRule); return ok }

func IsConsPattern(p irtypes.Pattern) bool { _, ok := p.(irtypes.ConsPattern); return ok }
func IsLitPattern(p irtypes.Pattern) bool  { _, ok := p.(irtypes.LitPattern); return ok }

func IsIntLit(l irtypes.Literal) bool   { _, ok := l.(irtypes.IntLit); return ok }
func IsFloatLit(l irtypes.Literal) bool { _, ok := l.(irtypes.FloatLit); return ok }
func IsCharLit(l irtypes.Literal) bool  { _, ok := l.(irtypes.CharLit); return ok }

func IsVarExpr(e irtypes.Expr) bool      { _, ok := e.(irtypes.VarExpr); return ok }
func IsLitExpr(e irtypes.Expr) bool      { _, ok := e.(irtypes.LitExpr); return ok }
func IsCombinedExpr(e irtypes.Expr) bool { _, ok := e.(irtypes.CombinedExpr); return ok }
func IsLetExpr(e irtypes.Expr) bool      { _, ok := e.(irtypes.LetExpr); return ok }
func IsFreeExpr(e irtypes.Expr) bool     { _, ok := e.(irtypes.FreeExpr); return ok }
func IsOrExpr(e irtypes.Expr) bool       { _, ok := e.(irtypes.OrExpr); return ok }
func IsCaseExpr(e irtypes.Expr) bool     { _, ok := e.(irtypes.CaseExpr); return ok }
func IsTypedExpr(e irtypes.Expr) bool    { _, ok := e.(irtypes.TypedExpr); return ok }

func IsFuncCall(c irtypes.CombType) bool     { return c == irtypes.FuncCall }
func IsFuncPartCall(c irtypes.CombType) bool { return c == irtypes.FuncPartCall }
func IsConsCall(c irtypes.CombType) bool     { return c == irtypes.ConsCall }
func IsConsPartCall(c irtypes.CombType) bool { return c == irtypes.ConsPartCall }
