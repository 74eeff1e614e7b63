package ast

import (
	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/position"
)

// Expr is the sum type of expressions (spec.md §3.5).
type Expr interface{ exprNode() }

type LiteralExpr struct {
	Pos   position.Position
	Value Literal
}

type VarExpr struct {
	Pos  position.Position
	Name ident.QualifiedIdent
}

type ConstructorExpr struct {
	Pos  position.Position
	Name ident.QualifiedIdent
}

type ParenExpr struct {
	Pos   position.Position
	Inner Expr
}

type TypedExpr struct {
	Pos  position.Position
	Expr Expr
	Type TypeExpr
}

type RecordExpr struct {
	Pos    position.Position
	Name   ident.QualifiedIdent
	Fields []Field
}

type RecordUpdateExpr struct {
	Pos    position.Position
	Base   Expr
	Fields []Field
}

type TupleExpr struct {
	Pos   position.Position
	Elems []Expr
}

type ListExpr struct {
	Pos   position.Position
	Elems []Expr
}

type ListCompExpr struct {
	Pos   position.Position
	Head  Expr
	Quals []Stmt
}

// EnumExpr covers all four enumeration shapes: [e1..], [e1..e2],
// [e1,e2..], [e1,e2..e3]. To/Step are nil when absent.
type EnumExpr struct {
	Pos  position.Position
	From Expr
	Step Expr
	To   Expr
}

// UnaryMinusExpr is general unary minus on an arbitrary expression,
// distinct from NegativeLiteralPattern which only ever applies to a
// literal pattern (spec.md §4.6).
type UnaryMinusExpr struct {
	Pos   position.Position
	Float bool
	Inner Expr
}

type ApplyExpr struct {
	Pos  position.Position
	Fun  Expr
	Arg  Expr
}

type InfixApplyExpr struct {
	Pos   position.Position
	Left  Expr
	Op    ident.QualifiedIdent
	Right Expr
}

// LeftSection is `(e op)`; RightSection is `(op e)`.
type LeftSection struct {
	Pos  position.Position
	Expr Expr
	Op   ident.QualifiedIdent
}

type RightSection struct {
	Pos  position.Position
	Op   ident.QualifiedIdent
	Expr Expr
}

type LambdaExpr struct {
	Pos    position.Position
	Params []Pattern
	Body   Expr
}

type LetExpr struct {
	Pos    position.Position
	Locals []Decl
	Body   Expr
}

type DoExpr struct {
	Pos   position.Position
	Stmts []Stmt
}

type IfExpr struct {
	Pos  position.Position
	Cond Expr
	Then Expr
	Else Expr
}

type CaseExpr struct {
	Pos       position.Position
	Kind      CaseKind
	Scrutinee Expr
	Alts      []Alt
	SrcRef    position.SourceRef
}

func (LiteralExpr) exprNode()      {}
func (VarExpr) exprNode()          {}
func (ConstructorExpr) exprNode()  {}
func (ParenExpr) exprNode()        {}
func (TypedExpr) exprNode()        {}
func (RecordExpr) exprNode()       {}
func (RecordUpdateExpr) exprNode() {}
func (TupleExpr) exprNode()        {}
func (ListExpr) exprNode()         {}
func (ListCompExpr) exprNode()     {}
func (EnumExpr) exprNode()         {}
func (UnaryMinusExpr) exprNode()   {}
func (ApplyExpr) exprNode()        {}
func (InfixApplyExpr) exprNode()   {}
func (LeftSection) exprNode()      {}
func (RightSection) exprNode()     {}
func (LambdaExpr) exprNode()       {}
func (LetExpr) exprNode()          {}
func (DoExpr) exprNode()           {}
func (IfExpr) exprNode()           {}
func (CaseExpr) exprNode()         {}

// Stmt is the sum type of do-block / list-comprehension statements
// (spec.md §4.6: the two contexts share this grammar).
type Stmt interface{ stmtNode() }

type ExprStmt struct {
	Pos  position.Position
	Expr Expr
}

type BindStmt struct {
	Pos     position.Position
	Pattern Pattern
	Expr    Expr
}

// DeclStmt is a local declaration group inside a do-block, i.e. a `let`
// not followed by `in` (spec.md §4.6).
type DeclStmt struct {
	Pos   position.Position
	Decls []Decl
}

func (ExprStmt) stmtNode() {}
func (BindStmt) stmtNode() {}
func (DeclStmt) stmtNode() {}
