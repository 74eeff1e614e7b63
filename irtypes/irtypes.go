// Package irtypes defines the flat intermediate representation of
// spec.md §3.6 (C8): the target of elaboration, out of this front end's
// scope, but the shape every irtraverse operation is defined over.
//
// Grounded on the teacher's source/ast/ast.go sum-type-via-struct-set
// style (as ast does) rather than on any single teacher file, since the
// teacher has no flat post-elaboration IR of its own (its VM consumes
// bytecode, not a tree) — this package's shapes come directly from
// spec.md §3.6.
package irtypes

import "github.com/curry-lang/curry-base/ident"

// Visibility controls whether a declaration crosses a module boundary.
type Visibility int

const (
	Private Visibility = iota
	Public
)

// Program is a whole flat-IR unit (spec.md §3.6).
type Program struct {
	ModuleName ident.ModuleIdent
	Imports    []ident.ModuleIdent
	TypeDecls  []TypeDecl
	FuncDecls  []FuncDecl
	OpDecls    []OpDecl
}

// TypeDecl is the sum of algebraic and type-synonym declarations.
type TypeDecl interface{ typeDeclNode() }

type AlgebraicTypeDecl struct {
	QName        ident.QualifiedIdent
	Visibility   Visibility
	TypeParams   int
	Constructors []ConsDecl
}

type SynonymTypeDecl struct {
	QName      ident.QualifiedIdent
	Visibility Visibility
	TypeParams int
	Type       TypeExpr
}

func (AlgebraicTypeDecl) typeDeclNode() {}
func (SynonymTypeDecl) typeDeclNode()   {}

// ConsDecl is one constructor of an algebraic type.
type ConsDecl struct {
	QName      ident.QualifiedIdent
	Arity      int
	Visibility Visibility
	ArgTypes   []TypeExpr
}

// TypeExpr is the flat-IR type language: a strict subset of the surface
// one, with no parens (irrelevant once flattened) and constructors
// referenced by qualified name rather than parsed application.
type TypeExpr interface{ typeExprIRNode() }

type VarType struct{ Idx int }

type ConsType struct {
	QName ident.QualifiedIdent
	Args  []TypeExpr
}

type FuncType struct {
	Domain TypeExpr
	Range  TypeExpr
}

func (VarType) typeExprIRNode()  {}
func (ConsType) typeExprIRNode() {}
func (FuncType) typeExprIRNode() {}

// Fixity of an OpDecl.
type Fixity int

const (
	FixLeft Fixity = iota
	FixRight
	FixNone
)

type OpDecl struct {
	QName      ident.QualifiedIdent
	Fixity     Fixity
	Precedence int
}

// FuncDecl is one function's flat-IR definition.
type FuncDecl struct {
	QName      ident.QualifiedIdent
	Arity      int
	Visibility Visibility
	Type       TypeExpr
	Rule       Rule
}

// Rule is the sum of defined and external function bodies.
type Rule interface{ ruleNode() }

type DefinedRule struct {
	Params []int // variable indices bound to the function's formal parameters
	Body   Expr
}

type ExternalRule struct {
	Name string
}

func (DefinedRule) ruleNode()  {}
func (ExternalRule) ruleNode() {}

// CombType classifies a combined(...) expression's head (spec.md §3.6).
type CombType int

const (
	FuncCall CombType = iota
	FuncPartCall
	ConsCall
	ConsPartCall
)

// Expr is the flat-IR expression sum type.
type Expr interface{ exprIRNode() }

type VarExpr struct{ Idx int }

type LitExpr struct{ Value Literal }

// CombinedExpr applies a function or constructor, fully or partially, to
// a list of arguments (spec.md §3.6). Missing is only meaningful for the
// PartCall variants: it is the number of arguments still needed.
type CombinedExpr struct {
	CombType CombType
	QName    ident.QualifiedIdent
	Missing  int
	Args     []Expr
}

// LetExpr binds a list of (variable index, expr) pairs, all visible in
// Body (and, for a recursive let, in each other's right-hand sides).
type LetExpr struct {
	Bindings []LetBinding
	Body     Expr
}

type LetBinding struct {
	Var   int
	Value Expr
}

type FreeExpr struct {
	Vars []int
	Body Expr
}

// OrExpr is non-deterministic choice between two expressions.
type OrExpr struct {
	Left  Expr
	Right Expr
}

type CaseType int

const (
	CaseTypeRigid CaseType = iota
	CaseTypeFlex
)

type CaseExpr struct {
	SrcRef    int // spec.md §3.6's sourceRef field; an opaque integer tag here
	CaseType  CaseType
	Scrutinee Expr
	Branches  []Branch
}

type TypedExpr struct {
	Expr Expr
	Type TypeExpr
}

func (VarExpr) exprIRNode()     {}
func (LitExpr) exprIRNode()     {}
func (CombinedExpr) exprIRNode() {}
func (LetExpr) exprIRNode()     {}
func (FreeExpr) exprIRNode()    {}
func (OrExpr) exprIRNode()      {}
func (CaseExpr) exprIRNode()    {}
func (TypedExpr) exprIRNode()   {}

// Branch is one arm of a CaseExpr.
type Branch struct {
	Pattern Pattern
	Expr    Expr
}

// Pattern is the flat-IR pattern sum type: only constructors and
// literals survive elaboration, since variable patterns become bare
// variable indices bound by the branch.
type Pattern interface{ patternIRNode() }

type ConsPattern struct {
	QName ident.QualifiedIdent
	Vars  []int
}

type LitPattern struct{ Value Literal }

func (ConsPattern) patternIRNode() {}
func (LitPattern) patternIRNode()  {}

// Literal is the flat-IR literal sum type. There is no string literal:
// strings are elaborated to character lists before reaching this IR
// (spec.md §3.6).
type Literal interface{ literalIRNode() }

// IntLit carries the identifier a source integer literal was
// polymorphically attached to (spec.md §3.6's "int(attrIdent, value)"),
// so numeric-literal overloading survives into the IR.
type IntLit struct {
	AttrIdent string
	Value     int64
}

type FloatLit struct {
	SrcRef int
	Value  float64
}

type CharLit struct {
	SrcRef int
	Value  rune
}

func (IntLit) literalIRNode()   {}
func (FloatLit) literalIRNode() {}
func (CharLit) literalIRNode()  {}
