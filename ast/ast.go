// Package ast defines the surface abstract syntax tree produced by the
// langparser package (spec.md §3.5, C7).
//
// Grounded on the teacher's source/ast/ast.go: every node is a Go struct
// carrying a Token/position, sum types are Go interfaces satisfied by a
// closed set of structs (Statement/Expression there), and product types
// (imports, declarations) are plain structs with named fields. The
// teacher's node set targets its own object language; the variant list
// here is the Language's surface grammar from spec.md §3.5.
package ast

import (
	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/position"
)

// Module is the root of a parsed source file: an optional export list,
// its imports, and its top-level declarations (spec.md §3.5, §4.6).
type Module struct {
	Pos      position.Position
	Pragmas  []Pragma
	Name     ident.ModuleIdent
	Exports  []ExportItem // nil means "no export list": everything is exported
	Imports  []ImportDecl
	Decls    []Decl
	SrcRef   position.SourceRef
}

// Pragma is a {-# ... #-} marker: either a LANGUAGE extension list or an
// OPTIONS tool directive (spec.md §4.6).
type Pragma struct {
	Pos        position.Position
	Language   []LanguageExtension // non-nil for a LANGUAGE pragma
	OptionsTag string               // tool tag for an OPTIONS pragma, e.g. "GHC"
	OptionsArg string               // free-text arguments for an OPTIONS pragma
}

// LanguageExtension is one entry of a LANGUAGE pragma, classified as
// known or unknown to this front end (spec.md §4.6).
type LanguageExtension struct {
	Name    string
	Known   bool
}

// ExportItem names one exported entity: a plain identifier, a
// constructor/class with an explicit sub-export list (nil for "just the
// name", non-nil possibly empty for "with all/some members"), or a
// re-exported module.
type ExportItem struct {
	Pos       position.Position
	Name      ident.Ident
	Module    *ident.ModuleIdent // set for "module M" re-export items
	SubItems  []string           // constructor/class members, nil if none listed
	AllMembers bool              // true for "T(..)"
}

// ImportDecl is one import declaration (spec.md §3.5).
type ImportDecl struct {
	Pos       position.Position
	Module    ident.ModuleIdent
	Qualified bool
	Alias     *ident.ModuleIdent
	Hiding    bool         // true if Items is a hiding-list rather than an import-list
	Items     []ExportItem // nil means "import everything"
}

// Decl is the sum type of top-level and local declarations (spec.md
// §3.5). Local declarations are the same set as top-level ones, minus
// module-structural forms that make no sense nested (imports).
type Decl interface{ declNode() }

type DataDecl struct {
	Pos          position.Position
	Name         ident.Ident
	TypeParams   []ident.Ident
	Constructors []ConstructorDecl
	Deriving     []ident.Ident
	SrcRef       position.SourceRef
}

// ConstructorDecl carries an existential type-variable list distinct
// from the enclosing DataDecl's TypeParams (spec.md Open Question,
// decided in DESIGN.md: existentials are retained rather than dropped).
type ConstructorDecl struct {
	Pos          position.Position
	Name         ident.Ident
	Existentials []ident.Ident
	ArgTypes     []TypeExpr
}

type NewtypeDecl struct {
	Pos         position.Position
	Name        ident.Ident
	TypeParams  []ident.Ident
	Constructor ConstructorDecl
	SrcRef      position.SourceRef
}

type TypeSynonymDecl struct {
	Pos        position.Position
	Name       ident.Ident
	TypeParams []ident.Ident
	RHS        TypeExpr
	SrcRef     position.SourceRef
}

type TypeSignatureDecl struct {
	Pos    position.Position
	Names  []ident.Ident
	Type   TypeExpr
	SrcRef position.SourceRef
}

type FunctionDecl struct {
	Pos       position.Position
	Name      ident.Ident
	Equations []Equation
	SrcRef    position.SourceRef
}

type ForeignDecl struct {
	Pos        position.Position
	Convention string
	Name       ident.Ident
	ExternName string
	Type       TypeExpr
}

type ExternalDecl struct {
	Pos        position.Position
	Name       ident.Ident
	ExternName string
}

// PatternDecl is a top-level or local pattern binding, e.g. `(a, b) =
// pair`.
type PatternDecl struct {
	Pos    position.Position
	LHS    Pattern
	RHS    RHS
	SrcRef position.SourceRef
}

// FreeDecl introduces logic variables, e.g. `x, y free`.
type FreeDecl struct {
	Pos   position.Position
	Names []ident.Ident
}

// FixityDecl is a fixity declaration (spec.md §4.6). Precedence is
// optional in surface syntax (nil) but mandatory when parsed from an
// interface file.
type FixityDecl struct {
	Pos        position.Position
	Assoc      Assoc
	Precedence *int
	Operators  []ident.Ident
}

type Assoc int

const (
	AssocLeft Assoc = iota
	AssocRight
	AssocNone
)

func (DataDecl) declNode()          {}
func (NewtypeDecl) declNode()       {}
func (TypeSynonymDecl) declNode()   {}
func (TypeSignatureDecl) declNode() {}
func (FunctionDecl) declNode()      {}
func (ForeignDecl) declNode()       {}
func (ExternalDecl) declNode()      {}
func (PatternDecl) declNode()       {}
func (FreeDecl) declNode()          {}
func (FixityDecl) declNode()        {}

// TypeExpr is the sum type of type expressions (spec.md §3.5).
type TypeExpr interface{ typeExprNode() }

type TypeVar struct {
	Pos  position.Position
	Name ident.Ident
}

type TypeCon struct {
	Pos  position.Position
	Name ident.QualifiedIdent
	Args []TypeExpr
}

type TypeTuple struct {
	Pos   position.Position
	Elems []TypeExpr
}

type TypeList struct {
	Pos  position.Position
	Elem TypeExpr
}

type TypeArrow struct {
	Pos    position.Position
	Domain TypeExpr
	Range  TypeExpr
}

type TypeParen struct {
	Pos    position.Position
	Inner  TypeExpr
}

func (TypeVar) typeExprNode()   {}
func (TypeCon) typeExprNode()   {}
func (TypeTuple) typeExprNode() {}
func (TypeList) typeExprNode()  {}
func (TypeArrow) typeExprNode() {}
func (TypeParen) typeExprNode() {}

// Equation is one clause of a function definition: a left-hand side in
// one of the three shapes of spec.md §4.6, plus a right-hand side.
type Equation struct {
	Pos    position.Position
	LHS    LHS
	RHS    RHS
	SrcRef position.SourceRef
}

// LHS is the sum type of left-hand-side shapes (spec.md §4.6): the
// parser must produce exactly the shape present in the input, never
// normalize between them.
type LHS interface{ lhsNode() }

type PrefixLHS struct {
	Pos    position.Position
	Name   ident.Ident
	Params []Pattern
}

type InfixLHS struct {
	Pos   position.Position
	Left  Pattern
	Op    ident.Ident
	Right Pattern
}

type AppliedLHS struct {
	Pos    position.Position
	Base   LHS
	Params []Pattern
}

func (PrefixLHS) lhsNode()  {}
func (InfixLHS) lhsNode()   {}
func (AppliedLHS) lhsNode() {}

// RHS is a function/pattern binding's right-hand side: either one
// unconditional expression, or a list of guarded alternatives, either
// way with optional local `where` bindings (spec.md §3.5).
type RHS struct {
	Simple  Expr    // set when there are no guards
	Guarded []Guard // set when there are guards
	Locals  []Decl
}

type Guard struct {
	Pos  position.Position
	Cond Expr
	Body Expr
}

// CaseKind distinguishes rigid `case` from flexible `fcase` (spec.md
// §4.6).
type CaseKind int

const (
	CaseRigid CaseKind = iota
	CaseFlex
)

// Alt is one alternative of a case/fcase expression.
type Alt struct {
	Pos    position.Position
	Pat    Pattern
	RHS    RHS
	SrcRef position.SourceRef
}

// Field is one field=value pair of a record construction or update.
type Field struct {
	Pos   position.Position
	Name  ident.Ident
	Value Expr
}
