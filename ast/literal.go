package ast

import "github.com/curry-lang/curry-base/position"

// Literal is the sum type of literal constants (spec.md §3.5). An
// integer literal carries an attached identifier so later elaboration
// can treat it polymorphically (as `fromInteger` of some numeric type)
// without re-parsing the token.
type Literal interface{ literalNode() }

type IntLiteral struct {
	Pos    position.Position
	Value  int64
	Attr   string // the identifier a polymorphic numeric literal elaborates through
	SrcRef position.SourceRef
}

type FloatLiteral struct {
	Pos    position.Position
	Value  float64
	SrcRef position.SourceRef
}

type CharLiteral struct {
	Pos    position.Position
	Value  rune
	SrcRef position.SourceRef
}

type StringLiteral struct {
	Pos    position.Position
	Value  string
	SrcRef position.SourceRef
}

func (IntLiteral) literalNode()    {}
func (FloatLiteral) literalNode()  {}
func (CharLiteral) literalNode()   {}
func (StringLiteral) literalNode() {}
