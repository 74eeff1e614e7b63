// Package position implements the concrete/ast-only/none position values
// (spec.md §3.1, §4.2) and the opaque SourceRef tag used for later
// back-mapping of IR nodes to source locations.
//
// Grounded on the teacher's token.Token, which carries Line/ChStart/ChEnd/
// Source fields directly on every token; here those fields are pulled out
// into their own value type so that AST nodes, not just tokens, can carry
// a position.
package position

import "github.com/curry-lang/curry-base/internal/settings"

// SourceRef is an opaque tag used only for later back-mapping to original
// source locations. Per spec.md §3.1 it compares equal to any other
// SourceRef, orders equal to any other, and shows as the empty string.
type SourceRef struct {
	path []int
}

// NoRef is the zero SourceRef, carrying no back-reference.
var NoRef = SourceRef{}

// NewSourceRef builds a SourceRef from a list of integer path components,
// as assigned by a generic post-parse injection pass (spec.md §4.2).
func NewSourceRef(path ...int) SourceRef {
	return SourceRef{path: append([]int(nil), path...)}
}

// Equal is always true: SourceRef carries no comparable payload for the
// purposes of position/AST equality.
func (SourceRef) Equal(SourceRef) bool { return true }

// Compare always reports the two SourceRefs as equal (returns 0).
func (SourceRef) Compare(SourceRef) int { return 0 }

// String always renders as the empty string.
func (SourceRef) String() string { return "" }

// kind distinguishes the three position shapes of spec.md §3.1.
type kind int

const (
	kindNone kind = iota
	kindAST
	kindConcrete
)

// Position is one of {concrete, ast-only, none}. The zero Position is
// "none". Equality and ordering treat the embedded SourceRef as
// invisible: two concrete positions with the same file/line/column are
// equal regardless of their SourceRef.
type Position struct {
	k      kind
	file   string
	line   int
	column int
	ref    SourceRef
}

// None is the position carrying no location information at all.
var None = Position{k: kindNone}

// FromRef builds an ast-only position: no file/line/column, just a
// SourceRef for back-mapping.
func FromRef(ref SourceRef) Position {
	return Position{k: kindAST, ref: ref}
}

// First returns the starting position (file, line 1, column 1, no ref)
// of a freshly opened source file.
func First(file string) Position {
	return Position{k: kindConcrete, file: file, line: 1, column: 1}
}

// New builds a concrete position at an explicit file/line/column.
func New(file string, line, column int) Position {
	return Position{k: kindConcrete, file: file, line: line, column: column}
}

func (p Position) IsConcrete() bool { return p.k == kindConcrete }
func (p Position) IsNone() bool     { return p.k == kindNone }

func (p Position) File() string { return p.file }
func (p Position) Line() int    { return p.line }
func (p Position) Column() int  { return p.column }
func (p Position) Ref() SourceRef {
	return p.ref
}

// WithRef returns a copy of p carrying the given SourceRef. Positions may
// be updated with a ref without changing their file/line/column identity
// (spec.md §3.2: "Positions may be updated").
func (p Position) WithRef(ref SourceRef) Position {
	p.ref = ref
	return p
}

// Equal implements the spec.md §3.1 invariant that SourceRef is invisible
// to equality.
func (p Position) Equal(q Position) bool {
	if p.k != q.k {
		return false
	}
	switch p.k {
	case kindNone:
		return true
	case kindAST:
		return true
	default:
		return p.file == q.file && p.line == q.line && p.column == q.column
	}
}

// Less imposes a total order on positions ignoring SourceRef: none <
// ast-only < concrete, and concrete positions order by file, then line,
// then column.
func (p Position) Less(q Position) bool {
	if p.k != q.k {
		return p.k < q.k
	}
	if p.k != kindConcrete {
		return false
	}
	if p.file != q.file {
		return p.file < q.file
	}
	if p.line != q.line {
		return p.line < q.line
	}
	return p.column < q.column
}

// Incr advances the column of a concrete position by n columns; it is the
// identity on non-concrete positions (spec.md §4.2).
func Incr(p Position, n int) Position {
	if p.k != kindConcrete {
		return p
	}
	p.column += n
	return p
}

// Tab advances a concrete position's column to the next tab stop (every
// settings.TabWidth-th column, spec.md §4.2). Identity on non-concrete
// positions.
func Tab(p Position) Position {
	if p.k != kindConcrete {
		return p
	}
	p.column = ((p.column-1)/settings.TabWidth+1)*settings.TabWidth + 1
	return p
}

// Nl resets a concrete position's column to 1 and advances its line by
// one. Identity on non-concrete positions.
func Nl(p Position) Position {
	if p.k != kindConcrete {
		return p
	}
	p.column = 1
	p.line++
	return p
}

// String renders a position as "<file>:<line>.<column>" for concrete
// positions (spec.md §6.3's error text format), and the empty string
// otherwise.
func (p Position) String() string {
	if p.k != kindConcrete {
		return ""
	}
	return p.file + ":" + itoa(p.line) + "." + itoa(p.column)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
