package lexer

// runeSupplier gives one-rune-lookahead access to the source text plus
// running (line, column) tracking under the tab/nl/incr rules of
// position (spec.md §4.2).
//
// Grounded on the teacher's source/lexer/rune_supplier.go: CurrentRune/
// PeekRune/Next with an internal rune slice and index. Column tracking
// there is a raw (pos - lineStart) offset; here next applies the same
// arithmetic as position's Tab/Nl/Incr on plain ints, with tab stops every
// 8 columns (the value of settings.TabWidth).
type runeSupplier struct {
	code []rune
	pos  int
	line int
	col  int
}

func newRuneSupplier(code []rune) *runeSupplier {
	return &runeSupplier{code: code, line: 1, col: 1}
}

func (rs *runeSupplier) current() rune {
	if rs.pos < len(rs.code) {
		return rs.code[rs.pos]
	}
	return 0
}

func (rs *runeSupplier) peek() rune {
	if rs.pos+1 < len(rs.code) {
		return rs.code[rs.pos+1]
	}
	return 0
}

func (rs *runeSupplier) peekAt(n int) rune {
	if rs.pos+n < len(rs.code) {
		return rs.code[rs.pos+n]
	}
	return 0
}

// next advances by one rune, updating line/column per the tab/nl/incr
// rules: newline resets column and bumps line, tab advances to the next
// stop, anything else advances by one column.
func (rs *runeSupplier) next() {
	if rs.pos >= len(rs.code) {
		return
	}
	switch rs.code[rs.pos] {
	case '\n':
		rs.line++
		rs.col = 1
	case '\t':
		rs.col = ((rs.col-1)/8+1)*8 + 1
	default:
		rs.col++
	}
	rs.pos++
}

func (rs *runeSupplier) atEOF() bool { return rs.pos >= len(rs.code) }

func (rs *runeSupplier) position() (line, col int) { return rs.line, rs.col }
