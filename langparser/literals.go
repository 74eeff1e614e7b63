package langparser

import (
	"strconv"

	"github.com/curry-lang/curry-base/ast"
	"github.com/curry-lang/curry-base/combinator"
	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/position"
	"github.com/curry-lang/curry-base/token"
)

// parseLiteral consumes one INT/FLOAT/CHAR/STRING token and builds the
// matching ast.Literal. The lexer has already decoded string/char escapes
// into the token's literal text; numeric literals still need strconv
// parsing here since the lexer keeps their raw digit text.
func parseLiteral(st *combinator.State) (ast.Literal, *diag.Error) {
	tok := st.Cur
	switch tok.Type {
	case token.INT:
		v, convErr := strconv.ParseInt(tok.Literal(), 10, 64)
		if convErr != nil {
			_, e := diag.Throw("parse/expected", nil, tok.Pos, "a valid integer literal")
			return nil, e
		}
		st.Advance()
		return ast.IntLiteral{Pos: tok.Pos, Value: v}, nil
	case token.FLOAT:
		v, convErr := strconv.ParseFloat(tok.Literal(), 64)
		if convErr != nil {
			_, e := diag.Throw("parse/expected", nil, tok.Pos, "a valid float literal")
			return nil, e
		}
		st.Advance()
		return ast.FloatLiteral{Pos: tok.Pos, Value: v}, nil
	case token.CHAR:
		st.Advance()
		r := []rune(tok.Literal())
		var v rune
		if len(r) > 0 {
			v = r[0]
		}
		return ast.CharLiteral{Pos: tok.Pos, Value: v}, nil
	case token.STRING:
		st.Advance()
		return ast.StringLiteral{Pos: tok.Pos, Value: tok.Literal()}, nil
	default:
		_, e := diag.Throw("parse/unexpected", nil, tok.Pos, "literal", string(tok.Type))
		return nil, e
	}
}

func posOfLiteral(lit ast.Literal) position.Position {
	switch l := lit.(type) {
	case ast.IntLiteral:
		return l.Pos
	case ast.FloatLiteral:
		return l.Pos
	case ast.CharLiteral:
		return l.Pos
	case ast.StringLiteral:
		return l.Pos
	default:
		return position.None
	}
}

// qualFromOperatorToken consumes an infix operator occurrence: either a
// bare SYMBOLIC token or a backtick-quoted IDENT/CONID (`` `elem` ``). It
// returns nil without consuming anything if the current token starts
// neither shape.
func qualFromOperatorToken(st *combinator.State) *ident.QualifiedIdent {
	switch st.Cur.Type {
	case token.SYMBOLIC:
		tok := st.Advance()
		q := qualFrom(tok)
		return &q
	case token.QUALSYMBOL:
		tok := st.Advance()
		q := qualFrom(tok)
		return &q
	case token.BACKTICK:
		st.Advance()
		tok := st.Cur
		if tok.Type != token.IDENT && tok.Type != token.CONID && tok.Type != token.QUALIDENT {
			return nil
		}
		st.Advance()
		q := qualFrom(tok)
		if st.Cur.Type == token.BACKTICK {
			st.Advance()
		}
		return &q
	default:
		return nil
	}
}
