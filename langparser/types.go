package langparser

import (
	"github.com/curry-lang/curry-base/ast"
	"github.com/curry-lang/curry-base/combinator"
	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/token"
)

var typeAtomTokens = []token.Type{token.IDENT, token.CONID, token.QUALIDENT, token.LPAREN, token.LBRACK}

// TypeExprP parses a type expression: a spine of applied atoms, folded
// right-associatively over `->` (spec.md §3.5).
func TypeExprP() combinator.Parser[ast.TypeExpr] {
	return rule(typeAtomTokens, "type", parseType)
}

func parseType(st *combinator.State) (ast.TypeExpr, *diag.Error) {
	left, err := parseTypeApp(st)
	if err != nil {
		return nil, err
	}
	if st.Cur.Type != token.RARROW {
		return left, nil
	}
	pos := st.Cur.Pos
	st.Advance()
	right, err := parseType(st)
	if err != nil {
		return nil, err
	}
	return ast.TypeArrow{Pos: pos, Domain: left, Range: right}, nil
}

func parseTypeApp(st *combinator.State) (ast.TypeExpr, *diag.Error) {
	startPos := st.Cur.Pos
	head, err := parseTypeAtom(st)
	if err != nil {
		return nil, err
	}
	var args []ast.TypeExpr
	for atAny(st, typeAtomTokens...) {
		arg, err := parseTypeAtom(st)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return head, nil
	}
	con, ok := head.(ast.TypeCon)
	if !ok {
		_, e := diag.Throw("parse/expected", nil, startPos, "a type constructor applied to arguments")
		return nil, e
	}
	con.Args = args
	return con, nil
}

func parseTypeAtom(st *combinator.State) (ast.TypeExpr, *diag.Error) {
	switch st.Cur.Type {
	case token.IDENT:
		tok := st.Advance()
		return ast.TypeVar{Pos: tok.Pos, Name: identFrom(tok)}, nil
	case token.CONID, token.QUALIDENT:
		tok := st.Advance()
		return ast.TypeCon{Pos: tok.Pos, Name: qualFrom(tok)}, nil
	case token.LBRACK:
		pos := st.Cur.Pos
		st.Advance()
		if st.Cur.Type == token.RBRACK {
			st.Advance()
			return ast.TypeCon{Pos: pos, Name: qualFromPlainName(pos, "[]")}, nil
		}
		elem, err := parseType(st)
		if err != nil {
			return nil, err
		}
		if _, err := expect(st, token.RBRACK, "']'"); err != nil {
			return nil, err
		}
		return ast.TypeList{Pos: pos, Elem: elem}, nil
	case token.LPAREN:
		pos := st.Cur.Pos
		st.Advance()
		if st.Cur.Type == token.RPAREN {
			st.Advance()
			return ast.TypeCon{Pos: pos, Name: qualFromPlainName(pos, "()")}, nil
		}
		first, err := parseType(st)
		if err != nil {
			return nil, err
		}
		if st.Cur.Type == token.COMMA {
			elems := []ast.TypeExpr{first}
			for st.Cur.Type == token.COMMA {
				st.Advance()
				next, err := parseType(st)
				if err != nil {
					return nil, err
				}
				elems = append(elems, next)
			}
			if _, err := expect(st, token.RPAREN, "')'"); err != nil {
				return nil, err
			}
			return ast.TypeTuple{Pos: pos, Elems: elems}, nil
		}
		if _, err := expect(st, token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return ast.TypeParen{Pos: pos, Inner: first}, nil
	default:
		_, e := diag.Throw("parse/unexpected", nil, st.Cur.Pos, "type", string(st.Cur.Type))
		return nil, e
	}
}
