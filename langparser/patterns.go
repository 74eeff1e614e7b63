package langparser

import (
	"strings"

	"github.com/curry-lang/curry-base/ast"
	"github.com/curry-lang/curry-base/combinator"
	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/position"
	"github.com/curry-lang/curry-base/token"
)

var patternAtomTokens = []token.Type{
	token.INT, token.FLOAT, token.CHAR, token.STRING,
	token.IDENT, token.CONID, token.QUALIDENT, token.UNDERSCORE,
	token.LPAREN, token.LBRACK, token.TILDE,
	token.SYMBOLIC, // covers a leading "-"/"-." for negative-literal patterns
}

// PatternP parses one pattern, including the `@`-suffixed as-pattern and
// infix constructor-operator patterns folded left-associatively (spec.md
// §3.5).
func PatternP() combinator.Parser[ast.Pattern] {
	return rule(patternAtomTokens, "pattern", parsePattern)
}

func parsePattern(st *combinator.State) (ast.Pattern, *diag.Error) {
	left, err := parseAppPattern(st)
	if err != nil {
		return nil, err
	}
	if st.Cur.Type == token.BACKTICK || st.Cur.Type == token.SYMBOLIC || st.Cur.Type == token.QUALSYMBOL {
		return parseInfixPatternTail(st, left)
	}
	return left, nil
}

// parseInfixPatternTail folds one infix operator occurrence onto left.
// The operator denotes a constructor (`InfixPattern`, e.g. `x:xs`) or a
// defined function (`InfixFunctionPattern`, a functional pattern such as
// `` x `elem` xs ``) by the same capitalization/leading-colon convention
// isConLiteral uses elsewhere: a symbolic operator starting with ':' or a
// backtick-quoted constructor name is a constructor operator, anything
// else names a function.
func parseInfixPatternTail(st *combinator.State, left ast.Pattern) (ast.Pattern, *diag.Error) {
	pos := st.Cur.Pos
	opIdent, isCon := classifyOperatorToken(st)
	if opIdent == nil {
		return left, nil
	}
	right, err := parseAppPattern(st)
	if err != nil {
		return nil, err
	}
	if isCon {
		return ast.InfixPattern{Pos: pos, Left: left, Op: *opIdent, Right: right}, nil
	}
	return ast.InfixFunctionPattern{Pos: pos, Left: left, Op: *opIdent, Right: right}, nil
}

// classifyOperatorToken consumes the same infix-operator shapes as
// qualFromOperatorToken, additionally reporting whether the operator
// names a constructor.
func classifyOperatorToken(st *combinator.State) (*ident.QualifiedIdent, bool) {
	switch st.Cur.Type {
	case token.SYMBOLIC, token.QUALSYMBOL:
		isCon := strings.HasPrefix(st.Cur.Literal(), ":")
		tok := st.Advance()
		q := qualFrom(tok)
		return &q, isCon
	case token.BACKTICK:
		st.Advance()
		tok := st.Cur
		if tok.Type != token.IDENT && tok.Type != token.CONID && tok.Type != token.QUALIDENT {
			return nil, false
		}
		isCon := tok.Type == token.CONID || (tok.Type == token.QUALIDENT && isConLiteral(tok.Literal()))
		st.Advance()
		q := qualFrom(tok)
		if st.Cur.Type == token.BACKTICK {
			st.Advance()
		}
		return &q, isCon
	default:
		return nil, false
	}
}

// parseAppPattern parses one application-shaped pattern: a constructor
// head followed by positional args or a `{field=pat, ...}` record-field
// list, or a variable head followed by one or more argument atoms, which
// makes it a functional pattern (spec.md §3.5's "function-pattern") —
// Curry's hallmark feature of using a defined function, not just a
// constructor, to head a pattern, e.g. `(last xs)`. A variable head with
// no following argument is left as a plain VarPattern; any other atom
// (literal, wildcard, ...) can't head an application and is returned
// unchanged.
func parseAppPattern(st *combinator.State) (ast.Pattern, *diag.Error) {
	head, err := parsePatternAtom(st)
	if err != nil {
		return nil, err
	}
	switch h := head.(type) {
	case ast.ConstructorPattern:
		if st.Cur.Type == token.LBRACE {
			return parseRecordPatternFields(st, h.Pos, h.Name)
		}
		var args []ast.Pattern
		for canStartPatternArg(st) {
			arg, err := parsePatternAtom(st)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		h.Args = args
		return h, nil
	case ast.VarPattern:
		if !canStartPatternArg(st) {
			return h, nil
		}
		var args []ast.Pattern
		for canStartPatternArg(st) {
			arg, err := parsePatternAtom(st)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return ast.FunctionPattern{Pos: h.Pos, Name: ident.NewQualifiedIdent(h.Name), Args: args}, nil
	default:
		return head, nil
	}
}

// parseRecordPatternFields parses the `{name=pattern, ...}` field list
// following a constructor head, spec.md §3.5's "record" pattern.
func parseRecordPatternFields(st *combinator.State, pos position.Position, name ident.QualifiedIdent) (ast.Pattern, *diag.Error) {
	st.Advance() // '{'
	var fields []ast.FieldPattern
	if st.Cur.Type != token.RBRACE {
		for {
			fieldPos := st.Cur.Pos
			nameTok, err := expect(st, token.IDENT, "a field name")
			if err != nil {
				return nil, err
			}
			if _, err := expect(st, token.EQUALS, "'='"); err != nil {
				return nil, err
			}
			value, err := parsePattern(st)
			if err != nil {
				return nil, err
			}
			fields = append(fields, ast.FieldPattern{Pos: fieldPos, Name: identFrom(nameTok), Value: value})
			if st.Cur.Type != token.COMMA {
				break
			}
			st.Advance()
		}
	}
	if _, err := expect(st, token.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return ast.RecordPattern{Pos: pos, Name: name, Fields: fields}, nil
}

// canStartPatternArg reports whether the current token can begin another
// argument atom in a constructor- or function-application pattern. A
// bare SYMBOLIC token only qualifies when it is the "-"/"-." of a
// negative-literal pattern; any other symbolic token is an infix
// operator continuing the enclosing pattern, not a new argument (e.g.
// "Just x : rest").
func canStartPatternArg(st *combinator.State) bool {
	if st.Cur.Type == token.SYMBOLIC {
		return st.Cur.Literal() == "-" || st.Cur.Literal() == "-."
	}
	return atAny(st, token.INT, token.FLOAT, token.CHAR, token.STRING,
		token.IDENT, token.CONID, token.QUALIDENT, token.UNDERSCORE,
		token.LPAREN, token.LBRACK, token.TILDE)
}

func parsePatternAtom(st *combinator.State) (ast.Pattern, *diag.Error) {
	base, err := parsePatternBase(st)
	if err != nil {
		return nil, err
	}
	if st.Cur.Type == token.AT {
		if v, ok := base.(ast.VarPattern); ok {
			st.Advance()
			inner, err := parsePatternAtom(st)
			if err != nil {
				return nil, err
			}
			return ast.AsPattern{Pos: v.Pos, Name: v.Name, Pattern: inner}, nil
		}
	}
	return base, nil
}

func parsePatternBase(st *combinator.State) (ast.Pattern, *diag.Error) {
	switch st.Cur.Type {
	case token.INT, token.FLOAT, token.CHAR, token.STRING:
		lit, err := parseLiteral(st)
		if err != nil {
			return nil, err
		}
		return ast.LiteralPattern{Pos: posOfLiteral(lit), Value: lit}, nil
	case token.SYMBOLIC:
		if st.Cur.Literal() == "-" || st.Cur.Literal() == "-." {
			isFloat := st.Cur.Literal() == "-."
			pos := st.Cur.Pos
			st.Advance()
			lit, err := parseLiteral(st)
			if err != nil {
				return nil, err
			}
			return ast.NegativeLiteralPattern{Pos: pos, Float: isFloat, Value: lit}, nil
		}
		_, e := diag.Throw("parse/unexpected", nil, st.Cur.Pos, "pattern", string(st.Cur.Type))
		return nil, e
	case token.UNDERSCORE:
		tok := st.Advance()
		return ast.WildcardPattern{Pos: tok.Pos}, nil
	case token.IDENT:
		tok := st.Advance()
		return ast.VarPattern{Pos: tok.Pos, Name: identFrom(tok)}, nil
	case token.CONID, token.QUALIDENT:
		tok := st.Advance()
		return ast.ConstructorPattern{Pos: tok.Pos, Name: qualFrom(tok)}, nil
	case token.TILDE:
		pos := st.Cur.Pos
		st.Advance()
		inner, err := parsePatternAtom(st)
		if err != nil {
			return nil, err
		}
		return ast.LazyPattern{Pos: pos, Inner: inner}, nil
	case token.LBRACK:
		pos := st.Cur.Pos
		st.Advance()
		var elems []ast.Pattern
		if st.Cur.Type != token.RBRACK {
			for {
				elem, err := parsePattern(st)
				if err != nil {
					return nil, err
				}
				elems = append(elems, elem)
				if st.Cur.Type != token.COMMA {
					break
				}
				st.Advance()
			}
		}
		if _, err := expect(st, token.RBRACK, "']'"); err != nil {
			return nil, err
		}
		return ast.ListPattern{Pos: pos, Elems: elems}, nil
	case token.LPAREN:
		pos := st.Cur.Pos
		st.Advance()
		if st.Cur.Type == token.RPAREN {
			st.Advance()
			return ast.ConstructorPattern{Pos: pos, Name: qualFromPlainName(pos, "()")}, nil
		}
		first, err := parsePattern(st)
		if err != nil {
			return nil, err
		}
		if st.Cur.Type == token.COMMA {
			elems := []ast.Pattern{first}
			for st.Cur.Type == token.COMMA {
				st.Advance()
				next, err := parsePattern(st)
				if err != nil {
					return nil, err
				}
				elems = append(elems, next)
			}
			if _, err := expect(st, token.RPAREN, "')'"); err != nil {
				return nil, err
			}
			return ast.TuplePattern{Pos: pos, Elems: elems}, nil
		}
		if _, err := expect(st, token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return ast.ParenPattern{Pos: pos, Inner: first}, nil
	default:
		_, e := diag.Throw("parse/unexpected", nil, st.Cur.Pos, "pattern", string(st.Cur.Type))
		return nil, e
	}
}
