package langparser

import (
	"github.com/curry-lang/curry-base/ast"
	"github.com/curry-lang/curry-base/combinator"
	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/position"
	"github.com/curry-lang/curry-base/token"
)

var exprAtomTokens = []token.Type{
	token.INT, token.FLOAT, token.CHAR, token.STRING,
	token.IDENT, token.CONID, token.QUALIDENT,
	token.LPAREN, token.LBRACK, token.BACKSLASH,
	token.LET, token.IF, token.CASE, token.FCASE, token.DO,
}

// stmtAtomTokens is the first-set for a do-block/list-comprehension
// statement: everything an expression can start with, plus the pattern
// leaders (UNDERSCORE, TILDE) a bind statement can start with that an
// expression cannot.
var stmtAtomTokens = append(append([]token.Type{}, exprAtomTokens...), token.UNDERSCORE, token.TILDE)

// ExprP parses one expression: an optional `::` type annotation over an
// infix-operator chain of applications (spec.md §3.5, §4.6). Operator
// precedence and associativity are not tracked here (that belongs to a
// later fixity-resolution pass fed by FixityDecl, out of scope for this
// front end): every infix chain is folded left-associatively at one flat
// precedence, and nothing in this package re-associates it.
func ExprP() combinator.Parser[ast.Expr] {
	return rule(exprAtomTokens, "expression", parseExpr)
}

func parseExpr(st *combinator.State) (ast.Expr, *diag.Error) {
	e, err := parseOpExpr(st)
	if err != nil {
		return nil, err
	}
	if st.Cur.Type != token.DCOLON {
		return e, nil
	}
	pos := st.Cur.Pos
	st.Advance()
	t, err := parseType(st)
	if err != nil {
		return nil, err
	}
	return ast.TypedExpr{Pos: pos, Expr: e, Type: t}, nil
}

func parseOpExpr(st *combinator.State) (ast.Expr, *diag.Error) {
	left, err := parseUnary(st)
	if err != nil {
		return nil, err
	}
	for st.Cur.Type == token.SYMBOLIC || st.Cur.Type == token.QUALSYMBOL || st.Cur.Type == token.BACKTICK {
		pos := st.Cur.Pos
		op := qualFromOperatorToken(st)
		if op == nil {
			break
		}
		right, err := parseUnary(st)
		if err != nil {
			return nil, err
		}
		left = ast.InfixApplyExpr{Pos: pos, Left: left, Op: *op, Right: right}
	}
	return left, nil
}

func parseUnary(st *combinator.State) (ast.Expr, *diag.Error) {
	if st.Cur.Type == token.SYMBOLIC && (st.Cur.Literal() == "-" || st.Cur.Literal() == "-.") {
		isFloat := st.Cur.Literal() == "-."
		pos := st.Cur.Pos
		st.Advance()
		inner, err := parseApp(st)
		if err != nil {
			return nil, err
		}
		return ast.UnaryMinusExpr{Pos: pos, Float: isFloat, Inner: inner}, nil
	}
	return parseApp(st)
}

func parseApp(st *combinator.State) (ast.Expr, *diag.Error) {
	head, err := parseAtom(st)
	if err != nil {
		return nil, err
	}
	pos := posOfExpr(head)
	for canStartExprAtom(st) {
		arg, err := parseAtom(st)
		if err != nil {
			return nil, err
		}
		head = ast.ApplyExpr{Pos: pos, Fun: head, Arg: arg}
	}
	return head, nil
}

// canStartExprAtom deliberately excludes SYMBOLIC/QUALSYMBOL/BACKTICK: an
// operator occurrence there ends the application spine rather than
// starting another argument, and a negative literal used as an argument
// must be parenthesized (spec.md §4.6 mirrors the usual functional
// convention here).
func canStartExprAtom(st *combinator.State) bool {
	return atAny(st, exprAtomTokens...)
}

func posOfExpr(e ast.Expr) position.Position {
	switch v := e.(type) {
	case ast.LiteralExpr:
		return v.Pos
	case ast.VarExpr:
		return v.Pos
	case ast.ConstructorExpr:
		return v.Pos
	case ast.ParenExpr:
		return v.Pos
	case ast.TypedExpr:
		return v.Pos
	case ast.RecordExpr:
		return v.Pos
	case ast.RecordUpdateExpr:
		return v.Pos
	case ast.TupleExpr:
		return v.Pos
	case ast.ListExpr:
		return v.Pos
	case ast.ListCompExpr:
		return v.Pos
	case ast.EnumExpr:
		return v.Pos
	case ast.UnaryMinusExpr:
		return v.Pos
	case ast.ApplyExpr:
		return v.Pos
	case ast.InfixApplyExpr:
		return v.Pos
	case ast.LeftSection:
		return v.Pos
	case ast.RightSection:
		return v.Pos
	case ast.LambdaExpr:
		return v.Pos
	case ast.LetExpr:
		return v.Pos
	case ast.DoExpr:
		return v.Pos
	case ast.IfExpr:
		return v.Pos
	case ast.CaseExpr:
		return v.Pos
	default:
		return position.None
	}
}

func parseAtom(st *combinator.State) (ast.Expr, *diag.Error) {
	switch st.Cur.Type {
	case token.INT, token.FLOAT, token.CHAR, token.STRING:
		lit, err := parseLiteral(st)
		if err != nil {
			return nil, err
		}
		return ast.LiteralExpr{Pos: posOfLiteral(lit), Value: lit}, nil
	case token.IDENT:
		tok := st.Advance()
		return ast.VarExpr{Pos: tok.Pos, Name: qualFrom(tok)}, nil
	case token.CONID:
		tok := st.Advance()
		e, err := parseRecordTail(st, tok.Pos, qualFrom(tok))
		return e, err
	case token.QUALIDENT:
		tok := st.Advance()
		if isConLiteral(tok.Literal()) {
			return parseRecordTail(st, tok.Pos, qualFrom(tok))
		}
		return ast.VarExpr{Pos: tok.Pos, Name: qualFrom(tok)}, nil
	case token.LBRACK:
		return parseListLike(st)
	case token.LPAREN:
		return parseParenLike(st)
	case token.BACKSLASH:
		return parseLambda(st)
	case token.LET:
		return parseLetExpr(st)
	case token.IF:
		return parseIfExpr(st)
	case token.CASE, token.FCASE:
		return parseCaseExpr(st)
	case token.DO:
		return parseDoExpr(st)
	default:
		_, e := diag.Throw("parse/unexpected", nil, st.Cur.Pos, "expression", string(st.Cur.Type))
		return nil, e
	}
}

// parseRecordTail extends a bare constructor reference into a record
// construction when immediately followed by "{" (spec.md §3.5); a
// constructor with no braces is just ConstructorExpr.
func parseRecordTail(st *combinator.State, pos position.Position, name ident.QualifiedIdent) (ast.Expr, *diag.Error) {
	if st.Cur.Type != token.LBRACE {
		return ast.ConstructorExpr{Pos: pos, Name: name}, nil
	}
	st.Advance()
	fields, err := parseFieldList(st)
	if err != nil {
		return nil, err
	}
	if _, err := expect(st, token.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return ast.RecordExpr{Pos: pos, Name: name, Fields: fields}, nil
}

func parseFieldList(st *combinator.State) ([]ast.Field, *diag.Error) {
	var fields []ast.Field
	if st.Cur.Type == token.RBRACE {
		return fields, nil
	}
	for {
		if st.Cur.Type != token.IDENT {
			_, e := diag.Throw("parse/expected", nil, st.Cur.Pos, "a field name")
			return nil, e
		}
		tok := st.Advance()
		if _, err := expect(st, token.EQUALS, "'='"); err != nil {
			return nil, err
		}
		val, err := parseExpr(st)
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.Field{Pos: tok.Pos, Name: identFrom(tok), Value: val})
		if st.Cur.Type != token.COMMA {
			break
		}
		st.Advance()
	}
	return fields, nil
}

func parseListLike(st *combinator.State) (ast.Expr, *diag.Error) {
	pos := st.Cur.Pos
	st.Advance()
	if st.Cur.Type == token.RBRACK {
		st.Advance()
		return ast.ListExpr{Pos: pos}, nil
	}
	first, err := parseExpr(st)
	if err != nil {
		return nil, err
	}
	switch st.Cur.Type {
	case token.DOTDOT:
		st.Advance()
		to, err := parseOptionalEnumBound(st)
		if err != nil {
			return nil, err
		}
		if _, err := expect(st, token.RBRACK, "']'"); err != nil {
			return nil, err
		}
		return ast.EnumExpr{Pos: pos, From: first, To: to}, nil
	case token.PIPE:
		st.Advance()
		quals, err := parseQuals(st)
		if err != nil {
			return nil, err
		}
		if _, err := expect(st, token.RBRACK, "']'"); err != nil {
			return nil, err
		}
		return ast.ListCompExpr{Pos: pos, Head: first, Quals: quals}, nil
	case token.COMMA:
		st.Advance()
		second, err := parseExpr(st)
		if err != nil {
			return nil, err
		}
		if st.Cur.Type == token.DOTDOT {
			st.Advance()
			to, err := parseOptionalEnumBound(st)
			if err != nil {
				return nil, err
			}
			if _, err := expect(st, token.RBRACK, "']'"); err != nil {
				return nil, err
			}
			return ast.EnumExpr{Pos: pos, From: first, Step: second, To: to}, nil
		}
		elems := []ast.Expr{first, second}
		for st.Cur.Type == token.COMMA {
			st.Advance()
			e, err := parseExpr(st)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		if _, err := expect(st, token.RBRACK, "']'"); err != nil {
			return nil, err
		}
		return ast.ListExpr{Pos: pos, Elems: elems}, nil
	default:
		if _, err := expect(st, token.RBRACK, "']'"); err != nil {
			return nil, err
		}
		return ast.ListExpr{Pos: pos, Elems: []ast.Expr{first}}, nil
	}
}

func parseOptionalEnumBound(st *combinator.State) (ast.Expr, *diag.Error) {
	if st.Cur.Type == token.RBRACK {
		return nil, nil
	}
	return parseExpr(st)
}

// parseQuals parses the comma-separated qualifier list of a list
// comprehension: generators (`pat <- expr`), boolean guards, and
// `let`-without-`in` declaration groups (spec.md §4.6).
func parseQuals(st *combinator.State) ([]ast.Stmt, *diag.Error) {
	var stmts []ast.Stmt
	for {
		s, err := parseStmt(st)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
		if st.Cur.Type != token.COMMA {
			break
		}
		st.Advance()
	}
	return stmts, nil
}

// parseStmt parses one do-block or list-comprehension statement. A
// generator's pattern and a plain expression statement share the same
// leading tokens, so a bind is tried first and the state is rewound to a
// plain expression parse on failure.
func parseStmt(st *combinator.State) (ast.Stmt, *diag.Error) {
	if st.Cur.Type == token.LET {
		pos := st.Cur.Pos
		st.Advance()
		decls, err := parseLocalDecls(st)
		if err != nil {
			return nil, err
		}
		if st.Cur.Type == token.IN {
			st.Advance()
			body, err := parseExpr(st)
			if err != nil {
				return nil, err
			}
			return ast.ExprStmt{Pos: pos, Expr: ast.LetExpr{Pos: pos, Locals: decls, Body: body}}, nil
		}
		return ast.DeclStmt{Pos: pos, Decls: decls}, nil
	}

	tp := mark(st)
	if pat, perr := parsePattern(st); perr == nil && st.Cur.Type == token.LARROW {
		pos := st.Cur.Pos
		st.Advance()
		e, err := parseExpr(st)
		if err != nil {
			return nil, err
		}
		return ast.BindStmt{Pos: pos, Pattern: pat, Expr: e}, nil
	}
	rewind(st, tp)
	e, err := parseExpr(st)
	if err != nil {
		return nil, err
	}
	return ast.ExprStmt{Pos: posOfExpr(e), Expr: e}, nil
}

func parseParenLike(st *combinator.State) (ast.Expr, *diag.Error) {
	pos := st.Cur.Pos
	st.Advance()
	if st.Cur.Type == token.RPAREN {
		st.Advance()
		return ast.ConstructorExpr{Pos: pos, Name: qualFromPlainName(pos, "()")}, nil
	}
	// A leading operator with a closing paren immediately after is a
	// right section: (op e).
	if op := qualFromOperatorToken(st); op != nil {
		if st.Cur.Type == token.RPAREN {
			st.Advance()
			return ast.VarExpr{Pos: pos, Name: *op}, nil
		}
		e, err := parseOpExpr(st)
		if err != nil {
			return nil, err
		}
		if _, err := expect(st, token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return ast.RightSection{Pos: pos, Op: *op, Expr: e}, nil
	}
	first, err := parseExpr(st)
	if err != nil {
		return nil, err
	}
	if op := qualFromOperatorToken(st); op != nil {
		if st.Cur.Type == token.RPAREN {
			st.Advance()
			return ast.LeftSection{Pos: pos, Expr: first, Op: *op}, nil
		}
		right, err := parseUnary(st)
		if err != nil {
			return nil, err
		}
		first = ast.InfixApplyExpr{Pos: pos, Left: first, Op: *op, Right: right}
	}
	switch st.Cur.Type {
	case token.COMMA:
		elems := []ast.Expr{first}
		for st.Cur.Type == token.COMMA {
			st.Advance()
			e, err := parseExpr(st)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		if _, err := expect(st, token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return ast.TupleExpr{Pos: pos, Elems: elems}, nil
	case token.LBRACE:
		st.Advance()
		fields, err := parseFieldList(st)
		if err != nil {
			return nil, err
		}
		if _, err := expect(st, token.RBRACE, "'}'"); err != nil {
			return nil, err
		}
		if _, err := expect(st, token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return ast.RecordUpdateExpr{Pos: pos, Base: first, Fields: fields}, nil
	default:
		if _, err := expect(st, token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return ast.ParenExpr{Pos: pos, Inner: first}, nil
	}
}

func parseLambda(st *combinator.State) (ast.Expr, *diag.Error) {
	pos := st.Cur.Pos
	st.Advance()
	var params []ast.Pattern
	for atAny(st, patternAtomTokens...) {
		p, err := parsePatternAtom(st)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	if len(params) == 0 {
		_, e := diag.Throw("parse/expected", nil, st.Cur.Pos, "at least one lambda parameter")
		return nil, e
	}
	if _, err := expect(st, token.RARROW, "'->'"); err != nil {
		return nil, err
	}
	body, err := parseExpr(st)
	if err != nil {
		return nil, err
	}
	return ast.LambdaExpr{Pos: pos, Params: params, Body: body}, nil
}

func parseLetExpr(st *combinator.State) (ast.Expr, *diag.Error) {
	pos := st.Cur.Pos
	st.Advance()
	decls, err := parseLocalDecls(st)
	if err != nil {
		return nil, err
	}
	if _, err := expect(st, token.IN, "'in'"); err != nil {
		return nil, err
	}
	body, err := parseExpr(st)
	if err != nil {
		return nil, err
	}
	return ast.LetExpr{Pos: pos, Locals: decls, Body: body}, nil
}

func parseIfExpr(st *combinator.State) (ast.Expr, *diag.Error) {
	pos := st.Cur.Pos
	st.Advance()
	cond, err := parseExpr(st)
	if err != nil {
		return nil, err
	}
	if _, err := expect(st, token.THEN, "'then'"); err != nil {
		return nil, err
	}
	thenE, err := parseExpr(st)
	if err != nil {
		return nil, err
	}
	if _, err := expect(st, token.ELSE, "'else'"); err != nil {
		return nil, err
	}
	elseE, err := parseExpr(st)
	if err != nil {
		return nil, err
	}
	return ast.IfExpr{Pos: pos, Cond: cond, Then: thenE, Else: elseE}, nil
}

func parseCaseExpr(st *combinator.State) (ast.Expr, *diag.Error) {
	pos := st.Cur.Pos
	kind := ast.CaseRigid
	if st.Cur.Type == token.FCASE {
		kind = ast.CaseFlex
	}
	st.Advance()
	scrutinee, err := parseExpr(st)
	if err != nil {
		return nil, err
	}
	if _, err := expect(st, token.OF, "'of'"); err != nil {
		return nil, err
	}
	alts, err := parseAltBlock(st)
	if err != nil {
		return nil, err
	}
	return ast.CaseExpr{Pos: pos, Kind: kind, Scrutinee: scrutinee, Alts: alts}, nil
}

func parseAltBlock(st *combinator.State) ([]ast.Alt, *diag.Error) {
	block := combinator.Block(rule(patternAtomTokens, "case alternative block", parseAltList))
	return combinator.Run(block, st)
}

func parseAltList(st *combinator.State) ([]ast.Alt, *diag.Error) {
	var alts []ast.Alt
	for {
		alt, err := parseAlt(st)
		if err != nil {
			return nil, err
		}
		alts = append(alts, alt)
		if !atAny(st, token.VSEMI, token.SEMICOLON) {
			break
		}
		st.Advance()
	}
	return alts, nil
}

func parseAlt(st *combinator.State) (ast.Alt, *diag.Error) {
	pos := st.Cur.Pos
	pat, err := parsePattern(st)
	if err != nil {
		return ast.Alt{}, err
	}
	rhs, err := parseRHS(st, token.RARROW)
	if err != nil {
		return ast.Alt{}, err
	}
	return ast.Alt{Pos: pos, Pat: pat, RHS: rhs}, nil
}

func parseDoExpr(st *combinator.State) (ast.Expr, *diag.Error) {
	pos := st.Cur.Pos
	st.Advance()
	block := combinator.Block(rule(stmtAtomTokens, "do block", parseDoStmts))
	stmts, err := combinator.Run(block, st)
	if err != nil {
		return nil, err
	}
	return ast.DoExpr{Pos: pos, Stmts: stmts}, nil
}

func parseDoStmts(st *combinator.State) ([]ast.Stmt, *diag.Error) {
	var stmts []ast.Stmt
	for {
		s, err := parseStmt(st)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
		if !atAny(st, token.VSEMI, token.SEMICOLON) {
			break
		}
		st.Advance()
	}
	return stmts, nil
}
