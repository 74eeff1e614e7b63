package langparser

import (
	"github.com/curry-lang/curry-base/ast"
	"github.com/curry-lang/curry-base/combinator"
	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/position"
	"github.com/curry-lang/curry-base/token"
)

// declAtomTokens is the first-set of one declaration, shared by the
// top-level declaration group and every local `where`/`let` block (spec.md
// §3.5's Decl sum type covers both without a separate local variant).
var declAtomTokens = []token.Type{
	token.DATA, token.NEWTYPE, token.TYPE, token.FOREIGN, token.EXTERNAL,
	token.INFIX, token.INFIXL, token.INFIXR,
	token.IDENT, token.CONID, token.QUALIDENT,
	token.LPAREN, token.LBRACK, token.UNDERSCORE, token.TILDE,
	token.INT, token.FLOAT, token.CHAR, token.STRING, token.SYMBOLIC,
}

// parseLocalDecls parses a `where`/`let` layout block of declarations.
func parseLocalDecls(st *combinator.State) ([]ast.Decl, *diag.Error) {
	block := combinator.Block(rule(declAtomTokens, "declarations", parseDeclList))
	return combinator.Run(block, st)
}

func parseDeclList(st *combinator.State) ([]ast.Decl, *diag.Error) {
	var decls []ast.Decl
	for {
		d, err := parseDecl(st)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
		if !atAny(st, token.VSEMI, token.SEMICOLON) {
			break
		}
		st.Advance()
	}
	return groupEquations(decls), nil
}

// groupEquations merges adjacent FunctionDecl entries sharing one name
// (each produced by parseBindingDecl holding exactly one Equation) into a
// single FunctionDecl, the way multiple defining clauses of one function
// are written as separate lines in the input.
func groupEquations(decls []ast.Decl) []ast.Decl {
	var out []ast.Decl
	for _, d := range decls {
		if fd, ok := d.(ast.FunctionDecl); ok && len(out) > 0 {
			if prev, ok2 := out[len(out)-1].(ast.FunctionDecl); ok2 && prev.Name.Name() == fd.Name.Name() {
				prev.Equations = append(prev.Equations, fd.Equations...)
				out[len(out)-1] = prev
				continue
			}
		}
		out = append(out, d)
	}
	return out
}

func parseDecl(st *combinator.State) (ast.Decl, *diag.Error) {
	switch st.Cur.Type {
	case token.DATA:
		return parseDataDecl(st)
	case token.NEWTYPE:
		return parseNewtypeDecl(st)
	case token.TYPE:
		return parseTypeSynonymDecl(st)
	case token.FOREIGN:
		return parseForeignDecl(st)
	case token.EXTERNAL:
		return parseExternalDecl(st)
	case token.INFIX, token.INFIXL, token.INFIXR:
		return parseFixityDecl(st)
	case token.IDENT:
		return parseIdentHeadedDecl(st)
	default:
		return parseBindingDecl(st)
	}
}

// parseIdentHeadedDecl disambiguates the three shapes an IDENT can start:
// a type signature (`f, g :: T`), a free-variable declaration (`x, y
// free`), or an ordinary binding. All three share an identifier-list
// prefix, so there's no fixed amount of lookahead that settles it; both
// shapes are tried from the same position via AltLong (spec.md §4.4's
// non-deterministic choice), and the one that consumes more input before
// succeeding or failing wins (spec.md line 123) — a plain binding like
// `f x = ...` loses the identifier-list branch almost immediately (no
// `::` or `free` follows `f`), while a real signature or free decl keeps
// consuming well past that point.
func parseIdentHeadedDecl(st *combinator.State) (ast.Decl, *diag.Error) {
	sigOrFree := rule([]token.Type{token.IDENT}, "type signature or free declaration", parseTypeSigOrFreeDecl)
	binding := rule([]token.Type{token.IDENT}, "binding", parseBindingDecl)
	return combinator.Run(combinator.AltLong(sigOrFree, binding), st)
}

// parseTypeSigOrFreeDecl parses the identifier-list-headed shapes a
// TypeSignatureDecl or FreeDecl start with. It fails (without special
// casing) when neither trailing keyword follows, leaving AltLong to
// prefer whichever branch consumed more input.
func parseTypeSigOrFreeDecl(st *combinator.State) (ast.Decl, *diag.Error) {
	pos := st.Cur.Pos
	var names []ident.Ident
	for st.Cur.Type == token.IDENT {
		tok := st.Advance()
		names = append(names, identFrom(tok))
		if st.Cur.Type != token.COMMA {
			break
		}
		st.Advance()
	}
	if st.Cur.Type == token.DCOLON {
		st.Advance()
		typ, err := parseType(st)
		if err != nil {
			return nil, err
		}
		return ast.TypeSignatureDecl{Pos: pos, Names: names, Type: typ}, nil
	}
	if st.Cur.Type == token.FREE {
		st.Advance()
		return ast.FreeDecl{Pos: pos, Names: names}, nil
	}
	_, e := diag.Throw("parse/expected", nil, st.Cur.Pos, "'::' or 'free'")
	return nil, e
}

// parseBindingDecl parses one function-equation or pattern-binding
// declaration, choosing the shape by the rule spec.md §4.6 gives: a
// variable head (bare identifier) always defines a function, even at
// zero arity; a constructor or other non-variable pattern head is a
// pattern binding.
func parseBindingDecl(st *combinator.State) (ast.Decl, *diag.Error) {
	if st.Cur.Type == token.IDENT {
		tok := st.Advance()
		name := identFrom(tok)
		var params []ast.Pattern
		for canStartPatternArg(st) {
			p, err := parsePatternAtom(st)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
		if len(params) == 0 && isInfixOpStart(st) {
			op := qualFromOperatorToken(st)
			right, err := parseAppPattern(st)
			if err != nil {
				return nil, err
			}
			lhs := ast.LHS(ast.InfixLHS{Pos: tok.Pos, Left: ast.VarPattern{Pos: tok.Pos, Name: name}, Op: op.Ident(), Right: right})
			lhs, err = maybeApplyExtraParams(st, lhs)
			if err != nil {
				return nil, err
			}
			rhs, err := parseRHS(st, token.EQUALS)
			if err != nil {
				return nil, err
			}
			return ast.FunctionDecl{Pos: tok.Pos, Name: op.Ident(), Equations: []ast.Equation{{Pos: tok.Pos, LHS: lhs, RHS: rhs}}}, nil
		}
		lhs := ast.LHS(ast.PrefixLHS{Pos: tok.Pos, Name: name, Params: params})
		lhs, err := maybeApplyExtraParams(st, lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := parseRHS(st, token.EQUALS)
		if err != nil {
			return nil, err
		}
		return ast.FunctionDecl{Pos: tok.Pos, Name: name, Equations: []ast.Equation{{Pos: tok.Pos, LHS: lhs, RHS: rhs}}}, nil
	}

	pos := st.Cur.Pos
	pat, err := parsePattern(st)
	if err != nil {
		return nil, err
	}
	if inf, ok := extractInfixShape(pat); ok {
		lhs := ast.LHS(ast.InfixLHS{Pos: pos, Left: inf.Left, Op: inf.Op.Ident(), Right: inf.Right})
		lhs, err = maybeApplyExtraParams(st, lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := parseRHS(st, token.EQUALS)
		if err != nil {
			return nil, err
		}
		return ast.FunctionDecl{Pos: pos, Name: inf.Op.Ident(), Equations: []ast.Equation{{Pos: pos, LHS: lhs, RHS: rhs}}}, nil
	}
	rhs, err := parseRHS(st, token.EQUALS)
	if err != nil {
		return nil, err
	}
	return ast.PatternDecl{Pos: pos, LHS: pat, RHS: rhs}, nil
}

// infixShape is the common left/op/right shape of both ast.InfixPattern
// (an infix constructor, e.g. `x:xs`) and ast.InfixFunctionPattern (an
// infix function, e.g. `x +++ y`) — a declaration's left-hand side can
// be parsed as either depending on the operator, but both name the same
// thing once recognized as a binding's LHS rather than a match pattern.
type infixShape struct {
	Left  ast.Pattern
	Op    ident.QualifiedIdent
	Right ast.Pattern
}

// extractInfixShape recognizes a pattern that is really a parenthesized
// or bare infix-operator left-hand side (`(x:xs) +++ ys`, `x +++ y`)
// rather than a genuine pattern binding, unwrapping redundant parens.
func extractInfixShape(pat ast.Pattern) (infixShape, bool) {
	switch p := pat.(type) {
	case ast.InfixPattern:
		return infixShape{p.Left, p.Op, p.Right}, true
	case ast.InfixFunctionPattern:
		return infixShape{p.Left, p.Op, p.Right}, true
	case ast.ParenPattern:
		return extractInfixShape(p.Inner)
	default:
		return infixShape{}, false
	}
}

func isInfixOpStart(st *combinator.State) bool {
	return atAny(st, token.SYMBOLIC, token.QUALSYMBOL, token.BACKTICK)
}

func maybeApplyExtraParams(st *combinator.State, lhs ast.LHS) (ast.LHS, *diag.Error) {
	var params []ast.Pattern
	for canStartPatternArg(st) {
		p, err := parsePatternAtom(st)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	if len(params) == 0 {
		return lhs, nil
	}
	return ast.AppliedLHS{Pos: posOfLHS(lhs), Base: lhs, Params: params}, nil
}

func posOfLHS(lhs ast.LHS) position.Position {
	switch v := lhs.(type) {
	case ast.PrefixLHS:
		return v.Pos
	case ast.InfixLHS:
		return v.Pos
	case ast.AppliedLHS:
		return v.Pos
	default:
		return position.None
	}
}

// parseRHS parses a right-hand side headed by sep ('=' for equations and
// pattern bindings, '->' for case alternatives), followed by an optional
// `where` block (spec.md §3.5).
func parseRHS(st *combinator.State, sep token.Type) (ast.RHS, *diag.Error) {
	var rhs ast.RHS
	switch {
	case st.Cur.Type == sep:
		st.Advance()
		e, err := parseExpr(st)
		if err != nil {
			return rhs, err
		}
		rhs.Simple = e
	case st.Cur.Type == token.PIPE:
		for st.Cur.Type == token.PIPE {
			gpos := st.Cur.Pos
			st.Advance()
			cond, err := parseExpr(st)
			if err != nil {
				return rhs, err
			}
			if _, err := expect(st, sep, sepLabel(sep)); err != nil {
				return rhs, err
			}
			body, err := parseExpr(st)
			if err != nil {
				return rhs, err
			}
			rhs.Guarded = append(rhs.Guarded, ast.Guard{Pos: gpos, Cond: cond, Body: body})
		}
	default:
		_, e := diag.Throw("parse/expected", nil, st.Cur.Pos, sepLabel(sep)+" or a guard")
		return rhs, e
	}
	if st.Cur.Type == token.WHERE {
		st.Advance()
		locals, err := parseLocalDecls(st)
		if err != nil {
			return rhs, err
		}
		rhs.Locals = locals
	}
	return rhs, nil
}

func sepLabel(sep token.Type) string {
	if sep == token.RARROW {
		return "'->'"
	}
	return "'='"
}

func parseFixityDecl(st *combinator.State) (ast.Decl, *diag.Error) {
	pos := st.Cur.Pos
	assoc := ast.AssocNone
	switch st.Cur.Type {
	case token.INFIXL:
		assoc = ast.AssocLeft
	case token.INFIXR:
		assoc = ast.AssocRight
	}
	st.Advance()
	var prec *int
	if st.Cur.Type == token.INT {
		lit, err := parseLiteral(st)
		if err != nil {
			return nil, err
		}
		v := int(lit.(ast.IntLiteral).Value)
		prec = &v
	}
	var ops []ident.Ident
	for {
		if op := qualFromOperatorToken(st); op != nil {
			ops = append(ops, op.Ident())
		} else if st.Cur.Type == token.IDENT {
			tok := st.Advance()
			ops = append(ops, identFrom(tok))
		} else {
			break
		}
		if st.Cur.Type != token.COMMA {
			break
		}
		st.Advance()
	}
	if len(ops) == 0 {
		_, e := diag.Throw("parse/expected", nil, st.Cur.Pos, "at least one operator")
		return nil, e
	}
	return ast.FixityDecl{Pos: pos, Assoc: assoc, Precedence: prec, Operators: ops}, nil
}

func parseDataDecl(st *combinator.State) (ast.Decl, *diag.Error) {
	pos := st.Cur.Pos
	st.Advance()
	nameTok, err := expect(st, token.CONID, "a type constructor name")
	if err != nil {
		return nil, err
	}
	name := identFrom(nameTok)
	var typeParams []ident.Ident
	for st.Cur.Type == token.IDENT {
		tok := st.Advance()
		typeParams = append(typeParams, identFrom(tok))
	}
	var cons []ast.ConstructorDecl
	if st.Cur.Type == token.EQUALS {
		st.Advance()
		for {
			c, err := parseConstructorDecl(st)
			if err != nil {
				return nil, err
			}
			cons = append(cons, c)
			if st.Cur.Type != token.PIPE {
				break
			}
			st.Advance()
		}
	}
	deriving, err := parseOptionalDeriving(st)
	if err != nil {
		return nil, err
	}
	return ast.DataDecl{Pos: pos, Name: name, TypeParams: typeParams, Constructors: cons, Deriving: deriving}, nil
}

// parseConstructorDecl parses one data/newtype constructor alternative.
// Existentials always comes back empty: the Open Question on retaining
// existential type variables was decided in favor of keeping the AST
// field (see DESIGN.md), but this grammar's token set has no forall/dot
// tokens to parse the quantifier clause itself.
func parseConstructorDecl(st *combinator.State) (ast.ConstructorDecl, *diag.Error) {
	pos := st.Cur.Pos
	nameTok, err := expect(st, token.CONID, "a data constructor name")
	if err != nil {
		return ast.ConstructorDecl{}, err
	}
	var argTypes []ast.TypeExpr
	for atAny(st, typeAtomTokens...) {
		at, err := parseTypeAtom(st)
		if err != nil {
			return ast.ConstructorDecl{}, err
		}
		argTypes = append(argTypes, at)
	}
	return ast.ConstructorDecl{Pos: pos, Name: identFrom(nameTok), ArgTypes: argTypes}, nil
}

func parseOptionalDeriving(st *combinator.State) ([]ident.Ident, *diag.Error) {
	if st.Cur.Type != token.DERIVING {
		return nil, nil
	}
	st.Advance()
	var deriving []ident.Ident
	if st.Cur.Type == token.LPAREN {
		st.Advance()
		for st.Cur.Type == token.CONID {
			tok := st.Advance()
			deriving = append(deriving, identFrom(tok))
			if st.Cur.Type != token.COMMA {
				break
			}
			st.Advance()
		}
		if _, err := expect(st, token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return deriving, nil
	}
	tok, err := expect(st, token.CONID, "a class name")
	if err != nil {
		return nil, err
	}
	return []ident.Ident{identFrom(tok)}, nil
}

func parseNewtypeDecl(st *combinator.State) (ast.Decl, *diag.Error) {
	pos := st.Cur.Pos
	st.Advance()
	nameTok, err := expect(st, token.CONID, "a type constructor name")
	if err != nil {
		return nil, err
	}
	name := identFrom(nameTok)
	var typeParams []ident.Ident
	for st.Cur.Type == token.IDENT {
		tok := st.Advance()
		typeParams = append(typeParams, identFrom(tok))
	}
	if _, err := expect(st, token.EQUALS, "'='"); err != nil {
		return nil, err
	}
	con, err := parseConstructorDecl(st)
	if err != nil {
		return nil, err
	}
	return ast.NewtypeDecl{Pos: pos, Name: name, TypeParams: typeParams, Constructor: con}, nil
}

func parseTypeSynonymDecl(st *combinator.State) (ast.Decl, *diag.Error) {
	pos := st.Cur.Pos
	st.Advance()
	nameTok, err := expect(st, token.CONID, "a type constructor name")
	if err != nil {
		return nil, err
	}
	name := identFrom(nameTok)
	var typeParams []ident.Ident
	for st.Cur.Type == token.IDENT {
		tok := st.Advance()
		typeParams = append(typeParams, identFrom(tok))
	}
	if _, err := expect(st, token.EQUALS, "'='"); err != nil {
		return nil, err
	}
	rhs, err := parseType(st)
	if err != nil {
		return nil, err
	}
	return ast.TypeSynonymDecl{Pos: pos, Name: name, TypeParams: typeParams, RHS: rhs}, nil
}

// parseForeignDecl parses `foreign import <convention> "<extern-name>"
// <name> :: <type>`, mirroring the FFI import syntax of Haskell-family
// languages this front end's ecosystem draws on.
func parseForeignDecl(st *combinator.State) (ast.Decl, *diag.Error) {
	pos := st.Cur.Pos
	st.Advance()
	if st.Cur.Type == token.IMPORT {
		st.Advance()
	}
	var convention string
	if st.Cur.Type == token.IDENT {
		convention = st.Cur.Literal()
		st.Advance()
	}
	var externName string
	if st.Cur.Type == token.STRING {
		lit, err := parseLiteral(st)
		if err != nil {
			return nil, err
		}
		externName = lit.(ast.StringLiteral).Value
	}
	nameTok, err := expect(st, token.IDENT, "a function name")
	if err != nil {
		return nil, err
	}
	if _, err := expect(st, token.DCOLON, "'::'"); err != nil {
		return nil, err
	}
	typ, err := parseType(st)
	if err != nil {
		return nil, err
	}
	return ast.ForeignDecl{Pos: pos, Convention: convention, Name: identFrom(nameTok), ExternName: externName, Type: typ}, nil
}

func parseExternalDecl(st *combinator.State) (ast.Decl, *diag.Error) {
	pos := st.Cur.Pos
	st.Advance()
	nameTok, err := expect(st, token.IDENT, "a function name")
	if err != nil {
		return nil, err
	}
	var externName string
	if st.Cur.Type == token.STRING {
		lit, err := parseLiteral(st)
		if err != nil {
			return nil, err
		}
		externName = lit.(ast.StringLiteral).Value
	}
	return ast.ExternalDecl{Pos: pos, Name: identFrom(nameTok), ExternName: externName}, nil
}
