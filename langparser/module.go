package langparser

import (
	"strings"

	"github.com/curry-lang/curry-base/ast"
	"github.com/curry-lang/curry-base/combinator"
	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/token"
)

// knownExtensions classifies the LANGUAGE pragma extension names this
// front end recognizes; anything else is carried through as Known: false
// rather than rejected (spec.md §4.6 treats unknown extensions as inert).
var knownExtensions = map[string]bool{
	"FlexibleInstances":     true,
	"FlexibleContexts":      true,
	"MultiParamTypeClasses": true,
	"ScopedTypeVariables":   true,
	"LambdaCase":            true,
	"TupleSections":         true,
	"RecordWildCards":       true,
	"OverloadedStrings":     true,
	"DeriveFunctor":         true,
	"ExistentialQuantification": true,
}

// ParseModule parses one complete source file into a Module: pragmas, an
// optional header, imports, and top-level declarations (spec.md §3.5,
// §4.6). This is the top-level entry point of the package.
func ParseModule(st *combinator.State) (*ast.Module, *diag.Error) {
	modPos := st.Cur.Pos
	pragmas := parsePragmas(st)

	name := ident.MainModule
	var exports []ast.ExportItem
	if st.Cur.Type == token.MODULE {
		st.Advance()
		if !atAny(st, token.CONID, token.QUALIDENT) {
			_, e := diag.Throw("parse/expected", nil, st.Cur.Pos, "a module name")
			return nil, e
		}
		nameTok := st.Advance()
		name = moduleIdentFromToken(nameTok)
		if st.Cur.Type == token.LPAREN {
			items, err := parseExportList(st)
			if err != nil {
				return nil, err
			}
			exports = items
		}
		if _, err := expect(st, token.WHERE, "'where'"); err != nil {
			return nil, err
		}
	}

	imports, decls, err := parseModuleBody(st)
	if err != nil {
		return nil, err
	}

	if st.Cur.Type != token.EOF {
		_, e := diag.Throw("parse/eof", nil, st.Cur.Pos, string(st.Cur.Type))
		return nil, e
	}

	mod := &ast.Module{Pos: modPos, Pragmas: pragmas, Name: name, Exports: exports, Imports: imports, Decls: decls}
	ast.InjectSourceRefs(mod)
	return mod, nil
}

func parsePragmas(st *combinator.State) []ast.Pragma {
	var pragmas []ast.Pragma
	for st.Cur.Type == token.PRAGMASTART {
		tok := st.Advance()
		pragmas = append(pragmas, buildPragma(tok))
	}
	return pragmas
}

func buildPragma(tok token.Token) ast.Pragma {
	fields := strings.Fields(tok.Literal())
	if len(fields) == 0 {
		return ast.Pragma{Pos: tok.Pos}
	}
	tag := fields[0]
	rest := strings.TrimSpace(strings.TrimPrefix(tok.Literal(), tag))
	if strings.EqualFold(tag, "LANGUAGE") {
		var exts []ast.LanguageExtension
		for _, part := range strings.Split(rest, ",") {
			name := strings.TrimSpace(part)
			if name == "" {
				continue
			}
			exts = append(exts, ast.LanguageExtension{Name: name, Known: knownExtensions[name]})
		}
		return ast.Pragma{Pos: tok.Pos, Language: exts}
	}
	return ast.Pragma{Pos: tok.Pos, OptionsTag: tag, OptionsArg: rest}
}

func moduleIdentFromToken(tok token.Token) ident.ModuleIdent {
	comps := append(append([]string{}, tok.Attrs.ModulePath...), tok.Literal())
	return ident.NewModuleIdent(tok.Pos, comps...)
}

var topBodyAtomTokens = append([]token.Type{token.IMPORT}, declAtomTokens...)

// parseModuleBody parses the layout block shared by imports and top-level
// declarations: imports must come first, syntactically, but both kinds of
// item are siblings under the same implicit or explicit brace the module
// header (or the file's first token, if there is no header) opens.
func parseModuleBody(st *combinator.State) ([]ast.ImportDecl, []ast.Decl, *diag.Error) {
	block := combinator.Block(rule(topBodyAtomTokens, "module body", parseModuleBodyItems))
	pair, err := combinator.Run(block, st)
	if err != nil {
		return nil, nil, err
	}
	return pair.imports, pair.decls, nil
}

type moduleBody struct {
	imports []ast.ImportDecl
	decls   []ast.Decl
}

func parseModuleBodyItems(st *combinator.State) (moduleBody, *diag.Error) {
	var imports []ast.ImportDecl
	for st.Cur.Type == token.IMPORT {
		imp, err := parseImportDecl(st)
		if err != nil {
			return moduleBody{}, err
		}
		imports = append(imports, imp)
		if !atAny(st, token.VSEMI, token.SEMICOLON) {
			return moduleBody{imports: imports}, nil
		}
		st.Advance()
	}
	if !atAny(st, declAtomTokens...) {
		return moduleBody{imports: imports}, nil
	}
	decls, err := parseDeclList(st)
	if err != nil {
		return moduleBody{}, err
	}
	return moduleBody{imports: imports, decls: decls}, nil
}

func parseImportDecl(st *combinator.State) (ast.ImportDecl, *diag.Error) {
	pos := st.Cur.Pos
	st.Advance()
	qualified := false
	if st.Cur.Type == token.QUALIFIED {
		qualified = true
		st.Advance()
	}
	if !atAny(st, token.CONID, token.QUALIDENT) {
		_, e := diag.Throw("parse/expected", nil, st.Cur.Pos, "a module name")
		return ast.ImportDecl{}, e
	}
	nameTok := st.Advance()
	mod := moduleIdentFromToken(nameTok)

	var alias *ident.ModuleIdent
	if st.Cur.Type == token.AS {
		st.Advance()
		aliasTok, err := expect(st, token.CONID, "a module alias")
		if err != nil {
			return ast.ImportDecl{}, err
		}
		a := moduleIdentFromToken(aliasTok)
		alias = &a
	}

	hiding := false
	if st.Cur.Type == token.HIDING {
		hiding = true
		st.Advance()
	}
	var items []ast.ExportItem
	if st.Cur.Type == token.LPAREN {
		list, err := parseExportList(st)
		if err != nil {
			return ast.ImportDecl{}, err
		}
		items = list
	}
	return ast.ImportDecl{Pos: pos, Module: mod, Qualified: qualified, Alias: alias, Hiding: hiding, Items: items}, nil
}

// parseExportList parses a parenthesized, comma-separated list of export
// or import items, shared by module export lists and import lists (spec.md
// §3.5).
func parseExportList(st *combinator.State) ([]ast.ExportItem, *diag.Error) {
	st.Advance()
	items := []ast.ExportItem{}
	if st.Cur.Type == token.RPAREN {
		st.Advance()
		return items, nil
	}
	for {
		item, err := parseExportItem(st)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if st.Cur.Type != token.COMMA {
			break
		}
		st.Advance()
	}
	if _, err := expect(st, token.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return items, nil
}

func parseExportItem(st *combinator.State) (ast.ExportItem, *diag.Error) {
	pos := st.Cur.Pos
	if st.Cur.Type == token.MODULE {
		st.Advance()
		tok, err := expect(st, token.CONID, "a module name")
		if err != nil {
			return ast.ExportItem{}, err
		}
		mod := moduleIdentFromToken(tok)
		return ast.ExportItem{Pos: pos, Module: &mod}, nil
	}
	switch st.Cur.Type {
	case token.IDENT:
		tok := st.Advance()
		return ast.ExportItem{Pos: pos, Name: identFrom(tok)}, nil
	case token.CONID, token.QUALIDENT:
		tok := st.Advance()
		item := ast.ExportItem{Pos: pos, Name: identFrom(tok)}
		if st.Cur.Type == token.LPAREN {
			st.Advance()
			if st.Cur.Type == token.DOTDOT {
				st.Advance()
				item.AllMembers = true
			} else {
				subs := []string{}
				for atAny(st, token.IDENT, token.CONID) {
					subs = append(subs, st.Cur.Literal())
					st.Advance()
					if st.Cur.Type != token.COMMA {
						break
					}
					st.Advance()
				}
				item.SubItems = subs
			}
			if _, err := expect(st, token.RPAREN, "')'"); err != nil {
				return ast.ExportItem{}, err
			}
		}
		return item, nil
	default:
		_, e := diag.Throw("parse/unexpected", nil, st.Cur.Pos, "export item", string(st.Cur.Type))
		return ast.ExportItem{}, e
	}
}
