package langparser

import (
	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/position"
	"github.com/curry-lang/curry-base/token"
)

// identFrom builds an unqualified ident.Ident from a plain IDENT/CONID
// token.
func identFrom(tok token.Token) ident.Ident {
	return ident.NewIdent(tok.Pos, tok.Literal())
}

// qualFrom builds an ident.QualifiedIdent from a CONID/IDENT token
// (unqualified) or a QUALIDENT/QUALSYMBOL token (qualified, carrying its
// module path in Attrs.ModulePath).
func qualFrom(tok token.Token) ident.QualifiedIdent {
	id := ident.NewIdent(tok.Pos, tok.Literal())
	if len(tok.Attrs.ModulePath) == 0 {
		return ident.NewQualifiedIdent(id)
	}
	mod := ident.NewModuleIdent(tok.Pos, tok.Attrs.ModulePath...)
	return ident.NewQualifiedIdentIn(mod, id)
}

// identTokenTypes classifies a token as a value-identifier-shaped token
// (variable or qualified variable reference).
var identTokenTypes = []token.Type{token.IDENT, token.QUALIDENT}

// conTokenTypes classifies a token as a constructor-shaped token. The
// lexer does not distinguish qualified constructors from qualified
// plain identifiers at the token level (both are QUALIDENT), so the
// grammar disambiguates by context: any production expecting a
// constructor accepts QUALIDENT too, trusting the literal's case
// (spec.md is silent on this; see DESIGN.md).
var conTokenTypes = []token.Type{token.CONID, token.QUALIDENT}

func isConLiteral(lit string) bool {
	return len(lit) > 0 && lit[0] >= 'A' && lit[0] <= 'Z'
}

// qualFromPlainName builds an unqualified QualifiedIdent for a
// synthetic name with no source token of its own, such as the "[]" and
// "()" constructors produced when the parser sees an empty list or unit
// type/pattern/expression.
func qualFromPlainName(pos position.Position, name string) ident.QualifiedIdent {
	return ident.NewQualifiedIdent(ident.NewIdent(pos, name))
}
