// Package lexer implements the streaming tokenizer of spec.md §4.3 (C4),
// including the layout rule of §4.3/§4.8 that consults a shared
// layout.Stack to insert virtual braces and semicolons.
//
// Grounded on the teacher's source/lexer/lexer.go: a lexer struct
// holding a rune supplier and running position, a big switch over
// leading characters producing token.Token values, and errors
// accumulated via a Throw helper into an Errors slice rather than
// panicking. The teacher's own layout scheme (interpretWhitespace,
// whitespaceStack) is off-side-rule-shaped but keyed on raw indentation
// strings; here the column-stack comparison of spec.md §4.3 replaces it,
// sharing state with the parser combinators through layout.Stack instead
// of owning the stack itself.
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/internal/settings"
	"github.com/curry-lang/curry-base/layout"
	"github.com/curry-lang/curry-base/position"
	"github.com/curry-lang/curry-base/token"
)

// Lexer streams tokens from source text, consulting and mutating a
// shared layout stack to apply the off-side rule (spec.md §3.4).
//
// Callers that open a layout context (the combinator package's layoutOn)
// must do so only after already reading the token whose column defines
// the new block, then push before continuing to read the rest of the
// stream. Pushing first would compare that very token's column against
// the context it itself defines and spuriously synthesize a semicolon.
type Lexer struct {
	source string
	runes  *runeSupplier
	Layout *layout.Stack

	pending  []token.Token
	lastLine int // line of the previous token delivered to the parser; 0 before the first
	Ers      diag.Errors
}

// New builds a lexer over already-preprocessed (literate-stripped)
// source text, sharing the given layout stack with the parser
// combinators that will drive this lexer (spec.md §4.5).
func New(source, input string, stack *layout.Stack) *Lexer {
	return &Lexer{
		source: source,
		runes:  newRuneSupplier(normalizeNewlines(input)),
		Layout: stack,
	}
}

func normalizeNewlines(s string) []rune {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return []rune(s)
}

// NextToken returns the next token in the stream, synthesizing virtual
// layout tokens ahead of it as required by the layout rule.
func (l *Lexer) NextToken() token.Token {
	if len(l.pending) > 0 {
		t := l.pending[0]
		l.pending = l.pending[1:]
		return t
	}
	tok := l.scanRaw()
	l.applyLayout(tok)
	if len(l.pending) == 0 {
		// applyLayout always enqueues at least the real (or EOF) token.
		return tok
	}
	t := l.pending[0]
	l.pending = l.pending[1:]
	return t
}

// applyLayout implements spec.md §4.3's layout rule and §4.8's drain
// state, queuing virtual tokens ahead of tok as needed.
func (l *Lexer) applyLayout(tok token.Token) {
	if tok.Type == token.EOF {
		for {
			top, ok := l.Layout.Pop()
			if !ok {
				break
			}
			if top >= 0 {
				l.pending = append(l.pending, l.virtual(token.VRBRACE, tok.Pos))
			}
		}
		l.pending = append(l.pending, tok)
		return
	}

	isNewLine := tok.Pos.Line() > l.lastLine
	l.lastLine = tok.Pos.Line()

	if isNewLine {
		for {
			top, ok := l.Layout.Top()
			if !ok {
				break
			}
			if top < 0 { // explicit block: layout rule disabled
				break
			}
			c := tok.Pos.Column()
			if c == top {
				l.pending = append(l.pending, l.virtual(token.VSEMI, tok.Pos))
				break
			}
			if c < top {
				l.Layout.Pop()
				l.pending = append(l.pending, l.virtual(token.VRBRACE, tok.Pos))
				continue
			}
			break
		}
	}
	l.pending = append(l.pending, tok)
}

// Snapshot captures the lexer's internal scanning position, pending
// virtual-token queue, and layout line tracker, so the combinator
// package's non-deterministic composition (altLong) can roll back a
// losing trial branch (spec.md §4.4).
type Snapshot struct {
	runes    runeSupplier
	pending  []token.Token
	lastLine int
}

func (l *Lexer) Snapshot() Snapshot {
	return Snapshot{
		runes:    *l.runes,
		pending:  append([]token.Token(nil), l.pending...),
		lastLine: l.lastLine,
	}
}

func (l *Lexer) Restore(s Snapshot) {
	r := s.runes
	l.runes = &r
	l.pending = append([]token.Token(nil), s.pending...)
	l.lastLine = s.lastLine
}

func (l *Lexer) virtual(t token.Type, pos position.Position) token.Token {
	return token.New(t, pos, "")
}

func (l *Lexer) here() position.Position {
	line, col := l.runes.position()
	return position.New(l.source, line, col)
}

func (l *Lexer) throw(errorID string, args ...any) token.Token {
	pos := l.here()
	var e *diag.Error
	l.Ers, e = diag.Throw(errorID, l.Ers, pos, args...)
	_ = e
	if settings.SHOW_LEXER {
		println(errorID)
	}
	return token.New(token.ILLEGAL, pos, errorID)
}

// scanRaw scans exactly one non-virtual token (or EOF), skipping
// whitespace and comments first.
func (l *Lexer) scanRaw() token.Token {
	l.skipWhitespaceAndComments()
	pos := l.here()
	r := l.runes.current()

	if r == 0 {
		return token.New(token.EOF, pos, "")
	}

	switch r {
	case '{':
		if l.runes.peek() == '-' && l.runes.peekAt(2) == '#' {
			return l.scanPragma(pos)
		}
		l.runes.next()
		return token.New(token.LBRACE, pos, "{")
	case '}':
		l.runes.next()
		return token.New(token.RBRACE, pos, "}")
	case '(':
		l.runes.next()
		return token.New(token.LPAREN, pos, "(")
	case ')':
		l.runes.next()
		return token.New(token.RPAREN, pos, ")")
	case '[':
		l.runes.next()
		return token.New(token.LBRACK, pos, "[")
	case ']':
		l.runes.next()
		return token.New(token.RBRACK, pos, "]")
	case ',':
		l.runes.next()
		return token.New(token.COMMA, pos, ",")
	case ';':
		l.runes.next()
		return token.New(token.SEMICOLON, pos, ";")
	case '`':
		l.runes.next()
		return token.New(token.BACKTICK, pos, "`")
	case '"':
		return l.scanString(pos)
	case '\'':
		return l.scanChar(pos)
	}

	if isDigit(r) {
		return l.scanNumber(pos)
	}

	if unicode.IsUpper(r) {
		return l.scanConIdentOrQualified(pos)
	}

	if isIdentStart(r) {
		return l.scanIdent(pos)
	}

	if isSymbolChar(r) {
		return l.scanSymbolic(pos)
	}

	l.runes.next()
	return l.throw("lex/illegal", string(r))
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		r := l.runes.current()
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			l.runes.next()
		case r == '-' && l.runes.peek() == '-' && !isSymbolChar(l.runes.peekAt(2)):
			for l.runes.current() != '\n' && l.runes.current() != 0 {
				l.runes.next()
			}
		case r == '{' && l.runes.peek() == '-' && l.runes.peekAt(2) != '#':
			l.skipBlockComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipBlockComment() {
	depth := 0
	for {
		r := l.runes.current()
		if r == 0 {
			l.throw("lex/unterminated/comment")
			return
		}
		if r == '{' && l.runes.peek() == '-' {
			depth++
			l.runes.next()
			l.runes.next()
			continue
		}
		if r == '-' && l.runes.peek() == '}' {
			depth--
			l.runes.next()
			l.runes.next()
			if depth == 0 {
				return
			}
			continue
		}
		l.runes.next()
	}
}

// scanPragma reads a {-# ... #-} pragma marker as a single token whose
// literal is the trimmed text between the markers (spec.md §4.6).
func (l *Lexer) scanPragma(pos position.Position) token.Token {
	l.runes.next() // {
	l.runes.next() // -
	l.runes.next() // #
	var sb strings.Builder
	for {
		r := l.runes.current()
		if r == 0 {
			return l.throw("lex/unterminated/comment")
		}
		if r == '#' && l.runes.peek() == '-' && l.runes.peekAt(2) == '}' {
			l.runes.next()
			l.runes.next()
			l.runes.next()
			break
		}
		sb.WriteRune(r)
		l.runes.next()
	}
	return token.New(token.PRAGMASTART, pos, strings.TrimSpace(sb.String()))
}

func (l *Lexer) scanString(pos position.Position) token.Token {
	l.runes.next() // opening quote
	var sb strings.Builder
	for {
		r := l.runes.current()
		if r == 0 || r == '\n' {
			return l.throw("lex/unterminated/string")
		}
		if r == '"' {
			l.runes.next()
			break
		}
		if r == '\\' {
			l.runes.next()
			esc, ok := decodeEscape(l.runes)
			if !ok {
				return l.throw("lex/escape", string(l.runes.current()))
			}
			sb.WriteRune(esc)
			continue
		}
		sb.WriteRune(r)
		l.runes.next()
	}
	t := token.New(token.STRING, pos, sb.String())
	return t
}

func (l *Lexer) scanChar(pos position.Position) token.Token {
	l.runes.next() // opening quote
	r := l.runes.current()
	if r == 0 || r == '\n' {
		return l.throw("lex/unterminated/char")
	}
	var ch rune
	if r == '\\' {
		l.runes.next()
		esc, ok := decodeEscape(l.runes)
		if !ok {
			return l.throw("lex/escape", string(l.runes.current()))
		}
		ch = esc
	} else {
		ch = r
		l.runes.next()
	}
	if l.runes.current() != '\'' {
		return l.throw("lex/badchar")
	}
	l.runes.next()
	return token.New(token.CHAR, pos, string(ch))
}

func decodeEscape(rs *runeSupplier) (rune, bool) {
	r := rs.current()
	var out rune
	switch r {
	case 'n':
		out = '\n'
	case 't':
		out = '\t'
	case 'r':
		out = '\r'
	case '\\':
		out = '\\'
	case '\'':
		out = '\''
	case '"':
		out = '"'
	case '0':
		out = 0
	default:
		return 0, false
	}
	rs.next()
	return out, true
}

func (l *Lexer) scanNumber(pos position.Position) token.Token {
	var sb strings.Builder
	for isDigit(l.runes.current()) {
		sb.WriteRune(l.runes.current())
		l.runes.next()
	}
	isFloat := false
	if l.runes.current() == '.' && isDigit(l.runes.peek()) {
		isFloat = true
		sb.WriteRune('.')
		l.runes.next()
		for isDigit(l.runes.current()) {
			sb.WriteRune(l.runes.current())
			l.runes.next()
		}
	}
	if l.runes.current() == 'e' || l.runes.current() == 'E' {
		isFloat = true
		sb.WriteRune(l.runes.current())
		l.runes.next()
		if l.runes.current() == '+' || l.runes.current() == '-' {
			sb.WriteRune(l.runes.current())
			l.runes.next()
		}
		for isDigit(l.runes.current()) {
			sb.WriteRune(l.runes.current())
			l.runes.next()
		}
	}
	lit := sb.String()
	if isFloat {
		if _, err := strconv.ParseFloat(lit, 64); err != nil {
			return l.throw("lex/number", lit)
		}
		return token.New(token.FLOAT, pos, lit)
	}
	if _, err := strconv.ParseInt(lit, 10, 64); err != nil {
		return l.throw("lex/number", lit)
	}
	return token.New(token.INT, pos, lit)
}

// scanConIdentOrQualified scans an upper-case-led identifier, which may
// turn out to be a bare constructor name or the start of a qualified
// name Module.Sub.name / Module.Sub.+++ (spec.md §3.2, §3.3).
func (l *Lexer) scanConIdentOrQualified(pos position.Position) token.Token {
	first := l.scanIdentString()
	components := []string{first}
	for l.runes.current() == '.' && (unicode.IsUpper(l.runes.peek()) || isIdentStart(l.runes.peek()) || isSymbolChar(l.runes.peek())) {
		l.runes.next() // consume '.'
		if unicode.IsUpper(l.runes.current()) {
			components = append(components, l.scanIdentString())
			continue
		}
		if isIdentStart(l.runes.current()) {
			name := l.scanIdentString()
			return l.qualified(pos, components, name, false)
		}
		if isSymbolChar(l.runes.current()) {
			sym := l.scanSymbolicString()
			return l.qualified(pos, components, sym, true)
		}
	}
	if len(components) == 1 {
		return token.New(token.CONID, pos, components[0])
	}
	// Trailing run of module components with nothing following: treat the
	// last component as the referenced constructor.
	last := components[len(components)-1]
	return l.qualified(pos, components[:len(components)-1], last, false)
}

func (l *Lexer) qualified(pos position.Position, modulePath []string, name string, symbolic bool) token.Token {
	t := token.QUALIDENT
	if symbolic {
		t = token.QUALSYMBOL
	}
	tok := token.New(t, pos, name)
	tok.Attrs.ModulePath = modulePath
	return tok
}

func (l *Lexer) scanIdent(pos position.Position) token.Token {
	lit := l.scanIdentString()
	tt := token.LookupIdent(lit)
	return token.New(tt, pos, lit)
}

func (l *Lexer) scanIdentString() string {
	var sb strings.Builder
	sb.WriteRune(l.runes.current())
	l.runes.next()
	for isIdentCont(l.runes.current()) {
		sb.WriteRune(l.runes.current())
		l.runes.next()
	}
	return sb.String()
}

func (l *Lexer) scanSymbolic(pos position.Position) token.Token {
	lit := l.scanSymbolicString()
	if tt, ok := symbolicKeywords[lit]; ok {
		return token.New(tt, pos, lit)
	}
	return token.New(token.SYMBOLIC, pos, lit)
}

func (l *Lexer) scanSymbolicString() string {
	var sb strings.Builder
	for isSymbolChar(l.runes.current()) {
		sb.WriteRune(l.runes.current())
		l.runes.next()
	}
	return sb.String()
}

var symbolicKeywords = map[string]token.Type{
	"::": token.DCOLON,
	"=":  token.EQUALS,
	"|":  token.PIPE,
	"<-": token.LARROW,
	"->": token.RARROW,
	"@":  token.AT,
	"~":  token.TILDE,
	"..": token.DOTDOT,
	"\\": token.BACKSLASH,
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return unicode.IsLower(r) || r == '_'
}

func isIdentCont(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\''
}

var symbolChars = "!#$%&*+./<=>?@\\^|-~:"

func isSymbolChar(r rune) bool {
	return strings.ContainsRune(symbolChars, r)
}
