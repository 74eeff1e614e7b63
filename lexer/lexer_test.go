package lexer

import (
	"testing"

	"github.com/curry-lang/curry-base/layout"
	"github.com/curry-lang/curry-base/token"
)

type testItem struct {
	typ Type
	lit string
}

type Type = token.Type

func collect(l *Lexer) []testItem {
	var out []testItem
	for {
		tok := l.NextToken()
		out = append(out, testItem{tok.Type, tok.Literal()})
		if tok.Type == token.EOF {
			return out
		}
	}
}

func TestPunctuationAndIdents(t *testing.T) {
	stack := layout.New()
	l := New("test", "foo (bar, baz)", stack)
	got := collect(l)
	want := []testItem{
		{token.IDENT, "foo"},
		{token.LPAREN, "("},
		{token.IDENT, "bar"},
		{token.COMMA, ","},
		{token.IDENT, "baz"},
		{token.RPAREN, ")"},
		{token.EOF, ""},
	}
	assertEqual(t, got, want)
}

// A parser combinator opens a layout context only after reading the
// token whose column defines it (peek-before-push), so the token that
// triggers the new block is never compared against its own column. Both
// tests below reproduce that discipline explicitly.

func TestLayoutInsertsVirtualSemicolonAndBrace(t *testing.T) {
	stack := layout.New()
	l := New("test", "x = 1\ny = 2\n", stack)
	first := l.NextToken() // stack still empty: no layout token synthesized yet
	stack.LayoutOn(first.Pos.Column())
	got := append([]testItem{{first.Type, first.Literal()}}, collect(l)...)
	want := []testItem{
		{token.IDENT, "x"},
		{token.EQUALS, "="},
		{token.INT, "1"},
		{token.VSEMI, ""},
		{token.IDENT, "y"},
		{token.EQUALS, "="},
		{token.INT, "2"},
		{token.VRBRACE, ""},
		{token.EOF, ""},
	}
	assertEqual(t, got, want)
	if !stack.Empty() {
		t.Fatalf("expected layout stack drained by EOF, got %v", stack.Snapshot())
	}
}

func TestLayoutClosesBlockOnDedent(t *testing.T) {
	stack := layout.New()
	l := New("test", "   x\ny\n", stack)
	first := l.NextToken() // column 4, opens the block
	stack.LayoutOn(first.Pos.Column())
	got := append([]testItem{{first.Type, first.Literal()}}, collect(l)...)
	want := []testItem{
		{token.IDENT, "x"},
		{token.VRBRACE, ""},
		{token.IDENT, "y"},
		{token.EOF, ""},
	}
	assertEqual(t, got, want)
}

func TestExplicitBraceDisablesLayout(t *testing.T) {
	stack := layout.New()
	stack.LayoutOff()
	l := New("test", "x\ny\n", stack)
	got := collect(l)
	want := []testItem{
		{token.IDENT, "x"},
		{token.IDENT, "y"},
		{token.EOF, ""},
	}
	assertEqual(t, got, want)
}

func TestStringAndCharLiterals(t *testing.T) {
	stack := layout.New()
	l := New("test", `"a\nb" 'x'`, stack)
	got := collect(l)
	want := []testItem{
		{token.STRING, "a\nb"},
		{token.CHAR, "x"},
		{token.EOF, ""},
	}
	assertEqual(t, got, want)
}

func TestQualifiedIdentifier(t *testing.T) {
	stack := layout.New()
	l := New("test", "Data.List.map", stack)
	tok := l.NextToken()
	if tok.Type != token.QUALIDENT || tok.Literal() != "map" {
		t.Fatalf("got %v %q, want QUALIDENT map", tok.Type, tok.Literal())
	}
	if len(tok.Attrs.ModulePath) != 2 || tok.Attrs.ModulePath[0] != "Data" || tok.Attrs.ModulePath[1] != "List" {
		t.Fatalf("got module path %v, want [Data List]", tok.Attrs.ModulePath)
	}
}

func TestPragma(t *testing.T) {
	stack := layout.New()
	l := New("test", "{-# LANGUAGE CPP #-}", stack)
	tok := l.NextToken()
	if tok.Type != token.PRAGMASTART || tok.Literal() != "LANGUAGE CPP" {
		t.Fatalf("got %v %q", tok.Type, tok.Literal())
	}
}

func assertEqual(t *testing.T, got, want []testItem) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
