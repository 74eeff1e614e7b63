package combinator

import (
	"testing"

	"github.com/curry-lang/curry-base/layout"
	"github.com/curry-lang/curry-base/lexer"
	"github.com/curry-lang/curry-base/token"
)

func newState(src string) *State {
	stack := layout.New()
	lex := lexer.New("test", src, stack)
	return NewState(lex, stack)
}

func TestSeqAndAlt(t *testing.T) {
	num := Map(Token(token.INT), func(tok token.Token) string { return tok.Literal() })
	ident := Map(Token(token.IDENT), func(tok token.Token) string { return tok.Literal() })
	either := Alt(num, ident)

	st := newState("42 foo")
	v1, err := Run(either, st)
	if err != nil || v1 != "42" {
		t.Fatalf("got %q, %v", v1, err)
	}
	v2, err := Run(either, st)
	if err != nil || v2 != "foo" {
		t.Fatalf("got %q, %v", v2, err)
	}
}

func TestAltPanicsOnOverlap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overlapping first sets")
		}
	}()
	p := Token(token.IDENT)
	q := Token(token.IDENT)
	Alt(p, q)
}

func TestSeqBuildsPair(t *testing.T) {
	type pair struct{ a, b string }
	p := Seq(Token(token.IDENT), Token(token.EQUALS), func(a, b token.Token) pair {
		return pair{a.Literal(), b.Literal()}
	})
	st := newState("x =")
	v, err := Run(p, st)
	if err != nil || v.a != "x" || v.b != "=" {
		t.Fatalf("got %+v, %v", v, err)
	}
}

func TestManyCollectsZeroOrMore(t *testing.T) {
	idents := Many(Map(Token(token.IDENT), func(tok token.Token) string { return tok.Literal() }))
	st := newState("a b c 1")
	v, err := Run(idents, st)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c"}
	if len(v) != len(want) {
		t.Fatalf("got %v, want %v", v, want)
	}
	for i := range want {
		if v[i] != want[i] {
			t.Fatalf("got %v, want %v", v, want)
		}
	}
	if st.Cur.Type != token.INT {
		t.Fatalf("expected leftover INT token, got %v", st.Cur.Type)
	}
}

func TestManyPanicsOnEmptyElement(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Many(Opt(Token(token.IDENT)))
}

func TestSepBy1(t *testing.T) {
	list := SepBy1(Map(Token(token.IDENT), func(tok token.Token) string { return tok.Literal() }), Token(token.COMMA))
	st := newState("a, b, c")
	v, err := Run(list, st)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if v[i] != want[i] {
			t.Fatalf("got %v, want %v", v, want)
		}
	}
}

func TestBlockExplicitBraces(t *testing.T) {
	body := Map(Token(token.IDENT), func(tok token.Token) string { return tok.Literal() })
	p := Block(body)
	st := newState("{ x }")
	v, err := Run(p, st)
	if err != nil || v != "x" {
		t.Fatalf("got %q, %v", v, err)
	}
	if st.Cur.Type != token.EOF {
		t.Fatalf("expected EOF after closing brace, got %v", st.Cur.Type)
	}
}

func TestBlockImplicitLayout(t *testing.T) {
	body := Many1(Map(Token(token.IDENT), func(tok token.Token) string { return tok.Literal() }))
	p := Block(body)
	st := newState("x\ny\n")
	v, err := Run(p, st)
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != 1 || v[0] != "x" {
		t.Fatalf("got %v, want [x] (same-indent y triggers a virtual semicolon Many1's bare IDENT parser can't consume past)", v)
	}
}

func TestAltLongPicksLongestMatch(t *testing.T) {
	short := Map(Token(token.IDENT), func(tok token.Token) string { return tok.Literal() })
	long := Seq(Token(token.IDENT), Token(token.EQUALS), func(a, b token.Token) string {
		return a.Literal() + b.Literal()
	})
	p := AltLong(short, long)
	st := newState("x =")
	v, err := Run(p, st)
	if err != nil || v != "x=" {
		t.Fatalf("got %q, %v", v, err)
	}
}

func TestAltLongConsumptionBeatsSuccessOnFailingLongerBranch(t *testing.T) {
	// short trivially succeeds after consuming one token; long consumes
	// two tokens (IDENT, EQUALS) before failing on a missing INT. Per
	// spec.md's priority order, consumption is compared before
	// success/failure, so long's failure must win over short's success.
	short := Map(Token(token.IDENT), func(tok token.Token) string { return tok.Literal() })
	idEq := Seq(Token(token.IDENT), Token(token.EQUALS), func(a, b token.Token) token.Token { return b })
	long := Seq(idEq, Token(token.INT), func(a, b token.Token) string { return a.Literal() + b.Literal() })
	p := AltLong(short, long)
	st := newState("x = y")
	_, err := Run(p, st)
	if err == nil {
		t.Fatal("expected the longer-consuming failing branch to win, got success")
	}
}

func TestAltLongAmbiguityError(t *testing.T) {
	a := Map(Token(token.IDENT), func(tok token.Token) string { return "a:" + tok.Literal() })
	b := Map(Token(token.IDENT), func(tok token.Token) string { return "b:" + tok.Literal() })
	p := AltLong(a, b)
	st := newState("x")
	_, err := Run(p, st)
	if err == nil {
		t.Fatal("expected ambiguity error")
	}
}
