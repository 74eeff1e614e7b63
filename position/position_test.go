package position

import "testing"

// spec.md §8 invariant 1: column(nl(p)) == 1, line(nl(p)) == line(p) + 1,
// column(tab(p)) is congruent to 1 mod TabWidth.
func TestPositionArithmeticInvariants(t *testing.T) {
	p := New("t.curry", 3, 5)
	n := Nl(p)
	if n.Column() != 1 {
		t.Errorf("Nl: got column %d, want 1", n.Column())
	}
	if n.Line() != p.Line()+1 {
		t.Errorf("Nl: got line %d, want %d", n.Line(), p.Line()+1)
	}
	tb := Tab(p)
	if (tb.Column()-1)%8 != 0 {
		t.Errorf("Tab: got column %d, not congruent to 1 mod 8", tb.Column())
	}
}

func TestIncrAdvancesColumnOnConcreteOnly(t *testing.T) {
	p := New("t.curry", 1, 1)
	if got := Incr(p, 4).Column(); got != 5 {
		t.Errorf("Incr: got column %d, want 5", got)
	}
	if got := Incr(None, 4); !got.Equal(None) {
		t.Errorf("Incr on None must be identity, got %v", got)
	}
	if got := Incr(FromRef(NoRef), 4); !got.Equal(FromRef(NoRef)) {
		t.Errorf("Incr on ast-only must be identity, got %v", got)
	}
}

func TestTabNlAreIdentityOnNonConcrete(t *testing.T) {
	if !Tab(None).Equal(None) {
		t.Error("Tab(None) must be identity")
	}
	if !Nl(None).Equal(None) {
		t.Error("Nl(None) must be identity")
	}
}

// SourceRef is always equal and orders equal to any other SourceRef; it is
// invisible to Position equality, per spec.md §3.1/§3.2.
func TestSourceRefInvisibleToPositionEquality(t *testing.T) {
	a := New("t.curry", 2, 3).WithRef(NewSourceRef(1))
	b := New("t.curry", 2, 3).WithRef(NewSourceRef(2, 3))
	if !a.Equal(b) {
		t.Error("positions with equal file/line/column must be Equal regardless of SourceRef")
	}
	if !a.Ref().Equal(b.Ref()) {
		t.Error("SourceRef.Equal must always report true")
	}
	if a.Ref().Compare(b.Ref()) != 0 {
		t.Error("SourceRef.Compare must always report 0")
	}
	if a.Ref().String() != "" {
		t.Error("SourceRef.String must render empty")
	}
}

func TestLessOrdersNoneBeforeAstBeforeConcrete(t *testing.T) {
	concrete := First("t.curry")
	ast := FromRef(NewSourceRef(1))
	if !None.Less(ast) {
		t.Error("None must order before an ast-only position")
	}
	if !ast.Less(concrete) {
		t.Error("an ast-only position must order before a concrete one")
	}
	if concrete.Less(concrete) {
		t.Error("Less must be irreflexive")
	}
}

func TestLessOrdersConcreteByFileLineColumn(t *testing.T) {
	a := New("a.curry", 1, 1)
	b := New("b.curry", 1, 1)
	if !a.Less(b) {
		t.Error("a.curry must order before b.curry")
	}
	l1 := New("t.curry", 1, 9)
	l2 := New("t.curry", 2, 1)
	if !l1.Less(l2) {
		t.Error("earlier line must order first regardless of column")
	}
	c1 := New("t.curry", 1, 1)
	c2 := New("t.curry", 1, 2)
	if !c1.Less(c2) {
		t.Error("earlier column on the same line must order first")
	}
}

func TestStringFormatsFileLineColumn(t *testing.T) {
	p := New("foo.curry", 3, 7)
	if got, want := p.String(), "foo.curry:3.7"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := None.String(); got != "" {
		t.Errorf("None.String() = %q, want empty", got)
	}
}
