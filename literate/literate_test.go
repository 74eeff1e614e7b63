package literate

import "testing"

func TestNonLiterateFileIsIdentity(t *testing.T) {
	src := "f = 1\ng = 2\n"
	r := Preprocess("t.curry", src)
	if r.IsFatal() {
		t.Fatalf("unexpected fatal: %v", r.Fatal)
	}
	if r.Value != src {
		t.Fatalf("got %q, want %q unchanged", r.Value, src)
	}
}

func TestLiterateStripsMarkersAndBlankLines(t *testing.T) {
	src := "> f = 1\n\n> g = 2\n"
	r := Preprocess("t.lcurry", src)
	if r.IsFatal() {
		t.Fatalf("unexpected fatal: %v", r.Fatal)
	}
	want := " f = 1\n g = 2"
	if r.Value != want {
		t.Fatalf("got %q, want %q", r.Value, want)
	}
}

func TestLiterateEmptyIsFatal(t *testing.T) {
	r := Preprocess("t.lcurry", "a comment\nanother comment\n")
	if !r.IsFatal() {
		t.Fatal("expected fatal diagnostic for a literate file with no Program line")
	}
	if r.Fatal.Message != "No code in literate script" {
		t.Fatalf("got message %q", r.Fatal.Message)
	}
	if r.Fatal.Pos.Line() != 1 || r.Fatal.Pos.Column() != 1 {
		t.Fatalf("got pos %v, want (1,1)", r.Fatal.Pos)
	}
}

// S3: a Program line adjacent to a Comment line is fatal, reported at the
// Program line's own position, in whichever direction the adjacency runs.
func TestLiterateAdjacencyIsFatal(t *testing.T) {
	src := "> f = 1\na comment with no blank line above\n> g = 2\n"
	r := Preprocess("t.lcurry", src)
	if !r.IsFatal() {
		t.Fatal("expected fatal diagnostic for adjacent program/comment lines")
	}
	want := "Program line is followed by comment line"
	if r.Fatal.Message != want {
		t.Fatalf("got message %q, want %q", r.Fatal.Message, want)
	}
	if r.Fatal.Pos.Line() != 1 {
		t.Fatalf("got line %d, want 1", r.Fatal.Pos.Line())
	}
}

func TestLiterateAdjacencyPrecededIsFatal(t *testing.T) {
	src := "a comment\n> g = 2\n"
	r := Preprocess("t.lcurry", src)
	if !r.IsFatal() {
		t.Fatal("expected fatal diagnostic")
	}
	want := "Program line is preceded by comment line"
	if r.Fatal.Message != want {
		t.Fatalf("got message %q, want %q", r.Fatal.Message, want)
	}
	if r.Fatal.Pos.Line() != 2 {
		t.Fatalf("got line %d, want 2", r.Fatal.Pos.Line())
	}
}

func TestIsLiterateByExtension(t *testing.T) {
	cases := map[string]bool{
		"foo.curry":  false,
		"foo.lcurry": true,
		"foo.icurry": false,
	}
	for path, want := range cases {
		if got := IsLiterate(path); got != want {
			t.Errorf("IsLiterate(%q) = %v, want %v", path, got, want)
		}
	}
}
