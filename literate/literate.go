// Package literate implements the literate-file preprocessor (spec.md
// §4.1, C3): it strips literate markers and enforces the spacing rule
// that a program line may not be adjacent to a comment line.
//
// The teacher does not have a literate mode (Pipefish scripts are never
// literate), so this is grounded on the teacher's own line-oriented
// scanning idiom instead — source/lexer's rune-at-a-time state walking
// and source/err's Throw-into-an-Errors-slice pattern — applied to
// whole lines rather than runes.
package literate

import (
	"strings"

	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/internal/settings"
	"github.com/curry-lang/curry-base/position"
)

// lineKind classifies one line of a literate source file.
type lineKind int

const (
	kindComment lineKind = iota
	kindBlank
	kindProgram
)

// leadChar is the literate program-line marker (spec.md §4.1): '>'.
const leadChar = '>'

// IsLiterate reports whether a file path's extension marks it as a
// literate source file (spec.md §6.1).
func IsLiterate(path string) bool {
	for ext, literate := range settings.LiterateExtensions {
		if strings.HasSuffix(path, ext) {
			return literate
		}
	}
	return false
}

func classify(line string) (lineKind, string) {
	if line != "" && line[0] == leadChar {
		return kindProgram, line[1:]
	}
	if strings.TrimSpace(line) == "" {
		return kindBlank, ""
	}
	return kindComment, ""
}

// Preprocess runs the literate transform of spec.md §4.1. For a
// non-literate file it is the identity. For a literate file it strips
// markers, joins program-line payloads with newlines, and enforces that
// no Program line is immediately preceded or followed by a Comment line.
// A violation, or a file with no Program line at all, is reported as a
// single fatal diagnostic.
func Preprocess(path, source string) diag.Result[string] {
	if !IsLiterate(path) {
		return diag.Ok(source, nil)
	}

	lines := splitLines(source)
	kinds := make([]lineKind, len(lines))
	payloads := make([]string, len(lines))
	anyProgram := false
	for i, l := range lines {
		k, payload := classify(l)
		kinds[i] = k
		payloads[i] = payload
		if k == kindProgram {
			anyProgram = true
		}
	}

	if !anyProgram {
		_, e := diag.Throw("literate/empty", nil, position.First(path))
		return diag.Fail[string](e, nil)
	}

	for i, k := range kinds {
		if k != kindProgram {
			continue
		}
		pos := position.New(path, i+1, 1)
		if i > 0 && kinds[i-1] == kindComment {
			_, e := diag.Throw("literate/adjacency", nil, pos, "preceded")
			return diag.Fail[string](e, nil)
		}
		if i < len(kinds)-1 && kinds[i+1] == kindComment {
			_, e := diag.Throw("literate/adjacency", nil, pos, "followed")
			return diag.Fail[string](e, nil)
		}
	}

	var out []string
	for i, k := range kinds {
		if k == kindProgram {
			out = append(out, payloads[i])
		}
	}
	return diag.Ok(strings.Join(out, "\n"), nil)
}

// splitLines splits on any of LF, CR, or CRLF, normalizing to LF first
// per spec.md §6.1.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
