// Package settings contains in one place the constants controlling which
// bits of the inner workings of the lexer/parser are displayed for
// debugging purposes. In a release they should all be false.
package settings

const (
	SHOW_LEXER  = false
	SHOW_LAYOUT = false
	SHOW_PARSER = false

	SHOW_TESTS = false // Says whether the tests should print what is being tested.
)

// LiterateExtensions maps a source file extension to whether it is
// pre-processed by the literate preprocessor before lexing.
var LiterateExtensions = map[string]bool{
	".lcurry": true,
	".curry":  false,
}

// TabWidth is the number of columns between tab stops.
const TabWidth = 8
