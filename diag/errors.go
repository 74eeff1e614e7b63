package diag

import (
	"fmt"

	"github.com/curry-lang/curry-base/internal/text"
	"github.com/curry-lang/curry-base/position"
)

// ErrorCreatorMap maps error identifiers to the function that renders
// their message, following the teacher's alphabetically-ordered
// err.ErrorCreatorMap. Major categories here are literate, lex, parse
// (including the parse/ambiguous ambiguity report), and selector,
// mirroring spec.md §7.
var ErrorCreatorMap = map[string]ErrorCreator{
	"literate/empty": {
		Kind: LiterateError,
		Message: func(pos position.Position, args ...any) string {
			return "No code in literate script"
		},
	},
	"literate/adjacency": {
		Kind: LiterateError,
		Message: func(pos position.Position, args ...any) string {
			return fmt.Sprintf("Program line is %s by comment line", args[0])
		},
	},

	"lex/illegal": {
		Kind: LexError,
		Message: func(pos position.Position, args ...any) string {
			return fmt.Sprintf("illegal character %s", text.Emph(fmt.Sprint(args[0])))
		},
	},
	"lex/unterminated/string": {
		Kind: LexError,
		Message: func(pos position.Position, args ...any) string {
			return "unterminated string literal"
		},
	},
	"lex/unterminated/char": {
		Kind: LexError,
		Message: func(pos position.Position, args ...any) string {
			return "unterminated character literal"
		},
	},
	"lex/unterminated/comment": {
		Kind: LexError,
		Message: func(pos position.Position, args ...any) string {
			return "unterminated block comment"
		},
	},
	"lex/badchar": {
		Kind: LexError,
		Message: func(pos position.Position, args ...any) string {
			return "character literal must contain exactly one character"
		},
	},
	"lex/escape": {
		Kind: LexError,
		Message: func(pos position.Position, args ...any) string {
			return fmt.Sprintf("unknown escape sequence %s", text.Emph(fmt.Sprint(args[0])))
		},
	},
	"lex/number": {
		Kind: LexError,
		Message: func(pos position.Position, args ...any) string {
			return fmt.Sprintf("malformed numeric literal %s", text.Emph(fmt.Sprint(args[0])))
		},
	},

	"parse/unexpected": {
		Kind: ParseError,
		Message: func(pos position.Position, args ...any) string {
			if len(args) >= 1 {
				if label, ok := args[0].(string); ok && label != "" {
					return label
				}
			}
			if len(args) >= 2 {
				return fmt.Sprintf("unexpected %s", text.Emph(fmt.Sprint(args[1])))
			}
			return "unexpected token"
		},
	},
	"parse/expected": {
		Kind: ParseError,
		Message: func(pos position.Position, args ...any) string {
			return fmt.Sprintf("%s expected", args[0])
		},
	},
	"parse/eof": {
		Kind: ParseError,
		Message: func(pos position.Position, args ...any) string {
			return "unexpected end of file"
		},
	},

	"parse/ambiguous": {
		Kind: AmbiguityError,
		Message: func(pos position.Position, args ...any) string {
			return "ambiguous parse: two alternatives both succeeded consuming the same input"
		},
	},

	"goodies/selector": {
		Kind: SelectorMismatch,
		Message: func(pos position.Position, args ...any) string {
			return fmt.Sprintf("Goodies.%s: %s", args[0], args[1])
		},
	},
}
