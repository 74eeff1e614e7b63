package combinator

import (
	"github.com/curry-lang/curry-base/diag"
	"github.com/curry-lang/curry-base/token"
)

// LayoutOn pushes the current lookahead token's column onto the shared
// layout stack, opening an implicit layout-sensitive block (spec.md
// §4.5). It consumes no input. Because st.Cur was already fetched by an
// earlier Advance (or by NewState) before this action runs, the lexer
// has already applied the layout rule to it against the stack as it
// stood *before* this push, satisfying the peek-before-push discipline
// documented on lexer.Lexer.
func LayoutOn() Parser[struct{}] {
	empty := Action[struct{}](func(st *State) (struct{}, *diag.Error) {
		st.Layout.LayoutOn(st.Cur.Pos.Column())
		return struct{}{}, nil
	})
	return Parser[struct{}]{Empty: &empty}
}

// LayoutOff pushes the explicit-brace sentinel, disabling the layout
// rule until the matching LayoutEnd (spec.md §4.5).
func LayoutOff() Parser[struct{}] {
	empty := Action[struct{}](func(st *State) (struct{}, *diag.Error) {
		st.Layout.LayoutOff()
		return struct{}{}, nil
	})
	return Parser[struct{}]{Empty: &empty}
}

// LayoutEnd pops the top layout context, closing whichever kind of block
// is open (spec.md §4.5).
func LayoutEnd() Parser[struct{}] {
	empty := Action[struct{}](func(st *State) (struct{}, *diag.Error) {
		st.Layout.LayoutEnd()
		return struct{}{}, nil
	})
	return Parser[struct{}]{Empty: &empty}
}

// Block wraps p as a layout-sensitive block (spec.md §4.5's layout(p)
// combinator): if the next token is an explicit '{', the block is
// delimited by explicit braces with the layout rule suspended inside;
// otherwise an implicit block is opened at the column of the next token,
// closed either by a synthesized virtual close-brace or by draining at
// end of input.
//
// This needs to branch on the runtime lookahead token rather than being
// assembled purely from Alt/Seq/Restrict, since the two shapes share no
// static first-set relationship known at construction time; it is
// documented here as the one primitive combinator built directly against
// State rather than composed from the others.
func Block[A any](p Parser[A]) Parser[A] {
	action := func(st *State) (A, *diag.Error) {
		var zero A
		if st.Cur.Type == token.LBRACE {
			st.Advance()
			st.Layout.LayoutOff()
			v, err := Run(p, st)
			if err != nil {
				return zero, err
			}
			if st.Cur.Type != token.RBRACE {
				_, e := diag.Throw("parse/expected", nil, st.Cur.Pos, "'}'")
				return zero, e
			}
			st.Advance()
			st.Layout.LayoutEnd()
			return v, nil
		}

		st.Layout.LayoutOn(st.Cur.Pos.Column())
		v, err := Run(p, st)
		if err != nil {
			return zero, err
		}
		if st.Cur.Type == token.VRBRACE {
			st.Advance()
		} else {
			st.Layout.LayoutEnd()
		}
		return v, nil
	}

	first := make(map[token.Type]Action[A], len(p.First)+1)
	for k := range p.First {
		first[k] = action
	}
	first[token.LBRACE] = action
	var empty *Action[A]
	if p.Empty != nil {
		a := Action[A](action)
		empty = &a
	}
	return Parser[A]{First: first, Empty: empty}
}
