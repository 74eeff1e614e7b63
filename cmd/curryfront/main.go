// Command curryfront runs the front end over a single source file and
// prints either the resulting module or the diagnostics it produced.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/curry-lang/curry-base/ast"
	"github.com/curry-lang/curry-base/combinator"
	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/langparser"
	"github.com/curry-lang/curry-base/layout"
	"github.com/curry-lang/curry-base/lexer"
	"github.com/curry-lang/curry-base/literate"
)

func main() {
	dump := flag.Bool("ast", false, "print the parsed module's declaration count instead of just OK")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: curryfront [-ast] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pre := literate.Preprocess(path, string(raw))
	for _, w := range pre.Warnings {
		fmt.Fprintln(os.Stderr, w)
	}
	if pre.IsFatal() {
		fmt.Fprintln(os.Stderr, pre.Fatal)
		os.Exit(1)
	}

	stack := layout.New()
	lex := lexer.New(path, pre.Value, stack)
	st := combinator.NewState(lex, stack)

	mod, perr := langparser.ParseModule(st)
	for _, w := range st.Errs {
		fmt.Fprintln(os.Stderr, w)
	}
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr)
		os.Exit(1)
	}

	if mod.Name.IsMain() {
		base := filepath.Base(path)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		mod.Name = ident.WithBasename(base, mod.Name.Position())
	}

	if *dump {
		printModule(mod)
		return
	}
	fmt.Println("OK")
}

func printModule(mod *ast.Module) {
	fmt.Printf("module %s\n", mod.Name.String())
	fmt.Printf("  imports: %d\n", len(mod.Imports))
	fmt.Printf("  decls:   %d\n", len(mod.Decls))
	for _, d := range mod.Decls {
		fmt.Printf("    %T\n", d)
	}
}
