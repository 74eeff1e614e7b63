package irtraverse

import (
	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/irtypes"
)

// RenameProgram sets p's module name to newName, and rewrites every
// qualified name whose module component equals p's *old* name to
// newName, leaving every other qualifier untouched (spec.md §4.7).
func RenameProgram(newName ident.ModuleIdent, p irtypes.Program) irtypes.Program {
	oldName := p.ModuleName
	rewrite := func(q ident.QualifiedIdent) ident.QualifiedIdent {
		mod, ok := q.Module()
		if !ok || !mod.Equal(oldName) {
			return q
		}
		return q.WithModule(newName)
	}
	p = UpdQNames(rewrite, p)
	p.ModuleName = newName
	for i, imp := range p.Imports {
		if imp.Equal(oldName) {
			p.Imports[i] = newName
		}
	}
	return p
}
