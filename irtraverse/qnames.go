package irtraverse

import (
	"github.com/curry-lang/curry-base/ident"
	"github.com/curry-lang/curry-base/irtypes"
)

// UpdQNames rewrites every ident.QualifiedIdent occurrence in a program
// through f: type declarations and their constructors, type expressions,
// function signatures, operator declarations, combined-expression heads,
// and case-branch constructor patterns (spec.md §4.7). It never touches
// a variable index, so free-variable computation is unaffected.
func UpdQNames(f func(ident.QualifiedIdent) ident.QualifiedIdent, p irtypes.Program) irtypes.Program {
	typeDecls := make([]irtypes.TypeDecl, len(p.TypeDecls))
	for i, td := range p.TypeDecls {
		typeDecls[i] = updQNamesTypeDecl(f, td)
	}
	p.TypeDecls = typeDecls

	opDecls := make([]irtypes.OpDecl, len(p.OpDecls))
	for i, od := range p.OpDecls {
		od.QName = f(od.QName)
		opDecls[i] = od
	}
	p.OpDecls = opDecls

	funcDecls := make([]irtypes.FuncDecl, len(p.FuncDecls))
	for i, fd := range p.FuncDecls {
		fd.QName = f(fd.QName)
		fd.Type = updQNamesType(f, fd.Type)
		if r, ok := fd.Rule.(irtypes.DefinedRule); ok {
			r.Body = UpdExprs(func(e irtypes.Expr) irtypes.Expr { return updQNamesExprHead(f, e) }, r.Body)
			fd.Rule = r
		}
		funcDecls[i] = fd
	}
	p.FuncDecls = funcDecls
	return p
}

func updQNamesTypeDecl(f func(ident.QualifiedIdent) ident.QualifiedIdent, td irtypes.TypeDecl) irtypes.TypeDecl {
	switch x := td.(type) {
	case irtypes.AlgebraicTypeDecl:
		x.QName = f(x.QName)
		cons := make([]irtypes.ConsDecl, len(x.Constructors))
		for i, c := range x.Constructors {
			c.QName = f(c.QName)
			args := make([]irtypes.TypeExpr, len(c.ArgTypes))
			for j, a := range c.ArgTypes {
				args[j] = updQNamesType(f, a)
			}
			c.ArgTypes = args
			cons[i] = c
		}
		x.Constructors = cons
		return x
	case irtypes.SynonymTypeDecl:
		x.QName = f(x.QName)
		x.Type = updQNamesType(f, x.Type)
		return x
	default:
		return td
	}
}

func updQNamesType(f func(ident.QualifiedIdent) ident.QualifiedIdent, t irtypes.TypeExpr) irtypes.TypeExpr {
	switch x := t.(type) {
	case irtypes.ConsType:
		x.QName = f(x.QName)
		args := make([]irtypes.TypeExpr, len(x.Args))
		for i, a := range x.Args {
			args[i] = updQNamesType(f, a)
		}
		x.Args = args
		return x
	case irtypes.FuncType:
		x.Domain = updQNamesType(f, x.Domain)
		x.Range = updQNamesType(f, x.Range)
		return x
	default: // VarType
		return t
	}
}

// updQNamesExprHead rewrites the qname of a combined-expression's head
// and of every constructor pattern in a case's branches. It is applied
// bottom-up by UpdExprs, so it only ever needs to look at e's own head,
// not recurse into sub-expressions itself.
func updQNamesExprHead(f func(ident.QualifiedIdent) ident.QualifiedIdent, e irtypes.Expr) irtypes.Expr {
	switch x := e.(type) {
	case irtypes.CombinedExpr:
		x.QName = f(x.QName)
		return x
	case irtypes.CaseExpr:
		branches := make([]irtypes.Branch, len(x.Branches))
		for i, b := range x.Branches {
			if cp, ok := b.Pattern.(irtypes.ConsPattern); ok {
				cp.QName = f(cp.QName)
				b.Pattern = cp
			}
			branches[i] = b
		}
		x.Branches = branches
		return x
	default:
		return e
	}
}
