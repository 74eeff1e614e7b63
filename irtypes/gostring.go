package irtypes

import (
	"fmt"
	"strings"
)

// GoString renders p in a derived-form notation modelled on the one
// spec.md §3.6 uses to define the IR (combined(combType, qname, missing,
// [args]), case(...), and so on). It exists only to make tests and debug output
// self-checking — §6.2 does not require the flat IR to round-trip
// through text, so this is deliberately not a parser target.
func (p *Program) GoString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %s\n", p.ModuleName.String())
	for _, m := range p.Imports {
		fmt.Fprintf(&b, "import %s\n", m.String())
	}
	for _, td := range p.TypeDecls {
		fmt.Fprintf(&b, "%s\n", typeDeclGoString(td))
	}
	for _, od := range p.OpDecls {
		fmt.Fprintf(&b, "op(%s, %s, %d)\n", fixityGoString(od.Fixity), od.QName.String(), od.Precedence)
	}
	for _, fd := range p.FuncDecls {
		fmt.Fprintf(&b, "%s\n", funcDeclGoString(fd))
	}
	return b.String()
}

func typeDeclGoString(td TypeDecl) string {
	switch t := td.(type) {
	case AlgebraicTypeDecl:
		cons := make([]string, len(t.Constructors))
		for i, c := range t.Constructors {
			cons[i] = fmt.Sprintf("%s/%d", c.QName.String(), c.Arity)
		}
		return fmt.Sprintf("type(%s, %s, %d, [%s])", visibilityGoString(t.Visibility), t.QName.String(), t.TypeParams, strings.Join(cons, ", "))
	case SynonymTypeDecl:
		return fmt.Sprintf("typesyn(%s, %s, %d, %s)", visibilityGoString(t.Visibility), t.QName.String(), t.TypeParams, typeExprGoString(t.Type))
	default:
		return "<?typedecl>"
	}
}

func funcDeclGoString(fd FuncDecl) string {
	return fmt.Sprintf("func(%s, %s, %d, %s, %s)", visibilityGoString(fd.Visibility), fd.QName.String(), fd.Arity, typeExprGoString(fd.Type), ruleGoString(fd.Rule))
}

func ruleGoString(r Rule) string {
	switch x := r.(type) {
	case DefinedRule:
		params := make([]string, len(x.Params))
		for i, p := range x.Params {
			params[i] = fmt.Sprintf("%d", p)
		}
		return fmt.Sprintf("rule([%s], %s)", strings.Join(params, ", "), exprGoString(x.Body))
	case ExternalRule:
		return fmt.Sprintf("external(%q)", x.Name)
	default:
		return "<?rule>"
	}
}

func exprGoString(e Expr) string {
	switch x := e.(type) {
	case VarExpr:
		return fmt.Sprintf("variable(%d)", x.Idx)
	case LitExpr:
		return literalGoString(x.Value)
	case CombinedExpr:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = exprGoString(a)
		}
		return fmt.Sprintf("combined(%s, %s, %d, [%s])", combTypeGoString(x.CombType), x.QName.String(), x.Missing, strings.Join(args, ", "))
	case LetExpr:
		binds := make([]string, len(x.Bindings))
		for i, bnd := range x.Bindings {
			binds[i] = fmt.Sprintf("(%d, %s)", bnd.Var, exprGoString(bnd.Value))
		}
		return fmt.Sprintf("let([%s], %s)", strings.Join(binds, ", "), exprGoString(x.Body))
	case FreeExpr:
		vars := make([]string, len(x.Vars))
		for i, v := range x.Vars {
			vars[i] = fmt.Sprintf("%d", v)
		}
		return fmt.Sprintf("free([%s], %s)", strings.Join(vars, ", "), exprGoString(x.Body))
	case OrExpr:
		return fmt.Sprintf("or(%s, %s)", exprGoString(x.Left), exprGoString(x.Right))
	case CaseExpr:
		branches := make([]string, len(x.Branches))
		for i, br := range x.Branches {
			branches[i] = fmt.Sprintf("(%s, %s)", patternGoString(br.Pattern), exprGoString(br.Expr))
		}
		return fmt.Sprintf("case(%d, %s, %s, [%s])", x.SrcRef, caseTypeGoString(x.CaseType), exprGoString(x.Scrutinee), strings.Join(branches, ", "))
	case TypedExpr:
		return fmt.Sprintf("typed(%s, %s)", exprGoString(x.Expr), typeExprGoString(x.Type))
	default:
		return "<?expr>"
	}
}

func patternGoString(p Pattern) string {
	switch x := p.(type) {
	case ConsPattern:
		vars := make([]string, len(x.Vars))
		for i, v := range x.Vars {
			vars[i] = fmt.Sprintf("%d", v)
		}
		return fmt.Sprintf("constructor(%s, [%s])", x.QName.String(), strings.Join(vars, ", "))
	case LitPattern:
		return fmt.Sprintf("literal(%s)", literalGoString(x.Value))
	default:
		return "<?pattern>"
	}
}

func literalGoString(l Literal) string {
	switch x := l.(type) {
	case IntLit:
		return fmt.Sprintf("int(%s, %d)", x.AttrIdent, x.Value)
	case FloatLit:
		return fmt.Sprintf("float(%g)", x.Value)
	case CharLit:
		return fmt.Sprintf("char(%q)", x.Value)
	default:
		return "<?literal>"
	}
}

func typeExprGoString(t TypeExpr) string {
	switch x := t.(type) {
	case VarType:
		return fmt.Sprintf("tvar(%d)", x.Idx)
	case ConsType:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = typeExprGoString(a)
		}
		return fmt.Sprintf("tcons(%s, [%s])", x.QName.String(), strings.Join(args, ", "))
	case FuncType:
		return fmt.Sprintf("tfunc(%s, %s)", typeExprGoString(x.Domain), typeExprGoString(x.Range))
	default:
		return "<?type>"
	}
}

func combTypeGoString(c CombType) string {
	switch c {
	case FuncCall:
		return "funcCall"
	case FuncPartCall:
		return "funcPartCall"
	case ConsCall:
		return "consCall"
	case ConsPartCall:
		return "consPartCall"
	default:
		return "?combType"
	}
}

func caseTypeGoString(c CaseType) string {
	if c == CaseTypeFlex {
		return "flex"
	}
	return "rigid"
}

func fixityGoString(f Fixity) string {
	switch f {
	case FixLeft:
		return "infixl"
	case FixRight:
		return "infixr"
	default:
		return "infix"
	}
}

func visibilityGoString(v Visibility) string {
	if v == Public {
		return "public"
	}
	return "private"
}
