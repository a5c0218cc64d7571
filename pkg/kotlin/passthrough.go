package kotlin

import (
	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// Passthrough renderings keep the source spelling of constructs that have
// no Kotlin rule, so the flagged output still shows what was there.

func swiftType(typ core.Type) token.Seq {
	switch n := typ.(type) {
	case *core.TypeIdentifier:
		parts := make([]token.Seq, len(n.Names))
		for i, name := range n.Names {
			parts[i] = token.Concat(token.Of(ident(n, name.Name)), swiftTypeArgs(n, name.GenericArgs))
		}
		return token.Join(parts, delim(n, "."))
	case *core.ArrayType:
		return wrap(n, swiftType(n.Elem), "[", "]")
	case *core.DictionaryType:
		return wrap(n, token.Concat(swiftType(n.Key), token.Of(delim(n, ":"), sp(n)), swiftType(n.Value)), "[", "]")
	case *core.OptionalType:
		return token.Suffix(swiftType(n.Wrapped), sym(n, "?"))
	case *core.ImplicitlyUnwrappedType:
		return token.Suffix(swiftType(n.Wrapped), sym(n, "!"))
	case *core.TupleType:
		parts := make([]token.Seq, len(n.Elements))
		for i, el := range n.Elements {
			var label token.Seq
			if el.Name != "" {
				label = token.Of(ident(n, el.Name), delim(n, ":"), sp(n))
			}
			parts[i] = token.Concat(label, swiftType(el.Type))
		}
		return wrap(n, commaList(n, parts), "(", ")")
	case *core.FunctionType:
		parts := make([]token.Seq, len(n.Params))
		for i, p := range n.Params {
			parts[i] = swiftType(p.Type)
		}
		out := wrap(n, commaList(n, parts), "(", ")")
		if n.Throws {
			out = token.Suffix(out, sp(n), kw(n, "throws"))
		}
		result := token.Of(ident(n, "Void"))
		if n.Result != nil {
			result = swiftType(n.Result)
		}
		return token.Concat(out, token.Of(sp(n), sym(n, "->"), sp(n)), result)
	case *core.ProtocolCompositionType:
		parts := make([]token.Seq, len(n.Types))
		for i, p := range n.Types {
			parts[i] = swiftType(p)
		}
		return token.Join(parts, sp(n), sym(n, "&"), sp(n))
	case *core.MetatypeType:
		suffix := "Type"
		if n.Protocol {
			suffix = "Protocol"
		}
		return token.Concat(swiftType(n.Type), token.Of(delim(n, "."), kw(n, suffix)))
	case *core.AnyType:
		return token.Of(kw(n, "Any"))
	case *core.SelfType:
		return token.Of(kw(n, "Self"))
	}
	return nil
}

func swiftTypeArgs(n core.Node, args []core.Type) token.Seq {
	if len(args) == 0 {
		return nil
	}
	parts := make([]token.Seq, len(args))
	for i, a := range args {
		parts[i] = swiftType(a)
	}
	return wrap(n, commaList(n, parts), "<", ">")
}

func swiftGenericParams(n core.Node, params []core.GenericParam) token.Seq {
	if len(params) == 0 {
		return nil
	}
	parts := make([]token.Seq, len(params))
	for i, p := range params {
		parts[i] = token.Of(ident(n, p.Name))
		if p.Constraint != nil {
			parts[i] = token.Concat(parts[i], token.Of(delim(n, ":"), sp(n)), swiftType(p.Constraint))
		}
	}
	return wrap(n, commaList(n, parts), "<", ">")
}

func swiftWhere(n core.Node, w *core.WhereClause) token.Seq {
	if w == nil || len(w.Requirements) == 0 {
		return nil
	}
	parts := make([]token.Seq, len(w.Requirements))
	for i, r := range w.Requirements {
		op := token.Of(delim(n, ":"), sp(n))
		if r.SameType {
			op = token.Of(sp(n), sym(n, "=="), sp(n))
		}
		parts[i] = token.Concat(swiftType(r.Left), op, swiftType(r.Right))
	}
	return token.Concat(token.Of(kw(n, "where"), sp(n)), commaList(n, parts))
}

func swiftInheritance(n core.Node, types []core.Type) token.Seq {
	if len(types) == 0 {
		return nil
	}
	parts := make([]token.Seq, len(types))
	for i, typ := range types {
		parts[i] = swiftType(typ)
	}
	return token.Concat(token.Of(delim(n, ":"), sp(n)), commaList(n, parts))
}

func (t *Translator) swiftPattern(ctx *Context, p core.Pattern) token.Seq {
	switch n := p.(type) {
	case *core.IdentifierPattern:
		return token.Of(ident(n, n.Name))
	case *core.WildcardPattern:
		return token.Of(ident(n, "_"))
	case *core.TuplePattern:
		parts := make([]token.Seq, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = t.swiftPattern(ctx, el.Pattern)
			if el.Label != "" {
				parts[i] = token.Prefix(parts[i], ident(n, el.Label), delim(n, ":"), sp(n))
			}
		}
		return wrap(n, commaList(n, parts), "(", ")")
	case *core.EnumCasePattern:
		out := token.Of(delim(n, "."), ident(n, n.Name))
		if n.Type != nil {
			out = token.Concat(swiftType(n.Type), out)
		}
		if n.Payload != nil {
			out = token.Concat(out, t.swiftPattern(ctx, n.Payload))
		}
		return out
	case *core.OptionalPattern:
		return token.Of(ident(n, n.Name), sym(n, "?"))
	case *core.ExpressionPattern:
		return t.expr(ctx.Enter(n), n.Expr)
	case *core.ValueBindingPattern:
		keyword := "let"
		if n.IsVar {
			keyword = "var"
		}
		return token.Concat(token.Of(kw(n, keyword), sp(n)), t.swiftPattern(ctx, n.Pattern))
	case *core.TypeCastPattern:
		if n.Pattern == nil {
			return token.Concat(token.Of(kw(n, "is"), sp(n)), swiftType(n.Type))
		}
		return token.Concat(t.swiftPattern(ctx, n.Pattern), token.Of(sp(n), kw(n, "as"), sp(n)), swiftType(n.Type))
	}
	return nil
}
