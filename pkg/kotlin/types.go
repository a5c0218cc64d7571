package kotlin

import (
	"fmt"

	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

var typeNames = map[string]string{
	"Bool":      "Boolean",
	"AnyObject": "Any",
	"Void":      "Unit",
}

func (t *Translator) typ(ctx *Context, typ core.Type) token.Seq {
	inner := ctx.Enter(typ)
	switch n := typ.(type) {
	case *core.TypeIdentifier:
		return t.typeIdentifier(inner, n)
	case *core.ArrayType:
		return token.Concat(token.Of(ident(n, "List")), t.typeArgs(inner, n, n.Elem))
	case *core.DictionaryType:
		return token.Concat(token.Of(ident(n, "Map")), t.typeArgs(inner, n, n.Key, n.Value))
	case *core.OptionalType:
		wrapped := t.typ(inner, n.Wrapped)
		if _, isFunc := n.Wrapped.(*core.FunctionType); isFunc {
			wrapped = wrap(n, wrapped, "(", ")")
		}
		return token.Suffix(wrapped, sym(n, "?"))
	case *core.ImplicitlyUnwrappedType:
		return t.typ(inner, n.Wrapped)
	case *core.TupleType:
		return t.tupleType(inner, n)
	case *core.FunctionType:
		return t.functionType(inner, n)
	case *core.MetatypeType:
		return token.Concat(token.Of(ident(n, "KClass")), t.typeArgs(inner, n, n.Type))
	case *core.AnyType:
		return token.Of(ident(n, "Any"))
	case *core.ProtocolCompositionType:
		return t.unsupported(n, "protocol composition types are not supported", swiftType(n))
	case *core.SelfType:
		return t.unsupported(n, "Self type is not supported", token.Of(ident(n, "Self")))
	}
	panic(fmt.Sprintf("kotlin: unhandled type %T", typ))
}

func (t *Translator) typeIdentifier(ctx *Context, n *core.TypeIdentifier) token.Seq {
	parts := make([]token.Seq, 0, len(n.Names))
	for _, name := range n.Names {
		v := name.Name
		if mapped, ok := typeNames[v]; ok {
			v = mapped
		}
		parts = append(parts, token.Concat(token.Of(ident(n, v)), t.typeArgs(ctx, n, name.GenericArgs...)))
	}
	return token.Join(parts, delim(n, "."))
}

// typeArgs renders `<A, B>`, or nothing for an empty list.
func (t *Translator) typeArgs(ctx *Context, n core.Node, args ...core.Type) token.Seq {
	if len(args) == 0 {
		return nil
	}
	parts := make([]token.Seq, len(args))
	for i, a := range args {
		parts[i] = t.typ(ctx, a)
	}
	return wrap(n, commaList(n, parts), "<", ">")
}

func (t *Translator) tupleType(ctx *Context, n *core.TupleType) token.Seq {
	switch len(n.Elements) {
	case 0:
		return token.Of(ident(n, "Unit"))
	case 1:
		if n.Elements[0].Name == "" {
			return t.typ(ctx, n.Elements[0].Type)
		}
	case 2:
		return token.Concat(token.Of(ident(n, "Pair")),
			t.typeArgs(ctx, n, n.Elements[0].Type, n.Elements[1].Type))
	}
	parts := make([]token.Seq, len(n.Elements))
	for i, el := range n.Elements {
		name := el.Name
		if name == "" {
			name = fmt.Sprintf("v%d", i+1)
		}
		parts[i] = token.Concat(token.Of(ident(n, name), delim(n, ":"), sp(n)), t.typ(ctx, el.Type))
	}
	return wrap(n, commaList(n, parts), "(", ")")
}

func (t *Translator) functionType(ctx *Context, n *core.FunctionType) token.Seq {
	params := make([]token.Seq, len(n.Params))
	for i, p := range n.Params {
		params[i] = t.typ(ctx, p.Type)
	}
	return token.Concat(
		wrap(n, commaList(n, params), "(", ")"),
		token.Of(sp(n), sym(n, "->"), sp(n)),
		t.resultType(ctx, n, n.Result),
	)
}

// resultType renders a function result, mapping a missing result to Unit.
func (t *Translator) resultType(ctx *Context, n core.Node, result core.Type) token.Seq {
	if result == nil {
		return token.Of(ident(n, "Unit"))
	}
	return t.typ(ctx, result)
}

// annotation renders `: T` for a declaration type annotation.
func (t *Translator) annotation(ctx *Context, n core.Node, a *core.TypeAnnotation) token.Seq {
	if a == nil || a.Type == nil {
		return nil
	}
	return token.Concat(token.Of(delim(n, ":"), sp(n)), t.typ(ctx, a.Type))
}

// isUnitResult reports whether a function result is absent or Void.
func isUnitResult(result core.Type) bool {
	if result == nil {
		return true
	}
	switch r := result.(type) {
	case *core.TypeIdentifier:
		return r.Name() == "Void" && len(r.Names) == 1
	case *core.TupleType:
		return len(r.Elements) == 0
	}
	return false
}
