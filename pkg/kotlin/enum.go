package kotlin

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// Raw value types whose omitted raw values count up from the previous case.
var countingRawTypes = []string{
	"Int", "Int8", "Int16", "Int32", "Int64",
	"UInt", "UInt8", "UInt16", "UInt32", "UInt64",
}

// Raw value types whose omitted raw values repeat the case name.
var namedRawTypes = []string{"String", "Character"}

// Protocols implied by every Kotlin enum class.
var enumMarkers = []string{"CaseIterable", "Equatable", "Hashable"}

type enumShape struct {
	cases      []core.EnumCase
	rawType    core.Type
	supers     []core.Type
	hasPayload bool
	hasRaw     bool
}

func analyzeEnum(n *core.EnumDecl) enumShape {
	var s enumShape
	for _, group := range n.Cases {
		for _, c := range group.Cases {
			s.cases = append(s.cases, c)
			s.hasPayload = s.hasPayload || c.Payload != nil
			s.hasRaw = s.hasRaw || c.RawValue != nil
		}
	}
	for i, typ := range n.Inheritance {
		name := core.TypeNameOf(typ)
		switch {
		case i == 0 && isRawType(name):
			s.rawType = typ
		case slices.Contains(enumMarkers, name):
		default:
			s.supers = append(s.supers, typ)
		}
	}
	return s
}

func isRawType(name string) bool {
	return slices.Contains(countingRawTypes, name) || slices.Contains(namedRawTypes, name) ||
		name == "Double" || name == "Float"
}

func (t *Translator) enum(ctx *Context, n *core.EnumDecl) token.Seq {
	shape := analyzeEnum(n)
	switch {
	case len(n.GenericParams) > 0 || (n.Where != nil && len(n.Where.Requirements) > 0):
		return declStart(n, t.unsupported(n, "generic enums are not supported", t.swiftEnum(ctx, n)))
	case shape.hasPayload && shape.hasRaw:
		return declStart(n, t.unsupported(n, "enums mixing payloads and raw values are not supported", t.swiftEnum(ctx, n)))
	case shape.hasPayload || len(shape.supers) > 0:
		return t.sealedEnum(ctx, n, shape)
	}
	return t.enumClass(ctx, n, shape)
}

// enumClass renders payload-free enums as a Kotlin enum class, carrying
// raw values as a constructor property.
func (t *Translator) enumClass(ctx *Context, n *core.EnumDecl, shape enumShape) token.Seq {
	statics, rest := partitionStatic(n.Members)

	head := token.Concat(
		t.declHead(n, n.Attributes, n.Modifiers, "enum class"),
		token.Of(sp(n)),
		token.Of(marked(ident(n, n.Name), token.ConstructDeclName)),
	)
	valued := shape.rawType != nil
	if valued {
		head = token.Concat(head, wrap(n,
			token.Concat(token.Of(kw(n, "val"), sp(n), ident(n, "rawValue"), delim(n, ":"), sp(n)), t.typ(ctx, shape.rawType)),
			"(", ")"))
	}

	entries := make([]token.Seq, len(shape.cases))
	next := int64(0)
	for i, c := range shape.cases {
		entry := token.Of(ident(n, capitalize(c.Name)))
		if valued {
			var value token.Seq
			value, next = t.rawValue(ctx, n, shape.rawType, c, next)
			if len(value) > 0 {
				entry = token.Concat(entry, wrap(n, value, "(", ")"))
			}
		}
		entries[i] = token.Prefix(entry, br(n))
	}
	body := token.Join(entries, delim(n, ","))
	members := t.members(ctx, n, rest)
	if len(members) > 0 || len(statics) > 0 {
		body = token.Suffix(body, delim(n, ";"))
	}
	if len(members) > 0 {
		body = token.Concat(body, token.Of(br(n)), members)
	}

	out := token.Concat(head, token.Of(sp(n)), memberBlock(n, body))
	out = t.withCompanion(n, out, t.members(ctx, n, statics))
	return declStart(n, out)
}

// rawValue renders the raw value of c and returns the implicit value of
// the case after it.
func (t *Translator) rawValue(ctx *Context, n core.Node, rawType core.Type, c core.EnumCase, next int64) (token.Seq, int64) {
	name := core.TypeNameOf(rawType)
	if c.RawValue != nil {
		if slices.Contains(countingRawTypes, name) && c.RawValue.Kind == core.LiteralInteger {
			if v, err := strconv.ParseInt(integerLiteral(c.RawValue.Value), 0, 64); err == nil {
				next = v
			}
		}
		return t.expr(ctx, c.RawValue), next + 1
	}
	switch {
	case slices.Contains(countingRawTypes, name):
		return token.Of(ident(n, strconv.FormatInt(next, 10))), next + 1
	case slices.Contains(namedRawTypes, name):
		return token.Of(str(n, strconv.Quote(c.Name))), next
	}
	return nil, next
}

// sealedEnum renders payload-carrying enums as a sealed class with one
// subtype per case.
func (t *Translator) sealedEnum(ctx *Context, n *core.EnumDecl, shape enumShape) token.Seq {
	statics, rest := partitionStatic(n.Members)

	var supers []token.Seq
	for _, typ := range shape.supers {
		supers = append(supers, t.typ(ctx, typ))
	}
	head := token.Concat(
		t.declHead(n, n.Attributes, n.Modifiers, "sealed class"),
		token.Of(sp(n)),
		token.Of(marked(ident(n, n.Name), token.ConstructDeclName)),
		supertypes(n, supers),
	)

	parent := token.Of(ident(n, n.Name), open(n, "("), closing(n, ")"))
	var body token.Seq
	for _, c := range shape.cases {
		name := ident(n, capitalize(c.Name))
		var sub token.Seq
		// Data classes need at least one property.
		if c.Payload == nil || len(c.Payload.Elements) == 0 {
			sub = token.Of(kw(n, "object"), sp(n), name)
		} else {
			sub = token.Concat(token.Of(kw(n, "data class"), sp(n), name), t.payloadProperties(ctx, n, c.Payload))
		}
		sub = token.Concat(sub, token.Of(sp(n), delim(n, ":"), sp(n)), parent)
		body = token.Concat(body, token.Of(br(n)), sub)
	}
	if members := t.members(ctx, n, rest); len(members) > 0 {
		body = token.Concat(body, token.Of(br(n)), members)
	}

	out := token.Concat(head, token.Of(sp(n)), memberBlock(n, body))
	out = t.withCompanion(n, out, t.members(ctx, n, statics))
	return declStart(n, out)
}

func (t *Translator) payloadProperties(ctx *Context, n core.Node, payload *core.TupleType) token.Seq {
	parts := make([]token.Seq, len(payload.Elements))
	for i, el := range payload.Elements {
		name := el.Name
		if name == "" {
			name = fmt.Sprintf("v%d", i+1)
		}
		parts[i] = token.Concat(token.Of(kw(n, "val"), sp(n), ident(n, name), delim(n, ":"), sp(n)), t.typ(ctx, el.Type))
	}
	return wrap(n, commaList(n, parts), "(", ")")
}

// swiftEnum renders an enum in its source spelling. Members are still
// translated.
func (t *Translator) swiftEnum(ctx *Context, n *core.EnumDecl) token.Seq {
	head := token.Of(kw(n, "enum"), sp(n), ident(n, n.Name))
	head = token.Concat(head, swiftGenericParams(n, n.GenericParams), swiftInheritance(n, n.Inheritance))
	if where := swiftWhere(n, n.Where); len(where) > 0 {
		head = token.Concat(head, token.Of(sp(n)), where)
	}

	var body token.Seq
	for _, group := range n.Cases {
		parts := make([]token.Seq, len(group.Cases))
		for i, c := range group.Cases {
			parts[i] = token.Of(ident(group, c.Name))
			if c.Payload != nil {
				parts[i] = token.Concat(parts[i], swiftType(c.Payload))
			}
			if c.RawValue != nil {
				parts[i] = token.Concat(parts[i], token.Of(sp(group), sym(group, "="), sp(group)), t.expr(ctx, c.RawValue))
			}
		}
		line := token.Concat(token.Of(br(group), kw(group, "case"), sp(group)), commaList(group, parts))
		if group.Indirect {
			line = token.Insert(line, 1, token.Of(kw(group, "indirect"), sp(group)))
		}
		body = token.Concat(body, line)
	}
	body = token.Concat(body, t.members(ctx, n, n.Members))
	return token.Concat(head, token.Of(sp(n)), memberBlock(n, body))
}
