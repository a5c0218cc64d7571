package kotlin

import (
	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// members renders type members, each starting on its own line. Functions,
// initializers and nested types are set apart by a blank line.
func (t *Translator) members(ctx *Context, n core.Node, decls []core.Decl) token.Seq {
	var out token.Seq
	for i, d := range decls {
		m := declStart(d, t.isolate(ctx, d, func() token.Seq { return t.decl(ctx, d) }))
		if len(m) == 0 {
			continue
		}
		if i > 0 && (spaced(d) || spaced(decls[i-1])) {
			m = token.Prefix(m, br(d))
		}
		out = token.Concat(out, m)
	}
	return out
}

func spaced(d core.Decl) bool {
	switch d.(type) {
	case *core.FunctionDecl, *core.InitializerDecl, *core.DeinitializerDecl,
		*core.ClassDecl, *core.StructDecl, *core.EnumDecl, *core.ProtocolDecl:
		return true
	}
	return false
}

// memberBlock wraps rendered members in braces. Members start with a
// linebreak.
func memberBlock(n core.Node, members token.Seq) token.Seq {
	if len(members) == 0 {
		return token.Of(open(n, "{"), closing(n, "}"))
	}
	return token.Concat(token.Of(open(n, "{")), token.Indent(members), token.Of(br(n), closing(n, "}")))
}

// partitionStatic splits members into static and instance members.
func partitionStatic(decls []core.Decl) (statics, rest []core.Decl) {
	for _, d := range decls {
		if core.IsStatic(d) {
			statics = append(statics, d)
		} else {
			rest = append(rest, d)
		}
	}
	return statics, rest
}

// withCompanion splices a companion object holding the static members
// in front of the closing brace of a rendered type.
func (t *Translator) withCompanion(n core.Node, out, members token.Seq) token.Seq {
	if len(members) == 0 {
		return out
	}
	anchor := out.LastIndex(token.Matches(token.EndOfScope, "}"))
	if anchor < 0 {
		fail(n, KindMissingAnchor, "no closing brace for companion object")
	}
	companion := token.Concat(
		token.Of(br(n), kw(n, "companion"), sp(n), kw(n, "object"), sp(n)),
		memberBlock(n, members),
	)
	if anchor > 0 && out[anchor-1].Is(token.StartOfScope, "{") {
		companion = token.Suffix(token.Indent(companion), br(n))
	} else {
		// Keep the break that ends the last member in front of the brace.
		if anchor > 0 && out[anchor-1].Kind == token.Linebreak {
			anchor--
		}
		companion = token.Indent(token.Prefix(companion, br(n)))
	}
	return token.Insert(out, anchor, companion)
}

// supertypes renders ` : A, B`.
func supertypes(n core.Node, types []token.Seq) token.Seq {
	list := commaList(n, types)
	if len(list) == 0 {
		return nil
	}
	return token.Concat(token.Of(sp(n), delim(n, ":"), sp(n)), list)
}

func (t *Translator) typeName(ctx *Context, n core.Node, name string, generics []core.GenericParam) token.Seq {
	return token.Concat(token.Of(marked(ident(n, name), token.ConstructDeclName)), t.genericParams(ctx, n, generics))
}

func (t *Translator) class(ctx *Context, n *core.ClassDecl) token.Seq {
	statics, rest := partitionStatic(n.Members)
	testBase := t.policy.TestBase != "" && hasSupertype(n.Inheritance, t.policy.TestBase)

	var supers []token.Seq
	for _, typ := range n.Inheritance {
		s := t.typ(ctx, typ)
		if testBase && core.TypeNameOf(typ) == t.policy.TestBase {
			s = token.Suffix(s, open(n, "("), closing(n, ")"))
		}
		supers = append(supers, s)
	}

	head := token.Concat(
		t.declHead(n, n.Attributes, n.Modifiers.Without(core.ModFinal), "class"),
		token.Of(sp(n)),
		t.typeName(ctx, n, n.Name, n.GenericParams),
		supertypes(n, supers),
	)
	if where := t.whereClause(ctx, n, n.Where); len(where) > 0 {
		head = token.Concat(head, token.Of(sp(n)), where)
	}
	if testBase {
		var annotations []token.Seq
		for _, a := range t.policy.TestAnnotations {
			annotations = append(annotations, token.Of(kw(n, a)))
		}
		head = lines(n, lines(n, annotations...), head)
	}

	body := t.members(ctx, n, rest)
	if t.policy.BridgeBase != "" && hasSupertype(n.Inheritance, t.policy.BridgeBase) {
		body = token.Concat(t.bridge(n), body)
	}

	out := token.Concat(head, token.Of(sp(n)), memberBlock(n, body))
	out = t.withCompanion(n, out, t.members(ctx, n, statics))
	return declStart(n, out)
}

// bridge renders the templated members of a bridged class.
func (t *Translator) bridge(n *core.ClassDecl) token.Seq {
	text, err := t.policy.Bridge(n.Name)
	if err != nil {
		fail(n, KindTemplate, "%v", err)
	}
	var out token.Seq
	for _, l := range text {
		out = append(out, br(n))
		if l != "" {
			out = append(out, ident(n, l))
		}
	}
	return out
}

func (t *Translator) structDecl(ctx *Context, n *core.StructDecl) token.Seq {
	var statics, fields, others []core.Decl
	for _, d := range n.Members {
		switch {
		case core.IsStatic(d):
			statics = append(statics, d)
		case isStoredMember(d):
			fields = append(fields, d)
		default:
			others = append(others, d)
		}
	}

	keyword := "class"
	if len(fields) > 0 || len(others) > 0 {
		keyword = "data class"
	}

	head := token.Concat(
		t.declHead(n, n.Attributes, n.Modifiers, keyword),
		token.Of(sp(n)),
		t.typeName(ctx, n, n.Name, n.GenericParams),
	)
	if len(fields) > 0 {
		head = token.Concat(head, t.primaryConstructor(ctx, n, fields))
	}

	serializable := t.policy.IsSerializable(n.Inheritance)
	if !serializable {
		var supers []token.Seq
		for _, typ := range n.Inheritance {
			if t.policy.IsExcludedSupertype(core.TypeNameOf(typ)) {
				continue
			}
			supers = append(supers, t.typ(ctx, typ))
		}
		head = token.Concat(head, supertypes(n, supers))
	}
	if where := t.whereClause(ctx, n, n.Where); len(where) > 0 {
		head = token.Concat(head, token.Of(sp(n)), where)
	}
	if serializable && t.policy.SerializableAnnotation != "" {
		head = lines(n, token.Of(kw(n, t.policy.SerializableAnnotation)), head)
	}

	out := head
	if len(others) > 0 || len(statics) > 0 {
		out = token.Concat(out, token.Of(sp(n)), memberBlock(n, t.members(ctx, n, others)))
		out = t.withCompanion(n, out, t.companionConstants(ctx, n, statics))
	}
	return declStart(n, out)
}

// isStoredMember reports whether d becomes a primary constructor property.
func isStoredMember(d core.Decl) bool {
	switch d := d.(type) {
	case *core.ConstantDecl:
		return true
	case *core.VariableDecl:
		_, ok := d.Body.(*core.InitializerListBody)
		return ok
	}
	return false
}

// splitBindings breaks a declaration binding several names into one
// declaration per name. Other declarations are returned as is.
func splitBindings(d core.Decl) []core.Decl {
	switch d := d.(type) {
	case *core.ConstantDecl:
		if len(d.Initializers) < 2 {
			return []core.Decl{d}
		}
		out := make([]core.Decl, len(d.Initializers))
		for i, pi := range d.Initializers {
			c := *d
			c.Initializers = []core.PatternInitializer{pi}
			out[i] = &c
		}
		return out
	case *core.VariableDecl:
		body, ok := d.Body.(*core.InitializerListBody)
		if !ok || len(body.Initializers) < 2 {
			return []core.Decl{d}
		}
		out := make([]core.Decl, len(body.Initializers))
		for i, pi := range body.Initializers {
			b := *body
			b.Initializers = []core.PatternInitializer{pi}
			v := *d
			v.Body = &b
			out[i] = &v
		}
		return out
	}
	return []core.Decl{d}
}

func (t *Translator) primaryConstructor(ctx *Context, n core.Node, fields []core.Decl) token.Seq {
	var params []token.Seq
	for _, f := range fields {
		for _, single := range splitBindings(f) {
			params = append(params, token.TrimLeadingBreaks(t.decl(ctx, single)))
		}
	}
	if len(params) == 1 && !params[0].Contains(token.KindIs(token.Linebreak)) {
		return wrap(n, params[0], "(", ")")
	}
	list := token.Join(params, delim(n, ","), br(n))
	return token.Concat(token.Of(open(n, "(")), token.Indent(token.Prefix(list, br(n))), token.Of(br(n), closing(n, ")")))
}

// companionConstants renders static members, promoting constants with
// literal values to compile-time constants.
func (t *Translator) companionConstants(ctx *Context, n core.Node, statics []core.Decl) token.Seq {
	var out token.Seq
	for _, d := range statics {
		m := t.members(ctx, n, []core.Decl{d})
		if c, ok := d.(*core.ConstantDecl); ok && literalInitializers(c) {
			m = token.ReplaceN(m, token.Matches(token.Keyword, "val"), token.Of(kw(c, "const"), sp(c), kw(c, "val")), -1)
		}
		if len(out) > 0 && spaced(d) {
			m = token.Prefix(m, br(d))
		}
		out = token.Concat(out, m)
	}
	return out
}

func literalInitializers(c *core.ConstantDecl) bool {
	for _, pi := range c.Initializers {
		lit, ok := pi.Init.(*core.LiteralExpr)
		if !ok {
			return false
		}
		switch lit.Kind {
		case core.LiteralBool, core.LiteralInteger, core.LiteralFloat, core.LiteralStaticString:
		default:
			return false
		}
	}
	return true
}

func (t *Translator) protocol(ctx *Context, n *core.ProtocolDecl) token.Seq {
	var supers []token.Seq
	for _, typ := range n.Inheritance {
		if name := core.TypeNameOf(typ); name == "AnyObject" || name == "class" {
			continue
		}
		supers = append(supers, t.typ(ctx, typ))
	}

	var body token.Seq
	for i, m := range n.Members {
		r := token.Prefix(t.protocolMember(ctx.Enter(m), m), br(m))
		if _, isMethod := m.(*core.ProtocolMethod); isMethod && i > 0 {
			r = token.Prefix(r, br(m))
		}
		body = token.Concat(body, r)
	}

	return declStart(n, token.Concat(
		t.declHead(n, n.Attributes, n.Modifiers, "interface"),
		token.Of(sp(n), marked(ident(n, n.Name), token.ConstructDeclName)),
		supertypes(n, supers),
		token.Of(sp(n)),
		memberBlock(n, body),
	))
}

func (t *Translator) protocolMember(ctx *Context, m core.ProtocolMember) token.Seq {
	switch n := m.(type) {
	case *core.ProtocolProperty:
		keyword := "val"
		if n.HasSetter {
			keyword = "var"
		}
		return token.Concat(
			t.declHead(n, n.Attributes, n.Modifiers, keyword),
			token.Of(sp(n), ident(n, n.Name)),
			t.annotation(ctx, n, n.Type),
		)
	case *core.ProtocolMethod:
		head := token.Concat(t.declHead(n, n.Attributes, n.Modifiers, "fun"), token.Of(sp(n)))
		if generics := t.genericParams(ctx, n, n.GenericParams); len(generics) > 0 {
			head = token.Concat(head, generics, token.Of(sp(n)))
		}
		out := token.Concat(head, token.Of(ident(n, n.Name)), t.parameters(ctx, n, n.Signature.Params))
		if !isUnitResult(n.Signature.Result) {
			out = token.Concat(out, token.Of(delim(n, ":"), sp(n)), t.typ(ctx, n.Signature.Result))
		}
		return out
	case *core.ProtocolAssociatedType:
		pass := token.Of(kw(n, "associatedtype"), sp(n), ident(n, n.Name))
		if n.Constraint != nil {
			pass = token.Concat(pass, token.Of(delim(n, ":"), sp(n)), swiftType(n.Constraint))
		}
		return t.unsupported(n, "associated types are not supported", pass)
	}
	panic("kotlin: unhandled protocol member")
}

// extension emulates an extension by declaring each member as a
// receiver-qualified top-level declaration.
func (t *Translator) extension(ctx *Context, n *core.ExtensionDecl) token.Seq {
	var parts []token.Seq
	if len(n.Inheritance) > 0 {
		names := make([]token.Seq, len(n.Inheritance))
		for i, typ := range n.Inheritance {
			names[i] = swiftType(typ)
		}
		parts = append(parts, token.Of(t.fixme(n, "extension inheritance is not supported: "+flatText(commaList(n, names)))))
	}
	if n.Where != nil && len(n.Where.Requirements) > 0 {
		parts = append(parts, token.Of(t.fixme(n, "extension where clauses are not supported: "+flatText(swiftWhere(n, n.Where)))))
	}

	receiver := t.typ(ctx, n.Type)
	for _, d := range n.Members {
		for _, m := range splitBindings(d) {
			parts = append(parts, t.isolate(ctx, m, func() token.Seq {
				return t.extensionMember(ctx, n, receiver, m)
			}))
		}
	}
	return declStart(n, token.Join(parts, br(n), br(n)))
}

// extensionMember renders m as a top-level declaration qualified by the
// extended type.
func (t *Translator) extensionMember(ctx *Context, n *core.ExtensionDecl, receiver token.Seq, m core.Decl) token.Seq {
	out := token.TrimLeadingBreaks(t.decl(ctx, m))
	switch m.(type) {
	case *core.FunctionDecl, *core.VariableDecl, *core.ConstantDecl:
	default:
		return t.unsupported(m, "only functions and properties can be declared in extensions", out)
	}

	at := out.Index(func(tk token.Token) bool { return tk.Origin.Construct == token.ConstructDeclName })
	if at < 0 {
		fail(m, KindMissingAnchor, "no declaration name in extension member")
	}
	qualifier := token.Suffix(receiver, delim(n, "."))
	if core.IsStatic(m) {
		qualifier = token.Suffix(qualifier, kw(n, "Companion"), delim(n, "."))
	}
	out = token.Insert(out, at, qualifier)

	access, hasAccess := n.Modifiers.Access()
	hasOwn := out.Contains(func(tk token.Token) bool { return tk.Origin.Construct == token.ConstructAccessModifier })
	if hasAccess && !hasOwn {
		mods := t.modifiers(n, core.Modifiers{access})
		if at := out.Index(isDeclKeyword); at >= 0 {
			out = token.Insert(out, at, token.Suffix(mods, sp(n)))
		}
	}
	return out
}

// isDeclKeyword matches the first keyword of a declaration after its
// annotations.
func isDeclKeyword(tk token.Token) bool {
	return tk.Kind == token.Keyword && len(tk.Value) > 0 && tk.Value[0] != '@'
}
