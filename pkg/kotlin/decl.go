package kotlin

import (
	"fmt"

	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// Modifiers with no Kotlin counterpart on the declaration itself.
var droppedModifiers = map[core.Modifier]bool{
	core.ModStatic:          true,
	core.ModClass:           true,
	core.ModLazy:            true,
	core.ModWeak:            true,
	core.ModUnowned:         true,
	core.ModUnownedSafe:     true,
	core.ModUnownedUnsafe:   true,
	core.ModConvenience:     true,
	core.ModDynamic:         true,
	core.ModMutating:        true,
	core.ModNonmutating:     true,
	core.ModRequired:        true,
	core.ModOptional:        true,
	core.ModIndirect:        true,
	core.ModPrefixOperator:  true,
	core.ModPostfixOperator: true,
}

func (t *Translator) decl(ctx *Context, d core.Decl) token.Seq {
	inner := ctx.Enter(d)
	switch n := d.(type) {
	case *core.ImportDecl:
		return nil
	case *core.TypealiasDecl:
		return declStart(n, token.Concat(
			t.declHead(n, n.Attributes, n.Modifiers, "typealias"),
			token.Of(sp(n), marked(ident(n, n.Name), token.ConstructDeclName)),
			t.genericParams(inner, n, n.GenericParams),
			token.Of(sp(n), sym(n, "="), sp(n)),
			t.typ(inner, n.Type),
		))
	case *core.ConstantDecl:
		return t.constant(inner, n)
	case *core.VariableDecl:
		return t.variable(inner, n)
	case *core.FunctionDecl:
		return t.function(inner, n)
	case *core.InitializerDecl:
		return t.initializer(inner, n)
	case *core.DeinitializerDecl:
		return declStart(n, t.unsupported(n, "deinitializers are not supported",
			token.Concat(token.Of(kw(n, "deinit"), sp(n)), t.block(inner, n.Body))))
	case *core.ClassDecl:
		return t.class(inner, n)
	case *core.StructDecl:
		return t.structDecl(inner, n)
	case *core.ProtocolDecl:
		return t.protocol(inner, n)
	case *core.ExtensionDecl:
		return t.extension(inner, n)
	case *core.EnumDecl:
		return t.enum(inner, n)
	case *core.RawDecl:
		return declStart(n, token.Of(ident(n, n.Text)))
	}
	panic(fmt.Sprintf("kotlin: unhandled declaration %T", d))
}

// declHead renders `attrs mods keyword`.
func (t *Translator) declHead(n core.Node, attrs core.Attributes, mods core.Modifiers, keyword string) token.Seq {
	return words(n, t.attributes(n, attrs), t.modifiers(n, mods), token.Of(kw(n, keyword)))
}

func (t *Translator) attributes(n core.Node, attrs core.Attributes) token.Seq {
	var parts []token.Seq
	for _, a := range attrs {
		if t.policy.DropsAttribute(a.Name) {
			continue
		}
		text := "@" + a.Name
		if a.Args != "" {
			text += "(" + a.Args + ")"
		}
		parts = append(parts, token.Of(kw(n, text)))
	}
	return token.Join(parts, sp(n))
}

func (t *Translator) modifiers(n core.Node, mods core.Modifiers) token.Seq {
	var parts []token.Seq
	for _, m := range mods {
		if droppedModifiers[m] || m.IsSetterAccess() {
			continue
		}
		v := string(m)
		if m == core.ModFileprivate {
			v = string(core.ModPrivate)
		}
		tk := kw(n, v)
		if m.IsAccessLevel() {
			tk = marked(tk, token.ConstructAccessModifier)
		}
		parts = append(parts, token.Of(tk))
	}
	return token.Join(parts, sp(n))
}

// setterAccess returns the Kotlin visibility of a narrowed setter.
func setterAccess(mods core.Modifiers) string {
	switch {
	case mods.Has(core.ModPrivateSet), mods.Has(core.ModFileprivateSet):
		return "private"
	case mods.Has(core.ModProtectedSet):
		return "protected"
	case mods.Has(core.ModInternalSet):
		return "internal"
	}
	return ""
}

func (t *Translator) genericParams(ctx *Context, n core.Node, params []core.GenericParam) token.Seq {
	if len(params) == 0 {
		return nil
	}
	parts := make([]token.Seq, len(params))
	for i, p := range params {
		parts[i] = token.Of(ident(n, p.Name))
		if p.Constraint != nil {
			parts[i] = token.Concat(parts[i], token.Of(sp(n), delim(n, ":"), sp(n)), t.typ(ctx, p.Constraint))
		}
	}
	return wrap(n, commaList(n, parts), "<", ">")
}

// whereClause renders conformance requirements; same-type requirements
// have no Kotlin form and are flagged.
func (t *Translator) whereClause(ctx *Context, n core.Node, w *core.WhereClause) token.Seq {
	if w == nil || len(w.Requirements) == 0 {
		return nil
	}
	var parts []token.Seq
	for _, r := range w.Requirements {
		if r.SameType {
			return t.unsupported(n, "same-type requirements are not supported", swiftWhere(n, w))
		}
		parts = append(parts, token.Concat(t.typ(ctx, r.Left), token.Of(sp(n), delim(n, ":"), sp(n)), t.typ(ctx, r.Right)))
	}
	return token.Concat(token.Of(kw(n, "where"), sp(n)), commaList(n, parts))
}

// initValue renders an initial value. A bare enum case is qualified by
// the declared type.
func (t *Translator) initValue(ctx *Context, n core.Node, declared core.Type, init core.Expr) token.Seq {
	m, ok := init.(*core.ImplicitMemberExpr)
	if !ok || declared == nil {
		return t.expr(ctx, init)
	}
	for {
		switch w := declared.(type) {
		case *core.OptionalType:
			declared = w.Wrapped
			continue
		case *core.ImplicitlyUnwrappedType:
			declared = w.Wrapped
			continue
		}
		break
	}
	if _, named := declared.(*core.TypeIdentifier); !named {
		return t.expr(ctx, init)
	}
	return token.Concat(t.typ(ctx, declared), token.Of(delim(n, ".")), t.expr(ctx, m))
}

func annotatedType(a *core.TypeAnnotation) core.Type {
	if a == nil {
		return nil
	}
	return a.Type
}

// bindingName renders the bound name of a declaration pattern.
func (t *Translator) bindingName(ctx *Context, p core.Pattern) token.Seq {
	name := t.loopPattern(ctx, p)
	if len(name) > 0 {
		name[0] = marked(name[0], token.ConstructDeclName)
	}
	return name
}

func (t *Translator) constant(ctx *Context, n *core.ConstantDecl) token.Seq {
	decls := make([]token.Seq, len(n.Initializers))
	for i, pi := range n.Initializers {
		declared := annotatedType(core.PatternType(pi.Pattern))
		out := token.Concat(
			t.declHead(n, n.Attributes, n.Modifiers, "val"),
			token.Of(sp(n)),
			t.bindingName(ctx, pi.Pattern),
			t.annotation(ctx, n, core.PatternType(pi.Pattern)),
		)
		if pi.Init != nil {
			out = token.Concat(out, token.Of(sp(n), sym(n, "="), sp(n)), t.initValue(ctx, n, declared, pi.Init))
		}
		decls[i] = declStart(n, out)
	}
	return token.Concat(decls...)
}

func (t *Translator) variable(ctx *Context, n *core.VariableDecl) token.Seq {
	switch body := n.Body.(type) {
	case *core.InitializerListBody:
		decls := make([]token.Seq, len(body.Initializers))
		for i, pi := range body.Initializers {
			decls[i] = declStart(n, t.storedVariable(ctx, n, pi))
		}
		return token.Concat(decls...)
	case *core.ComputedBody:
		return declStart(n, t.computedVariable(ctx, n, body))
	case *core.GetterSetterBody:
		return declStart(n, t.getterSetterVariable(ctx, n, body))
	case *core.ObserverBody:
		return declStart(n, t.observedVariable(ctx, n, body))
	}
	panic(fmt.Sprintf("kotlin: unhandled variable body %T", n.Body))
}

func (t *Translator) storedVariable(ctx *Context, n *core.VariableDecl, pi core.PatternInitializer) token.Seq {
	ann := core.PatternType(pi.Pattern)
	declared := annotatedType(ann)
	name := token.Concat(t.bindingName(ctx, pi.Pattern), t.annotation(ctx, n, ann))

	if n.Modifiers.Has(core.ModLazy) && pi.Init != nil {
		return token.Concat(
			t.declHead(n, n.Attributes, n.Modifiers, "val"),
			token.Of(sp(n)), name,
			token.Of(sp(n), kw(n, "by"), sp(n), kw(n, "lazy"), sp(n)),
			t.lazyBody(ctx, n, pi.Init),
		)
	}

	keyword := "var"
	var value token.Seq
	switch {
	case pi.Init != nil && t.policy.IsQueryBuilder(core.PatternName(pi.Pattern), pi.Init):
		keyword = "val"
		value = token.Prefix(wrap(n, t.expr(ctx, pi.Init), "(", ")"), ident(n, t.policy.QueryBuilderType))
	case pi.Init != nil:
		value = t.initValue(ctx, n, declared, pi.Init)
		if value.Contains(isMutableCollection) {
			keyword = "val"
		}
	case core.IsOptional(declared):
		value = token.Of(kw(n, "null"))
	}

	mods := t.modifiers(n, n.Modifiers)
	if core.IsImplicitlyUnwrapped(declared) && pi.Init == nil {
		mods = words(n, mods, token.Of(kw(n, "lateinit")))
	}
	out := words(n, t.attributes(n, n.Attributes), mods, token.Of(kw(n, keyword)), name)
	if value != nil {
		out = token.Concat(out, token.Of(sp(n), sym(n, "="), sp(n)), value)
	}
	if access := setterAccess(n.Modifiers); access != "" && keyword == "var" {
		out = token.Concat(out, token.Indent(token.Of(br(n), kw(n, access), sp(n), kw(n, "set"))))
	}
	return out
}

func isMutableCollection(tk token.Token) bool {
	return tk.Kind == token.Identifier && (tk.Value == "mutableListOf" || tk.Value == "mutableMapOf")
}

// lazyBody renders the block of a lazy delegate. An immediately invoked
// closure contributes its own body.
func (t *Translator) lazyBody(ctx *Context, n core.Node, init core.Expr) token.Seq {
	if call, ok := init.(*core.FunctionCallExpr); ok && len(call.Args) == 0 && call.Trailing == nil {
		if closure, ok := call.Callee.(*core.ClosureExpr); ok {
			return t.expr(ctx.Enter(call), closure)
		}
	}
	return token.Concat(token.Of(open(n, "{"), sp(n)), t.expr(ctx, init), token.Of(sp(n), closing(n, "}")))
}

func (t *Translator) computedVariable(ctx *Context, n *core.VariableDecl, body *core.ComputedBody) token.Seq {
	return token.Concat(
		t.declHead(n, n.Attributes, n.Modifiers, "val"),
		token.Of(sp(n), marked(ident(n, body.Name), token.ConstructDeclName)),
		t.annotation(ctx, n, body.Type),
		token.Indent(token.Prefix(t.getter(ctx, n, body.Block), br(n))),
	)
}

// getter renders `get() = expr` for single-expression bodies and a block
// getter otherwise.
func (t *Translator) getter(ctx *Context, n core.Node, b *core.CodeBlock) token.Seq {
	head := token.Of(kw(n, "get"), open(n, "("), closing(n, ")"))
	if b != nil && len(b.Statements) == 1 {
		if e := singleExpression(b.Statements[0]); e != nil {
			return token.Concat(head, token.Of(sp(n), sym(n, "="), sp(n)), t.expr(ctx.Enter(b), e))
		}
	}
	return token.Concat(head, token.Of(sp(n)), t.block(ctx, b))
}

// singleExpression returns the value of a statement usable as an
// expression body.
func singleExpression(s core.Stmt) core.Expr {
	switch s := s.(type) {
	case *core.ReturnStmt:
		return s.Value
	case core.Expr:
		return s
	}
	return nil
}

func (t *Translator) setter(ctx *Context, n core.Node, mods core.Modifiers, param string, body token.Seq) token.Seq {
	if param == "" {
		param = "newValue"
	}
	head := token.Of(kw(n, "set"), open(n, "("), ident(n, param), closing(n, ")"), sp(n))
	if access := setterAccess(mods); access != "" {
		head = token.Prefix(head, kw(n, access), sp(n))
	}
	return token.Concat(head, body)
}

func (t *Translator) getterSetterVariable(ctx *Context, n *core.VariableDecl, body *core.GetterSetterBody) token.Seq {
	accessors := token.Concat(token.Of(br(n)), t.getter(ctx, n, body.Getter))
	if body.Setter != nil {
		accessors = token.Concat(accessors, token.Of(br(n)),
			t.setter(ctx, n, n.Modifiers, body.Setter.Name, t.block(ctx, body.Setter.Block)))
	}
	keyword := "var"
	if body.Setter == nil {
		keyword = "val"
	}
	return token.Concat(
		t.declHead(n, n.Attributes, n.Modifiers, keyword),
		token.Of(sp(n), marked(ident(n, body.Name), token.ConstructDeclName)),
		t.annotation(ctx, n, body.Type),
		token.Indent(accessors),
	)
}

// observedVariable desugars willSet/didSet observers into a setter that
// writes the backing field between the two observer bodies.
func (t *Translator) observedVariable(ctx *Context, n *core.VariableDecl, body *core.ObserverBody) token.Seq {
	newName, oldName := "newValue", "oldValue"
	if body.WillSet != nil && body.WillSet.Name != "" {
		newName = body.WillSet.Name
	}
	if body.DidSet != nil && body.DidSet.Name != "" {
		oldName = body.DidSet.Name
	}

	field := func() core.Expr { return &core.IdentifierExpr{NodeInfo: body.NodeInfo, Name: "field"} }
	var stmts []core.Stmt
	if body.DidSet != nil && body.DidSet.Block != nil && len(body.DidSet.Block.Statements) > 0 {
		stmts = append(stmts, &core.ConstantDecl{
			NodeInfo: body.NodeInfo,
			Initializers: []core.PatternInitializer{{
				Pattern: &core.IdentifierPattern{NodeInfo: body.NodeInfo, Name: oldName},
				Init:    field(),
			}},
		})
	}
	if body.WillSet != nil && body.WillSet.Block != nil {
		stmts = append(stmts, body.WillSet.Block.Statements...)
	}
	stmts = append(stmts, &core.AssignExpr{
		NodeInfo: body.NodeInfo,
		Left:     field(),
		Right:    &core.IdentifierExpr{NodeInfo: body.NodeInfo, Name: newName},
	})
	if body.DidSet != nil && body.DidSet.Block != nil {
		stmts = append(stmts, body.DidSet.Block.Statements...)
	}

	out := token.Concat(
		t.declHead(n, n.Attributes, n.Modifiers, "var"),
		token.Of(sp(n), marked(ident(n, body.Name), token.ConstructDeclName)),
		t.annotation(ctx, n, body.Type),
	)
	if body.Init != nil {
		out = token.Concat(out, token.Of(sp(n), sym(n, "="), sp(n)), t.initValue(ctx, n, annotatedType(body.Type), body.Init))
	}
	setter := t.setter(ctx, n, n.Modifiers, newName, braced(body, t.statements(ctx.Enter(body), body, stmts)))
	return token.Concat(out, token.Indent(token.Prefix(setter, br(n))))
}

func (t *Translator) parameters(ctx *Context, n core.Node, params []core.Parameter) token.Seq {
	parts := make([]token.Seq, len(params))
	for i, p := range params {
		var out token.Seq
		if p.Variadic {
			out = token.Of(kw(n, "vararg"), sp(n))
		}
		out = token.Concat(out, token.Of(ident(n, p.LocalName)), t.annotation(ctx, n, p.Type))
		if p.Default != nil {
			out = token.Concat(out, token.Of(sp(n), sym(n, "="), sp(n)), t.initValue(ctx, n, annotatedType(p.Type), p.Default))
		}
		parts[i] = out
	}
	return wrap(n, commaList(n, parts), "(", ")")
}

// stripDefaults drops default values from a rendered parameter list in a
// single pass: a top-level `=` starts a skipped span that ends at the next
// top-level comma or the closing parenthesis.
func stripDefaults(params token.Seq) token.Seq {
	out := make(token.Seq, 0, len(params))
	depth := 0
	skipping := false
	for _, tk := range params {
		switch tk.Kind {
		case token.StartOfScope:
			depth++
		case token.EndOfScope:
			depth--
		}
		if skipping {
			if (tk.Kind == token.EndOfScope && depth == 0) || (depth == 1 && tk.Is(token.Delimiter, ",")) {
				skipping = false
				out = append(out, tk)
			}
			continue
		}
		if depth == 1 && tk.Is(token.Symbol, "=") {
			out = token.TrimTrailingSpaces(out)
			skipping = true
			continue
		}
		out = append(out, tk)
	}
	return out
}

func (t *Translator) function(ctx *Context, n *core.FunctionDecl) token.Seq {
	params := t.parameters(ctx, n, n.Signature.Params)
	if n.Modifiers.Has(core.ModOverride) {
		params = stripDefaults(params)
	}

	head := token.Concat(t.declHead(n, n.Attributes, n.Modifiers, "fun"), token.Of(sp(n)))
	if generics := t.genericParams(ctx, n, n.GenericParams); len(generics) > 0 {
		head = token.Concat(head, generics, token.Of(sp(n)))
	}
	sig := token.Concat(head, token.Of(marked(ident(n, n.Name), token.ConstructDeclName)), params)
	if !isUnitResult(n.Signature.Result) {
		sig = token.Concat(sig, token.Of(delim(n, ":"), sp(n)), t.typ(ctx, n.Signature.Result))
	}
	if where := t.whereClause(ctx, n, n.Where); len(where) > 0 {
		sig = token.Concat(sig, token.Of(sp(n)), where)
	}

	out := sig
	if n.Body != nil {
		out = token.Concat(out, token.Of(sp(n)), t.functionBody(ctx, n))
	}
	if t.policy.IsTestFunction(n.Name) && t.policy.TestAnnotation != "" {
		out = token.Prefix(out, kw(n, t.policy.TestAnnotation), br(n))
	}
	return declStart(n, out)
}

// functionBody renders `= expr` for a single non-branching statement of a
// function with a result, and a block otherwise.
func (t *Translator) functionBody(ctx *Context, n *core.FunctionDecl) token.Seq {
	if !isUnitResult(n.Signature.Result) && len(n.Body.Statements) == 1 {
		if e := singleExpression(n.Body.Statements[0]); e != nil {
			return token.Concat(token.Of(sym(n, "="), sp(n)), t.initValue(ctx.Enter(n.Body), n, n.Signature.Result, e))
		}
	}
	return t.block(ctx, n.Body)
}

func (t *Translator) initializer(ctx *Context, n *core.InitializerDecl) token.Seq {
	params := t.parameters(ctx, n, n.Params)
	head := token.Concat(t.declHead(n, n.Attributes, n.Modifiers.Without(core.ModOverride), "constructor"), params)

	var stmts []core.Stmt
	if n.Body != nil {
		stmts = n.Body.Statements
	}
	if len(stmts) > 0 {
		if keyword, call, ok := delegation(stmts[0]); ok {
			args := t.arguments(ctx.Enter(n.Body).Enter(call), call, call.Args)
			head = token.Concat(head, token.Of(sp(n), delim(n, ":"), sp(n), kw(call, keyword)), wrap(call, args, "(", ")"))
			stmts = stmts[1:]
		}
	}

	out := head
	if len(stmts) > 0 {
		body := &core.CodeBlock{NodeInfo: n.Body.NodeInfo, Statements: stmts}
		out = token.Concat(out, token.Of(sp(n)), t.block(ctx, body))
	} else if n.Body != nil && len(n.Body.Statements) == 0 {
		out = token.Concat(out, token.Of(sp(n)), t.block(ctx, n.Body))
	}
	if n.Kind != core.InitNonFailable {
		out = t.unsupported(n, "failable initializers are not supported", out)
	}
	return declStart(n, out)
}

// delegation recognizes a leading `super.init(...)` or `self.init(...)`.
func delegation(s core.Stmt) (string, *core.FunctionCallExpr, bool) {
	call, ok := s.(*core.FunctionCallExpr)
	if !ok {
		return "", nil, false
	}
	switch callee := call.Callee.(type) {
	case *core.SuperExpr:
		if callee.Init {
			return "super", call, true
		}
	case *core.SelfExpr:
		if callee.Init {
			return "this", call, true
		}
	}
	return "", nil, false
}
