package kotlin

import (
	"fmt"

	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

func (t *Translator) stmt(ctx *Context, s core.Stmt) token.Seq {
	switch n := s.(type) {
	case core.Decl:
		return t.decl(ctx, n)
	case core.Expr:
		return t.expr(ctx, n)
	}

	inner := ctx.Enter(s)
	switch n := s.(type) {
	case *core.IfStmt:
		return lines(n, t.hoistIfChain(inner, n), t.ifChain(inner, n))
	case *core.GuardStmt:
		return t.guard(inner, n)
	case *core.SwitchStmt:
		return t.switchStmt(inner, n)
	case *core.ForInStmt:
		return t.forIn(inner, n)
	case *core.WhileStmt:
		out := token.Concat(token.Of(kw(n, "while"), sp(n)), t.conditionList(inner, n, n.Conditions), token.Of(sp(n)), t.block(inner, n.Body))
		for _, c := range n.Conditions {
			if _, ok := c.(*core.BindingCondition); ok {
				return t.unsupported(n, "optional bindings in while conditions are not supported", out)
			}
		}
		return out
	case *core.RepeatWhileStmt:
		return token.Concat(
			token.Of(kw(n, "do"), sp(n)),
			t.block(inner, n.Body),
			token.Of(sp(n), kw(n, "while"), sp(n)),
			wrap(n, t.expr(inner, n.Condition), "(", ")"),
		)
	case *core.ReturnStmt:
		keyword := "return"
		if label := returnLabel(ctx); label != "" {
			keyword += "@" + label
		}
		out := token.Of(marked(kw(n, keyword), token.ConstructReturn))
		if n.Value != nil {
			out = token.Concat(out, token.Of(sp(n)), t.expr(inner, n.Value))
		}
		return out
	case *core.ThrowStmt:
		return token.Concat(token.Of(kw(n, "throw"), sp(n)), t.expr(inner, n.Value))
	case *core.BreakStmt:
		return token.Of(kw(n, jump("break", n.Label)))
	case *core.ContinueStmt:
		return token.Of(kw(n, jump("continue", n.Label)))
	case *core.FallthroughStmt:
		return t.unsupported(n, "fallthrough is not supported", token.Of(kw(n, "fallthrough")))
	case *core.DeferStmt:
		return t.unsupported(n, "defer is not supported",
			token.Concat(token.Of(kw(n, "defer"), sp(n)), t.block(inner, n.Body)))
	case *core.DoStmt:
		return t.doStmt(inner, n)
	case *core.LabeledStmt:
		return token.Concat(token.Of(ident(n, n.Label+"@"), sp(n)), token.TrimLeadingBreaks(t.stmt(inner, n.Stmt)))
	case *core.RawStmt:
		return token.Of(ident(n, n.Text))
	}
	panic(fmt.Sprintf("kotlin: unhandled statement %T", s))
}

func jump(keyword, label string) string {
	if label == "" {
		return keyword
	}
	return keyword + "@" + label
}

// statements renders a statement list, one statement per line.
func (t *Translator) statements(ctx *Context, n core.Node, stmts []core.Stmt) token.Seq {
	parts := make([]token.Seq, len(stmts))
	for i, s := range stmts {
		parts[i] = token.TrimLeadingBreaks(t.stmt(ctx, s))
	}
	return lines(n, parts...)
}

// block renders a braced code block.
func (t *Translator) block(ctx *Context, b *core.CodeBlock) token.Seq {
	if b == nil {
		return token.Of(open(nil, "{"), closing(nil, "}"))
	}
	return braced(b, t.statements(ctx.Enter(b), b, b.Statements))
}

func (t *Translator) hoistIfChain(ctx *Context, n *core.IfStmt) token.Seq {
	var conds []core.Condition
	for link := n; link != nil; link = link.ElseIf {
		conds = append(conds, link.Conditions...)
	}
	return t.hoistBindings(ctx, conds)
}

func (t *Translator) ifChain(ctx *Context, n *core.IfStmt) token.Seq {
	out := token.Concat(
		token.Of(kw(n, "if"), sp(n)),
		t.conditionList(ctx, n, n.Conditions),
		token.Of(sp(n)),
		t.block(ctx, n.Body),
	)
	switch {
	case n.ElseIf != nil:
		out = token.Concat(out, token.Of(sp(n), kw(n, "else"), sp(n)), t.ifChain(ctx.Enter(n.ElseIf), n.ElseIf))
	case n.Else != nil:
		out = token.Concat(out, token.Of(sp(n), kw(n, "else"), sp(n)), t.block(ctx, n.Else))
	}
	return out
}

func (t *Translator) guard(ctx *Context, n *core.GuardStmt) token.Seq {
	if out, ok := t.elvisGuard(ctx, n); ok {
		return out
	}
	return lines(n,
		t.hoistBindings(ctx, n.Conditions),
		token.Concat(
			token.Of(kw(n, "if"), sp(n)),
			t.invertedConditionList(ctx, n, n.Conditions),
			token.Of(sp(n)),
			t.block(ctx, n.Body),
		),
	)
}

// elvisGuard renders a guard that unwraps one value and fails with a
// single statement as `val x = value ?: failure`.
func (t *Translator) elvisGuard(ctx *Context, n *core.GuardStmt) (token.Seq, bool) {
	if len(n.Conditions) != 1 || n.Body == nil || len(n.Body.Statements) != 1 {
		return nil, false
	}
	b, ok := n.Conditions[0].(*core.BindingCondition)
	if !ok || b.Init == nil || core.PatternName(b.Pattern) == "" {
		return nil, false
	}
	failure := token.TrimLeadingBreaks(t.stmt(ctx.Enter(n.Body), n.Body.Statements[0]))
	if failure.Contains(token.KindIs(token.Linebreak)) {
		return nil, false
	}
	return token.Concat(
		t.binding(ctx.Enter(b), b),
		token.Of(sp(n), sym(n, "?:"), sp(n)),
		failure,
	), true
}

func (t *Translator) switchStmt(ctx *Context, n *core.SwitchStmt) token.Seq {
	cases := make([]token.Seq, len(n.Cases))
	for i, c := range n.Cases {
		cases[i] = t.switchCase(ctx.Enter(c), c)
	}
	return token.Concat(
		token.Of(kw(n, "when"), sp(n)),
		wrap(n, t.expr(ctx, n.Subject), "(", ")"),
		token.Of(sp(n)),
		braced(n, lines(n, cases...)),
	)
}

func (t *Translator) switchCase(ctx *Context, c *core.SwitchCase) token.Seq {
	var label token.Seq
	hasWhere := false
	if c.IsDefault {
		label = token.Of(kw(c, "else"))
	} else {
		parts := make([]token.Seq, len(c.Items))
		for i, item := range c.Items {
			parts[i] = t.casePattern(ctx, item.Pattern)
			hasWhere = hasWhere || item.Where != nil
		}
		label = commaList(c, parts)
	}

	out := token.Concat(label, token.Of(sp(c), sym(c, "->"), sp(c)), t.caseBody(ctx, c))
	if hasWhere {
		return t.unsupported(c, "where clauses in switch cases are not supported", out)
	}
	return out
}

func (t *Translator) caseBody(ctx *Context, c *core.SwitchCase) token.Seq {
	var stmts []core.Stmt
	for _, s := range c.Statements {
		if b, ok := s.(*core.BreakStmt); ok && b.Label == "" {
			continue
		}
		stmts = append(stmts, s)
	}
	if len(stmts) == 0 {
		return token.Of(open(c, "{"), closing(c, "}"))
	}
	body := t.statements(ctx, c, stmts)
	if len(stmts) == 1 && !body.Contains(token.KindIs(token.Linebreak)) {
		return body
	}
	return braced(c, body)
}

func (t *Translator) casePattern(ctx *Context, p core.Pattern) token.Seq {
	inner := ctx.Enter(p)
	switch n := p.(type) {
	case *core.ExpressionPattern:
		if bin, ok := n.Expr.(*core.BinaryExpr); ok && (bin.Op == "..." || bin.Op == "..<") {
			return token.Concat(token.Of(kw(n, "in"), sp(n)), t.expr(inner, n.Expr))
		}
		return t.expr(inner, n.Expr)
	case *core.EnumCasePattern:
		if n.Payload != nil {
			return token.Concat(token.Of(kw(n, "is"), sp(n)), enumCaseName(n))
		}
		return enumCaseName(n)
	case *core.WildcardPattern:
		return token.Of(kw(n, "else"))
	case *core.TypeCastPattern:
		if n.Pattern == nil {
			return token.Concat(token.Of(kw(n, "is"), sp(n)), t.typ(inner, n.Type))
		}
	}
	return t.unsupported(p, "binding patterns in switch cases are not supported", t.swiftPattern(ctx, p))
}

// enumCaseName renders the capitalized case name, qualified by its type
// when the pattern names one.
func enumCaseName(p *core.EnumCasePattern) token.Seq {
	name := token.Of(ident(p, capitalize(p.Name)))
	if p.Type == nil {
		return name
	}
	return token.Concat(swiftType(p.Type), token.Of(delim(p, ".")), name)
}

func (t *Translator) forIn(ctx *Context, n *core.ForInStmt) token.Seq {
	body := n.Body
	if n.Where != nil {
		body = &core.CodeBlock{
			NodeInfo: n.NodeInfo,
			Statements: []core.Stmt{&core.IfStmt{
				NodeInfo:   n.NodeInfo,
				Conditions: []core.Condition{&core.ExprCondition{NodeInfo: n.NodeInfo, Expr: n.Where}},
				Body:       n.Body,
			}},
		}
	}
	header := token.Concat(t.loopPattern(ctx, n.Pattern), token.Of(sp(n), kw(n, "in"), sp(n)), t.expr(ctx, n.Collection))
	return token.Concat(
		token.Of(kw(n, "for"), sp(n)),
		wrap(n, header, "(", ")"),
		token.Of(sp(n)),
		t.block(ctx, body),
	)
}

func (t *Translator) loopPattern(ctx *Context, p core.Pattern) token.Seq {
	switch n := p.(type) {
	case *core.IdentifierPattern:
		return token.Of(ident(n, n.Name))
	case *core.WildcardPattern:
		return token.Of(ident(n, "_"))
	case *core.ValueBindingPattern:
		return t.loopPattern(ctx, n.Pattern)
	case *core.TuplePattern:
		parts := make([]token.Seq, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = t.loopPattern(ctx, el.Pattern)
		}
		return wrap(n, commaList(n, parts), "(", ")")
	}
	return t.unsupported(p, "loop pattern is not supported", t.swiftPattern(ctx, p))
}

func (t *Translator) doStmt(ctx *Context, n *core.DoStmt) token.Seq {
	if len(n.Catches) == 0 {
		return token.Concat(token.Of(kw(n, "run"), sp(n)), t.block(ctx, n.Body))
	}
	out := token.Concat(token.Of(kw(n, "try"), sp(n)), t.block(ctx, n.Body))
	for _, c := range n.Catches {
		name, caught, ok := catchBinding(c.Pattern)
		typ := token.Of(ident(n, "Throwable"))
		if caught != nil {
			typ = t.typ(ctx, caught)
		}
		if !ok {
			t.logger.Debug("catch pattern replaced by Throwable", "node", n.ID)
		}
		out = token.Concat(out,
			token.Of(sp(n), kw(n, "catch"), sp(n)),
			wrap(n, token.Concat(token.Of(ident(n, name), delim(n, ":"), sp(n)), typ), "(", ")"),
			token.Of(sp(n)),
			t.block(ctx, c.Body),
		)
	}
	return out
}

// catchBinding extracts the bound name and caught type of a catch pattern.
// A nil type means Throwable. ok is false for patterns that only bind
// part of the error.
func catchBinding(p core.Pattern) (name string, caught core.Type, ok bool) {
	switch n := p.(type) {
	case nil:
		return "e", nil, true
	case *core.IdentifierPattern:
		return n.Name, nil, true
	case *core.ValueBindingPattern:
		return catchBinding(n.Pattern)
	case *core.TypeCastPattern:
		name := "e"
		if n.Pattern != nil {
			name = core.PatternName(n.Pattern)
		}
		if name == "" {
			return "e", nil, false
		}
		return name, n.Type, true
	}
	return "e", nil, false
}
