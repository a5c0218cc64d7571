package kotlin

import (
	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

func (t *Translator) call(ctx *Context, n *core.FunctionCallExpr) token.Seq {
	callee := t.expr(ctx, n.Callee)
	switch n.Callee.(type) {
	case *core.OptionalChainingExpr, *core.ForcedValueExpr:
		callee = token.Suffix(callee, delim(n, "."), ident(n, "invoke"))
	}

	out := callee
	if len(n.Args) > 0 || n.Trailing == nil {
		var args token.Seq
		if !t.policy.DropsArguments(calleeName(n.Callee)) {
			args = t.arguments(ctx, n, n.Args)
		}
		out = token.Concat(out, wrap(n, args, "(", ")"))
	}
	if n.Trailing != nil {
		out = token.Concat(out, token.Of(sp(n)), t.expr(ctx, n.Trailing))
	}
	return t.renames.Apply(out)
}

// arguments renders a call argument list as named arguments.
func (t *Translator) arguments(ctx *Context, n core.Node, args []core.Argument) token.Seq {
	parts := make([]token.Seq, len(args))
	for i, a := range args {
		value := t.expr(ctx, a.Value)
		if a.Label == "" || t.policy.DropsLabel(a.Label) {
			parts[i] = value
			continue
		}
		parts[i] = token.Concat(token.Of(ident(n, a.Label), sp(n), delim(n, "="), sp(n)), value)
	}
	return commaList(n, parts)
}

// calleeName returns the name a call is made through.
func calleeName(e core.Expr) string {
	switch c := e.(type) {
	case *core.IdentifierExpr:
		return c.Name
	case *core.ExplicitMemberExpr:
		return c.Member
	}
	return ""
}

func (t *Translator) closure(ctx *Context, n *core.ClosureExpr) token.Seq {
	var head token.Seq
	if sig := n.Signature; sig != nil && len(sig.Params) > 0 {
		names := make([]token.Seq, len(sig.Params))
		for i, p := range sig.Params {
			names[i] = token.Of(ident(n, p.Name))
		}
		head = token.Suffix(commaList(n, names), sp(n), sym(n, "->"))
	}

	body := make([]token.Seq, len(n.Statements))
	for i, s := range n.Statements {
		if ret, ok := s.(*core.ReturnStmt); ok && i == len(n.Statements)-1 && ret.Value != nil {
			body[i] = t.expr(ctx.Enter(ret), ret.Value)
			continue
		}
		body[i] = token.TrimLeadingBreaks(t.stmt(ctx, s))
	}
	joined := lines(n, body...)

	if len(joined) == 0 {
		if len(head) == 0 {
			return token.Of(open(n, "{"), closing(n, "}"))
		}
		return token.Concat(token.Of(open(n, "{"), sp(n)), head, token.Of(sp(n), closing(n, "}")))
	}
	if len(n.Statements) == 1 && !joined.Contains(token.KindIs(token.Linebreak)) {
		return token.Concat(token.Of(open(n, "{"), sp(n)), words(n, head, joined), token.Of(sp(n), closing(n, "}")))
	}

	opening := token.Of(open(n, "{"))
	if len(head) > 0 {
		opening = token.Concat(token.Of(open(n, "{"), sp(n)), head)
	}
	return token.Concat(opening, token.Indent(token.Prefix(joined, br(n))), token.Of(br(n), closing(n, "}")))
}

// returnLabel returns the label a return inside a lambda must carry, or ""
// when a plain return is correct.
func returnLabel(ctx *Context) string {
	scope := ctx.Find(isFunctionBoundary, nil)
	if scope == nil {
		return ""
	}
	closure, ok := scope.Node().(*core.ClosureExpr)
	if !ok {
		return ""
	}
	call, ok := scope.Outer().Node().(*core.FunctionCallExpr)
	if !ok || call.Trailing != closure {
		return ""
	}
	return calleeName(call.Callee)
}
