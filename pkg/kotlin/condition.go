package kotlin

import (
	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// conditionList renders `(c1 && c2)`.
func (t *Translator) conditionList(ctx *Context, n core.Node, conds []core.Condition) token.Seq {
	parts := make([]token.Seq, len(conds))
	for i, c := range conds {
		parts[i] = t.condition(ctx, c)
	}
	return wrap(n, token.Join(parts, sp(n), sym(n, "&&"), sp(n)), "(", ")")
}

// invertedConditionList renders the negation of a condition list, using
// De Morgan's law to distribute it over the conditions.
func (t *Translator) invertedConditionList(ctx *Context, n core.Node, conds []core.Condition) token.Seq {
	parts := make([]token.Seq, len(conds))
	for i, c := range conds {
		parts[i] = invert(c, t.condition(ctx, c))
	}
	return wrap(n, token.Join(parts, sp(n), sym(n, "||"), sp(n)), "(", ")")
}

func (t *Translator) condition(ctx *Context, c core.Condition) token.Seq {
	inner := ctx.Enter(c)
	switch n := c.(type) {
	case *core.ExprCondition:
		return t.expr(inner, n.Expr)
	case *core.BindingCondition:
		name := core.PatternName(n.Pattern)
		if name == "" {
			return t.unsupported(n, "destructuring optional bindings are not supported", t.swiftPattern(inner, n.Pattern))
		}
		return token.Of(ident(n, name), sp(n), marked(sym(n, "!="), token.ConstructCondition), sp(n), kw(n, "null"))
	case *core.CaseCondition:
		subject := t.expr(inner, n.Init)
		switch p := n.Pattern.(type) {
		case *core.EnumCasePattern:
			if p.Payload != nil {
				return token.Concat(subject, token.Of(sp(n), marked(kw(n, "is"), token.ConstructTypeCast), sp(n)), enumCaseName(p))
			}
			return token.Concat(subject, token.Of(sp(n), marked(sym(n, "=="), token.ConstructCondition), sp(n)), enumCaseName(p))
		case *core.ExpressionPattern:
			return token.Concat(subject, token.Of(sp(n), marked(sym(n, "=="), token.ConstructCondition), sp(n)), t.expr(inner, p.Expr))
		}
		return t.unsupported(n, "case condition pattern is not supported", t.swiftPattern(inner, n.Pattern))
	}
	panic("kotlin: unhandled condition")
}

// hoistBindings renders the optional bindings of conds as local
// declarations placed ahead of the statement that tests them.
func (t *Translator) hoistBindings(ctx *Context, conds []core.Condition) token.Seq {
	var decls []token.Seq
	for _, c := range conds {
		b, ok := c.(*core.BindingCondition)
		if !ok || core.PatternName(b.Pattern) == "" {
			continue
		}
		decls = append(decls, t.binding(ctx.Enter(b), b))
	}
	return lines(nil, decls...)
}

// binding renders `val name[: T] = init`.
func (t *Translator) binding(ctx *Context, b *core.BindingCondition) token.Seq {
	keyword := "val"
	if b.IsVar {
		keyword = "var"
	}
	out := token.Of(kw(b, keyword), sp(b), ident(b, core.PatternName(b.Pattern)))
	out = token.Concat(out, t.annotation(ctx, b, core.PatternType(b.Pattern)))
	if b.Init != nil {
		out = token.Concat(out, token.Of(sp(b), sym(b, "="), sp(b)), t.expr(ctx, b.Init))
	}
	return out
}

var inversions = map[string]string{
	"==":  "!=",
	"!=":  "==",
	"===": "!==",
	"!==": "===",
	">":   "<=",
	"<=":  ">",
	">=":  "<",
	"<":   ">=",
	"is":  "!is",
	"!is": "is",
}

var connectives = map[string]string{
	"&&": "||",
	"||": "&&",
}

// invertible reports whether tk was produced by an operator construct
// that inversion may rewrite.
func invertible(tk token.Token) bool {
	switch tk.Origin.Construct {
	case token.ConstructBinaryOperator, token.ConstructSequence,
		token.ConstructCondition, token.ConstructTypeCast:
		return true
	}
	return false
}

// invert negates one rendered condition in a single pass over its
// top-level tokens. Each connective group either absorbs the negation
// into its comparison operator, cancels a leading `!`, or gets a `!`
// inserted in front of it.
func invert(n core.Node, s token.Seq) token.Seq {
	if mixedConnectives(s) {
		return token.Prefix(wrap(n, s, "(", ")"), marked(sym(n, "!"), token.ConstructPrefixOperator))
	}

	out := make(token.Seq, 0, len(s)+2)
	depth := 0
	groupStart := 0
	atStart := true
	absorbed := false

	closeGroup := func() {
		if !absorbed {
			out = token.Insert(out, groupStart, token.Of(marked(sym(n, "!"), token.ConstructPrefixOperator)))
		}
	}

	for _, tk := range s {
		switch {
		case tk.Kind == token.StartOfScope:
			depth++
		case tk.Kind == token.EndOfScope:
			depth--
		case depth > 0, tk.Kind == token.Space:
		case invertible(tk) && connectives[tk.Value] != "":
			closeGroup()
			tk.Value = connectives[tk.Value]
			out = append(out, tk)
			groupStart, atStart, absorbed = len(out), true, false
			continue
		case atStart && tk.Kind == token.Symbol && tk.Value == "!" && tk.Origin.Construct == token.ConstructPrefixOperator:
			absorbed, atStart = true, false
			continue
		case invertible(tk) && inversions[tk.Value] != "" && !absorbed:
			tk.Value = inversions[tk.Value]
			absorbed = true
		}

		if atStart && tk.Kind == token.Space {
			out = append(out, tk)
			groupStart = len(out)
			continue
		}
		atStart = false
		out = append(out, tk)
	}
	closeGroup()
	return out
}

// mixedConnectives reports whether s combines && and || at top level,
// where distributing a negation would change precedence.
func mixedConnectives(s token.Seq) bool {
	seen := map[string]bool{}
	for _, tk := range token.OuterScope(s) {
		if invertible(tk) && connectives[tk.Value] != "" {
			seen[tk.Value] = true
		}
	}
	return len(seen) > 1
}
