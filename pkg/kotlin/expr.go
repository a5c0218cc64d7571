package kotlin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

var binaryOps = map[string]string{
	"..<": "until",
	"...": "..",
	"??":  "?:",
}

// reservedMembers are member names with a fixed Kotlin spelling wherever
// they are accessed.
var reservedMembers = map[string]string{
	"isNilOrEmpty":   "isNullOrEmpty()",
	"sharedInstance": "instance",
}

func (t *Translator) expr(ctx *Context, e core.Expr) token.Seq {
	inner := ctx.Enter(e)
	switch n := e.(type) {
	case *core.IdentifierExpr:
		return token.Concat(token.Of(ident(n, n.Name)), t.typeArgs(inner, n, n.GenericArgs...))
	case *core.ImplicitParamExpr:
		if n.Index == 0 {
			return token.Of(ident(n, "it"))
		}
		return t.unsupported(n, "implicit closure parameters beyond $0 are not supported",
			token.Of(ident(n, fmt.Sprintf("$%d", n.Index))))
	case *core.LiteralExpr:
		return t.literal(ctx, n)
	case *core.SelfExpr:
		return selfOrSuper(n, "this", n.Member)
	case *core.SuperExpr:
		return selfOrSuper(n, "super", n.Member)
	case *core.ImplicitMemberExpr:
		return token.Of(ident(n, capitalize(n.Name)))
	case *core.ExplicitMemberExpr:
		return t.memberAccess(inner, n)
	case *core.FunctionCallExpr:
		return t.call(inner, n)
	case *core.ClosureExpr:
		return t.closure(inner, n)
	case *core.BinaryExpr:
		return t.binary(inner, n)
	case *core.PrefixExpr:
		op := sym(n, n.Op)
		if n.Op == "!" {
			op = marked(op, token.ConstructPrefixOperator)
		}
		return token.Prefix(t.expr(inner, n.Operand), op)
	case *core.PostfixExpr:
		return token.Suffix(t.expr(inner, n.Operand), sym(n, n.Op))
	case *core.AssignExpr:
		right := t.expr(inner, n.Right)
		if _, discard := n.Left.(*core.WildcardExpr); discard {
			return right
		}
		return token.Concat(t.expr(inner, n.Left), token.Of(sp(n), sym(n, "="), sp(n)), right)
	case *core.SequenceExpr:
		return t.sequence(inner, n)
	case *core.TernaryExpr:
		return token.Concat(
			token.Of(kw(n, "if"), sp(n)),
			wrap(n, t.expr(inner, n.Cond), "(", ")"),
			token.Of(sp(n)),
			t.expr(inner, n.True),
			token.Of(sp(n), kw(n, "else"), sp(n)),
			t.expr(inner, n.False),
		)
	case *core.TryExpr:
		if n.Kind != core.TryOptional {
			return t.expr(inner, n.Expr)
		}
		return t.tryOptional(inner, n)
	case *core.ForcedValueExpr:
		return token.Suffix(t.expr(inner, n.Expr), sym(n, "!!"))
	case *core.OptionalChainingExpr:
		base := t.expr(inner, n.Expr)
		if last, ok := base.Last(); ok && last.Value == "this" {
			return base
		}
		return token.Suffix(base, marked(sym(n, "?"), token.ConstructOptionalChaining))
	case *core.TypeCastExpr:
		return token.Concat(t.expr(inner, n.Expr), token.Of(sp(n)), t.castOp(inner, n, n.Kind, n.Type))
	case *core.ParenExpr:
		return wrap(n, t.expr(inner, n.Expr), "(", ")")
	case *core.TupleExpr:
		return t.tuple(inner, n)
	case *core.SubscriptExpr:
		return token.Concat(t.expr(inner, n.Base), wrap(n, t.arguments(inner, n, n.Args), "[", "]"))
	case *core.WildcardExpr:
		return token.Of(ident(n, "_"))
	case *core.RawExpr:
		return token.Of(ident(n, n.Text))
	}
	panic(fmt.Sprintf("kotlin: unhandled expression %T", e))
}

func selfOrSuper(n core.Node, keyword, member string) token.Seq {
	out := token.Of(kw(n, keyword))
	if member != "" {
		out = token.Suffix(out, delim(n, "."), ident(n, member))
	}
	return out
}

func (t *Translator) memberAccess(ctx *Context, n *core.ExplicitMemberExpr) token.Seq {
	base := t.expr(ctx, n.Base)
	if n.Member == "init" || t.policy.ElidesMember(n.Member) {
		return base
	}
	member := n.Member
	if v, ok := reservedMembers[member]; ok {
		member = v
	}
	dot := delim(n, ".")
	if chainsOptional(base) {
		dot = marked(delim(n, "?."), token.ConstructOptionalChaining)
	}
	return token.Concat(base, token.Of(dot, ident(n, member)), t.typeArgs(ctx, n, n.GenericArgs...))
}

// chainsOptional reports whether a member access on base must use a safe
// call because an optional link appears earlier in the same chain.
func chainsOptional(base token.Seq) bool {
	last, ok := base.Last()
	if !ok || last.Value == "?" {
		return false
	}
	return token.OuterScope(base).Contains(func(tk token.Token) bool {
		return tk.Origin.Construct == token.ConstructOptionalChaining
	})
}

func (t *Translator) binary(ctx *Context, n *core.BinaryExpr) token.Seq {
	left, right := t.expr(ctx, n.Left), t.expr(ctx, n.Right)
	op := n.Op
	if mapped, ok := binaryOps[op]; ok {
		op = mapped
	}
	opTok := marked(sym(n, op), token.ConstructBinaryOperator)
	if op == ".." {
		return token.Concat(left, token.Of(opTok), right)
	}
	return token.Concat(left, token.Of(sp(n), opTok, sp(n)), right)
}

func (t *Translator) castOp(ctx *Context, n core.Node, kind core.CastKind, typ core.Type) token.Seq {
	var op token.Token
	switch kind {
	case core.CastCheck:
		op = marked(kw(n, "is"), token.ConstructTypeCast)
	case core.CastConditional:
		op = kw(n, "as?")
	default:
		op = kw(n, "as")
	}
	return token.Concat(token.Of(op, sp(n)), t.typ(ctx, typ))
}

// sequence renders a flat operator sequence. A ternary element turns the
// part after the assignment into an if expression.
func (t *Translator) sequence(ctx *Context, n *core.SequenceExpr) token.Seq {
	parts := make([]token.Seq, len(n.Elements))
	assignIdx, ternIdx := -1, -1
	for i, el := range n.Elements {
		switch el.Kind {
		case core.SeqExpr:
			parts[i] = t.expr(ctx, el.Expr)
		case core.SeqBinaryOp:
			op := el.Op
			if mapped, ok := binaryOps[op]; ok {
				op = mapped
			}
			parts[i] = token.Of(marked(sym(n, op), token.ConstructSequence))
		case core.SeqAssign:
			parts[i] = token.Of(sym(n, "="))
			if assignIdx < 0 {
				assignIdx = i
			}
		case core.SeqTernary:
			parts[i] = token.Suffix(t.expr(ctx, el.Expr), sp(n), kw(n, "else"))
			if ternIdx < 0 {
				ternIdx = i
			}
		case core.SeqCast:
			parts[i] = t.castOp(ctx, n, el.Cast, el.Type)
		}
	}

	if ternIdx > 0 && assignIdx+1 < ternIdx {
		start := assignIdx + 1
		parts[start] = token.Prefix(parts[start], kw(n, "if"), sp(n), open(n, "("))
		parts[ternIdx-1] = token.Suffix(parts[ternIdx-1], closing(n, ")"))
	}
	return token.Join(parts, sp(n))
}

func (t *Translator) tryOptional(ctx *Context, n *core.TryExpr) token.Seq {
	return token.Concat(
		token.Of(kw(n, "try"), sp(n), open(n, "{"), sp(n)),
		t.expr(ctx, n.Expr),
		token.Of(sp(n), closing(n, "}"), sp(n), kw(n, "catch"), sp(n)),
		wrap(n, token.Of(ident(n, "e"), delim(n, ":"), sp(n), ident(n, "Throwable")), "(", ")"),
		token.Of(sp(n), open(n, "{"), sp(n), kw(n, "null"), sp(n), closing(n, "}")),
	)
}

func (t *Translator) tuple(ctx *Context, n *core.TupleExpr) token.Seq {
	switch len(n.Elements) {
	case 0:
		return token.Of(ident(n, "Unit"))
	case 1:
		return wrap(n, t.expr(ctx, n.Elements[0].Value), "(", ")")
	case 2:
		parts := []token.Seq{t.expr(ctx, n.Elements[0].Value), t.expr(ctx, n.Elements[1].Value)}
		return token.Prefix(wrap(n, commaList(n, parts), "(", ")"), ident(n, "Pair"))
	}
	return t.unsupported(n, "tuples with more than two elements are not supported",
		wrap(n, t.arguments(ctx, n, n.Elements), "(", ")"))
}

func (t *Translator) literal(ctx *Context, n *core.LiteralExpr) token.Seq {
	inner := ctx.Enter(n)
	switch n.Kind {
	case core.LiteralNil:
		return token.Of(kw(n, "null"))
	case core.LiteralBool:
		return token.Of(kw(n, n.Value))
	case core.LiteralInteger:
		return token.Of(tok(n, token.Identifier, integerLiteral(n.Value)))
	case core.LiteralFloat:
		return token.Of(tok(n, token.Identifier, n.Value))
	case core.LiteralStaticString, core.LiteralInterpolatedString:
		return t.stringLiteral(inner, n)
	case core.LiteralArray:
		if isCallee(ctx, n) {
			return t.genericConstructor(inner, n, "mutableListOf", n.Elements...)
		}
		parts := make([]token.Seq, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = t.expr(inner, el)
		}
		return token.Prefix(wrap(n, commaList(n, parts), "(", ")"), ident(n, "mutableListOf"))
	case core.LiteralDictionary:
		if isCallee(ctx, n) && len(n.Entries) == 1 {
			return t.genericConstructor(inner, n, "mutableMapOf", n.Entries[0].Key, n.Entries[0].Value)
		}
		parts := make([]token.Seq, len(n.Entries))
		for i, entry := range n.Entries {
			parts[i] = token.Concat(t.expr(inner, entry.Key), token.Of(sp(n), kw(n, "to"), sp(n)), t.expr(inner, entry.Value))
		}
		return token.Prefix(wrap(n, commaList(n, parts), "(", ")"), ident(n, "mutableMapOf"))
	}
	panic(fmt.Sprintf("kotlin: unhandled literal kind %d", n.Kind))
}

// genericConstructor renders a collection literal in type position, as in
// `[String]()`, where the elements name types.
func (t *Translator) genericConstructor(ctx *Context, n core.Node, fn string, elems ...core.Expr) token.Seq {
	parts := make([]token.Seq, len(elems))
	for i, el := range elems {
		if id, ok := el.(*core.IdentifierExpr); ok {
			parts[i] = t.typ(ctx, core.NamedType(id.Name, id.GenericArgs...))
			continue
		}
		parts[i] = t.expr(ctx, el)
	}
	return token.Prefix(wrap(n, commaList(n, parts), "<", ">"), ident(n, fn))
}

// isCallee reports whether e is the callee of the enclosing call.
func isCallee(ctx *Context, e core.Expr) bool {
	call, ok := ctx.Node().(*core.FunctionCallExpr)
	return ok && call.Callee == e
}

// integerLiteral converts octal literals, which Kotlin lacks, to decimal.
func integerLiteral(v string) string {
	if !strings.HasPrefix(v, "0o") {
		return v
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(v[2:], "_", ""), 8, 64)
	if err != nil {
		return v
	}
	return strconv.FormatInt(n, 10)
}
