package kotlin_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/swiftkt/internal/testutil"
	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/format"
	"github.com/leapstack-labs/swiftkt/pkg/kotlin"
)

func newTranslator(t *testing.T, cfg kotlin.Config) *kotlin.Translator {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = testutil.NewTestLogger(t)
	}
	tr, err := kotlin.New(cfg)
	require.NoError(t, err)
	return tr
}

// render translates s with the default configuration and returns the
// text without its trailing newline.
func render(t *testing.T, s core.Stmt) string {
	t.Helper()
	return renderWith(t, newTranslator(t, kotlin.Config{}), s)
}

func renderWith(t *testing.T, tr *kotlin.Translator, s core.Stmt) string {
	t.Helper()
	out, err := tr.TranslateNode(s)
	require.NoError(t, err)
	return strings.TrimSuffix(format.Render(out), "\n")
}

func renderType(t *testing.T, typ core.Type) string {
	t.Helper()
	tr := newTranslator(t, kotlin.Config{})
	return strings.TrimSuffix(format.Render(tr.TranslateType(typ)), "\n")
}

// AST shorthands.

func id(name string) *core.IdentifierExpr { return &core.IdentifierExpr{Name: name} }

func intLit(v string) *core.LiteralExpr {
	return &core.LiteralExpr{Kind: core.LiteralInteger, Value: v}
}

func strLit(v string) *core.LiteralExpr {
	return &core.LiteralExpr{Kind: core.LiteralStaticString, Value: `"` + v + `"`}
}

func interp(raw string) *core.LiteralExpr {
	return &core.LiteralExpr{Kind: core.LiteralInterpolatedString, Value: raw}
}

func arrayLit(elems ...core.Expr) *core.LiteralExpr {
	return &core.LiteralExpr{Kind: core.LiteralArray, Elements: elems}
}

func named(name string, args ...core.Type) *core.TypeIdentifier { return core.NamedType(name, args...) }

func ann(typ core.Type) *core.TypeAnnotation { return &core.TypeAnnotation{Type: typ} }

func pat(name string) *core.IdentifierPattern { return &core.IdentifierPattern{Name: name} }

func typedPat(name string, typ core.Type) *core.IdentifierPattern {
	return &core.IdentifierPattern{Name: name, Type: ann(typ)}
}

func let(p core.Pattern, init core.Expr, mods ...core.Modifier) *core.ConstantDecl {
	return &core.ConstantDecl{
		Modifiers:    mods,
		Initializers: []core.PatternInitializer{{Pattern: p, Init: init}},
	}
}

func varDecl(p core.Pattern, init core.Expr, mods ...core.Modifier) *core.VariableDecl {
	return &core.VariableDecl{
		Modifiers: mods,
		Body: &core.InitializerListBody{
			Initializers: []core.PatternInitializer{{Pattern: p, Init: init}},
		},
	}
}

func block(stmts ...core.Stmt) *core.CodeBlock { return &core.CodeBlock{Statements: stmts} }

func call(callee core.Expr, args ...core.Argument) *core.FunctionCallExpr {
	return &core.FunctionCallExpr{Callee: callee, Args: args}
}

func arg(label string, v core.Expr) core.Argument { return core.Argument{Label: label, Value: v} }

func member(base core.Expr, name string) *core.ExplicitMemberExpr {
	return &core.ExplicitMemberExpr{Base: base, Member: name}
}

func bin(op string, l, r core.Expr) *core.BinaryExpr {
	return &core.BinaryExpr{Op: op, Left: l, Right: r}
}

func cond(e core.Expr) *core.ExprCondition { return &core.ExprCondition{Expr: e} }

func fn(name string, body *core.CodeBlock, params ...core.Parameter) *core.FunctionDecl {
	return &core.FunctionDecl{Name: name, Signature: core.Signature{Params: params}, Body: body}
}
