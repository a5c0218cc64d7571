package kotlin_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/swiftkt/internal/testutil"
	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/format"
	"github.com/leapstack-labs/swiftkt/pkg/kotlin"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		tr, err := kotlin.New(kotlin.Config{})
		require.NoError(t, err)
		assert.Equal(t, kotlin.DefaultRenames(), tr.Renames())
	})

	t.Run("invalid policy", func(t *testing.T) {
		policy := kotlin.DefaultPolicy()
		policy.BridgeTemplate = "{{.Name"
		_, err := kotlin.New(kotlin.Config{Policy: policy})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid policy: bridge_template")
	})
}

func TestTranslate_KeepsSourceOrder(t *testing.T) {
	f := &core.File{Name: "order"}
	var want []string
	for i := range 20 {
		name := fmt.Sprintf("v%d", i)
		f.Statements = append(f.Statements, let(pat(name), intLit(fmt.Sprint(i))))
		want = append(want, fmt.Sprintf("val %s = %d", name, i))
	}

	tr := newTranslator(t, kotlin.Config{Workers: 4})
	out, err := tr.Translate(context.Background(), f)
	require.NoError(t, err)

	var got []string
	for _, l := range format.Lines(out) {
		if l != "" {
			got = append(got, l)
		}
	}
	assert.Equal(t, want, got)
}

func TestTranslate_ScopesBalance(t *testing.T) {
	f := &core.File{Statements: []core.Stmt{
		&core.ClassDecl{Name: "A", Members: []core.Decl{
			fn("f", block(&core.IfStmt{Conditions: []core.Condition{cond(id("x"))}, Body: block(call(id("g")))})),
			let(pat("n"), intLit("1"), core.ModStatic),
		}},
		&core.EnumDecl{Name: "E", Cases: []*core.EnumCaseDecl{cases("a")}},
	}}

	out, err := newTranslator(t, kotlin.Config{}).Translate(context.Background(), f)
	require.NoError(t, err)
	assert.True(t, token.Balanced(out))
}

func TestTranslate_InvariantFailureReplacesOnlyTheItem(t *testing.T) {
	policy := kotlin.DefaultPolicy()
	policy.BridgeTemplate = "{{.Missing}}"
	logger, logs := testutil.NewCaptureLogger()
	tr := newTranslator(t, kotlin.Config{Policy: policy, Logger: logger})

	f := &core.File{Name: "broken", Statements: []core.Stmt{
		&core.ClassDecl{Name: "Item", Inheritance: []core.Type{named("DataObject")}},
		let(pat("x"), intLit("1")),
	}}
	out, err := tr.Translate(context.Background(), f)
	require.Error(t, err)

	var ie *kotlin.InvariantError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, kotlin.KindTemplate, ie.Kind)

	text := format.Render(out)
	assert.True(t, strings.HasPrefix(text, "//FIXME: @swiftkt - translation failed: bridge_template:"), text)
	assert.Contains(t, text, "\nval x = 1\n")
	assert.Contains(t, logs.String(), "invariant violated")
}

func TestTranslate_NestedFailureReplacesOnlyTheMember(t *testing.T) {
	policy := kotlin.DefaultPolicy()
	policy.BridgeTemplate = "{{.Missing}}"
	logger, logs := testutil.NewCaptureLogger()
	tr := newTranslator(t, kotlin.Config{Policy: policy, Logger: logger})

	outer := &core.StructDecl{Name: "Outer", Members: []core.Decl{
		&core.ClassDecl{Name: "Inner", Inheritance: []core.Type{named("DataObject")}},
		fn("keep", block()),
	}}
	f := &core.File{Name: "nested", Statements: []core.Stmt{outer, let(pat("x"), intLit("1"))}}

	out, err := tr.Translate(context.Background(), f)
	require.Error(t, err)

	var ie *kotlin.InvariantError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, kotlin.KindTemplate, ie.Kind)
	assert.Equal(t, "ClassDecl", ie.NodeKind)
	assert.True(t, strings.HasPrefix(ie.Error(), "ClassDecl: template: bridge_template:"), ie.Error())

	lines := format.Lines(out)
	require.Len(t, lines, 7)
	assert.Equal(t, "data class Outer {", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "    //FIXME: @swiftkt - translation failed: bridge_template:"), lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "    fun keep() {}", lines[3])
	assert.Equal(t, "}", lines[4])
	assert.Equal(t, "", lines[5])
	assert.Equal(t, "val x = 1", lines[6])
	assert.True(t, token.Balanced(out))
	assert.Contains(t, logs.String(), "invariant violated")
}

func TestTranslateNode_NestedFailureInExtension(t *testing.T) {
	policy := kotlin.DefaultPolicy()
	policy.BridgeTemplate = "{{.Missing}}"
	tr := newTranslator(t, kotlin.Config{Policy: policy})

	ext := &core.ExtensionDecl{Type: named("Foo"), Members: []core.Decl{
		&core.ClassDecl{Name: "Item", Inheritance: []core.Type{named("DataObject")}},
		fn("keep", block()),
	}}
	out, err := tr.TranslateNode(ext)
	require.Error(t, err)

	lines := format.Lines(out)
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "//FIXME: @swiftkt - translation failed: bridge_template:"), lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "fun Foo.keep() {}", lines[2])
}

func TestTranslate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &core.File{Name: "canceled", Statements: []core.Stmt{let(pat("x"), intLit("1"))}}
	out, err := newTranslator(t, kotlin.Config{}).Translate(ctx, f)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
}

func TestTranslateNode_ReturnsInvariantError(t *testing.T) {
	policy := kotlin.DefaultPolicy()
	policy.BridgeTemplate = "{{.Missing}}"
	tr := newTranslator(t, kotlin.Config{Policy: policy})

	out, err := tr.TranslateNode(&core.ClassDecl{Name: "Item", Inheritance: []core.Type{named("DataObject")}})
	var ie *kotlin.InvariantError
	require.True(t, errors.As(err, &ie))
	assert.Contains(t, ie.Error(), "template: ")
	require.Len(t, format.Lines(out), 1)
	assert.Equal(t, token.Comment, out[1].Kind)
}

func TestUnsupported_UsesToolNameAndLogs(t *testing.T) {
	logger, logs := testutil.NewCaptureLogger()
	tr := newTranslator(t, kotlin.Config{ToolName: "port", Logger: logger})

	got := renderWith(t, tr, &core.FallthroughStmt{})
	assert.Equal(t, "//FIXME: @port - fallthrough is not supported\nfallthrough", got)
	assert.Contains(t, logs.String(), "unsupported construct")
}

func TestInvariantError_Error(t *testing.T) {
	err := &kotlin.InvariantError{Node: "n1", NodeKind: "ClassDecl", Kind: kotlin.KindMissingAnchor, Message: "no closing brace"}
	assert.Equal(t, "node n1: missing-anchor: no closing brace", err.Error())

	err.Node = ""
	assert.Equal(t, "ClassDecl: missing-anchor: no closing brace", err.Error())
}

func TestTokens_CarryOrigins(t *testing.T) {
	decl := &core.FunctionDecl{NodeInfo: core.NodeInfo{ID: "fn-1"}, Name: "run", Body: block()}
	out, err := newTranslator(t, kotlin.Config{}).TranslateNode(decl)
	require.NoError(t, err)

	i := out.Index(func(tk token.Token) bool { return tk.Origin.Construct == token.ConstructDeclName })
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, "run", out[i].Value)
	assert.Equal(t, token.NodeID("fn-1"), out[i].Origin.Node)
}
