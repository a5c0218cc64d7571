package kotlin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/kotlin"
)

func TestPolicy_DropsLabel(t *testing.T) {
	p := kotlin.DefaultPolicy()
	tests := []struct {
		label string
		want  bool
	}{
		{"value", true},
		{"forKey", true},
		{"byName", true},
		{"withTimeout", true},
		{"count", false},
		{"values", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, p.DropsLabel(tt.label))
		})
	}
}

func TestPolicy_IsQueryBuilder(t *testing.T) {
	p := kotlin.DefaultPolicy()
	assert.True(t, p.IsQueryBuilder("whereClause", strLit("a = 1")))
	assert.False(t, p.IsQueryBuilder("whereClause", intLit("1")))
	assert.False(t, p.IsQueryBuilder("name", strLit("a")))
	assert.False(t, p.IsQueryBuilder("clause", nil))
	assert.False(t, p.IsQueryBuilder("clause", interp(`"\(x)"`)))

	p.QueryBuilderSubstring = ""
	assert.False(t, p.IsQueryBuilder("whereClause", strLit("a = 1")))
}

func TestPolicy_IsTestFunction(t *testing.T) {
	p := kotlin.DefaultPolicy()
	assert.True(t, p.IsTestFunction("testLogin"))
	assert.False(t, p.IsTestFunction("setUp"))

	p.TestPrefix = ""
	assert.False(t, p.IsTestFunction("testLogin"))
}

func TestPolicy_EmptyTestPrefixSkipsAnnotation(t *testing.T) {
	p := kotlin.DefaultPolicy()
	p.TestPrefix = ""
	tr := newTranslator(t, kotlin.Config{Policy: p})
	assert.Equal(t, "fun testLogin() {}", renderWith(t, tr, fn("testLogin", block())))
}

func TestPolicy_Supertypes(t *testing.T) {
	p := kotlin.DefaultPolicy()
	assert.True(t, p.IsSerializable([]core.Type{named("Hashable"), named("Codable")}))
	assert.False(t, p.IsSerializable([]core.Type{named("Hashable")}))
	assert.True(t, p.IsExcludedSupertype("Equatable"))
	assert.False(t, p.IsExcludedSupertype("Hashable"))
}

func TestPolicy_Bridge(t *testing.T) {
	p := kotlin.DefaultPolicy()
	p.BridgeTemplate = "fun make(): {{.Name}} = {{.Name}}()\n\nval kind = \"{{.Name}}\"\n"

	got, err := p.Bridge("Item")
	require.NoError(t, err)
	assert.Equal(t, []string{"fun make(): Item = Item()", "", `val kind = "Item"`}, got)

	p.BridgeTemplate = "{{.Missing}}"
	_, err = p.Bridge("Item")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bridge_template:")
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantErr  bool
	}{
		{name: "default", template: kotlin.DefaultPolicy().BridgeTemplate},
		{name: "empty", template: ""},
		{name: "unknown field parses", template: "{{.Missing}}"},
		{name: "unterminated action", template: "{{.Name", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := kotlin.DefaultPolicy()
			p.BridgeTemplate = tt.template
			err := p.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "bridge_template")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPolicy_CustomLabelsReachCalls(t *testing.T) {
	p := kotlin.DefaultPolicy()
	p.DroppedLabels = []string{"count"}
	p.DroppedLabelPrefixes = nil
	tr := newTranslator(t, kotlin.Config{Policy: p})

	got := renderWith(t, tr, call(id("f"), arg("count", intLit("1")), arg("forKey", strLit("k"))))
	assert.Equal(t, `f(1, forKey = "k")`, got)
}
