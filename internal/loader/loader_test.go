package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structDoc = `
name: Point
statements:
  - node: ImportDecl
    path: Foundation
  - node: StructDecl
    id: point
    name: Point
    inheritance: [Codable]
    members:
      - node: ConstantDecl
        modifiers: [private]
        initializers:
          - pattern: {node: IdentifierPattern, name: x, type: {type: Int}}
            init: {node: LiteralExpr, kind: integer, value: "0"}
      - node: FunctionDecl
        name: length
        signature:
          result: Double
        body:
          statements:
            - node: ReturnStmt
              value: {node: IdentifierExpr, name: x}
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(structDoc))
	require.NoError(t, err)

	assert.Equal(t, "Point", f.Name)
	require.Len(t, f.Statements, 2)

	imp, ok := f.Statements[0].(*core.ImportDecl)
	require.True(t, ok)
	assert.Equal(t, "Foundation", imp.Path)
	assert.NotEmpty(t, imp.ID, "missing ids are generated")

	s, ok := f.Statements[1].(*core.StructDecl)
	require.True(t, ok)
	assert.Equal(t, "point", string(s.ID))
	assert.Equal(t, "Codable", core.TypeNameOf(s.Inheritance[0]))
	require.Len(t, s.Members, 2)

	c, ok := s.Members[0].(*core.ConstantDecl)
	require.True(t, ok)
	assert.True(t, c.Modifiers.Has(core.ModPrivate))
	require.Len(t, c.Initializers, 1)
	assert.Equal(t, "x", core.PatternName(c.Initializers[0].Pattern))
	assert.Equal(t, "Int", core.TypeNameOf(core.PatternType(c.Initializers[0].Pattern).Type))
	lit, ok := c.Initializers[0].Init.(*core.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, core.LiteralInteger, lit.Kind)

	fn, ok := s.Members[1].(*core.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "Double", core.TypeNameOf(fn.Signature.Result))
	require.NotNil(t, fn.Body)
	assert.IsType(t, &core.ReturnStmt{}, fn.Body.Statements[0])
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"statements": [{"node": "TryExpr", "kind": "try?",
		"expr": {"node": "FunctionCallExpr", "callee": {"node": "IdentifierExpr", "name": "load"}}}]}`
	f, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, f.Statements, 1)

	tr, ok := f.Statements[0].(*core.TryExpr)
	require.True(t, ok)
	assert.Equal(t, core.TryOptional, tr.Kind)
	assert.IsType(t, &core.FunctionCallExpr{}, tr.Expr)
}

func TestDecode_FieldSpellings(t *testing.T) {
	doc := `
statements:
  - node: ClassDecl
    name: A
    GenericParams: [{name: T}]
    where:
      requirements:
        - {left: T, same_type: true, right: Int}
`
	f, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	c := f.Statements[0].(*core.ClassDecl)
	require.Len(t, c.GenericParams, 1)
	assert.Equal(t, "T", c.GenericParams[0].Name)
	require.NotNil(t, c.Where)
	assert.True(t, c.Where.Requirements[0].SameType)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "empty",
			doc:     "",
			wantErr: "empty document",
		},
		{
			name:    "invalid yaml",
			doc:     "statements: [",
			wantErr: "invalid YAML",
		},
		{
			name:    "unknown node",
			doc:     "statements: [{node: GotoStmt}]",
			wantErr: `unknown node kind "GotoStmt"`,
		},
		{
			name:    "missing discriminator",
			doc:     "statements: [{name: x}]",
			wantErr: "missing node key",
		},
		{
			name:    "wrong family",
			doc:     "statements: [{node: IdentifierPattern, name: x}]",
			wantErr: "kind IdentifierPattern is not a Stmt",
		},
		{
			name:    "unknown field",
			doc:     "statements: [{node: ImportDecl, module: Foundation}]",
			wantErr: `unknown field "module" in ImportDecl`,
		},
		{
			name:    "bad enum",
			doc:     "statements: [{node: LiteralExpr, kind: regex}]",
			wantErr: `invalid LiteralKind value "regex"`,
		},
		{
			name:    "bad bool",
			doc:     "statements: [{node: SelfExpr, init: maybe}]",
			wantErr: `invalid boolean "maybe"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Point.yaml")
	require.NoError(t, os.WriteFile(path, []byte("statements: []\n"), 0600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Point", f.Name)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("statements: [{node: Nope}]\n"), 0600))
	_, err = LoadFile(bad)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, bad, de.File)
	assert.Equal(t, 1, de.Line)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "models"), 0750))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".cache"), 0750))
	for _, name := range []string{
		"b.yaml", "a.json", "notes.txt", ".hidden.yaml",
		filepath.Join("models", "c.yml"), filepath.Join(".cache", "d.yaml"),
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("statements: []"), 0600))
	}

	paths, err := Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "models", "c.yml"),
	}, paths)

	single, err := Scan(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Len(t, single, 1)
}
