// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/leapstack-labs/swiftkt/internal/cli/output"
)

// ConstantDoc is a document holding `let x = 1`.
const ConstantDoc = `name: Constant
statements:
  - node: ConstantDecl
    initializers:
      - pattern: {node: IdentifierPattern, name: x}
        init: {node: LiteralExpr, kind: integer, value: "1"}
`

// StructDoc is a document holding a Codable struct with one field.
const StructDoc = `name: Point
statements:
  - node: StructDecl
    name: Point
    inheritance: [Codable]
    members:
      - node: ConstantDecl
        initializers:
          - pattern: {node: IdentifierPattern, name: x, type: {type: Int}}
`

// SetupTestDocuments creates a temporary input tree:
//
//	ast/Constant.yaml
//	ast/models/Point.yaml
//	ast/README.md (ignored by the scanner)
func SetupTestDocuments(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "ast")
	WriteFile(t, filepath.Join(root, "Constant.yaml"), ConstantDoc)
	WriteFile(t, filepath.Join(root, "models", "Point.yaml"), StructDoc)
	WriteFile(t, filepath.Join(root, "README.md"), "# not a document\n")
	return root
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test paths
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a renderer writing to buffers. Buffers are
// never terminals, so auto mode renders markdown.
func NewTestRenderer(mode output.Mode) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRenderer(out, errOut, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}
