// Package format renders Kotlin token streams as source text.
package format

import (
	"strings"

	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// Render joins token values into text. Indentation tokens print as
// token.IndentUnit, trailing whitespace is trimmed from every line and
// leading blank lines are dropped.
func Render(s token.Seq) string {
	return RenderIndent(s, token.IndentUnit)
}

// RenderIndent is Render with a custom indentation unit.
func RenderIndent(s token.Seq, unit string) string {
	p := newPrinter(unit)
	for _, t := range s {
		p.print(t)
	}
	return p.String()
}

// Lines renders s and splits the result into lines without terminators.
func Lines(s token.Seq) []string {
	out := Render(s)
	if out == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}
