package token

import "fmt"

// Position represents a location in the Swift source.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String formats the position as line:column.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span represents a source range. The translator carries it for
// passthrough and diagnostics only.
type Span struct {
	Start Position
	End   Position
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// String formats the span, or "?" when unknown.
func (s Span) String() string {
	if !s.IsValid() {
		return "?"
	}
	return s.Start.String() + "-" + s.End.String()
}
