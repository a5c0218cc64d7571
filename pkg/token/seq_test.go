package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(v string) Token { return New(Identifier, v) }
func brk() Token           { return New(Linebreak, Newline) }

func threeLines() Seq {
	return Of(ident("a"), brk(), ident("b"), brk(), ident("c"))
}

func TestIndent_OnePerLevel(t *testing.T) {
	once := Indent(threeLines())
	assert.Equal(t, "a\n    b\n    c", once.Text())
	assert.Equal(t, 2, once.Count(KindIs(Indentation)))

	twice := Indent(once)
	assert.Equal(t, "a\n        b\n        c", twice.Text())
	assert.Equal(t, 4, twice.Count(KindIs(Indentation)))

	// every emitted line after the first carries exactly one token per level
	for i, tok := range twice {
		if tok.Kind == Linebreak {
			require.Less(t, i+2, len(twice))
			assert.Equal(t, Indentation, twice[i+1].Kind)
			assert.Equal(t, Indentation, twice[i+2].Kind)
		}
	}
}

func TestIndent_DoesNotMutateInput(t *testing.T) {
	in := threeLines()
	_ = Indent(in)
	assert.Len(t, in, 5)
	assert.Equal(t, "a\nb\nc", in.Text())
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		seqs     []Seq
		expected string
	}{
		{"two", []Seq{Of(ident("a")), Of(ident("b"))}, "a, b"},
		{"skips empty", []Seq{nil, Of(ident("a")), {}, Of(ident("b"))}, "a, b"},
		{"all empty", []Seq{nil, nil}, ""},
		{"single", []Seq{Of(ident("a"))}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Join(tt.seqs, New(Delimiter, ","), New(Space, " "))
			assert.Equal(t, tt.expected, got.Text())
		})
	}
}

func TestPrefixSuffix(t *testing.T) {
	s := Of(ident("x"))
	got := Suffix(Prefix(s, New(StartOfScope, "(")), New(EndOfScope, ")"))
	assert.Equal(t, "(x)", got.Text())
	assert.Equal(t, "x", s.Text())
	assert.True(t, Balanced(got))
}

func TestReplace(t *testing.T) {
	s := Of(ident("a"), ident("b"), ident("a"), ident("a"))

	all := Replace(s, ValueIs("a"), Of(ident("z")))
	assert.Equal(t, "zbzz", all.Text())

	one := ReplaceN(s, ValueIs("a"), Of(ident("z")), 1)
	assert.Equal(t, "zbaa", one.Text())

	removed := Replace(s, ValueIs("a"), nil)
	assert.Equal(t, "b", removed.Text())

	assert.Equal(t, "abaa", s.Text())
}

func TestInsertRemove(t *testing.T) {
	s := Of(ident("a"), ident("d"))
	got := Insert(s, 1, Of(ident("b"), ident("c")))
	assert.Equal(t, "abcd", got.Text())
	assert.Equal(t, "ad", Remove(got, 1, 3).Text())
}

func TestBalanced(t *testing.T) {
	open := func(v string) Token { return New(StartOfScope, v) }
	closeTok := func(v string) Token { return New(EndOfScope, v) }

	assert.True(t, Balanced(Of(open("{"), open("("), closeTok(")"), closeTok("}"))))
	assert.False(t, Balanced(Of(open("{"), open("("), closeTok("}"), closeTok(")"))))
	assert.False(t, Balanced(Of(open("{"))))
	assert.False(t, Balanced(Of(closeTok(")"))))
}

func TestOuterScope(t *testing.T) {
	s := Of(ident("f"), New(StartOfScope, "("), ident("a"), New(Symbol, "?"), New(EndOfScope, ")"), New(Symbol, "!"))
	assert.Equal(t, "f!", OuterScope(s).Text())
}

func TestTrim(t *testing.T) {
	s := Of(brk(), New(Indentation, IndentUnit), ident("a"), New(Space, " "), New(Space, " "))
	assert.Equal(t, "a", TrimTrailingSpaces(TrimLeadingBreaks(s)).Text())
}
