package token

import "strings"

// Seq is an ordered token sequence.
type Seq []Token

// Predicate selects tokens.
type Predicate func(Token) bool

// Of builds a sequence from tokens.
func Of(tokens ...Token) Seq {
	return append(Seq(nil), tokens...)
}

// Concat concatenates sequences into a new sequence.
func Concat(seqs ...Seq) Seq {
	n := 0
	for _, s := range seqs {
		n += len(s)
	}
	out := make(Seq, 0, n)
	for _, s := range seqs {
		out = append(out, s...)
	}
	return out
}

// Join concatenates the non-empty sequences, placing sep between them.
// Empty sequences are skipped so optional parts never leave a dangling
// separator.
func Join(seqs []Seq, sep ...Token) Seq {
	var out Seq
	first := true
	for _, s := range seqs {
		if len(s) == 0 {
			continue
		}
		if !first {
			out = append(out, sep...)
		}
		out = append(out, s...)
		first = false
	}
	return out
}

// Prefix returns a new sequence with toks in front of s.
func Prefix(s Seq, toks ...Token) Seq {
	return Concat(Seq(toks), s)
}

// Suffix returns a new sequence with toks after s.
func Suffix(s Seq, toks ...Token) Seq {
	return Concat(s, Seq(toks))
}

// Indent inserts one indentation token after every linebreak.
// Call it once per nesting level.
func Indent(s Seq) Seq {
	out := make(Seq, 0, len(s)+len(s)/4)
	for _, t := range s {
		out = append(out, t)
		if t.Kind == Linebreak {
			out = append(out, Token{Kind: Indentation, Value: IndentUnit, Origin: t.Origin})
		}
	}
	return out
}

// Replace substitutes repl for every token matching pred.
func Replace(s Seq, pred Predicate, repl Seq) Seq {
	return ReplaceN(s, pred, repl, -1)
}

// ReplaceN substitutes repl for the first max tokens matching pred.
// A negative max replaces every match.
func ReplaceN(s Seq, pred Predicate, repl Seq, max int) Seq {
	out := make(Seq, 0, len(s))
	replaced := 0
	for _, t := range s {
		if (max < 0 || replaced < max) && pred(t) {
			out = append(out, repl...)
			replaced++
			continue
		}
		out = append(out, t)
	}
	return out
}

// Map applies fn to every token.
func Map(s Seq, fn func(Token) Token) Seq {
	out := make(Seq, len(s))
	for i, t := range s {
		out[i] = fn(t)
	}
	return out
}

// Filter keeps the tokens matching pred.
func Filter(s Seq, pred Predicate) Seq {
	out := make(Seq, 0, len(s))
	for _, t := range s {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// Insert returns a new sequence with toks spliced in before index at.
func Insert(s Seq, at int, toks Seq) Seq {
	return Concat(s[:at], toks, s[at:])
}

// Remove returns a new sequence without the tokens in [from, to).
func Remove(s Seq, from, to int) Seq {
	return Concat(s[:from], s[to:])
}

// Index returns the index of the first token matching pred, or -1.
func (s Seq) Index(pred Predicate) int {
	return s.IndexFrom(0, pred)
}

// IndexFrom returns the index of the first token at or after start matching pred, or -1.
func (s Seq) IndexFrom(start int, pred Predicate) int {
	for i := start; i < len(s); i++ {
		if pred(s[i]) {
			return i
		}
	}
	return -1
}

// LastIndex returns the index of the last token matching pred, or -1.
func (s Seq) LastIndex(pred Predicate) int {
	for i := len(s) - 1; i >= 0; i-- {
		if pred(s[i]) {
			return i
		}
	}
	return -1
}

// Contains reports whether any token matches pred.
func (s Seq) Contains(pred Predicate) bool {
	return s.Index(pred) >= 0
}

// First returns the first token.
func (s Seq) First() (Token, bool) {
	if len(s) == 0 {
		return Token{}, false
	}
	return s[0], true
}

// Last returns the last token.
func (s Seq) Last() (Token, bool) {
	if len(s) == 0 {
		return Token{}, false
	}
	return s[len(s)-1], true
}

// Text concatenates token values.
func (s Seq) Text() string {
	var b strings.Builder
	for _, t := range s {
		b.WriteString(t.Value)
	}
	return b.String()
}

// TrimLeadingBreaks drops linebreak and indentation tokens from the start.
func TrimLeadingBreaks(s Seq) Seq {
	i := 0
	for i < len(s) && (s[i].Kind == Linebreak || s[i].Kind == Indentation) {
		i++
	}
	return s[i:]
}

// TrimTrailingSpaces drops space tokens from the end.
func TrimTrailingSpaces(s Seq) Seq {
	i := len(s)
	for i > 0 && s[i-1].Kind == Space {
		i--
	}
	return s[:i]
}

// OuterScope returns the tokens at nesting depth zero, dropping anything
// enclosed by scope tokens.
func OuterScope(s Seq) Seq {
	var out Seq
	depth := 0
	for _, t := range s {
		switch t.Kind {
		case StartOfScope:
			depth++
			continue
		case EndOfScope:
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth == 0 {
			out = append(out, t)
		}
	}
	return out
}

var closers = map[string]string{
	"(":  ")",
	"{":  "}",
	"[":  "]",
	"<":  ">",
	"\"": "\"",
}

// Balanced reports whether every StartOfScope token is closed by the
// matching EndOfScope token in proper nesting order.
func Balanced(s Seq) bool {
	var stack []string
	for _, t := range s {
		switch t.Kind {
		case StartOfScope:
			stack = append(stack, t.Value)
		case EndOfScope:
			if len(stack) == 0 {
				return false
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if want, ok := closers[open]; ok && want != t.Value {
				return false
			}
		}
	}
	return len(stack) == 0
}

// Count returns the number of tokens matching pred.
func (s Seq) Count(pred Predicate) int {
	n := 0
	for _, t := range s {
		if pred(t) {
			n++
		}
	}
	return n
}

// ValueIs matches tokens by value.
func ValueIs(v string) Predicate {
	return func(t Token) bool { return t.Value == v }
}

// KindIs matches tokens by kind.
func KindIs(k Kind) Predicate {
	return func(t Token) bool { return t.Kind == k }
}

// Matches matches tokens by kind and value.
func Matches(k Kind, v string) Predicate {
	return func(t Token) bool { return t.Kind == k && t.Value == v }
}
