// Package token defines the Kotlin token stream produced by the translator.
//
// Tokens are immutable values. A token sequence (Seq) is the only
// intermediate representation between the Swift AST and the final text;
// the combinators in seq.go build new sequences and never mutate their input.
package token

import "fmt"

// Kind classifies a token.
type Kind uint8

// Token kinds.
const (
	Identifier Kind = iota
	Keyword
	Symbol
	Delimiter
	String
	Comment
	Space
	Linebreak
	Indentation
	StartOfScope
	EndOfScope
)

var kindNames = [...]string{
	Identifier:   "identifier",
	Keyword:      "keyword",
	Symbol:       "symbol",
	Delimiter:    "delimiter",
	String:       "string",
	Comment:      "comment",
	Space:        "space",
	Linebreak:    "linebreak",
	Indentation:  "indentation",
	StartOfScope: "startOfScope",
	EndOfScope:   "endOfScope",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// NodeID is the stable identity of an AST node.
type NodeID string

// Construct names the syntactic construct inside a node that produced a token.
// Rules that post-process token sequences (condition inversion, safe-call
// propagation) match on it instead of on token text alone.
type Construct uint8

// Constructs.
const (
	ConstructNone Construct = iota
	ConstructBinaryOperator
	ConstructPrefixOperator
	ConstructSequence
	ConstructCondition
	ConstructOptionalChaining
	ConstructAccessModifier
	ConstructReturn
	ConstructTypeCast
	ConstructDeclName
)

var constructNames = [...]string{
	ConstructNone:             "",
	ConstructBinaryOperator:   "binaryOperator",
	ConstructPrefixOperator:   "prefixOperator",
	ConstructSequence:         "sequence",
	ConstructCondition:        "condition",
	ConstructOptionalChaining: "optionalChaining",
	ConstructAccessModifier:   "accessModifier",
	ConstructReturn:           "return",
	ConstructTypeCast:         "typeCast",
	ConstructDeclName:         "declName",
}

// String returns the construct name, empty for ConstructNone.
func (c Construct) String() string {
	if int(c) < len(constructNames) {
		return constructNames[c]
	}
	return fmt.Sprintf("Construct(%d)", c)
}

// Origin is the back-reference from a token to what produced it.
type Origin struct {
	Node      NodeID
	Construct Construct
}

// Token is a single Kotlin lexical unit.
type Token struct {
	Kind   Kind
	Value  string
	Origin Origin
}

// New creates a token without origin.
func New(kind Kind, value string) Token {
	return Token{Kind: kind, Value: value}
}

// Is reports whether the token has the given kind and value.
func (t Token) Is(kind Kind, value string) bool {
	return t.Kind == kind && t.Value == value
}

// IsLayout reports whether the token only affects layout.
func (t Token) IsLayout() bool {
	return t.Kind == Space || t.Kind == Linebreak || t.Kind == Indentation
}

// String returns a debug representation.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
}

// Layout token values.
const (
	IndentUnit = "    "
	Newline    = "\n"
)
