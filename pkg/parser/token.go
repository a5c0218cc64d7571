package parser

import (
	"fmt"

	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// TokenType classifies a lexed Swift token.
type TokenType int

// Token types of the expression subset.
//
//nolint:revive // TOKEN_* names mirror lexer conventions
const (
	TOKEN_EOF TokenType = iota
	TOKEN_ILLEGAL

	TOKEN_IDENT
	TOKEN_NUMBER
	TOKEN_STRING
	TOKEN_IMPLICIT_PARAM // $0, $1, ...

	TOKEN_OPERATOR // binary or prefix operator: + - == ?? ..< ...
	TOKEN_ASSIGN   // =
	TOKEN_QUESTION // ? (postfix or ternary, decided by spacing)
	TOKEN_BANG     // ! (postfix or prefix, decided by spacing)
	TOKEN_DOT
	TOKEN_COMMA
	TOKEN_COLON
	TOKEN_ARROW
	TOKEN_LPAREN
	TOKEN_RPAREN
	TOKEN_LBRACKET
	TOKEN_RBRACKET
	TOKEN_LBRACE
	TOKEN_RBRACE

	// Keywords
	TOKEN_SELF
	TOKEN_SUPER
	TOKEN_NIL
	TOKEN_TRUE
	TOKEN_FALSE
	TOKEN_TRY
	TOKEN_IS
	TOKEN_AS
)

var tokenNames = map[TokenType]string{
	TOKEN_EOF:            "EOF",
	TOKEN_ILLEGAL:        "ILLEGAL",
	TOKEN_IDENT:          "identifier",
	TOKEN_NUMBER:         "number",
	TOKEN_STRING:         "string",
	TOKEN_IMPLICIT_PARAM: "implicit parameter",
	TOKEN_OPERATOR:       "operator",
	TOKEN_ASSIGN:         "=",
	TOKEN_QUESTION:       "?",
	TOKEN_BANG:           "!",
	TOKEN_DOT:            ".",
	TOKEN_COMMA:          ",",
	TOKEN_COLON:          ":",
	TOKEN_ARROW:          "->",
	TOKEN_LPAREN:         "(",
	TOKEN_RPAREN:         ")",
	TOKEN_LBRACKET:       "[",
	TOKEN_RBRACKET:       "]",
	TOKEN_LBRACE:         "{",
	TOKEN_RBRACE:         "}",
	TOKEN_SELF:           "self",
	TOKEN_SUPER:          "super",
	TOKEN_NIL:            "nil",
	TOKEN_TRUE:           "true",
	TOKEN_FALSE:          "false",
	TOKEN_TRY:            "try",
	TOKEN_IS:             "is",
	TOKEN_AS:             "as",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var keywords = map[string]TokenType{
	"self":  TOKEN_SELF,
	"super": TOKEN_SUPER,
	"nil":   TOKEN_NIL,
	"true":  TOKEN_TRUE,
	"false": TOKEN_FALSE,
	"try":   TOKEN_TRY,
	"is":    TOKEN_IS,
	"as":    TOKEN_AS,
}

// LookupIdent returns the keyword type for ident, or TOKEN_IDENT.
func LookupIdent(ident string) TokenType {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return TOKEN_IDENT
}

// Token is a lexed Swift token. SpaceBefore records whether whitespace
// preceded it, which Swift uses to tell postfix from binary operators.
type Token struct {
	Type        TokenType
	Literal     string
	Pos         token.Position
	SpaceBefore bool
}
