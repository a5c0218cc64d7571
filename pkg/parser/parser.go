// Package parser parses Swift expression fragments into core AST nodes.
//
// It is not a Swift front end. The translator receives complete trees from
// an external parser; this package only covers the expression subset found
// inside string interpolation segments, so that `"\(user.name)"` can be
// re-translated through the same entry point as any other expression.
//
// # Usage
//
//	expr, err := parser.ParseExpr("items.first?.name ?? \"none\"")
//	if err != nil {
//	    // embed the fragment verbatim
//	}
//
// # Grammar Overview
//
//	expr      → prefix_expr (binary_op prefix_expr | "?" expr ":" expr | cast type)*
//	prefix    → ["try" ["?"|"!"]] [prefix_op] postfix
//	postfix   → primary ("." member | "(" args ")" | "[" args "]" | "?" | "!")*
//	primary   → ident | $N | literal | self | super | "." ident | "(" tuple ")" | "[" collection "]"
//
// Node identities are fresh UUIDs; spans are fragment-relative.
package parser

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// Parser parses a Swift expression fragment.
type Parser struct {
	lexer  *Lexer
	token  Token // current token
	peek   Token // lookahead token
	peek2  Token // second lookahead token
	prev   Token // last consumed token
	errors []error
}

// NewParser creates a new parser for the given fragment.
func NewParser(src string) *Parser {
	p := &Parser{
		lexer: NewLexer(src),
	}
	// Read three tokens to initialize current, peek, and peek2
	p.nextToken()
	p.nextToken()
	p.nextToken()
	return p
}

// ParseExpr parses src as a single expression.
func ParseExpr(src string) (core.Expr, error) {
	p := NewParser(src)
	expr := p.parseExpression()
	if len(p.errors) == 0 && !p.check(TOKEN_EOF) {
		p.addError(fmt.Sprintf(ErrTrailingInput, p.token.Type))
	}
	if errs := append(p.lexer.Errors, p.errors...); len(errs) > 0 {
		return nil, errs[0]
	}
	return expr, nil
}

// Fragments adapts ParseExpr to the translator's fragment parser contract.
type Fragments struct{}

// ParseExpr implements the fragment parser contract.
func (Fragments) ParseExpr(src string) (core.Expr, error) {
	return ParseExpr(src)
}

// ---------- Token Helpers ----------

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.prev = p.token
	p.token = p.peek
	p.peek = p.peek2
	p.peek2 = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t TokenType) bool {
	return p.token.Type == t
}

// checkPeek returns true if the peek token is of the given type.
func (p *Parser) checkPeek(t TokenType) bool {
	return p.peek.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise adds an error.
func (p *Parser) expect(t TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, t))
	return false
}

// addError adds a parse error.
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, &ParseError{
		Pos:     p.token.Pos,
		Message: msg,
	})
}

// isPostfix reports whether the current ? or ! token is attached to the
// previous operand (no whitespace in between).
func (p *Parser) isPostfix() bool {
	return !p.token.SpaceBefore
}

// info builds the identity and span of a node starting at start and
// ending at the last consumed token.
func (p *Parser) info(start token.Position) core.NodeInfo {
	end := p.prev.Pos
	end.Column += len(p.prev.Literal)
	end.Offset += len(p.prev.Literal)
	return core.NodeInfo{
		ID:   token.NodeID(uuid.NewString()),
		Span: token.Span{Start: start, End: end},
	}
}
