package parser

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// Lexer tokenizes a Swift expression fragment.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	// Errors collected during lexing
	Errors []error
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// peekCharAt returns the character n positions after the current one.
func (l *Lexer) peekCharAt(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() Token {
	spaced := l.skipWhitespace()
	tok := l.lex()
	tok.SpaceBefore = spaced
	return tok
}

func (l *Lexer) lex() Token {
	pos := l.currentPos()

	switch l.ch {
	case 0:
		return Token{Type: TOKEN_EOF, Pos: pos}
	case '(':
		return l.single(TOKEN_LPAREN, pos)
	case ')':
		return l.single(TOKEN_RPAREN, pos)
	case '[':
		return l.single(TOKEN_LBRACKET, pos)
	case ']':
		return l.single(TOKEN_RBRACKET, pos)
	case '{':
		return l.single(TOKEN_LBRACE, pos)
	case '}':
		return l.single(TOKEN_RBRACE, pos)
	case ',':
		return l.single(TOKEN_COMMA, pos)
	case ':':
		return l.single(TOKEN_COLON, pos)
	case '.':
		if l.peekChar() == '.' && l.peekCharAt(2) == '.' {
			return l.fixed(TOKEN_OPERATOR, "...", pos)
		}
		if l.peekChar() == '.' && l.peekCharAt(2) == '<' {
			return l.fixed(TOKEN_OPERATOR, "..<", pos)
		}
		return l.single(TOKEN_DOT, pos)
	case '?':
		if l.peekChar() == '?' {
			return l.fixed(TOKEN_OPERATOR, "??", pos)
		}
		return l.single(TOKEN_QUESTION, pos)
	case '!':
		if l.peekChar() == '=' {
			if l.peekCharAt(2) == '=' {
				return l.fixed(TOKEN_OPERATOR, "!==", pos)
			}
			return l.fixed(TOKEN_OPERATOR, "!=", pos)
		}
		return l.single(TOKEN_BANG, pos)
	case '"':
		return Token{Type: TOKEN_STRING, Literal: l.readString(), Pos: pos}
	case '`':
		return Token{Type: TOKEN_IDENT, Literal: l.readBacktickIdentifier(), Pos: pos}
	case '$':
		if isDigit(l.peekChar()) {
			start := l.pos
			l.readChar()
			for isDigit(l.ch) {
				l.readChar()
			}
			return Token{Type: TOKEN_IMPLICIT_PARAM, Literal: l.input[start:l.pos], Pos: pos}
		}
	}

	switch {
	case isOperatorChar(l.ch):
		op := l.readOperator()
		switch op {
		case "=":
			return Token{Type: TOKEN_ASSIGN, Literal: op, Pos: pos}
		case "->":
			return Token{Type: TOKEN_ARROW, Literal: op, Pos: pos}
		}
		return Token{Type: TOKEN_OPERATOR, Literal: op, Pos: pos}
	case isLetter(l.ch) || l.ch == '_':
		ident := l.readIdentifier()
		return Token{Type: LookupIdent(ident), Literal: ident, Pos: pos}
	case isDigit(l.ch):
		return Token{Type: TOKEN_NUMBER, Literal: l.readNumber(), Pos: pos}
	}

	ch := l.ch
	l.readChar()
	l.addError(pos, ErrIllegalCharacter, ch)
	return Token{Type: TOKEN_ILLEGAL, Literal: string(ch), Pos: pos}
}

func (l *Lexer) single(t TokenType, pos token.Position) Token {
	lit := string(l.ch)
	l.readChar()
	return Token{Type: t, Literal: lit, Pos: pos}
}

func (l *Lexer) fixed(t TokenType, lit string, pos token.Position) Token {
	for range lit {
		l.readChar()
	}
	return Token{Type: t, Literal: lit, Pos: pos}
}

// skipWhitespace skips spaces and reports whether any were skipped.
func (l *Lexer) skipWhitespace() bool {
	skipped := false
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
		skipped = true
	}
	return skipped
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readBacktickIdentifier() string {
	l.readChar() // opening `
	start := l.pos
	for l.ch != '`' && l.ch != 0 {
		l.readChar()
	}
	ident := l.input[start:l.pos]
	if l.ch == '`' {
		l.readChar()
	}
	return ident
}

// readNumber reads integer, float, hex, octal and binary literals,
// including digit separators.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' ||
		(l.ch == '.' && isDigit(l.peekChar())) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readOperator() string {
	start := l.pos
	for isOperatorChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readString reads a string literal including its quotes. Interpolation
// segments are kept verbatim; nested string literals inside them are
// skipped as a unit.
func (l *Lexer) readString() string {
	start := l.pos
	pos := l.currentPos()
	l.readChar() // opening quote
	for {
		switch l.ch {
		case 0, '\n':
			l.addError(pos, ErrUnterminatedString)
			return l.input[start:l.pos]
		case '"':
			l.readChar()
			return l.input[start:l.pos]
		case '\\':
			l.readChar()
			if l.ch == '(' {
				l.skipInterpolation()
				continue
			}
			l.readChar()
		default:
			l.readChar()
		}
	}
}

// skipInterpolation advances past a balanced \( ... ) segment.
func (l *Lexer) skipInterpolation() {
	depth := 0
	for l.ch != 0 {
		switch l.ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				l.readChar()
				return
			}
		case '"':
			l.readString()
			continue
		}
		l.readChar()
	}
}

func (l *Lexer) addError(pos token.Position, format string, args ...any) {
	l.Errors = append(l.Errors, &LexError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= 0x80
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isOperatorChar(ch byte) bool {
	return ch != 0 && strings.IndexByte("=-+*/%<>&|^~", ch) >= 0
}
