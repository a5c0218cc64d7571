package kotlin

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// stringLiteral re-lexes a string literal into its Kotlin spelling.
// Interpolated segments are parsed and translated through the same
// expression rules as any other expression.
func (t *Translator) stringLiteral(ctx *Context, n *core.LiteralExpr) token.Seq {
	quote := `"`
	if strings.HasPrefix(n.Value, `"""`) {
		quote = `"""`
	}
	body := strings.TrimSuffix(strings.TrimPrefix(n.Value, quote), quote)

	var (
		b       strings.Builder
		invalid []string
	)
	b.WriteString(quote)
	for i := 0; i < len(body); {
		c := body[i]
		switch {
		case c == '$':
			b.WriteString(`\$`)
			i++
		case c == '\\' && i+1 < len(body) && body[i+1] == 'u' && i+2 < len(body) && body[i+2] == '{':
			end := strings.IndexByte(body[i:], '}')
			if end < 0 {
				b.WriteString(body[i:])
				i = len(body)
				continue
			}
			hex := body[i+3 : i+end]
			esc, ok := unicodeEscape(hex)
			if !ok {
				invalid = append(invalid, `\u{`+hex+`}`)
			}
			b.WriteString(esc)
			i += end + 1
		case c == '\\' && i+1 < len(body) && body[i+1] == '(':
			end := fragmentEnd(body, i+2)
			src := body[i+2 : end]
			next := end + 1
			b.WriteString(t.embed(ctx, src, next < len(body) && isIdentByte(body[next])))
			i = next
		case c == '\\' && i+1 < len(body):
			b.WriteString(body[i : i+2])
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	b.WriteString(quote)
	out := token.Of(str(n, b.String()))
	if len(invalid) > 0 {
		return t.unsupported(n, "invalid unicode escape: "+strings.Join(invalid, ", "), out)
	}
	return out
}

// fragmentEnd returns the index of the parenthesis closing the segment
// that starts at from, or len(s) when it is unterminated.
func fragmentEnd(s string, from int) int {
	depth := 1
	inString := false
	for i := from; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && inString:
			i++
		case c == '"':
			inString = !inString
		case inString:
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(s)
}

// embed renders one interpolated segment as a Kotlin template.
func (t *Translator) embed(ctx *Context, src string, identFollows bool) string {
	e, err := t.fragments.ParseExpr(src)
	if err != nil {
		t.logger.Debug("interpolation fragment kept verbatim", "fragment", src, "error", err)
		return "${" + src + "}"
	}
	text := flatText(t.expr(ctx, e))
	if identFollows || !isSimpleName(text) || strings.ContainsAny(text, ".(?:") {
		return "${" + text + "}"
	}
	return "$" + text
}

// unicodeEscape converts the hex digits of a `\u{X}` escape to Kotlin's
// `\uXXXX` form, using a surrogate pair outside the BMP. Escapes that are
// not a valid code point come back unchanged with ok false.
func unicodeEscape(hex string) (esc string, ok bool) {
	cp, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || !utf8.ValidRune(rune(cp)) {
		return `\u{` + hex + `}`, false
	}
	r := rune(cp)
	if r <= 0xFFFF {
		return fmt.Sprintf(`\u%04X`, r), true
	}
	hi, lo := utf16.EncodeRune(r)
	return fmt.Sprintf(`\u%04X\u%04X`, hi, lo), true
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isSimpleName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
