package kotlin

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// Token constructors. Every token carries the identity of the node that
// produced it.

func tok(n core.Node, kind token.Kind, value string) token.Token {
	t := token.New(kind, value)
	if n != nil {
		t.Origin.Node = n.Info().ID
	}
	return t
}

func kw(n core.Node, v string) token.Token    { return tok(n, token.Keyword, v) }
func ident(n core.Node, v string) token.Token { return tok(n, token.Identifier, v) }
func sym(n core.Node, v string) token.Token   { return tok(n, token.Symbol, v) }
func delim(n core.Node, v string) token.Token { return tok(n, token.Delimiter, v) }
func str(n core.Node, v string) token.Token   { return tok(n, token.String, v) }
func open(n core.Node, v string) token.Token  { return tok(n, token.StartOfScope, v) }
func closing(n core.Node, v string) token.Token {
	return tok(n, token.EndOfScope, v)
}
func sp(n core.Node) token.Token { return tok(n, token.Space, " ") }
func br(n core.Node) token.Token { return tok(n, token.Linebreak, token.Newline) }

// marked tags t with the construct that produced it.
func marked(t token.Token, c token.Construct) token.Token {
	t.Origin.Construct = c
	return t
}

// words joins the non-empty parts with single spaces.
func words(n core.Node, parts ...token.Seq) token.Seq {
	return token.Join(parts, sp(n))
}

// lines joins the non-empty parts with linebreaks.
func lines(n core.Node, parts ...token.Seq) token.Seq {
	return token.Join(parts, br(n))
}

// commaList joins the parts with ", ".
func commaList(n core.Node, parts []token.Seq) token.Seq {
	return token.Join(parts, delim(n, ","), sp(n))
}

// wrap surrounds s with a scope pair.
func wrap(n core.Node, s token.Seq, o, c string) token.Seq {
	return token.Concat(token.Of(open(n, o)), s, token.Of(closing(n, c)))
}

// braced renders `{` + indented lines + `}`; an empty body is `{}`.
func braced(n core.Node, body token.Seq) token.Seq {
	if len(body) == 0 {
		return token.Of(open(n, "{"), closing(n, "}"))
	}
	return token.Concat(
		token.Of(open(n, "{")),
		token.Indent(token.Prefix(token.TrimLeadingBreaks(body), br(n))),
		token.Of(br(n), closing(n, "}")),
	)
}

// declStart makes sure a declaration sequence starts with a linebreak.
func declStart(n core.Node, s token.Seq) token.Seq {
	if len(s) == 0 {
		return s
	}
	if s[0].Kind == token.Linebreak {
		return s
	}
	return token.Prefix(s, br(n))
}

// capitalize upper-cases the first letter of an identifier.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// flatText renders a sequence on one line, dropping layout tokens other
// than spaces.
func flatText(s token.Seq) string {
	var b strings.Builder
	for _, t := range s {
		if t.Kind == token.Linebreak || t.Kind == token.Indentation {
			continue
		}
		b.WriteString(t.Value)
	}
	return b.String()
}
