package format

import (
	"strings"

	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// Printer writes a token stream as text, one line at a time.
type Printer struct {
	indent      string
	output      *strings.Builder
	line        strings.Builder
	atLineStart bool
	started     bool
}

func newPrinter(indent string) *Printer {
	return &Printer{
		indent:      indent,
		output:      &strings.Builder{},
		atLineStart: true,
	}
}

// String returns the printed output with a single trailing newline.
func (p *Printer) String() string {
	p.flush()
	out := strings.TrimRight(p.output.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func (p *Printer) print(t token.Token) {
	switch t.Kind {
	case token.Linebreak:
		p.writeln()
	case token.Indentation:
		p.line.WriteString(p.indent)
	default:
		p.write(t.Value)
	}
}

func (p *Printer) write(s string) {
	p.line.WriteString(s)
	p.atLineStart = false
}

// writeln ends the current line. Breaks before the first written line
// are dropped.
func (p *Printer) writeln() {
	if !p.started && p.atLineStart {
		p.line.Reset()
		return
	}
	p.flush()
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) flush() {
	if p.line.Len() == 0 {
		return
	}
	text := strings.TrimRight(p.line.String(), " \t")
	p.line.Reset()
	if text != "" {
		p.started = true
	}
	p.output.WriteString(text)
}
