// Package output renders CLI results for terminals and pipes.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
)

// Mode selects how results are rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"     // text on a terminal, markdown otherwise
	ModeText     Mode = "text"     // styled text and boxed tables
	ModeMarkdown Mode = "markdown" // plain markdown
)

// Renderer writes command output in the effective mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	Styles *Styles
}

// NewRenderer creates a renderer. Auto mode resolves to text when out is
// a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	r := &Renderer{out: out, errOut: errOut, mode: mode}
	if r.mode == "" {
		r.mode = ModeAuto
	}
	if r.EffectiveMode() == ModeText && isTerminal(out) {
		r.Styles = NewStyles()
	} else {
		r.Styles = plainStyles()
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// EffectiveMode resolves ModeAuto against the output writer.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if isTerminal(r.out) {
		return ModeText
	}
	return ModeMarkdown
}

// Writer returns the standard output writer.
func (r *Renderer) Writer() io.Writer { return r.out }

// Println writes a line to standard output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to standard output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Header writes a section title.
func (r *Renderer) Header(title string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Printf("## %s\n\n", title)
		return
	}
	r.Println(r.Styles.Header.Render(title))
}

// Success reports a completed step on standard error.
func (r *Renderer) Success(format string, a ...any) {
	r.status(r.Styles.Success.Render("✓"), format, a...)
}

// Warning reports a recoverable problem on standard error.
func (r *Renderer) Warning(format string, a ...any) {
	r.status(r.Styles.Warning.Render("!"), format, a...)
}

// Error reports a failure on standard error.
func (r *Renderer) Error(format string, a ...any) {
	r.status(r.Styles.Error.Render("✗"), format, a...)
}

func (r *Renderer) status(mark, format string, a ...any) {
	_, _ = fmt.Fprintf(r.errOut, "%s %s\n", mark, fmt.Sprintf(format, a...))
}

// Table renders rows under header as a boxed table in text mode and as a
// markdown table otherwise.
func (r *Renderer) Table(header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(header)
	t.AppendRows(rows)
	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
