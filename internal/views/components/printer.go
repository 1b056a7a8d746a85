package components

import (
	"context"
	"fmt"
	"io"

	templpkg "github.com/a-h/templ"
)

// Printer writes markup and remembers the first write error so components
// can emit a sequence of fragments and check once at the end.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter wraps w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Raw writes trusted markup verbatim.
func (p *Printer) Raw(markup string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, markup)
}

// Rawf formats trusted markup. Arguments are not escaped; wrap user data in Esc.
func (p *Printer) Rawf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Text writes escaped text.
func (p *Printer) Text(value string) {
	p.Raw(Esc(value))
}

// Component renders a nested component into the same writer.
func (p *Printer) Component(ctx context.Context, c templpkg.Component) {
	if p.err != nil || c == nil {
		return
	}
	p.err = c.Render(ctx, p.w)
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

// Esc escapes a value for use in element content and quoted attributes.
func Esc(value string) string {
	return templpkg.EscapeString(value)
}
