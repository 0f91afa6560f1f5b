// internal/console/console.go
//
// Terminal front-end: prints the example hints, reads one line, and prints
// the frame-by-frame table or the error message.

package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/bowling/internal/examples"
	"github.com/robalobadob/bowling/internal/scorecard"
)

// maxInput matches the single read the console does; longer input is cut.
const maxInput = 4096

// Console binds the front-end to its streams.
type Console struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	examples []examples.Example

	title lipgloss.Style
	muted lipgloss.Style
	bad   lipgloss.Style
}

// New returns a Console. Styles degrade to plain text when out/errOut are not terminals.
func New(in io.Reader, out, errOut io.Writer, ex []examples.Example) *Console {
	r := lipgloss.NewRenderer(out)
	er := lipgloss.NewRenderer(errOut)
	return &Console{
		in:       in,
		out:      out,
		errOut:   errOut,
		examples: ex,
		title:    r.NewStyle().Bold(true),
		muted:    r.NewStyle().Foreground(lipgloss.Color("#666666")),
		bad:      er.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
	}
}

// Run prints the banner, reads one line and scores it.
// Empty input (EOF or a blank line) prints nothing further. A scoring failure
// is reported on errOut and is not returned; only I/O errors are.
func (c *Console) Run() error {
	c.banner()
	fmt.Fprint(c.out, "Input: ")

	buf := make([]byte, maxInput)
	n, err := c.in.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read input: %w", err)
	}
	if n <= 0 {
		return nil
	}
	line := strings.TrimSpace(string(buf[:n]))
	if line == "" {
		return nil
	}

	fmt.Fprintln(c.out)
	c.Score(line)
	return nil
}

// Score scores line and writes the result table to out, or the error to errOut.
// It reports whether the line scored.
func (c *Console) Score(line string) bool {
	res, err := scorecard.Compute(line)
	if err != nil {
		fmt.Fprintln(c.errOut, c.bad.Render("Error: "+err.Error()))
		return false
	}
	fmt.Fprint(c.out, c.Render(res))
	return true
}

// Render formats a result as the frame-by-frame table.
func (c *Console) Render(res scorecard.Result) string {
	var b strings.Builder
	b.WriteString(c.title.Render("Frame-by-frame cumulative scores:"))
	b.WriteString("\n")
	for i, v := range res.Frames {
		fmt.Fprintf(&b, "Frame %2d: %d\n", i+1, v)
	}
	b.WriteString(c.title.Render(fmt.Sprintf("TOTAL: %d", res.Total)))
	b.WriteString("\n")
	return b.String()
}

func (c *Console) banner() {
	fmt.Fprintln(c.out, c.title.Render("Bowling Scorer (console). Enter a line of rolls (notation or integers)."))
	fmt.Fprintln(c.out, "Examples:")
	prev := ""
	for _, ex := range c.examples {
		label := ex.Label + ":"
		if ex.Label == prev {
			label = ""
		}
		prev = ex.Label
		fmt.Fprintf(c.out, "  %-11s%s\n", label, c.muted.Render(ex.Line))
	}
	fmt.Fprintln(c.out)
}
