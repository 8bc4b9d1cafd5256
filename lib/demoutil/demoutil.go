package demoutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

var Rule = strings.Repeat("=", 50)

// Printer renders the human readable output of the demo commands.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) Printer {
	return Printer{out: out}
}

func (p Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Heading prints "=== title ===" followed by a blank line.
func (p Printer) Heading(title string) {
	fmt.Fprintf(p.out, "=== %s ===\n\n", title)
}

// Section prints title between two rules, preceded by a blank line.
func (p Printer) Section(title string) {
	fmt.Fprintf(p.out, "\n%s\n%s\n%s\n", Rule, title, Rule)
}

func (p Printer) Bullets(marker string, items ...string) {
	for _, item := range items {
		fmt.Fprintf(p.out, "%s %s\n", marker, item)
	}
}

// JSON writes v indented by two spaces.
func (p Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (p Printer) NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(p.out)
	return t
}
