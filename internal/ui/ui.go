// Package ui prints run progress and summaries to stderr, keeping stdout
// clean for piped CSV output.
package ui

import (
	"fmt"
	"io"
	"os"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

type Printer struct {
	out io.Writer
}

func New() *Printer {
	return &Printer{out: os.Stderr}
}

// NewWriter returns a Printer writing to w instead of stderr.
func NewWriter(w io.Writer) *Printer {
	return &Printer{out: w}
}

func (p *Printer) Banner() {
	fmt.Fprintln(p.out, bold+cyan+"  ╔══════════════════════════════════════╗"+reset)
	fmt.Fprintln(p.out, bold+cyan+"  ║"+reset+bold+"   REAGENT  "+dim+"formula→name augmenter"+reset+bold+cyan+"    ║"+reset)
	fmt.Fprintln(p.out, bold+cyan+"  ╚══════════════════════════════════════╝"+reset)
	fmt.Fprintln(p.out)
}

func (p *Printer) TableLoaded(formulas int, path string) {
	fmt.Fprintf(p.out, cyan+"◆ synonym table"+reset+dim+" %s — %d formulas"+reset+"\n", path, formulas)
}

func (p *Printer) RunStart(mode, input string, rows int) {
	fmt.Fprintf(p.out, bold+"▶ %s-augmenting"+reset+dim+" %s (%d rows)"+reset+"\n", mode, input, rows)
}

func (p *Printer) Summary(rowsIn, rowsOut, augmented int) {
	fmt.Fprintf(p.out, green+bold+"✓ done"+reset+" — %d rows in, %d rows out "+dim+"(%d augmented)"+reset+"\n",
		rowsIn, rowsOut, augmented)
}

func (p *Printer) Watching(files int) {
	fmt.Fprintf(p.out, yellow+"◉ watching"+reset+dim+" %d input file(s) — edit to re-run, ctrl-c to stop"+reset+"\n", files)
}

func (p *Printer) Rerun(file string) {
	fmt.Fprintf(p.out, yellow+"↻ change detected"+reset+dim+" %s — re-running"+reset+"\n", file)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.out, red+bold+"✗ error"+reset+" %s\n", msg)
}
