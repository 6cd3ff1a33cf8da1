// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/rolecolor/internal/scoring"
	"github.com/jonathan/rolecolor/internal/taxonomy"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// barWidth is the width of the distribution bar chart
	barWidth = 30
)

// Printer handles formatted output for score results
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDistribution outputs the RoleColor distribution as a labeled bar
// chart in definition order.
func (p *Printer) PrintDistribution(dist scoring.Distribution) {
	var sb strings.Builder
	for _, cat := range taxonomy.Categories() {
		v := dist[cat]
		filled := int(v * barWidth)
		if filled > barWidth {
			filled = barWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		sb.WriteString(fmt.Sprintf("%-10s %s %.3f\n", cat, bar, v))
	}
	p.printBox("RoleColor distribution", strings.TrimRight(sb.String(), "\n"))
}

// PrintResult outputs the dominant category and its explanation.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintResult(dist scoring.Distribution, explanation string) {
	fmt.Fprintf(p.out, "\nDominant RoleColor: %s\n\n", dist.Dominant())
	fmt.Fprintln(p.out, explanation)
}

// PrintSummary outputs the rewritten summary block.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(summary string) {
	fmt.Fprintf(p.out, "\nRewritten summary (LLM):\n\n%s\n", summary)
}
