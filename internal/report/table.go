// Package report prints the dashboard figures as aligned terminal tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// Align is the horizontal alignment of a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// maxCellWidth caps a column so long aggregate labels do not blow up the table.
const maxCellWidth = 40

// Printer writes tables to w, optionally with ANSI styling.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer for w. Styling is applied only when useColor is
// set and the terminal supports it.
func NewPrinter(w io.Writer, useColor bool) *Printer {
	return &Printer{w: w, color: useColor}
}

func (p *Printer) style(s color.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *Printer) hex(hex, text string) string {
	if !p.color || hex == "" {
		return text
	}
	return color.HEX(hex).Sprint(text)
}

// Heading prints a bold title line.
func (p *Printer) Heading(title string) {
	fmt.Fprintln(p.w, p.style(color.New(color.OpBold), title))
}

// Table prints headers and rows with columns padded to their widest cell.
// Width is measured in terminal cells so accented names line up.
func (p *Printer) Table(headers []string, rows [][]string, aligns []Align) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := range headers {
			if i < len(row) {
				widths[i] = max(widths[i], min(runewidth.StringWidth(row[i]), maxCellWidth))
			}
		}
	}

	fmt.Fprintln(p.w, p.style(color.New(color.OpBold), formatRow(headers, widths, aligns)))
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	fmt.Fprintln(p.w, strings.Join(sep, "  "))
	for _, row := range rows {
		fmt.Fprintln(p.w, formatRow(row, widths, aligns))
	}
}

func formatRow(cells []string, widths []int, aligns []Align) string {
	out := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = runewidth.Truncate(cells[i], w, "…")
		}
		if i < len(aligns) && aligns[i] == AlignRight {
			out[i] = runewidth.FillLeft(cell, w)
		} else {
			out[i] = runewidth.FillRight(cell, w)
		}
	}
	return strings.TrimRight(strings.Join(out, "  "), " ")
}
