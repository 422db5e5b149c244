// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rowreduce/numeric"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

type styles struct {
	step       lipgloss.Style
	annotation lipgloss.Style
	caption    lipgloss.Style
	matrix     lipgloss.Style
	title      lipgloss.Style
	variable   lipgloss.Style
	note       lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, color bool) styles {
	s := styles{
		step:       r.NewStyle(),
		annotation: r.NewStyle(),
		caption:    r.NewStyle(),
		matrix:     r.NewStyle().PaddingLeft(2),
		title:      r.NewStyle(),
		variable:   r.NewStyle(),
		note:       r.NewStyle(),
	}
	if !color {
		return s
	}
	s.step = s.step.Bold(true)
	s.annotation = s.annotation.Bold(true).Foreground(colorAccent)
	s.caption = s.caption.Italic(true).Foreground(colorMuted)
	s.title = s.title.Bold(true).Foreground(colorPrimary)
	s.variable = s.variable.Foreground(colorSecondary)
	s.note = s.note.Foreground(colorError)
	return s
}

// Printer writes reports to one destination.
type Printer struct {
	w      io.Writer
	styles styles
}

// NewPrinter returns a Printer for w. Colour is applied only when color is
// true and w is a terminal that supports it.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, styles: newStyles(lipgloss.NewRenderer(w), color)}
}

// Print writes rep in the named format.
func (p *Printer) Print(rep *Report, format string) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(p.w, p.Text(rep))
		return err
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("render: unknown format %q", format)
	}
}

// Text renders rep as numbered steps followed by the final matrix and the
// variables or note.
func (p *Printer) Text(rep *Report) string {
	var b strings.Builder
	for i, s := range rep.Steps {
		line := s.Annotation
		if line == "" {
			line = s.Description
		}
		fmt.Fprintf(&b, "%s\n%s\n%s\n%s\n\n",
			p.styles.step.Render(fmt.Sprintf("Step %d:", i+1)),
			p.styles.annotation.Render(line),
			p.styles.caption.Render(fmt.Sprintf("Matrix after step %d", i+1)),
			p.styles.matrix.Render(FormatMatrix(s.Matrix, rep.Split)))
	}

	b.WriteString(p.styles.title.Render(rep.Title))
	b.WriteString("\n")
	if len(rep.Result) > 0 {
		b.WriteString(p.styles.matrix.Render(FormatMatrix(rep.Result, rep.ResultSplit)))
		b.WriteString("\n")
	}
	if rep.Note != "" {
		b.WriteString(p.styles.note.Render(rep.Note))
		b.WriteString("\n")
	}
	for _, v := range rep.Variables {
		b.WriteString(p.styles.variable.Render(v.Name + " = " + v.Value))
		b.WriteString("\n")
	}
	if rep.Residual != nil {
		fmt.Fprintf(&b, "residual: %.3g\n", *rep.Residual)
	}
	return b.String()
}

// FormatMatrix lays rows out in right-aligned columns, drawing "|" before
// column split when 0 < split < width.
func FormatMatrix(rows [][]float64, split int) string {
	if len(rows) == 0 {
		return ""
	}
	cells := make([][]string, len(rows))
	widths := make([]int, len(rows[0]))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			c := numeric.FormatAnnotation(v)
			cells[i][j] = c
			if j < len(widths) && len(c) > widths[j] {
				widths[j] = len(c)
			}
		}
	}

	lines := make([]string, len(rows))
	for i, row := range cells {
		var b strings.Builder
		b.WriteString("[")
		for j, c := range row {
			if split > 0 && split < len(row) && j == split {
				b.WriteString(" |")
			}
			w := 0
			if j < len(widths) {
				w = widths[j]
			}
			fmt.Fprintf(&b, " %*s", w, c)
		}
		b.WriteString(" ]")
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
