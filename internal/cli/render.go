package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = "  "

type styles struct {
	heading lipgloss.Style
	header  lipgloss.Style
	total   lipgloss.Style
	running lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF")),
		header:  r.NewStyle().Foreground(lipgloss.Color("#666666")),
		total:   r.NewStyle().Bold(true),
		running: r.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

// table lays rows out in left-aligned columns measured by display width.
// The last column is never padded.
type table struct {
	headers []string
	rows    [][]string
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) widths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	return widths
}

func (t *table) render(s styles) string {
	widths := t.widths()

	var b strings.Builder
	b.WriteString(s.header.Render(joinCells(t.headers, widths)))
	b.WriteByte('\n')
	for _, row := range t.rows {
		b.WriteString(joinCells(row, widths))
		b.WriteByte('\n')
	}
	return b.String()
}

func joinCells(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(columnGap)
		}
		if i == len(cells)-1 {
			b.WriteString(cell)
			break
		}
		b.WriteString(padRight(cell, widths[i]))
	}
	return b.String()
}

func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
