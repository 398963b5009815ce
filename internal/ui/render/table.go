package render

import (
	"strings"

	"charm.land/lipgloss/v2"
)

const columnGap = 2

type cell struct {
	text  string
	style *lipgloss.Style
}

// table lays out rows in left-aligned columns sized to their widest cell.
type table struct {
	headers []string
	rows    [][]cell
}

func (t *table) add(cells ...cell) {
	t.rows = append(t.rows, cells)
}

func (t *table) widths() []int {
	w := make([]int, len(t.headers))
	for i, h := range t.headers {
		w[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if i < len(w) && lipgloss.Width(c.text) > w[i] {
				w[i] = lipgloss.Width(c.text)
			}
		}
	}
	return w
}

func (r Renderer) table(t *table) string {
	widths := t.widths()
	var b strings.Builder

	line := func(cells []cell) {
		var parts []string
		for i, c := range cells {
			text := c.text
			if i < len(cells)-1 {
				text += strings.Repeat(" ", widths[i]-lipgloss.Width(c.text)+columnGap)
			}
			if c.style != nil {
				text = r.apply(*c.style, text)
			}
			parts = append(parts, text)
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, ""), " "))
		b.WriteString("\n")
	}

	headers := make([]cell, len(t.headers))
	for i, h := range t.headers {
		headers[i] = r.cell(h, headerStyle)
	}
	line(headers)
	for _, row := range t.rows {
		line(row)
	}
	return b.String()
}

func (r Renderer) cell(text string, style lipgloss.Style) cell {
	if r.Plain {
		return cell{text: text}
	}
	return cell{text: text, style: &style}
}
