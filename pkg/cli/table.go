package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for terminal output.
type Theme struct {
	Primary lipgloss.Color // Header and border accent color
	Dim     lipgloss.Color // Dimmed/secondary text color
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Table renders tabular data with styled headers for terminal display.
type Table struct {
	Headers []string
	Rows    [][]string
	Theme   Theme
}

// NewTable creates a table with the default theme.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers, Theme: DefaultTheme}
}

// AddRow appends one row. Short rows are padded with empty cells.
func (t *Table) AddRow(cells ...string) {
	for len(cells) < len(t.Headers) {
		cells = append(cells, "")
	}
	t.Rows = append(t.Rows, cells)
}

// Render returns the table as a string.
func (t *Table) Render() string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Theme.Primary)
	dimStyle := lipgloss.NewStyle().Foreground(t.Theme.Dim)

	var sb strings.Builder
	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Render(pad(h, widths[i])))
		if i < len(t.Headers)-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteByte('\n')
	for i := range t.Headers {
		sb.WriteString(dimStyle.Render(strings.Repeat("─", widths[i])))
		if i < len(t.Headers)-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteByte('\n')

	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			sb.WriteString(pad(cell, widths[i]))
			if i < len(widths)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
