package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one table column. Render, when set, formats the cell from
// the raw field value; otherwise the value renders as-is.
type Column struct {
	Label    string
	Key      string
	Width    int
	Sortable bool
	Render   func(value string, row Row, index int) string
}

// Row is one table record: a display id plus field values keyed by column key.
type Row struct {
	ID     int64
	Fields map[string]string
}

// TableState is the display state the renderer receives on every call. The
// renderer itself holds nothing between calls.
type TableState struct {
	Loading      bool
	Spinner      string
	SortField    string
	SortAsc      bool
	EmptyMessage string
	SelectedID   int64
}

const (
	glyphAsc  = "▲"
	glyphDesc = "▼"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#3B4261"))
	cellStyle     = lipgloss.NewStyle()
)

// SortIntent maps a column key to the sort field it signals. Only sortable
// columns produce an intent; everything else reports false. The table never
// sorts anything itself, the caller owns ordering.
func SortIntent(columns []Column, key string) (string, bool) {
	for _, col := range columns {
		if col.Key == key {
			if !col.Sortable {
				return "", false
			}
			return col.Key, true
		}
	}
	return "", false
}

// RenderTable renders the full table: header plus one line per row, or a
// single placeholder line when loading or empty. All rows render on every
// call; datasets are page-sized so there is no virtualization.
func RenderTable(columns []Column, rows []Row, state TableState) string {
	var b strings.Builder
	b.WriteString(renderHeader(columns, state))
	b.WriteByte('\n')

	if state.Loading {
		spinner := state.Spinner
		if spinner == "" {
			spinner = "..."
		}
		b.WriteString(dimStyle.Render(spinner + " loading"))
		return b.String()
	}

	if len(rows) == 0 {
		empty := state.EmptyMessage
		if empty == "" {
			empty = "No records"
		}
		b.WriteString(dimStyle.Render(empty))
		return b.String()
	}

	for i, row := range rows {
		b.WriteString(renderRow(columns, row, i, state))
		if i < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderHeader(columns []Column, state TableState) string {
	cells := make([]string, 0, len(columns))
	for _, col := range columns {
		// Padding is computed on the plain text; styles wrap afterwards so
		// ANSI sequences never count against the column width.
		if !col.Sortable {
			cells = append(cells, headerStyle.Render(pad(col.Label, col.Width)))
			continue
		}

		glyph := glyphAsc
		glyphStyle := dimStyle
		if col.Key == state.SortField {
			glyphStyle = headerStyle
			if !state.SortAsc {
				glyph = glyphDesc
			}
		}
		plain := fmt.Sprintf("%s %s", col.Label, glyph)
		padding := ""
		if n := col.Width - len([]rune(plain)); n > 0 {
			padding = strings.Repeat(" ", n)
		}
		cells = append(cells, headerStyle.Render(col.Label)+" "+glyphStyle.Render(glyph)+padding)
	}
	return strings.Join(cells, " ")
}

func renderRow(columns []Column, row Row, index int, state TableState) string {
	cells := make([]string, 0, len(columns))
	for _, col := range columns {
		value := row.Fields[col.Key]
		if col.Render != nil {
			value = col.Render(value, row, index)
		}
		cells = append(cells, pad(value, col.Width))
	}
	line := strings.Join(cells, " ")
	if state.SelectedID != 0 && row.ID == state.SelectedID {
		return selectedStyle.Render(line)
	}
	return cellStyle.Render(line)
}

// pad truncates or right-pads a cell to the column width. Widths are rune
// counts, not display widths; the data here is ASCII-ish enough.
func pad(value string, width int) string {
	if width <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) > width {
		if width > 1 {
			return string(runes[:width-1]) + "…"
		}
		return string(runes[:width])
	}
	return value + strings.Repeat(" ", width-len(runes))
}
