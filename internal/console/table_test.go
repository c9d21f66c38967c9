package console

import (
	"strconv"
	"strings"
	"testing"
)

func testColumns() []Column {
	return []Column{
		{Label: "ID", Key: "id", Width: 5, Sortable: true},
		{Label: "Name", Key: "name", Width: 20, Sortable: true},
		{Label: "Email", Key: "email", Width: 24},
	}
}

func testRows(n int) []Row {
	rows := make([]Row, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, Row{ID: int64(i), Fields: map[string]string{
			"id":    strconv.Itoa(i),
			"name":  "Person " + strconv.Itoa(i),
			"email": "person" + strconv.Itoa(i) + "@hospital.test",
		}})
	}
	return rows
}

func lineCount(s string) int {
	return len(strings.Split(s, "\n"))
}

func TestRenderTableOneLinePerRow(t *testing.T) {
	out := RenderTable(testColumns(), testRows(4), TableState{})
	// Header plus four data rows.
	if got := lineCount(out); got != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", got, out)
	}
}

func TestRenderTableLoadingShowsSinglePlaceholder(t *testing.T) {
	out := RenderTable(testColumns(), testRows(4), TableState{Loading: true, Spinner: "◐"})
	if got := lineCount(out); got != 2 {
		t.Fatalf("loading must render header plus one placeholder, got %d lines", got)
	}
	if !strings.Contains(out, "loading") {
		t.Error("loading placeholder missing")
	}
	if strings.Contains(out, "Person 1") {
		t.Error("data rows must not render while loading")
	}
}

func TestRenderTableEmptyShowsMessage(t *testing.T) {
	out := RenderTable(testColumns(), nil, TableState{EmptyMessage: "No doctors found"})
	if got := lineCount(out); got != 2 {
		t.Fatalf("empty must render header plus one message line, got %d lines", got)
	}
	if !strings.Contains(out, "No doctors found") {
		t.Error("empty message missing")
	}
}

func TestRenderTableEmptyMessageDefaults(t *testing.T) {
	out := RenderTable(testColumns(), nil, TableState{})
	if !strings.Contains(out, "No records") {
		t.Error("default empty message missing")
	}
}

func TestRenderTableUsesCellRenderFunc(t *testing.T) {
	cols := []Column{
		{Label: "Name", Key: "name", Width: 20},
		{Label: "Status", Key: "status", Width: 10, Render: func(value string, row Row, index int) string {
			return strings.ToUpper(value)
		}},
	}
	rows := []Row{{ID: 1, Fields: map[string]string{"name": "Alice", "status": "active"}}}

	out := RenderTable(cols, rows, TableState{})
	if !strings.Contains(out, "ACTIVE") {
		t.Errorf("render func output missing:\n%s", out)
	}
	if strings.Contains(out, "active") {
		t.Error("raw value must not render when a render func is set")
	}
}

func TestRenderTableHighlightsSelectedRow(t *testing.T) {
	rows := testRows(3)
	withSelection := RenderTable(testColumns(), rows, TableState{SelectedID: 2})
	withoutSelection := RenderTable(testColumns(), rows, TableState{})
	if withSelection == withoutSelection {
		t.Fatal("selected row must render differently")
	}
}

func TestRenderTableSortGlyphFollowsDirection(t *testing.T) {
	asc := RenderTable(testColumns(), testRows(1), TableState{SortField: "name", SortAsc: true})
	desc := RenderTable(testColumns(), testRows(1), TableState{SortField: "name", SortAsc: false})
	if !strings.Contains(asc, glyphAsc) {
		t.Error("ascending glyph missing")
	}
	if !strings.Contains(desc, glyphDesc) {
		t.Error("descending glyph missing")
	}
}

func TestSortIntentOnlyForSortableColumns(t *testing.T) {
	cols := testColumns()

	field, ok := SortIntent(cols, "name")
	if !ok || field != "name" {
		t.Errorf("sortable column must signal intent, got %q %v", field, ok)
	}
	if _, ok := SortIntent(cols, "email"); ok {
		t.Error("non-sortable column must not signal intent")
	}
	if _, ok := SortIntent(cols, "missing"); ok {
		t.Error("unknown column must not signal intent")
	}
}

func TestPadTruncatesAndPads(t *testing.T) {
	if got := pad("abc", 5); got != "abc  " {
		t.Errorf("pad short: %q", got)
	}
	if got := pad("abcdefgh", 5); got != "abcd…" {
		t.Errorf("pad long: %q", got)
	}
	if got := pad("abc", 0); got != "abc" {
		t.Errorf("pad zero width: %q", got)
	}
}
