package console

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestApp() *App {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewApp(nil, nil, log)
}

func seedRows(a *App, rows []Row) {
	a.rows[a.active] = rows
	a.totals[a.active] = int64(len(rows))
}

func TestVisibleRowsFiltersBySearch(t *testing.T) {
	a := newTestApp()
	seedRows(a, []Row{
		{ID: 1, Fields: map[string]string{"name": "Alice Wong", "email": "alice@hospital.test"}},
		{ID: 2, Fields: map[string]string{"name": "Bob Reyes", "email": "bob@hospital.test"}},
		{ID: 3, Fields: map[string]string{"name": "Alicia Keys", "email": "alicia@hospital.test"}},
	})

	a.search.SetValue("ali")
	got := a.visibleRows()
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	// Relative order of the source page is preserved.
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("filter must preserve order, got %d then %d", got[0].ID, got[1].ID)
	}
}

func TestVisibleRowsSearchIsCaseInsensitive(t *testing.T) {
	a := newTestApp()
	seedRows(a, []Row{
		{ID: 1, Fields: map[string]string{"name": "Alice Wong"}},
	})

	a.search.SetValue("WONG")
	if len(a.visibleRows()) != 1 {
		t.Fatal("search must match case-insensitively")
	}
}

func TestVisibleRowsSortsWithoutMutatingPage(t *testing.T) {
	a := newTestApp()
	seedRows(a, []Row{
		{ID: 1, Fields: map[string]string{"name": "Carol"}},
		{ID: 2, Fields: map[string]string{"name": "Alice"}},
		{ID: 3, Fields: map[string]string{"name": "Bob"}},
	})

	a.sortField = "name"
	a.sortAsc = true
	got := a.visibleRows()
	if got[0].ID != 2 || got[1].ID != 3 || got[2].ID != 1 {
		t.Fatalf("ascending sort wrong: %v %v %v", got[0].ID, got[1].ID, got[2].ID)
	}

	a.sortAsc = false
	got = a.visibleRows()
	if got[0].ID != 1 {
		t.Fatalf("descending sort wrong, first id %d", got[0].ID)
	}

	if a.rows[a.active][0].ID != 1 {
		t.Fatal("sorting must not reorder the fetched page")
	}
}

func TestVisibleRowsDescendingSortKeepsTieOrder(t *testing.T) {
	a := newTestApp()
	seedRows(a, []Row{
		{ID: 1, Fields: map[string]string{"status": "active"}},
		{ID: 2, Fields: map[string]string{"status": "active"}},
		{ID: 3, Fields: map[string]string{"status": "active"}},
	})

	a.sortField = "status"
	a.sortAsc = false
	got := a.visibleRows()
	if got[0].ID != 1 || got[1].ID != 2 || got[2].ID != 3 {
		t.Fatalf("stable descending sort must preserve tie order, got %d %d %d",
			got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestVisibleRowsSortsNumericFieldsNumerically(t *testing.T) {
	a := newTestApp()
	seedRows(a, []Row{
		{ID: 1, Fields: map[string]string{"stock": "9"}},
		{ID: 2, Fields: map[string]string{"stock": "100"}},
		{ID: 3, Fields: map[string]string{"stock": "20"}},
	})

	a.sortField = "stock"
	a.sortAsc = true
	got := a.visibleRows()
	if got[0].ID != 1 || got[1].ID != 3 || got[2].ID != 2 {
		t.Fatalf("numeric sort wrong: %v %v %v", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestCycleSortWalksSortableColumns(t *testing.T) {
	a := newTestApp()

	a.cycleSort()
	if a.sortField != "id" || !a.sortAsc {
		t.Fatalf("first cycle must sort the first sortable column ascending, got %q asc=%v", a.sortField, a.sortAsc)
	}
	a.cycleSort()
	if a.sortField != "id" || a.sortAsc {
		t.Fatalf("second cycle must flip to descending, got %q asc=%v", a.sortField, a.sortAsc)
	}
	a.cycleSort()
	if a.sortField != "name" || !a.sortAsc {
		t.Fatalf("third cycle must advance to the next sortable column, got %q asc=%v", a.sortField, a.sortAsc)
	}
}

func TestStaleFetchResultIsDropped(t *testing.T) {
	a := newTestApp()
	seedRows(a, []Row{{ID: 1, Fields: map[string]string{"name": "Current"}}})
	a.fetchGen = 5

	model, _ := a.Update(fetchResultMsg{
		generation: 4,
		resource:   a.active,
		rows:       []Row{{ID: 99, Fields: map[string]string{"name": "Stale"}}},
		total:      1,
	})
	a = model.(*App)

	rows := a.rows[a.active]
	if len(rows) != 1 || rows[0].ID != 1 {
		t.Fatal("stale response must not overwrite current rows")
	}
}

func TestCurrentFetchResultApplies(t *testing.T) {
	a := newTestApp()
	a.fetchGen = 5
	a.loading = true

	model, _ := a.Update(fetchResultMsg{
		generation: 5,
		resource:   a.active,
		rows:       []Row{{ID: 7, Fields: map[string]string{"name": "Fresh"}}},
		total:      1,
	})
	a = model.(*App)

	if a.loading {
		t.Error("loading must clear when the current fetch lands")
	}
	if rows := a.rows[a.active]; len(rows) != 1 || rows[0].ID != 7 {
		t.Fatalf("fresh rows not applied: %+v", rows)
	}
}

func TestClampSelectionAfterShrink(t *testing.T) {
	a := newTestApp()
	seedRows(a, []Row{
		{ID: 1, Fields: map[string]string{"name": "A"}},
		{ID: 2, Fields: map[string]string{"name": "B"}},
	})
	a.selection = 1

	seedRows(a, []Row{{ID: 1, Fields: map[string]string{"name": "A"}}})
	a.clampSelection()
	if a.selection != 0 {
		t.Fatalf("selection must clamp to the last row, got %d", a.selection)
	}
}
