package console

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"hospital-admin-console/internal/client"
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/store"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// resource identifies one console tab.
type resource int

const (
	resourceDoctors resource = iota
	resourceNurses
	resourcePatients
	resourceAppointments
	resourceMedicines
	resourceLabTests
	resourceInvoices
)

var resourceNames = [...]string{
	"Doctors",
	"Nurses",
	"Patients",
	"Appointments",
	"Medicines",
	"Lab Tests",
	"Invoices",
}

const fetchTimeout = 10 * time.Second

// pageLimit is the page size every tab fetches. Sorting and filtering happen
// in memory over this page, never against the server.
const pageLimit = 100

// fetchResultMsg delivers a completed fetch. Generation guards against a slow
// response overwriting the state of a newer fetch.
type fetchResultMsg struct {
	generation int
	resource   resource
	rows       []Row
	total      int64
	err        error
}

type deleteResultMsg struct {
	resource resource
	id       int64
	err      error
}

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1)
	offlineStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5C07B"))
)

// App is the console model: one tab per resource, a search box, and a table.
type App struct {
	client *client.Client
	store  *store.Store
	log    *logrus.Logger

	active  resource
	rows    map[resource][]Row
	totals  map[resource]int64
	loading bool
	offline bool

	// Each fetch bumps the generation; stale responses are dropped and the
	// superseded request is cancelled through its context.
	fetchGen    int
	cancelFetch context.CancelFunc

	search    textinput.Model
	searching bool
	spin      spinner.Model

	sortField string
	sortAsc   bool
	selection int

	status string
	width  int
	height int
}

func NewApp(apiClient *client.Client, snapshotStore *store.Store, log *logrus.Logger) *App {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &App{
		client:  apiClient,
		store:   snapshotStore,
		log:     log,
		rows:    make(map[resource][]Row),
		totals:  make(map[resource]int64),
		search:  search,
		spin:    spin,
		sortAsc: true,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.fetchCmd())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case fetchResultMsg:
		if msg.generation != a.fetchGen {
			// Stale response from a superseded fetch.
			return a, nil
		}
		a.loading = false
		if msg.err != nil {
			a.status = fmt.Sprintf("fetch failed: %v", msg.err)
			a.log.Warnf("Fetch failed for %s: %v", resourceNames[msg.resource], msg.err)
			return a, nil
		}
		a.rows[msg.resource] = msg.rows
		a.totals[msg.resource] = msg.total
		a.clampSelection()
		a.status = fmt.Sprintf("%d of %d %s", len(msg.rows), msg.total, strings.ToLower(resourceNames[msg.resource]))
		return a, nil

	case deleteResultMsg:
		if msg.err != nil {
			a.status = fmt.Sprintf("delete failed: %v", msg.err)
			return a, a.fetchCmd()
		}
		a.status = fmt.Sprintf("deleted %s #%d", strings.ToLower(resourceNames[msg.resource]), msg.id)
		return a, a.fetchCmd()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		switch msg.String() {
		case "enter", "esc":
			a.searching = false
			a.search.Blur()
			a.clampSelection()
			return a, nil
		default:
			var cmd tea.Cmd
			a.search, cmd = a.search.Update(msg)
			a.clampSelection()
			return a, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "tab", "right":
		a.switchTab(1)
		return a, a.fetchCmd()
	case "shift+tab", "left":
		a.switchTab(-1)
		return a, a.fetchCmd()
	case "up", "k":
		if a.selection > 0 {
			a.selection--
		}
		return a, nil
	case "down", "j":
		if a.selection < len(a.visibleRows())-1 {
			a.selection++
		}
		return a, nil
	case "/":
		a.searching = true
		a.search.Focus()
		return a, textinput.Blink
	case "s":
		a.cycleSort()
		return a, nil
	case "r":
		return a, a.fetchCmd()
	case "x":
		return a.deleteSelected()
	case "o":
		a.offline = !a.offline
		if a.offline {
			a.status = "offline mode: reading local snapshot"
		} else {
			a.status = "online mode"
		}
		return a, a.fetchCmd()
	}

	return a, nil
}

func (a *App) switchTab(delta int) {
	n := len(resourceNames)
	a.active = resource((int(a.active) + delta + n) % n)
	a.selection = 0
	a.sortField = ""
	a.sortAsc = true
	a.search.SetValue("")
}

// cycleSort walks the sortable columns: none → first asc → first desc → next
// asc → ... → none. The table only signals intent, the app owns ordering.
func (a *App) cycleSort() {
	cols := a.columns()
	sortable := make([]string, 0, len(cols))
	for _, col := range cols {
		if field, ok := SortIntent(cols, col.Key); ok {
			sortable = append(sortable, field)
		}
	}
	if len(sortable) == 0 {
		return
	}

	if a.sortField == "" {
		a.sortField = sortable[0]
		a.sortAsc = true
		return
	}
	if a.sortAsc {
		a.sortAsc = false
		return
	}
	for i, field := range sortable {
		if field == a.sortField {
			if i+1 < len(sortable) {
				a.sortField = sortable[i+1]
				a.sortAsc = true
			} else {
				a.sortField = ""
				a.sortAsc = true
			}
			return
		}
	}
	a.sortField = ""
}

func (a *App) deleteSelected() (tea.Model, tea.Cmd) {
	rows := a.visibleRows()
	if a.selection >= len(rows) {
		return a, nil
	}
	id := rows[a.selection].ID
	res := a.active

	// Optimistic: drop the row locally, then confirm against the backend and
	// re-fetch either way.
	kept := make([]Row, 0, len(a.rows[res]))
	for _, row := range a.rows[res] {
		if row.ID != id {
			kept = append(kept, row)
		}
	}
	a.rows[res] = kept
	a.clampSelection()

	if a.offline {
		return a, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			return deleteResultMsg{resource: res, id: id, err: a.deleteOffline(ctx, res, id)}
		}
	}

	return a, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		var err error
		switch res {
		case resourceDoctors:
			err = a.client.DeleteDoctor(ctx, id)
		case resourceNurses:
			err = a.client.DeleteNurse(ctx, id)
		case resourcePatients:
			err = a.client.DeletePatient(ctx, id)
		case resourceAppointments:
			err = a.client.DeleteAppointment(ctx, id)
		case resourceMedicines:
			err = a.client.DeleteMedicine(ctx, id)
		case resourceLabTests:
			err = a.client.DeleteLabTest(ctx, id)
		case resourceInvoices:
			err = a.client.CancelInvoice(ctx, id)
		}
		return deleteResultMsg{resource: res, id: id, err: err}
	}
}

func (a *App) deleteOffline(ctx context.Context, res resource, id int64) error {
	switch res {
	case resourceDoctors:
		return a.store.DeleteDoctor(ctx, id)
	case resourceNurses:
		return a.store.DeleteNurse(ctx, id)
	case resourcePatients:
		return a.store.DeletePatient(ctx, id)
	case resourceAppointments:
		return a.store.DeleteAppointment(ctx, id)
	}
	return fmt.Errorf("%s is not available offline", resourceNames[res])
}

// fetchCmd starts a fetch for the active tab. Any in-flight fetch is
// cancelled and its eventual response dropped by the generation check.
func (a *App) fetchCmd() tea.Cmd {
	if a.cancelFetch != nil {
		a.cancelFetch()
	}
	a.fetchGen++
	gen := a.fetchGen
	res := a.active
	a.loading = true

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	a.cancelFetch = cancel

	if a.offline {
		return func() tea.Msg {
			defer cancel()
			rows, err := a.loadOffline(res)
			return fetchResultMsg{generation: gen, resource: res, rows: rows, total: int64(len(rows)), err: err}
		}
	}

	return func() tea.Msg {
		defer cancel()
		rows, total, err := a.loadOnline(ctx, res)
		return fetchResultMsg{generation: gen, resource: res, rows: rows, total: total, err: err}
	}
}

func (a *App) loadOnline(ctx context.Context, res resource) ([]Row, int64, error) {
	opts := client.ListOptions{Page: 1, Limit: pageLimit}
	switch res {
	case resourceDoctors:
		page, err := a.client.ListDoctors(ctx, opts)
		if err != nil {
			return nil, 0, err
		}
		rows := make([]Row, 0, len(page.Content))
		for _, d := range page.Content {
			rows = append(rows, doctorRow(d))
		}
		return rows, page.TotalElements, nil
	case resourceNurses:
		page, err := a.client.ListNurses(ctx, opts)
		if err != nil {
			return nil, 0, err
		}
		rows := make([]Row, 0, len(page.Content))
		for _, n := range page.Content {
			rows = append(rows, nurseRow(n))
		}
		return rows, page.TotalElements, nil
	case resourcePatients:
		page, err := a.client.ListPatients(ctx, opts)
		if err != nil {
			return nil, 0, err
		}
		rows := make([]Row, 0, len(page.Content))
		for _, p := range page.Content {
			rows = append(rows, patientRow(p))
		}
		return rows, page.TotalElements, nil
	case resourceAppointments:
		page, err := a.client.ListAppointments(ctx, opts)
		if err != nil {
			return nil, 0, err
		}
		names := a.appointmentNameIndex(ctx)
		rows := make([]Row, 0, len(page.Content))
		for _, appt := range page.Content {
			rows = append(rows, appointmentRow(appt, names))
		}
		return rows, page.TotalElements, nil
	case resourceMedicines:
		page, err := a.client.ListMedicines(ctx, opts)
		if err != nil {
			return nil, 0, err
		}
		rows := make([]Row, 0, len(page.Content))
		for _, m := range page.Content {
			rows = append(rows, medicineRow(m))
		}
		return rows, page.TotalElements, nil
	case resourceLabTests:
		page, err := a.client.ListLabTests(ctx, opts)
		if err != nil {
			return nil, 0, err
		}
		rows := make([]Row, 0, len(page.Content))
		for _, t := range page.Content {
			rows = append(rows, labTestRow(t))
		}
		return rows, page.TotalElements, nil
	case resourceInvoices:
		page, err := a.client.ListInvoices(ctx, opts)
		if err != nil {
			return nil, 0, err
		}
		rows := make([]Row, 0, len(page.Content))
		for _, inv := range page.Content {
			rows = append(rows, invoiceRow(inv))
		}
		return rows, page.TotalElements, nil
	}
	return nil, 0, nil
}

func (a *App) loadOffline(res resource) ([]Row, error) {
	switch res {
	case resourceDoctors:
		doctors := a.store.Doctors()
		rows := make([]Row, 0, len(doctors))
		for _, d := range doctors {
			rows = append(rows, Row{ID: d.ID, Fields: map[string]string{
				"id": strconv.FormatInt(d.ID, 10), "name": d.Name, "email": d.Email,
				"specialization": d.Specialization, "department": d.Department, "status": d.Status,
			}})
		}
		return rows, nil
	case resourceNurses:
		nurses := a.store.Nurses()
		rows := make([]Row, 0, len(nurses))
		for _, n := range nurses {
			rows = append(rows, Row{ID: n.ID, Fields: map[string]string{
				"id": strconv.FormatInt(n.ID, 10), "name": n.Name, "email": n.Email,
				"department": n.Department, "shift": n.Shift, "status": n.Status,
			}})
		}
		return rows, nil
	case resourcePatients:
		patients := a.store.Patients()
		rows := make([]Row, 0, len(patients))
		for _, p := range patients {
			rows = append(rows, Row{ID: p.ID, Fields: map[string]string{
				"id": strconv.FormatInt(p.ID, 10), "name": p.Name, "email": p.Email,
				"phone": p.Phone, "blood_group": p.BloodGroup, "status": p.Status,
			}})
		}
		return rows, nil
	case resourceAppointments:
		appointments := a.store.Appointments()
		rows := make([]Row, 0, len(appointments))
		for _, appt := range appointments {
			// Dangling references resolve to a placeholder, never an error.
			rows = append(rows, Row{ID: appt.ID, Fields: map[string]string{
				"id":      strconv.FormatInt(appt.ID, 10),
				"patient": a.store.PatientName(appt.PatientID),
				"doctor":  a.store.DoctorName(appt.DoctorID),
				"date":    appt.Date.Format("2006-01-02"),
				"time":    appt.Time,
				"status":  string(appt.Status),
			}})
		}
		return rows, nil
	}
	return nil, fmt.Errorf("%s is not available offline", resourceNames[res])
}

// appointmentNameIndex pulls the current doctor and patient pages so
// appointment rows can show names instead of ids. Missing entries resolve to
// the same placeholder the offline store uses.
func (a *App) appointmentNameIndex(ctx context.Context) map[string]string {
	names := make(map[string]string)
	if page, err := a.client.ListDoctors(ctx, client.ListOptions{Page: 1, Limit: pageLimit}); err == nil {
		for _, d := range page.Content {
			names["d"+strconv.FormatInt(d.ID, 10)] = d.Name
		}
	}
	if page, err := a.client.ListPatients(ctx, client.ListOptions{Page: 1, Limit: pageLimit}); err == nil {
		for _, p := range page.Content {
			names["p"+strconv.FormatInt(p.ID, 10)] = p.Name
		}
	}
	return names
}

func doctorRow(d dto.DoctorResponse) Row {
	return Row{ID: d.ID, Fields: map[string]string{
		"id": strconv.FormatInt(d.ID, 10), "name": d.Name, "email": d.Email,
		"specialization": d.Specialization, "department": d.Department, "status": d.Status,
	}}
}

func nurseRow(n dto.NurseResponse) Row {
	return Row{ID: n.ID, Fields: map[string]string{
		"id": strconv.FormatInt(n.ID, 10), "name": n.Name, "email": n.Email,
		"department": n.Department, "shift": n.Shift, "status": n.Status,
	}}
}

func patientRow(p dto.PatientResponse) Row {
	return Row{ID: p.ID, Fields: map[string]string{
		"id": strconv.FormatInt(p.ID, 10), "name": p.Name, "email": p.Email,
		"phone": p.Phone, "blood_group": p.BloodGroup, "status": p.Status,
	}}
}

func appointmentRow(appt dto.AppointmentResponse, names map[string]string) Row {
	patient, ok := names["p"+strconv.FormatInt(appt.PatientID, 10)]
	if !ok {
		patient = store.NotFoundName
	}
	doctor, ok := names["d"+strconv.FormatInt(appt.DoctorID, 10)]
	if !ok {
		doctor = store.NotFoundName
	}
	return Row{ID: appt.ID, Fields: map[string]string{
		"id":      strconv.FormatInt(appt.ID, 10),
		"patient": patient,
		"doctor":  doctor,
		"date":    appt.Date,
		"time":    appt.Time,
		"status":  appt.Status,
	}}
}

func medicineRow(m dto.MedicineResponse) Row {
	return Row{ID: m.ID, Fields: map[string]string{
		"id": strconv.FormatInt(m.ID, 10), "name": m.Name, "category": m.Category,
		"price": m.Price.StringFixed(2), "stock": strconv.Itoa(m.Stock), "status": m.Status,
	}}
}

func labTestRow(t dto.LabTestResponse) Row {
	return Row{ID: t.ID, Fields: map[string]string{
		"id": strconv.FormatInt(t.ID, 10), "test_name": t.TestName, "category": t.Category,
		"status": t.Status, "price": t.Price.StringFixed(2),
		"requested_at": t.RequestedAt.Format("2006-01-02"),
	}}
}

func invoiceRow(inv dto.InvoiceResponse) Row {
	return Row{ID: inv.ID, Fields: map[string]string{
		"id":         strconv.FormatInt(inv.ID, 10),
		"patient_id": strconv.FormatInt(inv.PatientID, 10),
		"total":      inv.TotalAmount.StringFixed(2),
		"status":     inv.Status,
		"issued":     inv.IssuedAt.Format("2006-01-02"),
	}}
}

func (a *App) columns() []Column {
	switch a.active {
	case resourceDoctors:
		return []Column{
			{Label: "ID", Key: "id", Width: 5, Sortable: true},
			{Label: "Name", Key: "name", Width: 24, Sortable: true},
			{Label: "Email", Key: "email", Width: 28},
			{Label: "Specialization", Key: "specialization", Width: 18, Sortable: true},
			{Label: "Department", Key: "department", Width: 16},
			{Label: "Status", Key: "status", Width: 10, Sortable: true},
		}
	case resourceNurses:
		return []Column{
			{Label: "ID", Key: "id", Width: 5, Sortable: true},
			{Label: "Name", Key: "name", Width: 24, Sortable: true},
			{Label: "Email", Key: "email", Width: 28},
			{Label: "Department", Key: "department", Width: 16, Sortable: true},
			{Label: "Shift", Key: "shift", Width: 10},
			{Label: "Status", Key: "status", Width: 10, Sortable: true},
		}
	case resourcePatients:
		return []Column{
			{Label: "ID", Key: "id", Width: 5, Sortable: true},
			{Label: "Name", Key: "name", Width: 24, Sortable: true},
			{Label: "Email", Key: "email", Width: 28},
			{Label: "Phone", Key: "phone", Width: 14},
			{Label: "Blood", Key: "blood_group", Width: 6},
			{Label: "Status", Key: "status", Width: 10, Sortable: true},
		}
	case resourceAppointments:
		return []Column{
			{Label: "ID", Key: "id", Width: 5, Sortable: true},
			{Label: "Patient", Key: "patient", Width: 22},
			{Label: "Doctor", Key: "doctor", Width: 22},
			{Label: "Date", Key: "date", Width: 12, Sortable: true},
			{Label: "Time", Key: "time", Width: 7},
			{Label: "Status", Key: "status", Width: 11, Sortable: true},
		}
	case resourceMedicines:
		return []Column{
			{Label: "ID", Key: "id", Width: 5, Sortable: true},
			{Label: "Name", Key: "name", Width: 26, Sortable: true},
			{Label: "Category", Key: "category", Width: 16},
			{Label: "Price", Key: "price", Width: 10, Sortable: true},
			{Label: "Stock", Key: "stock", Width: 7, Sortable: true},
			{Label: "Status", Key: "status", Width: 10},
		}
	case resourceLabTests:
		return []Column{
			{Label: "ID", Key: "id", Width: 5, Sortable: true},
			{Label: "Test", Key: "test_name", Width: 26, Sortable: true},
			{Label: "Category", Key: "category", Width: 16},
			{Label: "Status", Key: "status", Width: 12, Sortable: true},
			{Label: "Price", Key: "price", Width: 10},
			{Label: "Requested", Key: "requested_at", Width: 12, Sortable: true},
		}
	case resourceInvoices:
		return []Column{
			{Label: "ID", Key: "id", Width: 5, Sortable: true},
			{Label: "Patient", Key: "patient_id", Width: 9},
			{Label: "Total", Key: "total", Width: 12, Sortable: true},
			{Label: "Status", Key: "status", Width: 11, Sortable: true},
			{Label: "Issued", Key: "issued", Width: 12, Sortable: true},
		}
	}
	return nil
}

// visibleRows filters the fetched page by the search query and sorts it by
// the active sort field. The underlying page is never mutated.
func (a *App) visibleRows() []Row {
	rows := a.rows[a.active]
	query := strings.ToLower(strings.TrimSpace(a.search.Value()))
	if query != "" {
		filtered := make([]Row, 0, len(rows))
		for _, row := range rows {
			for _, value := range row.Fields {
				if strings.Contains(strings.ToLower(value), query) {
					filtered = append(filtered, row)
					break
				}
			}
		}
		rows = filtered
	}

	if a.sortField == "" {
		return rows
	}

	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	field := a.sortField
	asc := a.sortAsc
	sort.SliceStable(sorted, func(i, j int) bool {
		// Descending compares swapped operands; ties stay false either way
		// so the stable sort keeps their original order.
		if !asc {
			i, j = j, i
		}
		vi, vj := sorted[i].Fields[field], sorted[j].Fields[field]
		// Numeric fields compare numerically where both sides parse.
		ni, erri := strconv.ParseFloat(vi, 64)
		nj, errj := strconv.ParseFloat(vj, 64)
		if erri == nil && errj == nil {
			return ni < nj
		}
		return strings.ToLower(vi) < strings.ToLower(vj)
	})
	return sorted
}

func (a *App) clampSelection() {
	n := len(a.visibleRows())
	if n == 0 {
		a.selection = 0
	} else if a.selection >= n {
		a.selection = n - 1
	}
}

func (a *App) View() string {
	var b strings.Builder

	title := "⚕ HOSPITAL ADMIN"
	if a.offline {
		title += "  " + offlineStyle.Render("[OFFLINE]")
		if a.store.Degraded() {
			title += " " + offlineStyle.Render("(memory only)")
		}
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	tabs := make([]string, len(resourceNames))
	for i, name := range resourceNames {
		if resource(i) == a.active {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	b.WriteString(strings.Join(tabs, "│"))
	b.WriteString("\n\n")

	if a.searching || a.search.Value() != "" {
		b.WriteString(a.search.View())
		b.WriteString("\n\n")
	}

	rows := a.visibleRows()
	var selectedID int64
	if a.selection < len(rows) {
		selectedID = rows[a.selection].ID
	}
	b.WriteString(RenderTable(a.columns(), rows, TableState{
		Loading:      a.loading,
		Spinner:      a.spin.View(),
		SortField:    a.sortField,
		SortAsc:      a.sortAsc,
		EmptyMessage: "No " + strings.ToLower(resourceNames[a.active]) + " found",
		SelectedID:   selectedID,
	}))
	b.WriteString("\n")

	help := "tab switch · ↑/↓ select · / search · s sort · r refresh · x delete · o offline · q quit"
	b.WriteString(statusStyle.Render(a.status + "\n" + help))
	return b.String()
}
