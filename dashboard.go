package finview

import "slices"

// Phase is the dashboard lifecycle state.
type Phase int

const (
	// PhaseInit is the initial state: the tab list is being fetched.
	PhaseInit Phase = iota
	// PhaseTabLoading means records for the selected tab are being fetched.
	PhaseTabLoading
	// PhaseReady means the table is shaped and interactive.
	PhaseReady
	// PhaseNoTabs is terminal: the service knows no tabs at all.
	PhaseNoTabs
	// PhaseUnauthenticated is terminal: the session was rejected and the
	// user must log in again.
	PhaseUnauthenticated
	// PhaseErrored is terminal: a fetch failed for a reason other than
	// authentication; Message carries the cause.
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "initializing"
	case PhaseTabLoading:
		return "tabLoading"
	case PhaseReady:
		return "ready"
	case PhaseNoTabs:
		return "noTabs"
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// LoginInstruction is what every session rejection surfaces to the user.
const LoginInstruction = "session is missing or expired: run 'fv login' to sign in again"

// EmptyState tells why a ready dashboard shows no data, so each case gets
// its own informational banner. None of these are errors.
type EmptyState int

const (
	// EmptyNone: there is data to show.
	EmptyNone EmptyState = iota
	// EmptyNoTabs: the service lists no tabs.
	EmptyNoTabs
	// EmptyNoYears: the tab has years but the user deselected all of them.
	EmptyNoYears
	// EmptyNoMatch: years are selected but no record matches them.
	EmptyNoMatch
)

// FetchRequest asks the host to load records for a tab. Seq tags the
// eventual RecordsResult so the dashboard can recognize answers that a
// newer request has superseded.
type FetchRequest struct {
	Tab string
	Seq int
}

// RecordsResult is the host's answer to a FetchRequest.
type RecordsResult struct {
	Tab     string
	Seq     int
	Records []SheetRecord
	Err     error
}

// Dashboard sequences the dashboard lifecycle: tab discovery, record
// loading, year filtering and grid selection. It is purely event-driven
// and performs no I/O itself: events that need a fetch return a
// FetchRequest for the host to resolve, and the host feeds the answer
// back in. All methods must be called from a single goroutine.
type Dashboard struct {
	phase   Phase
	message string

	tabs []string
	tab  string
	seq  int // sequence of the latest records request

	dataset *Dataset
	years   *YearSelection
	table   TableModel
	sel     *Selection
}

// NewDashboard returns a dashboard in the initializing phase. The host is
// expected to fetch the tab list and report it through TabsLoaded.
func NewDashboard() *Dashboard {
	return &Dashboard{
		phase:   PhaseInit,
		dataset: NewDataset(nil),
		years:   NewYearSelection(nil),
		sel:     NewSelection(0, 0),
	}
}

// Phase returns the current lifecycle phase.
func (d *Dashboard) Phase() Phase { return d.phase }

// Message returns the human-readable cause of a terminal phase.
func (d *Dashboard) Message() string { return d.message }

// Tabs returns the tab list, in service order.
func (d *Dashboard) Tabs() []string { return d.tabs }

// CurrentTab returns the selected tab name, "" before tabs are known.
func (d *Dashboard) CurrentTab() string { return d.tab }

// Table returns the shaped table for the current tab and year selection.
func (d *Dashboard) Table() TableModel { return d.table }

// Selection returns the grid selection state.
func (d *Dashboard) Selection() *Selection { return d.sel }

// Years returns the year selection for the current tab.
func (d *Dashboard) Years() *YearSelection { return d.years }

// TabsLoaded reports the outcome of the initial tab-list fetch. With tabs
// present it selects the first one and returns the records request for it;
// an empty list settles into the no-tabs terminal state.
func (d *Dashboard) TabsLoaded(tabs []string, err error) *FetchRequest {
	if d.phase != PhaseInit {
		return nil
	}
	if err != nil {
		d.fail(err)
		return nil
	}
	if len(tabs) == 0 {
		d.phase = PhaseNoTabs
		return nil
	}
	d.tabs = slices.Clone(tabs)
	return d.load(d.tabs[0])
}

// SelectTab switches to another tab from the tab list and returns the
// records request for it. Selecting the current tab again, an unknown name,
// or calling in a phase without tabs is a no-op.
func (d *Dashboard) SelectTab(name string) *FetchRequest {
	if d.phase != PhaseReady && d.phase != PhaseTabLoading {
		return nil
	}
	if name == d.tab || !slices.Contains(d.tabs, name) {
		return nil
	}
	return d.load(name)
}

// Refresh re-requests the current tab's records.
func (d *Dashboard) Refresh() *FetchRequest {
	if d.phase != PhaseReady && d.phase != PhaseTabLoading {
		return nil
	}
	return d.load(d.tab)
}

// load re-enters tabLoading for the given tab with a fresh sequence number.
// Anything in flight is superseded from this point on.
func (d *Dashboard) load(tab string) *FetchRequest {
	d.tab = tab
	d.seq++
	d.phase = PhaseTabLoading
	d.sel.Clear()
	return &FetchRequest{Tab: tab, Seq: d.seq}
}

// RecordsLoaded consumes a fetch answer. Answers whose sequence is not the
// latest are discarded outright, whatever they carry: a stale failure, even
// a stale unauthorized, must not disturb the request that superseded it.
func (d *Dashboard) RecordsLoaded(res RecordsResult) {
	if res.Seq != d.seq {
		return
	}
	if d.phase != PhaseTabLoading {
		return
	}
	if res.Err != nil {
		d.fail(res.Err)
		return
	}
	d.dataset = NewDataset(res.Records)
	d.years = NewYearSelection(d.dataset.Years())
	d.reshape()
	d.phase = PhaseReady
}

// ToggleYear flips one year of the current tab in or out of view. No
// re-fetch happens: the table is reshaped from the records already loaded.
func (d *Dashboard) ToggleYear(year int) {
	if d.phase != PhaseReady {
		return
	}
	d.years.Toggle(year)
	d.reshape()
}

// SelectAllYears brings every available year back into view.
func (d *Dashboard) SelectAllYears() {
	if d.phase != PhaseReady {
		return
	}
	d.years.SelectAll()
	d.reshape()
}

// SelectNoYears hides every year.
func (d *Dashboard) SelectNoYears() {
	if d.phase != PhaseReady {
		return
	}
	d.years.SelectNone()
	d.reshape()
}

// reshape rebuilds the table for the current year selection and resets the
// grid selection, whose coordinates no longer line up.
func (d *Dashboard) reshape() {
	d.table = d.dataset.Shape(d.years.Selected())
	d.sel.Resize(d.table.Rows(), d.table.Cols())
}

func (d *Dashboard) fail(err error) {
	if IsUnauthorized(err) {
		d.phase = PhaseUnauthenticated
		d.message = LoginInstruction
		return
	}
	d.phase = PhaseErrored
	d.message = err.Error()
}

// EmptyState tells which informational banner a ready, dataless dashboard
// should show.
func (d *Dashboard) EmptyState() EmptyState {
	switch {
	case d.phase == PhaseNoTabs:
		return EmptyNoTabs
	case d.phase != PhaseReady || !d.table.IsEmpty():
		return EmptyNone
	case len(d.years.Available()) > 0 && d.years.Count() == 0:
		return EmptyNoYears
	default:
		return EmptyNoMatch
	}
}
