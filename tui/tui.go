// Package tui is the interactive dashboard: one statement tab on screen as
// an indicator-by-year table, with keyboard and mouse driven tab switching,
// year filtering and cell selection.
//
// The package only hosts the event loop. Lifecycle decisions (what a click
// selects, which fetch answers are stale, what an empty table means) belong
// to finview.Dashboard; the model here translates terminal events into
// dashboard events and renders the outcome.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/etnz/finview"
)

// styles
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	selectedStyle  = lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const indicatorTitle = "Indicador"

// tabsMsg carries the answer of the initial tab-list fetch.
type tabsMsg struct {
	tabs []string
	err  error
}

// recordsMsg carries the answer of a records fetch, tagged with the
// sequence of the request that asked for it.
type recordsMsg struct {
	tab     string
	seq     int
	records []finview.SheetRecord
	err     error
}

// Model hosts a finview.Dashboard over a record source.
type Model struct {
	src    finview.Source
	dash   *finview.Dashboard
	width  int
	height int

	// scroll offsets: first visible data row and year column
	rowOff int
	colOff int
}

// New returns a dashboard model reading from src.
func New(src finview.Source) Model {
	return Model{src: src, dash: finview.NewDashboard()}
}

// Dashboard exposes the lifecycle state, mostly for tests.
func (m Model) Dashboard() *finview.Dashboard { return m.dash }

func (m Model) Init() tea.Cmd {
	return fetchTabs(m.src)
}

func fetchTabs(src finview.Source) tea.Cmd {
	return func() tea.Msg {
		tabs, err := src.Tabs(context.Background())
		return tabsMsg{tabs: tabs, err: err}
	}
}

func fetchRecords(src finview.Source, req *finview.FetchRequest) tea.Cmd {
	return func() tea.Msg {
		records, err := src.Records(context.Background(), req.Tab)
		return recordsMsg{tab: req.Tab, seq: req.Seq, records: records, err: err}
	}
}

// fetch turns a dashboard fetch request into a command, or nil when the
// event needed none.
func (m Model) fetch(req *finview.FetchRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	return fetchRecords(m.src, req)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tabsMsg:
		return m, m.fetch(m.dash.TabsLoaded(msg.tabs, msg.err))

	case recordsMsg:
		m.dash.RecordsLoaded(finview.RecordsResult{
			Tab:     msg.tab,
			Seq:     msg.seq,
			Records: msg.records,
			Err:     msg.err,
		})
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(tea.MouseEvent(msg))
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.dash.Phase() {
	case finview.PhaseUnauthenticated, finview.PhaseErrored, finview.PhaseNoTabs:
		// terminal phases: any key leaves
		return m, tea.Quit
	}

	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m.switchTab(1)
	case "shift+tab":
		return m.switchTab(-1)
	case "r":
		return m, m.fetch(m.dash.Refresh())
	case "a":
		m.dash.SelectAllYears()
		m.colOff = 0
	case "n":
		m.dash.SelectNoYears()
		m.colOff = 0
	case "esc":
		m.dash.Selection().Clear()
	case "up":
		m.rowOff = clampOffset(m.rowOff-1, m.dash.Table().Rows())
	case "down":
		m.rowOff = clampOffset(m.rowOff+1, m.dash.Table().Rows())
	case "left":
		m.colOff = clampOffset(m.colOff-1, m.dash.Table().Cols())
	case "right":
		m.colOff = clampOffset(m.colOff+1, m.dash.Table().Cols())
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		years := m.dash.Years().Available()
		if idx := int(key[0] - '1'); idx < len(years) {
			m.dash.ToggleYear(years[idx])
			m.colOff = 0
		}
	}
	return m, nil
}

// switchTab selects a neighbour tab and rewinds scrolling for it.
func (m Model) switchTab(delta int) (tea.Model, tea.Cmd) {
	req := m.cycleTab(delta)
	if req != nil {
		m.rowOff, m.colOff = 0, 0
	}
	return m, m.fetch(req)
}

// cycleTab selects the neighbour tab in service order, wrapping around.
func (m Model) cycleTab(delta int) *finview.FetchRequest {
	tabs := m.dash.Tabs()
	if len(tabs) < 2 {
		return nil
	}
	idx := slices.Index(tabs, m.dash.CurrentTab())
	if idx < 0 {
		return nil
	}
	next := (idx + delta + len(tabs)) % len(tabs)
	return m.dash.SelectTab(tabs[next])
}

func (m Model) updateMouse(e tea.MouseEvent) (tea.Model, tea.Cmd) {
	if m.dash.Phase() != finview.PhaseReady {
		return m, nil
	}

	switch e.Button {
	case tea.MouseButtonWheelUp:
		m.rowOff = clampOffset(m.rowOff-1, m.dash.Table().Rows())
		return m, nil
	case tea.MouseButtonWheelDown:
		m.rowOff = clampOffset(m.rowOff+1, m.dash.Table().Rows())
		return m, nil
	case tea.MouseButtonWheelLeft:
		m.colOff = clampOffset(m.colOff-1, m.dash.Table().Cols())
		return m, nil
	case tea.MouseButtonWheelRight:
		m.colOff = clampOffset(m.colOff+1, m.dash.Table().Cols())
		return m, nil
	}

	sel := m.dash.Selection()
	layout := newLayout(m.dash.Table(), m.width, m.height, m.rowOff, m.colOff)
	coord, inTable := layout.locate(e.X, e.Y)
	mod := modifierOf(e)

	switch e.Action {
	case tea.MouseActionPress:
		if e.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case e.Y == tabsY:
			tabs := m.dash.Tabs()
			if i, ok := hit(tabSpans(tabs), e.X); ok {
				if req := m.dash.SelectTab(tabs[i]); req != nil {
					m.rowOff, m.colOff = 0, 0
					return m, fetchRecords(m.src, req)
				}
				return m, nil
			}
			sel.Clear()
		case e.Y == yearsY:
			years := m.dash.Years().Available()
			if i, ok := hit(yearSpans(years), e.X); ok {
				m.dash.ToggleYear(years[i])
				m.colOff = 0
				return m, nil
			}
			sel.Clear()
		case !inTable:
			sel.Clear()
		case coord.Row == finview.Header:
			sel.SelectColumn(coord.Col, mod)
		case coord.Col == finview.Header:
			sel.SelectRow(coord.Row, mod)
		default:
			sel.PointerDown(coord, mod)
		}
	case tea.MouseActionMotion:
		if inTable && coord.Row != finview.Header && coord.Col != finview.Header {
			sel.ExtendDrag(coord)
		}
	case tea.MouseActionRelease:
		sel.PointerUp()
	}
	return m, nil
}

func modifierOf(e tea.MouseEvent) finview.Modifier {
	switch {
	case e.Ctrl:
		return finview.ModToggle
	case e.Shift:
		return finview.ModRange
	default:
		return finview.ModNone
	}
}

// --- View ---

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	switch m.dash.Phase() {
	case finview.PhaseInit:
		return titleStyle.Render(" fv") + "\n" + statusStyle.Render(" connecting...") + "\n"
	case finview.PhaseUnauthenticated, finview.PhaseErrored:
		return titleStyle.Render(" fv") + "\n" + errorStyle.Render(" "+m.dash.Message()) + "\n"
	case finview.PhaseNoTabs:
		return titleStyle.Render(" fv") + "\n" + dimStyle.Render(" the service lists no statement tabs") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(" fv — " + m.dash.CurrentTab()))
	b.WriteString("\n")
	b.WriteString(m.viewTabBar())
	b.WriteString("\n")
	b.WriteString(m.viewYears())
	b.WriteString("\n\n")

	if m.dash.Phase() == finview.PhaseTabLoading {
		b.WriteString(statusStyle.Render(fmt.Sprintf(" loading %s...", m.dash.CurrentTab())))
		b.WriteString("\n")
		return b.String()
	}

	m.viewTable(&b)
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(" tab switch  1-9 years  a all  n none  r refresh  arrows scroll  esc clear  q quit"))
	return b.String()
}

func (m Model) viewTabBar() string {
	var parts []string
	for _, tab := range m.dash.Tabs() {
		if tab == m.dash.CurrentTab() {
			parts = append(parts, activeTabStyle.Render(" "+tab+" "))
		} else {
			parts = append(parts, dimStyle.Render(" "+tab+" "))
		}
	}
	return " " + strings.Join(parts, " ")
}

func (m Model) viewYears() string {
	years := m.dash.Years()
	var parts []string
	for i, year := range years.Available() {
		label := fmt.Sprintf("[%d] %d", i+1, year)
		if years.IsSelected(year) {
			parts = append(parts, statusStyle.Render(label))
		} else {
			parts = append(parts, dimStyle.Render(label))
		}
	}
	return yearsPrefix + strings.Join(parts, "  ")
}

func (m Model) viewTable(b *strings.Builder) {
	table := m.dash.Table()
	if table.IsEmpty() {
		b.WriteString(dimStyle.Render(" " + m.emptyBanner()))
		b.WriteString("\n")
		return
	}

	sel := m.dash.Selection()
	layout := newLayout(table, m.width, m.height, m.rowOff, m.colOff)

	// header row
	for i, w := range layout.widths {
		if i > 0 {
			b.WriteString(dimStyle.Render("│"))
		}
		var text string
		style := headerStyle
		if i == 0 {
			text = pad(indicatorTitle, w, false)
		} else {
			col := layout.colOff + i - 1
			text = pad(fmt.Sprintf("%d", table.Year(col)), w, true)
			if sel.IsColumnSelected(col) {
				style = selectedStyle
			}
		}
		b.WriteString(style.Render(" " + text + " "))
	}
	b.WriteString("\n")

	// separator
	for i, w := range layout.widths {
		if i > 0 {
			b.WriteString(dimStyle.Render("┼"))
		}
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
	}
	b.WriteString("\n")

	// data rows
	for r := 0; r < layout.rows; r++ {
		row := layout.rowOff + r
		for i, w := range layout.widths {
			if i > 0 {
				b.WriteString(dimStyle.Render("│"))
			}
			if i == 0 {
				cell := " " + pad(table.Header(row), w, false) + " "
				if sel.IsRowSelected(row) {
					b.WriteString(selectedStyle.Render(cell))
				} else {
					b.WriteString(cell)
				}
				continue
			}
			col := layout.colOff + i - 1
			cell := " " + pad(cellText(table, row, col), w, true) + " "
			if sel.IsCellSelected(finview.Coord{Row: row, Col: col}) {
				b.WriteString(selectedStyle.Render(cell))
			} else {
				b.WriteString(cell)
			}
		}
		b.WriteString("\n")
	}
}

// emptyBanner names the reason a ready table has nothing to show.
func (m Model) emptyBanner() string {
	switch m.dash.EmptyState() {
	case finview.EmptyNoYears:
		return "every year is deselected (press a to bring them back)"
	case finview.EmptyNoMatch:
		return "no records match the selected years"
	default:
		return "no data"
	}
}

func (m Model) viewStatus() string {
	sel := m.dash.Selection()
	if sel.IsEmpty() {
		return statusStyle.Render(" no selection")
	}
	return statusStyle.Render(fmt.Sprintf(" selected: %d cells, %d columns, %d rows",
		sel.CellCount(), sel.ColumnCount(), sel.RowCount()))
}

// Run starts the dashboard program in the alternate screen with mouse
// reporting.
func Run(src finview.Source) error {
	p := tea.NewProgram(New(src), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
