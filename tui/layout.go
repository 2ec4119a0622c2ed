package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/etnz/finview"
)

// Fixed vertical chrome above the table: title, tab bar, years line and a
// blank line. The column headers render right below, then a separator, then
// the data rows. locate and the view must agree on these offsets.
const (
	tabsY   = 1
	yearsY  = 2
	headerY = 4
	dataY   = headerY + 2
)

const yearsPrefix = " years: "

const (
	minColWidth = 4
	maxColWidth = 30
)

// span is a half-open horizontal range [start, end) of screen cells.
type span struct{ start, end int }

func (s span) contains(x int) bool { return x >= s.start && x < s.end }

// tableLayout is the on-screen geometry of the statement table: one span
// per visible column, spans[0] being the indicator column. It is computed
// from the table and the scroll offsets alone, so the view and the mouse
// hit-testing cannot disagree.
type tableLayout struct {
	widths []int  // inner width per visible column
	spans  []span // screen range per visible column
	rows   int    // visible data rows
	rowOff int    // first visible data row
	colOff int    // first visible year column
}

// newLayout fits the table into a width×height terminal, starting at the
// given scroll offsets. Columns that do not fit are not shown, and neither
// are rows below the footer.
func newLayout(t finview.TableModel, width, height, rowOff, colOff int) tableLayout {
	rowOff = clampOffset(rowOff, t.Rows())
	colOff = clampOffset(colOff, t.Cols())
	widths := columnWidths(t, colOff)

	// Fit columns left to right: each costs its width plus two padding
	// cells, plus one separator between columns.
	visible := len(widths)
	if width > 0 {
		used := 0
		for i, w := range widths {
			cost := w + 2
			if i > 0 {
				cost++
			}
			if used+cost > width && i > 0 {
				visible = i
				break
			}
			used += cost
		}
	}
	widths = widths[:visible]

	spans := make([]span, len(widths))
	x := 0
	for i, w := range widths {
		if i > 0 {
			x++ // separator
		}
		spans[i] = span{start: x, end: x + w + 2}
		x = spans[i].end
	}

	rows := t.Rows() - rowOff
	if height > 0 {
		if avail := height - dataY - 3; avail < rows {
			rows = avail
		}
		if rows < 0 {
			rows = 0
		}
	}

	return tableLayout{widths: widths, spans: spans, rows: rows, rowOff: rowOff, colOff: colOff}
}

// clampOffset keeps a scroll offset inside a table extent of the given size.
func clampOffset(off, size int) int {
	if off > size-1 {
		off = size - 1
	}
	if off < 0 {
		off = 0
	}
	return off
}

// locate maps a screen position to a table coordinate. Year headers map to
// (Header, col), indicator cells to (row, Header), data cells to (row, col),
// always in table coordinates whatever the scroll offsets. Anything else,
// the corner included, is not part of the table.
func (l tableLayout) locate(x, y int) (finview.Coord, bool) {
	col := -1
	for i, s := range l.spans {
		if s.contains(x) {
			col = i
			break
		}
	}
	if col < 0 {
		return finview.Coord{}, false
	}

	switch {
	case y == headerY:
		if col == 0 {
			return finview.Coord{}, false
		}
		return finview.Coord{Row: finview.Header, Col: l.colOff + col - 1}, true
	case y >= dataY && y < dataY+l.rows:
		row := l.rowOff + y - dataY
		if col == 0 {
			return finview.Coord{Row: row, Col: finview.Header}, true
		}
		return finview.Coord{Row: row, Col: l.colOff + col - 1}, true
	}
	return finview.Coord{}, false
}

// tabSpans returns the screen range of each label on the tab bar, matching
// viewTabBar's rendering.
func tabSpans(tabs []string) []span {
	spans := make([]span, len(tabs))
	x := 1
	for i, tab := range tabs {
		spans[i] = span{start: x, end: x + utf8.RuneCountInString(tab) + 2}
		x = spans[i].end + 1
	}
	return spans
}

// yearSpans returns the screen range of each label on the years line,
// matching viewYears' rendering.
func yearSpans(years []int) []span {
	spans := make([]span, len(years))
	x := utf8.RuneCountInString(yearsPrefix)
	for i, year := range years {
		w := utf8.RuneCountInString(fmt.Sprintf("[%d] %d", i+1, year))
		spans[i] = span{start: x, end: x + w}
		x = spans[i].end + 2
	}
	return spans
}

// hit returns the index of the span under x.
func hit(spans []span, x int) (int, bool) {
	for i, s := range spans {
		if s.contains(x) {
			return i, true
		}
	}
	return 0, false
}

// columnWidths sizes the indicator column and each year column from colOff
// on to their widest content, bounded to keep degenerate sheets on screen.
// Widths are measured over every row, not only the visible ones, so they do
// not shift while scrolling vertically.
func columnWidths(t finview.TableModel, colOff int) []int {
	widths := make([]int, t.Cols()-colOff+1)

	widths[0] = utf8.RuneCountInString(indicatorTitle)
	for row := 0; row < t.Rows(); row++ {
		if w := utf8.RuneCountInString(t.Header(row)); w > widths[0] {
			widths[0] = w
		}
	}

	for i := 1; i < len(widths); i++ {
		col := colOff + i - 1
		w := minColWidth // a year label
		for row := 0; row < t.Rows(); row++ {
			if cw := utf8.RuneCountInString(cellText(t, row, col)); cw > w {
				w = cw
			}
		}
		widths[i] = w
	}

	for i := range widths {
		if widths[i] < minColWidth {
			widths[i] = minColWidth
		}
		if widths[i] > maxColWidth {
			widths[i] = maxColWidth
		}
	}
	return widths
}

// cellText formats one cell the way the table shows it, percentage
// annotation included.
func cellText(t finview.TableModel, row, col int) string {
	text := t.Cell(row, col).String()
	if p, ok := t.CellPercent(row, col); ok {
		text = fmt.Sprintf("%s (%s)", text, p)
	}
	return text
}

// pad fits s into width runes, left or right aligned, truncating with a
// trailing dot.
func pad(s string, width int, right bool) string {
	if utf8.RuneCountInString(s) > width {
		runes := []rune(s)
		s = string(runes[:width-1]) + "."
	}
	if right {
		return fmt.Sprintf("%*s", width, s)
	}
	return fmt.Sprintf("%-*s", width, s)
}
