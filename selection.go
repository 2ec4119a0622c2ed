package finview

import "slices"

// Selection is the grid's selection state: three independently tracked
// partitions (data cells, column headers, row headers), the range anchor,
// and the pressed flag that backs drag selection. All mutation happens
// through the methods below; none of them can fail, and out-of-range
// targets are no-ops.
type Selection struct {
	rows, cols int // data grid bounds

	cells   map[Coord]bool
	columns map[int]bool
	rowSet  map[int]bool

	anchor Anchor

	pressed bool
	origin  Coord // press-start cell, meaningful only while pressed
}

// NewSelection returns an empty selection over a rows×cols data grid.
func NewSelection(rows, cols int) *Selection {
	return &Selection{
		rows:    rows,
		cols:    cols,
		cells:   make(map[Coord]bool),
		columns: make(map[int]bool),
		rowSet:  make(map[int]bool),
	}
}

// Resize adjusts the selection to a reshaped grid and clears it: the old
// coordinates point at cells that no longer mean the same thing.
func (s *Selection) Resize(rows, cols int) {
	s.rows, s.cols = rows, cols
	s.Clear()
}

// Clear empties all three partitions and drops the anchor. It must run
// whenever the underlying dataset changes, and when a press lands outside
// the grid.
func (s *Selection) Clear() {
	clear(s.cells)
	clear(s.columns)
	clear(s.rowSet)
	s.anchor = Anchor{}
}

// SelectCell applies a cell gesture.
//
// ModNone replaces the whole selection with this one cell and anchors on it.
// ModToggle flips this cell alone and moves the anchor to it. ModRange
// replaces the cell partition with the rectangle spanned by the anchor and
// the target; it needs a cell anchor, and degrades to ModNone when the
// anchor is of another kind.
func (s *Selection) SelectCell(c Coord, mod Modifier) {
	if !c.InGrid(s.rows, s.cols) {
		return
	}
	switch mod {
	case ModToggle:
		if s.cells[c] {
			delete(s.cells, c)
		} else {
			s.cells[c] = true
		}
		s.anchor = Anchor{Kind: AnchorCell, At: c}
	case ModRange:
		if s.anchor.Kind != AnchorCell {
			s.SelectCell(c, ModNone)
			return
		}
		clear(s.cells)
		for _, cell := range rectangle(s.anchor.At, c) {
			s.cells[cell] = true
		}
	default:
		s.Clear()
		s.cells[c] = true
		s.anchor = Anchor{Kind: AnchorCell, At: c}
	}
}

// SelectColumn applies a column-header gesture: the header plus every data
// cell of the column. Modifiers mirror SelectCell; ModRange spans whole
// columns between the anchor column and the target.
func (s *Selection) SelectColumn(col int, mod Modifier) {
	if col < 0 || col >= s.cols {
		return
	}
	switch mod {
	case ModToggle:
		if s.columns[col] {
			delete(s.columns, col)
			for r := 0; r < s.rows; r++ {
				delete(s.cells, Coord{Row: r, Col: col})
			}
		} else {
			s.addColumn(col)
		}
		s.anchor = Anchor{Kind: AnchorColumn, At: Coord{Row: Header, Col: col}}
	case ModRange:
		if s.anchor.Kind != AnchorColumn {
			s.SelectColumn(col, ModNone)
			return
		}
		lo, hi := minmax(s.anchor.At.Col, col)
		clear(s.columns)
		clear(s.cells)
		for c := lo; c <= hi; c++ {
			s.addColumn(c)
		}
	default:
		s.Clear()
		s.addColumn(col)
		s.anchor = Anchor{Kind: AnchorColumn, At: Coord{Row: Header, Col: col}}
	}
}

// SelectRow applies a row-header gesture, the mirror of SelectColumn.
func (s *Selection) SelectRow(row int, mod Modifier) {
	if row < 0 || row >= s.rows {
		return
	}
	switch mod {
	case ModToggle:
		if s.rowSet[row] {
			delete(s.rowSet, row)
			for c := 0; c < s.cols; c++ {
				delete(s.cells, Coord{Row: row, Col: c})
			}
		} else {
			s.addRow(row)
		}
		s.anchor = Anchor{Kind: AnchorRow, At: Coord{Row: row, Col: Header}}
	case ModRange:
		if s.anchor.Kind != AnchorRow {
			s.SelectRow(row, ModNone)
			return
		}
		lo, hi := minmax(s.anchor.At.Row, row)
		clear(s.rowSet)
		clear(s.cells)
		for r := lo; r <= hi; r++ {
			s.addRow(r)
		}
	default:
		s.Clear()
		s.addRow(row)
		s.anchor = Anchor{Kind: AnchorRow, At: Coord{Row: row, Col: Header}}
	}
}

// PointerDown applies a press on a data cell: the cell gesture first, then
// arming drag extension from this cell. Presses outside the data grid do
// not arm dragging.
func (s *Selection) PointerDown(c Coord, mod Modifier) {
	if !c.InGrid(s.rows, s.cols) {
		return
	}
	s.SelectCell(c, mod)
	s.pressed = true
	s.origin = c
}

// ExtendDrag recomputes the dragged rectangle from the press origin to c,
// replacing the cell partition. It only acts while the press that armed it
// is still held; modifiers play no part.
func (s *Selection) ExtendDrag(c Coord) {
	if !s.pressed || !c.InGrid(s.rows, s.cols) {
		return
	}
	clear(s.cells)
	for _, cell := range rectangle(s.origin, c) {
		s.cells[cell] = true
	}
}

// PointerUp ends any press. It runs on every release, wherever it lands: a
// drag may well finish outside the grid.
func (s *Selection) PointerUp() {
	s.pressed = false
}

func (s *Selection) addColumn(col int) {
	s.columns[col] = true
	for r := 0; r < s.rows; r++ {
		s.cells[Coord{Row: r, Col: col}] = true
	}
}

func (s *Selection) addRow(row int) {
	s.rowSet[row] = true
	for c := 0; c < s.cols; c++ {
		s.cells[Coord{Row: row, Col: c}] = true
	}
}

// IsCellSelected reports whether a data cell is highlighted.
func (s *Selection) IsCellSelected(c Coord) bool { return s.cells[c] }

// IsColumnSelected reports whether a column header is highlighted.
func (s *Selection) IsColumnSelected(col int) bool { return s.columns[col] }

// IsRowSelected reports whether a row header is highlighted.
func (s *Selection) IsRowSelected(row int) bool { return s.rowSet[row] }

// CellCount returns the number of highlighted data cells.
func (s *Selection) CellCount() int { return len(s.cells) }

// ColumnCount returns the number of highlighted column headers.
func (s *Selection) ColumnCount() int { return len(s.columns) }

// RowCount returns the number of highlighted row headers.
func (s *Selection) RowCount() int { return len(s.rowSet) }

// IsEmpty reports whether nothing at all is highlighted.
func (s *Selection) IsEmpty() bool {
	return len(s.cells) == 0 && len(s.columns) == 0 && len(s.rowSet) == 0
}

// Cells returns the highlighted data cells in row-major order.
func (s *Selection) Cells() []Coord {
	cells := make([]Coord, 0, len(s.cells))
	for c := range s.cells {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, func(a, b Coord) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return cells
}

// Columns returns the highlighted column indices, ascending.
func (s *Selection) Columns() []int { return sortedKeys(s.columns) }

// Rows returns the highlighted row indices, ascending.
func (s *Selection) Rows() []int { return sortedKeys(s.rowSet) }

// Anchor returns the current range anchor.
func (s *Selection) Anchor() Anchor { return s.anchor }

// Pressed reports whether a press is currently armed for dragging.
func (s *Selection) Pressed() bool { return s.pressed }

// rectangle lists every cell of the inclusive span between two corners,
// min/max on each axis independently, so the result does not depend on
// which corner came first.
func rectangle(a, b Coord) []Coord {
	top, bottom := minmax(a.Row, b.Row)
	left, right := minmax(a.Col, b.Col)
	cells := make([]Coord, 0, (bottom-top+1)*(right-left+1))
	for r := top; r <= bottom; r++ {
		for c := left; c <= right; c++ {
			cells = append(cells, Coord{Row: r, Col: c})
		}
	}
	return cells
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
