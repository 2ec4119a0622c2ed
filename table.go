package finview

// TableModel is the shaped statement table: one row per indicator, one
// column per selected year, years ascending. It is derived from a Dataset
// and a year selection, and is rebuilt rather than mutated.
type TableModel struct {
	headers []string
	years   []int
	recs    []SheetRecord // one per column, aligned with years
}

// Rows returns the number of indicator rows.
func (t TableModel) Rows() int { return len(t.headers) }

// Cols returns the number of year columns.
func (t TableModel) Cols() int { return len(t.years) }

// IsEmpty reports whether the table has no year columns to show.
func (t TableModel) IsEmpty() bool { return len(t.years) == 0 }

// Headers returns the indicator names, one per row.
func (t TableModel) Headers() []string { return t.headers }

// Years returns the selected years, ascending, one per column.
func (t TableModel) Years() []int { return t.years }

// Header returns the indicator name of a row, or "" when out of range.
func (t TableModel) Header(row int) string {
	if row < 0 || row >= len(t.headers) {
		return ""
	}
	return t.headers[row]
}

// Year returns the year of a column, or 0 when out of range.
func (t TableModel) Year(col int) int {
	if col < 0 || col >= len(t.years) {
		return 0
	}
	return t.years[col]
}

// Cell returns the value at (row, col). Out-of-range coordinates and
// indicators missing from that year's record yield the empty value.
func (t TableModel) Cell(row, col int) Value {
	if row < 0 || row >= len(t.headers) || col < 0 || col >= len(t.recs) {
		return Value{}
	}
	v, _ := t.recs[col].Field(t.headers[row])
	return v
}

// CellPercent returns the percentage annotation at (row, col), if any.
func (t TableModel) CellPercent(row, col int) (Percent, bool) {
	if row < 0 || row >= len(t.headers) || col < 0 || col >= len(t.recs) {
		return 0, false
	}
	return t.recs[col].Percent(t.headers[row])
}
