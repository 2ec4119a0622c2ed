package finview

import "slices"

// YearSelection tracks which of a dataset's reporting years the user keeps
// in view. A fresh selection includes every available year; the selected set
// is always a subset of the available ones.
type YearSelection struct {
	available []int // ascending
	selected  map[int]bool
}

// NewYearSelection returns a selection over the given years with all of
// them selected.
func NewYearSelection(available []int) *YearSelection {
	s := &YearSelection{
		available: slices.Clone(available),
		selected:  make(map[int]bool, len(available)),
	}
	slices.Sort(s.available)
	for _, y := range s.available {
		s.selected[y] = true
	}
	return s
}

// Toggle flips the selection state of a year. Years outside the available
// set are ignored.
func (s *YearSelection) Toggle(year int) {
	if !slices.Contains(s.available, year) {
		return
	}
	if s.selected[year] {
		delete(s.selected, year)
	} else {
		s.selected[year] = true
	}
}

// SelectAll selects every available year.
func (s *YearSelection) SelectAll() {
	for _, y := range s.available {
		s.selected[y] = true
	}
}

// SelectNone empties the selection.
func (s *YearSelection) SelectNone() {
	clear(s.selected)
}

// IsSelected reports whether a year is currently selected.
func (s *YearSelection) IsSelected(year int) bool { return s.selected[year] }

// Selected returns the selected years, ascending.
func (s *YearSelection) Selected() []int {
	var years []int
	for _, y := range s.available {
		if s.selected[y] {
			years = append(years, y)
		}
	}
	return years
}

// Available returns every year the dataset offers, ascending.
func (s *YearSelection) Available() []int { return s.available }

// AllSelected reports whether every available year is selected.
func (s *YearSelection) AllSelected() bool { return len(s.selected) == len(s.available) }

// Count returns the number of selected years.
func (s *YearSelection) Count() int { return len(s.selected) }
