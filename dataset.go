package finview

import (
	"iter"
	"slices"
)

// Dataset is an immutable view over one tab's records, built once when the
// tab loads. It caches the header sequence and the available years so that
// year filtering never changes what the rows mean.
type Dataset struct {
	records []SheetRecord
	headers []string // first record's field order
	years   []int    // ascending
	byYear  map[int]int
}

// NewDataset indexes records into a dataset. The header sequence is the
// first record's field order; a record whose year was already seen is
// ignored. A nil or empty slice yields an empty dataset.
func NewDataset(records []SheetRecord) *Dataset {
	d := &Dataset{byYear: make(map[int]int)}
	for _, rec := range records {
		if _, seen := d.byYear[rec.Year()]; seen {
			continue
		}
		d.byYear[rec.Year()] = len(d.records)
		d.records = append(d.records, rec)
		d.years = append(d.years, rec.Year())
	}
	slices.Sort(d.years)
	if len(d.records) > 0 {
		d.headers = d.records[0].Names()
	}
	return d
}

// Headers returns the indicator names, in the order the spreadsheet lists
// them. The sequence is fixed at load time and survives year filtering.
func (d *Dataset) Headers() []string { return d.headers }

// Years returns every reporting year present, ascending.
func (d *Dataset) Years() []int { return d.years }

// Record returns the record for the given year.
func (d *Dataset) Record(year int) (SheetRecord, bool) {
	i, ok := d.byYear[year]
	if !ok {
		return SheetRecord{}, false
	}
	return d.records[i], true
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// IsEmpty reports whether the dataset holds no records at all.
func (d *Dataset) IsEmpty() bool { return len(d.records) == 0 }

// All returns an iterator over the records in ascending year order.
func (d *Dataset) All() iter.Seq[SheetRecord] {
	return func(yield func(SheetRecord) bool) {
		for _, year := range d.years {
			if !yield(d.records[d.byYear[year]]) {
				return
			}
		}
	}
}

// Shape projects the dataset onto the selected years. Years absent from the
// dataset are ignored; selecting no present year yields a table with the
// full header column and zero year columns, never an error.
func (d *Dataset) Shape(selected []int) TableModel {
	t := TableModel{headers: d.headers}
	for _, year := range d.years {
		if !slices.Contains(selected, year) {
			continue
		}
		t.years = append(t.years, year)
		t.recs = append(t.recs, d.records[d.byYear[year]])
	}
	return t
}
