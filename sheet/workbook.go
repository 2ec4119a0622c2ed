package sheet

import (
	"context"
	"fmt"

	"github.com/etnz/finview"
	"github.com/xuri/excelize/v2"
)

// Workbook is a local statement source: an .xlsx file whose sheets are the
// tabs. It serves the same records the remote service would, without any
// session.
type Workbook struct {
	path string
	file *excelize.File
}

// Open opens the workbook file.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %q: %w", path, err)
	}
	return &Workbook{path: path, file: f}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error { return w.file.Close() }

// Tabs lists the workbook's sheets, in workbook order.
func (w *Workbook) Tabs(ctx context.Context) ([]string, error) {
	return w.file.GetSheetList(), nil
}

// Records reads the named sheet and shapes it into year records.
func (w *Workbook) Records(ctx context.Context, tab string) ([]finview.SheetRecord, error) {
	rows, err := w.file.GetRows(tab)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %q: %w", tab, w.path, err)
	}
	return Transform(rows), nil
}

var _ finview.Source = (*Workbook)(nil)
