package finview

import "context"

// Source is where statement data comes from: the remote service, or a
// local workbook opened directly. The dashboard and the CLI only ever see
// this contract.
type Source interface {
	// Tabs lists the statement tabs, in source order. A session rejection
	// wraps ErrUnauthorized.
	Tabs(ctx context.Context) ([]string, error)
	// Records returns one record per reporting year of the named tab. A
	// tab with no data yields an empty slice, not an error.
	Records(ctx context.Context, tab string) ([]SheetRecord, error)
}
