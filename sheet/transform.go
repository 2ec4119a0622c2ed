// Package sheet turns raw spreadsheet grids into statement records. It is
// the local counterpart of the remote service: the same tabs, read straight
// from an .xlsx file instead of the service's API.
package sheet

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/finview"
	"github.com/shopspring/decimal"
)

// BaseColumn names the column that tells, for each indicator row, which
// indicator its percentage is computed against. A row whose reference reads
// "Base" is itself a base and gets no percentage.
const BaseColumn = "BasePercentual"

// yearTotal matches the usual year column header, "2023 TOTAL".
var yearTotal = regexp.MustCompile(`^(\d{4})\s*TOTAL`)

// yearColumn extracts the reporting year from a column header: either the
// "YYYY TOTAL" form or a bare four digit year. Anything else is not a year
// column.
func yearColumn(header string) (int, bool) {
	if m := yearTotal.FindStringSubmatch(header); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			return y, true
		}
	}
	y, err := strconv.Atoi(strings.TrimSpace(header))
	if err == nil && y >= 1000 && y <= 9999 {
		return y, true
	}
	return 0, false
}

// ParseAmount converts a pt-BR formatted cell into a number. "R$ 1.234,56",
// "(1.234,56)" and "-1.234,56" all parse; the currency marker and thousands
// dots are dropped, the decimal comma becomes a point, and parentheses mean
// a negative amount. Anything unreadable counts as zero, the way the source
// spreadsheets treat blank cells.
func ParseAmount(cell string) decimal.Decimal {
	s := strings.TrimSpace(cell)
	if s == "" {
		return decimal.Zero
	}
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = strings.TrimSpace(s[1 : len(s)-1])
		neg = true
	} else if strings.HasPrefix(s, "-") {
		s = strings.TrimSpace(s[1:])
		neg = true
	}
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if neg {
		return d.Neg()
	}
	return d
}

// Transform shapes a raw grid into one record per year column, ascending.
// The first row holds the column headers, the first column the indicator
// names. Year columns are recognized by yearColumn; every other column is
// ignored, except BaseColumn which drives the percentage annotations.
//
// A grid without at least a header row and one data row, or without any
// year column, yields no records.
func Transform(grid [][]string) []finview.SheetRecord {
	if len(grid) < 2 {
		return nil
	}
	headers := grid[0]
	rows := grid[1:]

	// cell tolerates the ragged rows spreadsheet APIs return.
	cell := func(row []string, col int) string {
		if col < 0 || col >= len(row) {
			return ""
		}
		return row[col]
	}

	type yearCol struct {
		year int
		col  int
	}
	var years []yearCol
	baseCol := -1
	for i, h := range headers {
		if i == 0 {
			continue // the indicator name column
		}
		if h == BaseColumn {
			baseCol = i
			continue
		}
		if y, ok := yearColumn(h); ok {
			years = append(years, yearCol{year: y, col: i})
		}
	}
	if len(years) == 0 {
		return nil
	}
	// chronological columns, whatever order the sheet uses
	slices.SortStableFunc(years, func(a, b yearCol) int { return a.year - b.year })

	// first occurence of each indicator name, for base row lookups
	byName := make(map[string]int)
	for i, row := range rows {
		name := strings.TrimSpace(cell(row, 0))
		if name == "" {
			continue
		}
		if _, ok := byName[name]; !ok {
			byName[name] = i
		}
	}

	var records []finview.SheetRecord
	for _, yc := range years {
		rec := finview.NewSheetRecord(yc.year)
		for _, row := range rows {
			name := strings.TrimSpace(cell(row, 0))
			if name == "" {
				continue // spacer rows carry no indicator
			}
			value := ParseAmount(cell(row, yc.col))
			rec.Set(name, finview.N(value))

			if baseCol < 0 {
				continue
			}
			ref := strings.TrimSpace(cell(row, baseCol))
			if ref == "" || strings.EqualFold(ref, "base") {
				continue
			}
			baseRow, ok := byName[ref]
			if !ok {
				continue // reference is not an indicator of this tab
			}
			base := ParseAmount(cell(rows[baseRow], yc.col))
			if base.IsZero() {
				rec.SetPercent(name, 0)
				continue
			}
			pct := value.Div(base).Mul(decimal.NewFromInt(100)).RoundBank(2)
			rec.SetPercent(name, finview.Percent(pct.InexactFloat64()))
		}
		records = append(records, rec)
	}
	return records
}
