package sheet

import (
	"slices"
	"testing"

	"github.com/etnz/finview"
	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		cell string
		want string
	}{
		{"R$ 1.234,56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"(1.234,56)", "-1234.56"},
		{"( 500,00 )", "-500"},
		{"-1.234,56", "-1234.56"},
		{"- 500,00", "-500"},
		{"1.234", "1234"}, // a lone dot separates thousands, not decimals
		{"12,5", "12.5"},
		{"0", "0"},
		{"", "0"},
		{"   ", "0"},
		{"n/d", "0"},
		{"Base", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			want, _ := decimal.NewFromString(tt.want)
			if got := ParseAmount(tt.cell); !got.Equal(want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.cell, got, tt.want)
			}
		})
	}
}

func TestYearColumn(t *testing.T) {
	tests := []struct {
		header string
		year   int
		ok     bool
	}{
		{"2023 TOTAL", 2023, true},
		{"2023TOTAL", 2023, true},
		{"2023 TOTAL ", 2023, true},
		{"2024", 2024, true},
		{" 2024 ", 2024, true},
		{"Indicadores", 0, false},
		{"BasePercentual", 0, false},
		{"Média", 0, false},
		{"202", 0, false},
		{"20233 TOTAL", 0, false},
		{"97", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			year, ok := yearColumn(tt.header)
			if year != tt.year || ok != tt.ok {
				t.Errorf("yearColumn(%q) = (%d, %v), want (%d, %v)", tt.header, year, ok, tt.year, tt.ok)
			}
		})
	}
}

// statementGrid mimics a DRE tab: indicator names in the first column, a
// BasePercentual reference column, year columns out of order, and a junk
// column that must be ignored.
func statementGrid() [][]string {
	return [][]string{
		{"Indicadores", "BasePercentual", "2023 TOTAL", "2022 TOTAL", "Obs"},
		{"Receita Bruta", "Base", "R$ 4.000,00", "R$ 2.000,00", "auditado"},
		{"Impostos", "Receita Bruta", "-1.000,00", "(500,00)", ""},
		{"Receita Liquida", "Receita Bruta", "3.000,00", "1.500,00", ""},
		{"Caixa", "", "0", "0"},
		{"Margem", "Caixa", "10,00", "20,00"},
		{"Outros", "Inexistente", "1,00", "2,00"},
	}
}

func TestTransform(t *testing.T) {
	records := Transform(statementGrid())
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Years come out ascending even though the sheet lists 2023 first.
	if records[0].Year() != 2022 || records[1].Year() != 2023 {
		t.Fatalf("years = %d, %d, want 2022, 2023", records[0].Year(), records[1].Year())
	}

	rec := records[0] // 2022
	wantNames := []string{"Receita Bruta", "Impostos", "Receita Liquida", "Caixa", "Margem", "Outros"}
	if got := rec.Names(); !slices.Equal(got, wantNames) {
		t.Errorf("Names() = %v, want %v", got, wantNames)
	}

	if v, _ := rec.Field("Receita Bruta"); !v.Equal(finview.N(2000.0)) {
		t.Errorf("Receita Bruta = %v, want 2000", v)
	}
	if v, _ := rec.Field("Impostos"); !v.Equal(finview.N(-500.0)) {
		t.Errorf("Impostos = %v, want -500 (parentheses mean negative)", v)
	}
}

func TestTransform_Percentages(t *testing.T) {
	records := Transform(statementGrid())
	rec := records[1] // 2023

	// The base row itself carries no percentage.
	if _, ok := rec.Percent("Receita Bruta"); ok {
		t.Error("the base row must not get a percentage")
	}
	// -1000 over a base of 4000.
	if p, ok := rec.Percent("Impostos"); !ok || !p.Equal(finview.Percent(-25)) {
		t.Errorf("Percent(Impostos) = %v (%v), want -25.00", p, ok)
	}
	if p, ok := rec.Percent("Receita Liquida"); !ok || !p.Equal(finview.Percent(75)) {
		t.Errorf("Percent(Receita Liquida) = %v (%v), want 75.00", p, ok)
	}
	// A zero base yields an explicit zero percentage, not a division error.
	if p, ok := rec.Percent("Margem"); !ok || !p.Equal(finview.Percent(0)) {
		t.Errorf("Percent(Margem) = %v (%v), want 0.00", p, ok)
	}
	// An empty reference, or one naming no indicator, yields none at all.
	if _, ok := rec.Percent("Caixa"); ok {
		t.Error("an empty base reference must not produce a percentage")
	}
	if _, ok := rec.Percent("Outros"); ok {
		t.Error("an unknown base reference must not produce a percentage")
	}
}

func TestTransform_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		grid [][]string
	}{
		{"nil grid", nil},
		{"headers only", [][]string{{"Indicadores", "2023 TOTAL"}}},
		{"no year columns", [][]string{
			{"Indicadores", "Obs"},
			{"Receita", "x"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transform(tt.grid); len(got) != 0 {
				t.Errorf("Transform() = %d records, want 0", len(got))
			}
		})
	}
}

func TestTransform_RaggedRows(t *testing.T) {
	// Spreadsheet APIs drop trailing empty cells; short rows read as zero.
	grid := [][]string{
		{"Indicadores", "2022 TOTAL", "2023 TOTAL"},
		{"Receita", "100,00"},
		{"Caixa"},
	}
	records := Transform(grid)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if v, _ := records[1].Field("Receita"); !v.Equal(finview.N(0)) {
		t.Errorf("missing 2023 cell = %v, want 0", v)
	}
	if v, _ := records[0].Field("Caixa"); !v.Equal(finview.N(0)) {
		t.Errorf("missing cells = %v, want 0", v)
	}
}

func TestTransform_SpacerRowsSkipped(t *testing.T) {
	grid := [][]string{
		{"Indicadores", "2022 TOTAL"},
		{"Receita", "100,00"},
		{"", ""},
		{"Caixa", "50,00"},
	}
	rec := Transform(grid)[0]
	if got, want := rec.Names(), []string{"Receita", "Caixa"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
