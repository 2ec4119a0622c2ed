package finview

import (
	"bytes"
	"reflect"
	"slices"
	"strings"
	"testing"
)

// mustRecords decodes a payload or fails the test.
func mustRecords(t *testing.T, payload string) []SheetRecord {
	t.Helper()
	records, err := DecodeRecords(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeRecords() error: %v", err)
	}
	return records
}

func TestDecodeRecords_KeepsIndicatorOrder(t *testing.T) {
	// Indicator order is the spreadsheet's row order; a map-based decode
	// would scramble it.
	payload := `[{"ano": 2024, "Receita Bruta": 2796011.0, "Impostos": -354041.0, "Receita Liquida": 2441970.0}]`
	records := mustRecords(t, payload)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Year() != 2024 {
		t.Errorf("Year() = %d, want 2024", rec.Year())
	}
	want := []string{"Receita Bruta", "Impostos", "Receita Liquida"}
	if got := rec.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestDecodeRecords_Percentages(t *testing.T) {
	payload := `[{"ano": 2023, "Receita Bruta": 100.0, "Impostos": -12.5,
		"percentuais": {"Impostos": -12.5}}]`
	records := mustRecords(t, payload)
	rec := records[0]

	// percentuais is a reserved key, not an indicator.
	if slices.Contains(rec.Names(), keyPercent) {
		t.Errorf("Names() includes the reserved key %q", keyPercent)
	}
	p, ok := rec.Percent("Impostos")
	if !ok {
		t.Fatal("Percent(Impostos) not found")
	}
	if !p.Equal(Percent(-12.5)) {
		t.Errorf("Percent(Impostos) = %v, want -12.5", p)
	}
	if _, ok := rec.Percent("Receita Bruta"); ok {
		t.Error("Receita Bruta should carry no percentage")
	}
}

func TestDecodeRecords_ValueKinds(t *testing.T) {
	payload := `[{"ano": 2022, "Margem": "Base", "Caixa": 12.3, "Obs": null}]`
	rec := mustRecords(t, payload)[0]

	if v, _ := rec.Field("Margem"); !v.Equal(S("Base")) {
		t.Errorf("Margem = %v, want text Base", v)
	}
	if v, _ := rec.Field("Caixa"); !v.Equal(N(12.3)) {
		t.Errorf("Caixa = %v, want 12.3", v)
	}
	if v, _ := rec.Field("Obs"); !v.IsEmpty() {
		t.Errorf("Obs = %v, want empty", v)
	}
}

func TestDecodeRecords_NoDataMessage(t *testing.T) {
	// The service answers a dataless tab with a message object. That is an
	// empty input, not an error.
	payload := `{"message": "Nenhum dado encontrado para a aba 'DRE'"}`
	records, err := DecodeRecords(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeRecords() error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestDecodeRecords_Empty(t *testing.T) {
	for _, payload := range []string{"[]", ""} {
		records, err := DecodeRecords(strings.NewReader(payload))
		if err != nil {
			t.Fatalf("DecodeRecords(%q) error: %v", payload, err)
		}
		if len(records) != 0 {
			t.Errorf("DecodeRecords(%q) = %d records, want 0", payload, len(records))
		}
	}
}

func TestEncodeRecords_RoundTrip(t *testing.T) {
	rec := NewSheetRecord(2024)
	rec.Set("Receita Bruta", N(2796011.0))
	rec.Set("Impostos", N(-354041.0))
	rec.SetPercent("Impostos", Percent(-12.66))

	var buf bytes.Buffer
	if err := EncodeRecords(&buf, []SheetRecord{rec}); err != nil {
		t.Fatalf("EncodeRecords() error: %v", err)
	}

	decoded := mustRecords(t, buf.String())
	if len(decoded) != 1 {
		t.Fatalf("got %d records, want 1", len(decoded))
	}
	got := decoded[0]
	if got.Year() != 2024 {
		t.Errorf("Year() = %d, want 2024", got.Year())
	}
	if !reflect.DeepEqual(got.Names(), rec.Names()) {
		t.Errorf("Names() = %v, want %v", got.Names(), rec.Names())
	}
	if p, ok := got.Percent("Impostos"); !ok || !p.Equal(Percent(-12.66)) {
		t.Errorf("Percent(Impostos) = %v (%v), want -12.66", p, ok)
	}
}

func TestEncodeRecords_YearComesFirst(t *testing.T) {
	rec := NewSheetRecord(2023)
	rec.Set("Caixa", N(1))

	var buf bytes.Buffer
	if err := EncodeRecords(&buf, []SheetRecord{rec}); err != nil {
		t.Fatalf("EncodeRecords() error: %v", err)
	}
	want := `[{"ano":2023,"Caixa":1}]`
	if buf.String() != want {
		t.Errorf("EncodeRecords() = %s, want %s", buf.String(), want)
	}
}

func TestSheetRecord_SetKeepsPosition(t *testing.T) {
	rec := NewSheetRecord(2024)
	rec.Set("A", N(1))
	rec.Set("B", N(2))
	rec.Set("A", N(3)) // overwrite must not move A to the back

	if got, want := rec.Names(), []string{"A", "B"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if v, _ := rec.Field("A"); !v.Equal(N(3)) {
		t.Errorf("Field(A) = %v, want 3", v)
	}
}

func TestSheetRecord_ReservedKeysIgnored(t *testing.T) {
	rec := NewSheetRecord(2024)
	rec.Set(keyYear, N(1999))
	rec.Set(keyPercent, N(1))
	rec.Set("", N(1))
	if rec.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after setting only reserved keys", rec.Len())
	}
}
