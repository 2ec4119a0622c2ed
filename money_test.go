package finview

import "testing"

func TestMoney_String(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"negative with thousands", -1234.5, "-R$1.234,50"},
		{"positive with thousands", 1234.5, "R$1.234,50"},
		{"millions", 2796011.0, "R$2.796.011,00"},
		{"negative millions", -2796011.0, "-R$2.796.011,00"},
		{"zero", 0, "R$0,00"},
		{"cents only", 0.05, "R$0,05"},
		{"negative cents", -0.05, "-R$0,05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := M(tt.value, DisplayCurrency).String()
			if got != tt.want {
				t.Errorf("M(%v).String() = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestMoney_LeadingMinusBeforeGrapheme(t *testing.T) {
	// The minus sign must come before the currency marker, and the magnitude
	// after it must be the absolute value.
	got := M(-1234.5, DisplayCurrency).String()
	if got[0] != '-' {
		t.Fatalf("M(-1234.5).String() = %q, want leading minus", got)
	}
	if got[1:] != M(1234.5, DisplayCurrency).String() {
		t.Errorf("magnitude of %q is not the absolute value", got)
	}
}

func TestMoney_SignedString(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"positive gets a plus", 10, "+R$10,00"},
		{"negative keeps its minus", -10, "-R$10,00"},
		{"zero is a dash", 0, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := M(tt.value, DisplayCurrency).SignedString()
			if got != tt.want {
				t.Errorf("SignedString() = %q, want %q", got, tt.want)
			}
		})
	}
}
