package finview

import "testing"

func TestValue_String(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"empty renders the no-value marker", Value{}, NoValue},
		{"empty text is the empty cell", S(""), NoValue},
		{"number renders as currency", N(1234.5), "R$1.234,50"},
		{"negative number keeps the locale form", N(-1234.5), "-R$1.234,50"},
		{"zero is a real value, not a marker", N(0), "R$0,00"},
		{"text renders verbatim", S("Base"), "Base"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"number is a plain JSON number", N(1234.5), "1234.5"},
		{"text is a JSON string", S("Base"), `"Base"`},
		{"empty is null", Value{}, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.MarshalJSON()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValue_Equal(t *testing.T) {
	if !N(1.5).Equal(N(1.5)) {
		t.Error("equal numbers reported unequal")
	}
	if N(1.5).Equal(S("1.5")) {
		t.Error("number and text reported equal")
	}
	if !(Value{}).Equal(S("")) {
		t.Error("empty cell and empty text should be the same value")
	}
}
