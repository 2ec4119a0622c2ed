package finview

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/shopspring/decimal"
)

// Reserved record keys. Everything else in a record object is an indicator
// field. The wire names come from the service contract.
const (
	keyYear    = "ano"
	keyPercent = "percentuais"
)

// SheetRecord is one reporting year of a statement tab: the year, the
// indicator fields in the exact order the spreadsheet lists them, and an
// optional percentage annotation per indicator.
type SheetRecord struct {
	year  int
	names []string
	value map[string]Value
	pct   map[string]Percent
}

// NewSheetRecord returns an empty record for the given reporting year.
func NewSheetRecord(year int) SheetRecord {
	return SheetRecord{
		year:  year,
		value: make(map[string]Value),
		pct:   make(map[string]Percent),
	}
}

// Year returns the reporting year this record describes.
func (r SheetRecord) Year() int { return r.year }

// Len returns the number of indicator fields.
func (r SheetRecord) Len() int { return len(r.names) }

// Set adds or replaces an indicator field. A new name is appended to the
// record's field order; setting an existing name keeps its position.
// Reserved keys are silently ignored.
func (r *SheetRecord) Set(name string, v Value) {
	if name == keyYear || name == keyPercent || name == "" {
		return
	}
	if r.value == nil {
		r.value = make(map[string]Value)
	}
	if _, ok := r.value[name]; !ok {
		r.names = append(r.names, name)
	}
	r.value[name] = v
}

// Field returns the value of the named indicator.
func (r SheetRecord) Field(name string) (Value, bool) {
	v, ok := r.value[name]
	return v, ok
}

// Names returns the indicator names in spreadsheet order.
func (r SheetRecord) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Fields returns an iterator that yields each indicator and its value in
// spreadsheet order.
func (r SheetRecord) Fields() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, name := range r.names {
			if !yield(name, r.value[name]) {
				return
			}
		}
	}
}

// SetPercent annotates the named indicator with its share of a base value.
func (r *SheetRecord) SetPercent(name string, p Percent) {
	if r.pct == nil {
		r.pct = make(map[string]Percent)
	}
	r.pct[name] = p
}

// Percent returns the percentage annotation of the named indicator, if any.
func (r SheetRecord) Percent(name string) (Percent, bool) {
	p, ok := r.pct[name]
	return p, ok
}

// MarshalJSON writes the record with a deterministic key order: the year
// first, then every indicator in spreadsheet order, then the percentage
// annotations.
func (r SheetRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append(keyYear, r.year)
	for name, v := range r.Fields() {
		w.Append(name, v)
	}
	if len(r.pct) > 0 {
		var pw jsonObjectWriter
		for _, name := range r.names {
			if p, ok := r.pct[name]; ok {
				pw.Append(name, float64(p))
			}
		}
		raw, err := pw.MarshalJSON()
		if err != nil {
			return nil, err
		}
		w.Append(keyPercent, json.RawMessage(raw))
	}
	return w.MarshalJSON()
}

// EncodeRecords writes records as a JSON array, preserving each record's
// indicator order.
func EncodeRecords(w io.Writer, records []SheetRecord) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, r := range records {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		b, err := r.MarshalJSON()
		if err != nil {
			return fmt.Errorf("encoding record for year %d: %w", r.year, err)
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// DecodeRecords reads a service payload: either a JSON array of records, or
// the structured "no data" object the service sends instead. Both an empty
// array and the "no data" object decode to zero records without error.
//
// encoding/json would hand fields back through a map and lose the indicator
// order, so records are walked token by token instead.
func DecodeRecords(r io.Reader) ([]SheetRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading records payload: %w", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, fmt.Errorf("reading records payload: unexpected token %v", tok)
	}

	if delim == '{' {
		// The "no data" shape: an object carrying a message instead of rows.
		for dec.More() {
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("reading records payload: %w", err)
			}
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, fmt.Errorf("reading records payload: %w", err)
			}
		}
		return nil, nil
	}
	if delim != '[' {
		return nil, fmt.Errorf("reading records payload: unexpected delimiter %v", delim)
	}

	var records []SheetRecord
	for dec.More() {
		rec, err := decodeRecord(dec)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeRecord consumes one record object from the token stream, keeping the
// order in which keys appear.
func decodeRecord(dec *json.Decoder) (SheetRecord, error) {
	rec := NewSheetRecord(0)

	tok, err := dec.Token()
	if err != nil {
		return rec, fmt.Errorf("reading record: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return rec, fmt.Errorf("reading record: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return rec, fmt.Errorf("reading record: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return rec, fmt.Errorf("reading record: expected key, got %v", keyTok)
		}

		switch key {
		case keyYear:
			var year int
			if err := dec.Decode(&year); err != nil {
				return rec, fmt.Errorf("reading record year: %w", err)
			}
			rec.year = year
		case keyPercent:
			pct := make(map[string]float64)
			if err := dec.Decode(&pct); err != nil {
				return rec, fmt.Errorf("reading record percentages: %w", err)
			}
			for name, p := range pct {
				rec.SetPercent(name, Percent(p))
			}
		default:
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return rec, fmt.Errorf("reading record field %q: %w", key, err)
			}
			v, err := valueFromRaw(raw)
			if err != nil {
				return rec, fmt.Errorf("reading record field %q: %w", key, err)
			}
			rec.Set(key, v)
		}
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return rec, fmt.Errorf("reading record: %w", err)
	}
	return rec, nil
}

// valueFromRaw converts a raw scalar JSON value into a cell Value.
func valueFromRaw(raw json.RawMessage) (Value, error) {
	s := strings.TrimSpace(string(raw))
	switch {
	case s == "" || s == "null":
		return Value{}, nil
	case s == "true" || s == "false":
		return S(s), nil
	case s[0] == '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return Value{}, err
		}
		return S(text), nil
	case s[0] == '{' || s[0] == '[':
		return Value{}, fmt.Errorf("unexpected composite value %s", abbreviate(s))
	default:
		d, err := decimal.NewFromString(s)
		if err != nil {
			return Value{}, err
		}
		return N(d), nil
	}
}

func abbreviate(s string) string {
	if len(s) > 24 {
		return s[:24] + "..."
	}
	return s
}
