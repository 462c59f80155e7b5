package jsondb

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Collection names
const (
	Users         = "users"
	Shops         = "shops"
	Transactions  = "transactions"
	Payments      = "payments"
	OTPs          = "otps"
	Notifications = "notifications"
)

// Collections lists every collection present in an empty document
var Collections = []string{Users, Shops, Transactions, Payments, OTPs, Notifications}

// Record is one stored entity. Values are plain JSON values: string, float64,
// bool, nil, []any or map[string]any.
type Record map[string]any

// Matcher selects records whose fields equal every listed value
type Matcher map[string]any

// ID returns the record id, or "" when absent
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Decode converts a record into a typed value through its JSON form
func Decode(r Record, v any) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}

// DecodeAll decodes every record into a slice of T
func DecodeAll[T any](records []Record) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		var v T
		if err := Decode(r, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Encode converts a typed value into a record. Fields tagged omitempty stay absent.
func Encode(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("failed to decode value as record: %w", err)
	}
	if r == nil {
		return nil, fmt.Errorf("value %T does not encode to a JSON object", v)
	}
	return r, nil
}

// normalize maps v to the value it reads back as after a JSON round trip
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeRecord(r Record) (Record, error) {
	if r == nil {
		return Record{}, nil
	}
	out, err := Encode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize record: %w", err)
	}
	return out, nil
}

func normalizeMatcher(m Matcher) (Matcher, error) {
	out := make(Matcher, len(m))
	for k, v := range m {
		nv, err := normalize(v)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize matcher field %q: %w", k, err)
		}
		out[k] = nv
	}
	return out, nil
}

// matches reports whether r satisfies every pair of a normalized matcher.
// A field that is absent never equals a value.
func (m Matcher) matches(r Record) bool {
	for k, want := range m {
		got, ok := r[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
