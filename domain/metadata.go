package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Metadata is an insertion-ordered collection of string keys mapping to
// primitive values (string, bool, int64, float64). It exists for
// forward-compatible extension of records and deliberately has no closed
// schema. JSON encoding preserves key order; decoding keeps document order.
//
// Raw configuration maps carry no ordering, so metadata built from a
// RawRecord takes its keys in sorted order. Order is stable from then on.
type Metadata struct {
	fields []MetadataField
}

// MetadataField is one key/value pair inside a Metadata collection.
type MetadataField struct {
	Key   string
	Value any
}

// Len returns the number of fields.
func (m Metadata) Len() int { return len(m.fields) }

// Keys returns the keys in order.
func (m Metadata) Keys() []string {
	keys := make([]string, len(m.fields))
	for i, f := range m.fields {
		keys[i] = f.Key
	}
	return keys
}

// Get returns the value for key and whether it is present.
func (m Metadata) Get(key string) (any, bool) {
	for _, f := range m.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set stores a value for key, replacing in place if the key already exists
// and appending otherwise. Values must be primitives; anything else is
// coerced through normalizePrimitive and rejected with an error.
func (m *Metadata) Set(key string, value any) error {
	v, err := normalizePrimitive(value)
	if err != nil {
		return fmt.Errorf("metadata %s: %w", key, err)
	}
	for i, f := range m.fields {
		if f.Key == key {
			m.fields[i].Value = v
			return nil
		}
	}
	m.fields = append(m.fields, MetadataField{Key: key, Value: v})
	return nil
}

// Equal reports whether two metadata collections hold the same keys in the
// same order with equal values.
func (m Metadata) Equal(other Metadata) bool {
	if len(m.fields) != len(other.fields) {
		return false
	}
	for i, f := range m.fields {
		if other.fields[i].Key != f.Key || other.fields[i].Value != f.Value {
			return false
		}
	}
	return true
}

// ToMap converts the metadata back to the raw configuration shape.
// Returns nil when empty so serialized records omit the field.
func (m Metadata) ToMap() map[string]any {
	if len(m.fields) == 0 {
		return nil
	}
	out := make(map[string]any, len(m.fields))
	for _, f := range m.fields {
		out[f.Key] = f.Value
	}
	return out
}

// MarshalJSON encodes the metadata as a JSON object preserving key order.
func (m Metadata) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping the document's key order.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("metadata: expected object, got %v", tok)
	}

	fields := make([]MetadataField, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		value, err := normalizePrimitive(raw)
		if err != nil {
			return fmt.Errorf("metadata %s: %w", key, err)
		}
		fields = append(fields, MetadataField{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	m.fields = fields
	return nil
}

// metadataFromMap builds metadata from an unordered raw map, taking keys in
// sorted order for determinism.
func metadataFromMap(raw map[string]any) (Metadata, error) {
	if len(raw) == 0 {
		return Metadata{}, nil
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var m Metadata
	for _, k := range keys {
		if err := m.Set(k, raw[k]); err != nil {
			return Metadata{}, err
		}
	}
	return m, nil
}

// normalizePrimitive coerces a raw value to one of the supported primitive
// types: string, bool, int64, float64. Integral floats and json.Number
// values collapse to int64 so round-tripped records compare equal.
func normalizePrimitive(v any) (any, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return val, nil
	case int:
		return int64(val), nil
	case int64:
		return val, nil
	case float64:
		if val == float64(int64(val)) {
			return int64(val), nil
		}
		return val, nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("unsupported number %q", val.String())
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
