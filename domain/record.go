package domain

import (
	"fmt"
	"sort"
)

// RawRecord is the wire shape every engine accepts and emits: one key/value
// map per record, as produced by an external configuration loader. The engine
// never reads files itself.
type RawRecord map[string]any

// stringField extracts a string value for key. The second result reports
// whether the key was present with a usable string value.
func (r RawRecord) stringField(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// boolField extracts a bool value for key, returning def when absent.
// The error reports a present-but-mistyped value.
func (r RawRecord) boolField(key string, def bool) (bool, error) {
	v, ok := r[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, fmt.Errorf("%s: expected bool, got %T", key, v)
	}
	return b, nil
}

// stringSliceField extracts a list of strings for key. Accepts []string
// directly or []any whose elements are all strings. Absent keys yield nil.
func (r RawRecord) stringSliceField(key string) ([]string, error) {
	v, ok := r[key]
	if !ok {
		return nil, nil
	}
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s: expected string element, got %T", key, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: expected list, got %T", key, v)
	}
}

// mapField extracts a nested key/value map for key. Absent keys yield nil.
func (r RawRecord) mapField(key string) (map[string]any, error) {
	v, ok := r[key]
	if !ok {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected map, got %T", key, v)
	}
	return m, nil
}

// idOf extracts the record id for diagnostics. Unlike stringField it never
// fails: a missing or mistyped id is reported as empty.
func (r RawRecord) idOf() string {
	id, _ := r.stringField("id")
	return id
}

// normalizeStringSet deduplicates and sorts a string list so that set-valued
// fields compare equal regardless of configuration order.
func normalizeStringSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
