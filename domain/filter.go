package domain

import "fmt"

// FilterSpec selects records along engine-specific dimensions, one entry per
// dimension. All given dimensions must match (logical AND). Supplying a
// dimension an engine does not support, or a value of the wrong type, is an
// integration bug and fails with an error rather than returning bad data.
// A nil or empty spec matches everything.
type FilterSpec map[string]any

// checkDimensions fails on any spec key outside the allowed set.
func (s FilterSpec) checkDimensions(kind string, allowed ...string) error {
	for key := range s {
		supported := false
		for _, a := range allowed {
			if key == a {
				supported = true
				break
			}
		}
		if !supported {
			return fmt.Errorf("%s filter: unsupported dimension %q", kind, key)
		}
	}
	return nil
}

// stringDim extracts a string-valued dimension. The second result reports
// presence; a present non-string value is an error.
func (s FilterSpec) stringDim(kind, key string) (string, bool, error) {
	v, ok := s[key]
	if !ok {
		return "", false, nil
	}
	str, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("%s filter: dimension %q wants a string, got %T", kind, key, v)
	}
	return str, true, nil
}

// boolDim extracts a bool-valued dimension.
func (s FilterSpec) boolDim(kind, key string) (bool, bool, error) {
	v, ok := s[key]
	if !ok {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, false, fmt.Errorf("%s filter: dimension %q wants a bool, got %T", kind, key, v)
	}
	return b, true, nil
}
