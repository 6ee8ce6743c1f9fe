package domain

import "fmt"

// ConflictRule describes one condition under which two specification
// statements contradict each other. The Pattern field is an opaque matcher
// consumed by the external conflict-detection process; the engine only
// defines and validates rules.
type ConflictRule struct {
	// ID uniquely identifies this rule within its engine.
	ID string `json:"id"`

	// Category groups related rules. It must appear in the owning domain's
	// category list.
	Category string `json:"category"`

	// Severity ranks the finding this rule produces.
	Severity SeverityLevel `json:"severity"`

	// Pattern is the opaque matcher specification.
	Pattern string `json:"pattern"`

	// Description explains the conflict in human terms.
	Description string `json:"description,omitempty"`
}

// ConflictRuleEngine manages the conflict rule collection for one domain.
type ConflictRuleEngine struct {
	categories map[string]struct{}
	col        collection[ConflictRule]
}

// NewConflictRuleEngine creates an empty engine. Rules loaded into it must
// use one of the given categories; a nil category list disables the
// referential check.
func NewConflictRuleEngine(categories []string) *ConflictRuleEngine {
	e := &ConflictRuleEngine{categories: categorySet(categories)}
	e.col = newCollection(codec[ConflictRule]{
		kind:      "conflict_rule",
		id:        func(r ConflictRule) string { return r.ID },
		parse:     e.parse,
		validate:  e.validate,
		serialize: serializeConflictRule,
	})
	return e
}

// Load parses and validates raw rule records, replacing any previously
// loaded set.
func (e *ConflictRuleEngine) Load(records []RawRecord) *LoadReport {
	return e.col.load(records)
}

// All returns every loaded rule in insertion order.
func (e *ConflictRuleEngine) All() []ConflictRule {
	return e.col.all()
}

// Get looks up one rule by id.
func (e *ConflictRuleEngine) Get(id string) (ConflictRule, bool) {
	return e.col.get(id)
}

// Len returns the number of loaded rules.
func (e *ConflictRuleEngine) Len() int {
	return e.col.size()
}

// ValidateAll re-runs structural validation without reloading.
func (e *ConflictRuleEngine) ValidateAll() *ValidationReport {
	return e.col.validateAll()
}

// SerializeAll converts every rule back to the raw configuration shape.
func (e *ConflictRuleEngine) SerializeAll() []RawRecord {
	return e.col.serializeAll()
}

// Filter returns the rules matching the spec. Supported dimensions:
// "category" (string), "severity" (string, exact), "min_severity" (string,
// this level or more severe).
func (e *ConflictRuleEngine) Filter(spec FilterSpec) ([]ConflictRule, error) {
	const kind = "conflict_rule"
	if err := spec.checkDimensions(kind, "category", "severity", "min_severity"); err != nil {
		return nil, err
	}
	category, byCategory, err := spec.stringDim(kind, "category")
	if err != nil {
		return nil, err
	}
	severity, bySeverity, err := severityDim(spec, kind, "severity")
	if err != nil {
		return nil, err
	}
	minSeverity, byMinSeverity, err := severityDim(spec, kind, "min_severity")
	if err != nil {
		return nil, err
	}

	return e.col.filter(func(r ConflictRule) bool {
		if byCategory && r.Category != category {
			return false
		}
		if bySeverity && r.Severity != severity {
			return false
		}
		if byMinSeverity && !r.Severity.AtLeast(minSeverity) {
			return false
		}
		return true
	}), nil
}

func severityDim(spec FilterSpec, kind, key string) (SeverityLevel, bool, error) {
	raw, ok, err := spec.stringDim(kind, key)
	if err != nil || !ok {
		return "", false, err
	}
	level, valid := ParseSeverity(raw)
	if !valid {
		return "", false, fmt.Errorf("%s filter: unknown severity %q", kind, raw)
	}
	return level, true, nil
}

func (e *ConflictRuleEngine) parse(raw RawRecord) (ConflictRule, *Rejection) {
	var r ConflictRule
	id, ok := raw.stringField("id")
	if !ok || id == "" {
		return r, &Rejection{ID: raw.idOf(), Field: "id", Reason: "missing or empty"}
	}
	category, ok := raw.stringField("category")
	if !ok || category == "" {
		return r, &Rejection{ID: id, Field: "category", Reason: "missing or empty"}
	}
	severityStr, ok := raw.stringField("severity")
	if !ok {
		return r, &Rejection{ID: id, Field: "severity", Reason: "missing or empty"}
	}
	severity, ok := ParseSeverity(severityStr)
	if !ok {
		return r, &Rejection{ID: id, Field: "severity", Reason: "unknown severity " + severityStr}
	}
	pattern, ok := raw.stringField("pattern")
	if !ok || pattern == "" {
		return r, &Rejection{ID: id, Field: "pattern", Reason: "missing or empty"}
	}
	description, _ := raw.stringField("description")

	r = ConflictRule{
		ID:          id,
		Category:    category,
		Severity:    severity,
		Pattern:     pattern,
		Description: description,
	}
	return r, e.validate(r)
}

func (e *ConflictRuleEngine) validate(r ConflictRule) *Rejection {
	if r.ID == "" {
		return &Rejection{Field: "id", Reason: "missing or empty"}
	}
	if !r.Severity.Valid() {
		return &Rejection{ID: r.ID, Field: "severity", Reason: "unknown severity " + string(r.Severity)}
	}
	if r.Pattern == "" {
		return &Rejection{ID: r.ID, Field: "pattern", Reason: "missing or empty"}
	}
	if e.categories != nil {
		if _, ok := e.categories[r.Category]; !ok {
			return &Rejection{ID: r.ID, Field: "category", Reason: "category " + r.Category + " not declared by domain"}
		}
	}
	return nil
}

func serializeConflictRule(r ConflictRule) RawRecord {
	raw := RawRecord{
		"id":       r.ID,
		"category": r.Category,
		"severity": string(r.Severity),
		"pattern":  r.Pattern,
	}
	if r.Description != "" {
		raw["description"] = r.Description
	}
	return raw
}
