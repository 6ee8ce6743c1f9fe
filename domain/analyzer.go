package domain

// QualityAnalyzer describes one automated quality check a domain can run
// over user-authored specifications. The engine defines analyzers; running
// them is the job of an external quality pipeline.
type QualityAnalyzer struct {
	// ID uniquely identifies this analyzer within its engine.
	ID string `json:"id"`

	// Name is the human-readable analyzer name.
	Name string `json:"name"`

	// Tags label the analyzer for discovery. Stored sorted and deduplicated.
	Tags []string `json:"tags,omitempty"`

	// Enabled controls whether the analyzer runs.
	Enabled bool `json:"enabled"`

	// Required marks analyzers that must run. A required analyzer must also
	// be enabled; required-but-disabled records are rejected at load.
	Required bool `json:"required"`

	// AnalyzerType tags the implementation kind. Free-form.
	AnalyzerType string `json:"analyzer_type,omitempty"`

	// Parameters carries open configuration for the analyzer implementation.
	Parameters Metadata `json:"parameters,omitempty"`
}

// HasTag reports whether the analyzer carries the given tag.
func (a QualityAnalyzer) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// QualityAnalyzerEngine manages the analyzer collection for one domain.
type QualityAnalyzerEngine struct {
	col collection[QualityAnalyzer]
}

// NewQualityAnalyzerEngine creates an empty engine.
func NewQualityAnalyzerEngine() *QualityAnalyzerEngine {
	e := &QualityAnalyzerEngine{}
	e.col = newCollection(codec[QualityAnalyzer]{
		kind:      "quality_analyzer",
		id:        func(a QualityAnalyzer) string { return a.ID },
		parse:     parseQualityAnalyzer,
		validate:  validateQualityAnalyzer,
		serialize: serializeQualityAnalyzer,
	})
	return e
}

// Load parses and validates raw analyzer records, replacing any previously
// loaded set.
func (e *QualityAnalyzerEngine) Load(records []RawRecord) *LoadReport {
	return e.col.load(records)
}

// All returns every loaded analyzer in insertion order.
func (e *QualityAnalyzerEngine) All() []QualityAnalyzer {
	return e.col.all()
}

// Get looks up one analyzer by id.
func (e *QualityAnalyzerEngine) Get(id string) (QualityAnalyzer, bool) {
	return e.col.get(id)
}

// Len returns the number of loaded analyzers.
func (e *QualityAnalyzerEngine) Len() int {
	return e.col.size()
}

// ValidateAll re-runs structural validation without reloading.
func (e *QualityAnalyzerEngine) ValidateAll() *ValidationReport {
	return e.col.validateAll()
}

// SerializeAll converts every analyzer back to the raw configuration shape.
func (e *QualityAnalyzerEngine) SerializeAll() []RawRecord {
	return e.col.serializeAll()
}

// Filter returns the analyzers matching the spec. Supported dimensions:
// "tag" (string), "enabled" (bool), "required" (bool).
func (e *QualityAnalyzerEngine) Filter(spec FilterSpec) ([]QualityAnalyzer, error) {
	const kind = "quality_analyzer"
	if err := spec.checkDimensions(kind, "tag", "enabled", "required"); err != nil {
		return nil, err
	}
	tag, byTag, err := spec.stringDim(kind, "tag")
	if err != nil {
		return nil, err
	}
	enabled, byEnabled, err := spec.boolDim(kind, "enabled")
	if err != nil {
		return nil, err
	}
	required, byRequired, err := spec.boolDim(kind, "required")
	if err != nil {
		return nil, err
	}

	return e.col.filter(func(a QualityAnalyzer) bool {
		if byTag && !a.HasTag(tag) {
			return false
		}
		if byEnabled && a.Enabled != enabled {
			return false
		}
		if byRequired && a.Required != required {
			return false
		}
		return true
	}), nil
}

func parseQualityAnalyzer(raw RawRecord) (QualityAnalyzer, *Rejection) {
	var a QualityAnalyzer
	id, ok := raw.stringField("id")
	if !ok || id == "" {
		return a, &Rejection{ID: raw.idOf(), Field: "id", Reason: "missing or empty"}
	}
	name, ok := raw.stringField("name")
	if !ok || name == "" {
		return a, &Rejection{ID: id, Field: "name", Reason: "missing or empty"}
	}
	tags, err := raw.stringSliceField("tags")
	if err != nil {
		return a, &Rejection{ID: id, Field: "tags", Reason: err.Error()}
	}
	enabled, err := raw.boolField("enabled", false)
	if err != nil {
		return a, &Rejection{ID: id, Field: "enabled", Reason: err.Error()}
	}
	required, err := raw.boolField("required", false)
	if err != nil {
		return a, &Rejection{ID: id, Field: "required", Reason: err.Error()}
	}
	analyzerType, _ := raw.stringField("analyzer_type")
	paramsMap, err := raw.mapField("parameters")
	if err != nil {
		return a, &Rejection{ID: id, Field: "parameters", Reason: err.Error()}
	}
	parameters, err := metadataFromMap(paramsMap)
	if err != nil {
		return a, &Rejection{ID: id, Field: "parameters", Reason: err.Error()}
	}

	a = QualityAnalyzer{
		ID:           id,
		Name:         name,
		Tags:         normalizeStringSet(tags),
		Enabled:      enabled,
		Required:     required,
		AnalyzerType: analyzerType,
		Parameters:   parameters,
	}
	return a, validateQualityAnalyzer(a)
}

func validateQualityAnalyzer(a QualityAnalyzer) *Rejection {
	if a.ID == "" {
		return &Rejection{Field: "id", Reason: "missing or empty"}
	}
	if a.Name == "" {
		return &Rejection{ID: a.ID, Field: "name", Reason: "missing or empty"}
	}
	if a.Required && !a.Enabled {
		return &Rejection{ID: a.ID, Field: "required", Reason: "required analyzer must be enabled"}
	}
	return nil
}

func serializeQualityAnalyzer(a QualityAnalyzer) RawRecord {
	raw := RawRecord{
		"id":       a.ID,
		"name":     a.Name,
		"enabled":  a.Enabled,
		"required": a.Required,
	}
	if len(a.Tags) > 0 {
		tags := make([]string, len(a.Tags))
		copy(tags, a.Tags)
		raw["tags"] = tags
	}
	if a.AnalyzerType != "" {
		raw["analyzer_type"] = a.AnalyzerType
	}
	if params := a.Parameters.ToMap(); params != nil {
		raw["parameters"] = params
	}
	return raw
}
