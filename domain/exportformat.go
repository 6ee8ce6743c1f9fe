package domain

import "strings"

// ExportFormat describes one way a domain's specifications can be rendered.
// The engine only defines formats; actual rendering happens in an external
// exporter that resolves TemplateRef.
type ExportFormat struct {
	// ID uniquely identifies this format within its engine.
	ID string `json:"id"`

	// Name is the human-readable format name.
	Name string `json:"name"`

	// Language tags the target output language or ecosystem
	// (e.g. "python", "markdown"). Free-form, not a closed set.
	Language string `json:"language,omitempty"`

	// MIMEType is the standard MIME type of the rendered output.
	MIMEType string `json:"mime_type,omitempty"`

	// TemplateRef is an opaque reference consumed by the external renderer.
	TemplateRef string `json:"template_ref,omitempty"`
}

// MIMEFamily returns the major type of the MIME type ("text" for
// "text/markdown"). Empty when no MIME type is set.
func (f ExportFormat) MIMEFamily() string {
	family, _, _ := strings.Cut(f.MIMEType, "/")
	return family
}

// ExportFormatEngine manages the export format collection for one domain.
type ExportFormatEngine struct {
	col collection[ExportFormat]
}

// NewExportFormatEngine creates an empty engine.
func NewExportFormatEngine() *ExportFormatEngine {
	e := &ExportFormatEngine{}
	e.col = newCollection(codec[ExportFormat]{
		kind:      "export_format",
		id:        func(f ExportFormat) string { return f.ID },
		parse:     parseExportFormat,
		validate:  validateExportFormat,
		serialize: serializeExportFormat,
	})
	return e
}

// Load parses and validates raw format records, replacing any previously
// loaded set.
func (e *ExportFormatEngine) Load(records []RawRecord) *LoadReport {
	return e.col.load(records)
}

// All returns every loaded format in insertion order.
func (e *ExportFormatEngine) All() []ExportFormat {
	return e.col.all()
}

// Get looks up one format by id.
func (e *ExportFormatEngine) Get(id string) (ExportFormat, bool) {
	return e.col.get(id)
}

// Len returns the number of loaded formats.
func (e *ExportFormatEngine) Len() int {
	return e.col.size()
}

// ValidateAll re-runs structural validation without reloading.
func (e *ExportFormatEngine) ValidateAll() *ValidationReport {
	return e.col.validateAll()
}

// SerializeAll converts every format back to the raw configuration shape.
func (e *ExportFormatEngine) SerializeAll() []RawRecord {
	return e.col.serializeAll()
}

// Filter returns the formats matching the spec. Supported dimensions:
// "language" (string), "mime_family" (string, e.g. "text").
func (e *ExportFormatEngine) Filter(spec FilterSpec) ([]ExportFormat, error) {
	const kind = "export_format"
	if err := spec.checkDimensions(kind, "language", "mime_family"); err != nil {
		return nil, err
	}
	language, byLanguage, err := spec.stringDim(kind, "language")
	if err != nil {
		return nil, err
	}
	family, byFamily, err := spec.stringDim(kind, "mime_family")
	if err != nil {
		return nil, err
	}

	return e.col.filter(func(f ExportFormat) bool {
		if byLanguage && f.Language != language {
			return false
		}
		if byFamily && f.MIMEFamily() != family {
			return false
		}
		return true
	}), nil
}

func parseExportFormat(raw RawRecord) (ExportFormat, *Rejection) {
	var f ExportFormat
	id, ok := raw.stringField("id")
	if !ok || id == "" {
		return f, &Rejection{ID: raw.idOf(), Field: "id", Reason: "missing or empty"}
	}
	name, ok := raw.stringField("name")
	if !ok || name == "" {
		return f, &Rejection{ID: id, Field: "name", Reason: "missing or empty"}
	}
	language, _ := raw.stringField("language")
	mimeType, _ := raw.stringField("mime_type")
	templateRef, _ := raw.stringField("template_ref")

	f = ExportFormat{
		ID:          id,
		Name:        name,
		Language:    language,
		MIMEType:    mimeType,
		TemplateRef: templateRef,
	}
	return f, nil
}

func validateExportFormat(f ExportFormat) *Rejection {
	if f.ID == "" {
		return &Rejection{Field: "id", Reason: "missing or empty"}
	}
	if f.Name == "" {
		return &Rejection{ID: f.ID, Field: "name", Reason: "missing or empty"}
	}
	return nil
}

func serializeExportFormat(f ExportFormat) RawRecord {
	raw := RawRecord{
		"id":   f.ID,
		"name": f.Name,
	}
	if f.Language != "" {
		raw["language"] = f.Language
	}
	if f.MIMEType != "" {
		raw["mime_type"] = f.MIMEType
	}
	if f.TemplateRef != "" {
		raw["template_ref"] = f.TemplateRef
	}
	return raw
}
