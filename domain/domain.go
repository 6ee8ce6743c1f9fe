package domain

import "fmt"

// Config defines one knowledge domain declaratively: its metadata plus the
// four raw record payloads. Configs come from an external loader (YAML
// files, built-in tables); the engine never reads files itself.
type Config struct {
	// ID uniquely identifies the domain across the registry.
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable domain name.
	Name string `json:"name" yaml:"name"`

	// Version is the domain definition version.
	Version string `json:"version" yaml:"version"`

	// Categories lists the category names Questions and ConflictRules are
	// validated against. Order is preserved.
	Categories []string `json:"categories" yaml:"categories"`

	Questions        []RawRecord `json:"questions,omitempty" yaml:"questions"`
	ExportFormats    []RawRecord `json:"export_formats,omitempty" yaml:"export_formats"`
	ConflictRules    []RawRecord `json:"conflict_rules,omitempty" yaml:"conflict_rules"`
	QualityAnalyzers []RawRecord `json:"quality_analyzers,omitempty" yaml:"quality_analyzers"`
}

// Validate checks the domain metadata. Record payloads are not checked here;
// they go through engine loading with its partial-success policy.
func (c *Config) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("domain id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("domain %s: name is required", c.ID)
	}
	if c.Version == "" {
		return fmt.Errorf("domain %s: version is required", c.ID)
	}
	return nil
}

// Domain bundles one instance of each of the four template engines plus
// metadata for one knowledge area. Every Domain owns its engines
// exclusively: two Domains built from the same Config share nothing and can
// be used concurrently by independent callers.
type Domain struct {
	id         string
	name       string
	version    string
	categories []string

	questions *QuestionEngine
	exports   *ExportFormatEngine
	conflicts *ConflictRuleEngine
	analyzers *QualityAnalyzerEngine
}

// BuildReport aggregates the four subsystem load reports produced during
// domain construction.
type BuildReport struct {
	DomainID         string      `json:"domain_id"`
	Questions        *LoadReport `json:"questions"`
	ExportFormats    *LoadReport `json:"export_formats"`
	ConflictRules    *LoadReport `json:"conflict_rules"`
	QualityAnalyzers *LoadReport `json:"quality_analyzers"`
}

// Accepted returns the total accepted record count across all subsystems.
func (r *BuildReport) Accepted() int {
	return r.Questions.Accepted + r.ExportFormats.Accepted +
		r.ConflictRules.Accepted + r.QualityAnalyzers.Accepted
}

// Rejected returns the total rejected record count across all subsystems.
func (r *BuildReport) Rejected() int {
	return r.Questions.Rejected + r.ExportFormats.Rejected +
		r.ConflictRules.Rejected + r.QualityAnalyzers.Rejected
}

// Clean reports whether construction rejected nothing.
func (r *BuildReport) Clean() bool {
	return r.Rejected() == 0
}

// Info is the metadata snapshot returned by Domain.Metadata.
type Info struct {
	DomainID         string `json:"domain_id"`
	Name             string `json:"name"`
	Version          string `json:"version"`
	Questions        int    `json:"questions"`
	ExportFormats    int    `json:"export_formats"`
	ConflictRules    int    `json:"conflict_rules"`
	QualityAnalyzers int    `json:"quality_analyzers"`
}

// New constructs a Domain from its configuration, loading all four engines.
// Malformed records are excluded and reported through the BuildReport; the
// only error condition is invalid domain metadata, which is caller misuse.
func New(cfg Config) (*Domain, *BuildReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	categories := make([]string, len(cfg.Categories))
	copy(categories, cfg.Categories)

	d := &Domain{
		id:         cfg.ID,
		name:       cfg.Name,
		version:    cfg.Version,
		categories: categories,
		questions:  NewQuestionEngine(categories),
		exports:    NewExportFormatEngine(),
		conflicts:  NewConflictRuleEngine(categories),
		analyzers:  NewQualityAnalyzerEngine(),
	}

	report := &BuildReport{
		DomainID:         cfg.ID,
		Questions:        d.questions.Load(cfg.Questions),
		ExportFormats:    d.exports.Load(cfg.ExportFormats),
		ConflictRules:    d.conflicts.Load(cfg.ConflictRules),
		QualityAnalyzers: d.analyzers.Load(cfg.QualityAnalyzers),
	}
	return d, report, nil
}

// ID returns the domain identifier.
func (d *Domain) ID() string { return d.id }

// Name returns the human-readable domain name.
func (d *Domain) Name() string { return d.name }

// Version returns the domain definition version.
func (d *Domain) Version() string { return d.version }

// Categories returns the domain's category list in declaration order.
func (d *Domain) Categories() []string {
	out := make([]string, len(d.categories))
	copy(out, d.categories)
	return out
}

// Questions returns the questions matching the spec; a nil spec returns all.
func (d *Domain) Questions(spec FilterSpec) ([]Question, error) {
	return d.questions.Filter(spec)
}

// ExportFormats returns the formats matching the spec; a nil spec returns all.
func (d *Domain) ExportFormats(spec FilterSpec) ([]ExportFormat, error) {
	return d.exports.Filter(spec)
}

// ConflictRules returns the rules matching the spec; a nil spec returns all.
func (d *Domain) ConflictRules(spec FilterSpec) ([]ConflictRule, error) {
	return d.conflicts.Filter(spec)
}

// QualityAnalyzers returns the analyzers matching the spec; a nil spec
// returns all.
func (d *Domain) QualityAnalyzers(spec FilterSpec) ([]QualityAnalyzer, error) {
	return d.analyzers.Filter(spec)
}

// QuestionEngine exposes the owned question engine for direct access.
func (d *Domain) QuestionEngine() *QuestionEngine { return d.questions }

// ExportFormatEngine exposes the owned export format engine.
func (d *Domain) ExportFormatEngine() *ExportFormatEngine { return d.exports }

// ConflictRuleEngine exposes the owned conflict rule engine.
func (d *Domain) ConflictRuleEngine() *ConflictRuleEngine { return d.conflicts }

// QualityAnalyzerEngine exposes the owned quality analyzer engine.
func (d *Domain) QualityAnalyzerEngine() *QualityAnalyzerEngine { return d.analyzers }

// Metadata returns the domain metadata plus per-subsystem record counts.
func (d *Domain) Metadata() Info {
	return Info{
		DomainID:         d.id,
		Name:             d.name,
		Version:          d.version,
		Questions:        d.questions.Len(),
		ExportFormats:    d.exports.Len(),
		ConflictRules:    d.conflicts.Len(),
		QualityAnalyzers: d.analyzers.Len(),
	}
}

// ValidateAll re-runs structural validation over all four subsystems and
// aggregates the reports.
func (d *Domain) ValidateAll() *BuildReport {
	return &BuildReport{
		DomainID:         d.id,
		Questions:        d.questions.ValidateAll(),
		ExportFormats:    d.exports.ValidateAll(),
		ConflictRules:    d.conflicts.ValidateAll(),
		QualityAnalyzers: d.analyzers.ValidateAll(),
	}
}

// Serialize converts the domain back to an equivalent Config. Loading the
// result produces a behaviorally identical Domain.
func (d *Domain) Serialize() Config {
	return Config{
		ID:               d.id,
		Name:             d.name,
		Version:          d.version,
		Categories:       d.Categories(),
		Questions:        d.questions.SerializeAll(),
		ExportFormats:    d.exports.SerializeAll(),
		ConflictRules:    d.conflicts.SerializeAll(),
		QualityAnalyzers: d.analyzers.SerializeAll(),
	}
}
