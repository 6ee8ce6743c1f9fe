package domain

// Built-in domain definitions. These ship with the engine so an embedding
// application has working domains before any configuration files are loaded.
// They are plain Configs: loading them goes through the same validation path
// as file-based definitions.

// BuiltinProgramming returns the stock software-engineering domain.
func BuiltinProgramming() Config {
	return Config{
		ID:         "programming",
		Name:       "Programming",
		Version:    "1.0.0",
		Categories: []string{"architecture", "security", "performance", "testing"},
		Questions: []RawRecord{
			{
				"id":         "prog-arch-style",
				"category":   "architecture",
				"difficulty": "intermediate",
				"text":       "What architectural style should the system follow (monolith, services, event-driven)?",
			},
			{
				"id":         "prog-arch-boundaries",
				"category":   "architecture",
				"difficulty": "advanced",
				"text":       "Where are the module boundaries, and which modules may depend on which?",
				"dependencies": []string{"prog-arch-style"},
			},
			{
				"id":         "prog-sec-authn",
				"category":   "security",
				"difficulty": "beginner",
				"text":       "How do users authenticate to the system?",
			},
			{
				"id":         "prog-sec-secrets",
				"category":   "security",
				"difficulty": "intermediate",
				"text":       "Where are credentials and other secrets stored and rotated?",
				"dependencies": []string{"prog-sec-authn"},
			},
			{
				"id":         "prog-perf-latency",
				"category":   "performance",
				"difficulty": "intermediate",
				"text":       "What are the latency budgets for the critical user-facing operations?",
			},
			{
				"id":         "prog-test-strategy",
				"category":   "testing",
				"difficulty": "beginner",
				"text":       "What levels of automated testing does the project require (unit, integration, end-to-end)?",
				"metadata":   map[string]any{"weight": 2},
			},
		},
		ExportFormats: []RawRecord{
			{
				"id":           "prog-markdown",
				"name":         "Markdown Specification",
				"language":     "markdown",
				"mime_type":    "text/markdown",
				"template_ref": "templates/programming/spec.md.tmpl",
			},
			{
				"id":           "prog-openapi",
				"name":         "OpenAPI Skeleton",
				"language":     "yaml",
				"mime_type":    "application/yaml",
				"template_ref": "templates/programming/openapi.yaml.tmpl",
			},
			{
				"id":           "prog-python",
				"name":         "Python Scaffold",
				"language":     "python",
				"mime_type":    "text/x-python",
				"template_ref": "templates/programming/scaffold.py.tmpl",
			},
		},
		ConflictRules: []RawRecord{
			{
				"id":          "prog-conflict-sync-async",
				"category":    "architecture",
				"severity":    "error",
				"pattern":     "sync_api && event_driven_core",
				"description": "A synchronous public API contradicts an event-driven core architecture.",
			},
			{
				"id":          "prog-conflict-latency-batch",
				"category":    "performance",
				"severity":    "warning",
				"pattern":     "low_latency && batch_processing",
				"description": "Low-latency budgets conflict with batch-oriented processing.",
			},
			{
				"id":          "prog-conflict-no-tests",
				"category":    "testing",
				"severity":    "info",
				"pattern":     "high_reliability && !automated_tests",
				"description": "High reliability goals without automated testing.",
			},
		},
		QualityAnalyzers: []RawRecord{
			{
				"id":            "prog-completeness",
				"name":          "Requirement Completeness",
				"tags":          []string{"completeness", "structure"},
				"enabled":       true,
				"required":      true,
				"analyzer_type": "structural",
			},
			{
				"id":            "prog-ambiguity",
				"name":          "Ambiguity Detector",
				"tags":          []string{"wording"},
				"enabled":       true,
				"required":      false,
				"analyzer_type": "heuristic",
				"parameters":    map[string]any{"max_vague_terms": 3},
			},
		},
	}
}

// BuiltinSecurity returns the stock security-review domain.
func BuiltinSecurity() Config {
	return Config{
		ID:         "security",
		Name:       "Security",
		Version:    "1.0.0",
		Categories: []string{"threat-model", "compliance", "data-protection"},
		Questions: []RawRecord{
			{
				"id":         "sec-assets",
				"category":   "threat-model",
				"difficulty": "beginner",
				"text":       "Which assets does the system protect, and who are the likely adversaries?",
			},
			{
				"id":         "sec-trust-boundaries",
				"category":   "threat-model",
				"difficulty": "advanced",
				"text":       "Where are the trust boundaries, and what crosses them?",
				"dependencies": []string{"sec-assets"},
			},
			{
				"id":         "sec-regulations",
				"category":   "compliance",
				"difficulty": "intermediate",
				"text":       "Which regulations apply to the data the system handles (GDPR, HIPAA, PCI-DSS)?",
			},
			{
				"id":         "sec-retention",
				"category":   "data-protection",
				"difficulty": "intermediate",
				"text":       "What are the retention and deletion requirements for personal data?",
			},
		},
		ExportFormats: []RawRecord{
			{
				"id":           "sec-threat-report",
				"name":         "Threat Model Report",
				"language":     "markdown",
				"mime_type":    "text/markdown",
				"template_ref": "templates/security/threat-model.md.tmpl",
			},
		},
		ConflictRules: []RawRecord{
			{
				"id":          "sec-conflict-plaintext",
				"category":    "data-protection",
				"severity":    "error",
				"pattern":     "pii_stored && !encryption_at_rest",
				"description": "Personal data stored without encryption at rest.",
			},
			{
				"id":          "sec-conflict-retention",
				"category":    "compliance",
				"severity":    "warning",
				"pattern":     "gdpr && indefinite_retention",
				"description": "GDPR applies but data is retained indefinitely.",
			},
		},
		QualityAnalyzers: []RawRecord{
			{
				"id":            "sec-coverage",
				"name":          "Threat Coverage",
				"tags":          []string{"completeness"},
				"enabled":       true,
				"required":      true,
				"analyzer_type": "structural",
			},
		},
	}
}

// BuiltinBusiness returns the stock business-analysis domain.
func BuiltinBusiness() Config {
	return Config{
		ID:         "business",
		Name:       "Business",
		Version:    "1.0.0",
		Categories: []string{"stakeholders", "value", "operations"},
		Questions: []RawRecord{
			{
				"id":         "biz-stakeholders",
				"category":   "stakeholders",
				"difficulty": "beginner",
				"text":       "Who are the primary stakeholders, and what does each expect from the system?",
			},
			{
				"id":         "biz-value-metric",
				"category":   "value",
				"difficulty": "intermediate",
				"text":       "What single metric best captures the value the system delivers?",
			},
			{
				"id":         "biz-ops-support",
				"category":   "operations",
				"difficulty": "intermediate",
				"text":       "Who operates the system day to day, and what tooling do they need?",
			},
		},
		ExportFormats: []RawRecord{
			{
				"id":           "biz-brief",
				"name":         "Business Brief",
				"language":     "markdown",
				"mime_type":    "text/markdown",
				"template_ref": "templates/business/brief.md.tmpl",
			},
		},
		ConflictRules: []RawRecord{
			{
				"id":          "biz-conflict-scope",
				"category":    "value",
				"severity":    "warning",
				"pattern":     "fixed_budget && open_scope",
				"description": "A fixed budget conflicts with an open-ended scope.",
			},
		},
		QualityAnalyzers: []RawRecord{
			{
				"id":            "biz-stakeholder-coverage",
				"name":          "Stakeholder Coverage",
				"tags":          []string{"completeness"},
				"enabled":       true,
				"required":      false,
				"analyzer_type": "structural",
			},
		},
	}
}

// BuiltinConfigs returns all built-in domain definitions in registration
// order.
func BuiltinConfigs() []Config {
	return []Config{
		BuiltinProgramming(),
		BuiltinSecurity(),
		BuiltinBusiness(),
	}
}
