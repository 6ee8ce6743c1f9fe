// Package config loads declarative knowledge-domain definitions from YAML
// files and feeds them to the domain engine. The engine itself never reads
// files; this package is the external configuration loader it expects.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Nireus79/Socrates2-sub006/domain"
)

// DomainFile is the YAML document defining one knowledge domain.
//
//	domain:
//	  id: programming
//	  name: Programming
//	  version: 1.0.0
//	  categories: [architecture, security]
//	questions:
//	  - id: q1
//	    category: security
//	    difficulty: beginner
//	    text: How do users authenticate?
type DomainFile struct {
	Domain struct {
		ID         string   `yaml:"id"`
		Name       string   `yaml:"name"`
		Version    string   `yaml:"version"`
		Categories []string `yaml:"categories"`
	} `yaml:"domain"`

	Questions        []map[string]any `yaml:"questions"`
	ExportFormats    []map[string]any `yaml:"export_formats"`
	ConflictRules    []map[string]any `yaml:"conflict_rules"`
	QualityAnalyzers []map[string]any `yaml:"quality_analyzers"`
}

// Parse decodes a domain definition document.
func Parse(data []byte) (*DomainFile, error) {
	var f DomainFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse domain file: %w", err)
	}
	return &f, nil
}

// LoadFromFile reads and parses a domain definition file.
func LoadFromFile(path string) (*DomainFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Config converts the file to the engine's configuration shape.
func (f *DomainFile) Config() domain.Config {
	return domain.Config{
		ID:               f.Domain.ID,
		Name:             f.Domain.Name,
		Version:          f.Domain.Version,
		Categories:       f.Domain.Categories,
		Questions:        toRawRecords(f.Questions),
		ExportFormats:    toRawRecords(f.ExportFormats),
		ConflictRules:    toRawRecords(f.ConflictRules),
		QualityAnalyzers: toRawRecords(f.QualityAnalyzers),
	}
}

func toRawRecords(records []map[string]any) []domain.RawRecord {
	if len(records) == 0 {
		return nil
	}
	out := make([]domain.RawRecord, len(records))
	for i, r := range records {
		out[i] = domain.RawRecord(r)
	}
	return out
}
