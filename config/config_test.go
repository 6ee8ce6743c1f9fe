package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDomainYAML = `
domain:
  id: testing
  name: Testing Domain
  version: 0.1.0
  categories: [security, performance]

questions:
  - id: q1
    category: security
    difficulty: beginner
    text: How do users authenticate?
  - id: q2
    category: performance
    difficulty: intermediate
    text: What are the latency budgets?
    metadata:
      weight: 2

export_formats:
  - id: f1
    name: Markdown
    language: markdown
    mime_type: text/markdown
    template_ref: tpl/md

conflict_rules:
  - id: r1
    category: security
    severity: error
    pattern: pii && !encryption
    description: PII without encryption.

quality_analyzers:
  - id: a1
    name: Completeness
    tags: [structure]
    enabled: true
    required: true
`

func TestParseDomainFile(t *testing.T) {
	f, err := Parse([]byte(sampleDomainYAML))
	require.NoError(t, err)

	assert.Equal(t, "testing", f.Domain.ID)
	assert.Equal(t, "Testing Domain", f.Domain.Name)
	assert.Equal(t, []string{"security", "performance"}, f.Domain.Categories)
	assert.Len(t, f.Questions, 2)
	assert.Len(t, f.ExportFormats, 1)
	assert.Len(t, f.ConflictRules, 1)
	assert.Len(t, f.QualityAnalyzers, 1)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("domain: [not: a: mapping"))
	require.Error(t, err)
}

func TestDomainFileConfig(t *testing.T) {
	f, err := Parse([]byte(sampleDomainYAML))
	require.NoError(t, err)

	cfg := f.Config()
	assert.Equal(t, "testing", cfg.ID)
	assert.Equal(t, "0.1.0", cfg.Version)
	require.Len(t, cfg.Questions, 2)
	assert.Equal(t, "q1", cfg.Questions[0]["id"])

	// Nested metadata survives the conversion as a plain map.
	meta, ok := cfg.Questions[1]["metadata"].(map[string]any)
	require.True(t, ok, "metadata should decode as map[string]any, got %T", cfg.Questions[1]["metadata"])
	assert.Equal(t, 2, meta["weight"])
}
