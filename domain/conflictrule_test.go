package domain

import (
	"reflect"
	"testing"
)

func TestConflictRuleEngineMissingSeverity(t *testing.T) {
	e := NewConflictRuleEngine(nil)
	report := e.Load([]RawRecord{
		{"id": "r1", "category": "architecture", "severity": "error", "pattern": "a && b", "description": "ok"},
		{"id": "r2", "category": "architecture", "pattern": "c && d", "description": "no severity"},
	})

	if report.Accepted != 1 || report.Rejected != 1 {
		t.Fatalf("report = %d/%d, want 1 accepted, 1 rejected", report.Accepted, report.Rejected)
	}
	if len(e.All()) != 1 {
		t.Fatalf("All() length = %d, want 1", len(e.All()))
	}
	if report.Rejections[0].Field != "severity" {
		t.Errorf("rejection field = %q, want severity", report.Rejections[0].Field)
	}
}

func TestConflictRuleEngineUnknownSeverity(t *testing.T) {
	e := NewConflictRuleEngine(nil)
	report := e.Load([]RawRecord{
		{"id": "r1", "category": "x", "severity": "fatal", "pattern": "p"},
	})
	if report.Accepted != 0 || report.Rejected != 1 {
		t.Fatalf("report = %d/%d, want 0 accepted, 1 rejected", report.Accepted, report.Rejected)
	}
}

func TestConflictRuleEngineCategoryReferential(t *testing.T) {
	e := NewConflictRuleEngine([]string{"architecture"})
	report := e.Load([]RawRecord{
		{"id": "r1", "category": "architecture", "severity": "warning", "pattern": "p"},
		{"id": "r2", "category": "billing", "severity": "warning", "pattern": "p"},
	})
	if report.Accepted != 1 || report.Rejected != 1 {
		t.Fatalf("report = %d/%d, want 1 accepted, 1 rejected", report.Accepted, report.Rejected)
	}
	if report.Rejections[0].ID != "r2" {
		t.Errorf("rejected id = %q, want r2", report.Rejections[0].ID)
	}
}

func TestConflictRuleEngineFilter(t *testing.T) {
	e := NewConflictRuleEngine(nil)
	e.Load([]RawRecord{
		{"id": "r1", "category": "arch", "severity": "error", "pattern": "p1"},
		{"id": "r2", "category": "arch", "severity": "warning", "pattern": "p2"},
		{"id": "r3", "category": "perf", "severity": "info", "pattern": "p3"},
	})

	errorsOnly, err := e.Filter(FilterSpec{"severity": "error"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(errorsOnly) != 1 || errorsOnly[0].ID != "r1" {
		t.Errorf("severity filter = %v, want [r1]", errorsOnly)
	}

	atLeastWarning, err := e.Filter(FilterSpec{"min_severity": "warning"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	ids := make([]string, 0)
	for _, r := range atLeastWarning {
		ids = append(ids, r.ID)
	}
	if !reflect.DeepEqual(ids, []string{"r1", "r2"}) {
		t.Errorf("min_severity filter = %v, want [r1 r2]", ids)
	}

	arch, err := e.Filter(FilterSpec{"category": "arch", "min_severity": "warning"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(arch) != 2 {
		t.Errorf("combined filter length = %d, want 2", len(arch))
	}

	if _, err := e.Filter(FilterSpec{"severity": "fatal"}); err == nil {
		t.Error("expected error for unknown severity value")
	}
	if _, err := e.Filter(FilterSpec{"difficulty": "beginner"}); err == nil {
		t.Error("expected error for unsupported dimension")
	}
}

func TestConflictRuleRoundTrip(t *testing.T) {
	e := NewConflictRuleEngine(nil)
	e.Load([]RawRecord{
		{"id": "r1", "category": "arch", "severity": "error", "pattern": "p1", "description": "d1"},
		{"id": "r2", "category": "arch", "severity": "info", "pattern": "p2"},
	})

	second := NewConflictRuleEngine(nil)
	report := second.Load(e.SerializeAll())
	if report.Rejected != 0 {
		t.Fatalf("re-load rejected %d: %v", report.Rejected, report.Rejections)
	}
	if !reflect.DeepEqual(e.All(), second.All()) {
		t.Errorf("round trip changed records:\n%#v\n%#v", e.All(), second.All())
	}
}
