package domain

import (
	"reflect"
	"testing"
)

func validQuestionRecords() []RawRecord {
	return []RawRecord{
		{"id": "q1", "category": "security", "difficulty": "beginner", "text": "How do users authenticate?"},
		{"id": "q2", "category": "security", "difficulty": "advanced", "text": "Where are the trust boundaries?", "dependencies": []string{"q1"}},
		{"id": "q3", "category": "performance", "difficulty": "intermediate", "text": "What are the latency budgets?"},
	}
}

func TestQuestionEngineHappyPath(t *testing.T) {
	e := NewQuestionEngine([]string{"security", "performance"})
	report := e.Load(validQuestionRecords())

	if report.Accepted != 3 || report.Rejected != 0 {
		t.Fatalf("report = %d accepted / %d rejected, want 3/0", report.Accepted, report.Rejected)
	}
	if len(e.All()) != 3 {
		t.Fatalf("All() length = %d, want 3", len(e.All()))
	}

	security, err := e.Filter(FilterSpec{"category": "security"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(security) != 2 {
		t.Errorf("filter category=security length = %d, want 2", len(security))
	}
}

func TestQuestionEngineInsertionOrder(t *testing.T) {
	e := NewQuestionEngine(nil)
	e.Load(validQuestionRecords())

	ids := make([]string, 0)
	for _, q := range e.All() {
		ids = append(ids, q.ID)
	}
	if !reflect.DeepEqual(ids, []string{"q1", "q2", "q3"}) {
		t.Errorf("All() order = %v, want [q1 q2 q3]", ids)
	}
}

func TestQuestionEngineDuplicateID(t *testing.T) {
	e := NewQuestionEngine(nil)
	report := e.Load([]RawRecord{
		{"id": "q1", "category": "security", "difficulty": "beginner", "text": "first"},
		{"id": "q1", "category": "security", "difficulty": "advanced", "text": "second"},
	})

	if report.Accepted != 1 || report.Rejected != 1 {
		t.Fatalf("report = %d/%d, want 1 accepted, 1 rejected", report.Accepted, report.Rejected)
	}
	if len(e.All()) != 1 {
		t.Fatalf("All() length = %d, want 1", len(e.All()))
	}
	// First occurrence wins.
	q, ok := e.Get("q1")
	if !ok || q.Text != "first" {
		t.Errorf("Get(q1) = %+v, want the first record", q)
	}
}

func TestQuestionEngineRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		record RawRecord
		field  string
	}{
		{"missing id", RawRecord{"category": "security", "difficulty": "beginner", "text": "x"}, "id"},
		{"empty text", RawRecord{"id": "q1", "category": "security", "difficulty": "beginner", "text": ""}, "text"},
		{"missing difficulty", RawRecord{"id": "q1", "category": "security", "text": "x"}, "difficulty"},
		{"unknown difficulty", RawRecord{"id": "q1", "category": "security", "difficulty": "expert", "text": "x"}, "difficulty"},
		{"undeclared category", RawRecord{"id": "q1", "category": "nope", "difficulty": "beginner", "text": "x"}, "category"},
		{"self dependency", RawRecord{"id": "q1", "category": "security", "difficulty": "beginner", "text": "x", "dependencies": []string{"q1"}}, "dependencies"},
		{"mistyped dependencies", RawRecord{"id": "q1", "category": "security", "difficulty": "beginner", "text": "x", "dependencies": "q2"}, "dependencies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewQuestionEngine([]string{"security"})
			report := e.Load([]RawRecord{tt.record})
			if report.Accepted != 0 || report.Rejected != 1 {
				t.Fatalf("report = %d/%d, want 0 accepted, 1 rejected", report.Accepted, report.Rejected)
			}
			if report.Rejections[0].Field != tt.field {
				t.Errorf("rejection field = %q, want %q", report.Rejections[0].Field, tt.field)
			}
		})
	}
}

func TestQuestionEnginePartialFailureIsolation(t *testing.T) {
	records := validQuestionRecords()
	records = append(records, RawRecord{"id": "bad", "category": "security", "difficulty": "beginner"}) // no text

	e := NewQuestionEngine([]string{"security", "performance"})
	report := e.Load(records)

	if report.Accepted != 3 || report.Rejected != 1 {
		t.Fatalf("report = %d/%d, want 3 accepted, 1 rejected", report.Accepted, report.Rejected)
	}
}

func TestQuestionEngineIdempotentLoad(t *testing.T) {
	e := NewQuestionEngine([]string{"security", "performance"})
	e.Load(validQuestionRecords())
	e.Load(validQuestionRecords())

	if len(e.All()) != 3 {
		t.Errorf("second load should replace, not append: length = %d, want 3", len(e.All()))
	}
}

func TestQuestionEngineLoadReplaces(t *testing.T) {
	e := NewQuestionEngine(nil)
	e.Load(validQuestionRecords())
	e.Load([]RawRecord{{"id": "other", "category": "security", "difficulty": "beginner", "text": "only one"}})

	if len(e.All()) != 1 {
		t.Fatalf("All() length = %d, want 1 after replacing load", len(e.All()))
	}
	if _, ok := e.Get("q1"); ok {
		t.Error("q1 should be gone after replacing load")
	}
}

func TestQuestionRoundTrip(t *testing.T) {
	records := validQuestionRecords()
	records[0]["metadata"] = map[string]any{"weight": 2, "owner": "sec"}

	e := NewQuestionEngine([]string{"security", "performance"})
	e.Load(records)

	second := NewQuestionEngine([]string{"security", "performance"})
	report := second.Load(e.SerializeAll())
	if report.Rejected != 0 {
		t.Fatalf("re-load of serialized records rejected %d: %v", report.Rejected, report.Rejections)
	}
	if !reflect.DeepEqual(e.All(), second.All()) {
		t.Errorf("round trip changed records:\n%#v\n%#v", e.All(), second.All())
	}
}

func TestQuestionEngineFilterDimensions(t *testing.T) {
	e := NewQuestionEngine(nil)
	e.Load(validQuestionRecords())

	withDeps, err := e.Filter(FilterSpec{"has_dependencies": true})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(withDeps) != 1 || withDeps[0].ID != "q2" {
		t.Errorf("has_dependencies filter = %v, want [q2]", withDeps)
	}

	advanced, err := e.Filter(FilterSpec{"difficulty": "advanced"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(advanced) != 1 || advanced[0].ID != "q2" {
		t.Errorf("difficulty filter = %v, want [q2]", advanced)
	}

	both, err := e.Filter(FilterSpec{"category": "security", "difficulty": "beginner"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(both) != 1 || both[0].ID != "q1" {
		t.Errorf("combined filter = %v, want [q1]", both)
	}
}

func TestQuestionEngineFilterMisuse(t *testing.T) {
	e := NewQuestionEngine(nil)
	e.Load(validQuestionRecords())

	if _, err := e.Filter(FilterSpec{"severity": "error"}); err == nil {
		t.Error("expected error for unsupported dimension")
	}
	if _, err := e.Filter(FilterSpec{"category": 42}); err == nil {
		t.Error("expected error for mistyped dimension value")
	}
	if _, err := e.Filter(FilterSpec{"difficulty": "expert"}); err == nil {
		t.Error("expected error for unknown difficulty level")
	}
}

func TestQuestionEngineEmpty(t *testing.T) {
	e := NewQuestionEngine(nil)
	e.Load(nil)

	if all := e.All(); all == nil || len(all) != 0 {
		t.Errorf("All() on empty engine = %v, want empty non-nil slice", all)
	}
	if got := e.SerializeAll(); got == nil || len(got) != 0 {
		t.Errorf("SerializeAll() on empty engine = %v, want empty non-nil slice", got)
	}
}
