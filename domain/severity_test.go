package domain

import "testing"

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  SeverityLevel
		ok    bool
	}{
		{"error", SeverityError, true},
		{"warning", SeverityWarning, true},
		{"info", SeverityInfo, true},
		{"critical", "", false},
		{"", "", false},
		{"ERROR", "", false}, // levels are lowercase only
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSeverity(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseSeverity(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !SeverityError.AtLeast(SeverityWarning) {
		t.Error("error should be at least warning")
	}
	if !SeverityWarning.AtLeast(SeverityInfo) {
		t.Error("warning should be at least info")
	}
	if SeverityInfo.AtLeast(SeverityWarning) {
		t.Error("info should not be at least warning")
	}
	if SeverityError.Rank() <= SeverityWarning.Rank() || SeverityWarning.Rank() <= SeverityInfo.Rank() {
		t.Error("rank ordering should be error > warning > info")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  Difficulty
		ok    bool
	}{
		{"beginner", DifficultyBeginner, true},
		{"intermediate", DifficultyIntermediate, true},
		{"advanced", DifficultyAdvanced, true},
		{"expert", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDifficulty(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseDifficulty(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}

	if DifficultyAdvanced.Rank() <= DifficultyBeginner.Rank() {
		t.Error("advanced should rank above beginner")
	}
}
