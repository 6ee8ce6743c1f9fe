package domain

// SeverityLevel ranks findings produced by conflict rules and quality
// analyzers. The three levels are totally ordered: error > warning > info.
type SeverityLevel string

const (
	SeverityError   SeverityLevel = "error"
	SeverityWarning SeverityLevel = "warning"
	SeverityInfo    SeverityLevel = "info"
)

// severityRank orders severities for sorting and filtering.
// Higher rank means more severe.
var severityRank = map[SeverityLevel]int{
	SeverityInfo:    1,
	SeverityWarning: 2,
	SeverityError:   3,
}

// ParseSeverity converts a raw string to a SeverityLevel.
// Returns false for anything outside the three defined levels.
func ParseSeverity(s string) (SeverityLevel, bool) {
	level := SeverityLevel(s)
	if !level.Valid() {
		return "", false
	}
	return level, true
}

// Valid reports whether the severity is one of the three defined levels.
func (s SeverityLevel) Valid() bool {
	_, ok := severityRank[s]
	return ok
}

// Rank returns the ordering rank of the severity. Higher is more severe.
// Unknown severities rank below info.
func (s SeverityLevel) Rank() int {
	return severityRank[s]
}

// AtLeast reports whether s is at least as severe as min.
func (s SeverityLevel) AtLeast(min SeverityLevel) bool {
	return s.Rank() >= min.Rank()
}

// Difficulty orders questions from beginner to advanced.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var difficultyRank = map[Difficulty]int{
	DifficultyBeginner:     1,
	DifficultyIntermediate: 2,
	DifficultyAdvanced:     3,
}

// ParseDifficulty converts a raw string to a Difficulty.
// Returns false for anything outside the three defined levels.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", false
	}
	return d, true
}

// Valid reports whether the difficulty is one of the three defined levels.
func (d Difficulty) Valid() bool {
	_, ok := difficultyRank[d]
	return ok
}

// Rank returns the ordering rank of the difficulty. Higher is harder.
func (d Difficulty) Rank() int {
	return difficultyRank[d]
}
