package domain

import "fmt"

// Question represents one elicitation prompt a domain can put to a user.
// Questions are loaded once from configuration and immutable thereafter.
type Question struct {
	// ID uniquely identifies this question within its domain.
	ID string `json:"id"`

	// Category groups related questions. It must appear in the owning
	// domain's category list.
	Category string `json:"category"`

	// Difficulty orders questions from beginner to advanced.
	Difficulty Difficulty `json:"difficulty"`

	// Text is the question wording shown to the user.
	Text string `json:"text"`

	// Dependencies lists ids of questions that should be answered first.
	// Stored sorted and deduplicated; never contains the question itself.
	Dependencies []string `json:"dependencies,omitempty"`

	// Metadata carries open extension fields.
	Metadata Metadata `json:"metadata,omitempty"`
}

// HasDependencies reports whether the question depends on other questions.
func (q Question) HasDependencies() bool {
	return len(q.Dependencies) > 0
}

// QuestionEngine manages the question collection for one domain.
type QuestionEngine struct {
	categories map[string]struct{}
	col        collection[Question]
}

// NewQuestionEngine creates an empty engine. Questions loaded into it must
// use one of the given categories; a nil category list disables the
// referential check.
func NewQuestionEngine(categories []string) *QuestionEngine {
	e := &QuestionEngine{categories: categorySet(categories)}
	e.col = newCollection(codec[Question]{
		kind:      "question",
		id:        func(q Question) string { return q.ID },
		parse:     e.parse,
		validate:  e.validate,
		serialize: serializeQuestion,
	})
	return e
}

// Load parses and validates raw question records, replacing any previously
// loaded set. Malformed records are excluded and reported.
func (e *QuestionEngine) Load(records []RawRecord) *LoadReport {
	return e.col.load(records)
}

// All returns every loaded question in insertion order.
func (e *QuestionEngine) All() []Question {
	return e.col.all()
}

// Get looks up one question by id.
func (e *QuestionEngine) Get(id string) (Question, bool) {
	return e.col.get(id)
}

// Len returns the number of loaded questions.
func (e *QuestionEngine) Len() int {
	return e.col.size()
}

// ValidateAll re-runs structural validation without reloading.
func (e *QuestionEngine) ValidateAll() *ValidationReport {
	return e.col.validateAll()
}

// SerializeAll converts every question back to the raw configuration shape.
func (e *QuestionEngine) SerializeAll() []RawRecord {
	return e.col.serializeAll()
}

// Filter returns the questions matching the spec. Supported dimensions:
// "category" (string), "difficulty" (string), "has_dependencies" (bool).
func (e *QuestionEngine) Filter(spec FilterSpec) ([]Question, error) {
	const kind = "question"
	if err := spec.checkDimensions(kind, "category", "difficulty", "has_dependencies"); err != nil {
		return nil, err
	}
	category, byCategory, err := spec.stringDim(kind, "category")
	if err != nil {
		return nil, err
	}
	difficultyStr, byDifficulty, err := spec.stringDim(kind, "difficulty")
	if err != nil {
		return nil, err
	}
	var difficulty Difficulty
	if byDifficulty {
		d, ok := ParseDifficulty(difficultyStr)
		if !ok {
			return nil, fmt.Errorf("question filter: unknown difficulty %q", difficultyStr)
		}
		difficulty = d
	}
	wantDeps, byDeps, err := spec.boolDim(kind, "has_dependencies")
	if err != nil {
		return nil, err
	}

	return e.col.filter(func(q Question) bool {
		if byCategory && q.Category != category {
			return false
		}
		if byDifficulty && q.Difficulty != difficulty {
			return false
		}
		if byDeps && q.HasDependencies() != wantDeps {
			return false
		}
		return true
	}), nil
}

func (e *QuestionEngine) parse(raw RawRecord) (Question, *Rejection) {
	var q Question
	id, ok := raw.stringField("id")
	if !ok || id == "" {
		return q, &Rejection{ID: raw.idOf(), Field: "id", Reason: "missing or empty"}
	}
	category, ok := raw.stringField("category")
	if !ok || category == "" {
		return q, &Rejection{ID: id, Field: "category", Reason: "missing or empty"}
	}
	difficultyStr, ok := raw.stringField("difficulty")
	if !ok {
		return q, &Rejection{ID: id, Field: "difficulty", Reason: "missing or empty"}
	}
	difficulty, ok := ParseDifficulty(difficultyStr)
	if !ok {
		return q, &Rejection{ID: id, Field: "difficulty", Reason: "unknown difficulty " + difficultyStr}
	}
	text, ok := raw.stringField("text")
	if !ok || text == "" {
		return q, &Rejection{ID: id, Field: "text", Reason: "missing or empty"}
	}
	deps, err := raw.stringSliceField("dependencies")
	if err != nil {
		return q, &Rejection{ID: id, Field: "dependencies", Reason: err.Error()}
	}
	metaMap, err := raw.mapField("metadata")
	if err != nil {
		return q, &Rejection{ID: id, Field: "metadata", Reason: err.Error()}
	}
	metadata, err := metadataFromMap(metaMap)
	if err != nil {
		return q, &Rejection{ID: id, Field: "metadata", Reason: err.Error()}
	}

	q = Question{
		ID:           id,
		Category:     category,
		Difficulty:   difficulty,
		Text:         text,
		Dependencies: normalizeStringSet(deps),
		Metadata:     metadata,
	}
	return q, e.validate(q)
}

func (e *QuestionEngine) validate(q Question) *Rejection {
	if q.ID == "" {
		return &Rejection{Field: "id", Reason: "missing or empty"}
	}
	if q.Text == "" {
		return &Rejection{ID: q.ID, Field: "text", Reason: "missing or empty"}
	}
	if !q.Difficulty.Valid() {
		return &Rejection{ID: q.ID, Field: "difficulty", Reason: "unknown difficulty " + string(q.Difficulty)}
	}
	if e.categories != nil {
		if _, ok := e.categories[q.Category]; !ok {
			return &Rejection{ID: q.ID, Field: "category", Reason: "category " + q.Category + " not declared by domain"}
		}
	}
	for _, dep := range q.Dependencies {
		if dep == q.ID {
			return &Rejection{ID: q.ID, Field: "dependencies", Reason: "question depends on itself"}
		}
	}
	return nil
}

func serializeQuestion(q Question) RawRecord {
	raw := RawRecord{
		"id":         q.ID,
		"category":   q.Category,
		"difficulty": string(q.Difficulty),
		"text":       q.Text,
	}
	if len(q.Dependencies) > 0 {
		deps := make([]string, len(q.Dependencies))
		copy(deps, q.Dependencies)
		raw["dependencies"] = deps
	}
	if meta := q.Metadata.ToMap(); meta != nil {
		raw["metadata"] = meta
	}
	return raw
}

func categorySet(categories []string) map[string]struct{} {
	if categories == nil {
		return nil
	}
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return set
}
