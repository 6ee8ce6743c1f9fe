package domain

// codec binds a record type to its parsing, structural validation, and
// serialization. Each engine builds its codec once, closing over whatever
// referential context it needs (e.g. the owning domain's category list).
type codec[T any] struct {
	// kind names the record type for reports and diagnostics.
	kind string

	// id extracts the unique identifier of a typed record.
	id func(T) string

	// parse converts one raw record into a typed value, applying all
	// structural and referential checks. A non-nil rejection excludes the
	// record.
	parse func(RawRecord) (T, *Rejection)

	// validate re-runs structural checks over an already-typed record.
	validate func(T) *Rejection

	// serialize converts a typed record back to its raw configuration
	// shape, losslessly.
	serialize func(T) RawRecord
}

// collection is the shared core behind all four template engines: an
// insertion-ordered, id-keyed set of typed records. Load fully replaces the
// contents; every other operation is read-only. No internal locking — see
// the package comment for the single-writer discipline.
type collection[T any] struct {
	codec codec[T]
	order []string
	byID  map[string]T
}

func newCollection[T any](c codec[T]) collection[T] {
	return collection[T]{codec: c, byID: make(map[string]T)}
}

// load parses and validates a batch of raw records, replacing any previously
// loaded contents. Malformed records are excluded and reported; duplicates
// within the batch lose to the first occurrence.
func (c *collection[T]) load(records []RawRecord) *LoadReport {
	report := newReport(c.codec.kind)
	order := make([]string, 0, len(records))
	byID := make(map[string]T, len(records))

	for _, raw := range records {
		value, rej := c.codec.parse(raw)
		if rej != nil {
			report.Rejected++
			report.Rejections = append(report.Rejections, *rej)
			continue
		}
		id := c.codec.id(value)
		if _, dup := byID[id]; dup {
			report.reject(id, "id", "duplicate id, first occurrence wins")
			continue
		}
		byID[id] = value
		order = append(order, id)
		report.accept()
	}

	c.order = order
	c.byID = byID
	return report
}

// all returns every record in insertion order. Never nil.
func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// get looks up one record by id.
func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

func (c *collection[T]) size() int {
	return len(c.order)
}

// filter returns the records matching the predicate, in insertion order.
func (c *collection[T]) filter(match func(T) bool) []T {
	out := make([]T, 0)
	for _, id := range c.order {
		if v := c.byID[id]; match(v) {
			out = append(out, v)
		}
	}
	return out
}

// validateAll re-runs structural validation over the loaded records without
// reloading or mutating them.
func (c *collection[T]) validateAll() *ValidationReport {
	report := newReport(c.codec.kind)
	for _, id := range c.order {
		if rej := c.codec.validate(c.byID[id]); rej != nil {
			report.Rejected++
			report.Rejections = append(report.Rejections, *rej)
			continue
		}
		report.accept()
	}
	return report
}

// serializeAll converts every record back to the raw configuration shape,
// in insertion order.
func (c *collection[T]) serializeAll() []RawRecord {
	out := make([]RawRecord, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.codec.serialize(c.byID[id]))
	}
	return out
}
