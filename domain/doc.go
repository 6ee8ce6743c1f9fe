// Package domain implements the pluggable knowledge-domain engine: typed
// record collections (questions, export formats, conflict rules, quality
// analyzers) loaded from declarative configuration, aggregated into Domain
// values that expose a uniform read API.
//
// Loading follows a partial-success policy: malformed records are excluded
// and reported, never fatal. After Load completes a collection is treated as
// immutable, so all read operations are safe for concurrent use without
// locking. Load and ValidateAll must not run concurrently with reads on the
// same engine instance; in practice loading happens once, inside Domain
// construction, before the Domain is handed to any caller.
package domain
