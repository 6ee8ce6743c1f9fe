package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Rejection describes one record excluded during a load or validation pass.
// ID is the record id when one could be determined, empty otherwise.
type Rejection struct {
	ID     string `json:"id,omitempty"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

func (r Rejection) String() string {
	switch {
	case r.ID != "" && r.Field != "":
		return fmt.Sprintf("%s: %s: %s", r.ID, r.Field, r.Reason)
	case r.ID != "":
		return fmt.Sprintf("%s: %s", r.ID, r.Reason)
	default:
		return r.Reason
	}
}

// LoadReport summarizes one load pass over a batch of raw records: how many
// were accepted, how many were rejected, and why. Rejections carry enough
// detail for an outer layer to surface them; the engine itself never turns
// bad data into an error.
type LoadReport struct {
	// ReportID correlates this report in logs (format: rpt-{uuid}).
	ReportID string `json:"report_id"`

	// Kind names the record type this report covers.
	Kind string `json:"kind"`

	// Accepted is the number of records admitted to the collection.
	Accepted int `json:"accepted"`

	// Rejected is the number of records excluded.
	Rejected int `json:"rejected"`

	// Rejections lists one entry per excluded record.
	Rejections []Rejection `json:"rejections,omitempty"`
}

// ValidationReport has the same shape as LoadReport; ValidateAll produces
// one without touching the loaded collection.
type ValidationReport = LoadReport

func newReport(kind string) *LoadReport {
	return &LoadReport{
		ReportID: fmt.Sprintf("rpt-%s", uuid.New().String()[:8]),
		Kind:     kind,
	}
}

func (r *LoadReport) accept() {
	r.Accepted++
}

func (r *LoadReport) reject(id, field, reason string) {
	r.Rejected++
	r.Rejections = append(r.Rejections, Rejection{ID: id, Field: field, Reason: reason})
}

// Clean reports whether the pass rejected nothing.
func (r *LoadReport) Clean() bool {
	return r.Rejected == 0
}
