package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nireus79/Socrates2-sub006/domain"
)

func TestObserveRegistration(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRegistration(false)
	m.ObserveRegistration(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RegistrationsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReplacementsTotal))
}

func TestSetDomainCount(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.SetDomainCount(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DomainsRegistered))
}

func TestObserveDomainRecords(t *testing.T) {
	m := New(prometheus.NewRegistry())

	d, report, err := domain.New(domain.BuiltinSecurity())
	require.NoError(t, err)
	require.True(t, report.Clean())

	m.ObserveDomainRecords(d.Metadata())

	questions := testutil.ToFloat64(m.DomainRecords.WithLabelValues("security", "questions"))
	assert.Equal(t, float64(d.Metadata().Questions), questions)
}

func TestObserveBuildReport(t *testing.T) {
	m := New(prometheus.NewRegistry())

	_, report, err := domain.New(domain.Config{
		ID:         "partial",
		Name:       "Partial",
		Version:    "1.0.0",
		Categories: []string{"security"},
		Questions: []domain.RawRecord{
			{"id": "q1", "category": "security", "difficulty": "beginner", "text": "ok"},
			{"id": "q2", "category": "security", "difficulty": "bogus", "text": "bad"},
		},
	})
	require.NoError(t, err)

	m.ObserveBuildReport(report)

	rejected := testutil.ToFloat64(m.RecordsRejected.WithLabelValues("partial", "questions"))
	assert.Equal(t, 1.0, rejected)
}
