// Package metrics provides prometheus instrumentation for the domain
// registry and engine loading.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Nireus79/Socrates2-sub006/domain"
)

// Metrics tracks registry activity and per-domain record counts.
type Metrics struct {
	RegistrationsTotal prometheus.Counter
	ReplacementsTotal  prometheus.Counter
	DomainsRegistered  prometheus.Gauge
	DomainRecords      *prometheus.GaugeVec
	RecordsRejected    *prometheus.CounterVec
}

// New creates a Metrics instance registered against reg. A nil reg falls
// back to the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		RegistrationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "socrates_domain_registrations_total",
			Help: "Total number of domain registrations, including replacements",
		}),
		ReplacementsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "socrates_domain_replacements_total",
			Help: "Total number of registrations that replaced an existing domain",
		}),
		DomainsRegistered: factory.NewGauge(prometheus.GaugeOpts{
			Name: "socrates_domains_registered",
			Help: "Number of domains currently registered",
		}),
		DomainRecords: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "socrates_domain_records",
			Help: "Loaded record count per domain and subsystem",
		}, []string{"domain", "subsystem"}),
		RecordsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "socrates_records_rejected_total",
			Help: "Records rejected during load, per domain and subsystem",
		}, []string{"domain", "subsystem"}),
	}
}

// ObserveRegistration records one registration, counting replacements
// separately.
func (m *Metrics) ObserveRegistration(replaced bool) {
	m.RegistrationsTotal.Inc()
	if replaced {
		m.ReplacementsTotal.Inc()
	}
}

// SetDomainCount updates the registered-domain gauge.
func (m *Metrics) SetDomainCount(n int) {
	m.DomainsRegistered.Set(float64(n))
}

// ObserveDomainRecords updates the per-subsystem record gauges from a
// domain metadata snapshot.
func (m *Metrics) ObserveDomainRecords(info domain.Info) {
	m.DomainRecords.WithLabelValues(info.DomainID, "questions").Set(float64(info.Questions))
	m.DomainRecords.WithLabelValues(info.DomainID, "export_formats").Set(float64(info.ExportFormats))
	m.DomainRecords.WithLabelValues(info.DomainID, "conflict_rules").Set(float64(info.ConflictRules))
	m.DomainRecords.WithLabelValues(info.DomainID, "quality_analyzers").Set(float64(info.QualityAnalyzers))
}

// ObserveBuildReport records the rejection counts from one domain build.
func (m *Metrics) ObserveBuildReport(report *domain.BuildReport) {
	m.RecordsRejected.WithLabelValues(report.DomainID, "questions").Add(float64(report.Questions.Rejected))
	m.RecordsRejected.WithLabelValues(report.DomainID, "export_formats").Add(float64(report.ExportFormats.Rejected))
	m.RecordsRejected.WithLabelValues(report.DomainID, "conflict_rules").Add(float64(report.ConflictRules.Rejected))
	m.RecordsRejected.WithLabelValues(report.DomainID, "quality_analyzers").Add(float64(report.QualityAnalyzers.Rejected))
}
