// Package registry provides the process-wide catalog of knowledge domains.
// External callers (the REST layer, the agent layer) discover domains here
// instead of depending on concrete domain definitions.
package registry

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/Nireus79/Socrates2-sub006/domain"
	"github.com/Nireus79/Socrates2-sub006/metrics"
)

// Registry maps domain identifiers to Domain instances. Registration and
// lookup are safe for concurrent use; multiple initialization paths may
// register domains in parallel during process startup.
//
// The registry is an explicit, constructible object. The embedding
// application creates one at startup and passes it to consumers; the
// package-level Global() accessor is a convenience over one default
// instance, not shared engine state.
type Registry struct {
	mu      sync.RWMutex
	domains map[string]*domain.Domain

	logger      *slog.Logger
	instruments *metrics.Metrics
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// WithMetrics attaches prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) { r.instruments = m }
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		domains: make(map[string]*domain.Domain),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a domain, replacing any existing entry with the same id.
// Replacement is a defined operation (last write wins), logged distinctly
// from a fresh registration.
func (r *Registry) Register(d *domain.Domain) {
	r.mu.Lock()
	_, replaced := r.domains[d.ID()]
	r.domains[d.ID()] = d
	r.mu.Unlock()

	if replaced {
		r.logger.Info("Replaced domain registration",
			slog.String("domain_id", d.ID()),
			slog.String("version", d.Version()))
	} else {
		r.logger.Debug("Registered domain",
			slog.String("domain_id", d.ID()),
			slog.String("version", d.Version()))
	}
	if r.instruments != nil {
		r.instruments.ObserveRegistration(replaced)
		r.instruments.SetDomainCount(r.Len())
		r.instruments.ObserveDomainRecords(d.Metadata())
	}
}

// Get returns the domain for id, if registered.
func (r *Registry) Get(id string) (*domain.Domain, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.domains[id]
	return d, ok
}

// DomainIDs returns all registered domain ids, sorted.
func (r *Registry) DomainIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.domains))
	for id := range r.domains {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered domains.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.domains)
}

// Unregister removes the domain for id, reporting whether it was present.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	_, ok := r.domains[id]
	delete(r.domains, id)
	r.mu.Unlock()

	if ok {
		r.logger.Debug("Unregistered domain", slog.String("domain_id", id))
		if r.instruments != nil {
			r.instruments.SetDomainCount(r.Len())
		}
	}
	return ok
}

// Reset removes every entry, returning the registry to its initial empty
// state. Intended for test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.domains = make(map[string]*domain.Domain)
	r.mu.Unlock()

	if r.instruments != nil {
		r.instruments.SetDomainCount(0)
	}
}

// Metadata returns the Info snapshot of every registered domain, sorted by
// domain id.
func (r *Registry) Metadata() []domain.Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]domain.Info, 0, len(r.domains))
	for _, d := range r.domains {
		infos = append(infos, d.Metadata())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].DomainID < infos[j].DomainID })
	return infos
}

// RegisterBuiltins builds every built-in domain definition and registers it.
// Built-in definitions are expected to load cleanly; a rejection in one is a
// packaging bug and surfaces in the returned reports.
func RegisterBuiltins(r *Registry) ([]*domain.BuildReport, error) {
	configs := domain.BuiltinConfigs()
	reports := make([]*domain.BuildReport, 0, len(configs))
	for _, cfg := range configs {
		d, report, err := domain.New(cfg)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
		r.Register(d)
	}
	return reports, nil
}
