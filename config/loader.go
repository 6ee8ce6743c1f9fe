package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Nireus79/Socrates2-sub006/domain"
	"github.com/Nireus79/Socrates2-sub006/registry"
)

// DefaultPattern matches domain definition files under a configuration
// directory.
const DefaultPattern = "**/*.{yaml,yml}"

// Loader builds domains from definition files and registers them.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// FileResult records the outcome for one definition file.
type FileResult struct {
	// Path is the definition file path.
	Path string

	// DomainID is the id of the domain the file defined, when it parsed.
	DomainID string

	// Report is the build report, nil when the file failed to parse.
	Report *domain.BuildReport

	// Err is the file-level failure, if any. Record-level problems are
	// rejections inside Report, not errors.
	Err error
}

// Summary aggregates the outcome of one LoadDir pass.
type Summary struct {
	Files []FileResult
}

// Registered returns the ids of the domains that were built and registered.
func (s *Summary) Registered() []string {
	ids := make([]string, 0, len(s.Files))
	for _, f := range s.Files {
		if f.Err == nil {
			ids = append(ids, f.DomainID)
		}
	}
	return ids
}

// Failed reports whether any file failed outright.
func (s *Summary) Failed() bool {
	for _, f := range s.Files {
		if f.Err != nil {
			return true
		}
	}
	return false
}

// Rejected returns the total record rejections across all loaded files.
func (s *Summary) Rejected() int {
	total := 0
	for _, f := range s.Files {
		if f.Report != nil {
			total += f.Report.Rejected()
		}
	}
	return total
}

// Discover expands a doublestar glob pattern rooted at dir into definition
// file paths, sorted for deterministic load order.
func (l *Loader) Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	return matches, nil
}

// LoadFile builds one domain from a definition file and registers it.
func (l *Loader) LoadFile(reg *registry.Registry, path string) FileResult {
	result := FileResult{Path: path}

	file, err := LoadFromFile(path)
	if err != nil {
		result.Err = err
		return result
	}

	d, report, err := domain.New(file.Config())
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", path, err)
		return result
	}
	result.DomainID = d.ID()
	result.Report = report

	if !report.Clean() {
		l.logger.Warn("Domain loaded with rejected records",
			slog.String("domain_id", d.ID()),
			slog.String("path", path),
			slog.Int("accepted", report.Accepted()),
			slog.Int("rejected", report.Rejected()))
	}

	reg.Register(d)
	l.logger.Debug("Loaded domain definition",
		slog.String("domain_id", d.ID()),
		slog.String("path", path))
	return result
}

// LoadDir discovers definition files under dir and loads each into the
// registry. A file that fails to parse is reported in the summary and
// skipped; it never aborts the rest of the pass.
func (l *Loader) LoadDir(reg *registry.Registry, dir, pattern string) (*Summary, error) {
	paths, err := l.Discover(dir, pattern)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Files: make([]FileResult, 0, len(paths))}
	for _, path := range paths {
		result := l.LoadFile(reg, path)
		if result.Err != nil {
			l.logger.Warn("Skipping domain definition",
				slog.String("path", path),
				slog.String("error", result.Err.Error()))
		}
		summary.Files = append(summary.Files, result)
	}

	l.logger.Info("Loaded domain definitions",
		slog.String("dir", dir),
		slog.Int("files", len(summary.Files)),
		slog.Int("domains", len(summary.Registered())),
		slog.Int("rejected_records", summary.Rejected()))
	return summary, nil
}
