// internal/platform/registry/exporter_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"clinicor/internal/core/ports"
	"clinicor/internal/platform/errors"
)

// ExporterRegistry manages registration and construction of report
// exporters. Registry + factory keeps exporter creation out of the
// application wiring: each output package registers itself from init().
type ExporterRegistry struct {
	mu        sync.RWMutex
	factories map[string]ports.ExporterFactory
}

// globalRegistry is the process-wide instance.
var globalRegistry *ExporterRegistry
var once sync.Once

// Global returns the process-wide registry.
func Global() *ExporterRegistry {
	once.Do(func() {
		globalRegistry = New()
	})
	return globalRegistry
}

// New creates an empty registry.
func New() *ExporterRegistry {
	return &ExporterRegistry{
		factories: make(map[string]ports.ExporterFactory),
	}
}

// Register adds an exporter factory under a format name.
func (r *ExporterRegistry) Register(name string, factory ports.ExporterFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("exporter name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil for exporter %s", name)
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("exporter %s is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

// MustRegister is Register for init() paths; registration conflicts are
// programmer errors.
func (r *ExporterRegistry) MustRegister(name string, factory ports.ExporterFactory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Build constructs exporters for the requested format names, in order.
func (r *ExporterRegistry) Build(names []string) ([]ports.Exporter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exporters := make([]ports.Exporter, 0, len(names))
	for _, name := range names {
		factory, ok := r.factories[name]
		if !ok {
			return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%q (known: %v)", name, r.namesLocked())
		}
		exp, err := factory()
		if err != nil {
			return nil, errors.Wrapf(err, "building exporter %s", name)
		}
		exporters = append(exporters, exp)
	}
	return exporters, nil
}

// Names returns the registered format names, sorted.
func (r *ExporterRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *ExporterRegistry) namesLocked() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
