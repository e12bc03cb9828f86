// internal/core/ports/knowledge.go
package ports

import "clinicor/internal/core/domain"

// KnowledgeSource is the port for obtaining the static clinical tables.
// Implementations include the compiled-in chest X-ray table and a YAML
// file loader, so tests and deployments can substitute synthetic tables
// without touching global state.
type KnowledgeSource interface {
	// Name returns the source name (e.g. "builtin", "yaml")
	Name() string

	// Load builds a validated knowledge base.
	Load() (*domain.KnowledgeBase, error)
}
