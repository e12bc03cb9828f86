// internal/core/ports/reader.go
package ports

import "clinicor/internal/core/domain"

// FindingReader is the port for obtaining classifier output. The engine
// itself performs no I/O; adapters implement this to read exported
// classifier results (files, stdin) and surface non-fatal input issues
// as warnings.
type FindingReader interface {
	// Name returns the reader name (e.g. "json-file")
	Name() string

	// Read loads the findings from the given location. Warnings carry
	// recoverable input issues (out-of-range confidence, empty names);
	// the error is non-nil only when nothing usable could be read.
	Read(location string) ([]*domain.Finding, []domain.Warning, error)
}
