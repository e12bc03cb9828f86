// internal/adapters/input/json.go
package input

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"clinicor/internal/core/domain"
	"clinicor/internal/platform/errors"
	"clinicor/internal/platform/validator"
)

// JSONReader reads classifier output: a JSON array of
// {"name": ..., "confidence": ...} records from a file, or stdin when the
// location is "-". Recoverable issues become warnings; the engine itself
// never validates input, that responsibility stays here at the boundary.
type JSONReader struct{}

// NewJSONReader creates the reader.
func NewJSONReader() *JSONReader {
	return &JSONReader{}
}

// Name returns the reader name.
func (r *JSONReader) Name() string {
	return "json-file"
}

// findingRecord is the wire shape. Decoding through it guarantees derived
// fields (correlation, isChild, parentDisease) can never arrive populated
// from outside.
type findingRecord struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Read loads findings from the location.
func (r *JSONReader) Read(location string) ([]*domain.Finding, []domain.Warning, error) {
	var src io.Reader
	if location == "-" {
		src = os.Stdin
	} else {
		f, err := os.Open(location)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "opening %s", location)
		}
		defer f.Close()
		src = f
	}

	var records []findingRecord
	dec := json.NewDecoder(src)
	if err := dec.Decode(&records); err != nil {
		return nil, nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	findings := make([]*domain.Finding, 0, len(records))
	var warnings []domain.Warning

	for i, rec := range records {
		if err := validator.ValidateFindingName(rec.Name); err != nil {
			warnings = append(warnings, domain.NewWarning(r.Name(),
				fmt.Sprintf("record %d: %v, skipped", i, err)))
			continue
		}
		if err := validator.ValidateConfidence(rec.Confidence); err != nil {
			// Passed through, not clamped: the precondition belongs to
			// the classifier, we only surface the violation.
			warnings = append(warnings, domain.NewWarning(r.Name(),
				fmt.Sprintf("record %d (%s): %v", i, rec.Name, err)))
		}
		findings = append(findings, domain.NewFinding(rec.Name, rec.Confidence))
	}

	return findings, warnings, nil
}
