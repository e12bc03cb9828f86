// Package validator provides input validation helpers for the adapter
// layer. The engine core deliberately performs no validation (documented
// precondition), so everything here runs at the boundary where classifier
// output and knowledge tables enter the system.
package validator

import (
	"fmt"
	"strings"

	"clinicor/internal/core/domain"
)

// ValidateFindingName checks that a finding-type identifier is usable as
// a knowledge-base key.
func ValidateFindingName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrEmptyFindingName
	}
	return nil
}

// ValidateConfidence checks the [0,1] range.
func ValidateConfidence(confidence float64) error {
	if confidence < 0 || confidence > 1 {
		return fmt.Errorf("%w: %v", domain.ErrConfidenceRange, confidence)
	}
	return nil
}

// ValidateFinding checks a raw input finding: a usable name, an in-range
// confidence and no derived fields.
func ValidateFinding(f *domain.Finding) error {
	if err := ValidateFindingName(f.Name); err != nil {
		return err
	}
	if err := ValidateConfidence(f.Confidence); err != nil {
		return err
	}
	if f.IsAnnotated() {
		return fmt.Errorf("%w: %s", domain.ErrAnnotatedOnInput, f.Name)
	}
	return nil
}

// ValidateKnowledgeBase checks that a table set exists and is in range.
func ValidateKnowledgeBase(kb *domain.KnowledgeBase) error {
	if kb == nil || (len(kb.Relationships) == 0 && len(kb.Prevalence) == 0) {
		return domain.ErrMissingTable
	}
	return kb.Validate()
}
