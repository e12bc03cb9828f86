// internal/platform/validator/validator_test.go
package validator

import (
	"testing"

	"clinicor/internal/core/domain"
	"clinicor/internal/testutil"
)

func TestValidateFindingName(t *testing.T) {
	testutil.AssertNoError(t, ValidateFindingName("Pneumonia"), "valid name")
	testutil.AssertError(t, ValidateFindingName(""), "empty name")
	testutil.AssertError(t, ValidateFindingName("   "), "blank name")
}

func TestValidateConfidence(t *testing.T) {
	testutil.AssertNoError(t, ValidateConfidence(0), "lower bound")
	testutil.AssertNoError(t, ValidateConfidence(1), "upper bound")
	testutil.AssertError(t, ValidateConfidence(-0.01), "below range")
	testutil.AssertError(t, ValidateConfidence(1.01), "above range")
}

func TestValidateFindingRejectsAnnotated(t *testing.T) {
	f := domain.NewFinding("Infiltration", 0.78)
	testutil.AssertNoError(t, ValidateFinding(f), "raw finding")

	f.Relate("Pneumonia", domain.Relationship{Correlation: 0.85, Hierarchy: domain.HierarchyChild})
	testutil.AssertError(t, ValidateFinding(f), "derived fields on input")
}

func TestValidateKnowledgeBase(t *testing.T) {
	testutil.AssertError(t, ValidateKnowledgeBase(nil), "nil kb")
	testutil.AssertError(t, ValidateKnowledgeBase(&domain.KnowledgeBase{}), "empty kb")
	testutil.AssertNoError(t, ValidateKnowledgeBase(testutil.KnowledgeBase()), "fixture kb")
}
