// internal/adapters/input/json_test.go
package input

import (
	"os"
	"path/filepath"
	"testing"

	"clinicor/internal/platform/errors"
	"clinicor/internal/testutil"
)

func writeInputFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestReadClassifierOutput(t *testing.T) {
	path := writeInputFile(t, `[
		{"name": "Pneumonia", "confidence": 0.80},
		{"name": "Infiltration", "confidence": 0.78}
	]`)

	findings, warnings, err := NewJSONReader().Read(path)

	testutil.AssertNoError(t, err, "read")
	testutil.AssertEqual(t, len(findings), 2, "findings")
	testutil.AssertEqual(t, len(warnings), 0, "warnings")
	testutil.AssertEqual(t, findings[0].Name, "Pneumonia", "first record")
	testutil.AssertEqual(t, findings[0].Confidence, 0.80, "first confidence")
	if findings[0].IsAnnotated() {
		t.Error("input findings must carry no derived fields")
	}
}

func TestReadIgnoresDerivedFieldsOnInput(t *testing.T) {
	// Derived fields in the payload are dropped at the wire boundary.
	path := writeInputFile(t, `[
		{"name": "Infiltration", "confidence": 0.78,
		 "correlation": 0.9, "isChild": true, "parentDisease": "Pneumonia"}
	]`)

	findings, _, err := NewJSONReader().Read(path)

	testutil.AssertNoError(t, err, "read")
	if findings[0].IsAnnotated() {
		t.Error("wire-level derived fields must not survive decoding")
	}
}

func TestReadWarnsOnOutOfRangeConfidence(t *testing.T) {
	path := writeInputFile(t, `[{"name": "Pneumonia", "confidence": 1.3}]`)

	findings, warnings, err := NewJSONReader().Read(path)

	testutil.AssertNoError(t, err, "out-of-range is not fatal")
	testutil.AssertEqual(t, len(findings), 1, "finding passed through unclamped")
	testutil.AssertEqual(t, findings[0].Confidence, 1.3, "confidence untouched")
	testutil.AssertEqual(t, len(warnings), 1, "one warning")
}

func TestReadSkipsEmptyNames(t *testing.T) {
	path := writeInputFile(t, `[
		{"name": "", "confidence": 0.5},
		{"name": "Hernia", "confidence": 0.4}
	]`)

	findings, warnings, err := NewJSONReader().Read(path)

	testutil.AssertNoError(t, err, "read")
	testutil.AssertEqual(t, len(findings), 1, "unusable record skipped")
	testutil.AssertEqual(t, findings[0].Name, "Hernia", "surviving record")
	testutil.AssertEqual(t, len(warnings), 1, "one warning")
}

func TestReadEmptyArray(t *testing.T) {
	path := writeInputFile(t, `[]`)

	findings, warnings, err := NewJSONReader().Read(path)

	testutil.AssertNoError(t, err, "empty input is not an error")
	testutil.AssertEqual(t, len(findings), 0, "no findings")
	testutil.AssertEqual(t, len(warnings), 0, "no warnings")
}

func TestReadMalformedJSON(t *testing.T) {
	path := writeInputFile(t, `{"not": "an array"`)

	_, _, err := NewJSONReader().Read(path)

	testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidInput), "malformed payload is fatal")
}

func TestReadMissingFile(t *testing.T) {
	_, _, err := NewJSONReader().Read(filepath.Join(t.TempDir(), "nope.json"))

	testutil.AssertError(t, err, "missing file")
}
