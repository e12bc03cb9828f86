// internal/adapters/knowledge/knowledge_test.go
package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"clinicor/internal/core/domain"
	"clinicor/internal/platform/errors"
	"clinicor/internal/testutil"
)

func TestBuiltinLoads(t *testing.T) {
	kb, err := NewBuiltinSource().Load()

	testutil.AssertNoError(t, err, "builtin load")
	testutil.AssertEqual(t, kb.Name, "builtin-chest-xray", "kb name")

	rel, ok := kb.Resolve("Infiltration", "Pneumonia")
	if !ok {
		t.Fatal("Pneumonia/Infiltration must be related in the builtin table")
	}
	testutil.AssertEqual(t, rel.Correlation, 0.85, "correlation")
	testutil.AssertEqual(t, rel.Hierarchy, domain.HierarchyChild, "hierarchy")

	if kb.PrevalenceOf("Hernia") != 0.002 {
		t.Errorf("Hernia prevalence = %v, want 0.002", kb.PrevalenceOf("Hernia"))
	}
}

func TestBuiltinValidates(t *testing.T) {
	kb, err := NewBuiltinSource().Load()
	testutil.AssertNoError(t, err, "builtin load")
	testutil.AssertNoError(t, kb.Validate(), "builtin table ranges")
}

func writeKnowledgeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kb.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestYAMLSourceLoads(t *testing.T) {
	path := writeKnowledgeFile(t, `
name: synthetic
relationships:
  Pneumonia:
    Infiltration:
      correlation: 0.85
      hierarchy: child
    Effusion:
      correlation: 0.70
prevalence:
  Pneumonia: 0.013
  Infiltration: 0.177
`)

	kb, err := NewYAMLSource(path).Load()

	testutil.AssertNoError(t, err, "yaml load")
	testutil.AssertEqual(t, kb.Name, "synthetic", "kb name")

	rel, ok := kb.Resolve("Effusion", "Pneumonia")
	if !ok || rel.Correlation != 0.70 {
		t.Errorf("reverse lookup after yaml load failed: %+v ok=%v", rel, ok)
	}
}

func TestYAMLSourceDefaultsNameFromFile(t *testing.T) {
	path := writeKnowledgeFile(t, `
relationships:
  A:
    B:
      correlation: 0.5
`)

	kb, err := NewYAMLSource(path).Load()

	testutil.AssertNoError(t, err, "yaml load")
	testutil.AssertEqual(t, kb.Name, "kb", "name falls back to the file name")
}

func TestYAMLSourceRejectsBadTables(t *testing.T) {
	cases := map[string]string{
		"correlation out of range": `
relationships:
  A:
    B:
      correlation: 1.5
`,
		"unknown hierarchy": `
relationships:
  A:
    B:
      correlation: 0.5
      hierarchy: cousin
`,
		"prevalence out of range": `
prevalence:
  A: -0.2
`,
		"empty document": `{}`,
		"not yaml at all": `:{[`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewYAMLSource(writeKnowledgeFile(t, content)).Load()

			testutil.AssertError(t, err, "load must fail")
			if name != "not yaml at all" && !errors.Is(err, errors.ErrInvalidKnowledge) {
				t.Errorf("expected ErrInvalidKnowledge, got %v", err)
			}
		})
	}
}

func TestYAMLSourceMissingFile(t *testing.T) {
	_, err := NewYAMLSource(filepath.Join(t.TempDir(), "nope.yaml")).Load()

	testutil.AssertError(t, err, "missing file")
}
