// internal/adapters/knowledge/yaml.go
package knowledge

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"clinicor/internal/core/domain"
	"clinicor/internal/platform/errors"
)

// YAMLSource loads a knowledge base from a YAML document, so deployments
// and tests can substitute their own correlation/prevalence tables
// without recompiling. Expected shape:
//
//	name: my-tables
//	relationships:
//	  Pneumonia:
//	    Infiltration:
//	      correlation: 0.85
//	      hierarchy: child
//	prevalence:
//	  Pneumonia: 0.013
type YAMLSource struct {
	path string
}

// NewYAMLSource creates a source reading from the given file.
func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{path: path}
}

// Name returns the source name.
func (s *YAMLSource) Name() string {
	return "yaml"
}

// Load parses and validates the document.
func (s *YAMLSource) Load() (*domain.KnowledgeBase, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading knowledge file %s", s.path)
	}

	var kb domain.KnowledgeBase
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidKnowledge, err.Error())
	}

	if len(kb.Relationships) == 0 && len(kb.Prevalence) == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidKnowledge, "%s defines no tables", s.path)
	}

	if err := kb.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidKnowledge, err.Error())
	}

	if kb.Name == "" {
		base := filepath.Base(s.path)
		kb.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return &kb, nil
}
