// internal/core/domain/relationship.go
package domain

// Hierarchy tags the clinical parent/child orientation of a relationship.
// The tag is meaningful relative to the finding whose table entry holds it:
// if A's entry for B says child, then B is the clinical sub-type of A.
type Hierarchy string

const (
	HierarchyNone   Hierarchy = ""
	HierarchyParent Hierarchy = "parent"
	HierarchyChild  Hierarchy = "child"
)

// IsValid reports whether the tag is one of the known values.
func (h Hierarchy) IsValid() bool {
	switch h {
	case HierarchyNone, HierarchyParent, HierarchyChild:
		return true
	}
	return false
}

// Relationship describes the known clinical co-occurrence between two
// finding types: a correlation strength and an optional hierarchy tag.
type Relationship struct {
	// Correlation strength of clinical co-occurrence [0.0-1.0]
	Correlation float64 `json:"correlation" yaml:"correlation"`

	// Hierarchy optional parent/child tag, orientation-dependent
	Hierarchy Hierarchy `json:"hierarchy,omitempty" yaml:"hierarchy,omitempty"`
}
