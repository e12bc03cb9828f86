// internal/core/domain/errors.go
package domain

import "errors"

// Common domain errors.
var (
	// Finding errors
	ErrEmptyFindingName = errors.New("finding name cannot be empty")
	ErrConfidenceRange  = errors.New("confidence outside [0,1]")
	ErrAnnotatedOnInput = errors.New("input finding carries derived fields")

	// Knowledge base errors
	ErrInvalidTable = errors.New("invalid knowledge table")
	ErrMissingTable = errors.New("knowledge base has no tables")
)
