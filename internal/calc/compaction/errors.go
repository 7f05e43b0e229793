package compaction

import "errors"

// Validation error kinds. Handlers match these with errors.Is to tell the UI
// which input group to flag.
var (
	ErrInvalidDensity  = errors.New("invalid density")
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrInvalidMaterial = errors.New("invalid material")
)
