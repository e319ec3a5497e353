package halo

import "errors"

var (
	// ErrNegativeWidth is returned for halo widths below zero.
	ErrNegativeWidth = errors.New("halo: width must be >= 0")
	// ErrEmptyGrid is returned when padding an axis that has no cells.
	ErrEmptyGrid = errors.New("halo: cannot pad an empty axis")
	// ErrHaloTooWide is returned when a grid is too small to remove the halo.
	ErrHaloTooWide = errors.New("halo: grid is smaller than the halo")
	// ErrInvalidPolicy is returned for unknown padding policies.
	ErrInvalidPolicy = errors.New("halo: invalid padding policy")
)
