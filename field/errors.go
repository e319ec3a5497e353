package field

import "errors"

var (
	// ErrInvalidField is returned when coordinates do not describe the data.
	ErrInvalidField = errors.New("field: invalid field")
	// ErrAxisNotFound is returned when no dimension has the requested axis.
	ErrAxisNotFound = errors.New("field: axis not found")
	// ErrAxisAmbiguous is returned when several dimensions share an axis.
	ErrAxisAmbiguous = errors.New("field: axis is ambiguous")
	// ErrNotHorizontal is returned when a 2D (y, x) field is required.
	ErrNotHorizontal = errors.New("field: not a 2D (y, x) field")
	// ErrMerge is returned when slices cannot be stacked into one field.
	ErrMerge = errors.New("field: cannot merge slices")
	// ErrReconcile is returned when a result cannot be matched to the
	// original field's coordinates.
	ErrReconcile = errors.New("field: cannot reconcile coordinates")
)
