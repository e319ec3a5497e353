// Package grid provides the two-dimensional float64 grid used by the
// recursive filter.
//
// A [Grid] stores its cells row-major and is indexed [row, col], which
// corresponds to the (y, x) axes of a horizontal field slice. Rows are
// exposed as slice views so block kernels can work on them directly.
// [Pool] recycles grids between slices of a multi-dimensional field.
package grid
