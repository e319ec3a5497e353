// Package halo pads grids and coordinate axes with a border of extra cells
// and removes it again.
//
// A halo keeps the recursive sweeps from treating the true grid edge as a
// hard boundary: the sweeps seed from halo cells, and the halo is trimmed
// after filtering. [Pad] grows a grid by the requested width on every
// horizontal edge and [Unpad] exactly inverts the shape change. What values
// fill the halo is decided by a [Policy]; the default [PolicyMean] fills
// each halo cell with the mean of the width nearest interior cells along
// the padded axis.
package halo
