// Package field provides the labelled N-dimensional array that the
// recursive filter consumes and produces.
//
// A [Field] carries one dimension coordinate per data dimension, optional
// auxiliary coordinates that vary along a single dimension, and scalar
// coordinates. Data lives in a [sparse.DenseArray].
//
// Filtering works on horizontal (y, x) slices: [Field.Slices] cuts a field
// into ordered 2D slices where every other dimension becomes a scalar
// coordinate, [Merge] stacks processed slices back into one field, and
// [Reconcile] restores the dimension order and metadata of the original.
// [PadHalo] and [UnpadHalo] add and strip an edge halo on a 2D slice,
// extending its horizontal coordinates along with the data.
package field
