// Package aquant implements the core of an alpha-aware color
// quantization pipeline: building a weighted histogram of the distinct
// colors in a true-color image, and finding the nearest entry in a
// finished palette for an arbitrary color.
//
// The histogram builder posterizes pixels down to a bounded color
// cardinality, accumulates per-pixel weights (optionally steered by an
// importance map) in a chained hash table backed by a bump arena, and
// flattens the result into an ordered Histogram. How the output palette
// is chosen from that histogram is up to the caller; aquant only
// consumes the finished Palette again during nearest-color matching.
//
// Matching is a linear scan biased against partially transparent
// palette entries when the query color is meant to render opaque, so
// solid regions do not pick up transparent holes under renderers with
// alpha-compositing quirks.
//
// The imageutil subpackage bridges standard library images into the
// pixel buffers and importance maps this package consumes.
package aquant
