package aquant

import (
	"errors"
	"fmt"
)

// hashSize is the fixed bucket count of the color hash table. A prime
// width keeps the modulo spread even for the clustered packed-color
// values typical of photographic images.
const hashSize = 30029

// boostBase is the constant part of the per-pixel weight boost when an
// importance map is supplied: boost = boostBase + importance. With
// importance in [0, 1] the boost ranges over [0.5, 1.5].
const boostBase = 0.5

// ErrTooManyColors is returned by BuildHistogram when the image holds
// more distinct posterized colors than maxColors. The usual recovery is
// to retry with a larger ignoreBits so more colors collapse together.
var ErrTooManyColors = errors.New("aquant: distinct posterized colors exceed maximum")

// hashNode is one link of a bucket chain: a posterized color key and
// its accumulated weight. Nodes live in the arena and are never freed
// individually.
type hashNode struct {
	color  PackedColor
	weight float32
	next   *hashNode
}

// colorHash maps posterized packed colors to accumulated weights,
// chaining on collision. It exists only inside one BuildHistogram call.
type colorHash struct {
	buckets []*hashNode
	pool    arena
}

func newColorHash() *colorHash {
	return &colorHash{buckets: make([]*hashNode, hashSize)}
}

// HistogramEntry is one distinct posterized color of the source image
// together with its accumulated weight. AdjustedWeight starts equal to
// PerceptualWeight and is reserved for the palette-construction stage
// to rewrite; this package never touches it after creation.
type HistogramEntry struct {
	Color            FColor
	PerceptualWeight float32
	AdjustedWeight   float32
}

// Histogram is the flattened result of a histogram build. The entry
// order is an artifact of internal bucket iteration with no semantic
// meaning, but it is deterministic for a given input, so repeated
// builds of the same image reproduce the same output. A Histogram is
// immutable once returned, aside from the AdjustedWeight fields.
type Histogram struct {
	Entries []HistogramEntry
}

// BuildHistogram scans a row-major pixel buffer and returns a weighted
// histogram of its distinct posterized colors.
//
// Each pixel is posterized by dropping ignoreBits low bits per channel,
// then accumulated under its packed color key. Without an importance
// map every pixel contributes a weight of 1; with one, pixel i
// contributes boostBase + importance[i]. Entry colors are converted to
// perceptual space with the supplied gamma.
//
// If the image holds more than maxColors distinct posterized colors the
// build aborts immediately and returns ErrTooManyColors; no partial
// histogram is ever returned. All intermediate state is released before
// BuildHistogram returns, on every path.
func BuildHistogram(pixels []RGBA8, width, height int, gamma float64, maxColors, ignoreBits int, importance []float32) (*Histogram, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("aquant: invalid image dimensions %dx%d", width, height)
	}
	if len(pixels) < width*height {
		return nil, fmt.Errorf("aquant: pixel buffer holds %d pixels, image needs %d", len(pixels), width*height)
	}
	if maxColors <= 0 {
		return nil, fmt.Errorf("aquant: maxColors must be positive, got %d", maxColors)
	}
	if ignoreBits < 0 || ignoreBits > 8 {
		return nil, fmt.Errorf("aquant: ignoreBits must be in [0, 8], got %d", ignoreBits)
	}
	if importance != nil && len(importance) < width*height {
		return nil, fmt.Errorf("aquant: importance map holds %d values, image needs %d", len(importance), width*height)
	}

	table := newColorHash()
	defer table.pool.Release()

	mask := posterizeMask(ignoreBits)
	colors := 0
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			boost := float32(1.0)
			if importance != nil {
				boost = boostBase + importance[i]
			}
			key := pixels[i].Packed() & mask
			i++

			slot := uint32(key) % hashSize
			node := table.buckets[slot]
			for node != nil && node.color != key {
				node = node.next
			}
			if node != nil {
				node.weight += boost
				continue
			}

			colors++
			if colors > maxColors {
				return nil, ErrTooManyColors
			}
			node = table.pool.newNode()
			node.color = key
			node.weight = boost
			node.next = table.buckets[slot]
			table.buckets[slot] = node
		}
	}

	// Flatten in bucket index order, chains head to tail. This is what
	// makes the entry order deterministic.
	entries := make([]HistogramEntry, 0, colors)
	for _, head := range table.buckets {
		for node := head; node != nil; node = node.next {
			entries = append(entries, HistogramEntry{
				Color:            ToFColor(gamma, node.color.RGBA8()),
				PerceptualWeight: node.weight,
				AdjustedWeight:   node.weight,
			})
		}
	}
	return &Histogram{Entries: entries}, nil
}

// Len reports the number of distinct colors in the histogram.
func (h *Histogram) Len() int {
	return len(h.Entries)
}

// TotalWeight sums the perceptual weights of all entries. Without an
// importance map this equals the pixel count of the source image.
func (h *Histogram) TotalWeight() float64 {
	var sum float64
	for _, e := range h.Entries {
		sum += float64(e.PerceptualWeight)
	}
	return sum
}
