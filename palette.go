package aquant

import "errors"

// matchEpsilon is the distance margin a partially transparent palette
// entry must win by before it may displace the incumbent for an
// opaque-biased query. Empirically chosen; kept exact for behavioral
// compatibility with existing remapped output.
const matchEpsilon = 1.0 / 1024.0

// ErrEmptyPalette is returned when a palette with no entries is given
// to the nearest-color matcher.
var ErrEmptyPalette = errors.New("aquant: palette has no entries")

// Palette is a fixed-length ordered sequence of perceptual colors
// forming an output palette. Its length is fixed at creation; entries
// start zero-valued and are filled in place by the palette-construction
// stage. This package only reads the entries during matching.
type Palette struct {
	Entries []FColor
}

// NewPalette returns a palette with size zero-valued entries. A size of
// zero or less yields an empty palette, which the matcher rejects.
func NewPalette(size int) *Palette {
	if size < 0 {
		size = 0
	}
	return &Palette{Entries: make([]FColor, size)}
}

// Len reports the number of palette entries.
func (p *Palette) Len() int {
	return len(p.Entries)
}

// BestColorIndex finds the palette entry nearest to query under the
// default metric, with a bias against partially transparent entries for
// queries meant to render opaque. See BestColorIndexFunc.
func BestColorIndex(query FColor, p *Palette, minOpaqueAlpha float32) (int, float32, error) {
	return BestColorIndexFunc(query, p, minOpaqueAlpha, ColorDifference)
}

// BestColorIndexFunc scans the palette linearly for the entry nearest
// to query under dist, returning its index and distance. Entry 0 is the
// initial best; a later candidate displaces the incumbent only when its
// distance is strictly smaller.
//
// When the query's alpha exceeds minOpaqueAlpha the pixel is meant to
// render opaque, and a candidate that is not fully opaque must beat the
// incumbent by more than a fixed 1/1024 margin. Picking a marginally nearer
// transparent entry for such pixels punches visible holes into solid
// regions under renderers with alpha-compositing quirks; a genuinely
// much closer transparent entry still wins. The bias is evaluated only
// against the current best, so among equal distances the lowest index
// wins.
//
// An empty or nil palette returns ErrEmptyPalette. A nil dist uses the
// default metric.
func BestColorIndexFunc(query FColor, p *Palette, minOpaqueAlpha float32, dist DistanceFunc) (int, float32, error) {
	if p == nil || len(p.Entries) == 0 {
		return 0, 0, ErrEmptyPalette
	}
	if dist == nil {
		dist = ColorDifference
	}

	opaqueBiased := query.A > minOpaqueAlpha
	best := 0
	bestDist := dist(query, p.Entries[0])
	for i := 1; i < len(p.Entries); i++ {
		d := dist(query, p.Entries[i])
		if d >= bestDist {
			continue
		}
		if opaqueBiased && p.Entries[i].A < 1 && d+matchEpsilon > bestDist {
			continue
		}
		best = i
		bestDist = d
	}
	return best, bestDist, nil
}
