package aquant

// MatchCache memoizes nearest-color lookups against one fixed palette
// and opacity threshold. Remapping stages query the same handful of
// colors over and over (neighboring pixels repeat, posterization
// collapses near-duplicates), so an exact cache keyed by the packed
// source pixel skips most of the linear scans.
//
// A MatchCache is not safe for concurrent use; give each goroutine its
// own, the same way each histogram build owns its own arena. The cache
// must be discarded if the palette entries are rewritten.
type MatchCache struct {
	palette        *Palette
	gamma          float64
	minOpaqueAlpha float32
	dist           DistanceFunc
	entries        map[PackedColor]cachedMatch

	// Hits and Misses count lookups served from the cache versus full
	// palette scans, for callers that want to inspect cache behavior.
	Hits   int
	Misses int
}

type cachedMatch struct {
	index    int
	distance float32
}

// NewMatchCache returns a cache bound to the given palette, conversion
// gamma, and opacity threshold. A nil dist uses the default metric.
func NewMatchCache(p *Palette, gamma float64, minOpaqueAlpha float32, dist DistanceFunc) *MatchCache {
	if dist == nil {
		dist = ColorDifference
	}
	return &MatchCache{
		palette:        p,
		gamma:          gamma,
		minOpaqueAlpha: minOpaqueAlpha,
		dist:           dist,
		entries:        make(map[PackedColor]cachedMatch),
	}
}

// BestColorIndex resolves the nearest palette entry for the source
// pixel px, converting it through the cache's gamma and serving repeat
// queries from memory.
func (c *MatchCache) BestColorIndex(px RGBA8) (int, float32, error) {
	key := px.Packed()
	if m, ok := c.entries[key]; ok {
		c.Hits++
		return m.index, m.distance, nil
	}
	index, distance, err := BestColorIndexFunc(ToFColor(c.gamma, px), c.palette, c.minOpaqueAlpha, c.dist)
	if err != nil {
		return 0, 0, err
	}
	c.Misses++
	c.entries[key] = cachedMatch{index: index, distance: distance}
	return index, distance, nil
}

// Len reports how many distinct packed colors the cache holds.
func (c *MatchCache) Len() int {
	return len(c.entries)
}
