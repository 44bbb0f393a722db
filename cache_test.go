package aquant

import (
	"errors"
	"testing"
)

func testPalette() *Palette {
	p := NewPalette(4)
	p.Entries[0] = FColor{A: 1}
	p.Entries[1] = FColor{R: 1, A: 1}
	p.Entries[2] = FColor{G: 1, A: 1}
	p.Entries[3] = FColor{R: 1, G: 1, B: 1, A: 1}
	return p
}

func TestMatchCacheAgreesWithDirectLookup(t *testing.T) {
	p := testPalette()
	cache := NewMatchCache(p, 2.2, 0.9, nil)

	pixels := []RGBA8{
		{R: 250, G: 5, B: 5, A: 255},
		{R: 5, G: 250, B: 5, A: 255},
		{R: 240, G: 240, B: 240, A: 255},
		{R: 10, G: 10, B: 10, A: 255},
	}
	for _, px := range pixels {
		gotIndex, gotDist, err := cache.BestColorIndex(px)
		if err != nil {
			t.Fatalf("cache lookup failed: %v", err)
		}
		wantIndex, wantDist, err := BestColorIndex(ToFColor(2.2, px), p, 0.9)
		if err != nil {
			t.Fatalf("direct lookup failed: %v", err)
		}
		if gotIndex != wantIndex || gotDist != wantDist {
			t.Errorf("pixel %+v: cache (%d, %v) != direct (%d, %v)",
				px, gotIndex, gotDist, wantIndex, wantDist)
		}
	}
}

func TestMatchCacheCountsHitsAndMisses(t *testing.T) {
	cache := NewMatchCache(testPalette(), 2.2, 0.9, nil)
	px := RGBA8{R: 200, G: 30, B: 30, A: 255}

	first, _, err := cache.BestColorIndex(px)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if cache.Hits != 0 || cache.Misses != 1 {
		t.Errorf("after first lookup: hits=%d misses=%d", cache.Hits, cache.Misses)
	}

	for i := 0; i < 5; i++ {
		index, _, err := cache.BestColorIndex(px)
		if err != nil {
			t.Fatalf("repeat lookup failed: %v", err)
		}
		if index != first {
			t.Errorf("repeat lookup changed result: %d != %d", index, first)
		}
	}
	if cache.Hits != 5 || cache.Misses != 1 {
		t.Errorf("after repeats: hits=%d misses=%d", cache.Hits, cache.Misses)
	}
	if cache.Len() != 1 {
		t.Errorf("cache holds %d entries, want 1", cache.Len())
	}
}

func TestMatchCacheEmptyPalette(t *testing.T) {
	cache := NewMatchCache(NewPalette(0), 2.2, 0.9, nil)
	if _, _, err := cache.BestColorIndex(RGBA8{A: 255}); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("expected ErrEmptyPalette, got %v", err)
	}
	if cache.Len() != 0 {
		t.Error("failed lookup must not populate the cache")
	}
}
