package aquant

// RGBA8 is one source pixel: four 8-bit channels, alpha not
// premultiplied. Pixel buffers handed to BuildHistogram are read-only
// as far as this package is concerned.
type RGBA8 struct {
	R, G, B, A uint8
}

// PackedColor is an RGBA8 folded into a single 32-bit integer. It is
// used purely as a hash and equality key: two pixels compare equal iff
// their packed values match after posterization. The channel order
// within the word is an internal detail and carries no meaning beyond
// determinism.
type PackedColor uint32

// Packed folds the four channels of p into a PackedColor.
func (p RGBA8) Packed() PackedColor {
	return PackedColor(uint32(p.A)<<24 | uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B))
}

// RGBA8 unpacks c back into its four channels.
func (c PackedColor) RGBA8() RGBA8 {
	return RGBA8{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}

// posterizeMask returns the mask that keeps the top (8 - ignoreBits)
// bits of every channel. ANDing a PackedColor with it reduces color
// precision so that pixels differing only in the dropped low bits
// collapse to one key. ignoreBits outside [0, 8] is clamped.
func posterizeMask(ignoreBits int) PackedColor {
	if ignoreBits < 0 {
		ignoreBits = 0
	}
	if ignoreBits > 8 {
		ignoreBits = 8
	}
	channel := uint32(255) >> ignoreBits << ignoreBits
	return PackedColor(channel<<24 | channel<<16 | channel<<8 | channel)
}

// Posterize masks off the low ignoreBits bits of every channel of c.
func (c PackedColor) Posterize(ignoreBits int) PackedColor {
	return c & posterizeMask(ignoreBits)
}
