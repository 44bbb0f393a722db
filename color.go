package aquant

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// FColor is a perceptual color: gamma-corrected, alpha-premultiplied
// floating-point channels in [0, 1], with alpha carried as the fourth
// component. FColor values are produced by ToFColor and compared only
// through distance functions, never for equality.
type FColor struct {
	R, G, B, A float32
}

// ToFColor converts an 8-bit pixel into a perceptual color under the
// given gamma. Each color channel is normalized, gamma-corrected with
// exponent 1/gamma, and premultiplied by the normalized alpha, so a
// fully transparent pixel maps to the zero color regardless of its RGB
// values. A gamma of zero or less is treated as 1.0 (no correction).
// The conversion is pure and deterministic.
func ToFColor(gamma float64, p RGBA8) FColor {
	if gamma <= 0 {
		gamma = 1.0
	}
	inv := 1.0 / gamma
	a := float64(p.A) / 255.0
	return FColor{
		R: float32(math.Pow(float64(p.R)/255.0, inv) * a),
		G: float32(math.Pow(float64(p.G)/255.0, inv) * a),
		B: float32(math.Pow(float64(p.B)/255.0, inv) * a),
		A: float32(a),
	}
}

// DistanceFunc measures how far apart two perceptual colors are. Any
// implementation must be deterministic, symmetric, non-negative, zero
// only for identical colors, and sensitive to alpha difference.
type DistanceFunc func(x, y FColor) float32

// ColorDifference is the default distance metric: squared euclidean
// distance over the four premultiplied components. Because the channels
// are premultiplied, an alpha difference shifts all four terms.
func ColorDifference(x, y FColor) float32 {
	dr := x.R - y.R
	dg := x.G - y.G
	db := x.B - y.B
	da := x.A - y.A
	return dr*dr + dg*dg + db*db + da*da
}

// ColorDistanceMethod selects one of the built-in distance metrics.
type ColorDistanceMethod int

const (
	// MethodLinear is ColorDifference, the default metric used by
	// BestColorIndex and the histogram pipeline.
	MethodLinear ColorDistanceMethod = iota
	// MethodLab measures CIE Lab distance on the straight-alpha color,
	// plus a squared alpha term.
	MethodLab
	// MethodRedmean uses the redmean RGB approximation on the
	// straight-alpha color, plus a squared alpha term.
	MethodRedmean
)

// Distance returns the DistanceFunc for the method. Unknown methods
// fall back to MethodLinear.
func (m ColorDistanceMethod) Distance() DistanceFunc {
	switch m {
	case MethodLab:
		return labDifference
	case MethodRedmean:
		return redmeanDifference
	default:
		return ColorDifference
	}
}

// straight undoes the alpha premultiplication, returning the RGB part
// as straight-alpha float64 channels. A fully transparent color has no
// meaningful hue and maps to black.
func (c FColor) straight() (r, g, b float64) {
	if c.A <= 0 {
		return 0, 0, 0
	}
	return float64(c.R / c.A), float64(c.G / c.A), float64(c.B / c.A)
}

func labDifference(x, y FColor) float32 {
	xr, xg, xb := x.straight()
	yr, yg, yb := y.straight()
	d := colorful.Color{R: xr, G: xg, B: xb}.DistanceLab(colorful.Color{R: yr, G: yg, B: yb})
	da := float64(x.A - y.A)
	return float32(d*d + da*da)
}

func redmeanDifference(x, y FColor) float32 {
	xr, xg, xb := x.straight()
	yr, yg, yb := y.straight()
	rmean := (xr + yr) / 2
	dr := xr - yr
	dg := xg - yg
	db := xb - yb
	da := float64(x.A - y.A)
	return float32((2+rmean)*dr*dr + 4*dg*dg + (3-rmean)*db*db + da*da)
}
