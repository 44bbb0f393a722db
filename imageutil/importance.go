package imageutil

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/gift"
)

// edgeBlurRadius controls how far edge weight bleeds into the flat
// regions next to an edge. Without the blur only the one-pixel edge
// line itself would be boosted.
const edgeBlurRadius = 2.0

// EdgeImportance derives a per-pixel importance map from img: Sobel
// edge magnitude, Gaussian-smoothed, normalized to [0, 1]. Pixels near
// strong edges get importance close to 1, flat regions close to 0, so
// histogram weights favor the colors that define visible structure. A
// uniform image yields an all-zero map.
//
// The returned slice is row-major with length width*height, matching
// what BuildHistogram expects for the same image.
func EdgeImportance(img image.Image) []float32 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	edges := image.NewRGBA(image.Rect(0, 0, w, h))
	g := gift.New(gift.Grayscale(), gift.Sobel())
	g.Draw(edges, img)

	smoothed := blur.Gaussian(edges, edgeBlurRadius)

	// Grayscale input means R carries the magnitude.
	importance := make([]float32, w*h)
	maxMag := uint8(0)
	for y := 0; y < h; y++ {
		row := smoothed.Pix[y*smoothed.Stride : y*smoothed.Stride+w*4]
		for x := 0; x < w; x++ {
			mag := row[x*4]
			importance[y*w+x] = float32(mag)
			if mag > maxMag {
				maxMag = mag
			}
		}
	}
	if maxMag == 0 {
		return importance
	}
	for i := range importance {
		importance[i] /= float32(maxMag)
	}
	return importance
}

// FlatImportance returns a constant importance map of the given value,
// clamped to [0, 1], for callers that want a uniform histogram boost
// other than the no-map default.
func FlatImportance(width, height int, value float32) []float32 {
	if width <= 0 || height <= 0 {
		return nil
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	importance := make([]float32, width*height)
	for i := range importance {
		importance[i] = value
	}
	return importance
}
