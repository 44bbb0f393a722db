// Package imageutil bridges standard library images into the buffers
// the aquant quantization kernel consumes: row-major RGBA8 pixel
// slices and per-pixel importance maps. Everything here operates on
// in-process image.Image values; decoding and encoding stay with the
// caller.
package imageutil

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/aquant/aquant"
)

// FromImage flattens img into a row-major RGBA8 buffer with straight
// (non-premultiplied) alpha, returning the buffer and its dimensions.
// The source image is not modified.
func FromImage(img image.Image) ([]aquant.RGBA8, int, int) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		converted := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(converted, converted.Bounds(), img, bounds.Min, draw.Src)
		nrgba = converted
	}

	pixels := make([]aquant.RGBA8, w*h)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < w; x++ {
			pixels[y*w+x] = aquant.RGBA8{
				R: row[x*4+0],
				G: row[x*4+1],
				B: row[x*4+2],
				A: row[x*4+3],
			}
		}
	}
	return pixels, w, h
}

// FromImageScaled is FromImage with a size bound: when either dimension
// of img exceeds maxDim the image is first downscaled with Catmull-Rom
// resampling so its longer side equals maxDim. Bounding the pixel count
// keeps histogram building cheap for very large sources without
// changing the color population much. maxDim <= 0 means no bound.
func FromImageScaled(img image.Image, maxDim int) ([]aquant.RGBA8, int, int) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return FromImage(img)
	}

	tw, th := w, h
	if w >= h {
		th = h * maxDim / w
		tw = maxDim
	} else {
		tw = w * maxDim / h
		th = maxDim
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return FromImage(dst)
}
