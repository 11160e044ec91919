// Package xdraw provides a resizer implementation using golang.org/x/image/draw.
// x/image/draw has no Lanczos kernel, CatmullRom is the closest in quality.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/mipmapgen/resize"
)

const Name = `xdraw`

func init() { resize.Register(Name, CatmullRom()) }

// resizer uses "golang.org/x/image/draw"
type resizer struct {
	scaler draw.Scaler
}

var _ resize.Resizer = (*resizer)(nil)

// BiLinear creates a new resizer with BiLinear scaling.
func BiLinear() resize.Resizer {
	return &resizer{scaler: draw.BiLinear}
}

// CatmullRom creates a new resizer with CatmullRom scaling (highest quality, slowest).
func CatmullRom() resize.Resizer {
	return &resizer{scaler: draw.CatmullRom}
}

// Resize scales an image to the target size using the configured scaler.
func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
