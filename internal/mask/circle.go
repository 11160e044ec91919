// Package mask cuts launcher icons into their round silhouette.
package mask

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/srlehn/mipmapgen/internal/consts"
	"github.com/srlehn/mipmapgen/internal/errors"
)

// Circle returns a copy of img clipped to the circle inscribed into its
// bounds. Pixels outside of the circle are fully transparent.
func Circle(img image.Image) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, errors.New(`empty image`)
	}
	r := float64(min(w, h)) / 2
	dc := gg.NewContext(w, h)
	dc.DrawCircle(float64(w)/2, float64(h)/2, r)
	dc.Clip()
	dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	return dc.Image(), nil
}
