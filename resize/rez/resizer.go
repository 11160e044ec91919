package rez

import (
	"image"
	"image/draw"

	"github.com/bamiaux/rez"

	"github.com/srlehn/mipmapgen/resize"
	"github.com/srlehn/mipmapgen/resize/xdraw"
)

const Name = `rez`

// lanczos kernel radius
const taps = 3

func init() { resize.Register(Name, &Resizer{}) }

// Resizer uses "github.com/bamiaux/rez"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	// rez only converts between images of the same type
	src, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		src = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)
	}
	m := image.NewRGBA(image.Rectangle{Max: size})
	if err := rez.Convert(m, src, rez.NewLanczosFilter(taps)); err != nil {
		// rez refuses images below its kernel size (e.g. 1x1)
		return xdraw.CatmullRom().Resize(img, size)
	}
	return m, nil
}
