package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	rsz "github.com/srlehn/mipmapgen/resize"
)

const Name = `nfnt`

func init() { rsz.Register(Name, &Resizer{}) }

// Resizer uses "github.com/nfnt/resize"
type Resizer struct{}

var _ rsz.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := rsz.Check(img, size); err != nil {
		return nil, err
	}
	return resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3), nil
}
