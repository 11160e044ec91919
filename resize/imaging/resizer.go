package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/mipmapgen/resize"
)

const Name = `imaging`

func init() { resize.Register(Name, &Resizer{}) }

// Resizer uses "github.com/disintegration/imaging"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	return imaging.Resize(img, size.X, size.Y, imaging.Lanczos), nil
}
