package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/mipmapgen/resize"
)

const Name = `gift`

func init() { resize.Register(Name, &Resizer{}) }

// Resizer uses "github.com/disintegration/gift"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	g := gift.New(gift.Resize(size.X, size.Y, gift.LanczosResampling))
	m := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(m, img)
	return m, nil
}
