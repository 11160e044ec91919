package mipmap

import (
	"bytes"
	"image"
	"os"

	// registered decoders for the source image
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/srlehn/mipmapgen/internal/errors"
)

// Source is the decoded source image. It is never modified.
type Source struct {
	Path   string
	Format string
	Image  image.Image
}

// LoadSource reads and decodes the image file at path.
func LoadSource(path string) (*Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Kind(ErrSourceNotFound, err)
	}
	return DecodeSource(path, b)
}

// DecodeSource decodes already read image bytes, path is informational.
func DecodeSource(path string, b []byte) (*Source, error) {
	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Kind(ErrDecode, err)
	}
	return &Source{Path: path, Format: format, Image: img}, nil
}

// Size returns the pixel dimensions of the source image.
func (s *Source) Size() image.Point {
	if s == nil || s.Image == nil {
		return image.Point{}
	}
	return s.Image.Bounds().Size()
}
