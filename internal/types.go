package internal

import (
	"image"
	"io"
)

// ImageEncoder writes img to w in the format named by the extension of fileName.
type ImageEncoder interface {
	Encode(w io.Writer, img image.Image, fileName string) error
}
