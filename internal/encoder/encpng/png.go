package encpng

import (
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/srlehn/mipmapgen/internal"
	"github.com/srlehn/mipmapgen/internal/consts"
	"github.com/srlehn/mipmapgen/internal/errors"
)

var _ internal.ImageEncoder = (*PngEncoder)(nil)

// PngEncoder writes PNG files. The zero value compresses as hard as
// image/png allows.
type PngEncoder struct {
	CompressionLevel png.CompressionLevel
}

func (e *PngEncoder) Encode(w io.Writer, img image.Image, fileName string) error {
	if w == nil || img == nil {
		return errors.New(consts.ErrNilParam)
	}
	// whole file name or bare extension
	ext := filepath.Ext(fileName)
	if len(ext) == 0 {
		ext = `.` + fileName
	}
	if strings.ToLower(ext) != consts.FileExtPNG {
		return errors.Errorf(`unsupported file format: %q`, fileName)
	}
	lvl := png.BestCompression
	if e != nil && e.CompressionLevel != png.DefaultCompression {
		lvl = e.CompressionLevel
	}
	enc := &png.Encoder{CompressionLevel: lvl}
	if err := enc.Encode(w, img); err != nil {
		return errors.New(err)
	}
	return nil
}
