// Package mipmap derives the Android launcher icons of every density
// bucket from a single square source image.
package mipmap

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/srlehn/mipmapgen/internal/encoder/encpng"
	"github.com/srlehn/mipmapgen/internal/errors"
	"github.com/srlehn/mipmapgen/internal/logx"
	"github.com/srlehn/mipmapgen/internal/mask"
	"github.com/srlehn/mipmapgen/resize"
	"github.com/srlehn/mipmapgen/resize/rdefault"
)

// Generator resizes the source image into every entry of a SizeTable.
// It keeps no state between runs.
type Generator struct {
	resizer   resize.Resizer
	encoder   Encoder
	logger    *slog.Logger
	out       io.Writer
	variants  []Variant
	roundMask bool
}

var _ logx.LoggerProvider = (*Generator)(nil)

// New returns a Generator with the Lanczos default resizer, maximum PNG
// compression, both launcher icon variants and progress output on stdout.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		resizer:  rdefault.New(),
		encoder:  &encpng.PngEncoder{},
		out:      os.Stdout,
		variants: DefaultVariants(),
	}
	if err := g.SetOptions(opts...); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Generator) Logger() *slog.Logger {
	if g == nil {
		return nil
	}
	return g.logger
}

// Artifact is a written icon file.
type Artifact struct {
	Density Density
	Variant Variant
	Path    string
}

// Report lists the files written by a run, also when the run failed.
type Report struct {
	Source     string
	SourceSize image.Point
	Files      []Artifact
}

// Generate decodes the image at sourcePath once and writes every variant for
// every entry of table into <outputBaseDir>/<label>/<variant file>.
//
// No file is written unless the source was decoded. The first failure
// aborts the run, files written before it are left in place.
func (g *Generator) Generate(ctx context.Context, sourcePath, outputBaseDir string, table SizeTable) (*Report, error) {
	if g == nil {
		return nil, errors.NilReceiver(nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	rep := &Report{Source: sourcePath}

	fmt.Fprintf(g.out, "Loading source icon from: %s\n", sourcePath)
	src, err := LoadSource(sourcePath)
	if logx.IsErr(err, g, slog.LevelError, `source`, sourcePath) {
		return rep, err
	}
	rep.SourceSize = src.Size()
	logx.Debug(`source decoded`, g, `source`, sourcePath, `format`, src.Format, `size`, rep.SourceSize)

	for _, d := range table {
		if err := ctx.Err(); err != nil {
			return rep, errors.New(err)
		}
		err := logx.TimeIt(func() error {
			return g.generateDensity(src, outputBaseDir, d, rep)
		}, `density generated`, g, `density`, d.Label, `size`, d.Size)
		if logx.IsErr(err, g, slog.LevelError, `density`, d.Label) {
			return rep, err
		}
	}

	fmt.Fprintln(g.out, "\n[SUCCESS] All Android icons generated successfully!")
	fmt.Fprintln(g.out, "\nNext steps:")
	fmt.Fprintln(g.out, "1. Update colors.xml to use a brand color for ic_launcher_background")
	fmt.Fprintln(g.out, "2. Rebuild your Android app to see the new icons")
	return rep, nil
}

func (g *Generator) generateDensity(src *Source, outputBaseDir string, d Density, rep *Report) error {
	fmt.Fprintf(g.out, "\nGenerating %s icons (%dx%d)...\n", d.Label, d.Size, d.Size)

	dir := filepath.Join(outputBaseDir, d.Label)
	fi, err := os.Stat(dir)
	if err != nil {
		return errors.Kind(ErrDestinationNotFound, err)
	}
	if !fi.IsDir() {
		return errors.Kind(ErrDestinationNotFound, errors.Errorf(`%s is not a directory`, dir))
	}

	for _, v := range g.variants {
		icon, err := g.render(src.Image, d.Size, v)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, v.FileName)
		if err := g.save(path, icon); err != nil {
			return err
		}
		rep.Files = append(rep.Files, Artifact{Density: d, Variant: v, Path: path})
		fmt.Fprintf(g.out, "  [OK] Saved: %s\n", path)
		logx.Info(`icon saved`, g, `path`, path, `variant`, v.Name)
	}
	return nil
}

func (g *Generator) render(img image.Image, size int, v Variant) (image.Image, error) {
	icon, err := g.resizer.Resize(img, image.Point{X: size, Y: size})
	if err != nil {
		return nil, err
	}
	if v.Round && g.roundMask {
		return mask.Circle(icon)
	}
	return icon, nil
}

func (g *Generator) save(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Kind(ErrEncode, err)
	}
	defer func() {
		if errClose := f.Close(); errClose != nil && err == nil {
			err = errors.Kind(ErrEncode, errClose)
		}
	}()
	if err := g.encoder.Encode(f, img, path); err != nil {
		return errors.Kind(ErrEncode, err)
	}
	return nil
}
