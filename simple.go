// Package mipmapgen generates the Android launcher icons of a React Native
// project from its 1024×1024 iOS app icon.
//
// The mipmap package holds the generator, this package only wires the defaults:
//
//	err := mipmapgen.Generate(ctx)
package mipmapgen

import (
	"context"

	"github.com/srlehn/mipmapgen/mipmap"
	"github.com/srlehn/mipmapgen/resize"
	"github.com/srlehn/mipmapgen/resize/rdefault"
)

var (
	// chosen defaults
	sourcePath                = mipmap.DefaultSourcePath
	resDir                    = mipmap.DefaultResDir
	resizer    resize.Resizer = rdefault.New()
)

// DefaultConfig ...
var DefaultConfig = mipmap.Options{
	mipmap.SetResizer(resizer),
	mipmap.SetVariants(mipmap.DefaultVariants()...),
}

// Generate writes the icons of all default densities from the default
// source path into the default res directory, relative to the working directory.
func Generate(ctx context.Context) error {
	_, err := GenerateFrom(ctx, sourcePath, resDir)
	return err
}

// GenerateFrom is Generate with explicit paths.
func GenerateFrom(ctx context.Context, source, outputBaseDir string, opts ...mipmap.Option) (*mipmap.Report, error) {
	g, err := mipmap.New(append([]mipmap.Option{DefaultConfig}, opts...)...)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, source, outputBaseDir, mipmap.DefaultSizeTable())
}
