// Package rdefault provides the resizer used when none is configured.
package rdefault

import (
	"github.com/srlehn/mipmapgen/resize"
	"github.com/srlehn/mipmapgen/resize/imaging"
)

// New returns the default Lanczos resizer.
func New() resize.Resizer { return &imaging.Resizer{} }
