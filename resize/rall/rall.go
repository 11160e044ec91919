// Package rall registers every resizer backend.
package rall

import (
	_ "github.com/srlehn/mipmapgen/resize/bild"
	_ "github.com/srlehn/mipmapgen/resize/gift"
	_ "github.com/srlehn/mipmapgen/resize/imaging"
	_ "github.com/srlehn/mipmapgen/resize/nfnt"
	_ "github.com/srlehn/mipmapgen/resize/rez"
	_ "github.com/srlehn/mipmapgen/resize/xdraw"
)
