package consts

import (
	"errors"
)

var (
	ErrNilParam = errors.New(`nil parameter`)
	ErrNilImage = errors.New(`nil image`)
	ErrBadSize  = errors.New(`target size must be positive`)
)

const (
	LibraryName = `mipmapgen`

	ResizerDefaultName = `imaging`

	FileExtPNG = `.png`
)
