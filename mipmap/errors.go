package mipmap

import "errors"

// Error kinds, match with errors.Is.
var (
	ErrSourceNotFound      = errors.New(`source image not readable`)
	ErrDestinationNotFound = errors.New(`destination directory not found`)
	ErrDecode              = errors.New(`source image not decodable`)
	ErrEncode              = errors.New(`icon not saved`)
)
