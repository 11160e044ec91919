package mipmap

import (
	"strings"

	"github.com/srlehn/mipmapgen/internal/errors"
)

const (
	// DefaultSourcePath is the 1024×1024 iOS app icon the Android icons are derived from.
	DefaultSourcePath = `ios/frontend/Images.xcassets/AppIcon.appiconset/icon-1024@1x.png`
	// DefaultResDir holds one pre-existing sub-directory per density.
	DefaultResDir = `android/app/src/main/res`
)

// Density is an Android density bucket and the side length of its square launcher icon.
type Density struct {
	Label string `yaml:"label"`
	Size  int    `yaml:"size"`
}

// SizeTable is processed in order. Entries are independent of each other
// but the order decides which files already exist when a run fails.
type SizeTable []Density

// DefaultSizeTable returns the launcher icon sizes of the five mipmap densities.
func DefaultSizeTable() SizeTable {
	return SizeTable{
		{Label: `mipmap-mdpi`, Size: 48},
		{Label: `mipmap-hdpi`, Size: 72},
		{Label: `mipmap-xhdpi`, Size: 96},
		{Label: `mipmap-xxhdpi`, Size: 144},
		{Label: `mipmap-xxxhdpi`, Size: 192},
	}
}

// Validate rejects empty tables, unusable labels and non-positive sizes.
func (t SizeTable) Validate() error {
	if len(t) == 0 {
		return errors.New(`empty size table`)
	}
	seen := make(map[string]struct{}, len(t))
	for _, d := range t {
		switch {
		case len(d.Label) == 0:
			return errors.New(`density without label`)
		case d.Label == `.` || d.Label == `..` || strings.ContainsAny(d.Label, `/\`):
			return errors.Errorf(`density label %q is not a directory name`, d.Label)
		case d.Size <= 0:
			return errors.Errorf(`density %q: size %d is not positive`, d.Label, d.Size)
		}
		if _, ok := seen[d.Label]; ok {
			return errors.Errorf(`duplicate density %q`, d.Label)
		}
		seen[d.Label] = struct{}{}
	}
	return nil
}

// Lookup returns the size of the density labeled label.
func (t SizeTable) Lookup(label string) (int, bool) {
	for _, d := range t {
		if d.Label == label {
			return d.Size, true
		}
	}
	return 0, false
}
