// Package resize holds the Resizer interface and a name registry of
// resampling backends. Backends live in the sub-packages and register
// themselves on import, resize/rall imports all of them.
package resize

import (
	"image"
	"sort"
	"sync"

	"github.com/srlehn/mipmapgen/internal/consts"
	"github.com/srlehn/mipmapgen/internal/errors"
)

// Resizer scales img to exactly size.X × size.Y pixels.
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

// Func adapts a plain function to the Resizer interface.
type Func func(img image.Image, size image.Point) (image.Image, error)

var _ Resizer = (Func)(nil)

func (f Func) Resize(img image.Image, size image.Point) (image.Image, error) { return f(img, size) }

// Check validates the common preconditions of all backends.
func Check(img image.Image, size image.Point) error {
	if img == nil {
		return errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		return errors.Errorf(`%w: %dx%d`, consts.ErrBadSize, size.X, size.Y)
	}
	return nil
}

var (
	registeredMu sync.RWMutex
	registered   = make(map[string]Resizer)
)

// Register makes a resizer available by name. Later registrations replace earlier ones.
func Register(name string, rsz Resizer) {
	if len(name) == 0 || rsz == nil {
		return
	}
	registeredMu.Lock()
	defer registeredMu.Unlock()
	registered[name] = rsz
}

// Get returns the resizer registered under name.
func Get(name string) (Resizer, error) {
	registeredMu.RLock()
	defer registeredMu.RUnlock()
	rsz, ok := registered[name]
	if !ok || rsz == nil {
		return nil, errors.Errorf(`unknown resizer %q`, name)
	}
	return rsz, nil
}

// Names lists the registered resizers in lexical order.
func Names() []string {
	registeredMu.RLock()
	defer registeredMu.RUnlock()
	names := make([]string, 0, len(registered))
	for name := range registered {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
