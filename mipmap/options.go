package mipmap

import (
	"io"
	"log/slog"

	"github.com/srlehn/mipmapgen/internal"
	"github.com/srlehn/mipmapgen/internal/errors"
	"github.com/srlehn/mipmapgen/resize"
)

// Encoder writes the resized icons.
type Encoder = internal.ImageEncoder

type Option interface {
	ApplyOption(g *Generator) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Generator) error

func (o OptFunc) ApplyOption(g *Generator) error { return o(g) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(g *Generator) error { return g.SetOptions([]Option(o)...) }

func (g *Generator) SetOptions(opts ...Option) error {
	if g == nil {
		return errors.NilReceiver(nil)
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(g); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

func SetResizer(rsz resize.Resizer) Option {
	return OptFunc(func(g *Generator) error {
		if rsz == nil {
			return errors.NilParam(nil)
		}
		g.resizer = rsz
		return nil
	})
}

func SetEncoder(enc Encoder) Option {
	return OptFunc(func(g *Generator) error {
		if enc == nil {
			return errors.NilParam(nil)
		}
		g.encoder = enc
		return nil
	})
}

// SetLogger sets the structured logger, nil disables logging.
func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(g *Generator) error { g.logger = logger; return nil })
}

// SetOutput sets the writer for the human readable progress lines, nil discards them.
func SetOutput(w io.Writer) Option {
	return OptFunc(func(g *Generator) error {
		if w == nil {
			w = io.Discard
		}
		g.out = w
		return nil
	})
}

func SetVariants(variants ...Variant) Option {
	return OptFunc(func(g *Generator) error {
		if len(variants) == 0 {
			return errors.New(`no icon variants`)
		}
		seen := make(map[string]struct{}, len(variants))
		for _, v := range variants {
			if len(v.FileName) == 0 {
				return errors.Errorf(`variant %q without file name`, v.Name)
			}
			if _, ok := seen[v.FileName]; ok {
				return errors.Errorf(`duplicate variant file %q`, v.FileName)
			}
			seen[v.FileName] = struct{}{}
		}
		g.variants = append([]Variant(nil), variants...)
		return nil
	})
}

// SetRoundMask clips round variants to a circle. Without it the round icon
// equals the regular one, which is only correct for already circular sources.
func SetRoundMask(enable bool) Option {
	return OptFunc(func(g *Generator) error { g.roundMask = enable; return nil })
}
