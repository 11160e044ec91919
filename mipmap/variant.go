package mipmap

// Variant is one of the launcher icon files written per density.
type Variant struct {
	Name     string
	FileName string
	// Round variants are clipped to a circle when the round mask is enabled.
	Round bool
}

var (
	Regular      = Variant{Name: `regular`, FileName: `ic_launcher.png`}
	RoundVariant = Variant{Name: `round`, FileName: `ic_launcher_round.png`, Round: true}
)

// DefaultVariants ...
func DefaultVariants() []Variant { return []Variant{Regular, RoundVariant} }
