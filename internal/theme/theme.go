package theme

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Ocean Professional palette.
const (
	PrimaryHex    = "#2563EB"
	SecondaryHex  = "#F59E0B"
	BackgroundHex = "#f9fafb"
	SurfaceHex    = "#ffffff"
	TextHex       = "#111827"
)

// Theme is the immutable color record shared by every drawing operation.
// Fields are unexported so a Theme cannot change after construction.
type Theme struct {
	primary    color.NRGBA
	secondary  color.NRGBA
	background color.NRGBA
	surface    color.NRGBA
	text       color.NRGBA
}

type Palette struct {
	Primary    string
	Secondary  string
	Background string
	Surface    string
	Text       string
}

func DefaultPalette() Palette {
	return Palette{
		Primary:    PrimaryHex,
		Secondary:  SecondaryHex,
		Background: BackgroundHex,
		Surface:    SurfaceHex,
		Text:       TextHex,
	}
}

func New(p Palette) (*Theme, error) {
	t := &Theme{}
	targets := []struct {
		name string
		hex  string
		dst  *color.NRGBA
	}{
		{"primary", p.Primary, &t.primary},
		{"secondary", p.Secondary, &t.secondary},
		{"background", p.Background, &t.background},
		{"surface", p.Surface, &t.surface},
		{"text", p.Text, &t.text},
	}

	for _, target := range targets {
		c, err := ParseHex(target.hex)
		if err != nil {
			return nil, fmt.Errorf("theme %s color: %w", target.name, err)
		}
		*target.dst = c
	}

	return t, nil
}

var defaultTheme = MustNew(DefaultPalette())

// Default returns the shared Ocean Professional theme.
func Default() *Theme {
	return defaultTheme
}

func MustNew(p Palette) *Theme {
	t, err := New(p)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseHex converts "#rrggbb" into an opaque color.
func ParseHex(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func MustParseHex(hex string) color.NRGBA {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func (t *Theme) Primary() color.NRGBA    { return t.primary }
func (t *Theme) Secondary() color.NRGBA  { return t.secondary }
func (t *Theme) Background() color.NRGBA { return t.background }
func (t *Theme) Surface() color.NRGBA    { return t.surface }
func (t *Theme) Text() color.NRGBA       { return t.text }
