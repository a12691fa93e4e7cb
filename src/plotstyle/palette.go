package plotstyle

import (
	"fmt"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palette selects one of the fixed named color schemes. Each palette is an
// ordered sequence of colors assigned cyclically to successive series.
type Palette int

const (
	// Sete is the default scheme: teal, magenta, orange, yellow, purple, blue, brown.
	Sete Palette = iota
	Nilou
	HuTao
	Raiden
	N
)

// paletteHex holds the color tables, index-aligned with the Palette constants.
var paletteHex = [...][]string{
	Sete:   {"1fa89d", "e72d5c", "ff7800", "fabb0b", "9832c3", "4a57a4", "a77c4f"},
	Nilou:  {"15365e", "76a1b9", "bed9e5", "65588a", "d75038"},
	HuTao:  {"65588a", "c94737", "3a1b19", "7b595e", "c7a085"},
	Raiden: {"352660", "553b93", "9772ca", "f5e7ec", "60203c"},
	N:      {"352660", "6e0f6c", "9772ca", "f5e7ec", "60203c"},
}

var paletteNames = [...]string{
	Sete:   "sete",
	Nilou:  "nilou",
	HuTao:  "hutao",
	Raiden: "raiden",
	N:      "n",
}

// Valid reports whether p is one of the defined palettes.
func (p Palette) Valid() bool { return p >= Sete && p <= N }

func (p Palette) String() string {
	if !p.Valid() {
		return fmt.Sprintf("palette(%d)", int(p))
	}
	return paletteNames[p]
}

// Colors returns the palette's ordered color sequence.
func (p Palette) Colors() ([]drawing.Color, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPalette, int(p))
	}
	hexes := paletteHex[p]
	out := make([]drawing.Color, len(hexes))
	for i, h := range hexes {
		out[i] = drawing.ColorFromHex(h)
	}
	return out, nil
}

// ParsePalette resolves a palette from its name, case-insensitively.
func ParsePalette(s string) (Palette, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range paletteNames {
		if n == name {
			return Palette(p), nil
		}
	}
	return Sete, fmt.Errorf("%w: %q", ErrUnknownPalette, s)
}

// cycler adapts a Palette to go-chart's ColorPalette so the scheme drives
// series color assignment; every non-series color falls through to the
// go-chart defaults.
type cycler struct {
	colors []drawing.Color
}

func (c cycler) BackgroundColor() drawing.Color {
	return chart.DefaultColorPalette.BackgroundColor()
}

func (c cycler) BackgroundStrokeColor() drawing.Color {
	return chart.DefaultColorPalette.BackgroundStrokeColor()
}

func (c cycler) CanvasColor() drawing.Color {
	return chart.DefaultColorPalette.CanvasColor()
}

func (c cycler) CanvasStrokeColor() drawing.Color {
	return chart.DefaultColorPalette.CanvasStrokeColor()
}

func (c cycler) AxisStrokeColor() drawing.Color {
	return chart.DefaultColorPalette.AxisStrokeColor()
}

func (c cycler) TextColor() drawing.Color {
	return chart.DefaultColorPalette.TextColor()
}

func (c cycler) GetSeriesColor(index int) drawing.Color {
	return c.colors[index%len(c.colors)]
}

// Cycle returns a go-chart color palette that cycles p's colors across
// successive series.
func Cycle(p Palette) (chart.ColorPalette, error) {
	colors, err := p.Colors()
	if err != nil {
		return nil, err
	}
	return cycler{colors: colors}, nil
}
