// Package plotstyle holds the rendering configuration for pltutils charts:
// named color palettes, font sizing, figure geometry and legend placement.
// A Config is an explicit value handed to each chart context, so multiple
// independent charts can use different styles in one process.
package plotstyle

import (
	"fmt"

	"github.com/golang/freetype/truetype"
)

// LegendLocation names where the legend renderable is placed.
type LegendLocation string

const (
	LegendUpperRight LegendLocation = "upper right"
	LegendLeft       LegendLocation = "left"
	LegendTop        LegendLocation = "top"
)

// Config carries every style parameter a chart context needs. Font sizes are
// points; figure size is inches, converted to pixels at DPI when rendering.
type Config struct {
	Palette Palette

	TitleFontSize  float64
	LabelFontSize  float64
	TickFontSize   float64
	LegendFontSize float64

	FigWidthIn  float64
	FigHeightIn float64
	DPI         float64

	Legend LegendLocation

	// FontData optionally holds raw TTF bytes, e.g. a CJK-capable face.
	// When empty the renderer uses the go-chart built-in font.
	FontData []byte
}

// NewConfig returns the default style for the given palette: title 14pt,
// axis labels and ticks 16pt, legend 14pt, an 8x6in figure at 100 DPI and the
// legend in the upper right.
func NewConfig(p Palette) (Config, error) {
	if !p.Valid() {
		return Config{}, fmt.Errorf("%w: %d", ErrUnknownPalette, int(p))
	}
	return Config{
		Palette:        p,
		TitleFontSize:  14,
		LabelFontSize:  16,
		TickFontSize:   16,
		LegendFontSize: 14,
		FigWidthIn:     8,
		FigHeightIn:    6,
		DPI:            100,
		Legend:         LegendUpperRight,
	}, nil
}

// Validate checks every field a renderer relies on.
func (c Config) Validate() error {
	if !c.Palette.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPalette, int(c.Palette))
	}
	if c.TitleFontSize <= 0 || c.LabelFontSize <= 0 || c.TickFontSize <= 0 || c.LegendFontSize <= 0 {
		return fmt.Errorf("font sizes must be positive: %w", ErrInvalidArgument)
	}
	if c.FigWidthIn <= 0 || c.FigHeightIn <= 0 || c.DPI <= 0 {
		return fmt.Errorf("figure size and DPI must be positive: %w", ErrInvalidArgument)
	}
	switch c.Legend {
	case LegendUpperRight, LegendLeft, LegendTop:
	default:
		return fmt.Errorf("legend location %q: %w", c.Legend, ErrInvalidArgument)
	}
	return nil
}

// PixelSize converts the figure geometry to output pixels.
func (c Config) PixelSize() (w, h int) {
	return int(c.FigWidthIn * c.DPI), int(c.FigHeightIn * c.DPI)
}

// Font parses FontData when present. A nil result means the renderer should
// fall back to its default face.
func (c Config) Font() (*truetype.Font, error) {
	if len(c.FontData) == 0 {
		return nil, nil
	}
	f, err := truetype.Parse(c.FontData)
	if err != nil {
		return nil, fmt.Errorf("parse font data: %w", err)
	}
	return f, nil
}
