package plotstyle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(Sete)
	require.NoError(t, err)
	require.Equal(t, Sete, cfg.Palette)
	require.Equal(t, 14.0, cfg.TitleFontSize)
	require.Equal(t, 16.0, cfg.LabelFontSize)
	require.Equal(t, 16.0, cfg.TickFontSize)
	require.Equal(t, 14.0, cfg.LegendFontSize)
	require.Equal(t, LegendUpperRight, cfg.Legend)
	w, h := cfg.PixelSize()
	require.Equal(t, 800, w)
	require.Equal(t, 600, h)
	require.NoError(t, cfg.Validate())
}

func TestNewConfigUnknownPalette(t *testing.T) {
	_, err := NewConfig(Palette(7))
	require.True(t, errors.Is(err, ErrUnknownPalette))
}

func TestConfigValidate(t *testing.T) {
	base, err := NewConfig(Raiden)
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad palette", func(c *Config) { c.Palette = Palette(-3) }},
		{"zero title font", func(c *Config) { c.TitleFontSize = 0 }},
		{"negative tick font", func(c *Config) { c.TickFontSize = -1 }},
		{"zero width", func(c *Config) { c.FigWidthIn = 0 }},
		{"zero dpi", func(c *Config) { c.DPI = 0 }},
		{"bad legend location", func(c *Config) { c.Legend = "center stage" }},
	}
	for _, c := range cases {
		cfg := base
		c.mutate(&cfg)
		err := cfg.Validate()
		require.Error(t, err, c.name)
		require.True(t, errors.Is(err, ErrInvalidArgument), c.name)
	}
}

func TestConfigFont(t *testing.T) {
	cfg, err := NewConfig(Sete)
	require.NoError(t, err)

	f, err := cfg.Font()
	require.NoError(t, err)
	require.Nil(t, f, "no font data should mean the renderer default")

	cfg.FontData = []byte("definitely not a ttf")
	_, err = cfg.Font()
	require.Error(t, err)
}
