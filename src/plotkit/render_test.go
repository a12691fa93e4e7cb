package plotkit

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VatinaCharo/pltutils/src/plotstyle"
)

func decoratedPlot(t *testing.T) *Plot {
	t.Helper()
	p := newTestPlot(t)
	xs := []float64{1, 10}
	for i := 0; i < 5; i++ {
		require.NoError(t, p.Line(xs, []float64{1, float64(9 - i)}, "line"))
	}
	require.NoError(t, p.VerticalGuides([]float64{2}, GuideStyle{}))
	require.NoError(t, p.HorizontalGuides([]float64{3, 4, 7}, GuideStyle{}))
	require.NoError(t, p.MarkPoint(Point{5, 5}, MarkStyle{}))
	require.NoError(t, p.Annotate("y_i", []string{"x", "y_{idx}"}, []Param{{"idx", "1,2,3,4,5"}}, true))
	return p
}

func TestRenderPNG(t *testing.T) {
	p := decoratedPlot(t)
	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf, PNG))
	require.NotZero(t, buf.Len())

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	w, h := p.cfg.PixelSize()
	require.Equal(t, w, img.Bounds().Dx())
	require.Equal(t, h, img.Bounds().Dy())
}

func TestRenderSVG(t *testing.T) {
	p := decoratedPlot(t)
	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf, SVG))
	require.Contains(t, buf.String(), "<svg")
}

func TestRenderEmptyPlot(t *testing.T) {
	p := newTestPlot(t)
	var buf bytes.Buffer
	err := p.Render(&buf, PNG)
	require.Error(t, err)
	require.True(t, errors.Is(err, plotstyle.ErrInvalidArgument))
}

func TestRenderBadFormat(t *testing.T) {
	p := decoratedPlot(t)
	var buf bytes.Buffer
	err := p.Render(&buf, Format(9))
	require.True(t, errors.Is(err, plotstyle.ErrInvalidArgument))
}

func TestRenderDecorationsOnly(t *testing.T) {
	p := newTestPlot(t)
	require.NoError(t, p.SetXLim(0, 10))
	require.NoError(t, p.SetYLim(0, 10))
	require.NoError(t, p.VerticalGuides([]float64{5}, GuideStyle{}))
	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf, PNG))
	require.NotZero(t, buf.Len())
}

func TestRenderWithoutLegendOnUnnamedSeries(t *testing.T) {
	p := newTestPlot(t)
	require.NoError(t, p.Line([]float64{1, 2}, []float64{3, 4}, ""))
	p.ShowLegend(false)
	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf, PNG))
}

func TestSavePNG(t *testing.T) {
	p := decoratedPlot(t)
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, p.SavePNG(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

func TestLegendLocations(t *testing.T) {
	for _, loc := range []plotstyle.LegendLocation{
		plotstyle.LegendUpperRight, plotstyle.LegendLeft, plotstyle.LegendTop,
	} {
		cfg, err := plotstyle.NewConfig(plotstyle.Sete)
		require.NoError(t, err)
		cfg.Legend = loc
		p, err := New(cfg)
		require.NoError(t, err)
		require.NoError(t, p.Line([]float64{1, 2, 3}, []float64{1, 4, 9}, "sq"))
		p.ShowLegend(true)
		var buf bytes.Buffer
		require.NoError(t, p.Render(&buf, PNG), "legend %q", loc)
	}
}
