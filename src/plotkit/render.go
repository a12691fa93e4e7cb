package plotkit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/VatinaCharo/pltutils/src/plog"
	"github.com/VatinaCharo/pltutils/src/plotstyle"
)

// Format selects the render output encoding.
type Format int

const (
	PNG Format = iota
	SVG
)

// Render draws the accumulated series and decorations to w. The axis ranges
// are pinned to the current view limits so rendering is deterministic with
// respect to XLim/YLim.
func (p *Plot) Render(w io.Writer, f Format) error {
	defer plog.TimeTrack(time.Now(), "plot render")
	if len(p.data)+len(p.aux) == 0 {
		return fmt.Errorf("nothing to draw: %w", plotstyle.ErrInvalidArgument)
	}
	cycle, err := plotstyle.Cycle(p.cfg.Palette)
	if err != nil {
		return err
	}
	font, err := p.cfg.Font()
	if err != nil {
		return err
	}
	x0, x1 := p.XLim()
	y0, y1 := p.YLim()
	pxW, pxH := p.cfg.PixelSize()

	// data first so palette cycling tracks plot order; decorations carry
	// their own explicit styles
	series := make([]chart.Series, 0, len(p.data)+len(p.aux))
	for _, s := range p.data {
		series = append(series, s)
	}
	for _, s := range p.aux {
		series = append(series, s)
	}

	ch := chart.Chart{
		Title:        p.title,
		TitleStyle:   chart.Style{FontSize: p.cfg.TitleFontSize},
		ColorPalette: cycle,
		Width:        pxW,
		Height:       pxH,
		DPI:          p.cfg.DPI,
		Font:         font,
		Background:   chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:      p.xlabel,
			NameStyle: chart.Style{FontSize: p.cfg.LabelFontSize},
			Style:     chart.Style{FontSize: p.cfg.TickFontSize},
			Range:     &chart.ContinuousRange{Min: x0, Max: x1},
			Ticks:     niceTicks(x0, x1, 6),
		},
		YAxis: chart.YAxis{
			Name:      p.ylabel,
			NameStyle: chart.Style{FontSize: p.cfg.LabelFontSize},
			Style:     chart.Style{FontSize: p.cfg.TickFontSize},
			Range:     &chart.ContinuousRange{Min: y0, Max: y1},
			Ticks:     niceTicks(y0, y1, 6),
		},
		Series: series,
	}
	if p.legend && len(p.data) > 0 {
		ch.Elements = []chart.Renderable{legendFor(&ch, p.cfg.Legend, p.cfg.LegendFontSize)}
	}
	plog.Debugf("render: %d data series, %d decorations, %dx%d px, x=[%v,%v] y=[%v,%v]",
		len(p.data), len(p.aux), pxW, pxH, x0, x1, y0, y1)

	switch f {
	case PNG:
		return ch.Render(chart.PNG, w)
	case SVG:
		return ch.Render(chart.SVG, w)
	default:
		return fmt.Errorf("render format %d: %w", int(f), plotstyle.ErrInvalidArgument)
	}
}

// SavePNG renders the plot and writes it to path.
func (p *Plot) SavePNG(path string) error {
	var buf bytes.Buffer
	if err := p.Render(&buf, PNG); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func legendFor(ch *chart.Chart, loc plotstyle.LegendLocation, size float64) chart.Renderable {
	st := chart.Style{FontSize: size}
	switch loc {
	case plotstyle.LegendLeft:
		return chart.LegendLeft(ch, st)
	case plotstyle.LegendTop:
		return chart.LegendThin(ch, st)
	default:
		return chart.Legend(ch, st)
	}
}
