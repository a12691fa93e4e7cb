package plotkit

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/VatinaCharo/pltutils/src/plotstyle"
)

// DashedLine is the default stroke dash pattern for guide lines.
var DashedLine = []float64{5.0, 5.0}

// GuideStyle controls auxiliary line appearance. The zero value draws a thin
// black dashed line.
type GuideStyle struct {
	Color drawing.Color
	Width float64
	Dash  []float64
}

func (g GuideStyle) orDefaults() GuideStyle {
	if g.Color.IsZero() {
		g.Color = drawing.ColorBlack
	}
	if g.Width <= 0 {
		g.Width = 1.0
	}
	if g.Dash == nil {
		g.Dash = DashedLine
	}
	return g
}

func (g GuideStyle) chartStyle() chart.Style {
	return chart.Style{
		StrokeWidth:     g.Width,
		StrokeColor:     g.Color,
		StrokeDashArray: g.Dash,
	}
}

// MarkStyle controls MarkPoint appearance. The zero value draws a black dot
// of width 5 with black dashed drop lines.
type MarkStyle struct {
	Size       float64
	PointColor drawing.Color
	LineColor  drawing.Color
	Dash       []float64
}

func (m MarkStyle) orDefaults() MarkStyle {
	if m.Size <= 0 {
		m.Size = 5.0
	}
	if m.PointColor.IsZero() {
		m.PointColor = drawing.ColorBlack
	}
	if m.LineColor.IsZero() {
		m.LineColor = drawing.ColorBlack
	}
	if m.Dash == nil {
		m.Dash = DashedLine
	}
	return m
}

// Segment draws a straight auxiliary line between two points. The view range
// is unaffected, even when an endpoint lies outside it.
func (p *Plot) Segment(a, b Point, style GuideStyle) error {
	if err := finitePoints(a, b); err != nil {
		return err
	}
	return p.preserveView(func() error {
		p.aux = append(p.aux, segmentSeries(a, b, style.orDefaults().chartStyle()))
		return nil
	})
}

// VerticalGuides draws a full-height guide line at each x coordinate, spanning
// the current vertical view range. The view range is restored afterwards so
// guides never make the chart auto-expand.
func (p *Plot) VerticalGuides(xs []float64, style GuideStyle) error {
	if len(xs) == 0 {
		return fmt.Errorf("no guide coordinates: %w", plotstyle.ErrInvalidArgument)
	}
	if err := finiteValues(xs); err != nil {
		return err
	}
	st := style.orDefaults().chartStyle()
	return p.preserveView(func() error {
		y0, y1 := p.YLim()
		for _, x := range xs {
			p.aux = append(p.aux, segmentSeries(Point{x, y0}, Point{x, y1}, st))
		}
		return nil
	})
}

// HorizontalGuides draws a full-width guide line at each y coordinate,
// spanning the current horizontal view range, then restores the view range.
func (p *Plot) HorizontalGuides(ys []float64, style GuideStyle) error {
	if len(ys) == 0 {
		return fmt.Errorf("no guide coordinates: %w", plotstyle.ErrInvalidArgument)
	}
	if err := finiteValues(ys); err != nil {
		return err
	}
	st := style.orDefaults().chartStyle()
	return p.preserveView(func() error {
		x0, x1 := p.XLim()
		for _, y := range ys {
			p.aux = append(p.aux, segmentSeries(Point{x0, y}, Point{x1, y}, st))
		}
		return nil
	})
}

// MarkPoint draws a dot marker at pt plus a dashed horizontal line from the
// left view edge and a dashed vertical line from the bottom view edge. Both
// view ranges are restored afterwards.
func (p *Plot) MarkPoint(pt Point, style MarkStyle) error {
	if err := finitePoints(pt); err != nil {
		return err
	}
	st := style.orDefaults()
	drop := GuideStyle{Color: st.LineColor, Dash: st.Dash}.orDefaults().chartStyle()
	return p.preserveView(func() error {
		x0, _ := p.XLim()
		y0, _ := p.YLim()
		p.aux = append(p.aux,
			segmentSeries(Point{x0, pt.Y}, pt, drop),
			segmentSeries(Point{pt.X, y0}, pt, drop),
			pointSeries(pt, st),
		)
		return nil
	})
}

func segmentSeries(a, b Point, st chart.Style) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		XValues: []float64{a.X, b.X},
		YValues: []float64{a.Y, b.Y},
		Style:   st,
	}
}

// pointSeries renders a dot with no connecting stroke. go-chart wants at
// least two values per series, so the point is doubled.
func pointSeries(pt Point, st MarkStyle) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		XValues: []float64{pt.X, pt.X},
		YValues: []float64{pt.Y, pt.Y},
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    st.Size,
			DotColor:    st.PointColor,
		},
	}
}
