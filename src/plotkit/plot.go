package plotkit

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/VatinaCharo/pltutils/src/plotstyle"
)

// Point is a 2-D chart coordinate.
type Point struct {
	X float64
	Y float64
}

// Plot is an explicit chart context. It accumulates data series and
// decorations, tracks the view range, and renders through go-chart. A Plot is
// not safe for concurrent use; callers sequence their own calls.
type Plot struct {
	cfg plotstyle.Config

	title  string
	xlabel string
	ylabel string
	legend bool

	// data carries plotted series; its extent drives the automatic view
	// range and its order drives palette color cycling.
	data []chart.ContinuousSeries
	// aux carries guide lines and markers. Decorations never contribute to
	// the view range.
	aux []chart.ContinuousSeries

	haveExtent             bool
	xmin, xmax, ymin, ymax float64

	// explicit view limits; nil means derive from the data extent
	xlim *[2]float64
	ylim *[2]float64
}

// New returns a chart context using the given style configuration.
func New(cfg plotstyle.Config) (*Plot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Plot{cfg: cfg}, nil
}

// Line adds a data series. The series color follows the configured palette,
// cycling by the order in which series were added.
func (p *Plot) Line(xs, ys []float64, label string) error {
	if len(xs) == 0 || len(xs) != len(ys) {
		return fmt.Errorf("series needs matching non-empty x and y values (got %d/%d): %w",
			len(xs), len(ys), plotstyle.ErrInvalidArgument)
	}
	if err := finiteValues(xs); err != nil {
		return err
	}
	if err := finiteValues(ys); err != nil {
		return err
	}
	p.data = append(p.data, chart.ContinuousSeries{
		Name:    label,
		XValues: append([]float64(nil), xs...),
		YValues: append([]float64(nil), ys...),
	})
	p.extend(xs, ys)
	return nil
}

// SetTitle sets the chart title text.
func (p *Plot) SetTitle(s string) { p.title = s }

// SetXLabel sets the x-axis label text.
func (p *Plot) SetXLabel(s string) { p.xlabel = s }

// SetYLabel sets the y-axis label text.
func (p *Plot) SetYLabel(s string) { p.ylabel = s }

// ShowLegend controls whether a legend is drawn for named data series.
func (p *Plot) ShowLegend(on bool) { p.legend = on }

// XLim returns the horizontal view range: the explicit limits when set,
// otherwise nice bounds around the data extent, and [0,1] on an empty plot.
func (p *Plot) XLim() (min, max float64) {
	if p.xlim != nil {
		return p.xlim[0], p.xlim[1]
	}
	if !p.haveExtent {
		return 0, 1
	}
	return niceAxisBounds(p.xmin, p.xmax)
}

// YLim is the vertical counterpart of XLim.
func (p *Plot) YLim() (min, max float64) {
	if p.ylim != nil {
		return p.ylim[0], p.ylim[1]
	}
	if !p.haveExtent {
		return 0, 1
	}
	return niceAxisBounds(p.ymin, p.ymax)
}

// SetXLim pins the horizontal view range.
func (p *Plot) SetXLim(min, max float64) error {
	if err := checkLim(min, max); err != nil {
		return err
	}
	p.xlim = &[2]float64{min, max}
	return nil
}

// SetYLim pins the vertical view range.
func (p *Plot) SetYLim(min, max float64) error {
	if err := checkLim(min, max); err != nil {
		return err
	}
	p.ylim = &[2]float64{min, max}
	return nil
}

// preserveView pins the view range captured before fn around fn's drawing, so
// decorations can never expand the visible area, even when fn fails partway.
func (p *Plot) preserveView(fn func() error) error {
	x0, x1 := p.XLim()
	y0, y1 := p.YLim()
	defer func() {
		p.xlim = &[2]float64{x0, x1}
		p.ylim = &[2]float64{y0, y1}
	}()
	return fn()
}

func (p *Plot) extend(xs, ys []float64) {
	for i := range xs {
		if !p.haveExtent {
			p.xmin, p.xmax = xs[i], xs[i]
			p.ymin, p.ymax = ys[i], ys[i]
			p.haveExtent = true
			continue
		}
		if xs[i] < p.xmin {
			p.xmin = xs[i]
		}
		if xs[i] > p.xmax {
			p.xmax = xs[i]
		}
		if ys[i] < p.ymin {
			p.ymin = ys[i]
		}
		if ys[i] > p.ymax {
			p.ymax = ys[i]
		}
	}
}

func checkLim(min, max float64) error {
	if err := finiteValues([]float64{min, max}); err != nil {
		return err
	}
	if min >= max {
		return fmt.Errorf("limit min %v must be below max %v: %w", min, max, plotstyle.ErrInvalidArgument)
	}
	return nil
}

func finiteValues(vs []float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("coordinate %v is not finite: %w", v, plotstyle.ErrInvalidArgument)
		}
	}
	return nil
}

func finitePoints(pts ...Point) error {
	for _, pt := range pts {
		if err := finiteValues([]float64{pt.X, pt.Y}); err != nil {
			return err
		}
	}
	return nil
}
