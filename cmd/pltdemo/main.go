// Command pltdemo renders the pltutils demo chart headlessly: five palette
// colored lines with a vertical guide, three horizontal guides, a marked
// point and a math-text title, written as a PNG.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/VatinaCharo/pltutils/src/plog"
	"github.com/VatinaCharo/pltutils/src/plotkit"
	"github.com/VatinaCharo/pltutils/src/plotstyle"
)

func main() {
	var (
		out     string
		palName string
		caption bool
		level   string
	)
	flag.StringVar(&out, "o", "demo.png", "output PNG path")
	flag.StringVar(&palName, "palette", "sete", "palette name (sete, nilou, hutao, raiden, n)")
	flag.BoolVar(&caption, "caption", false, "draw a caption line under the chart")
	flag.StringVar(&level, "loglevel", "info", "log level (debug, info, warn, error)")
	flag.Parse()
	plog.SetLevel(level)

	pal, err := plotstyle.ParsePalette(palName)
	if err != nil {
		plog.Errorf("%v", err)
		os.Exit(2)
	}
	if err := run(pal, out, caption); err != nil {
		plog.Errorf("%v", err)
		os.Exit(1)
	}
	plog.Infof("wrote %s", out)
}

func run(pal plotstyle.Palette, out string, caption bool) error {
	p, err := buildDemo(pal)
	if err != nil {
		return err
	}
	if !caption {
		return p.SavePNG(out)
	}
	var buf bytes.Buffer
	if err := p.Render(&buf, plotkit.PNG); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode rendered chart: %w", err)
	}
	img = plotkit.Caption(img, fmt.Sprintf("pltutils demo, palette %s", pal))
	buf.Reset()
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}

// buildDemo assembles the reference chart: x from 1 to 10, five descending
// lines, guides at x=2 and y=3,4,7 and a marked point at (5,5).
func buildDemo(pal plotstyle.Palette) (*plotkit.Plot, error) {
	cfg, err := plotstyle.NewConfig(pal)
	if err != nil {
		return nil, err
	}
	p, err := plotkit.New(cfg)
	if err != nil {
		return nil, err
	}
	xs := []float64{1, 10}
	for i := 0; i < 5; i++ {
		ys := []float64{1, float64(9 - i)}
		if err := p.Line(xs, ys, fmt.Sprintf("line %d", i+1)); err != nil {
			return nil, err
		}
	}
	if err := p.VerticalGuides([]float64{2}, plotkit.GuideStyle{}); err != nil {
		return nil, err
	}
	if err := p.HorizontalGuides([]float64{3, 4, 7}, plotkit.GuideStyle{}); err != nil {
		return nil, err
	}
	if err := p.MarkPoint(plotkit.Point{X: 5, Y: 5}, plotkit.MarkStyle{}); err != nil {
		return nil, err
	}
	if err := p.Annotate("y_i", []string{"x", "y_{idx}"}, []plotkit.Param{{Name: "idx", Value: "1,2,3,4,5"}}, true); err != nil {
		return nil, err
	}
	return p, nil
}
