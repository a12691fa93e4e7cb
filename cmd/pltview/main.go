// Command pltview renders a small demo chart with the chosen palette and
// shows it in a window, for eyeballing palettes and decoration styles.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/VatinaCharo/pltutils/src/plog"
	"github.com/VatinaCharo/pltutils/src/plotkit"
	"github.com/VatinaCharo/pltutils/src/plotstyle"
)

func main() {
	var palName string
	flag.StringVar(&palName, "palette", "sete", "palette name (sete, nilou, hutao, raiden, n)")
	flag.Parse()

	pal, err := plotstyle.ParsePalette(palName)
	if err != nil {
		plog.Errorf("%v", err)
		os.Exit(2)
	}
	img, err := renderDemo(pal)
	if err != nil {
		plog.Errorf("%v", err)
		os.Exit(1)
	}

	a := app.New()
	win := a.NewWindow(fmt.Sprintf("pltutils demo (%s)", pal))
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	b := img.Bounds()
	c.SetMinSize(fyne.NewSize(float32(b.Dx())/2, float32(b.Dy())/2))
	win.SetContent(c)
	win.Resize(fyne.NewSize(float32(b.Dx())/2+40, float32(b.Dy())/2+40))
	win.ShowAndRun()
}

func renderDemo(pal plotstyle.Palette) (image.Image, error) {
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
		if err := p.Line(xs, []float64{1, float64(9 - i)}, fmt.Sprintf("line %d", i+1)); err != nil {
			return nil, err
		}
	}
	if err := p.VerticalGuides([]float64{2}, plotkit.GuideStyle{}); err != nil {
		return nil, err
	}
	if err := p.MarkPoint(plotkit.Point{X: 5, Y: 5}, plotkit.MarkStyle{}); err != nil {
		return nil, err
	}
	if err := p.Annotate("y_i", []string{"x", "y_{idx}"}, nil, true); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := p.Render(&buf, plotkit.PNG); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}
	return img, nil
}
