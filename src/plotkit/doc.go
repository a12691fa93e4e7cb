// Package plotkit provides quick decoration helpers around go-chart: math-text
// titles and axis labels built from symbolic variable names, dashed guide lines
// and marked points that never expand the visible range, and palette-driven
// rendering to PNG or SVG.
//
// A minimal session:
//
//	cfg, _ := plotstyle.NewConfig(plotstyle.Sete)
//	p, _ := plotkit.New(cfg)
//	p.Line([]float64{1, 10}, []float64{1, 9}, "line 1")
//	p.VerticalGuides([]float64{2}, plotkit.GuideStyle{})
//	p.MarkPoint(plotkit.Point{X: 5, Y: 5}, plotkit.MarkStyle{})
//	p.Annotate("y_i", []string{"x", "y_{idx}"}, []plotkit.Param{{Name: "idx", Value: "1,2,3,4,5"}}, true)
//	p.SavePNG("demo.png")
package plotkit
