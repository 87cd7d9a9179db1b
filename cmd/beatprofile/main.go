// Command beatprofile plots the heartbeat scale factors and their product
// over two beat periods, as a visual check of the volume-preservation
// invariant.
package main

import (
	"flag"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/jlloren/heartfield"
)

func main() {
	var (
		seconds = flag.Float64("seconds", 2*60.0/heartfield.BeatsPerMinute, "time span to plot")
		samples = flag.Int("samples", 400, "number of samples across the span")
		out     = flag.String("o", "beatprofile.png", "output file")
	)
	flag.Parse()

	horizontal := make(plotter.XYs, *samples)
	vertical := make(plotter.XYs, *samples)
	volume := make(plotter.XYs, *samples)
	for i := 0; i < *samples; i++ {
		t := float32(float64(i) * *seconds / float64(*samples))
		s := heartfield.BeatScales(t)
		horizontal[i] = plotter.XY{X: float64(t), Y: float64(s.X)}
		vertical[i] = plotter.XY{X: float64(t), Y: float64(s.Z)}
		volume[i] = plotter.XY{X: float64(t), Y: float64(s.X * s.Y * s.Z)}
	}

	p := plot.New()
	p.Title.Text = "Heartbeat scales"
	p.X.Label.Text = "time [s]"
	p.Y.Label.Text = "scale"
	err := plotutil.AddLinePoints(p,
		"horizontal", horizontal,
		"vertical", vertical,
		"volume", volume,
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, *out); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}
