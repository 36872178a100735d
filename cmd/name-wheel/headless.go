package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/name-wheel/spin"
	"github.com/lixenwraith/name-wheel/wheel"
)

// svgDiameter is the exported wheel size in SVG user units
const svgDiameter = 400

var errNoNames = errors.New("no names on the wheel; add some first")

// namesStore is the persistence the headless commands need
type namesStore interface {
	Load() ([]string, string)
	Save(names []string, winner string)
}

// spinRecorder is the metrics surface of a headless spin
type spinRecorder interface {
	IncRejected(reason string)
	SetNames(n int)
}

// runOnce spins the persisted list without animation, prints and saves the winner
func runOnce(st namesStore, cfg spin.Config, rng spin.RNG, rec spinRecorder, out io.Writer, tty bool) (spin.Outcome, error) {
	names, _ := st.Load()
	rec.SetNames(len(names))

	cfg.Duration = 0
	eng := spin.NewEngine(cfg, nil, rng, func(o spin.Outcome) {
		st.Save(names, o.WinningLabel)
	})
	if d := eng.Spin(names); d != spin.Accepted {
		rec.IncRejected(d.String())
		return spin.Outcome{}, errNoNames
	}

	outcome, _ := eng.Update()
	log.Printf("Headless spin %s won by %q", outcome.ID, outcome.WinningLabel)

	if tty {
		fmt.Fprintf(out, "🎉 %s\n", outcome.WinningLabel)
	} else {
		fmt.Fprintln(out, outcome.WinningLabel)
	}
	return outcome, nil
}

// exportSVG writes the persisted wheel to path, "-" for stdout
func exportSVG(st namesStore, path string, stdout io.Writer, labelRatio float64) error {
	names, _ := st.Load()
	segments := wheel.Layout(names, svgDiameter, wheel.WithLabelRatio(labelRatio))

	if path == "-" {
		return wheel.WriteSVG(stdout, segments, svgDiameter)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	if err := wheel.WriteSVG(f, segments, svgDiameter); err != nil {
		f.Close()
		return fmt.Errorf("write svg: %w", err)
	}
	return f.Close()
}
