package gcode

import (
	"fmt"
	"strings"

	"github.com/rotarytools/tangcut"
	"github.com/rotarytools/tangcut/heading"
)

// Generate serializes a workspace polyline into a positional motion-code
// program: header, rapid to safe height, rapid to the first XY, plunge to
// cut depth, one linear move per remaining sample, retract, program end.
// An empty polyline produces an empty program.
func Generate(points []tangcut.Pair, cfg Config) string {
	return emit(machinePath(points, cfg), cfg, false)
}

// GenerateOriented is like Generate but adds a C word per move carrying
// the tangential heading, plus an informational heading comment for
// consumers without a rotary axis.
func GenerateOriented(points []tangcut.Pair, cfg Config) string {
	return emit(machinePath(points, cfg), cfg, true)
}

// Orient re-derives an oriented program from existing positional program
// text: the XY moves are re-parsed in the machine frame and re-emitted
// with headings. For identical geometry this produces exactly the headings
// GenerateOriented produces, because both entry points feed the same
// quantized machine coordinates through the same orientation routine.
func Orient(program string, cfg Config) string {
	return emit(parseMachine(program), cfg, true)
}

// machinePath converts workspace points into quantized machine-frame
// coordinates, the common currency of all generation entry points.
func machinePath(points []tangcut.Pair, cfg Config) []tangcut.Pair {
	path := make([]tangcut.Pair, len(points))
	for i, p := range points {
		path[i] = quantizePair(cfg.ToMachine(p))
	}
	return path
}

// headings resolves the emitted heading for every machine-frame sample.
// The heading of a sample is the direction of the segment into it; the
// first sample takes the direction of the segment out of it. A sample with
// no determinable direction keeps the previous emitted heading (0 at the
// start of the path). Continuity is chained through the already-adjusted
// previous value, never the raw one.
func headings(path []tangcut.Pair, cfg Config) []float64 {
	hs := make([]float64, len(path))
	prev := cfg.InitialHeading
	for i := range path {
		var d tangcut.Pair
		if i == 0 && len(path) > 1 {
			d = path[1] - path[0]
		} else if i > 0 {
			d = path[i] - path[i-1]
		}
		if tangcut.Is0(d.X()) && tangcut.Is0(d.Y()) && i > 0 {
			hs[i] = hs[i-1]
			continue
		}
		h := heading.Normalize(heading.Of(d.X(), d.Y()), prev, cfg.Angle)
		hs[i] = h
		prev = h
	}
	return hs
}

func emit(path []tangcut.Pair, cfg Config, oriented bool) string {
	if len(path) == 0 {
		tracer().Infof("no geometry, emitting empty program")
		return ""
	}
	var hs []float64
	if oriented {
		hs = headings(path, cfg)
	}
	var b strings.Builder
	b.WriteString("G90 (absolute positioning)\n")
	b.WriteString(cfg.Unit.word() + "\n")
	b.WriteString("G17 (XY plane)\n")
	b.WriteString("G94 (units per minute feed)\n")
	fmt.Fprintf(&b, "G0 F%.3f (travel feed)\n", cfg.RapidRate)
	fmt.Fprintf(&b, "G0 Z%.3f\n", cfg.SafeHeight)
	if oriented {
		fmt.Fprintf(&b, "G0 X%.3f Y%.3f C%.3f (heading %.3f)\n",
			path[0].X(), path[0].Y(), hs[0], hs[0])
	} else {
		fmt.Fprintf(&b, "G0 X%.3f Y%.3f\n", path[0].X(), path[0].Y())
	}
	fmt.Fprintf(&b, "G1 Z%.3f F%.3f\n", cfg.CutDepth, cfg.FeedRate)
	for i := 1; i < len(path); i++ {
		if oriented {
			fmt.Fprintf(&b, "G1 X%.3f Y%.3f C%.3f F%.3f (heading %.3f)\n",
				path[i].X(), path[i].Y(), hs[i], cfg.FeedRate, hs[i])
		} else {
			fmt.Fprintf(&b, "G1 X%.3f Y%.3f F%.3f\n", path[i].X(), path[i].Y(), cfg.FeedRate)
		}
	}
	fmt.Fprintf(&b, "G0 Z%.3f\n", cfg.SafeHeight)
	b.WriteString("M2\n")
	tracer().Debugf("emitted %d moves (oriented=%v)", len(path), oriented)
	return b.String()
}
