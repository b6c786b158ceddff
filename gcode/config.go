// Package gcode generates motion-code programs for a rotary-knife machine
// and parses motion-code text back into geometry.
//
// The dialect is line-oriented: `;` starts a line comment, parenthesized
// blocks are inline comments, move lines carry a G0/G1 word followed by any
// subset of X/Y/Z/C/F fields in arbitrary order. Coordinates are modal —
// a field omitted on a line retains its last emitted value.
package gcode

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rotarytools/tangcut"
	"github.com/rotarytools/tangcut/heading"
)

// tracer writes to trace with key 'tangcut.gcode'
func tracer() tracing.Trace {
	return tracing.Select("tangcut.gcode")
}

// Unit selects the machine unit system.
type Unit uint8

const (
	Millimeters Unit = iota
	Inches
)

func (u Unit) word() string {
	if u == Inches {
		return "G20 (inches)"
	}
	return "G21 (millimeters)"
}

// Config is an immutable-per-generation snapshot of the machine
// parameters. One Config applies to one generation call; changing it does
// not retroactively alter already-generated text.
//
// Scale must be positive. Workspace coordinates are Y-down; the machine
// frame is Y-up. ToMachine and FromMachine are exact inverses of each
// other, which is what keeps the edit → generate → import loop stable.
type Config struct {
	Unit        Unit
	Scale       float64 // workspace units → machine units
	SafeHeight  float64 // Z for rapids between cuts
	CutDepth    float64 // Z while cutting, typically negative
	FeedRate    float64 // cutting feed, units/min
	RapidRate   float64 // travel feed, units/min
	Angle       heading.Config
	// InitialHeading seeds the shortest-path continuity chain. NaN starts
	// each generation with a fresh reference.
	InitialHeading float64
	ToolOffsetX    float64
	ToolOffsetY    float64
}

// DefaultConfig returns the parameters the original machine profile ships
// with: metric, 5mm safe height, 1mm cut depth, fresh heading reference.
func DefaultConfig() Config {
	return Config{
		Unit:           Millimeters,
		Scale:          1,
		SafeHeight:     5,
		CutDepth:       -1,
		FeedRate:       300,
		RapidRate:      1200,
		Angle:          heading.Config{Mode: heading.Full, ShortestPath: true},
		InitialHeading: heading.None(),
	}
}

// ToMachine converts a workspace point into the machine frame: scale,
// Y-axis flip, tool offset.
func (cfg Config) ToMachine(p tangcut.Pair) tangcut.Pair {
	return tangcut.P(p.X()*cfg.Scale+cfg.ToolOffsetX, -p.Y()*cfg.Scale+cfg.ToolOffsetY)
}

// FromMachine is the exact inverse of ToMachine.
func (cfg Config) FromMachine(p tangcut.Pair) tangcut.Pair {
	return tangcut.P((p.X()-cfg.ToolOffsetX)/cfg.Scale, -(p.Y()-cfg.ToolOffsetY)/cfg.Scale)
}

// quantize rounds a machine coordinate to the emitted 3-decimal precision.
// Headings are computed from quantized coordinates so that orienting a
// polyline and orienting its generated program text agree bit for bit.
func quantize(v float64) float64 {
	q := math.Round(v*1000) / 1000
	if q == 0 {
		return 0 // avoid emitting negative zero after the axis flip
	}
	return q
}

func quantizePair(p tangcut.Pair) tangcut.Pair {
	return tangcut.P(quantize(p.X()), quantize(p.Y()))
}
