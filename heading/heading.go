// Package heading computes and normalizes tangential tool headings.
//
// The geometric convention is 0° = +X axis, positive angles
// counter-clockwise, Y pointing up. Callers working in a Y-down coordinate
// space must negate dy before calling Of.
package heading

import "math"

// Mode selects the fold range for normalized headings.
type Mode uint8

const (
	// Full folds headings into [0,360).
	Full Mode = iota
	// Signed folds headings into (-180,180].
	Signed
)

// Config captures the heading policy of one generation run.
type Config struct {
	Mode         Mode
	Offset       float64 // degrees, added before folding
	ShortestPath bool    // keep continuity with the previous emitted heading
}

// None marks the absence of a previous heading for Normalize.
func None() float64 {
	return math.NaN()
}

// Of returns the heading of the directed segment (dx,dy) in degrees,
// in [0,360). A zero-length segment has no direction; Of returns 0.
func Of(dx, dy float64) float64 {
	if dx == 0 && dy == 0 {
		return 0
	}
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Normalize applies the configured offset, folds the result into the
// configured range, and — when cfg.ShortestPath is set and prev is an
// actual heading (not None) — shifts the result by whole turns so that it
// stays within a half turn of prev. The continuity-adjusted value may fall
// outside the nominal fold range; callers must not re-fold it, or the
// continuity chain breaks.
func Normalize(angle, prev float64, cfg Config) float64 {
	a := fold(angle+cfg.Offset, cfg.Mode)
	if cfg.ShortestPath && !math.IsNaN(prev) {
		for a-prev > 180 {
			a -= 360
		}
		for a-prev < -180 {
			a += 360
		}
	}
	return a
}

// Difference returns the minimal absolute separation between two headings,
// irrespective of winding, in [0,180].
func Difference(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// SignedDelta returns the signed shortest rotation taking heading a to
// heading b, in (-180,180].
func SignedDelta(a, b float64) float64 {
	return fold(b-a, Signed)
}

func fold(a float64, mode Mode) float64 {
	if mode == Signed {
		for a > 180 {
			a -= 360
		}
		for a <= -180 {
			a += 360
		}
		return a
	}
	for a >= 360 {
		a -= 360
	}
	for a < 0 {
		a += 360
	}
	return a
}
