/*
Package tangcut implements the geometry core for driving a rotary-knife
(tangential C-axis) cutting machine: densifying a sparse control-point path
into a polyline, generating and parsing motion-code programs, resolving
tool headings, and indexing a path by cumulative arc length for playback.

The root package holds the planar pair type shared by all subpackages.
Pairs are represented as complex numbers, which keeps the spline blending
arithmetic short and allocation free.

# BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package tangcut

import (
	"fmt"
	"math"
)

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Pair is a 2D-point in the abstract planar workspace.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for constructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// Dist returns the Euclidean distance between p and q.
func (p Pair) Dist(q Pair) float64 {
	return math.Hypot(real(q)-real(p), imag(q)-imag(p))
}

// Equal compares two pairs with Epsilon tolerance.
func (p Pair) Equal(q Pair) bool {
	return Is0(p.X()-q.X()) && Is0(p.Y()-q.Y())
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// NoHeading marks an absent heading on a sample. Samples produced by the
// positional parser carry it; the oriented parser replaces it as soon as a
// C word has been seen.
func NoHeading() float64 {
	return math.NaN()
}

// HasHeading is a predicate: does h carry an actual heading value?
func HasHeading(h float64) bool {
	return !math.IsNaN(h)
}

// Sample is a point on a densified path, optionally annotated with the
// tool heading (in degrees) the machine assumes while travelling into it.
// A heading of NaN means "not determined" (see NoHeading).
type Sample struct {
	Point   Pair
	Heading float64
}

// S constructs an oriented sample.
func S(x, y, heading float64) Sample {
	return Sample{Point: P(x, y), Heading: heading}
}

// Positional wraps bare points into samples without heading information.
func Positional(points []Pair) []Sample {
	samples := make([]Sample, len(points))
	for i, p := range points {
		samples[i] = Sample{Point: p, Heading: NoHeading()}
	}
	return samples
}
