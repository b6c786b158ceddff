package spline

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/rotarytools/tangcut"
)

// tracer writes to trace with key 'tangcut.spline'
func tracer() tracing.Trace {
	return tracing.Select("tangcut.spline")
}

// Sample interpolates a dense polyline through the given control points,
// with `resolution` subdivisions per inter-point segment. The shared joint
// between consecutive segments is emitted exactly once, and the first and
// last control points are reproduced exactly.
//
// A resolution below 1 is treated as 1. Non-finite coordinates are outside
// the contract of this function.
func Sample(points []tangcut.Pair, resolution int) []tangcut.Pair {
	if resolution < 1 {
		resolution = 1
	}
	n := len(points)
	switch n {
	case 0:
		return []tangcut.Pair{}
	case 1:
		return []tangcut.Pair{points[0]}
	case 2:
		return line(points[0], points[1], resolution)
	}
	tracer().Debugf("sampling %d control points at resolution %d", n, resolution)
	samples := make([]tangcut.Pair, 0, (n-1)*resolution+1)
	samples = append(samples, points[0])
	for i := 0; i < n-1; i++ {
		p0 := points[clamp(i-1, n)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[clamp(i+2, n)]
		for j := 1; j < resolution; j++ {
			t := float64(j) / float64(resolution)
			samples = append(samples, blend(p0, p1, p2, p3, t))
		}
		// the joint itself is the exact control point, not blend(...,1)
		samples = append(samples, p2)
	}
	return samples
}

// line subdivides the segment p⟶q into `resolution` parameter steps,
// endpoints included exactly once.
func line(p, q tangcut.Pair, resolution int) []tangcut.Pair {
	samples := make([]tangcut.Pair, 0, resolution+1)
	samples = append(samples, p)
	for j := 1; j < resolution; j++ {
		t := tangcut.Pair(complex(float64(j)/float64(resolution), 0))
		samples = append(samples, p+(q-p)*t)
	}
	samples = append(samples, q)
	return samples
}

// blend evaluates the uniform Catmull-Rom basis at parameter t in [0,1].
func blend(p0, p1, p2, p3 tangcut.Pair, t float64) tangcut.Pair {
	ct := tangcut.Pair(complex(t, 0))
	a := 2 * p1
	b := (p2 - p0) * ct
	c := (2*p0 - 5*p1 + 4*p2 - p3) * ct * ct
	d := (3*p1 - p0 - 3*p2 + p3) * ct * ct * ct
	return (a + b + c + d) * 0.5
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
