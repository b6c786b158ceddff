// Package playback indexes a sampled path by cumulative arc length, so an
// external animation clock can scrub to any distance along the cut.
package playback

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rotarytools/tangcut"
	"github.com/rotarytools/tangcut/heading"
)

// tracer writes to trace with key 'tangcut.playback'
func tracer() tracing.Trace {
	return tracing.Select("tangcut.playback")
}

// dupEps: consecutive points closer than this collapse into one vertex.
const dupEps = 1e-6

// Segment is one straight piece of a playback path. The segment sequence
// forms a contiguous, non-overlapping partition of [0, Total]; zero-length
// segments are never stored. Heading is the destination-vertex heading
// (NaN when the source samples carried none), HeadingDelta the signed
// shortest rotation from the previous segment's heading.
type Segment struct {
	Start, End   tangcut.Pair
	Length       float64
	CumStart     float64
	CumEnd       float64
	Heading      float64
	HeadingDelta float64
}

// Path is an arc-length-indexed segment list.
type Path struct {
	Segments []Segment
	Total    float64
}

// Position is the result of a distance query.
type Position struct {
	Point        tangcut.Pair
	Tangent      tangcut.Pair // unit tangent of the containing segment
	Heading      float64
	HeadingDelta float64
}

// Build converts a sample sequence into a playback path. Consecutive
// near-duplicate points are collapsed; a sequence with fewer than two
// distinct points yields an empty path.
func Build(samples []tangcut.Sample) *Path {
	path := &Path{}
	if len(samples) == 0 {
		return path
	}
	prev := samples[0]
	prevHeading := math.NaN()
	for _, s := range samples[1:] {
		length := prev.Point.Dist(s.Point)
		if length <= dupEps {
			// coincident vertex: let a heading update ride on it
			if tangcut.HasHeading(s.Heading) {
				prev.Heading = s.Heading
			}
			continue
		}
		seg := Segment{
			Start:        prev.Point,
			End:          s.Point,
			Length:       length,
			CumStart:     path.Total,
			CumEnd:       path.Total + length,
			Heading:      s.Heading,
			HeadingDelta: math.NaN(),
		}
		if tangcut.HasHeading(prevHeading) && tangcut.HasHeading(s.Heading) {
			seg.HeadingDelta = heading.SignedDelta(prevHeading, s.Heading)
		}
		path.Segments = append(path.Segments, seg)
		path.Total = seg.CumEnd
		prevHeading = s.Heading
		prev = s
	}
	tracer().Debugf("built path: %d segments, total length %.3f", len(path.Segments), path.Total)
	return path
}

// At returns the position at distance d along the path. d is expected to
// be pre-clamped to [0, Total] by the caller; querying at or beyond the
// end returns the final segment's end point and heading. An empty path
// reports ok = false.
//
// The scan is linear in the number of segments.
func (path *Path) At(d float64) (Position, bool) {
	if len(path.Segments) == 0 {
		return Position{Heading: math.NaN(), HeadingDelta: math.NaN()}, false
	}
	for i := range path.Segments {
		seg := &path.Segments[i]
		if d <= seg.CumEnd {
			t := (d - seg.CumStart) / seg.Length
			if t < 0 {
				t = 0
			}
			return seg.position(t), true
		}
	}
	last := &path.Segments[len(path.Segments)-1]
	return last.position(1), true
}

func (seg *Segment) position(t float64) Position {
	dir := seg.End - seg.Start
	ct := tangcut.Pair(complex(t, 0))
	cl := tangcut.Pair(complex(seg.Length, 0))
	return Position{
		Point:        seg.Start + dir*ct,
		Tangent:      dir / cl,
		Heading:      seg.Heading,
		HeadingDelta: seg.HeadingDelta,
	}
}
