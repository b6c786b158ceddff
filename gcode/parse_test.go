package gcode

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/rotarytools/tangcut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identity keeps the parser tests readable: scale 1, no offsets, so a
// workspace point is the machine point with Y negated.
func identity() Config {
	cfg := DefaultConfig()
	return cfg
}

func TestParseCommentsOnly(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	text := "; just a note\n(another note)\n\n  ; indented\n"
	if got := Parse(text, identity()); len(got) != 0 {
		t.Errorf("expected no geometry, got %v", got)
	}
}

func TestParseModalCoordinates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	text := "G0 X1.000 Y2.000\nG1 X3.000\nG1 Y4.000\n"
	got := Parse(text, identity())
	require.Equal(t, 3, len(got))
	assert.True(t, got[0].Equal(tangcut.P(1, -2)))
	assert.True(t, got[1].Equal(tangcut.P(3, -2)))
	assert.True(t, got[2].Equal(tangcut.P(3, -4)))
}

func TestParseNoSampleBeforeBothAxesSeen(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	text := "G0 X5.000\nG0 X6.000\nG1 Y1.000\n"
	got := Parse(text, identity())
	require.Equal(t, 1, len(got))
	assert.True(t, got[0].Equal(tangcut.P(6, -1)))
}

func TestParseFieldOrderIrrelevant(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Parse("G1 X1.500 Y-2.500 F300\n", identity())
	b := Parse("G1 F300 Y-2.500 X1.500\n", identity())
	require.Equal(t, 1, len(a))
	require.Equal(t, 1, len(b))
	assert.Equal(t, a[0], b[0])
}

func TestParseMalformedTokenRetainsModal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	text := "G0 X1.000 Y1.000\nG1 Xoops Y2.000\n"
	got := Parse(text, identity())
	require.Equal(t, 2, len(got))
	assert.True(t, got[1].Equal(tangcut.P(1, -2)), "X must keep its modal value")
}

func TestParseInlineComments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// the parenthesized block contains field letters and must not leak
	text := "G0 X1.000 Y1.000 (move to X99 Y99)\nG1 X2.000 Y2.000 ; trailing X55\n"
	got := Parse(text, identity())
	require.Equal(t, 2, len(got))
	assert.True(t, got[0].Equal(tangcut.P(1, -1)))
	assert.True(t, got[1].Equal(tangcut.P(2, -2)))
}

func TestParseSkipsModeLines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	text := "G90\nG21\nG17\nG94\nM2\nG53\n"
	if got := Parse(text, identity()); len(got) != 0 {
		t.Errorf("mode lines must not contribute geometry, got %v", got)
	}
}

func TestParseBareCoordinateLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// a line without a move word but with explicit fields still counts
	got := Parse("X4.000 Y5.000\n", identity())
	require.Equal(t, 1, len(got))
	assert.True(t, got[0].Equal(tangcut.P(4, -5)))
}

func TestParseCollapsesRepeatedPosition(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// the plunge and retract lines re-assert the current position; they
	// must not duplicate samples
	text := "G0 X1.000 Y1.000\nG1 Z-1.000 F300.000\nG1 X2.000 Y1.000\nG0 Z5.000\n"
	got := Parse(text, identity())
	require.Equal(t, 2, len(got))
}

func TestParseOrientedHeadings(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	text := "G0 X0.000 Y0.000\nG1 X1.000 Y0.000 C45.000\nG1 X2.000 Y0.000\n"
	got := ParseOriented(text, identity())
	require.Equal(t, 3, len(got))
	assert.False(t, tangcut.HasHeading(got[0].Heading), "no C word seen yet")
	assert.InDelta(t, 45, got[1].Heading, 1e-9)
	assert.InDelta(t, 45, got[2].Heading, 1e-9, "C is modal")
}

func TestParseNeverPanics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	hostile := "G1 X Y\nX..\nG1 X1.2.3 Y--4\n(((\n)))\nG0X1Y2\n;;;;\nM2M2M2\n"
	assert.NotPanics(t, func() {
		Parse(hostile, identity())
		ParseOriented(hostile, identity())
	})
}
