package gcode

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rotarytools/tangcut"
)

// Field and move-word patterns. A field is a letter immediately followed
// by a signed decimal number; field order on a line does not matter, each
// field is found by an independent match.
var (
	moveRe  = regexp.MustCompile(`(?i)\bG0*[01]\b`)
	xRe     = regexp.MustCompile(`(?i)X([-+]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))`)
	yRe     = regexp.MustCompile(`(?i)Y([-+]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))`)
	cRe     = regexp.MustCompile(`(?i)C([-+]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))`)
	parenRe = regexp.MustCompile(`\([^)]*\)`)
)

// Parse recovers the ordered workspace point sequence from motion-code
// text. It is tolerant of comments, unknown words, missing fields and
// malformed numbers; text containing no geometry parses to an empty slice.
func Parse(text string, cfg Config) []tangcut.Pair {
	scanned := scan(text)
	points := make([]tangcut.Pair, len(scanned))
	for i, s := range scanned {
		points[i] = cfg.FromMachine(s.Point)
	}
	return points
}

// ParseOriented is like Parse but additionally carries the modal C word as
// the heading of each sample. Samples before the first C word carry
// tangcut.NoHeading().
func ParseOriented(text string, cfg Config) []tangcut.Sample {
	scanned := scan(text)
	for i := range scanned {
		scanned[i].Point = cfg.FromMachine(scanned[i].Point)
	}
	return scanned
}

// parseMachine keeps the raw machine-frame coordinates, which is what
// Orient re-emits.
func parseMachine(text string) []tangcut.Pair {
	scanned := scan(text)
	points := make([]tangcut.Pair, len(scanned))
	for i, s := range scanned {
		points[i] = s.Point
	}
	return points
}

// scan walks the document line by line, tracking X, Y and C as modal
// last-value-wins state. A sample is emitted for every motion line once
// both X and Y have been seen at least once; consecutive samples that
// change nothing are suppressed. A malformed numeric token never aborts
// the scan — the previous modal value is simply retained.
func scan(text string) []tangcut.Sample {
	x, y, c := math.NaN(), math.NaN(), math.NaN()
	var samples []tangcut.Sample
	for _, raw := range strings.Split(text, "\n") {
		line := stripComments(raw)
		if strings.TrimSpace(line) == "" {
			continue
		}
		isMove := moveRe.MatchString(line)
		hasX := scanField(xRe, line, &x)
		hasY := scanField(yRe, line, &y)
		scanField(cRe, line, &c)
		if !isMove && !hasX && !hasY {
			continue
		}
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		s := tangcut.Sample{Point: tangcut.P(x, y), Heading: c}
		if n := len(samples); n > 0 && samples[n-1].Point == s.Point &&
			sameHeading(samples[n-1].Heading, s.Heading) {
			continue
		}
		samples = append(samples, s)
	}
	tracer().Debugf("scanned %d samples", len(samples))
	return samples
}

// scanField updates the modal value when the line carries a well-formed
// field, and reports whether the field letter produced a usable number.
func scanField(re *regexp.Regexp, line string, modal *float64) bool {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return false
	}
	*modal = v
	return true
}

func sameHeading(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// stripComments removes a trailing `;` line comment and any parenthesized
// inline comment blocks.
func stripComments(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	return parenRe.ReplaceAllString(line, "")
}
