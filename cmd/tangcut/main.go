// Command tangcut converts control-point paths into motion-code programs
// for a rotary-knife machine, and back.
//
// Control points are read as a JSON array of [x,y] pairs in workspace
// coordinates (Y-down). Example:
//
//	tangcut -mode oriented -in shape.json -scale 0.1 > shape.ngc
//	tangcut -mode parse -in shape.ngc
//	tangcut -mode generate -in shape.json -port /dev/ttyUSB0
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rotarytools/tangcut"
	"github.com/rotarytools/tangcut/gcode"
	"github.com/rotarytools/tangcut/heading"
	"github.com/rotarytools/tangcut/machine"
	"github.com/rotarytools/tangcut/spline"
)

func main() {
	mode := flag.String("mode", "generate", "generate | oriented | orient | parse")
	inPath := flag.String("in", "", "input file (default: stdin)")
	outPath := flag.String("out", "", "output file (default: stdout)")
	resolution := flag.Int("resolution", 10, "spline samples per control-point segment")
	scale := flag.Float64("scale", 1.0, "workspace units per machine unit")
	safeZ := flag.Float64("safez", 5.0, "safe Z height")
	cutZ := flag.Float64("cutz", -1.0, "cut depth (negative)")
	feed := flag.Float64("feed", 300.0, "cutting feed rate (units/min)")
	rapid := flag.Float64("rapid", 1200.0, "travel feed rate (units/min)")
	unit := flag.String("unit", "mm", "machine unit: mm | inch")
	angleMode := flag.String("anglemode", "0-360", "heading fold range: 0-360 | -180-180")
	angleOffset := flag.Float64("angleoffset", 0.0, "degrees added to every heading")
	shortest := flag.Bool("shortest", true, "keep headings on the shortest rotation path")
	toolX := flag.Float64("tooloffsetx", 0.0, "tool X offset in machine units")
	toolY := flag.Float64("tooloffsety", 0.0, "tool Y offset in machine units")
	port := flag.String("port", "", "serial device to stream the program to")
	baud := flag.Int("baud", 115200, "serial baud rate")
	flag.Parse()

	cfg := gcode.DefaultConfig()
	cfg.Scale = *scale
	cfg.SafeHeight = *safeZ
	cfg.CutDepth = *cutZ
	cfg.FeedRate = *feed
	cfg.RapidRate = *rapid
	cfg.ToolOffsetX = *toolX
	cfg.ToolOffsetY = *toolY
	cfg.Angle = heading.Config{Offset: *angleOffset, ShortestPath: *shortest}
	switch *unit {
	case "mm":
		cfg.Unit = gcode.Millimeters
	case "inch", "in":
		cfg.Unit = gcode.Inches
	default:
		fail("unknown unit %q", *unit)
	}
	switch *angleMode {
	case "0-360":
		cfg.Angle.Mode = heading.Full
	case "-180-180":
		cfg.Angle.Mode = heading.Signed
	default:
		fail("unknown angle mode %q", *angleMode)
	}

	input, err := readInput(*inPath)
	if err != nil {
		fail("reading input: %v", err)
	}

	var output string
	switch *mode {
	case "generate", "oriented":
		points, err := decodePoints(input)
		if err != nil {
			fail("decoding control points: %v", err)
		}
		if len(points) == 0 {
			fail("no control points found")
		}
		samples := spline.Sample(points, *resolution)
		if *mode == "generate" {
			output = gcode.Generate(samples, cfg)
		} else {
			output = gcode.GenerateOriented(samples, cfg)
		}
	case "orient":
		output = gcode.Orient(string(input), cfg)
		if output == "" {
			fail("no geometry found in program")
		}
	case "parse":
		points := gcode.Parse(string(input), cfg)
		if len(points) == 0 {
			fail("no geometry found in program")
		}
		output = encodePoints(points)
	default:
		fail("unknown mode %q", *mode)
	}

	if err := writeOutput(*outPath, output); err != nil {
		fail("writing output: %v", err)
	}

	if *port != "" && *mode != "parse" {
		portCfg := machine.DefaultPortConfig(*port)
		portCfg.Baud = *baud
		p, err := machine.OpenPort(portCfg)
		if err != nil {
			fail("%v", err)
		}
		defer p.Close()
		sent, err := machine.Send(context.Background(), p, output)
		if err != nil {
			fail("after %d lines: %v", sent, err)
		}
		fmt.Fprintf(os.Stderr, "%d lines acknowledged\n", sent)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path, text string) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.WriteString(text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}

func decodePoints(data []byte) ([]tangcut.Pair, error) {
	var raw [][2]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	points := make([]tangcut.Pair, len(raw))
	for i, xy := range raw {
		points[i] = tangcut.P(xy[0], xy[1])
	}
	return points, nil
}

func encodePoints(points []tangcut.Pair) string {
	raw := make([][2]float64, len(points))
	for i, p := range points {
		raw[i] = [2]float64{p.X(), p.Y()}
	}
	data, _ := json.MarshalIndent(raw, "", "  ")
	return string(data) + "\n"
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
