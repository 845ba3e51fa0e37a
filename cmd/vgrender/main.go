// Command vgrender renders SVG path data to a PNG file.
package main

import (
	"flag"
	"log"
	"strconv"
	"strings"

	"github.com/govg/vg"
)

func main() {
	var (
		data      = flag.String("d", "M20,20 L180,20 L180,180 Q100,120 20,180 Z", "SVG path data")
		transform = flag.String("transform", "", "SVG transform list applied to the path")
		width     = flag.Float64("width", 200, "canvas width")
		height    = flag.Float64("height", 200, "canvas height")
		fill      = flag.String("fill", "336699ff", "fill color as RRGGBBAA hex, empty to skip")
		stroke    = flag.String("stroke", "", "stroke color as RRGGBBAA hex, empty to skip")
		lineWidth = flag.Float64("line-width", 2, "stroke width")
		evenOdd   = flag.Bool("even-odd", false, "fill with the even-odd rule")
		output    = flag.String("o", "out.png", "output file")
	)
	flag.Parse()

	var path vg.Path
	if !path.Parse(*data) {
		log.Fatalf("invalid path data: %q", *data)
	}

	t := vg.Identity
	if *transform != "" && !t.Parse(*transform) {
		log.Fatalf("invalid transform: %q", *transform)
	}

	canvas := vg.NewCanvas(0, 0, *width, *height)

	if *fill != "" {
		rule := vg.FillRuleNonZero
		if *evenOdd {
			rule = vg.FillRuleEvenOdd
		}
		canvas.SetColor(parseColor(*fill))
		canvas.FillPath(&path, rule, t)
	}
	if *stroke != "" {
		strokeData := vg.DefaultStrokeData()
		strokeData.LineWidth = *lineWidth
		canvas.SetColor(parseColor(*stroke))
		canvas.StrokePath(&path, strokeData, t)
	}

	bitmap := vg.NewBitmap(canvas.Width(), canvas.Height())
	target := vg.NewCanvasForBitmap(bitmap)
	target.BlendCanvas(canvas, vg.BlendModeSrcOver, 1)

	if err := bitmap.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Rendered to %s (%dx%d)\n", *output, canvas.Width(), canvas.Height())
}

// parseColor reads an RRGGBB or RRGGBBAA hex string.
func parseColor(s string) vg.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		log.Fatalf("invalid color: %q", s)
	}
	return vg.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
}
