package raster

import "math"

// Dash splits polylines into alternating on/off runs according to the
// dash pattern. An empty pattern, a pattern with a negative entry, or
// one that sums to zero leaves the input untouched (solid stroke). An
// odd-length pattern repeats itself to even length, per SVG rules.
func Dash(polys []Polyline, pattern []float64, offset float64) []Polyline {
	if len(pattern) == 0 {
		return polys
	}
	total := 0.0
	for _, d := range pattern {
		if d < 0 || math.IsNaN(d) {
			return polys
		}
		total += d
	}
	if total <= 0 {
		return polys
	}
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64{}, pattern...), pattern...)
		total *= 2
	}

	// Normalize the starting phase into [0, total).
	phase := math.Mod(offset, total)
	if phase < 0 {
		phase += total
	}
	startIdx := 0
	for phase >= pattern[startIdx] {
		phase -= pattern[startIdx]
		startIdx = (startIdx + 1) % len(pattern)
	}

	var out []Polyline
	for _, poly := range polys {
		pts := poly.Points
		if poly.Closed && len(pts) >= 2 {
			pts = append(append([]Point{}, pts...), pts[0])
		}
		if len(pts) < 2 {
			continue
		}

		idx := startIdx
		remain := pattern[idx] - phase
		on := idx%2 == 0
		dashed := false
		var cur []Point
		if on {
			cur = append(cur, pts[0])
		}

		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			segLen := a.Distance(b)
			pos := 0.0
			for segLen-pos > remain {
				pos += remain
				split := a.Lerp(b, pos/segLen)
				if on {
					cur = append(cur, split)
					out = append(out, Polyline{Points: cur})
					cur = nil
				} else {
					cur = []Point{split}
				}
				on = !on
				dashed = true
				idx = (idx + 1) % len(pattern)
				remain = pattern[idx]
			}
			remain -= segLen - pos
			if on {
				cur = append(cur, b)
			}
		}
		if poly.Closed && !dashed && on {
			// The whole ring fell inside one on-run: keep it closed so
			// the seam gets a join rather than caps.
			out = append(out, Polyline{Points: poly.Points, Closed: true})
			continue
		}
		if len(cur) >= 2 {
			out = append(out, Polyline{Points: cur})
		}
	}
	return out
}
