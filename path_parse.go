package vg

import (
	"github.com/tdewolff/parse/v2/strconv"
)

// Parse replaces the path with the result of parsing SVG path data.
// The path is reset before parsing, so on malformed input Parse
// reports false and leaves the path empty, never partially built.
func (p *Path) Parse(data string) bool {
	p.Reset()
	if parsePathData(p, []byte(data)) {
		return true
	}
	p.Reset()
	return false
}

// argCounts maps a path-data command letter to its argument count.
var argCounts = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

func parsePathData(p *Path, s []byte) bool {
	var cur, start Point
	var prevCtrl Point // last cubic or quadratic control point
	var cmd, prevCmd byte
	args := make([]float64, 0, 7)

	i := skipPathWS(s, 0)
	for i < len(s) {
		c := s[i]
		if isPathLetter(c) {
			cmd = c
			i++
		} else {
			// A number repeats the previous command; moves repeat as
			// lines, and Z cannot repeat implicitly.
			switch cmd {
			case 0, 'Z', 'z':
				return false
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			}
		}

		upper := cmd &^ 0x20
		if prevCmd == 0 && upper != 'M' {
			return false
		}
		n, ok := argCounts[upper]
		if !ok {
			return false
		}
		relative := cmd >= 'a'

		args = args[:0]
		for j := 0; j < n; j++ {
			i = skipPathSep(s, i)
			if upper == 'A' && (j == 3 || j == 4) {
				// Arc flags are single characters and need no separator.
				if i >= len(s) || (s[i] != '0' && s[i] != '1') {
					return false
				}
				args = append(args, float64(s[i]-'0'))
				i++
				continue
			}
			v, read := strconv.ParseFloat(s[i:])
			if read == 0 {
				return false
			}
			args = append(args, v)
			i += read
		}

		switch upper {
		case 'M':
			pt := Point{X: args[0], Y: args[1]}
			if relative {
				pt.X += cur.X
				pt.Y += cur.Y
			}
			p.MoveTo(pt.X, pt.Y)
			cur, start = pt, pt
		case 'L':
			pt := Point{X: args[0], Y: args[1]}
			if relative {
				pt.X += cur.X
				pt.Y += cur.Y
			}
			p.LineTo(pt.X, pt.Y)
			cur = pt
		case 'H':
			x := args[0]
			if relative {
				x += cur.X
			}
			p.LineTo(x, cur.Y)
			cur.X = x
		case 'V':
			y := args[0]
			if relative {
				y += cur.Y
			}
			p.LineTo(cur.X, y)
			cur.Y = y
		case 'C':
			c1 := Point{X: args[0], Y: args[1]}
			c2 := Point{X: args[2], Y: args[3]}
			end := Point{X: args[4], Y: args[5]}
			if relative {
				c1.X += cur.X
				c1.Y += cur.Y
				c2.X += cur.X
				c2.Y += cur.Y
				end.X += cur.X
				end.Y += cur.Y
			}
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			prevCtrl = c2
			cur = end
		case 'S':
			c2 := Point{X: args[0], Y: args[1]}
			end := Point{X: args[2], Y: args[3]}
			if relative {
				c2.X += cur.X
				c2.Y += cur.Y
				end.X += cur.X
				end.Y += cur.Y
			}
			c1 := cur
			if prevIsCubic(prevCmd) {
				c1 = reflect(prevCtrl, cur)
			}
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			prevCtrl = c2
			cur = end
		case 'Q':
			ctrl := Point{X: args[0], Y: args[1]}
			end := Point{X: args[2], Y: args[3]}
			if relative {
				ctrl.X += cur.X
				ctrl.Y += cur.Y
				end.X += cur.X
				end.Y += cur.Y
			}
			p.QuadTo(ctrl.X, ctrl.Y, end.X, end.Y)
			prevCtrl = ctrl
			cur = end
		case 'T':
			end := Point{X: args[0], Y: args[1]}
			if relative {
				end.X += cur.X
				end.Y += cur.Y
			}
			ctrl := cur
			if prevIsQuad(prevCmd) {
				ctrl = reflect(prevCtrl, cur)
			}
			p.QuadTo(ctrl.X, ctrl.Y, end.X, end.Y)
			prevCtrl = ctrl
			cur = end
		case 'A':
			end := Point{X: args[5], Y: args[6]}
			if relative {
				end.X += cur.X
				end.Y += cur.Y
			}
			p.ArcTo(args[0], args[1], args[2], args[3] == 1, args[4] == 1, end.X, end.Y)
			cur = end
		case 'Z':
			p.Close()
			cur = start
		}

		prevCmd = cmd
		i = skipPathWS(s, i)
	}
	return true
}

// reflect mirrors a control point about the current point.
func reflect(ctrl, cur Point) Point {
	return Point{X: 2*cur.X - ctrl.X, Y: 2*cur.Y - ctrl.Y}
}

func prevIsCubic(cmd byte) bool {
	return cmd == 'C' || cmd == 'c' || cmd == 'S' || cmd == 's'
}

func prevIsQuad(cmd byte) bool {
	return cmd == 'Q' || cmd == 'q' || cmd == 'T' || cmd == 't'
}

func isPathLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func skipPathWS(s []byte, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\f') {
		i++
	}
	return i
}

// skipPathSep skips whitespace with at most one comma.
func skipPathSep(s []byte, i int) int {
	i = skipPathWS(s, i)
	if i < len(s) && s[i] == ',' {
		i = skipPathWS(s, i+1)
	}
	return i
}
