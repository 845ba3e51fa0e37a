package vg

import (
	"github.com/tdewolff/parse/v2/strconv"
)

// Parse parses an SVG transform list: a sequence of translate, scale,
// rotate, skewX, skewY and matrix functions composed left to right.
// It reports whether parsing succeeded; on failure the receiver keeps
// its prior value.
func (t *Transform) Parse(data string) bool {
	s := []byte(data)
	result := Identity

	i := skipTransformWS(s, 0)
	for i < len(s) {
		start := i
		for i < len(s) && isTransformAlpha(s[i]) {
			i++
		}
		name := string(s[start:i])
		i = skipTransformWS(s, i)
		if i >= len(s) || s[i] != '(' {
			return false
		}
		i++

		var args [6]float64
		n := 0
		for {
			i = skipTransformSep(s, i)
			if i >= len(s) {
				return false
			}
			if s[i] == ')' {
				i++
				break
			}
			if n == len(args) {
				return false
			}
			v, read := strconv.ParseFloat(s[i:])
			if read == 0 {
				return false
			}
			args[n] = v
			n++
			i += read
		}

		var op Transform
		switch name {
		case "matrix":
			if n != 6 {
				return false
			}
			op = Transform{A: args[0], B: args[1], C: args[2], D: args[3], E: args[4], F: args[5]}
		case "translate":
			switch n {
			case 1:
				op = Translated(args[0], 0)
			case 2:
				op = Translated(args[0], args[1])
			default:
				return false
			}
		case "scale":
			switch n {
			case 1:
				op = Scaled(args[0], args[0])
			case 2:
				op = Scaled(args[0], args[1])
			default:
				return false
			}
		case "rotate":
			switch n {
			case 1:
				op = Rotated(args[0])
			case 3:
				op = RotatedAround(args[0], args[1], args[2])
			default:
				return false
			}
		case "skewX":
			if n != 1 {
				return false
			}
			op = Sheared(args[0], 0)
		case "skewY":
			if n != 1 {
				return false
			}
			op = Sheared(0, args[0])
		default:
			return false
		}
		result.Multiply(op)

		i = skipTransformSep(s, i)
	}

	*t = result
	return true
}

func isTransformAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func skipTransformWS(s []byte, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\f') {
		i++
	}
	return i
}

// skipTransformSep skips whitespace with at most one comma.
func skipTransformSep(s []byte, i int) int {
	i = skipTransformWS(s, i)
	if i < len(s) && s[i] == ',' {
		i = skipTransformWS(s, i+1)
	}
	return i
}
