package vg

// SpreadMethod defines gradient behavior beyond the stop range.
type SpreadMethod uint8

const (
	SpreadMethodPad SpreadMethod = iota
	SpreadMethodReflect
	SpreadMethodRepeat
)

// GradientStop is one gradient color stop. Offsets live in [0, 1] and
// are non-decreasing by convention; samplers sort defensively.
type GradientStop struct {
	Offset float64
	Color  Color
}

// GradientStops is an ordered sequence of gradient stops.
type GradientStops []GradientStop
