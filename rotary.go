package rotary

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when vertices are built for submission.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// DialState identifies the current phase of the gesture state machine.
type DialState uint8

const (
	StateIdle      DialState = iota // at rest, no grab, rotation is zero
	StateDragging                   // a digit is grabbed and tracking the pointer
	StateReturning                  // released, animating back to rest
)

// String returns the state name for debugging and test output.
func (s DialState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateReturning:
		return "returning"
	default:
		return "unknown"
	}
}
