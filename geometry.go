package rotary

import "math"

// Angular layout of the dial plate. Angles are in radians in Ebitengine's
// screen coordinate system: 0 points right (3 o'clock) and positive angles
// rotate clockwise, because Y increases downward.
const (
	// StopAngle is the reference angle of the finger stop.
	StopAngle = 0.0
	// FirstDigitGap is the angular distance from the stop to the "1" hole,
	// counter-clockwise. It is wider than the hole-to-hole spacing so the
	// stop channel has room.
	FirstDigitGap = math.Pi / 3.3
	// DigitSpacing is the angular distance between adjacent holes.
	DigitSpacing = math.Pi / 6
	// DotAngle is the angle of the stop dot, where a fully wound hole
	// comes to rest.
	DotAngle = 0.105
)

// DigitAngle returns the rest angle of a digit's finger hole in the plate's
// local (unrotated) frame. The "1" hole sits closest to the stop and each
// following digit one DigitSpacing further counter-clockwise, with "0" last
// behind the FirstDigitGap. All rest angles are negative and strictly
// decreasing in that order.
//
// Panics if digit is outside 0..9.
func DigitAngle(digit int) float64 {
	index := digitIndex(digit)
	return StopAngle - (FirstDigitGap + float64(index)*DigitSpacing)
}

// MaxRotation returns the angular travel from a digit's rest angle to the
// stop dot — the farthest the plate can wind while that digit is grabbed.
// Always positive; largest for "0", smallest for "1".
//
// Panics if digit is outside 0..9.
func MaxRotation(digit int) float64 {
	return DotAngle - DigitAngle(digit)
}

// NormalizeAngle wraps an angle into the canonical range (-π, π].
// Idempotent and branch-free via the two-argument arctangent.
func NormalizeAngle(a float64) float64 {
	return math.Atan2(math.Sin(a), math.Cos(a))
}

// AngularDifference returns the signed shortest rotation from b to a,
// in (-π, π]. Positive means a is clockwise of b.
func AngularDifference(a, b float64) float64 {
	return NormalizeAngle(a - b)
}

// RingArc returns the start angle and sweep of the plate's open channel:
// the long clockwise arc from the "0" hole to the "1" hole that passes
// every hole in clockwise order. Start is in [0, 2π), sweep is positive.
// The renderer rotates the start by the live rotation value.
func RingArc() (start, sweep float64) {
	start = mod2Pi(DigitAngle(0))
	end := mod2Pi(DigitAngle(1))
	sweep = mod2Pi(end - start)
	return start, sweep
}

// HolePosition returns the center of a digit's finger hole in the plate's
// local frame, at the given radial distance from the dial center.
//
// Panics if digit is outside 0..9.
func HolePosition(digit int, dist float64) Vec2 {
	a := DigitAngle(digit)
	return Vec2{X: dist * math.Cos(a), Y: dist * math.Sin(a)}
}

// HoleRotation returns the orientation of a digit's hole: the hole is a
// rounded rectangle standing radially, so it is rotated a quarter turn past
// its rest angle.
//
// Panics if digit is outside 0..9.
func HoleRotation(digit int) float64 {
	return DigitAngle(digit) + math.Pi/2
}

// digitIndex maps a digit to its layout index: "1" through "9" occupy
// indices 0-8 and "0" takes index 9, matching the physical plate order.
func digitIndex(digit int) int {
	if digit < 0 || digit > 9 {
		panic("rotary: digit out of range 0..9")
	}
	if digit == 0 {
		return 9
	}
	return digit - 1
}

// mod2Pi wraps an angle into [0, 2π).
func mod2Pi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
