package rotary

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Config holds the behavioral tuning of a Dial. It contains no cosmetic
// parameters — see Theme for those. The zero value is not usable; start
// from DefaultConfig and override fields as needed. NewDial validates the
// result and rejects out-of-range values up front, so bad tuning surfaces
// at construction time rather than mid-gesture.
type Config struct {
	// TouchAngle is the angular tolerance, in radians, for matching a
	// pointer-down to a digit hole. Values above half of DigitSpacing make
	// adjacent windows overlap; ties go to the lowest digit in scan order
	// (0 first, then 1-9).
	TouchAngle float64

	// GestureMinRadius and GestureMaxRadius bound the annulus, as fractions
	// of the dial's half-width, inside which a pointer-down can grab a hole.
	GestureMinRadius float64
	GestureMaxRadius float64

	// CancelMinRadius and CancelMaxRadius bound a wider annulus for pointer
	// moves. Leaving it while dragging cancels the gesture.
	CancelMinRadius float64
	CancelMaxRadius float64

	// TickAngle is how far, in radians, the plate must rotate since the
	// last tick before OnTick fires again. Roughly one tick per hole.
	TickAngle float64

	// AcceptFraction is the fraction of the grabbed digit's maximum travel
	// the plate must be wound past at release for the digit to register.
	AcceptFraction float64

	// Return animation timing, in seconds. Duration is
	// ReturnBase + travelFraction*ReturnExtra, clamped to
	// [ReturnMin, ReturnMax], where travelFraction measures the released
	// rotation against the full "0" travel.
	ReturnBase  float32
	ReturnExtra float32
	ReturnMin   float32
	ReturnMax   float32

	// Easing shapes the return animation. Defaults to ease.OutCubic.
	Easing ease.TweenFunc
}

// DefaultConfig returns the documented default tuning.
func DefaultConfig() Config {
	return Config{
		TouchAngle:       0.22,
		GestureMinRadius: 0.5,
		GestureMaxRadius: 0.95,
		CancelMinRadius:  0.3,
		CancelMaxRadius:  1.2,
		TickAngle:        0.17,
		AcceptFraction:   0.85,
		ReturnBase:       0.25,
		ReturnExtra:      0.65,
		ReturnMin:        0.25,
		ReturnMax:        0.9,
		Easing:           ease.OutCubic,
	}
}

// Validate reports the first out-of-range tuning value, or nil if the
// configuration is usable. A nil Easing is allowed and falls back to
// ease.OutCubic.
func (c Config) Validate() error {
	if c.TouchAngle <= 0 {
		return fmt.Errorf("rotary: TouchAngle must be positive, got %v", c.TouchAngle)
	}
	if c.GestureMinRadius <= 0 || c.GestureMaxRadius <= c.GestureMinRadius {
		return fmt.Errorf("rotary: gesture annulus [%v, %v] must satisfy 0 < min < max",
			c.GestureMinRadius, c.GestureMaxRadius)
	}
	if c.CancelMinRadius <= 0 || c.CancelMaxRadius <= c.CancelMinRadius {
		return fmt.Errorf("rotary: cancel annulus [%v, %v] must satisfy 0 < min < max",
			c.CancelMinRadius, c.CancelMaxRadius)
	}
	if c.TickAngle <= 0 {
		return fmt.Errorf("rotary: TickAngle must be positive, got %v", c.TickAngle)
	}
	if c.AcceptFraction <= 0 || c.AcceptFraction > 1 {
		return fmt.Errorf("rotary: AcceptFraction must be in (0, 1], got %v", c.AcceptFraction)
	}
	if c.ReturnBase < 0 || c.ReturnExtra < 0 {
		return fmt.Errorf("rotary: return durations must be non-negative, got base %v extra %v",
			c.ReturnBase, c.ReturnExtra)
	}
	if c.ReturnMin < 0 || c.ReturnMax < c.ReturnMin {
		return fmt.Errorf("rotary: return clamp [%v, %v] must satisfy 0 <= min <= max",
			c.ReturnMin, c.ReturnMax)
	}
	return nil
}

// easing returns the configured easing function, falling back to OutCubic.
func (c Config) easing() ease.TweenFunc {
	if c.Easing == nil {
		return ease.OutCubic
	}
	return c.Easing
}
