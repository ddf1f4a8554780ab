package rotary

import (
	"math"
	"strconv"
)

// PrimitiveType distinguishes the draw primitives a dial renders to.
type PrimitiveType uint8

const (
	PrimitiveCircle      PrimitiveType = iota // filled circle
	PrimitiveArc                              // stroked circular arc
	PrimitiveRoundedRect                      // filled rounded rectangle, rotated about its center
	PrimitiveText                             // centered text run
)

// Primitive is one entry of the dial's draw list. Only the fields relevant
// to its Type are meaningful. X and Y are the primitive's center in the
// control's local coordinates.
type Primitive struct {
	Type PrimitiveType
	X, Y float64

	Radius       float64 // PrimitiveCircle radius; PrimitiveArc centerline radius
	Start, Sweep float64 // PrimitiveArc angles, clockwise sweep
	StrokeWidth  float64 // PrimitiveArc stroke thickness

	Width, Height float64 // PrimitiveRoundedRect extents
	Corner        float64 // PrimitiveRoundedRect corner radius
	Rotation      float64 // PrimitiveRoundedRect orientation

	Text string  // PrimitiveText content
	Size float64 // PrimitiveText em size

	Color Color
}

// AppendPrimitives appends the dial's draw list for the given live state to
// buf and returns the extended slice. Pure: the same (rotation, activeDigit,
// size, theme) always yields the same list, so any graphics layer can
// consume it. Pass a negative activeDigit when no hole is grabbed.
//
// The list is in paint order: base disc, plate channel arc, finger holes,
// stop dot, digit labels. Holes and the channel rotate with the plate;
// digits and the dot are fixed to the base.
func AppendPrimitives(buf []Primitive, rotation float64, activeDigit int, size float64, t Theme) []Primitive {
	half := size / 2
	cx, cy := half, half
	ringDist := t.RingDistFactor * half

	// Base disc.
	buf = append(buf, Primitive{
		Type: PrimitiveCircle, X: cx, Y: cy,
		Radius: half,
		Color:  t.FaceColor,
	})

	// Plate channel: the long arc from the "0" hole to the "1" hole,
	// rotated as a rigid body with the plate.
	start, sweep := RingArc()
	buf = append(buf, Primitive{
		Type: PrimitiveArc, X: cx, Y: cy,
		Radius:      ringDist,
		Start:       start + rotation,
		Sweep:       sweep,
		StrokeWidth: t.ChannelFactor * half,
		Color:       t.PlateColor,
	})

	// Finger holes, laid out in the plate's local frame and rotated with it.
	for digit := 0; digit <= 9; digit++ {
		angle := DigitAngle(digit) + rotation
		c := t.HoleColor
		if digit == activeDigit {
			c = t.ActiveHoleColor
		}
		buf = append(buf, Primitive{
			Type:     PrimitiveRoundedRect,
			X:        cx + ringDist*math.Cos(angle),
			Y:        cy + ringDist*math.Sin(angle),
			Width:    t.HoleWidthFactor * half,
			Height:   t.HoleHeightFactor * half,
			Corner:   t.HoleCornerFactor * half,
			Rotation: angle + math.Pi/2,
			Color:    c,
		})
	}

	// Stop dot, fixed to the base.
	buf = append(buf, Primitive{
		Type:   PrimitiveCircle,
		X:      cx + ringDist*math.Cos(DotAngle),
		Y:      cy + ringDist*math.Sin(DotAngle),
		Radius: t.DotRadiusFactor * half,
		Color:  t.DotColor,
	})

	// Digit labels, fixed to the base beneath the holes' rest positions.
	for digit := 0; digit <= 9; digit++ {
		angle := DigitAngle(digit)
		c := t.DigitColor
		if digit == activeDigit {
			c = t.ActiveDigitColor
		}
		buf = append(buf, Primitive{
			Type:  PrimitiveText,
			X:     cx + ringDist*math.Cos(angle),
			Y:     cy + ringDist*math.Sin(angle),
			Text:  strconv.Itoa(digit),
			Size:  t.DigitSizeFactor * half,
			Color: c,
		})
	}

	return buf
}

// AppendPrimitives appends the draw list for the dial's live state,
// reusing buf's backing array when possible.
func (d *Dial) AppendPrimitives(buf []Primitive, t Theme) []Primitive {
	return AppendPrimitives(buf, d.rotation, d.active, d.size, t)
}
