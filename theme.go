package rotary

// Theme holds the purely cosmetic parameters of the dial: colors and the
// size factors of each visual part. All factors are fractions of the dial's
// half-width, so a theme scales with the control. Behavior tuning lives in
// Config — the state machine never reads a Theme.
type Theme struct {
	FaceColor        Color // base disc
	PlateColor       Color // rotating finger plate channel
	HoleColor        Color // finger holes
	ActiveHoleColor  Color // the grabbed hole
	DotColor         Color // finger stop dot
	DigitColor       Color // printed digits
	ActiveDigitColor Color // the grabbed digit's label

	RingDistFactor   float64 // radial distance of the hole/channel centerline
	ChannelFactor    float64 // stroke width of the plate channel
	HoleWidthFactor  float64 // hole rounded-rect width (tangential)
	HoleHeightFactor float64 // hole rounded-rect height (radial)
	HoleCornerFactor float64 // hole corner radius
	DotRadiusFactor  float64 // stop dot radius
	DigitSizeFactor  float64 // digit label em size
}

// DefaultTheme returns a dark plate over a brass face, loosely after the
// classic desk telephone.
func DefaultTheme() Theme {
	return Theme{
		FaceColor:        Color{R: 0.72, G: 0.58, B: 0.31, A: 1},
		PlateColor:       Color{R: 0.13, G: 0.13, B: 0.15, A: 1},
		HoleColor:        Color{R: 0.92, G: 0.9, B: 0.85, A: 1},
		ActiveHoleColor:  Color{R: 1, G: 0.78, B: 0.35, A: 1},
		DotColor:         Color{R: 0.92, G: 0.9, B: 0.85, A: 1},
		DigitColor:       Color{R: 0.1, G: 0.1, B: 0.1, A: 1},
		ActiveDigitColor: Color{R: 0.55, G: 0.25, B: 0.05, A: 1},

		RingDistFactor:   0.72,
		ChannelFactor:    0.34,
		HoleWidthFactor:  0.2,
		HoleHeightFactor: 0.26,
		HoleCornerFactor: 0.1,
		DotRadiusFactor:  0.05,
		DigitSizeFactor:  0.18,
	}
}
