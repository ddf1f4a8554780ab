package rotary

import (
	"math"
	"reflect"
	"strconv"
	"testing"
)

// Draw list layout: disc, channel arc, holes for digits 0-9, stop dot,
// labels for digits 0-9.
const (
	primDisc      = 0
	primArc       = 1
	primFirstHole = 2
	primDot       = 12
	primFirstText = 13
	primCount     = 23
)

func TestAppendPrimitivesCountAndOrder(t *testing.T) {
	prims := AppendPrimitives(nil, 0, noDigit, testSize, DefaultTheme())
	if len(prims) != primCount {
		t.Fatalf("len(prims) = %d, want %d", len(prims), primCount)
	}

	if prims[primDisc].Type != PrimitiveCircle {
		t.Errorf("prims[%d].Type = %v, want circle", primDisc, prims[primDisc].Type)
	}
	if prims[primArc].Type != PrimitiveArc {
		t.Errorf("prims[%d].Type = %v, want arc", primArc, prims[primArc].Type)
	}
	for i := 0; i < 10; i++ {
		if prims[primFirstHole+i].Type != PrimitiveRoundedRect {
			t.Errorf("prims[%d].Type = %v, want rounded rect", primFirstHole+i, prims[primFirstHole+i].Type)
		}
		if got := prims[primFirstText+i].Text; got != strconv.Itoa(i) {
			t.Errorf("prims[%d].Text = %q, want %q", primFirstText+i, got, strconv.Itoa(i))
		}
	}
	if prims[primDot].Type != PrimitiveCircle {
		t.Errorf("prims[%d].Type = %v, want circle", primDot, prims[primDot].Type)
	}
}

func TestAppendPrimitivesPure(t *testing.T) {
	a := AppendPrimitives(nil, 1.3, 5, testSize, DefaultTheme())
	b := AppendPrimitives(nil, 1.3, 5, testSize, DefaultTheme())
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different draw lists")
	}
}

func TestChannelArcRotatesWithPlate(t *testing.T) {
	theme := DefaultTheme()
	rest := AppendPrimitives(nil, 0, noDigit, testSize, theme)
	wound := AppendPrimitives(nil, 1.2, noDigit, testSize, theme)

	start, sweep := RingArc()
	assertNear(t, "rest arc start", rest[primArc].Start, start)
	assertNear(t, "wound arc start", wound[primArc].Start, start+1.2)
	assertNear(t, "sweep unchanged", wound[primArc].Sweep, sweep)
}

func TestHolesRotateAndDigitsStayFixed(t *testing.T) {
	theme := DefaultTheme()
	const rot = 0.8
	rest := AppendPrimitives(nil, 0, noDigit, testSize, theme)
	wound := AppendPrimitives(nil, rot, noDigit, testSize, theme)

	half := testSize / 2
	dist := theme.RingDistFactor * half
	for digit := 0; digit <= 9; digit++ {
		hole := wound[primFirstHole+digit]
		a := DigitAngle(digit) + rot
		assertNear(t, "hole X", hole.X, half+dist*math.Cos(a))
		assertNear(t, "hole Y", hole.Y, half+dist*math.Sin(a))
		assertNear(t, "hole orientation", hole.Rotation, a+math.Pi/2)

		// Labels are printed on the base plate and never move.
		assertNear(t, "text X", wound[primFirstText+digit].X, rest[primFirstText+digit].X)
		assertNear(t, "text Y", wound[primFirstText+digit].Y, rest[primFirstText+digit].Y)
	}
}

func TestStopDotFixed(t *testing.T) {
	theme := DefaultTheme()
	wound := AppendPrimitives(nil, 2.0, noDigit, testSize, theme)

	half := testSize / 2
	dist := theme.RingDistFactor * half
	assertNear(t, "dot X", wound[primDot].X, half+dist*math.Cos(DotAngle))
	assertNear(t, "dot Y", wound[primDot].Y, half+dist*math.Sin(DotAngle))
}

func TestActiveDigitHighlight(t *testing.T) {
	theme := DefaultTheme()
	prims := AppendPrimitives(nil, 0.5, 7, testSize, theme)

	for digit := 0; digit <= 9; digit++ {
		wantHole := theme.HoleColor
		wantText := theme.DigitColor
		if digit == 7 {
			wantHole = theme.ActiveHoleColor
			wantText = theme.ActiveDigitColor
		}
		if got := prims[primFirstHole+digit].Color; got != wantHole {
			t.Errorf("hole %d color = %v, want %v", digit, got, wantHole)
		}
		if got := prims[primFirstText+digit].Color; got != wantText {
			t.Errorf("text %d color = %v, want %v", digit, got, wantText)
		}
	}
}

func TestNoActiveDigitNoHighlight(t *testing.T) {
	theme := DefaultTheme()
	prims := AppendPrimitives(nil, 0, noDigit, testSize, theme)
	for digit := 0; digit <= 9; digit++ {
		if prims[primFirstHole+digit].Color != theme.HoleColor {
			t.Errorf("hole %d highlighted with no grab", digit)
		}
	}
}

func TestAppendPrimitivesReusesBuffer(t *testing.T) {
	buf := make([]Primitive, 0, 64)
	got := AppendPrimitives(buf, 0, noDigit, testSize, DefaultTheme())
	if len(got) != primCount || cap(got) != 64 {
		t.Errorf("len, cap = %d, %d; want %d, 64 (no reallocation)", len(got), cap(got), primCount)
	}
}

func TestDialAppendPrimitivesLiveState(t *testing.T) {
	d := newTestDial(t)
	grab(t, d, 5)
	wind(d, 5, 0.3)

	prims := d.AppendPrimitives(nil, DefaultTheme())
	start, _ := RingArc()
	assertNear(t, "arc follows dial rotation", prims[primArc].Start, start+d.Rotation())
	if prims[primFirstHole+5].Color != DefaultTheme().ActiveHoleColor {
		t.Error("grabbed hole not highlighted")
	}
}
