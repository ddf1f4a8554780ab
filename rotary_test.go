package rotary

import "testing"

func TestDialStateString(t *testing.T) {
	tests := []struct {
		state DialState
		want  string
	}{
		{StateIdle, "idle"},
		{StateDragging, "dragging"},
		{StateReturning, "returning"},
		{DialState(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("DialState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestColorToRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if c.R != 127 || c.A != 127 {
		t.Errorf("toRGBA premultiplied = %v, want R=127 A=127", c)
	}

	// Out-of-range components clamp instead of wrapping.
	over := Color{R: 2, G: -1, B: 0, A: 1}.toRGBA()
	if over.R != 255 || over.G != 0 {
		t.Errorf("toRGBA clamped = %v, want R=255 G=0", over)
	}
}
