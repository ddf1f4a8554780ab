package rotary

import (
	"math"
	"strconv"

	"github.com/tanema/gween"
)

// noDigit marks activeDigit/pendingDigit as unset.
const noDigit = -1

// Dial is the rotary dial gesture state machine. It owns the live rotation,
// the grabbed digit, and the spring-back animation, and emits digits and
// ticks through callbacks. It performs no rendering — pair it with
// AppendPrimitives or Widget for that.
//
// Pointer coordinates are local to the control's square bounds, (0,0) at the
// top-left. Dial is single-threaded: feed it events and Update calls from
// one goroutine, typically the Ebitengine game loop.
type Dial struct {
	cfg  Config
	size float64 // rendered width == height

	state    DialState
	rotation float64
	active   int // grabbed digit, or noDigit
	pending  int // digit to register when the return completes, or noDigit

	lastAngle float64 // pointer angle at the previous sample
	lastTick  float64 // rotation at the last emitted tick

	ret *gween.Tween // live return animation, nil otherwise

	disposed bool

	// OnDigit fires once per completed wind-and-return cycle with the
	// registered digit as a single-character decimal string. Nil by
	// default; zero cost when unused.
	OnDigit func(digit string)

	// OnTick fires whenever the plate has rotated roughly TickAngle since
	// the previous tick, during both dragging and the return animation.
	// Advisory only — hook haptics or audio here, never block.
	OnTick func()
}

// NewDial creates a dial with the given tuning and rendered size (the
// control is square; size is its width and height in pixels). Returns an
// error if the configuration fails validation.
func NewDial(cfg Config, size float64) (*Dial, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Dial{
		cfg:     cfg,
		size:    size,
		active:  noDigit,
		pending: noDigit,
	}, nil
}

// State returns the current phase of the gesture machine.
func (d *Dial) State() DialState {
	return d.state
}

// Rotation returns the plate's current clockwise rotation in radians.
func (d *Dial) Rotation() float64 {
	return d.rotation
}

// ActiveDigit returns the grabbed digit, and whether one is grabbed.
func (d *Dial) ActiveDigit() (int, bool) {
	return d.active, d.active != noDigit
}

// Size returns the control's rendered width (== height).
func (d *Dial) Size() float64 {
	return d.size
}

// SetSize updates the control's rendered size. Safe to call between frames;
// the annulus bounds scale with it.
func (d *Dial) SetSize(size float64) {
	d.size = size
}

// Config returns the dial's behavioral tuning.
func (d *Dial) Config() Config {
	return d.cfg
}

// --- Pointer events ---

// PointerDown starts a gesture at the local position (x, y). Ignored while
// the return animation is in flight, while another grab is active, outside
// the gesture annulus, or after disposal.
//
// The digit whose rest angle (plus current rotation) lies within TouchAngle
// of the pointer is grabbed. Digits are scanned 0 first, then 1-9, so when
// tolerance windows overlap, 0 wins ties. This scan order is deliberate and
// relied upon — keep it stable.
func (d *Dial) PointerDown(x, y float64) {
	if d.disposed || d.state != StateIdle {
		return
	}
	angle, dist, ok := d.pointerPolar(x, y)
	if !ok {
		return
	}
	half := d.size / 2
	if dist < d.cfg.GestureMinRadius*half || dist > d.cfg.GestureMaxRadius*half {
		return
	}

	d.lastAngle = angle
	d.lastTick = d.rotation

	for digit := 0; digit <= 9; digit++ {
		rest := DigitAngle(digit) + d.rotation
		if math.Abs(AngularDifference(angle, rest)) <= d.cfg.TouchAngle {
			d.active = digit
			d.state = StateDragging
			return
		}
	}
	// No hole under the pointer: the gesture is tracked idly but cannot
	// wind the plate.
}

// PointerMove advances the drag to the local position (x, y). A no-op
// unless a digit is grabbed. Moving outside the cancel annulus abandons the
// gesture as if released with no acceptance. Counter-clockwise motion
// contributes nothing — the plate only winds forward — but the sample is
// still recorded so transient backward motion does not accumulate.
func (d *Dial) PointerMove(x, y float64) {
	if d.disposed || d.state != StateDragging {
		return
	}
	angle, dist, ok := d.pointerPolar(x, y)
	if !ok {
		return
	}
	half := d.size / 2
	if dist < d.cfg.CancelMinRadius*half || dist > d.cfg.CancelMaxRadius*half {
		d.PointerCancel()
		return
	}

	delta := AngularDifference(angle, d.lastAngle)
	if delta > 0 {
		limit := MaxRotation(d.active)
		d.rotation = math.Min(d.rotation+delta, limit)
		if math.Abs(d.rotation-d.lastTick) >= d.cfg.TickAngle {
			d.lastTick = d.rotation
			d.emitTick()
		}
	}
	d.lastAngle = angle
}

// PointerUp ends the gesture. If the plate is wound past AcceptFraction of
// the grabbed digit's travel, that digit becomes pending and registers when
// the return animation completes. A no-op unless a digit is grabbed.
func (d *Dial) PointerUp() {
	if d.disposed || d.state != StateDragging {
		return
	}
	if d.rotation >= d.cfg.AcceptFraction*MaxRotation(d.active) {
		d.pending = d.active
	} else {
		d.pending = noDigit
	}
	d.active = noDigit
	d.startReturn()
}

// PointerCancel abandons the gesture with no acceptance, springing the
// plate back without registering anything. A no-op unless a digit is
// grabbed.
func (d *Dial) PointerCancel() {
	if d.disposed || d.state != StateDragging {
		return
	}
	d.pending = noDigit
	d.active = noDigit
	d.startReturn()
}

// --- Return animation ---

// Update advances the return animation by dt seconds. Call once per frame;
// a no-op outside the Returning state or after disposal. Ticks fire on the
// way down at the same angular interval as during dragging, and the pending
// digit (if any) registers exactly once when the plate reaches rest.
func (d *Dial) Update(dt float32) {
	if d.disposed || d.state != StateReturning || d.ret == nil {
		return
	}
	value, finished := d.ret.Update(dt)
	d.rotation = float64(value)
	if math.Abs(d.rotation-d.lastTick) >= d.cfg.TickAngle {
		d.lastTick = d.rotation
		d.emitTick()
	}
	if finished {
		d.ret = nil
		d.rotation = 0
		d.state = StateIdle
		d.register()
	}
}

// startReturn begins the spring-back, or registers immediately when the
// plate is already at rest.
func (d *Dial) startReturn() {
	if d.rotation == 0 {
		d.state = StateIdle
		d.register()
		return
	}
	d.ret = gween.New(float32(d.rotation), 0, d.returnDuration(d.rotation), d.cfg.easing())
	d.state = StateReturning
}

// returnDuration computes the spring-back duration in seconds for the given
// released rotation. The fraction is measured against the "0" travel — the
// longest possible wind — regardless of which digit was grabbed, so equal
// rotations always return at equal speed.
func (d *Dial) returnDuration(rotation float64) float32 {
	fraction := float32(rotation / MaxRotation(0))
	dur := d.cfg.ReturnBase + fraction*d.cfg.ReturnExtra
	if dur < d.cfg.ReturnMin {
		dur = d.cfg.ReturnMin
	}
	if dur > d.cfg.ReturnMax {
		dur = d.cfg.ReturnMax
	}
	return dur
}

// register emits the pending digit, if any. The pending slot is cleared
// before the callback runs so a handler can immediately start a new drag.
func (d *Dial) register() {
	d.lastTick = 0
	if d.pending == noDigit {
		return
	}
	digit := d.pending
	d.pending = noDigit
	if d.OnDigit != nil {
		d.OnDigit(strconv.Itoa(digit))
	}
}

func (d *Dial) emitTick() {
	if d.OnTick != nil {
		d.OnTick()
	}
}

// --- Lifecycle ---

// Dispose tears the dial down. Any in-flight animation is dropped and no
// callback fires afterward; all further operations are no-ops.
func (d *Dial) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.ret = nil
	d.state = StateIdle
	d.rotation = 0
	d.active = noDigit
	d.pending = noDigit
	d.OnDigit = nil
	d.OnTick = nil
}

// IsDisposed returns true if this dial has been disposed.
func (d *Dial) IsDisposed() bool {
	return d.disposed
}

// --- Helpers ---

// pointerPolar converts a local pointer position to (angle, distance) polar
// coordinates around the dial center. Reports false for a degenerate sample
// exactly at the center, where the angle is undefined.
func (d *Dial) pointerPolar(x, y float64) (angle, dist float64, ok bool) {
	cx := d.size / 2
	cy := d.size / 2
	dx := x - cx
	dy := y - cy
	dist = math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, false
	}
	return math.Atan2(dy, dx), dist, true
}
