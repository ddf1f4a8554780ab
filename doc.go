// Package rotary implements an interactive rotary telephone dial control
// for [Ebitengine].
//
// The control emulates a mechanical dial: the user grabs a numbered finger
// hole, winds the plate clockwise until it meets the finger stop, and
// releases. If the plate was wound far enough the grabbed digit is
// registered; either way the plate springs back to rest along an eased
// return animation, clicking past the holes on the way.
//
// # Quick start
//
// [Widget] wires everything to Ebitengine for you — input, rendering, and
// the per-frame update:
//
//	w, err := rotary.NewWidget(rotary.DefaultConfig(), rotary.DefaultTheme(), 400)
//	if err != nil {
//		log.Fatal(err)
//	}
//	w.Dial().OnDigit = func(d string) { fmt.Println("dialed", d) }
//
//	// inside your ebiten.Game:
//	func (g *Game) Update() error        { return g.w.Update() }
//	func (g *Game) Draw(s *ebiten.Image) { g.w.Draw(s) }
//
// # Core pieces
//
// [Dial] is the gesture state machine. It consumes pointer events in the
// control's local coordinates ([Dial.PointerDown], [Dial.PointerMove],
// [Dial.PointerUp]) and a per-frame [Dial.Update] call, and emits two
// callbacks: OnDigit when a wound digit is registered, and OnTick at
// roughly ten-degree intervals of travel for haptic or audio feedback.
// There is no global animation manager — callers drive Update themselves.
//
// The angular layout lives in pure functions ([DigitAngle], [MaxRotation],
// [RingArc], [HolePosition]) so a custom renderer can be built without the
// state machine, and vice versa.
//
// [AppendPrimitives] turns the live (rotation, active digit) pair plus a
// [Theme] into a flat list of draw primitives — circles, one arc, rounded
// rectangles, text runs — so any graphics layer can present the dial.
// [Widget] is the built-in Ebitengine presentation of that list.
//
// Behavioral tuning ([Config]) and presentation ([Theme]) are deliberately
// separate structs: the state machine never sees a color and the renderer
// never sees a threshold.
//
// [Ebitengine]: https://ebitengine.org
package rotary
