package rotary

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	circleSegments = 48 // perimeter samples for a filled disc
	arcSegments    = 64 // strip samples for the plate channel
	cornerSegments = 4  // samples per rounded-rect corner arc
)

// whitePixel is a shared 1x1 white image; untextured primitives sample its
// center and take their color from the vertices.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(Color{1, 1, 1, 1}.toRGBA())
	}
	return whitePixel
}

// Widget binds a Dial to Ebitengine: it reads mouse and first-touch input,
// drives the per-frame update, and draws the dial's primitive list as
// triangle meshes. Only one pointer is tracked at a time; extra touches are
// ignored while one is active.
//
// Set X and Y to place the control on screen; input is translated into the
// dial's local coordinates automatically. Set Face to render digit labels;
// without one the labels are skipped.
type Widget struct {
	// X, Y is the control's top-left corner on the destination image.
	X, Y float64

	// Face renders the digit labels. Optional. Size it to roughly
	// Theme.DigitSizeFactor times the dial's half-width.
	Face text.Face

	dial  *Dial
	theme Theme

	down     bool
	touchIDs []ebiten.TouchID

	// Reused per-frame buffers.
	prims []Primitive
	verts []ebiten.Vertex
	inds  []uint16
	pts   []Vec2
}

// NewWidget creates a widget with its own Dial of the given tuning and
// size. Returns the Config validation error, if any.
func NewWidget(cfg Config, theme Theme, size float64) (*Widget, error) {
	d, err := NewDial(cfg, size)
	if err != nil {
		return nil, err
	}
	return &Widget{dial: d, theme: theme}, nil
}

// Dial returns the underlying gesture state machine. Attach OnDigit and
// OnTick callbacks here.
func (w *Widget) Dial() *Dial {
	return w.dial
}

// Theme returns a pointer to the widget's theme so callers can mutate
// fields directly between frames.
func (w *Widget) Theme() *Theme {
	return &w.theme
}

// Dispose tears down the widget and its dial. No callback fires afterward.
func (w *Widget) Dispose() {
	w.dial.Dispose()
	w.Face = nil
}

// Update reads pointer input, feeds the dial, and advances the return
// animation by one frame. Call from your game's Update. Always returns nil;
// the error result matches the ebiten.Game contract for convenience.
func (w *Widget) Update() error {
	if w.dial.IsDisposed() {
		return nil
	}

	px, py, pressed := w.readPointer()
	lx, ly := px-w.X, py-w.Y

	switch {
	case pressed && !w.down:
		w.down = true
		w.dial.PointerDown(lx, ly)
	case pressed && w.down:
		w.dial.PointerMove(lx, ly)
	case !pressed && w.down:
		w.down = false
		w.dial.PointerUp()
	}

	w.dial.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// readPointer returns the active pointer position and whether it is down.
// The first touch wins over the mouse.
func (w *Widget) readPointer() (x, y float64, pressed bool) {
	w.touchIDs = ebiten.AppendTouchIDs(w.touchIDs[:0])
	if len(w.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(w.touchIDs[0])
		return float64(tx), float64(ty), true
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Draw renders the dial onto dst. Mesh primitives are accumulated into a
// single DrawTriangles call; digit labels follow on top when a Face is set.
func (w *Widget) Draw(dst *ebiten.Image) {
	if w.dial.IsDisposed() {
		return
	}

	w.prims = w.dial.AppendPrimitives(w.prims[:0], w.theme)
	w.verts = w.verts[:0]
	w.inds = w.inds[:0]

	for _, p := range w.prims {
		switch p.Type {
		case PrimitiveCircle:
			w.pts = circlePoints(w.pts[:0], p.X+w.X, p.Y+w.Y, p.Radius, circleSegments)
			w.appendFan(w.pts, p.Color)
		case PrimitiveArc:
			w.appendArcStrip(p)
		case PrimitiveRoundedRect:
			w.pts = roundedRectPoints(w.pts[:0], p.X+w.X, p.Y+w.Y, p.Width, p.Height, p.Corner, p.Rotation)
			w.appendFan(w.pts, p.Color)
		}
	}

	if len(w.inds) > 0 {
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		dst.DrawTriangles(w.verts, w.inds, ensureWhitePixel(), op)
	}

	if w.Face == nil {
		return
	}
	for _, p := range w.prims {
		if p.Type != PrimitiveText {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(p.X+w.X, p.Y+w.Y)
		op.ColorScale.Scale(
			float32(p.Color.R*p.Color.A), float32(p.Color.G*p.Color.A),
			float32(p.Color.B*p.Color.A), float32(p.Color.A))
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(dst, p.Text, w.Face, op)
	}
}

// --- Tessellation ---

// appendFan fan-triangulates a convex outline into the widget's vertex and
// index buffers. N points yield N vertices and 3*(N-2) indices.
func (w *Widget) appendFan(pts []Vec2, c Color) {
	n := len(pts)
	if n < 3 {
		return
	}
	base := uint16(len(w.verts))
	cr, cg, cb, ca := premultiply(c)
	for _, p := range pts {
		w.verts = append(w.verts, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	for i := 0; i < n-2; i++ {
		w.inds = append(w.inds, base, base+uint16(i+1), base+uint16(i+2))
	}
}

// appendArcStrip builds the plate channel as a two-vertex-per-sample ribbon
// along the arc's centerline, two triangles per segment.
func (w *Widget) appendArcStrip(p Primitive) {
	inner := p.Radius - p.StrokeWidth/2
	outer := p.Radius + p.StrokeWidth/2
	if inner < 0 {
		inner = 0
	}
	cx, cy := p.X+w.X, p.Y+w.Y

	base := uint16(len(w.verts))
	cr, cg, cb, ca := premultiply(p.Color)
	for i := 0; i <= arcSegments; i++ {
		a := p.Start + p.Sweep*float64(i)/float64(arcSegments)
		cos, sin := math.Cos(a), math.Sin(a)
		w.verts = append(w.verts,
			ebiten.Vertex{
				DstX: float32(cx + inner*cos), DstY: float32(cy + inner*sin),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
			ebiten.Vertex{
				DstX: float32(cx + outer*cos), DstY: float32(cy + outer*sin),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
		)
	}
	for i := 0; i < arcSegments; i++ {
		v := base + uint16(i*2)
		w.inds = append(w.inds,
			v, v+1, v+2,
			v+1, v+3, v+2,
		)
	}
}

// premultiply converts a Color to premultiplied float32 vertex components.
func premultiply(c Color) (r, g, b, a float32) {
	return float32(c.R * c.A), float32(c.G * c.A), float32(c.B * c.A), float32(c.A)
}

// circlePoints appends a circle's perimeter samples to buf, clockwise.
func circlePoints(buf []Vec2, cx, cy, r float64, segments int) []Vec2 {
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		buf = append(buf, Vec2{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return buf
}

// roundedRectPoints appends the outline of a rounded rectangle centered at
// (cx, cy), rotated about its center, to buf. The corner radius is clamped
// to half the smaller extent.
func roundedRectPoints(buf []Vec2, cx, cy, width, height, corner, rotation float64) []Vec2 {
	hw, hh := width/2, height/2
	if corner > hw {
		corner = hw
	}
	if corner > hh {
		corner = hh
	}

	// Corner arc centers and their start angles, walking clockwise in
	// screen coordinates from the bottom-right corner.
	corners := [4]struct {
		x, y, start float64
	}{
		{hw - corner, hh - corner, 0},
		{-(hw - corner), hh - corner, math.Pi / 2},
		{-(hw - corner), -(hh - corner), math.Pi},
		{hw - corner, -(hh - corner), 3 * math.Pi / 2},
	}

	sin, cos := math.Sin(rotation), math.Cos(rotation)
	for _, c := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := c.start + (math.Pi/2)*float64(i)/float64(cornerSegments)
			lx := c.x + corner*math.Cos(a)
			ly := c.y + corner*math.Sin(a)
			buf = append(buf, Vec2{
				X: cx + lx*cos - ly*sin,
				Y: cy + lx*sin + ly*cos,
			})
		}
	}
	return buf
}
