package pdfpin

// Coordinate frames, never conflated:
//
//   - canonical: page points, bottom-left origin (the document's native space)
//   - user:      canonical re-expressed from the selected Origin corner; used
//     only for coordinate fields and exported label text
//   - view:      page points, top-left origin, unscaled; used for all
//     geometric placement decisions
//   - screen:    pixels, pan + scale * view
//
// The origin-conversion table lives here and only here; the live preview and
// the exporter both go through it so the two can never diverge.

// ToUserFrame converts a canonical point into the selected origin
// convention. While the page's dimensions are unknown the canonical value is
// returned unchanged, which keeps early conversions safe before the
// document's first full parse completes.
func ToUserFrame(p Point, origin Origin, dims PageDimensions) Point {
	if !dims.Known() {
		return p
	}
	switch origin {
	case OriginTopLeft:
		return Point{X: p.X, Y: dims.Height - p.Y}
	case OriginTopRight:
		return Point{X: dims.Width - p.X, Y: dims.Height - p.Y}
	case OriginBottomRight:
		return Point{X: dims.Width - p.X, Y: p.Y}
	default:
		return p
	}
}

// FromUserFrame converts a point expressed in the selected origin convention
// back to canonical coordinates. Every row of the conversion table is an
// involution, so the forward table is applied a second time.
func FromUserFrame(p Point, origin Origin, dims PageDimensions) Point {
	return ToUserFrame(p, origin, dims)
}

// CanonicalToView flips a canonical point into the top-left-origin view
// frame. An unknown page height degrades to the identity.
func CanonicalToView(p Point, pageHeight float64) Point {
	if pageHeight <= 0 {
		return p
	}
	return Point{X: p.X, Y: pageHeight - p.Y}
}

// ViewToCanonical is the inverse of CanonicalToView. The flip is its own
// inverse.
func ViewToCanonical(p Point, pageHeight float64) Point {
	return CanonicalToView(p, pageHeight)
}

// ToScreen maps a view-frame point to screen pixels.
func (v Viewport) ToScreen(p Point) Point {
	s := v.scale()
	return Point{X: v.Pan.X + s*p.X, Y: v.Pan.Y + s*p.Y}
}

// FromScreen maps screen pixels back to the view frame.
func (v Viewport) FromScreen(p Point) Point {
	s := v.scale()
	return Point{X: (p.X - v.Pan.X) / s, Y: (p.Y - v.Pan.Y) / s}
}

// DragDelta converts a screen-pixel movement into a canonical delta. Screen
// Y grows downward while canonical Y grows upward, so the Y component is
// negated after unscaling.
func (v Viewport) DragDelta(dxPx, dyPx float64) (dx, dy float64) {
	s := v.scale()
	return dxPx / s, -dyPx / s
}

func (v Viewport) scale() float64 {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}

// ScreenToCanonical resolves a pointer position to canonical coordinates:
// screen -> view -> canonical. This is the click-to-add path.
func ScreenToCanonical(p Point, v Viewport, pageHeight float64) Point {
	return ViewToCanonical(v.FromScreen(p), pageHeight)
}

// CanonicalToScreen is the render path: canonical -> view -> screen.
func CanonicalToScreen(p Point, v Viewport, pageHeight float64) Point {
	return v.ToScreen(CanonicalToView(p, pageHeight))
}
