package pdfpin

// Session is the thin interaction layer between pointer events and the
// engine. It owns the ephemeral view state (zoom, pan, selection) and
// translates screen pixels into store mutations; it holds no document data
// of its own.
type Session struct {
	store    *Store
	viewport Viewport
	selected string
}

// NewSession creates a session over a store, at 100% zoom with no pan.
func NewSession(store *Store) *Session {
	return &Session{
		store:    store,
		viewport: NewViewport(),
	}
}

// Store returns the underlying annotation store.
func (s *Session) Store() *Store {
	return s.store
}

// Viewport returns the current zoom and pan state.
func (s *Session) Viewport() Viewport {
	return s.viewport
}

// SetZoom changes the zoom factor. Non-positive values are ignored.
func (s *Session) SetZoom(scale float64) {
	if scale > 0 {
		s.viewport.Scale = scale
	}
}

// PanBy shifts the view by a pixel offset.
func (s *Session) PanBy(dxPx, dyPx float64) {
	s.viewport.Pan.X += dxPx
	s.viewport.Pan.Y += dyPx
}

// ClickAdd places a new annotation at a pointer position on the given page
// and selects it. The position travels screen -> view -> canonical.
func (s *Session) ClickAdd(pageIndex int, px, py float64) *Annotation {
	dims := s.store.PageDimensions(pageIndex)
	c := ScreenToCanonical(Point{X: px, Y: py}, s.viewport, dims.Height)
	a := s.store.Add(pageIndex, c.X, c.Y)
	s.selected = a.ID
	return a
}

// DragBy moves an annotation by a screen-pixel delta. Drag events arrive as
// a rapid stream; each application is last-write-wins and re-applying the
// same position is harmless. Unknown ids are a no-op.
func (s *Session) DragBy(id string, dxPx, dyPx float64) {
	a, ok := s.store.Get(id)
	if !ok {
		return
	}
	dx, dy := s.viewport.DragDelta(dxPx, dyPx)
	s.store.UpdateFromDrag(id, a.X+dx, a.Y+dy)
}

// Select marks an annotation as selected and reports whether it exists.
func (s *Session) Select(id string) bool {
	if _, ok := s.store.Get(id); !ok {
		return false
	}
	s.selected = id
	return true
}

// Selected returns the selected annotation id, or "" when nothing is
// selected.
func (s *Session) Selected() string {
	return s.selected
}

// Remove deletes an annotation, clearing the selection if it pointed at the
// removed mark.
func (s *Session) Remove(id string) bool {
	removed := s.store.Remove(id)
	if removed && s.selected == id {
		s.selected = ""
	}
	return removed
}

// ScreenPosition returns the pixel position of a marker, using the cached
// view-frame coordinates.
func (s *Session) ScreenPosition(a *Annotation) Point {
	return s.viewport.ToScreen(Point{X: a.DisplayX, Y: a.DisplayY})
}

// PreviewLabel computes the label box shown next to a marker in the live
// view, in canonical coordinates. The box size is estimated; the exporter
// measures the real text and may place a slightly different box.
func (s *Session) PreviewLabel(a *Annotation, cfg Config) (origin Point, w, h float64) {
	dims := s.store.PageDimensions(a.PageIndex)
	label := LabelText(a, s.store.Origin(), dims)
	w, h = EstimateLabelSize(label, cfg.FontSize, cfg.PadX, cfg.PadY)
	x, y := Place(a.X, a.Y, cfg.DotRadius, w, h, dims)
	return Point{X: x, Y: y}, w, h
}
