package pdfpin

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// yOrderTolerance groups points whose canonical Y values are within this
// many page points into the same visual row for ordering purposes.
const yOrderTolerance = 2.0

// Store is the in-memory collection of annotations for the loaded document.
// All mutations happen synchronously on the event-processing goroutine;
// there is no locking and no history, the last write wins.
type Store struct {
	annotations []*Annotation
	index       map[string]*Annotation
	pages       map[int]PageDimensions
	origin      Origin
}

// NewStore creates an empty annotation store using the bottom-left origin
// convention.
func NewStore() *Store {
	return &Store{
		index: make(map[string]*Annotation),
		pages: make(map[int]PageDimensions),
	}
}

// SetPageDimensions registers the size of one page. Until a page's size is
// known, conversions involving it degrade to identity behavior.
func (s *Store) SetPageDimensions(pageIndex int, dims PageDimensions) {
	s.pages[pageIndex] = dims
}

// SetDocumentPages registers the sizes of every page of a freshly parsed
// document. Index 0 of dims holds page 1.
func (s *Store) SetDocumentPages(dims []PageDimensions) {
	for i, d := range dims {
		s.pages[i+1] = d
	}
}

// PageDimensions returns the registered size of a page, or a zero value for
// pages whose size is still unknown.
func (s *Store) PageDimensions(pageIndex int) PageDimensions {
	return s.pages[pageIndex]
}

// SetOrigin switches the origin convention used for user-frame edits and
// label text. Stored coordinates are unaffected.
func (s *Store) SetOrigin(o Origin) {
	s.origin = o
}

// Origin returns the active origin convention.
func (s *Store) Origin() Origin {
	return s.origin
}

// Add creates an annotation at a canonical position already resolved by the
// caller from a click. The click is bounded by the rendered page, so the
// position is not clamped. A fresh opaque id is assigned.
func (s *Store) Add(pageIndex int, x, y float64) *Annotation {
	a := &Annotation{
		ID:        uuid.NewString(),
		PageIndex: pageIndex,
		X:         x,
		Y:         y,
	}
	s.refreshDisplay(a)
	s.annotations = append(s.annotations, a)
	s.index[a.ID] = a
	return a
}

// Get looks up an annotation by id.
func (s *Store) Get(id string) (*Annotation, bool) {
	a, ok := s.index[id]
	return a, ok
}

// Len returns the number of annotations.
func (s *Store) Len() int {
	return len(s.annotations)
}

// UpdateFromDrag moves an annotation to a new canonical position, clamping
// each component independently to the page bounds. Unknown ids are a no-op:
// a drag can outlive a deletion and that is not an error.
func (s *Store) UpdateFromDrag(id string, x, y float64) {
	a, ok := s.index[id]
	if !ok {
		return
	}
	if dims := s.pages[a.PageIndex]; dims.Known() {
		x = clamp(x, 0, dims.Width)
		y = clamp(y, 0, dims.Height)
	}
	a.X, a.Y = x, y
	s.refreshDisplay(a)
}

// UpdateFromUserFrame applies a coordinate-field edit. The supplied
// components are expressed in the active origin convention; a nil component
// leaves that axis untouched. Field edits are trusted and not clamped.
func (s *Store) UpdateFromUserFrame(id string, x, y *float64) {
	a, ok := s.index[id]
	if !ok {
		return
	}
	dims := s.pages[a.PageIndex]
	u := ToUserFrame(Point{X: a.X, Y: a.Y}, s.origin, dims)
	if x != nil {
		u.X = *x
	}
	if y != nil {
		u.Y = *y
	}
	c := FromUserFrame(u, s.origin, dims)
	a.X, a.Y = c.X, c.Y
	s.refreshDisplay(a)
}

// Remove deletes an annotation and reports whether it existed. Collaborators
// holding a selection that points at the removed id must react themselves.
func (s *Store) Remove(id string) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	for i, a := range s.annotations {
		if a.ID == id {
			s.annotations = append(s.annotations[:i], s.annotations[i+1:]...)
			break
		}
	}
	return true
}

// All returns the annotations in insertion order.
func (s *Store) All() []*Annotation {
	out := make([]*Annotation, len(s.annotations))
	copy(out, s.annotations)
	return out
}

// Ordered returns the annotations in visual reading order: pages ascending,
// then rows top to bottom. Points whose canonical Y differs by no more than
// the tolerance form one row and order left to right within it.
func (s *Store) Ordered() []*Annotation {
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.PageIndex != b.PageIndex {
			return a.PageIndex < b.PageIndex
		}
		if math.Abs(a.Y-b.Y) > yOrderTolerance {
			return a.Y > b.Y
		}
		return a.X < b.X
	})
	return out
}

// refreshDisplay re-derives the cached view-frame position from the
// canonical one. Every canonical mutation funnels through here so the cache
// cannot drift.
func (s *Store) refreshDisplay(a *Annotation) {
	v := CanonicalToView(Point{X: a.X, Y: a.Y}, s.pages[a.PageIndex].Height)
	a.DisplayX, a.DisplayY = v.X, v.Y
}
