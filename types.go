package pdfpin

import "github.com/pkg/errors"

// Point represents a 2D position. Which coordinate frame it lives in
// (canonical, user, view or screen) is determined by the function that
// produced it; the frames are never mixed inside one value.
type Point struct {
	X, Y float64
}

// PageDimensions holds the size of a single page in PDF points.
type PageDimensions struct {
	Width  float64
	Height float64
}

// Known reports whether the page size has been populated. Conversions fall
// back to identity behavior while a document's dimensions are still unknown.
func (d PageDimensions) Known() bool {
	return d.Width > 0 && d.Height > 0
}

// Annotation is one user-placed mark on a page.
//
// X and Y are authoritative and use canonical page-point coordinates with a
// bottom-left origin, matching the document's native space. DisplayX and
// DisplayY cache the same position in the top-left-origin view frame; they
// are recomputed inside every canonical mutation and never written
// independently.
type Annotation struct {
	ID        string  // opaque, assigned at creation, immutable
	PageIndex int     // 1-based, immutable after creation
	X         float64 // canonical, bottom-left origin
	Y         float64
	DisplayX  float64 // view frame, top-left origin, unscaled
	DisplayY  float64
}

// Origin selects which page corner user-facing coordinates are measured
// from. It is a view preference only: stored coordinates stay canonical.
type Origin int

const (
	OriginBottomLeft Origin = iota // identity, equals canonical
	OriginTopLeft
	OriginTopRight
	OriginBottomRight
)

// String returns the flag/label spelling of the origin.
func (o Origin) String() string {
	switch o {
	case OriginTopLeft:
		return "top-left"
	case OriginTopRight:
		return "top-right"
	case OriginBottomRight:
		return "bottom-right"
	default:
		return "bottom-left"
	}
}

// ParseOrigin parses the spelling produced by String.
func ParseOrigin(s string) (Origin, error) {
	switch s {
	case "bottom-left":
		return OriginBottomLeft, nil
	case "top-left":
		return OriginTopLeft, nil
	case "top-right":
		return OriginTopRight, nil
	case "bottom-right":
		return OriginBottomRight, nil
	}
	return OriginBottomLeft, errors.Errorf("unknown origin %q", s)
}

// Viewport is the ephemeral zoom and pan state of the on-screen view. It
// affects pixel placement only and never touches canonical data.
type Viewport struct {
	Scale float64
	Pan   Point // pixel offset of the page's top-left corner
}

// NewViewport returns a viewport at 100% zoom with no pan.
func NewViewport() Viewport {
	return Viewport{Scale: 1}
}
