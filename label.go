package pdfpin

import "fmt"

// Place computes the canonical bottom-left corner of a marker's label box.
//
// The default anchor puts the box's bottom-left corner at the dot's
// top-right extent, growing up and to the right. Each axis then flips
// independently when the box would overflow that page edge, and the decision
// is made exactly once: a flipped box may still overflow the opposite edge
// on pages smaller than twice the box size.
func Place(x, y, r, boxW, boxH float64, dims PageDimensions) (boxX, boxY float64) {
	boxX = x + r
	boxY = y + r
	if boxX+boxW > dims.Width {
		boxX = x - r - boxW
	}
	if boxY+boxH > dims.Height {
		boxY = y - r - boxH
	}
	return boxX, boxY
}

// LabelText formats the coordinate label for a marker in the active origin
// convention, with both components rounded to whole points. The preview and
// the exporter share this one formatter.
func LabelText(a *Annotation, origin Origin, dims PageDimensions) string {
	u := ToUserFrame(Point{X: a.X, Y: a.Y}, origin, dims)
	return fmt.Sprintf("x:%d, y:%d", roundCoord(u.X), roundCoord(u.Y))
}

// EstimateLabelSize approximates the label box for the live preview, where
// no text metrics are available. The exporter measures the real string
// width, so preview and exported boxes can disagree slightly; that
// discrepancy is accepted rather than papered over.
func EstimateLabelSize(label string, fontSize, padX, padY float64) (w, h float64) {
	const avgAdvance = 0.5 // rough Helvetica average, fraction of font size
	w = float64(len(label))*fontSize*avgAdvance + 2*padX
	h = fontSize + 2*padY
	return w, h
}
