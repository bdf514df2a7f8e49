package pdfpin

import (
	"bytes"
	"io"
	"math"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"github.com/pkg/errors"
)

// ErrExportFailed is the single failure an export surfaces. Parse and draw
// problems are deliberately not distinguished; no partial output is ever
// returned.
var ErrExportFailed = errors.New("export failed")

// exportEpoch pins the document dates so exporting the same input twice
// yields byte-identical output.
var exportEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Color is an opaque RGB fill color with 8-bit components.
type Color struct {
	R, G, B int
}

// Config controls how exported marks are drawn.
type Config struct {
	// DotRadius is the marker disc radius in page points (default: 3)
	DotRadius float64

	// CornerRadius is the label box corner rounding in points (default: 3)
	CornerRadius float64

	// FontSize is the label font size in points (default: 8)
	FontSize float64

	// PadX and PadY pad the measured text inside the label box (default: 4, 3)
	PadX float64
	PadY float64

	// DotColor, BoxColor and TextColor style the mark (default: red dot,
	// near-black box, white text)
	DotColor  Color
	BoxColor  Color
	TextColor Color
}

// DefaultConfig returns the default export styling.
func DefaultConfig() Config {
	return Config{
		DotRadius:    3,
		CornerRadius: 3,
		FontSize:     8,
		PadX:         4,
		PadY:         3,
		DotColor:     Color{R: 220, G: 38, B: 38},
		BoxColor:     Color{R: 38, G: 38, B: 38},
		TextColor:    Color{R: 255, G: 255, B: 255},
	}
}

// Exporter bakes annotations into a copy of the source document as permanent
// vector content. The page sizes come from the same one-time parse that
// feeds the store, so exported geometry matches the preview's.
type Exporter struct {
	pages  []PageDimensions
	config Config
}

// NewExporter creates an exporter for a document whose page sizes are
// already known. Index 0 of pages holds page 1.
func NewExporter(pages []PageDimensions, config Config) *Exporter {
	return &Exporter{pages: pages, config: config}
}

// Export copies every source page into a new document and draws each
// annotation on its page: a filled dot, a rounded label box placed by the
// flip rule, and the coordinate text in the given origin convention. The
// source bytes are never modified. Annotations pointing past the last page
// are skipped. Any parse or draw failure surfaces as ErrExportFailed with
// no partial output.
func (e *Exporter) Export(source []byte, annotations []*Annotation, origin Origin) (out []byte, err error) {
	// The page importer panics on malformed input rather than returning an
	// error; fold that into the one generic failure.
	defer func() {
		if recover() != nil {
			out, err = nil, ErrExportFailed
		}
	}()

	if len(e.pages) == 0 {
		return nil, ErrExportFailed
	}

	byPage := make(map[int][]*Annotation)
	for _, a := range annotations {
		byPage[a.PageIndex] = append(byPage[a.PageIndex], a)
	}

	pdf := fpdf.New("P", "pt", "", "")
	pdf.SetCreationDate(exportEpoch)
	pdf.SetModificationDate(exportEpoch)
	pdf.SetFont("Helvetica", "", e.config.FontSize)
	pdf.SetAutoPageBreak(false, 0)

	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(source))

	for i, dims := range e.pages {
		pageNum := i + 1
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: dims.Width, Ht: dims.Height})

		tpl := importer.ImportPageFromStream(pdf, &rs, pageNum, "/MediaBox")
		importer.UseImportedTemplate(pdf, tpl, 0, 0, dims.Width, 0)

		for _, a := range byPage[pageNum] {
			e.drawMark(pdf, a, dims, origin)
		}
	}

	if pdf.Err() {
		return nil, ErrExportFailed
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, ErrExportFailed
	}
	return buf.Bytes(), nil
}

// drawMark draws one annotation onto the current page. fpdf draws in a
// top-left-origin frame, so canonical positions pass through the shared
// view conversion first.
func (e *Exporter) drawMark(pdf *fpdf.Fpdf, a *Annotation, dims PageDimensions, origin Origin) {
	cfg := e.config

	dot := CanonicalToView(Point{X: a.X, Y: a.Y}, dims.Height)
	pdf.SetFillColor(cfg.DotColor.R, cfg.DotColor.G, cfg.DotColor.B)
	pdf.Circle(dot.X, dot.Y, cfg.DotRadius, "F")

	label := LabelText(a, origin, dims)
	boxW := pdf.GetStringWidth(label) + 2*cfg.PadX
	boxH := cfg.FontSize + 2*cfg.PadY

	boxX, boxY := Place(a.X, a.Y, cfg.DotRadius, boxW, boxH, dims)
	boxTop := CanonicalToView(Point{X: boxX, Y: boxY + boxH}, dims.Height).Y

	drawRoundedBox(pdf, boxX, boxTop, boxW, boxH, cfg.CornerRadius, cfg.BoxColor)

	pdf.SetTextColor(cfg.TextColor.R, cfg.TextColor.G, cfg.TextColor.B)
	// Baseline sits just below the box center so cap-height text reads as
	// vertically centered.
	baseline := boxTop + boxH/2 + cfg.FontSize*0.35
	pdf.Text(boxX+cfg.PadX, baseline, label)
}

// drawRoundedBox fills a rounded rectangle built from two overlapping plain
// rectangles plus four corner discs. The bands and discs share one fill, so
// the approximation shows no seams.
func drawRoundedBox(pdf *fpdf.Fpdf, x, yTop, w, h, corner float64, fill Color) {
	r := clamp(corner, 0, math.Min(w, h)/2)

	pdf.SetFillColor(fill.R, fill.G, fill.B)
	// Horizontal band: full height, inset by the corner radius on each side.
	pdf.Rect(x+r, yTop, w-2*r, h, "F")
	// Vertical band: full width, inset top and bottom.
	pdf.Rect(x, yTop+r, w, h-2*r, "F")
	// Corner discs.
	pdf.Circle(x+r, yTop+r, r, "F")
	pdf.Circle(x+w-r, yTop+r, r, "F")
	pdf.Circle(x+r, yTop+h-r, r, "F")
	pdf.Circle(x+w-r, yTop+h-r, r, "F")
}
