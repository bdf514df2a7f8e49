package pdfpin

import (
	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pkg/errors"
)

// ReadPageDimensions parses the source document once and returns the size of
// every page in PDF points. Index 0 holds page 1. Until this has run,
// user-frame conversions for the document degrade to identity behavior.
func ReadPageDimensions(instance pdfium.Pdfium, pdfBytes []byte) ([]PageDimensions, error) {
	doc, err := instance.OpenDocument(&requests.OpenDocument{
		File: &pdfBytes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	pageCount, err := instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page count")
	}

	dims := make([]PageDimensions, 0, pageCount.PageCount)
	for i := 0; i < pageCount.PageCount; i++ {
		d, err := readPageSize(instance, doc.Document, i)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read size of page %d", i+1)
		}
		dims = append(dims, d)
	}

	return dims, nil
}

func readPageSize(instance pdfium.Pdfium, doc references.FPDF_DOCUMENT, index int) (PageDimensions, error) {
	pageResp, err := instance.FPDF_LoadPage(&requests.FPDF_LoadPage{
		Document: doc,
		Index:    index,
	})
	if err != nil {
		return PageDimensions{}, errors.Wrap(err, "failed to load page")
	}
	defer instance.FPDF_ClosePage(&requests.FPDF_ClosePage{
		Page: pageResp.Page,
	})

	width, err := instance.FPDF_GetPageWidthF(&requests.FPDF_GetPageWidthF{
		Page: requests.Page{
			ByReference: &pageResp.Page,
		},
	})
	if err != nil {
		return PageDimensions{}, errors.Wrap(err, "failed to get page width")
	}

	height, err := instance.FPDF_GetPageHeightF(&requests.FPDF_GetPageHeightF{
		Page: requests.Page{
			ByReference: &pageResp.Page,
		},
	})
	if err != nil {
		return PageDimensions{}, errors.Wrap(err, "failed to get page height")
	}

	return PageDimensions{
		Width:  float64(width.PageWidth),
		Height: float64(height.PageHeight),
	}, nil
}
