// Package pdf is the print surface: it renders a layout.PageDescription
// onto a portrait A4 document at true 1:1 scale. The on-screen scaler has
// no effect here, and the layout engine guarantees the content fits one
// page, so no pagination logic exists.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"fatura-backend/apperr"
	"fatura-backend/layout"
)

const (
	lineHeight  = 5.5
	logoHeight  = 35.0
	headerGap   = 14.0
	sectionGap  = 10.0
	cellPadding = 2.0
)

// Render produces the PDF bytes for a page description.
func Render(page layout.PageDescription) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(page.MarginMM, page.MarginMM, page.MarginMM)
	doc.SetAutoPageBreak(false, page.MarginMM)
	doc.AddPage()

	w := &writer{
		doc:     doc,
		tr:      doc.UnicodeTranslatorFromDescriptor(""),
		page:    page,
		content: page.WidthMM - 2*page.MarginMM,
	}
	w.header()
	w.parties()
	w.table()
	w.totals()
	w.signatures()
	w.footer()

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, apperr.Wrap(apperr.Collaborator, "could not produce the PDF", err)
	}
	return buf.Bytes(), nil
}

type writer struct {
	doc     *gofpdf.Fpdf
	tr      func(string) string
	page    layout.PageDescription
	content float64
}

func (w *writer) header() {
	h := w.page.Header
	top := w.doc.GetY()

	if h.LogoDataURL != "" {
		w.drawLogo(h.LogoDataURL, top)
	} else {
		w.doc.SetFont("Helvetica", "B", 22)
		w.doc.SetTextColor(17, 24, 39)
		w.doc.MultiCell(w.content/2, 9, w.tr(h.Heading), "", "L", false)
	}

	// Right side: title plus meta lines.
	right := w.page.MarginMM + w.content/2
	w.doc.SetXY(right, top)
	w.doc.SetFont("Helvetica", "", 24)
	w.doc.SetTextColor(209, 213, 219)
	w.doc.CellFormat(w.content/2, 10, w.tr(strings.ToUpper(h.Title)), "", 2, "R", false, 0, "")

	w.doc.SetFont("Helvetica", "", 10)
	y := w.doc.GetY() + 2
	for _, m := range h.Meta {
		w.doc.SetXY(right, y)
		w.doc.SetTextColor(107, 114, 128)
		w.doc.CellFormat(w.content/4, lineHeight, w.tr(m.Label), "", 0, "R", false, 0, "")
		w.doc.SetTextColor(31, 41, 55)
		w.doc.CellFormat(w.content/4, lineHeight, w.tr(m.Value), "", 0, "R", false, 0, "")
		y += lineHeight
	}

	bottom := y
	if h.LogoDataURL != "" && top+logoHeight > bottom {
		bottom = top + logoHeight
	}
	w.doc.SetXY(w.page.MarginMM, bottom+headerGap)
}

func (w *writer) drawLogo(dataURL string, top float64) {
	raw, imgType, err := decodeDataURL(dataURL)
	if err != nil {
		// A malformed stored logo must not break printing; leave the
		// space blank instead.
		return
	}
	name := "invoice-logo"
	opts := gofpdf.ImageOptions{ImageType: imgType, ReadDpi: false}
	w.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
	// Height-bounded, width auto to preserve aspect ratio.
	w.doc.ImageOptions(name, w.page.MarginMM, top, 0, logoHeight, false, opts, 0, "")
}

func (w *writer) parties() {
	half := w.content / 2
	left := w.page.MarginMM
	right := left + half
	top := w.doc.GetY()

	leftBottom := w.party(w.page.Sender, left, top, half-4, "L")
	rightBottom := w.party(w.page.Receiver, right, top, half, "R")

	bottom := leftBottom
	if rightBottom > bottom {
		bottom = rightBottom
	}
	w.doc.SetXY(left, bottom+sectionGap)
}

func (w *writer) party(b layout.PartyBlock, x, y, width float64, align string) float64 {
	w.doc.SetXY(x, y)
	w.doc.SetFont("Helvetica", "B", 8)
	w.doc.SetTextColor(17, 24, 39)
	w.doc.CellFormat(width, lineHeight, w.tr(strings.ToUpper(b.Caption)), "", 2, align, false, 0, "")

	w.doc.SetFont("Helvetica", "B", 12)
	w.doc.SetX(x)
	w.doc.MultiCell(width, 6, w.tr(b.Name), "", align, false)

	w.doc.SetFont("Helvetica", "", 8)
	w.doc.SetTextColor(75, 85, 99)
	for _, d := range b.Details {
		w.doc.SetX(x)
		w.doc.MultiCell(width, 4.5, w.tr(d.Label+" "+d.Value), "", align, false)
	}

	w.doc.SetFont("Helvetica", "", 9)
	if b.Address != "" {
		w.doc.SetX(x)
		w.doc.MultiCell(width, 4.5, w.tr(b.Address), "", align, false)
	}
	if b.Email != "" {
		w.doc.SetX(x)
		w.doc.MultiCell(width, 4.5, w.tr(b.Email), "", align, false)
	}
	return w.doc.GetY()
}

func (w *writer) table() {
	bg := hexToRGB(w.page.Theme.Background)
	left := w.page.MarginMM

	// Header band in the theme background color.
	w.doc.SetFont("Helvetica", "", 10)
	w.doc.SetFillColor(bg.r, bg.g, bg.b)
	w.doc.SetTextColor(255, 255, 255)
	w.doc.SetX(left)
	for _, col := range w.page.Table.Columns {
		align := "L"
		if col.AlignRight {
			align = "R"
		}
		w.doc.CellFormat(w.colWidth(col), 8, w.tr(col.Title), "", 0, align, true, 0, "")
	}
	w.doc.Ln(8)

	w.doc.SetTextColor(31, 41, 55)
	for _, row := range w.page.Table.Rows {
		w.tableRow(row)
	}
	w.doc.SetXY(left, w.doc.GetY()+sectionGap)
}

// tableRow word-wraps the description, never truncating it; the numeric
// cells are vertically aligned with the first line.
func (w *writer) tableRow(row layout.TableRow) {
	cols := w.page.Table.Columns
	left := w.page.MarginMM
	descW := w.colWidth(cols[0]) - cellPadding

	lines := w.doc.SplitText(w.tr(row.Description), descW)
	if len(lines) == 0 {
		lines = []string{""}
	}
	rowH := float64(len(lines)) * lineHeight

	top := w.doc.GetY()
	w.doc.SetXY(left, top)
	for _, line := range lines {
		w.doc.SetX(left)
		w.doc.CellFormat(descW, lineHeight, line, "", 2, "L", false, 0, "")
	}

	x := left + w.colWidth(cols[0])
	for i, cell := range []string{row.Quantity, row.Rate, row.Amount} {
		w.doc.SetXY(x, top)
		w.doc.CellFormat(w.colWidth(cols[i+1]), lineHeight, w.tr(cell), "", 0, "R", false, 0, "")
		x += w.colWidth(cols[i+1])
	}

	w.doc.SetDrawColor(229, 231, 235)
	w.doc.Line(left, top+rowH, left+w.content, top+rowH)
	w.doc.SetXY(left, top+rowH+1)
}

func (w *writer) totals() {
	accent := hexToRGB(w.page.Theme.Accent)
	half := w.content / 2
	x := w.page.MarginMM + half

	for _, line := range w.page.Totals {
		w.doc.SetX(x)
		switch {
		case line.Emphasis:
			w.doc.SetFont("Helvetica", "B", 13)
			w.doc.SetTextColor(accent.r, accent.g, accent.b)
		case line.Negative:
			w.doc.SetFont("Helvetica", "", 10)
			w.doc.SetTextColor(239, 68, 68)
		default:
			w.doc.SetFont("Helvetica", "", 10)
			w.doc.SetTextColor(75, 85, 99)
		}
		w.doc.CellFormat(half/2, 7, w.tr(line.Label), "", 0, "L", false, 0, "")
		w.doc.CellFormat(half/2, 7, w.tr(line.Value), "", 1, "R", false, 0, "")
	}
	w.doc.SetY(w.doc.GetY() + sectionGap)
}

func (w *writer) signatures() {
	s := w.page.Signatures
	left := w.page.MarginMM
	colW := w.content * 0.4
	rightX := left + w.content - colW
	top := w.doc.GetY()

	w.doc.SetFont("Helvetica", "B", 10)
	w.doc.SetTextColor(31, 41, 55)
	w.doc.SetXY(left, top)
	w.doc.CellFormat(colW, lineHeight, w.tr(s.Left), "", 0, "L", false, 0, "")
	w.doc.SetXY(rightX, top)
	w.doc.CellFormat(colW, lineHeight, w.tr(s.Right), "", 0, "L", false, 0, "")

	ruleY := top + lineHeight + 12
	w.doc.SetDrawColor(156, 163, 175)
	w.doc.SetDashPattern([]float64{1.5, 1.5}, 0)
	w.doc.Line(left, ruleY, left+colW, ruleY)
	w.doc.Line(rightX, ruleY, rightX+colW, ruleY)
	w.doc.SetDashPattern([]float64{}, 0)
	w.doc.SetXY(left, ruleY+sectionGap)
}

func (w *writer) footer() {
	if len(w.page.Footer) == 0 {
		return
	}
	left := w.page.MarginMM
	w.doc.SetDrawColor(229, 231, 235)
	y := w.doc.GetY()
	w.doc.Line(left, y, left+w.content, y)
	w.doc.SetXY(left, y+4)

	for _, section := range w.page.Footer {
		w.doc.SetFont("Helvetica", "B", 8)
		w.doc.SetTextColor(31, 41, 55)
		w.doc.SetX(left)
		w.doc.CellFormat(w.content, lineHeight, w.tr(strings.ToUpper(section.Title)), "", 2, "L", false, 0, "")
		w.doc.SetFont("Helvetica", "", 8)
		w.doc.SetTextColor(75, 85, 99)
		w.doc.SetX(left)
		w.doc.MultiCell(w.content, 4, w.tr(section.Body), "", "L", false)
		w.doc.SetY(w.doc.GetY() + 3)
	}
}

func (w *writer) colWidth(col layout.TableColumn) float64 {
	return w.content * col.WidthPct / 100
}

type rgb struct{ r, g, b int }

func hexToRGB(hex string) rgb {
	var c rgb
	if n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.r, &c.g, &c.b); err != nil || n != 3 {
		return rgb{r: 31, g: 41, b: 55}
	}
	return c
}

// decodeDataURL splits an embeddable image string into raw bytes and the
// gofpdf image-type tag.
func decodeDataURL(dataURL string) ([]byte, string, error) {
	head, body, ok := strings.Cut(dataURL, ",")
	if !ok {
		return nil, "", fmt.Errorf("not a data URL")
	}
	imgType := "JPG"
	if strings.Contains(head, "image/png") {
		imgType = "PNG"
	}
	raw, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, "", err
	}
	return raw, imgType, nil
}
