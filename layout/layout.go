package layout

import (
	"fmt"

	"fatura-backend/invoice"
)

// A4 page geometry in millimeters. The print surface renders these
// dimensions 1:1; the on-screen preview shrinks them uniformly via the
// scaler package.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
	PageMarginMM = 20.0
)

// LabelValue is a rendered label/value pair. Conditional fields collapse
// before reaching a PageDescription, so a pair is always fully populated.
type LabelValue struct {
	Label string
	Value string
}

// HeaderSection carries the top band: either a logo or the sender name as
// a large heading (never both), plus the document title and meta lines.
type HeaderSection struct {
	LogoDataURL string // embeddable image; empty when Heading is used
	Heading     string // sender name fallback; empty when a logo is shown
	Title       string
	Meta        []LabelValue
}

// PartyBlock renders one side of the sender/receiver pair. Details holds
// only the non-empty optional lines (tax ID, bank account).
type PartyBlock struct {
	Caption string
	Name    string
	Details []LabelValue
	Address string // word-wrapped by the renderer, may hold newlines
	Email   string
}

// TableColumn describes a line-item column; widths are percentages of the
// content width.
type TableColumn struct {
	Title      string
	WidthPct   float64
	AlignRight bool
}

// TableRow is one rendered line item. Description is never truncated; the
// renderer word-wraps it. Money cells omit the currency symbol.
type TableRow struct {
	Description string
	Quantity    string
	Rate        string
	Amount      string
}

// TableSection is the line-item table: a themed header band plus one row
// per item in document order. An empty invoice renders header only.
type TableSection struct {
	Columns []TableColumn
	Rows    []TableRow
}

// TotalLine is one row of the totals block. Emphasis marks the grand
// total (rendered in the theme accent color); Negative marks a subtracted
// amount (the discount).
type TotalLine struct {
	Label    string
	Value    string
	Emphasis bool
	Negative bool
}

// SignatureSection reserves the two dashed signature rule lines.
type SignatureSection struct {
	Left  string
	Right string
}

// TitledText is a footer section (notes or terms).
type TitledText struct {
	Title string
	Body  string
}

// PageDescription is the full printable page: a deterministic tree of
// sections sized to fixed A4 proportions, independent of any rendering
// technology. Footer is nil when both notes and terms are empty.
type PageDescription struct {
	WidthMM  float64
	HeightMM float64
	MarginMM float64

	Theme      Palette
	Header     HeaderSection
	Sender     PartyBlock
	Receiver   PartyBlock
	Table      TableSection
	Totals     []TotalLine
	Signatures SignatureSection
	Footer     []TitledText
}

var tableColumns = []TableColumn{
	{Title: "Description", WidthPct: 45},
	{Title: "Qty", WidthPct: 15, AlignRight: true},
	{Title: "Rate", WidthPct: 20, AlignRight: true},
	{Title: "Amount", WidthPct: 20, AlignRight: true},
}

// Render maps a document plus its computed totals to the printable page.
// It is total over any syntactically valid document: empty items, empty
// strings and zero rates all produce a well-formed page.
func Render(doc invoice.InvoiceData, totals invoice.Totals) PageDescription {
	page := PageDescription{
		WidthMM:  PageWidthMM,
		HeightMM: PageHeightMM,
		MarginMM: PageMarginMM,
		Theme:    ThemeFor(doc.ThemeColor),
	}

	page.Header = renderHeader(doc)
	page.Sender = renderParty("From (Sender)", doc.SenderName, doc.SenderID, doc.SenderBank, doc.SenderAddress, doc.SenderEmail)
	page.Receiver = renderParty("To (Receiver)", doc.ReceiverName, doc.ReceiverID, doc.ReceiverBank, doc.ReceiverAddress, doc.ReceiverEmail)
	page.Table = renderTable(doc.Items)
	page.Totals = renderTotals(doc, totals)
	page.Signatures = SignatureSection{Left: "Prepared by:", Right: "Received by:"}

	if doc.Notes != "" {
		page.Footer = append(page.Footer, TitledText{Title: "Notes", Body: doc.Notes})
	}
	if doc.Terms != "" {
		page.Footer = append(page.Footer, TitledText{Title: "Terms", Body: doc.Terms})
	}

	return page
}

func renderHeader(doc invoice.InvoiceData) HeaderSection {
	h := HeaderSection{Title: "INVOICE"}
	if doc.Logo != "" {
		h.LogoDataURL = doc.Logo
	} else if doc.SenderName != "" {
		h.Heading = doc.SenderName
	} else {
		h.Heading = "Company Name"
	}

	h.Meta = append(h.Meta,
		LabelValue{Label: "Invoice No:", Value: doc.InvoiceNumber},
		LabelValue{Label: "Date:", Value: FormatDate(doc.Date)},
	)
	if doc.DueDate != "" {
		h.Meta = append(h.Meta, LabelValue{Label: "Due Date:", Value: FormatDate(doc.DueDate)})
	}
	if doc.PONumber != "" {
		h.Meta = append(h.Meta, LabelValue{Label: "PO #:", Value: doc.PONumber})
	}
	return h
}

func renderParty(caption, name, taxID, bank, address, email string) PartyBlock {
	b := PartyBlock{Caption: caption, Name: name, Address: address, Email: email}
	if taxID != "" {
		b.Details = append(b.Details, LabelValue{Label: "Tax ID:", Value: taxID})
	}
	if bank != "" {
		b.Details = append(b.Details, LabelValue{Label: "Bank Acct:", Value: bank})
	}
	return b
}

func renderTable(items []invoice.LineItem) TableSection {
	table := TableSection{Columns: tableColumns}
	for _, it := range items {
		table.Rows = append(table.Rows, TableRow{
			Description: it.Description,
			Quantity:    FormatQuantity(it.Quantity),
			Rate:        FormatAmount(it.Rate),
			Amount:      FormatAmount(it.Quantity * it.Rate),
		})
	}
	return table
}

func renderTotals(doc invoice.InvoiceData, totals invoice.Totals) []TotalLine {
	lines := []TotalLine{
		{Label: "Subtotal:", Value: FormatMoney(totals.Subtotal, doc.Currency)},
		{Label: fmt.Sprintf("Tax (%s%%):", FormatQuantity(doc.TaxRate)), Value: FormatMoney(totals.TaxAmount, doc.Currency)},
	}
	if doc.Discount > 0 {
		lines = append(lines, TotalLine{
			Label:    "Discount:",
			Value:    "-" + FormatMoney(doc.Discount, doc.Currency),
			Negative: true,
		})
	}
	lines = append(lines, TotalLine{
		Label:    "Total:",
		Value:    FormatMoney(totals.Total, doc.Currency),
		Emphasis: true,
	})
	return lines
}
