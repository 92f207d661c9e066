package invoice

import (
	"time"

	"github.com/google/uuid"
)

// Currency is the set of billing currencies the editor offers.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyALL Currency = "ALL"
	CurrencyUSD Currency = "USD"
)

// ThemeColor names one of the six preview color themes. It is purely
// cosmetic; see the layout package for the palette it selects.
type ThemeColor string

const (
	ThemeGray   ThemeColor = "gray"
	ThemeRed    ThemeColor = "red"
	ThemeBlue   ThemeColor = "blue"
	ThemeOrange ThemeColor = "orange"
	ThemeYellow ThemeColor = "yellow"
	ThemeGreen  ThemeColor = "green"
)

// LineItem is a single billable row. ID is an opaque UUID, stable for the
// lifetime of the item and unique within its invoice.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// InvoiceData is the editable invoice document. It is treated as an
// immutable value: edits produce a new document (see Clone and the
// WithItem* operations), so every downstream computation observes a
// consistent snapshot. JSON tags are camelCase because the persisted
// snapshot format predates this service and must round-trip unchanged.
type InvoiceData struct {
	InvoiceNumber string `json:"invoiceNumber"`
	Date          string `json:"date"` // ISO-8601 YYYY-MM-DD
	DueDate       string `json:"dueDate"`
	PONumber      string `json:"poNumber"`

	SenderName    string `json:"senderName"`
	SenderID      string `json:"senderId"`
	SenderBank    string `json:"senderBank"`
	SenderAddress string `json:"senderAddress"`
	SenderEmail   string `json:"senderEmail"`

	ReceiverName    string `json:"receiverName"`
	ReceiverID      string `json:"receiverId"`
	ReceiverBank    string `json:"receiverBank"`
	ReceiverAddress string `json:"receiverAddress"`
	ReceiverEmail   string `json:"receiverEmail"`

	Currency Currency `json:"currency"`
	TaxRate  float64  `json:"taxRate"`
	Discount float64  `json:"discount"`

	Logo  string     `json:"logo"`
	Items []LineItem `json:"items"`

	Notes string `json:"notes"`
	Terms string `json:"terms"`

	ThemeColor ThemeColor `json:"themeColor"`
}

// New returns the initial editing document: dated today, EUR, 18% tax,
// no discount, gray theme, and exactly one empty line item.
func New() InvoiceData {
	return InvoiceData{
		Date:       time.Now().Format("2006-01-02"),
		Currency:   CurrencyEUR,
		TaxRate:    18,
		Discount:   0,
		Items:      []LineItem{NewLineItem()},
		ThemeColor: ThemeGray,
	}
}

// NewLineItem returns an empty item with a fresh ID and quantity 1.
func NewLineItem() LineItem {
	return LineItem{ID: uuid.NewString(), Quantity: 1, Rate: 0}
}

// FromBusiness returns a fresh document with the sender block prefilled
// from a saved business template.
func FromBusiness(name, taxID, bank, address, email, logo string) InvoiceData {
	doc := New()
	doc.SenderName = name
	doc.SenderID = taxID
	doc.SenderBank = bank
	doc.SenderAddress = address
	doc.SenderEmail = email
	doc.Logo = logo
	return doc
}

// FromClient returns a fresh document with the receiver block prefilled
// from a saved client template.
func FromClient(name, taxID, address, email string) InvoiceData {
	doc := New()
	doc.ReceiverName = name
	doc.ReceiverID = taxID
	doc.ReceiverAddress = address
	doc.ReceiverEmail = email
	return doc
}

// Clone returns a deep copy. The items slice is the only reference field.
func (d InvoiceData) Clone() InvoiceData {
	out := d
	out.Items = make([]LineItem, len(d.Items))
	copy(out.Items, d.Items)
	return out
}

// WithItemAdded returns a copy with a new empty item appended.
func (d InvoiceData) WithItemAdded() InvoiceData {
	out := d.Clone()
	out.Items = append(out.Items, NewLineItem())
	return out
}

// WithItemRemoved returns a copy without the item identified by id.
// Removing the last item leaves an empty sequence; totals and layout
// both tolerate that.
func (d InvoiceData) WithItemRemoved(id string) InvoiceData {
	out := d.Clone()
	items := out.Items[:0]
	for _, it := range out.Items {
		if it.ID != id {
			items = append(items, it)
		}
	}
	out.Items = items
	return out
}

// WithItemUpdated returns a copy with mutate applied to the item
// identified by id. Unknown ids are a no-op; order is preserved.
func (d InvoiceData) WithItemUpdated(id string, mutate func(*LineItem)) InvoiceData {
	out := d.Clone()
	for i := range out.Items {
		if out.Items[i].ID == id {
			mutate(&out.Items[i])
			break
		}
	}
	return out
}
