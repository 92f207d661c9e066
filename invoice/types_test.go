package invoice

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	doc := New()
	assert.Equal(t, CurrencyEUR, doc.Currency)
	assert.Equal(t, 18.0, doc.TaxRate)
	assert.Equal(t, 0.0, doc.Discount)
	assert.Equal(t, ThemeGray, doc.ThemeColor)
	require.Len(t, doc.Items, 1)
	assert.NotEmpty(t, doc.Items[0].ID)
	assert.Equal(t, 1.0, doc.Items[0].Quantity)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, doc.Date)
}

func TestCopyOnWriteEdits(t *testing.T) {
	doc := New()
	originalID := doc.Items[0].ID

	added := doc.WithItemAdded()
	require.Len(t, added.Items, 2)
	require.Len(t, doc.Items, 1, "source document must not change")
	assert.NotEqual(t, added.Items[0].ID, added.Items[1].ID)

	updated := added.WithItemUpdated(originalID, func(it *LineItem) {
		it.Description = "Consulting"
		it.Quantity = 2
		it.Rate = 50
	})
	assert.Equal(t, "Consulting", updated.Items[0].Description)
	assert.Empty(t, added.Items[0].Description, "source document must not change")

	removed := updated.WithItemRemoved(originalID)
	require.Len(t, removed.Items, 1)
	assert.NotEqual(t, originalID, removed.Items[0].ID)

	// Deleting every item is allowed; the document tolerates it.
	empty := removed.WithItemRemoved(removed.Items[0].ID)
	assert.Empty(t, empty.Items)
	assert.Equal(t, Totals{}, Compute(empty.Items, empty.TaxRate, empty.Discount))
}

func TestPrefillConstructors(t *testing.T) {
	fromBiz := FromBusiness("Acme", "K123", "AL47 0000", "Tirana", "acme@x.al", "data:image/jpeg;base64,xx")
	assert.Equal(t, "Acme", fromBiz.SenderName)
	assert.Equal(t, "K123", fromBiz.SenderID)
	assert.Equal(t, "data:image/jpeg;base64,xx", fromBiz.Logo)
	assert.Empty(t, fromBiz.ReceiverName)

	fromCli := FromClient("Blerina", "K999", "Durres", "b@x.al")
	assert.Equal(t, "Blerina", fromCli.ReceiverName)
	assert.Empty(t, fromCli.SenderName)
	require.Len(t, fromCli.Items, 1)
}

// Snapshots written by earlier versions of the product use camelCase
// keys; the document must keep accepting them verbatim.
func TestSnapshotJSONShape(t *testing.T) {
	raw := `{
		"invoiceNumber": "INV-240307-1234",
		"date": "2024-03-07",
		"dueDate": "",
		"poNumber": "PO-9",
		"senderName": "Acme",
		"senderId": "K123",
		"currency": "EUR",
		"taxRate": 18,
		"discount": 5,
		"logo": null,
		"items": [{"id": "a", "description": "Work", "quantity": 2, "rate": 50}],
		"themeColor": "blue"
	}`
	var doc InvoiceData
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "INV-240307-1234", doc.InvoiceNumber)
	assert.Equal(t, "PO-9", doc.PONumber)
	assert.Equal(t, ThemeBlue, doc.ThemeColor)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, 2.0, doc.Items[0].Quantity)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"invoiceNumber"`)
	assert.Contains(t, string(out), `"senderId"`)
	assert.Contains(t, string(out), `"themeColor"`)
}
