package pdf

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fatura-backend/invoice"
	"fatura-backend/layout"
)

func samplePage(t *testing.T) layout.PageDescription {
	t.Helper()
	doc := invoice.New()
	doc.InvoiceNumber = "INV-240307-1234"
	doc.Date = "2024-03-07"
	doc.DueDate = "2024-04-07"
	doc.SenderName = "Acme Sh.p.k."
	doc.SenderID = "K123"
	doc.SenderAddress = "Rruga e Kavajës 1\nTirana"
	doc.ReceiverName = "Blerina"
	doc.Notes = "Payment within 30 days."
	doc.Items = []invoice.LineItem{
		{ID: "a", Description: "Consulting services for the spring campaign, including setup", Quantity: 2, Rate: 50},
		{ID: "b", Description: "Hosting", Quantity: 1, Rate: 12.5},
	}
	doc.Discount = 5
	return layout.Render(doc, invoice.Compute(doc.Items, doc.TaxRate, doc.Discount))
}

func TestRenderProducesPDF(t *testing.T) {
	out, err := Render(samplePage(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Greater(t, len(out), 1000)
}

func TestRenderWithLogo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 32, 32)), nil))
	logo := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	doc := invoice.New()
	doc.Logo = logo
	page := layout.Render(doc, invoice.Compute(doc.Items, doc.TaxRate, doc.Discount))

	out, err := Render(page)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderToleratesMalformedLogo(t *testing.T) {
	doc := invoice.New()
	doc.Logo = "data:image/jpeg;base64,!!!not-base64!!!"
	page := layout.Render(doc, invoice.Compute(doc.Items, doc.TaxRate, doc.Discount))

	out, err := Render(page)
	require.NoError(t, err, "a broken stored logo must not break printing")
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderEmptyDocument(t *testing.T) {
	var doc invoice.InvoiceData
	page := layout.Render(doc, invoice.Compute(nil, 0, 0))
	out, err := Render(page)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestDecodeDataURL(t *testing.T) {
	raw, imgType, err := decodeDataURL("data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("x")))
	require.NoError(t, err)
	assert.Equal(t, "PNG", imgType)
	assert.Equal(t, []byte("x"), raw)

	_, _, err = decodeDataURL("no-comma")
	assert.Error(t, err)

	_, _, err = decodeDataURL("data:image/jpeg;base64,???")
	assert.Error(t, err)
}

func TestHexToRGB(t *testing.T) {
	assert.Equal(t, rgb{r: 0xb9, g: 0x1c, b: 0x1c}, hexToRGB("#b91c1c"))
	// Malformed input falls back to the gray band color.
	assert.Equal(t, rgb{r: 31, g: 41, b: 55}, hexToRGB("oops"))
}
