package controllers

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"fatura-backend/apperr"
	"fatura-backend/invoice"
	"fatura-backend/models"
)

func sampleDoc() invoice.InvoiceData {
	doc := invoice.New()
	doc.InvoiceNumber = "INV-260829-1234"
	doc.ReceiverName = "Acme GmbH"
	doc.Items = []invoice.LineItem{
		{ID: "a", Description: "Design", Quantity: 2, Rate: 50},
	}
	doc.TaxRate = 18
	doc.Discount = 5
	return doc
}

func TestBuildRecordDerivesSummary(t *testing.T) {
	record, err := buildRecord(sampleDoc(), "owner-1")
	require.NoError(t, err)

	assert.Equal(t, "owner-1", record.OwnerID)
	assert.Equal(t, "INV-260829-1234", record.Number)
	assert.Equal(t, "Acme GmbH", record.ClientName)
	assert.Equal(t, "EUR", record.Currency)
	assert.Equal(t, 113.0, record.Amount)

	var snapshot invoice.InvoiceData
	require.NoError(t, json.Unmarshal(record.Snapshot, &snapshot))
	assert.Equal(t, "Acme GmbH", snapshot.ReceiverName)
	assert.Len(t, snapshot.Items, 1)
}

func TestBuildRecordDefaults(t *testing.T) {
	doc := sampleDoc()
	doc.InvoiceNumber = ""
	doc.ReceiverName = ""
	doc.Currency = ""

	record, err := buildRecord(doc, "owner-1")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^INV-\d{6}-\d{4}$`), record.Number)
	assert.Equal(t, "Unnamed client", record.ClientName)
	assert.Equal(t, "EUR", record.Currency)
}

func TestBuildRecordDropsOversizedLogo(t *testing.T) {
	doc := sampleDoc()
	doc.Logo = "data:image/jpeg;base64," + strings.Repeat("A", logoByteCeiling)

	record, err := buildRecord(doc, "owner-1")
	require.NoError(t, err)

	var snapshot invoice.InvoiceData
	require.NoError(t, json.Unmarshal(record.Snapshot, &snapshot))
	assert.Empty(t, snapshot.Logo, "oversized logo should be dropped from the snapshot")

	// But the original document stays intact.
	assert.NotEmpty(t, doc.Logo)
}

func TestBuildRecordKeepsLogoAtCeiling(t *testing.T) {
	doc := sampleDoc()
	logo := strings.Repeat("A", logoByteCeiling)
	doc.Logo = logo

	record, err := buildRecord(doc, "owner-1")
	require.NoError(t, err)

	var snapshot invoice.InvoiceData
	require.NoError(t, json.Unmarshal(record.Snapshot, &snapshot))
	assert.Equal(t, logo, snapshot.Logo)
}

func TestSnapshotOfRoundTrip(t *testing.T) {
	record, err := buildRecord(sampleDoc(), "owner-1")
	require.NoError(t, err)

	doc, err := snapshotOf(record)
	require.NoError(t, err)
	assert.Equal(t, "Acme GmbH", doc.ReceiverName)
	assert.Equal(t, 18.0, doc.TaxRate)
}

func TestSnapshotOfMissing(t *testing.T) {
	for _, blob := range []datatypes.JSON{nil, datatypes.JSON("null")} {
		_, err := snapshotOf(models.SavedInvoice{Snapshot: blob})
		require.Error(t, err)
		kind, ok := apperr.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, apperr.MissingSnapshot, kind)
	}
}

func TestSnapshotOfUnparseable(t *testing.T) {
	_, err := snapshotOf(models.SavedInvoice{Snapshot: datatypes.JSON("{not json")})
	require.Error(t, err)
	kind, ok := apperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperr.MissingSnapshot, kind)
}

func TestGenerateInvoiceNumberShape(t *testing.T) {
	re := regexp.MustCompile(`^INV-\d{6}-\d{4}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, re, generateInvoiceNumber())
	}
}
