package controllers

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"gorm.io/datatypes"

	"fatura-backend/apperr"
	"fatura-backend/database"
	"fatura-backend/invoice"
	"fatura-backend/layout"
	"fatura-backend/models"
	"fatura-backend/pdf"
	"fatura-backend/utils"
)

// logoByteCeiling is the record store's practical per-item budget for an
// inline image. Logos above it are dropped from the persisted snapshot
// rather than failing the save. The drop is silent, matching the
// behavior clients already rely on, even though the user never learns
// which field went missing.
const logoByteCeiling = 120000

// CreateInvoice accepts a full document, derives the denormalized
// summary, and persists both.
func CreateInvoice(c *fiber.Ctx) error {
	var doc invoice.InvoiceData
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid input"})
	}

	record, err := buildRecord(doc, c.Locals("userID").(string))
	if err != nil {
		return err
	}

	db, err := database.FromCtx(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err := db.Create(&record).Error; err != nil {
		return apperr.Wrap(apperr.Collaborator, "The invoice was not saved. Try shortening descriptions or uploading a smaller logo.", err)
	}

	return c.JSON(record)
}

func UpdateInvoice(c *fiber.Ctx) error {
	var doc invoice.InvoiceData
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid input"})
	}

	record, err := buildRecord(doc, c.Locals("userID").(string))
	if err != nil {
		return err
	}

	db, err := database.FromCtx(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	res := db.Model(&models.SavedInvoice{}).
		Where("id = ? AND owner_id = ?", c.Params("id"), c.Locals("userID")).
		Updates(map[string]any{
			"number":      record.Number,
			"client_name": record.ClientName,
			"date":        record.Date,
			"amount":      record.Amount,
			"currency":    record.Currency,
			"snapshot":    record.Snapshot,
		})
	if res.Error != nil {
		return apperr.Wrap(apperr.Collaborator, "The invoice was not updated. Try shortening descriptions or uploading a smaller logo.", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}

	var saved models.SavedInvoice
	db.Where("id = ?", c.Params("id")).First(&saved)
	return c.JSON(saved)
}

func GetInvoices(c *fiber.Ctx) error {
	db, err := database.FromCtx(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var invoices []models.SavedInvoice
	if err := db.Where("owner_id = ?", c.Locals("userID")).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not list invoices", "error": err.Error()})
	}
	return c.JSON(invoices)
}

// GetInvoice returns the record plus its reconstructed document for
// editing. Records without a reconstructable snapshot are reportable but
// non-fatal: the invoice must be recreated as new.
func GetInvoice(c *fiber.Ctx) error {
	db, err := database.FromCtx(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var saved models.SavedInvoice
	if err := db.Where("id = ? AND owner_id = ?", c.Params("id"), c.Locals("userID")).
		First(&saved).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}

	doc, err := snapshotOf(saved)
	if err != nil {
		return err
	}

	// Recover a logo from the owner's businesses when the snapshot has
	// none (it may have been dropped at save time for size).
	businesses, err := businessRefs(c)
	if err != nil {
		return err
	}
	doc = layout.ApplyBusinessLogo(doc, businesses)

	return c.JSON(fiber.Map{
		"id":       saved.Id,
		"number":   saved.Number,
		"client":   saved.ClientName,
		"date":     saved.Date,
		"amount":   saved.Amount,
		"currency": saved.Currency,
		"snapshot": doc,
	})
}

func DeleteInvoice(c *fiber.Ctx) error {
	db, err := database.FromCtx(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	res := db.Where("id = ? AND owner_id = ?", c.Params("id"), c.Locals("userID")).
		Delete(&models.SavedInvoice{})
	if res.Error != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "Could not delete invoice", "error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}

// GetInvoicePDF renders the saved document through the layout engine and
// the print surface at true 1:1 scale.
func GetInvoicePDF(c *fiber.Ctx) error {
	db, err := database.FromCtx(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var saved models.SavedInvoice
	if err := db.Where("id = ? AND owner_id = ?", c.Params("id"), c.Locals("userID")).
		First(&saved).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}

	doc, err := snapshotOf(saved)
	if err != nil {
		return err
	}

	businesses, err := businessRefs(c)
	if err != nil {
		return err
	}
	doc = layout.ApplyBusinessLogo(doc, businesses)

	totals := invoice.Compute(doc.Items, doc.TaxRate, doc.Discount)
	page := layout.Render(doc, totals)
	out, err := pdf.Render(page)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="invoice-%s.pdf"`, saved.Number))
	return c.Send(out)
}

// buildRecord derives a SavedInvoice from a submitted document: totals
// via the pure core, denormalized summary fields, and the snapshot blob.
func buildRecord(doc invoice.InvoiceData, ownerID string) (models.SavedInvoice, error) {
	totals := invoice.Compute(doc.Items, doc.TaxRate, doc.Discount)

	snapshot := doc.Clone()
	if len(snapshot.Logo) > logoByteCeiling {
		snapshot.Logo = ""
	}
	blob, err := json.Marshal(snapshot)
	if err != nil {
		return models.SavedInvoice{}, apperr.Wrap(apperr.Collaborator, "The invoice could not be serialized.", err)
	}

	number := doc.InvoiceNumber
	if number == "" {
		number = generateInvoiceNumber()
	}
	clientName := doc.ReceiverName
	if clientName == "" {
		clientName = "Unnamed client"
	}
	currency := string(doc.Currency)
	if currency == "" {
		currency = string(invoice.CurrencyEUR)
	}

	return models.SavedInvoice{
		OwnerID:    ownerID,
		Number:     number,
		ClientName: clientName,
		Date:       doc.Date,
		Amount:     utils.Round2(totals.Total),
		Currency:   currency,
		Snapshot:   datatypes.JSON(blob),
	}, nil
}

// snapshotOf reconstructs the full document from a record, reporting the
// missing-snapshot condition for records that have none.
func snapshotOf(saved models.SavedInvoice) (invoice.InvoiceData, error) {
	if len(saved.Snapshot) == 0 || string(saved.Snapshot) == "null" {
		return invoice.InvoiceData{}, apperr.New(apperr.MissingSnapshot,
			"This invoice has no full snapshot. Recreate it as a new invoice.")
	}
	var doc invoice.InvoiceData
	if err := json.Unmarshal(saved.Snapshot, &doc); err != nil {
		return invoice.InvoiceData{}, apperr.Wrap(apperr.MissingSnapshot,
			"This invoice has no full snapshot. Recreate it as a new invoice.", err)
	}
	return doc, nil
}

// businessRefs loads the owner's businesses as template-resolution views.
func businessRefs(c *fiber.Ctx) ([]layout.BusinessRef, error) {
	db, err := database.FromCtx(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	var businesses []models.Business
	if err := db.Where("owner_id = ?", c.Locals("userID")).Find(&businesses).Error; err != nil {
		return nil, apperr.Wrap(apperr.Collaborator, "Could not load businesses.", err)
	}
	return lo.Map(businesses, func(b models.Business, _ int) layout.BusinessRef {
		return layout.BusinessRef{Name: b.Name, TaxID: b.TaxID, Email: b.Email, Logo: b.Logo}
	}), nil
}

// generateInvoiceNumber mirrors the editor's default numbering:
// INV-YYMMDD-nnnn with a random 4-digit suffix.
func generateInvoiceNumber() string {
	suffix, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "INV-" + time.Now().Format("060102") + "-1000"
	}
	return fmt.Sprintf("INV-%s-%d", time.Now().Format("060102"), 1000+suffix.Int64())
}
