package controllers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"fatura-backend/apperr"
	"fatura-backend/imaging"
)

// UploadLogo normalizes an uploaded image into the inline form invoices
// embed: flattened, downscaled and recompressed as a JPEG data URL.
func UploadLogo(c *fiber.Ctx) error {
	header, err := c.FormFile("logo")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Missing logo file"})
	}

	f, err := header.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Could not read logo file"})
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return apperr.Wrap(apperr.Validation, "Could not read logo file.", err)
	}

	dataURL, err := imaging.Compress(raw)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"logo": dataURL})
}
