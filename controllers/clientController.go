package controllers

import (
	"github.com/gofiber/fiber/v2"

	"fatura-backend/database"
	"fatura-backend/middlewares"
	"fatura-backend/models"
	"fatura-backend/utils"
)

type clientDTO struct {
	Name    string `json:"name" validate:"required"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Email   string `json:"email" validate:"omitempty,email"`
}

type clientPatchDTO struct {
	Name    *string `json:"name"`
	TaxID   *string `json:"tax_id"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
}

func CreateClient(c *fiber.Ctx) error {
	var data clientDTO
	if err := middlewares.BindAndValidate(c, &data); err != nil {
		return err
	}
	utils.NormalizeDTO(&data)

	db, err := database.FromCtx(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	client := models.Client{
		OwnerID: c.Locals("userID").(string),
		Name:    data.Name,
		TaxID:   data.TaxID,
		Address: data.Address,
		Email:   data.Email,
	}
	if err := db.Create(&client).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "Could not create client", "error": err.Error()})
	}

	return c.JSON(client)
}

func GetClients(c *fiber.Ctx) error {
	db, err := database.FromCtx(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var clients []models.Client
	if err := db.Where("owner_id = ?", c.Locals("userID")).Find(&clients).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not list clients", "error": err.Error()})
	}
	return c.JSON(clients)
}

func UpdateClient(c *fiber.Ctx) error {
	var data clientPatchDTO
	if err := middlewares.BindAndValidate(c, &data); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&data)
	updates := utils.UpdatesFromPtrDTO(&data, nil)
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	db, err := database.FromCtx(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	res := db.Model(&models.Client{}).
		Where("id = ? AND owner_id = ?", c.Params("id"), c.Locals("userID")).
		Updates(updates)
	if res.Error != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "Could not update client", "error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "client not found")
	}

	var client models.Client
	db.Where("id = ?", c.Params("id")).First(&client)
	return c.JSON(client)
}

func DeleteClient(c *fiber.Ctx) error {
	db, err := database.FromCtx(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	res := db.Where("id = ? AND owner_id = ?", c.Params("id"), c.Locals("userID")).
		Delete(&models.Client{})
	if res.Error != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "Could not delete client", "error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "client not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
