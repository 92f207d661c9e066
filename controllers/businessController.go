package controllers

import (
	"github.com/gofiber/fiber/v2"

	"fatura-backend/database"
	"fatura-backend/middlewares"
	"fatura-backend/models"
	"fatura-backend/utils"
)

type businessDTO struct {
	Name    string `json:"name" validate:"required"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Bank    string `json:"bank"`
	Email   string `json:"email" validate:"omitempty,email"`
	Logo    string `json:"logo"`
}

type businessPatchDTO struct {
	Name    *string `json:"name"`
	TaxID   *string `json:"tax_id"`
	Address *string `json:"address"`
	Bank    *string `json:"bank"`
	Email   *string `json:"email" validate:"omitempty"`
	Logo    *string `json:"logo"`
}

func CreateBusiness(c *fiber.Ctx) error {
	var data businessDTO
	if err := middlewares.BindAndValidate(c, &data); err != nil {
		return err
	}
	utils.NormalizeDTO(&data)

	db, err := database.FromCtx(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	business := models.Business{
		OwnerID: c.Locals("userID").(string),
		Name:    data.Name,
		TaxID:   data.TaxID,
		Address: data.Address,
		Bank:    data.Bank,
		Email:   data.Email,
		Logo:    data.Logo,
	}
	if err := db.Create(&business).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "Could not create business", "error": err.Error()})
	}

	return c.JSON(business)
}

func GetBusinesses(c *fiber.Ctx) error {
	db, err := database.FromCtx(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var businesses []models.Business
	if err := db.Where("owner_id = ?", c.Locals("userID")).Find(&businesses).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not list businesses", "error": err.Error()})
	}
	return c.JSON(businesses)
}

func UpdateBusiness(c *fiber.Ctx) error {
	var data businessPatchDTO
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

	res := db.Model(&models.Business{}).
		Where("id = ? AND owner_id = ?", c.Params("id"), c.Locals("userID")).
		Updates(updates)
	if res.Error != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "Could not update business", "error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "business not found")
	}

	var business models.Business
	db.Where("id = ?", c.Params("id")).First(&business)
	return c.JSON(business)
}

func DeleteBusiness(c *fiber.Ctx) error {
	db, err := database.FromCtx(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	res := db.Where("id = ? AND owner_id = ?", c.Params("id"), c.Locals("userID")).
		Delete(&models.Business{})
	if res.Error != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "Could not delete business", "error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "business not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
