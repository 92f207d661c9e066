package controllers

import (
	"crypto/rand"
	"math/big"
	"net/mail"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fatura-backend/database"
	"fatura-backend/logger"
	"fatura-backend/middlewares"
	"fatura-backend/models"
)

type registerDTO struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

// Register creates an unconfirmed account and issues a confirmation
// code. There is no mail collaborator in scope, so the code is logged for
// the operator to relay.
func Register(c *fiber.Ctx) error {
	var data registerDTO
	if err := middlewares.BindAndValidate(c, &data); err != nil {
		return err
	}

	var mailExist models.User
	database.DB.Where("email = ?", data.Email).First(&mailExist)
	if mailExist.Email != "" {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "email already exists",
		})
	}

	if data.Password != data.PasswordConfirm {
		c.Status(400)
		return c.JSON(fiber.Map{
			"message": "passwords do not match",
		})
	}

	user := models.User{
		Name:        data.Name,
		Email:       data.Email,
		ConfirmCode: randomCode(),
	}
	user.SetPassword(data.Password)
	if err := database.DB.Create(&user).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not create user",
			"error":   err.Error(),
		})
	}

	logger.L.Infof("confirmation code for %s: %s", user.Email, user.ConfirmCode)

	return c.JSON(fiber.Map{
		"id":      user.Id,
		"email":   user.Email,
		"message": "confirmation code required",
	})
}

type confirmDTO struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// Confirm completes registration with the emailed code.
func Confirm(c *fiber.Ctx) error {
	var data confirmDTO
	if err := middlewares.BindAndValidate(c, &data); err != nil {
		return err
	}

	var user models.User
	database.DB.Where("email = ?", data.Email).First(&user)
	if user.Id == "" || user.ConfirmCode == "" || user.ConfirmCode != data.Code {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "invalid confirmation code",
		})
	}

	user.Confirmed = true
	user.ConfirmCode = ""
	if err := database.DB.Model(&user).Updates(map[string]any{
		"confirmed":    true,
		"confirm_code": "",
	}).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not confirm account",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "account confirmed"})
}

func Login(c *fiber.Ctx) error {
	var data map[string]string
	if err := c.BodyParser(&data); err != nil {
		return err
	}

	var user models.User

	if _, err := mail.ParseAddress(data["email"]); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Invalid email format",
		})
	}

	database.DB.Where("email = ?", data["email"]).First(&user)

	if _, err := uuid.Parse(user.Id); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	if err := user.ComparePassword(data["password"]); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	if !user.Confirmed {
		c.Status(fiber.StatusForbidden)
		return c.JSON(fiber.Map{
			"message": "account not confirmed",
		})
	}

	token, err := middlewares.GenerateJWT(user.Id)
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not issue token",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.Id,
			"name":  user.DisplayName(),
			"email": user.Email,
		},
	})
}

func Logout(c *fiber.Ctx) error {
	cookie := fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	}
	c.Cookie(&cookie)
	return c.JSON(fiber.Map{
		"message": "success",
	})
}

// GetUser is the session lookup: it resolves the bearer token to the
// account's display identity.
func GetUser(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.Status(fiber.StatusUnauthorized)
		return c.JSON(fiber.Map{"message": "unknown session"})
	}

	return c.JSON(fiber.Map{
		"id":    user.Id,
		"name":  user.DisplayName(),
		"email": user.Email,
	})
}

type forgotDTO struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword starts a reset: a code is stored and logged.
func ForgotPassword(c *fiber.Ctx) error {
	var data forgotDTO
	if err := middlewares.BindAndValidate(c, &data); err != nil {
		return err
	}

	var user models.User
	database.DB.Where("email = ?", data.Email).First(&user)
	if user.Id != "" {
		code := randomCode()
		database.DB.Model(&user).Update("reset_code", code)
		logger.L.Infof("password reset code for %s: %s", user.Email, code)
	}

	// Same response either way; account existence is not disclosed.
	return c.JSON(fiber.Map{"message": "reset code sent if the account exists"})
}

type resetDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Code     string `json:"code" validate:"required,len=6"`
	Password string `json:"password" validate:"required,min=8"`
}

// ResetPassword completes a reset with the code from ForgotPassword.
func ResetPassword(c *fiber.Ctx) error {
	var data resetDTO
	if err := middlewares.BindAndValidate(c, &data); err != nil {
		return err
	}

	var user models.User
	database.DB.Where("email = ?", data.Email).First(&user)
	if user.Id == "" || user.ResetCode == "" || user.ResetCode != data.Code {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "invalid reset code"})
	}

	user.SetPassword(data.Password)
	if err := database.DB.Model(&user).Updates(map[string]any{
		"password":   user.Password,
		"reset_code": "",
	}).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not reset password",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "password updated"})
}

// randomCode returns a 6-digit numeric code.
func randomCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "000000"
	}
	code := n.String()
	for len(code) < 6 {
		code = "0" + code
	}
	return code
}
