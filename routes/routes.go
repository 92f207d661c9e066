package routes

import (
	"github.com/gofiber/fiber/v2"

	"fatura-backend/controllers"
	"fatura-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/confirm", controllers.Confirm)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)
	api.Post("/password/forgot", controllers.ForgotPassword)
	api.Post("/password/reset", controllers.ResetPassword)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then per-request transaction (commits/rolls back around handlers)
	protected.Use(middlewares.RequestTx())

	protected.Get("/user", controllers.GetUser)

	// Businesses (invoice sender templates)
	protected.Post("/businesses", controllers.CreateBusiness)
	protected.Get("/businesses", controllers.GetBusinesses)
	protected.Put("/businesses/:id", controllers.UpdateBusiness)
	protected.Delete("/businesses/:id", controllers.DeleteBusiness)

	// Clients (invoice receiver templates)
	protected.Post("/clients", controllers.CreateClient)
	protected.Get("/clients", controllers.GetClients)
	protected.Put("/clients/:id", controllers.UpdateClient)
	protected.Delete("/clients/:id", controllers.DeleteClient)

	// Invoices (summary records plus editable snapshots)
	protected.Post("/invoices", controllers.CreateInvoice)
	protected.Get("/invoices", controllers.GetInvoices)
	protected.Get("/invoices/:id", controllers.GetInvoice)
	protected.Put("/invoices/:id", controllers.UpdateInvoice)
	protected.Delete("/invoices/:id", controllers.DeleteInvoice)
	protected.Get("/invoices/:id/pdf", controllers.GetInvoicePDF)

	// Logo normalization for the editor
	protected.Post("/logo", controllers.UploadLogo)
}
