package routes

import (
	"github.com/gofiber/fiber/v2"

	"digitalservice-backend/controllers"
	"digitalservice-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Public landing page + order intake
	api.Get("/services", controllers.GetServices)
	api.Get("/services/:id", controllers.GetService)
	api.Get("/portfolio", controllers.GetPortfolio)
	api.Get("/content", controllers.GetLandingContent)
	api.Get("/footer", controllers.GetFooterContent)
	api.Get("/testimonials", controllers.GetTestimonials)
	api.Post("/orders", middlewares.Idempotency(), middlewares.Tx(), controllers.CreateOrder)
	api.Post("/orders/preview-downpayment", controllers.PreviewDownpayment)
	api.Post("/consent", controllers.RecordConsent)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to the request TX)
	protected.Use(middlewares.Idempotency())

	// Then per-request transaction for mutating methods
	protected.Use(middlewares.Tx())

	// Services
	protected.Post("/service", controllers.CreateService)
	protected.Put("/services/:id", controllers.UpdateService)
	protected.Delete("/services/:id", controllers.DeleteService)

	// Orders
	protected.Get("/orders", controllers.GetOrders)
	protected.Get("/orders/invoiceable", controllers.GetInvoiceableOrders)
	protected.Put("/orders/:id/status", controllers.UpdateOrderStatus)

	// Invoices (no delete route: invoices are never deleted)
	protected.Post("/invoice", controllers.CreateInvoice)
	protected.Get("/invoices", controllers.GetInvoices)
	protected.Get("/invoice/:id", controllers.GetInvoice)
	protected.Put("/invoices/:id/status", controllers.UpdateInvoiceStatus)
	protected.Put("/invoices/:id/adjust", controllers.AdjustInvoice)
	protected.Get("/invoices/:id/pdf", controllers.DownloadInvoicePDF)

	// Portfolio
	protected.Post("/portfolio", controllers.CreatePortfolioItem)
	protected.Put("/portfolio/:id", controllers.UpdatePortfolioItem)
	protected.Delete("/portfolio/:id", controllers.DeletePortfolioItem)

	// Landing content, footer & testimonials
	protected.Put("/content", controllers.UpsertLandingSection)
	protected.Get("/footer/links", controllers.GetFooterLinks)
	protected.Post("/footer", controllers.CreateFooterLink)
	protected.Put("/footer/:id", controllers.UpdateFooterLink)
	protected.Delete("/footer/:id", controllers.DeleteFooterLink)
	protected.Post("/testimonials", controllers.CreateTestimonial)
	protected.Delete("/testimonials/:id", controllers.DeleteTestimonial)

	// Settings (typed blocks)
	protected.Get("/settings", controllers.GetSettings)
	protected.Put("/settings/company", controllers.UpdateCompanyInfo)
	protected.Put("/settings/invoice", controllers.UpdateInvoiceConfig)
	protected.Put("/settings/email", controllers.UpdateEmailConfig)
}
