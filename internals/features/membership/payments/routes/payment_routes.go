package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/controller"
	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/service"
	"github.com/chrisarpong/TEIN-Registration/internals/helpers/storage"
	"github.com/chrisarpong/TEIN-Registration/internals/middlewares"
)

// PublicRoutes mounts registration, renewal, and the gateway callback.
func PublicRoutes(public fiber.Router, db *gorm.DB, gateway service.CheckoutGateway, photos *storage.PhotoStore) {
	registration := controller.NewRegistrationController(db, gateway, photos)
	renewal := controller.NewRenewalController(db, gateway)
	webhook := controller.NewWebhookController(db)

	public.Post("/registrations", middlewares.RegisterRateLimiter(), registration.Register)

	public.Get("/renewals/lookup", renewal.LookupMember)
	public.Post("/renewals", renewal.StartRenewal)

	public.Post("/payments/notification", webhook.Notification)
}

// AdminRoutes mounts the payment history for the dashboard.
func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	history := controller.NewPaymentAdminController(db)
	admin.Get("/payments", history.ListPayments)
}
