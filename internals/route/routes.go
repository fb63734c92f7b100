package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/configs"
	adminController "github.com/chrisarpong/TEIN-Registration/internals/features/admins/controller"
	adminRoutes "github.com/chrisarpong/TEIN-Registration/internals/features/admins/routes"
	memberRoutes "github.com/chrisarpong/TEIN-Registration/internals/features/membership/members/routes"
	paymentRoutes "github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/routes"
	paymentService "github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/service"
	"github.com/chrisarpong/TEIN-Registration/internals/helpers/storage"
	"github.com/chrisarpong/TEIN-Registration/internals/middlewares"
)

// SetupRoutes mounts the public portal surface under /api and the roster
// dashboard under /api/a behind the JWT guard.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, gateway paymentService.CheckoutGateway, photos *storage.PhotoStore) {
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		middlewares.AuthJWT(middlewares.AuthJWTOpts{
			Secret:           cfg.JWTSecret,
			BlacklistChecker: adminController.IsTokenBlacklisted(db),
		}),
	)

	log.Println("[INFO] Mounting auth routes...")
	adminRoutes.AuthRoutes(public, admin, db, cfg.JWTSecret)

	log.Println("[INFO] Mounting membership routes...")
	memberRoutes.PublicRoutes(public, db)
	memberRoutes.AdminRoutes(admin, db)

	log.Println("[INFO] Mounting payment routes...")
	paymentRoutes.PublicRoutes(public, db, gateway, photos)
	paymentRoutes.AdminRoutes(admin, db)
}
