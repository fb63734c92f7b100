package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/features/admins/controller"
	"github.com/chrisarpong/TEIN-Registration/internals/middlewares"
)

// AuthRoutes mounts login on the public surface and the session operations
// behind the admin guard.
func AuthRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB, jwtSecret string) {
	ctrl := controller.NewAuthController(db, jwtSecret)

	public.Post("/auth/login", middlewares.LoginRateLimiter(), ctrl.Login)

	admin.Post("/auth/logout", ctrl.Logout)
	admin.Post("/auth/change-password", ctrl.ChangePassword)
}
