package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/members/controller"
)

// PublicRoutes mounts the QR verification endpoint.
func PublicRoutes(public fiber.Router, db *gorm.DB) {
	verify := controller.NewVerifyController(db)
	public.Get("/verify/:id", verify.VerifyMember)
}

// AdminRoutes mounts the roster management surface.
func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberAdminController(db)

	admin.Get("/members", ctrl.ListMembers)
	admin.Post("/members", ctrl.CreateManualMember)
	admin.Put("/members/:id", ctrl.UpdateMember)
	admin.Delete("/members/:id", ctrl.DeleteMember)
	admin.Get("/members/export", ctrl.ExportMembersCSV)
	admin.Get("/stats", ctrl.Stats)
}
