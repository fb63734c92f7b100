package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/members/model"
	helper "github.com/chrisarpong/TEIN-Registration/internals/helpers"
)

// VerifyController backs the public QR landing page. Lookup is by the
// opaque record id (URL-safe, reveals nothing), never by membership code.
type VerifyController struct {
	DB *gorm.DB
}

func NewVerifyController(db *gorm.DB) *VerifyController {
	return &VerifyController{DB: db}
}

// VerifyMember: GET /api/verify/:id — read-only, unauthenticated.
func (ctrl *VerifyController) VerifyMember(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid verification id")
	}

	var member model.MemberModel
	if err := ctrl.DB.Where("member_id = ?", memberID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Distinct from a system error: the QR simply matches nothing.
			return helper.JsonError(c, fiber.StatusNotFound, "No such membership")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Verification failed")
	}

	return helper.JsonOK(c, "verified", member)
}
