package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/constants"
	memberModel "github.com/chrisarpong/TEIN-Registration/internals/features/membership/members/model"
	memberService "github.com/chrisarpong/TEIN-Registration/internals/features/membership/members/service"
	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/dto"
	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/model"
	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/service"
	helper "github.com/chrisarpong/TEIN-Registration/internals/helpers"
)

type RenewalController struct {
	DB      *gorm.DB
	Gateway service.CheckoutGateway
}

func NewRenewalController(db *gorm.DB, gateway service.CheckoutGateway) *RenewalController {
	return &RenewalController{DB: db, Gateway: gateway}
}

// LookupMember: GET /api/renewals/lookup?member_code= — resolves a code so
// the renewal form can show who is about to pay. A missing code is a plain
// not-found, never a server error.
func (ctrl *RenewalController) LookupMember(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Query("member_code"))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "member_code is required")
	}

	var member memberModel.MemberModel
	if err := ctrl.DB.Where("member_code = ?", code).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No such membership")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "member", fiber.Map{
		"member_id":        member.MemberID,
		"member_code":      member.MemberCode,
		"member_full_name": member.MemberFullName,
		"member_program":   member.MemberProgram,
		"member_level":     member.MemberLevel,
	})
}

// StartRenewal: POST /api/renewals — renewal checkout for an existing code.
// Writes only a Pending payment row; the member record itself is untouched
// until settlement.
func (ctrl *RenewalController) StartRenewal(c *fiber.Ctx) error {
	var body dto.RenewalRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, validationFieldErrors(err))
	}

	code := strings.TrimSpace(body.MemberCode)

	var member memberModel.MemberModel
	if err := ctrl.DB.Where("member_code = ?", code).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No such membership")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if err := memberService.ValidateRenewal(member.MemberCode); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	orderID := fmt.Sprintf("TEINRNW-%d", time.Now().UnixNano())
	payment := model.PaymentModel{
		PaymentMemberID: member.MemberID,
		PaymentAmount:   constants.AmountRenewal,
		PaymentType:     constants.PaymentTypeRenewal,
		PaymentOrderID:  orderID,
		PaymentStatus:   constants.PaymentStatusPending,
	}
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to start renewal: "+err.Error())
	}

	payerEmail := "renewal@tein-ucc.com"
	if member.MemberEmail != nil && strings.TrimSpace(*member.MemberEmail) != "" {
		payerEmail = strings.TrimSpace(*member.MemberEmail)
	}

	token, err := ctrl.Gateway.CreateCheckout(orderID, int64(constants.AmountRenewal*100), member.MemberFullName, payerEmail)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway error: "+err.Error())
	}

	return helper.JsonCreated(c, "Checkout created", dto.CheckoutResponse{
		OrderID:   orderID,
		SnapToken: token,
		Amount:    constants.AmountRenewal,
	})
}
