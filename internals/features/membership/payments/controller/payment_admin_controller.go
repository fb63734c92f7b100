package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/model"
	helper "github.com/chrisarpong/TEIN-Registration/internals/helpers"
)

type PaymentAdminController struct {
	DB *gorm.DB
}

func NewPaymentAdminController(db *gorm.DB) *PaymentAdminController {
	return &PaymentAdminController{DB: db}
}

// paymentWithMember flattens the member name onto the payment row for the
// dashboard history table.
type paymentWithMember struct {
	model.PaymentModel
	MemberFullName string  `json:"member_full_name"`
	MemberCode     *string `json:"member_code,omitempty"`
}

// ListPayments: GET /api/a/payments?page=&per_page= — newest first.
func (ctrl *PaymentAdminController) ListPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.PaymentModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count payments")
	}

	var payments []paymentWithMember
	if err := ctrl.DB.Model(&model.PaymentModel{}).
		Select("payments.*, members.member_full_name, members.member_code").
		Joins("LEFT JOIN members ON members.member_id = payments.payment_member_id").
		Order("payments.payment_created_at desc").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return helper.JsonList(c, "payments", payments, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
