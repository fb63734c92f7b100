package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/service"
	helper "github.com/chrisarpong/TEIN-Registration/internals/helpers"
)

type WebhookController struct {
	DB *gorm.DB
}

func NewWebhookController(db *gorm.DB) *WebhookController {
	return &WebhookController{DB: db}
}

// Notification: POST /api/payments/notification — the gateway's server-to-
// server callback. Always answers 200 for orders we do not recognize so the
// gateway stops retrying them.
func (ctrl *WebhookController) Notification(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}

	orderID, _ := payload["order_id"].(string)
	status, _ := payload["transaction_status"].(string)
	if orderID == "" || status == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id and transaction_status are required")
	}

	if err := service.SettlePayment(ctrl.DB, orderID, status); err != nil {
		if errors.Is(err, service.ErrUnknownOrder) {
			log.Printf("[INFO] webhook: unknown order %s", orderID)
			return helper.JsonOK(c, "ignored", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process notification: "+err.Error())
	}

	return helper.JsonOK(c, "processed", nil)
}
