package controller

import (
	"encoding/json"
	"log"

	"alumnihub_backend/internals/features/shop/orders/service"
	helper "alumnihub_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WebhookController struct {
	DB *gorm.DB
}

func NewWebhookController(db *gorm.DB) *WebhookController {
	return &WebhookController{DB: db}
}

// POST /api/public/webhooks/paystack
// Signature is checked against the raw body before any parsing; Paystack
// expects a 200 once the event is accepted.
func (ctrl *WebhookController) HandlePaystack(c *fiber.Ctx) error {
	body := c.Body()

	signature := c.Get("x-paystack-signature")
	if !service.VerifyWebhookSignature(body, signature) {
		log.Printf("[ERROR] paystack webhook signature mismatch from %s", c.IP())
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid signature")
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	event, _ := payload["event"].(string)
	data, _ := payload["data"].(map[string]interface{})

	if err := service.HandleOrderWebhook(ctrl.DB, event, data, payload); err != nil {
		log.Printf("[ERROR] paystack webhook: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Webhook not processed")
	}

	return helper.JsonOK(c, "Webhook processed", nil)
}
