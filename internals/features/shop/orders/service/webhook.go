package service

import (
	"fmt"
	"log"
	"time"

	"alumnihub_backend/internals/features/shop/orders/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HandleOrderWebhook applies a verified Paystack event to its order. The
// raw payload is kept on the row for audit; an unknown event is ignored.
func HandleOrderWebhook(db *gorm.DB, event string, data map[string]interface{}, payload map[string]interface{}) error {
	reference, _ := data["reference"].(string)
	if reference == "" {
		return fmt.Errorf("webhook payload has no reference")
	}

	var order model.OrderModel
	if err := db.Where("order_reference = ?", reference).First(&order).Error; err != nil {
		return fmt.Errorf("order with reference %s not found", reference)
	}

	updates := map[string]interface{}{
		"order_payment_payload": datatypes.JSONMap(payload),
	}

	switch event {
	case "charge.success":
		// Idempotent: a replayed success leaves a paid order untouched.
		if order.OrderStatus == model.OrderStatusPaid {
			return nil
		}
		now := time.Now()
		updates["order_status"] = model.OrderStatusPaid
		updates["order_paid_at"] = now
	case "charge.failed":
		if order.OrderStatus == model.OrderStatusPaid {
			log.Printf("[INFO] charge.failed after paid for %s, ignoring status change", reference)
		} else {
			updates["order_status"] = model.OrderStatusFailed
		}
	default:
		log.Printf("[INFO] unhandled webhook event %q for %s", event, reference)
		return nil
	}

	if err := db.Model(&order).Updates(updates).Error; err != nil {
		return fmt.Errorf("update order %s: %w", reference, err)
	}
	return nil
}
