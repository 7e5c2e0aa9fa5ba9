package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusFailed    = "failed"
	OrderStatusCancelled = "cancelled"
)

type OrderModel struct {
	OrderID       uuid.UUID `gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_id"`
	OrderSchoolID uuid.UUID `gorm:"column:order_school_id;type:uuid;not null;index:idx_orders_school_id" json:"order_school_id"`
	OrderUserID   uuid.UUID `gorm:"column:order_user_id;type:uuid;not null;index:idx_orders_user_id" json:"order_user_id"`

	// Gateway reference, also the webhook correlation key.
	OrderReference string `gorm:"column:order_reference;type:varchar(100);not null;uniqueIndex:ux_orders_reference" json:"order_reference"`

	OrderTotalAmount int64  `gorm:"column:order_total_amount;not null" json:"order_total_amount"`
	OrderStatus      string `gorm:"column:order_status;type:varchar(20);not null;default:'pending'" json:"order_status"`

	OrderPaidAt         *time.Time        `gorm:"column:order_paid_at;type:timestamptz" json:"order_paid_at"`
	OrderPaymentPayload datatypes.JSONMap `gorm:"column:order_payment_payload;type:jsonb" json:"order_payment_payload,omitempty"`

	OrderCreatedAt time.Time `gorm:"column:order_created_at;type:timestamptz;autoCreateTime" json:"order_created_at"`
	OrderUpdatedAt time.Time `gorm:"column:order_updated_at;type:timestamptz;autoUpdateTime" json:"order_updated_at"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel snapshots name and unit price at checkout time.
type OrderItemModel struct {
	OrderItemID        uuid.UUID `gorm:"column:order_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_item_id"`
	OrderItemOrderID   uuid.UUID `gorm:"column:order_item_order_id;type:uuid;not null;index:idx_order_items_order_id" json:"order_item_order_id"`
	OrderItemProductID uuid.UUID `gorm:"column:order_item_product_id;type:uuid;not null" json:"order_item_product_id"`

	OrderItemProductName string `gorm:"column:order_item_product_name;type:varchar(255);not null" json:"order_item_product_name"`
	OrderItemUnitPrice   int64  `gorm:"column:order_item_unit_price;not null" json:"order_item_unit_price"`
	OrderItemQuantity    int    `gorm:"column:order_item_quantity;not null" json:"order_item_quantity"`

	OrderItemCreatedAt time.Time `gorm:"column:order_item_created_at;type:timestamptz;autoCreateTime" json:"order_item_created_at"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
