package model

import (
	"time"

	"github.com/google/uuid"
)

// One row per (user, product); quantity is upserted, zero removes.
type CartItemModel struct {
	CartItemID        uuid.UUID `gorm:"column:cart_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cart_item_id"`
	CartItemUserID    uuid.UUID `gorm:"column:cart_item_user_id;type:uuid;not null;uniqueIndex:ux_cart_items_user_product" json:"cart_item_user_id"`
	CartItemProductID uuid.UUID `gorm:"column:cart_item_product_id;type:uuid;not null;uniqueIndex:ux_cart_items_user_product" json:"cart_item_product_id"`
	CartItemSchoolID  uuid.UUID `gorm:"column:cart_item_school_id;type:uuid;not null" json:"cart_item_school_id"`

	CartItemQuantity int `gorm:"column:cart_item_quantity;not null" json:"cart_item_quantity"`

	CartItemCreatedAt time.Time `gorm:"column:cart_item_created_at;type:timestamptz;autoCreateTime" json:"cart_item_created_at"`
	CartItemUpdatedAt time.Time `gorm:"column:cart_item_updated_at;type:timestamptz;autoUpdateTime" json:"cart_item_updated_at"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
