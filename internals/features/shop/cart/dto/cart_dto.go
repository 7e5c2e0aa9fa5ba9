package dto

import (
	"github.com/google/uuid"
)

type CartSetItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0,lte=999"`
}

// CartLine joins the cart row with its product for rendering.
type CartLine struct {
	CartItemID       uuid.UUID `gorm:"column:cart_item_id" json:"cart_item_id"`
	ProductID        uuid.UUID `gorm:"column:product_id" json:"product_id"`
	ProductName      string    `gorm:"column:product_name" json:"product_name"`
	ProductPrice     int64     `gorm:"column:product_price" json:"product_price"`
	ProductImageURL  string    `gorm:"column:product_image_url" json:"product_image_url"`
	CartItemQuantity int       `gorm:"column:cart_item_quantity" json:"cart_item_quantity"`
	LineTotal        int64     `gorm:"column:line_total" json:"line_total"`
}
