package controller

import (
	"database/sql"
	"log"

	"alumnihub_backend/internals/features/shop/cart/dto"
	"alumnihub_backend/internals/features/shop/cart/model"
	productModel "alumnihub_backend/internals/features/shop/products/model"
	helper "alumnihub_backend/internals/helpers"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CartController struct {
	DB *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

// PUT /api/u/cart/items
// Quantity upsert on (user, product); zero removes the line.
func (ctrl *CartController) SetItem(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}

	var req dto.CartSetItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var product productModel.ProductModel
	if err := ctrl.DB.
		Where("product_id = ? AND product_school_id = ? AND product_is_active = TRUE",
			req.ProductID, sess.SchoolID).
		First(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
	}

	if req.Quantity == 0 {
		res := ctrl.DB.
			Where("cart_item_user_id = ? AND cart_item_product_id = ?", sess.UserID, req.ProductID).
			Delete(&model.CartItemModel{})
		if res.Error != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove cart item")
		}
		return helper.JsonDeleted(c, "Item removed from cart", fiber.Map{"product_id": req.ProductID})
	}

	if product.ProductStock < req.Quantity {
		return helper.JsonError(c, fiber.StatusConflict, "Not enough stock")
	}

	var row model.CartItemModel
	raw := `
		INSERT INTO cart_items (
			cart_item_id,
			cart_item_user_id,
			cart_item_product_id,
			cart_item_school_id,
			cart_item_quantity
		)
		VALUES (gen_random_uuid(), @user_id, @product_id, @school_id, @quantity)
		ON CONFLICT (cart_item_user_id, cart_item_product_id)
		DO UPDATE SET
			cart_item_quantity = EXCLUDED.cart_item_quantity,
			cart_item_updated_at = NOW()
		RETURNING
			cart_item_id,
			cart_item_user_id,
			cart_item_product_id,
			cart_item_school_id,
			cart_item_quantity,
			cart_item_created_at,
			cart_item_updated_at
	`
	if err := ctrl.DB.
		Raw(raw,
			sql.Named("user_id", sess.UserID),
			sql.Named("product_id", req.ProductID),
			sql.Named("school_id", sess.SchoolID),
			sql.Named("quantity", req.Quantity),
		).
		Scan(&row).Error; err != nil {
		log.Printf("[ERROR] set cart item: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update cart")
	}

	return helper.JsonOK(c, "Cart updated", row)
}

// GET /api/u/cart
func (ctrl *CartController) GetCart(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}

	var lines []dto.CartLine
	if err := ctrl.DB.
		Table("cart_items").
		Select(`cart_items.cart_item_id,
			products.product_id,
			products.product_name,
			products.product_price,
			products.product_image_url,
			cart_items.cart_item_quantity,
			products.product_price * cart_items.cart_item_quantity AS line_total`).
		Joins("JOIN products ON products.product_id = cart_items.cart_item_product_id AND products.product_deleted_at IS NULL").
		Where("cart_items.cart_item_user_id = ? AND cart_items.cart_item_school_id = ?", sess.UserID, sess.SchoolID).
		Order("cart_items.cart_item_created_at ASC").
		Scan(&lines).Error; err != nil {
		log.Printf("[ERROR] fetch cart: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cart")
	}

	var total int64
	for _, l := range lines {
		total += l.LineTotal
	}

	return helper.JsonOK(c, "Cart fetched", fiber.Map{
		"items": lines,
		"total": total,
	})
}

// DELETE /api/u/cart
func (ctrl *CartController) ClearCart(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.
		Where("cart_item_user_id = ? AND cart_item_school_id = ?", sess.UserID, sess.SchoolID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to clear cart")
	}

	return helper.JsonDeleted(c, "Cart cleared", nil)
}
