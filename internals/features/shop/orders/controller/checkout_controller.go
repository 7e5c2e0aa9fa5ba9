package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	cartModel "alumnihub_backend/internals/features/shop/cart/model"
	"alumnihub_backend/internals/features/shop/orders/model"
	"alumnihub_backend/internals/features/shop/orders/service"
	productModel "alumnihub_backend/internals/features/shop/products/model"
	authModel "alumnihub_backend/internals/features/users/auth/model"
	helper "alumnihub_backend/internals/helpers"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckoutController struct {
	DB *gorm.DB
}

func NewCheckoutController(db *gorm.DB) *CheckoutController {
	return &CheckoutController{DB: db}
}

// checkoutError carries a message safe to show the buyer; anything else
// that aborts the transaction stays server-side.
type checkoutError struct {
	msg string
}

func (e *checkoutError) Error() string { return e.msg }

func checkoutFailed(format string, args ...any) error {
	return &checkoutError{msg: fmt.Sprintf(format, args...)}
}

func checkoutFailureResponse(err error) (int, string) {
	var ce *checkoutError
	if errors.As(err, &ce) {
		return fiber.StatusConflict, ce.msg
	}
	return fiber.StatusInternalServerError, "Checkout failed"
}

// POST /api/u/checkout
// Snapshots the cart into an order, decrements stock, clears the cart and
// initializes a Paystack transaction, all in one transaction except the
// gateway call.
func (ctrl *CheckoutController) Checkout(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}

	var user authModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", sess.UserID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var cartItems []cartModel.CartItemModel
	if err := ctrl.DB.
		Where("cart_item_user_id = ? AND cart_item_school_id = ?", sess.UserID, sess.SchoolID).
		Find(&cartItems).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cart")
	}
	if len(cartItems) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cart is empty")
	}

	reference := fmt.Sprintf("ord-%d-%s", time.Now().Unix(), uuid.New().String()[:8])

	order := model.OrderModel{
		OrderSchoolID:  sess.SchoolID,
		OrderUserID:    sess.UserID,
		OrderReference: reference,
		OrderStatus:    model.OrderStatusPending,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var total int64
		orderItems := make([]model.OrderItemModel, 0, len(cartItems))

		for _, ci := range cartItems {
			var product productModel.ProductModel
			if err := tx.
				Where("product_id = ? AND product_is_active = TRUE", ci.CartItemProductID).
				First(&product).Error; err != nil {
				return checkoutFailed("product %s no longer available", ci.CartItemProductID)
			}

			// Guarded decrement so two checkouts cannot oversell.
			res := tx.Model(&productModel.ProductModel{}).
				Where("product_id = ? AND product_stock >= ?", product.ProductID, ci.CartItemQuantity).
				Update("product_stock", gorm.Expr("product_stock - ?", ci.CartItemQuantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return checkoutFailed("not enough stock for %s", product.ProductName)
			}

			total += product.ProductPrice * int64(ci.CartItemQuantity)
			orderItems = append(orderItems, model.OrderItemModel{
				OrderItemProductID:   product.ProductID,
				OrderItemProductName: product.ProductName,
				OrderItemUnitPrice:   product.ProductPrice,
				OrderItemQuantity:    ci.CartItemQuantity,
			})
		}

		order.OrderTotalAmount = total
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range orderItems {
			orderItems[i].OrderItemOrderID = order.OrderID
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}

		return tx.
			Where("cart_item_user_id = ? AND cart_item_school_id = ?", sess.UserID, sess.SchoolID).
			Delete(&cartModel.CartItemModel{}).Error
	})
	if err != nil {
		log.Printf("[ERROR] checkout for %s: %v", sess.UserID, err)
		status, msg := checkoutFailureResponse(err)
		return helper.JsonError(c, status, msg)
	}

	payment, err := service.InitializeTransaction(c.UserContext(), user.UserEmail, order.OrderTotalAmount, reference)
	if err != nil {
		// Order stays pending; payment can be retried against the same
		// reference from the orders page.
		log.Printf("[ERROR] paystack initialize for %s: %v", reference, err)
		return helper.JsonCreated(c, "Order created, payment initialization failed", fiber.Map{
			"order":       order,
			"payment_url": nil,
		})
	}

	return helper.JsonCreated(c, "Order created", fiber.Map{
		"order":       order,
		"payment_url": payment.AuthorizationURL,
	})
}

// GET /api/u/orders
func (ctrl *CheckoutController) ListOrders(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.OrderModel{}).
		Where("order_user_id = ? AND order_school_id = ?", sess.UserID, sess.SchoolID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count orders")
	}

	var orders []model.OrderModel
	if err := tx.
		Order("order_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch orders")
	}

	return helper.JsonList(c, "Orders fetched", orders,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/orders/:id
func (ctrl *CheckoutController) GetOrderByID(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	var order model.OrderModel
	if err := ctrl.DB.
		Where("order_id = ? AND order_user_id = ?", orderID, sess.UserID).
		First(&order).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Order not found")
	}

	var items []model.OrderItemModel
	if err := ctrl.DB.
		Where("order_item_order_id = ?", orderID).
		Order("order_item_created_at ASC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch order items")
	}

	return helper.JsonOK(c, "Order fetched", fiber.Map{
		"order": order,
		"items": items,
	})
}
