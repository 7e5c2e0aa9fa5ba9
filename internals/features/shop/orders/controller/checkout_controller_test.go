package controller

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCheckoutFailureResponseKeepsStockMessage(t *testing.T) {
	status, msg := checkoutFailureResponse(checkoutFailed("not enough stock for %s", "Campus Mug"))

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "not enough stock for Campus Mug", msg)
}

func TestCheckoutFailureResponseHidesStoreErrors(t *testing.T) {
	status, msg := checkoutFailureResponse(errors.New("pq: deadlock detected (SQLSTATE 40P01)"))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Checkout failed", msg)
	assert.NotContains(t, msg, "pq:")
}
