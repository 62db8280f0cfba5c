package controllers

import (
	"net/http"

	"mmoss/models"
	"mmoss/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutController(checkoutService *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

// @Summary Checkout
// @Description Price the cart and commit it as an order. Fails without touching cart, balance, or stock when any rule is violated.
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Fulfillment and optional promo code"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 402 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	order, err := ctrl.checkoutService.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Order placed successfully", Data: order})
}

// @Summary List pickup stores
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /stores [get]
func (ctrl *CheckoutController) ListStores(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Pickup stores retrieved successfully",
		Data:    models.PickupStores(),
	})
}
