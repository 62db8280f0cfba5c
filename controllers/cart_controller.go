package controllers

import (
	"net/http"
	"strconv"

	"mmoss/models"
	"mmoss/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
	userRepo    services.UserStore
}

func NewCartController(cartService *services.CartService, userRepo services.UserStore) *CartController {
	return &CartController{cartService: cartService, userRepo: userRepo}
}

// @Summary View cart
// @Description Cart lines with current prices at the viewer's rate
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	user, err := ctrl.userRepo.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "User not found"})
		return
	}

	view, err := ctrl.cartService.View(c.Request.Context(), userID, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart retrieved successfully", Data: view})
}

// @Summary Add to cart
// @Description Add a product or increase its quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.cartService.Add(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item added to cart"})
}

// @Summary Set line quantity
// @Description Set the absolute quantity; zero removes the line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.SetCartQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) SetQuantity(c *gin.Context) {
	userID := c.GetInt("user_id")
	productID, _ := strconv.Atoi(c.Param("id"))
	if productID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return
	}

	var req models.SetCartQuantityRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.cartService.SetQuantity(c.Request.Context(), userID, productID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart updated"})
}

// @Summary Remove from cart
// @Description Remove a line; removing an absent product is a no-op
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	userID := c.GetInt("user_id")
	productID, _ := strconv.Atoi(c.Param("id"))
	if productID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return
	}

	ctrl.cartService.Remove(userID, productID)

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item removed from cart"})
}

// @Summary Clear cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID := c.GetInt("user_id")
	ctrl.cartService.Clear(userID)

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart cleared"})
}
