package controllers

import (
	"net/http"
	"strconv"

	"mmoss/models"
	"mmoss/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// @Summary Top up balance
// @Description Credit the account balance, at most $1000 per top-up
// @Tags Account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.TopUpRequest true "Amount in cents"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /account/top-up [post]
func (ctrl *UserController) TopUp(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.TopUpRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	balance, err := ctrl.userService.TopUp(c.Request.Context(), userID, req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Balance topped up successfully",
		Data:    gin.H{"balance": balance},
	})
}

// @Summary Purchase VIP membership
// @Description Buy or extend VIP; students get 10% off the fee
// @Tags Account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.VIPPurchaseRequest true "Years"
// @Success 200 {object} models.Response
// @Failure 402 {object} models.ErrorResponse
// @Router /account/vip [post]
func (ctrl *UserController) PurchaseVIP(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.VIPPurchaseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	user, err := ctrl.userService.PurchaseVIP(c.Request.Context(), userID, req.Years)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "VIP membership activated", Data: user})
}

// @Summary Cancel VIP membership
// @Description Immediate cancellation, no refund
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /account/vip [delete]
func (ctrl *UserController) CancelVIP(c *gin.Context) {
	userID := c.GetInt("user_id")

	if err := ctrl.userService.CancelVIP(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "VIP membership cancelled, no refund issued"})
}

// @Summary List users
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/users [get]
func (ctrl *UserController) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, total, err := ctrl.userService.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to list users"})
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Success: true,
		Message: "Users retrieved successfully",
		Data:    users,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}
