package controllers

import (
	"net/http"
	"strconv"

	"mmoss/models"
	"mmoss/repositories"

	"github.com/gin-gonic/gin"
)

type PromoController struct {
	promoRepo *repositories.PromoRepository
}

func NewPromoController(promoRepo *repositories.PromoRepository) *PromoController {
	return &PromoController{promoRepo: promoRepo}
}

// @Summary List active promo codes
// @Description Promo codes customers may browse, with their conditions
// @Tags Promos
// @Produce json
// @Success 200 {object} models.Response
// @Router /promos [get]
func (ctrl *PromoController) ListActivePromos(c *gin.Context) {
	promos, err := ctrl.promoRepo.ListPromos(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to list promos"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Promos retrieved successfully", Data: promos})
}

// @Summary List all promo codes
// @Tags Admin - Promos
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/promos [get]
func (ctrl *PromoController) ListAllPromos(c *gin.Context) {
	promos, err := ctrl.promoRepo.ListPromos(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to list promos"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Promos retrieved successfully", Data: promos})
}

// @Summary Create promo code
// @Tags Admin - Promos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreatePromoRequest true "Promo data"
// @Success 201 {object} models.Response
// @Router /admin/promos [post]
func (ctrl *PromoController) CreatePromo(c *gin.Context) {
	var req models.CreatePromoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	promo := &models.PromoCode{
		Code:            req.Code,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		MinOrder:        req.MinOrder,
		VIPOnly:         req.VIPOnly,
		StudentOnly:     req.StudentOnly,
		PickupOnly:      req.PickupOnly,
		DeliveryOnly:    req.DeliveryOnly,
		FirstPickupOnly: req.FirstPickupOnly,
		IsActive:        true,
	}

	if err := ctrl.promoRepo.CreatePromo(c.Request.Context(), promo); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Failed to create promo, code may already exist"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Promo created successfully", Data: promo})
}

// @Summary Update promo code
// @Tags Admin - Promos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Promo ID"
// @Param request body models.UpdatePromoRequest true "Promo data"
// @Success 200 {object} models.Response
// @Router /admin/promos/{id} [patch]
func (ctrl *PromoController) UpdatePromo(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid promo ID"})
		return
	}

	var req models.UpdatePromoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	promo, err := ctrl.promoRepo.GetPromoByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Promo not found"})
		return
	}

	if req.Description != "" {
		promo.Description = req.Description
	}
	if req.DiscountPercent != nil {
		promo.DiscountPercent = *req.DiscountPercent
	}
	if req.MinOrder != nil {
		promo.MinOrder = *req.MinOrder
	}
	if req.VIPOnly != nil {
		promo.VIPOnly = *req.VIPOnly
	}
	if req.StudentOnly != nil {
		promo.StudentOnly = *req.StudentOnly
	}
	if req.PickupOnly != nil {
		promo.PickupOnly = *req.PickupOnly
	}
	if req.DeliveryOnly != nil {
		promo.DeliveryOnly = *req.DeliveryOnly
	}
	if req.FirstPickupOnly != nil {
		promo.FirstPickupOnly = *req.FirstPickupOnly
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}

	if err := ctrl.promoRepo.UpdatePromo(c.Request.Context(), promo); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update promo"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Promo updated successfully", Data: promo})
}

// @Summary Delete promo code
// @Tags Admin - Promos
// @Security BearerAuth
// @Produce json
// @Param id path int true "Promo ID"
// @Success 200 {object} models.Response
// @Router /admin/promos/{id} [delete]
func (ctrl *PromoController) DeletePromo(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid promo ID"})
		return
	}

	if err := ctrl.promoRepo.DeletePromo(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to delete promo"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Promo deleted successfully"})
}
