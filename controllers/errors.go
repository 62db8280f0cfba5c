package controllers

import (
	"errors"
	"net/http"

	"mmoss/models"

	"github.com/gin-gonic/gin"
)

// respondError maps the domain error kinds to HTTP statuses with
// their messages intact, so the client can tell exactly which rule
// failed.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrCapacityExceeded),
		errors.Is(err, models.ErrOutOfStock),
		errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrPromoInvalid),
		errors.Is(err, models.ErrPromoBelowMinimum),
		errors.Is(err, models.ErrPromoNotApplicable),
		errors.Is(err, models.ErrAddressRequired),
		errors.Is(err, models.ErrStoreRequired),
		errors.Is(err, models.ErrInvalidStatusTransition):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrConflictingDiscount),
		errors.Is(err, models.ErrInventoryChanged):
		status = http.StatusConflict
	case errors.Is(err, models.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	}

	c.JSON(status, models.ErrorResponse{
		Success: false,
		Message: err.Error(),
	})
}
