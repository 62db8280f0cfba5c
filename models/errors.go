package models

import "errors"

// Checkout and cart error kinds. Controllers match these with
// errors.Is to produce precise messages; none are retried.
var (
	ErrCapacityExceeded    = errors.New("cart capacity exceeded")
	ErrOutOfStock          = errors.New("requested quantity exceeds available stock")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrPromoInvalid        = errors.New("promo code is unknown or inactive")
	ErrPromoBelowMinimum   = errors.New("order subtotal is below the promo minimum")
	ErrPromoNotApplicable  = errors.New("promo code conditions are not met")
	ErrConflictingDiscount = errors.New("promo code cannot be combined with the student pickup discount")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInventoryChanged    = errors.New("stock changed before the order could be committed")
	ErrNotFound            = errors.New("not found")
	ErrAddressRequired     = errors.New("delivery address is required")
	ErrStoreRequired       = errors.New("pickup store selection is required")

	// ErrInvalidStatusTransition guards the forward-only order
	// lifecycle.
	ErrInvalidStatusTransition = errors.New("order status can only move forward")
)
