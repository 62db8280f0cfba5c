package models

import "time"

// PromoCode is an admin-managed percentage discount keyed by code.
// At most one code applies per order.
type PromoCode struct {
	ID              int       `json:"id"`
	Code            string    `json:"code"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discount_percent"`
	MinOrder        int64     `json:"min_order"`
	VIPOnly         bool      `json:"vip_only"`
	StudentOnly     bool      `json:"student_only"`
	PickupOnly      bool      `json:"pickup_only"`
	DeliveryOnly    bool      `json:"delivery_only"`
	FirstPickupOnly bool      `json:"first_pickup_only"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
