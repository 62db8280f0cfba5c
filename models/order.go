package models

import "time"

// Order statuses. Transitions only move forward; a placed order is
// never reversed back into a cart.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

var orderStatusRank = map[string]int{
	OrderStatusPending:   0,
	OrderStatusConfirmed: 1,
	OrderStatusShipped:   2,
	OrderStatusDelivered: 3,
}

// ValidOrderStatus reports whether s names a known status.
func ValidOrderStatus(s string) bool {
	_, ok := orderStatusRank[s]
	return ok
}

// CanTransitionOrderStatus reports whether an order may move from
// one status to the next. Only strictly forward moves are allowed.
func CanTransitionOrderStatus(from, to string) bool {
	a, okA := orderStatusRank[from]
	b, okB := orderStatusRank[to]
	return okA && okB && b > a
}

// Fulfillment methods.
const (
	FulfillmentDelivery = "delivery"
	FulfillmentPickup   = "pickup"
)

// Discount kinds recorded on an order. At most one is nonzero.
const (
	DiscountNone          = "none"
	DiscountPromo         = "promo"
	DiscountStudentPickup = "student_pickup"
)

// Order is the immutable record produced by a successful checkout
// commit. Amounts are in cents.
type Order struct {
	ID              int         `json:"id"`
	OrderNumber     string      `json:"order_number"`
	UserID          int         `json:"user_id"`
	Items           []OrderItem `json:"items,omitempty"`
	Subtotal        int64       `json:"subtotal"`
	DiscountKind    string      `json:"discount_kind"`
	DiscountAmount  int64       `json:"discount_amount"`
	PromoCode       string      `json:"promo_code,omitempty"`
	DeliveryFee     int64       `json:"delivery_fee"`
	Total           int64       `json:"total"`
	Fulfillment     string      `json:"fulfillment"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	PickupStoreID   int         `json:"pickup_store_id,omitempty"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID          int    `json:"id"`
	OrderID     int    `json:"order_id"`
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	LineTotal   int64  `json:"line_total"`
}
