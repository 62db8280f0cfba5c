package services

import (
	"mmoss/models"
)

// Delivery and membership pricing rules. Amounts in cents.
const (
	DeliveryFee               int64 = 2000
	StudentPickupPercent            = 5
	VIPYearCost               int64 = 2000
	VIPStudentDiscountPercent       = 10
	MaxTopUp                  int64 = 100000
)

// Quote is a fully priced checkout draft. It carries everything the
// commit needs and nothing is written until the commit runs.
type Quote struct {
	Items          []models.OrderItem
	Subtotal       int64
	DiscountKind   string
	DiscountAmount int64
	PromoCode      string
	DeliveryFee    int64
	Total          int64
}

// percentOf computes pct% of amount in cents, rounding half up.
func percentOf(amount int64, pct int) int64 {
	return (amount*int64(pct) + 50) / 100
}

// BuildQuote prices a cart for a user. promo is the already-resolved
// promo rule, or nil when no code was supplied. Pure: no I/O, no
// mutation of its inputs.
//
// Discount paths are mutually exclusive: a resolved promo code takes
// the percentage discount; otherwise a student picking up gets 5%
// off. A student cannot combine a promo with the pickup discount,
// that combination fails with models.ErrConflictingDiscount. VIP member
// pricing is not a discount layer here: it is already baked into the
// unit prices, so a VIP with a promo code gets both effects.
func BuildQuote(lines []models.CartLine, products map[int]*models.Product, user *models.User, promo *models.PromoCode, fulfillment string) (*Quote, error) {
	if len(lines) == 0 {
		return nil, models.ErrEmptyCart
	}

	q := &Quote{DiscountKind: models.DiscountNone}

	for _, line := range lines {
		p, ok := products[line.ProductID]
		if !ok {
			return nil, models.ErrNotFound
		}
		unit := p.UnitPriceFor(user)
		item := models.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			UnitPrice:   unit,
			LineTotal:   unit * int64(line.Quantity),
		}
		q.Items = append(q.Items, item)
		q.Subtotal += item.LineTotal
	}

	isStudent := user != nil && user.IsStudent

	if promo != nil {
		if fulfillment == models.FulfillmentPickup && isStudent {
			return nil, models.ErrConflictingDiscount
		}
		q.DiscountKind = models.DiscountPromo
		q.DiscountAmount = percentOf(q.Subtotal, promo.DiscountPercent)
		q.PromoCode = promo.Code
	} else if fulfillment == models.FulfillmentPickup && isStudent {
		q.DiscountKind = models.DiscountStudentPickup
		q.DiscountAmount = percentOf(q.Subtotal, StudentPickupPercent)
	}

	if fulfillment == models.FulfillmentDelivery && !isStudent {
		q.DeliveryFee = DeliveryFee
	}

	q.Total = q.Subtotal - q.DiscountAmount
	if q.Total < 0 {
		q.Total = 0
	}
	q.Total += q.DeliveryFee

	return q, nil
}
