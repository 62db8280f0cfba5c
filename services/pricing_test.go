package services

import (
	"testing"
	"time"

	"mmoss/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vipUser() *models.User {
	expiry := time.Now().AddDate(1, 0, 0)
	return &models.User{ID: 1, IsVIP: true, VIPExpiry: &expiry}
}

func testProducts() map[int]*models.Product {
	return map[int]*models.Product{
		1: {ID: 1, Name: "Milk 2L", Price: 500, MemberPrice: 400, Stock: 50, IsActive: true},
		2: {ID: 2, Name: "Bread", Price: 350, MemberPrice: 300, Stock: 30, IsActive: true},
		3: {ID: 3, Name: "Coffee Beans 1kg", Price: 2500, MemberPrice: 2000, Stock: 10, IsActive: true},
	}
}

func TestBuildQuoteRegularDelivery(t *testing.T) {
	// 4 x $5.00 regular price, delivery adds the flat fee.
	lines := []models.CartLine{{ProductID: 1, Quantity: 4}}
	user := &models.User{ID: 1}

	q, err := BuildQuote(lines, testProducts(), user, nil, models.FulfillmentDelivery)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), q.Subtotal)
	assert.Equal(t, models.DiscountNone, q.DiscountKind)
	assert.Equal(t, int64(0), q.DiscountAmount)
	assert.Equal(t, DeliveryFee, q.DeliveryFee)
	assert.Equal(t, int64(4000), q.Total)
}

func TestBuildQuoteVIPMemberPricing(t *testing.T) {
	// VIPs pay the member price per unit; it is not a separate
	// discount line.
	lines := []models.CartLine{{ProductID: 1, Quantity: 4}}

	q, err := BuildQuote(lines, testProducts(), vipUser(), nil, models.FulfillmentPickup)
	require.NoError(t, err)

	assert.Equal(t, int64(1600), q.Subtotal)
	assert.Equal(t, models.DiscountNone, q.DiscountKind)
	assert.Equal(t, int64(1600), q.Total)
}

func TestBuildQuoteExpiredVIPPaysRegular(t *testing.T) {
	expired := time.Now().AddDate(0, 0, -1)
	user := &models.User{ID: 1, IsVIP: true, VIPExpiry: &expired}
	lines := []models.CartLine{{ProductID: 1, Quantity: 1}}

	q, err := BuildQuote(lines, testProducts(), user, nil, models.FulfillmentPickup)
	require.NoError(t, err)
	assert.Equal(t, int64(500), q.Subtotal)
}

func TestBuildQuoteStudentDeliveryFeeWaived(t *testing.T) {
	// $40 cart, student delivery: no fee, no other discount.
	lines := []models.CartLine{{ProductID: 1, Quantity: 8}}
	user := &models.User{ID: 1, IsStudent: true}

	q, err := BuildQuote(lines, testProducts(), user, nil, models.FulfillmentDelivery)
	require.NoError(t, err)

	assert.Equal(t, int64(4000), q.Subtotal)
	assert.Equal(t, int64(0), q.DeliveryFee)
	assert.Equal(t, models.DiscountNone, q.DiscountKind)
	assert.Equal(t, int64(4000), q.Total)
}

func TestBuildQuoteStudentPickupDiscount(t *testing.T) {
	// $40 cart, student pickup: 5% off, $38 total.
	lines := []models.CartLine{{ProductID: 1, Quantity: 8}}
	user := &models.User{ID: 1, IsStudent: true}

	q, err := BuildQuote(lines, testProducts(), user, nil, models.FulfillmentPickup)
	require.NoError(t, err)

	assert.Equal(t, int64(4000), q.Subtotal)
	assert.Equal(t, models.DiscountStudentPickup, q.DiscountKind)
	assert.Equal(t, int64(200), q.DiscountAmount)
	assert.Equal(t, int64(3800), q.Total)
}

func TestBuildQuotePromoPercentage(t *testing.T) {
	// $60 cart with a 10% code on delivery: $54 plus the fee.
	lines := []models.CartLine{{ProductID: 3, Quantity: 2}, {ProductID: 1, Quantity: 2}}
	user := &models.User{ID: 1}
	promo := &models.PromoCode{Code: "VIP10", DiscountPercent: 10, IsActive: true}

	q, err := BuildQuote(lines, testProducts(), user, promo, models.FulfillmentDelivery)
	require.NoError(t, err)

	assert.Equal(t, int64(6000), q.Subtotal)
	assert.Equal(t, models.DiscountPromo, q.DiscountKind)
	assert.Equal(t, int64(600), q.DiscountAmount)
	assert.Equal(t, "VIP10", q.PromoCode)
	assert.Equal(t, int64(5400+2000), q.Total)
}

func TestBuildQuotePromoAndStudentPickupConflict(t *testing.T) {
	lines := []models.CartLine{{ProductID: 1, Quantity: 8}}
	user := &models.User{ID: 1, IsStudent: true}
	promo := &models.PromoCode{Code: "NEWMONASH20", DiscountPercent: 20, IsActive: true}

	_, err := BuildQuote(lines, testProducts(), user, promo, models.FulfillmentPickup)
	assert.ErrorIs(t, err, models.ErrConflictingDiscount)
}

func TestBuildQuoteStudentPromoOnDelivery(t *testing.T) {
	// On delivery a student may use a promo; the pickup discount
	// never enters the picture.
	lines := []models.CartLine{{ProductID: 1, Quantity: 8}}
	user := &models.User{ID: 1, IsStudent: true}
	promo := &models.PromoCode{Code: "MONASH15", DiscountPercent: 15, IsActive: true}

	q, err := BuildQuote(lines, testProducts(), user, promo, models.FulfillmentDelivery)
	require.NoError(t, err)

	assert.Equal(t, models.DiscountPromo, q.DiscountKind)
	assert.Equal(t, int64(600), q.DiscountAmount)
	assert.Equal(t, int64(0), q.DeliveryFee)
	assert.Equal(t, int64(3400), q.Total)
}

func TestBuildQuoteTotalNeverNegative(t *testing.T) {
	lines := []models.CartLine{{ProductID: 2, Quantity: 1}}
	user := &models.User{ID: 1}
	promo := &models.PromoCode{Code: "FULL", DiscountPercent: 100, IsActive: true}

	q, err := BuildQuote(lines, testProducts(), user, promo, models.FulfillmentPickup)
	require.NoError(t, err)
	assert.Equal(t, int64(0), q.Total)
}

func TestBuildQuoteEmptyCart(t *testing.T) {
	_, err := BuildQuote(nil, testProducts(), &models.User{ID: 1}, nil, models.FulfillmentPickup)
	assert.ErrorIs(t, err, models.ErrEmptyCart)
}

func TestBuildQuoteUnknownProduct(t *testing.T) {
	lines := []models.CartLine{{ProductID: 99, Quantity: 1}}
	_, err := BuildQuote(lines, testProducts(), &models.User{ID: 1}, nil, models.FulfillmentPickup)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPercentOfRoundsHalfUp(t *testing.T) {
	// 5% of 999c is 49.95c and rounds to 50c.
	assert.Equal(t, int64(50), percentOf(999, 5))
	assert.Equal(t, int64(49), percentOf(989, 5))
	assert.Equal(t, int64(0), percentOf(0, 20))
}

func TestVIPCost(t *testing.T) {
	assert.Equal(t, int64(2000), VIPCost(1, false))
	assert.Equal(t, int64(6000), VIPCost(3, false))
	assert.Equal(t, int64(1800), VIPCost(1, true))
	assert.Equal(t, int64(3600), VIPCost(2, true))
}
