package services

import (
	"context"
	"testing"

	"mmoss/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePromoStore struct {
	promos map[string]*models.PromoCode
}

func (f *fakePromoStore) GetPromoByCode(_ context.Context, code string) (*models.PromoCode, error) {
	p, ok := f.promos[code]
	if !ok {
		return nil, models.ErrNotFound
	}
	return p, nil
}

func newPromoService() *PromoService {
	return NewPromoService(&fakePromoStore{promos: map[string]*models.PromoCode{
		"NEWMONASH20": {Code: "NEWMONASH20", DiscountPercent: 20, PickupOnly: true, FirstPickupOnly: true, IsActive: true},
		"VIP10":       {Code: "VIP10", DiscountPercent: 10, VIPOnly: true, MinOrder: 5000, IsActive: true},
		"MONASH15":    {Code: "MONASH15", DiscountPercent: 15, StudentOnly: true, DeliveryOnly: true, MinOrder: 3000, IsActive: true},
		"RETIRED":     {Code: "RETIRED", DiscountPercent: 50, IsActive: false},
	}})
}

func TestResolveNormalizesCode(t *testing.T) {
	promos := newPromoService()
	user := vipUser()

	promo, err := promos.Resolve(context.Background(), "  vip10 ", 6000, user, models.FulfillmentDelivery)
	require.NoError(t, err)
	assert.Equal(t, "VIP10", promo.Code)
}

func TestResolveUnknownOrInactive(t *testing.T) {
	promos := newPromoService()
	user := &models.User{ID: 1}

	_, err := promos.Resolve(context.Background(), "NOPE", 6000, user, models.FulfillmentDelivery)
	assert.ErrorIs(t, err, models.ErrPromoInvalid)

	_, err = promos.Resolve(context.Background(), "RETIRED", 6000, user, models.FulfillmentDelivery)
	assert.ErrorIs(t, err, models.ErrPromoInvalid)
}

func TestResolveVIPOnly(t *testing.T) {
	promos := newPromoService()

	_, err := promos.Resolve(context.Background(), "VIP10", 6000, &models.User{ID: 1}, models.FulfillmentDelivery)
	assert.ErrorIs(t, err, models.ErrPromoNotApplicable)

	_, err = promos.Resolve(context.Background(), "VIP10", 6000, vipUser(), models.FulfillmentDelivery)
	assert.NoError(t, err)
}

func TestResolveBelowMinimum(t *testing.T) {
	promos := newPromoService()

	_, err := promos.Resolve(context.Background(), "VIP10", 4999, vipUser(), models.FulfillmentDelivery)
	assert.ErrorIs(t, err, models.ErrPromoBelowMinimum)
}

func TestResolveStudentDeliveryOnly(t *testing.T) {
	promos := newPromoService()
	student := &models.User{ID: 1, IsStudent: true}

	_, err := promos.Resolve(context.Background(), "MONASH15", 3500, &models.User{ID: 2}, models.FulfillmentDelivery)
	assert.ErrorIs(t, err, models.ErrPromoNotApplicable)

	_, err = promos.Resolve(context.Background(), "MONASH15", 3500, student, models.FulfillmentPickup)
	assert.ErrorIs(t, err, models.ErrPromoNotApplicable)

	_, err = promos.Resolve(context.Background(), "MONASH15", 3500, student, models.FulfillmentDelivery)
	assert.NoError(t, err)
}

func TestResolveFirstPickupOnly(t *testing.T) {
	promos := newPromoService()

	newcomer := &models.User{ID: 1}
	_, err := promos.Resolve(context.Background(), "NEWMONASH20", 1000, newcomer, models.FulfillmentPickup)
	assert.NoError(t, err)

	// Pickup-only: rejected on delivery.
	_, err = promos.Resolve(context.Background(), "NEWMONASH20", 1000, newcomer, models.FulfillmentDelivery)
	assert.ErrorIs(t, err, models.ErrPromoNotApplicable)

	returning := &models.User{ID: 2, HasPickupOrder: true}
	_, err = promos.Resolve(context.Background(), "NEWMONASH20", 1000, returning, models.FulfillmentPickup)
	assert.ErrorIs(t, err, models.ErrPromoNotApplicable)
}
