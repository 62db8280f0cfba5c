package services

import (
	"context"
	"strings"
	"time"

	"mmoss/models"
)

// PromoStore is the promo code lookup the engine consumes.
type PromoStore interface {
	GetPromoByCode(ctx context.Context, code string) (*models.PromoCode, error)
}

type PromoService struct {
	promos PromoStore
}

func NewPromoService(promos PromoStore) *PromoService {
	return &PromoService{promos: promos}
}

// Resolve looks up a promo code and checks every applicability rule
// against the given order. Exactly one code resolves per checkout;
// codes never stack.
//
// The minimum-order threshold is checked against the subtotal the
// user would actually pay, i.e. member-priced for active VIPs.
func (s *PromoService) Resolve(ctx context.Context, code string, subtotal int64, user *models.User, fulfillment string) (*models.PromoCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	promo, err := s.promos.GetPromoByCode(ctx, code)
	if err != nil || promo == nil {
		return nil, models.ErrPromoInvalid
	}
	if !promo.IsActive {
		return nil, models.ErrPromoInvalid
	}

	if err := checkPromoApplicability(promo, user, fulfillment); err != nil {
		return nil, err
	}

	if subtotal < promo.MinOrder {
		return nil, models.ErrPromoBelowMinimum
	}

	return promo, nil
}

func checkPromoApplicability(promo *models.PromoCode, user *models.User, fulfillment string) error {
	if promo.VIPOnly && (user == nil || !user.IsVIPActive(time.Now())) {
		return models.ErrPromoNotApplicable
	}
	if promo.StudentOnly && (user == nil || !user.IsStudent) {
		return models.ErrPromoNotApplicable
	}
	if promo.PickupOnly && fulfillment != models.FulfillmentPickup {
		return models.ErrPromoNotApplicable
	}
	if promo.DeliveryOnly && fulfillment != models.FulfillmentDelivery {
		return models.ErrPromoNotApplicable
	}
	if promo.FirstPickupOnly && (user == nil || user.HasPickupOrder) {
		return models.ErrPromoNotApplicable
	}
	return nil
}
