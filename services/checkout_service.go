package services

import (
	"context"
	"log"
	"strings"

	"mmoss/models"
)

// UserStore is the profile lookup the engine consumes.
type UserStore interface {
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetProfileAddress(ctx context.Context, id int) (string, error)
}

// OrderStore commits a priced order. CommitOrder is transactional:
// it decrements stock for every line, debits the balance, records
// the order, or does none of those. It fails with
// models.ErrInventoryChanged when stock moved under the order and
// models.ErrInsufficientFunds when the balance no longer covers the total.
type OrderStore interface {
	CommitOrder(ctx context.Context, order *models.Order) error
}

// Mailer sends the post-commit confirmation. Best effort.
type Mailer interface {
	SendOrderConfirmation(toEmail string, order *models.Order) error
}

type CheckoutService struct {
	carts   *CartService
	catalog Catalog
	promos  *PromoService
	users   UserStore
	orders  OrderStore
	mailer  Mailer
}

func NewCheckoutService(carts *CartService, catalog Catalog, promos *PromoService, users UserStore, orders OrderStore, mailer Mailer) *CheckoutService {
	return &CheckoutService{
		carts:   carts,
		catalog: catalog,
		promos:  promos,
		users:   users,
		orders:  orders,
		mailer:  mailer,
	}
}

// Checkout prices the user's cart and, if the funds cover the total,
// commits it as an immutable order. Any failure leaves the cart,
// balance, and inventory exactly as they were; the user corrects the
// input and resubmits.
func (s *CheckoutService) Checkout(ctx context.Context, userID int, req models.CheckoutRequest) (*models.Order, error) {
	lines := s.carts.Lines(userID)
	if len(lines) == 0 {
		return nil, models.ErrEmptyCart
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil || user == nil {
		return nil, models.ErrNotFound
	}

	address, storeID, err := s.resolveFulfillment(ctx, user, req)
	if err != nil {
		return nil, err
	}

	products := make(map[int]*models.Product, len(lines))
	for _, line := range lines {
		p, err := s.catalog.GetProduct(ctx, line.ProductID)
		if err != nil || p == nil {
			return nil, models.ErrNotFound
		}
		products[line.ProductID] = p
	}

	// The promo minimum is checked against the member-priced
	// subtotal, so price first, resolve second.
	var promo *models.PromoCode
	if code := strings.TrimSpace(req.PromoCode); code != "" {
		draft, err := BuildQuote(lines, products, user, nil, req.Fulfillment)
		if err != nil {
			return nil, err
		}
		promo, err = s.promos.Resolve(ctx, code, draft.Subtotal, user, req.Fulfillment)
		if err != nil {
			return nil, err
		}
	}

	quote, err := BuildQuote(lines, products, user, promo, req.Fulfillment)
	if err != nil {
		return nil, err
	}

	if quote.Total > user.Balance {
		return nil, models.ErrInsufficientFunds
	}

	order := &models.Order{
		OrderNumber:     NewOrderNumber(),
		UserID:          userID,
		Items:           quote.Items,
		Subtotal:        quote.Subtotal,
		DiscountKind:    quote.DiscountKind,
		DiscountAmount:  quote.DiscountAmount,
		PromoCode:       quote.PromoCode,
		DeliveryFee:     quote.DeliveryFee,
		Total:           quote.Total,
		Fulfillment:     req.Fulfillment,
		DeliveryAddress: address,
		PickupStoreID:   storeID,
		Status:          models.OrderStatusPending,
	}

	if err := s.orders.CommitOrder(ctx, order); err != nil {
		return nil, err
	}

	s.carts.Clear(userID)

	if s.mailer != nil {
		if err := s.mailer.SendOrderConfirmation(user.Email, order); err != nil {
			log.Printf("Failed to send confirmation for %s: %v", order.OrderNumber, err)
		}
	}

	return order, nil
}

func (s *CheckoutService) resolveFulfillment(ctx context.Context, user *models.User, req models.CheckoutRequest) (address string, storeID int, err error) {
	switch req.Fulfillment {
	case models.FulfillmentDelivery:
		address = strings.TrimSpace(req.DeliveryAddress)
		if address == "" {
			address, _ = s.users.GetProfileAddress(ctx, user.ID)
		}
		if address == "" {
			return "", 0, models.ErrAddressRequired
		}
		return address, 0, nil
	case models.FulfillmentPickup:
		if req.PickupStoreID == 0 {
			return "", 0, models.ErrStoreRequired
		}
		if models.PickupStoreByID(req.PickupStoreID) == nil {
			return "", 0, models.ErrStoreRequired
		}
		return "", req.PickupStoreID, nil
	default:
		return "", 0, models.ErrStoreRequired
	}
}
