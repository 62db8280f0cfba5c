package services

import (
	"context"
	"strings"
	"testing"

	"mmoss/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	user    *models.User
	address string
}

func (f *fakeUserStore) GetUser(_ context.Context, id int) (*models.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, models.ErrNotFound
	}
	return f.user, nil
}

func (f *fakeUserStore) GetProfileAddress(_ context.Context, _ int) (string, error) {
	return f.address, nil
}

type fakeOrderStore struct {
	committed []*models.Order
	failWith  error
}

func (f *fakeOrderStore) CommitOrder(_ context.Context, order *models.Order) error {
	if f.failWith != nil {
		return f.failWith
	}
	order.ID = len(f.committed) + 1
	f.committed = append(f.committed, order)
	return nil
}

type checkoutFixture struct {
	carts  *CartService
	users  *fakeUserStore
	orders *fakeOrderStore
	svc    *CheckoutService
}

func newCheckoutFixture(t *testing.T, user *models.User) *checkoutFixture {
	t.Helper()

	catalog := newFakeCatalog()
	carts := NewCartService(catalog)
	users := &fakeUserStore{user: user}
	orders := &fakeOrderStore{}
	promos := newPromoService()

	return &checkoutFixture{
		carts:  carts,
		users:  users,
		orders: orders,
		svc:    NewCheckoutService(carts, catalog, promos, users, orders, nil),
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	fx := newCheckoutFixture(t, &models.User{ID: 1, Balance: 10000})

	_, err := fx.svc.Checkout(context.Background(), 1, models.CheckoutRequest{
		Fulfillment:     models.FulfillmentDelivery,
		DeliveryAddress: "12 Example St",
	})
	assert.ErrorIs(t, err, models.ErrEmptyCart)
}

func TestCheckoutDeliveryCommits(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t, &models.User{ID: 1, Balance: 10000})
	require.NoError(t, fx.carts.Add(ctx, 1, 1, 4))

	order, err := fx.svc.Checkout(ctx, 1, models.CheckoutRequest{
		Fulfillment:     models.FulfillmentDelivery,
		DeliveryAddress: "12 Example St",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2000), order.Subtotal)
	assert.Equal(t, DeliveryFee, order.DeliveryFee)
	assert.Equal(t, int64(4000), order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Len(t, fx.orders.committed, 1)

	// A successful commit empties the cart.
	assert.Empty(t, fx.carts.Lines(1))
}

func TestCheckoutDeliveryFallsBackToProfileAddress(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t, &models.User{ID: 1, Balance: 10000})
	fx.users.address = "7 Saved Ave"
	require.NoError(t, fx.carts.Add(ctx, 1, 1, 1))

	order, err := fx.svc.Checkout(ctx, 1, models.CheckoutRequest{Fulfillment: models.FulfillmentDelivery})
	require.NoError(t, err)
	assert.Equal(t, "7 Saved Ave", order.DeliveryAddress)
}

func TestCheckoutDeliveryWithoutAddress(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t, &models.User{ID: 1, Balance: 10000})
	require.NoError(t, fx.carts.Add(ctx, 1, 1, 1))

	_, err := fx.svc.Checkout(ctx, 1, models.CheckoutRequest{Fulfillment: models.FulfillmentDelivery})
	assert.ErrorIs(t, err, models.ErrAddressRequired)
	// The cart survives the failed attempt.
	assert.Len(t, fx.carts.Lines(1), 1)
}

func TestCheckoutPickupRequiresKnownStore(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t, &models.User{ID: 1, Balance: 10000})
	require.NoError(t, fx.carts.Add(ctx, 1, 1, 1))

	_, err := fx.svc.Checkout(ctx, 1, models.CheckoutRequest{Fulfillment: models.FulfillmentPickup})
	assert.ErrorIs(t, err, models.ErrStoreRequired)

	_, err = fx.svc.Checkout(ctx, 1, models.CheckoutRequest{Fulfillment: models.FulfillmentPickup, PickupStoreID: 99})
	assert.ErrorIs(t, err, models.ErrStoreRequired)

	order, err := fx.svc.Checkout(ctx, 1, models.CheckoutRequest{Fulfillment: models.FulfillmentPickup, PickupStoreID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, order.PickupStoreID)
}

func TestCheckoutInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t, &models.User{ID: 1, Balance: 3999})
	require.NoError(t, fx.carts.Add(ctx, 1, 1, 4))

	_, err := fx.svc.Checkout(ctx, 1, models.CheckoutRequest{
		Fulfillment:     models.FulfillmentDelivery,
		DeliveryAddress: "12 Example St",
	})
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.Empty(t, fx.orders.committed)
	assert.Len(t, fx.carts.Lines(1), 1)
}

func TestCheckoutInventoryChangedKeepsCart(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t, &models.User{ID: 1, Balance: 10000})
	fx.orders.failWith = models.ErrInventoryChanged
	require.NoError(t, fx.carts.Add(ctx, 1, 1, 4))

	_, err := fx.svc.Checkout(ctx, 1, models.CheckoutRequest{
		Fulfillment:     models.FulfillmentDelivery,
		DeliveryAddress: "12 Example St",
	})
	assert.ErrorIs(t, err, models.ErrInventoryChanged)
	assert.Len(t, fx.carts.Lines(1), 1)
}

func TestCheckoutWithPromo(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t, vipUser())
	fx.users.user.Balance = 10000
	// 3 coffees at the 2000c member price clears VIP10's 5000c floor.
	require.NoError(t, fx.carts.Add(ctx, 1, 3, 3))

	order, err := fx.svc.Checkout(ctx, 1, models.CheckoutRequest{
		Fulfillment:     models.FulfillmentDelivery,
		DeliveryAddress: "12 Example St",
		PromoCode:       "vip10",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6000), order.Subtotal)
	assert.Equal(t, models.DiscountPromo, order.DiscountKind)
	assert.Equal(t, int64(600), order.DiscountAmount)
	assert.Equal(t, "VIP10", order.PromoCode)
	assert.Equal(t, int64(5400+2000), order.Total)
}

func TestCheckoutPromoMinimumUsesMemberPricing(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t, vipUser())
	fx.users.user.Balance = 10000
	// Regular subtotal 2 x 2500 = 5000c clears VIP10's floor, but the
	// VIP actually pays 2 x 2000 = 4000c, which does not.
	require.NoError(t, fx.carts.Add(ctx, 1, 3, 2))

	_, err := fx.svc.Checkout(ctx, 1, models.CheckoutRequest{
		Fulfillment:     models.FulfillmentDelivery,
		DeliveryAddress: "12 Example St",
		PromoCode:       "VIP10",
	})
	assert.ErrorIs(t, err, models.ErrPromoBelowMinimum)
}

func TestCheckoutStudentPickupPromoConflict(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t, &models.User{ID: 1, IsStudent: true, Balance: 10000})
	require.NoError(t, fx.carts.Add(ctx, 1, 1, 8))

	_, err := fx.svc.Checkout(ctx, 1, models.CheckoutRequest{
		Fulfillment:   models.FulfillmentPickup,
		PickupStoreID: 1,
		PromoCode:     "NEWMONASH20",
	})
	assert.ErrorIs(t, err, models.ErrConflictingDiscount)
	assert.Len(t, fx.carts.Lines(1), 1)
}

func TestOrderNumberFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := NewOrderNumber()
		require.Len(t, n, len("ORD-")+8)
		assert.True(t, strings.HasPrefix(n, "ORD-"))
		assert.Equal(t, strings.ToUpper(n), n)
		assert.False(t, seen[n])
		seen[n] = true
	}
}
