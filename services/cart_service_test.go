package services

import (
	"context"
	"testing"

	"mmoss/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	products map[int]*models.Product
}

func (f *fakeCatalog) GetProduct(_ context.Context, id int) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return p, nil
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{products: testProducts()}
}

func TestCartAddAndIncrement(t *testing.T) {
	ctx := context.Background()
	carts := NewCartService(newFakeCatalog())

	require.NoError(t, carts.Add(ctx, 1, 1, 2))
	require.NoError(t, carts.Add(ctx, 1, 2, 1))
	require.NoError(t, carts.Add(ctx, 1, 1, 3))

	lines := carts.Lines(1)
	require.Len(t, lines, 2)
	// Incrementing keeps the line's original position.
	assert.Equal(t, models.CartLine{ProductID: 1, Quantity: 5}, lines[0])
	assert.Equal(t, models.CartLine{ProductID: 2, Quantity: 1}, lines[1])
}

func TestCartAddUnknownOrInactiveProduct(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog()
	catalog.products[2].IsActive = false
	carts := NewCartService(catalog)

	assert.ErrorIs(t, carts.Add(ctx, 1, 99, 1), models.ErrNotFound)
	assert.ErrorIs(t, carts.Add(ctx, 1, 2, 1), models.ErrNotFound)
}

func TestCartPerProductCap(t *testing.T) {
	ctx := context.Background()
	carts := NewCartService(newFakeCatalog())

	require.NoError(t, carts.Add(ctx, 1, 1, models.MaxProductQuantity))
	assert.ErrorIs(t, carts.Add(ctx, 1, 1, 1), models.ErrCapacityExceeded)
	// The failed add leaves the line untouched.
	assert.Equal(t, models.MaxProductQuantity, carts.Lines(1)[0].Quantity)
}

func TestCartDistinctItemCap(t *testing.T) {
	ctx := context.Background()
	catalog := &fakeCatalog{products: map[int]*models.Product{}}
	for id := 1; id <= models.MaxCartItems+1; id++ {
		catalog.products[id] = &models.Product{ID: id, Name: "P", Price: 100, MemberPrice: 100, Stock: 100, IsActive: true}
	}
	carts := NewCartService(catalog)

	for id := 1; id <= models.MaxCartItems; id++ {
		require.NoError(t, carts.Add(ctx, 1, id, 1))
	}
	assert.ErrorIs(t, carts.Add(ctx, 1, models.MaxCartItems+1, 1), models.ErrCapacityExceeded)
	// An existing line can still be incremented at the cap.
	assert.NoError(t, carts.Add(ctx, 1, 1, 1))
}

func TestCartAddBeyondStock(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog()
	catalog.products[1].Stock = 3
	carts := NewCartService(catalog)

	require.NoError(t, carts.Add(ctx, 1, 1, 3))
	assert.ErrorIs(t, carts.Add(ctx, 1, 1, 1), models.ErrOutOfStock)
}

func TestCartSetQuantity(t *testing.T) {
	ctx := context.Background()
	carts := NewCartService(newFakeCatalog())

	// Setting on an absent product inserts the line.
	require.NoError(t, carts.SetQuantity(ctx, 1, 1, 4))
	assert.Equal(t, 4, carts.Lines(1)[0].Quantity)

	require.NoError(t, carts.SetQuantity(ctx, 1, 1, 2))
	assert.Equal(t, 2, carts.Lines(1)[0].Quantity)

	// Zero removes.
	require.NoError(t, carts.SetQuantity(ctx, 1, 1, 0))
	assert.Empty(t, carts.Lines(1))

	assert.ErrorIs(t, carts.SetQuantity(ctx, 1, 1, models.MaxProductQuantity+1), models.ErrCapacityExceeded)
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	carts := NewCartService(newFakeCatalog())

	require.NoError(t, carts.Add(ctx, 1, 1, 2))
	carts.Remove(1, 99)
	assert.Len(t, carts.Lines(1), 1)

	carts.Remove(1, 1)
	assert.Empty(t, carts.Lines(1))
}

func TestCartLinesSnapshot(t *testing.T) {
	ctx := context.Background()
	carts := NewCartService(newFakeCatalog())

	require.NoError(t, carts.Add(ctx, 1, 1, 2))
	lines := carts.Lines(1)
	lines[0].Quantity = 9

	assert.Equal(t, 2, carts.Lines(1)[0].Quantity)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	carts := NewCartService(newFakeCatalog())

	require.NoError(t, carts.Add(ctx, 1, 1, 2))
	require.NoError(t, carts.Add(ctx, 2, 2, 1))

	carts.Clear(1)
	assert.Empty(t, carts.Lines(1))
	assert.Len(t, carts.Lines(2), 1)
}

func TestCartView(t *testing.T) {
	ctx := context.Background()
	carts := NewCartService(newFakeCatalog())

	require.NoError(t, carts.Add(ctx, 1, 1, 2))
	require.NoError(t, carts.Add(ctx, 1, 3, 1))

	view, err := carts.View(ctx, 1, vipUser())
	require.NoError(t, err)

	require.Len(t, view.Lines, 2)
	assert.Equal(t, int64(400), view.Lines[0].UnitPrice)
	assert.Equal(t, int64(500), view.Lines[0].RegularPrice)
	assert.Equal(t, int64(800+2000), view.Subtotal)
}
