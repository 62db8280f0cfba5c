package services

import (
	"context"
	"sync"

	"mmoss/models"
)

// Catalog is the product lookup the cart and checkout consume.
type Catalog interface {
	GetProduct(ctx context.Context, id int) (*models.Product, error)
}

// CartService keeps one cart per user, in memory only. A cart lives
// for the session: it is cleared on logout and after a successful
// checkout, and mere cart membership never reserves stock.
type CartService struct {
	mu      sync.RWMutex
	carts   map[int][]models.CartLine
	catalog Catalog
}

func NewCartService(catalog Catalog) *CartService {
	return &CartService{
		carts:   make(map[int][]models.CartLine),
		catalog: catalog,
	}
}

// Add inserts a product or increments its quantity, keeping the
// line's original insertion position. Fails with models.ErrCapacityExceeded
// when the cart would exceed its caps and models.ErrOutOfStock when the
// requested quantity exceeds what the catalog currently has.
func (s *CartService) Add(ctx context.Context, userID, productID, quantity int) error {
	if quantity < 1 {
		return models.ErrCapacityExceeded
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil || product == nil || !product.IsActive {
		return models.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i, line := range lines {
		if line.ProductID == productID {
			newQty := line.Quantity + quantity
			if newQty > models.MaxProductQuantity {
				return models.ErrCapacityExceeded
			}
			if newQty > product.Stock {
				return models.ErrOutOfStock
			}
			lines[i].Quantity = newQty
			return nil
		}
	}

	if len(lines) >= models.MaxCartItems {
		return models.ErrCapacityExceeded
	}
	if quantity > models.MaxProductQuantity {
		return models.ErrCapacityExceeded
	}
	if quantity > product.Stock {
		return models.ErrOutOfStock
	}

	s.carts[userID] = append(lines, models.CartLine{ProductID: productID, Quantity: quantity})
	return nil
}

// SetQuantity sets the absolute quantity for a product, inserting the
// line if absent. A quantity of zero removes the line.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID, quantity int) error {
	if quantity == 0 {
		s.Remove(userID, productID)
		return nil
	}
	if quantity < 0 || quantity > models.MaxProductQuantity {
		return models.ErrCapacityExceeded
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil || product == nil || !product.IsActive {
		return models.ErrNotFound
	}
	if quantity > product.Stock {
		return models.ErrOutOfStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i, line := range lines {
		if line.ProductID == productID {
			lines[i].Quantity = quantity
			return nil
		}
	}

	if len(lines) >= models.MaxCartItems {
		return models.ErrCapacityExceeded
	}
	s.carts[userID] = append(lines, models.CartLine{ProductID: productID, Quantity: quantity})
	return nil
}

// Remove drops a product's line. Removing an absent product is a
// no-op.
func (s *CartService) Remove(userID, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i, line := range lines {
		if line.ProductID == productID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// Lines returns a snapshot of the cart in insertion order. Mutating
// the returned slice does not affect the cart.
func (s *CartService) Lines(userID int) []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[userID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// View joins the cart with current catalog data at the viewer's
// price so the UI can show savings and a running subtotal.
func (s *CartService) View(ctx context.Context, userID int, user *models.User) (*models.CartView, error) {
	view := &models.CartView{Lines: []models.CartViewLine{}}

	for _, line := range s.Lines(userID) {
		product, err := s.catalog.GetProduct(ctx, line.ProductID)
		if err != nil || product == nil {
			return nil, models.ErrNotFound
		}
		unit := product.UnitPriceFor(user)
		vl := models.CartViewLine{
			ProductID:    product.ID,
			Name:         product.Name,
			Quantity:     line.Quantity,
			UnitPrice:    unit,
			RegularPrice: product.Price,
			MemberPrice:  product.MemberPrice,
			LineTotal:    unit * int64(line.Quantity),
		}
		view.Lines = append(view.Lines, vl)
		view.Subtotal += vl.LineTotal
	}

	return view, nil
}
