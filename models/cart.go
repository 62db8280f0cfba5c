package models

// Cart business rules. A cart holds at most MaxCartItems distinct
// products, and at most MaxProductQuantity units of any one product.
const (
	MaxCartItems       = 20
	MaxProductQuantity = 10
)

// CartLine references a product by id only; the cart never owns
// product data and never reserves stock.
type CartLine struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// CartView is what the cart endpoints return: lines joined with
// current catalog data plus a running subtotal at the viewer's price.
type CartView struct {
	Lines    []CartViewLine `json:"lines"`
	Subtotal int64          `json:"subtotal"`
}

type CartViewLine struct {
	ProductID    int    `json:"product_id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unit_price"`
	RegularPrice int64  `json:"regular_price"`
	MemberPrice  int64  `json:"member_price"`
	LineTotal    int64  `json:"line_total"`
}
