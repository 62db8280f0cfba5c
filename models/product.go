package models

import "time"

// Product is a catalog entry. All prices are in cents (AUD).
// MemberPrice is visible to every customer but only charged to
// active VIP accounts.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Price       int64     `json:"price"`
	MemberPrice int64     `json:"member_price"`
	Stock       int       `json:"stock"`
	IsActive    bool      `json:"is_active"`
	Food        *FoodInfo `json:"food,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FoodInfo carries the extra attributes food products have.
type FoodInfo struct {
	ExpiryDate          string `json:"expiry_date,omitempty"`
	Ingredients         string `json:"ingredients,omitempty"`
	StorageInstructions string `json:"storage_instructions,omitempty"`
	Allergens           string `json:"allergens,omitempty"`
}

// UnitPriceFor returns the price this user actually pays per unit.
func (p *Product) UnitPriceFor(u *User) int64 {
	if u != nil && u.IsVIPActive(time.Now()) {
		return p.MemberPrice
	}
	return p.Price
}
