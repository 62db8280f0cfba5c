package models

type RegisterRequest struct {
	Email     string `json:"email" form:"email" binding:"required,email"`
	Password  string `json:"password" form:"password" binding:"required,min=6"`
	FullName  string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Phone     string `json:"phone" form:"phone" binding:"omitempty"`
	IsStudent bool   `json:"is_student" form:"is_student"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Phone    string `json:"phone" form:"phone"`
	Address  string `json:"address" form:"address"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" form:"old_password" binding:"required"`
	NewPassword string `json:"new_password" form:"new_password" binding:"required,min=6"`
}

type TopUpRequest struct {
	Amount int64 `json:"amount" form:"amount" binding:"required"`
}

type VIPPurchaseRequest struct {
	Years int `json:"years" form:"years" binding:"required,min=1,max=5"`
}

type CreateProductRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Brand       string `json:"brand" form:"brand"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category" binding:"required"`
	Subcategory string `json:"subcategory" form:"subcategory"`
	Price       int64  `json:"price" form:"price" binding:"required,min=0"`
	MemberPrice int64  `json:"member_price" form:"member_price" binding:"min=0"`
	Stock       int    `json:"stock" form:"stock" binding:"min=0"`

	ExpiryDate          string `json:"expiry_date" form:"expiry_date"`
	Ingredients         string `json:"ingredients" form:"ingredients"`
	StorageInstructions string `json:"storage_instructions" form:"storage_instructions"`
	Allergens           string `json:"allergens" form:"allergens"`
}

type UpdateProductRequest struct {
	Name        string `json:"name" form:"name"`
	Brand       string `json:"brand" form:"brand"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category"`
	Subcategory string `json:"subcategory" form:"subcategory"`
	Price       *int64 `json:"price" form:"price"`
	MemberPrice *int64 `json:"member_price" form:"member_price"`
	Stock       *int   `json:"stock" form:"stock"`
	IsActive    *bool  `json:"is_active" form:"is_active"`

	ExpiryDate          string `json:"expiry_date" form:"expiry_date"`
	Ingredients         string `json:"ingredients" form:"ingredients"`
	StorageInstructions string `json:"storage_instructions" form:"storage_instructions"`
	Allergens           string `json:"allergens" form:"allergens"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id" form:"product_id" binding:"required"`
	Quantity  int `json:"quantity" form:"quantity" binding:"required,min=1"`
}

type SetCartQuantityRequest struct {
	Quantity int `json:"quantity" form:"quantity" binding:"min=0"`
}

type CheckoutRequest struct {
	Fulfillment     string `json:"fulfillment" form:"fulfillment" binding:"required,oneof=delivery pickup"`
	DeliveryAddress string `json:"delivery_address" form:"delivery_address"`
	PickupStoreID   int    `json:"pickup_store_id" form:"pickup_store_id"`
	PromoCode       string `json:"promo_code" form:"promo_code"`
}

type CreatePromoRequest struct {
	Code            string `json:"code" form:"code" binding:"required"`
	Description     string `json:"description" form:"description"`
	DiscountPercent int    `json:"discount_percent" form:"discount_percent" binding:"required,min=1,max=100"`
	MinOrder        int64  `json:"min_order" form:"min_order" binding:"min=0"`
	VIPOnly         bool   `json:"vip_only" form:"vip_only"`
	StudentOnly     bool   `json:"student_only" form:"student_only"`
	PickupOnly      bool   `json:"pickup_only" form:"pickup_only"`
	DeliveryOnly    bool   `json:"delivery_only" form:"delivery_only"`
	FirstPickupOnly bool   `json:"first_pickup_only" form:"first_pickup_only"`
}

type UpdatePromoRequest struct {
	Description     string `json:"description" form:"description"`
	DiscountPercent *int   `json:"discount_percent" form:"discount_percent"`
	MinOrder        *int64 `json:"min_order" form:"min_order"`
	VIPOnly         *bool  `json:"vip_only" form:"vip_only"`
	StudentOnly     *bool  `json:"student_only" form:"student_only"`
	PickupOnly      *bool  `json:"pickup_only" form:"pickup_only"`
	DeliveryOnly    *bool  `json:"delivery_only" form:"delivery_only"`
	FirstPickupOnly *bool  `json:"first_pickup_only" form:"first_pickup_only"`
	IsActive        *bool  `json:"is_active" form:"is_active"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}
