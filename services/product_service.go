package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"mmoss/config"
	"mmoss/models"
	"mmoss/repositories"
)

const productCacheTTL = 60 * time.Second

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
	}
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return product, nil
}

// ListProducts serves the catalog listing, cached in Redis per query
// when a cache is configured.
func (s *ProductService) ListProducts(ctx context.Context, page, limit int, search, category, subcategory string) (*models.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	cacheKey := fmt.Sprintf("products:%d:%d:%s:%s:%s", page, limit, search, category, subcategory)

	if config.RedisClient != nil {
		if cached, err := config.RedisClient.Get(ctx, cacheKey).Result(); err == nil {
			var resp models.PaginatedResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	products, total, err := s.productRepo.ListProducts(ctx, page, limit, search, category, subcategory)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	resp := &models.PaginatedResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}

	if config.RedisClient != nil {
		if encoded, err := json.Marshal(resp); err == nil {
			config.RedisClient.Set(ctx, cacheKey, encoded, productCacheTTL)
		}
	}

	return resp, nil
}

func (s *ProductService) ListCategories(ctx context.Context) (map[string][]string, error) {
	return s.productRepo.ListCategories(ctx)
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	memberPrice := req.MemberPrice
	if memberPrice == 0 {
		memberPrice = req.Price
	}
	if memberPrice > req.Price {
		return nil, errors.New("member price cannot exceed the regular price")
	}

	product := &models.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Description: req.Description,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Price:       req.Price,
		MemberPrice: memberPrice,
		Stock:       req.Stock,
		IsActive:    true,
	}

	if req.ExpiryDate != "" || req.Ingredients != "" || req.StorageInstructions != "" || req.Allergens != "" {
		product.Food = &models.FoodInfo{
			ExpiryDate:          req.ExpiryDate,
			Ingredients:         req.Ingredients,
			StorageInstructions: req.StorageInstructions,
			Allergens:           req.Allergens,
		}
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Brand != "" {
		product.Brand = req.Brand
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Subcategory != "" {
		product.Subcategory = req.Subcategory
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.MemberPrice != nil {
		product.MemberPrice = *req.MemberPrice
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if req.ExpiryDate != "" || req.Ingredients != "" || req.StorageInstructions != "" || req.Allergens != "" {
		if product.Food == nil {
			product.Food = &models.FoodInfo{}
		}
		if req.ExpiryDate != "" {
			product.Food.ExpiryDate = req.ExpiryDate
		}
		if req.Ingredients != "" {
			product.Food.Ingredients = req.Ingredients
		}
		if req.StorageInstructions != "" {
			product.Food.StorageInstructions = req.StorageInstructions
		}
		if req.Allergens != "" {
			product.Food.Allergens = req.Allergens
		}
	}

	if product.MemberPrice > product.Price {
		return nil, errors.New("member price cannot exceed the regular price")
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if config.RedisClient == nil {
		return
	}
	iter := config.RedisClient.Scan(ctx, 0, "products:*", 100).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}
