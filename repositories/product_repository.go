package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mmoss/config"
	"mmoss/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, name, brand, description, category, subcategory, price, member_price, stock, is_active,
	expiry_date, ingredients, storage_instructions, allergens, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*models.Product, error) {
	var p models.Product
	var expiry, ingredients, storage, allergens *string

	err := row.Scan(
		&p.ID, &p.Name, &p.Brand, &p.Description, &p.Category, &p.Subcategory,
		&p.Price, &p.MemberPrice, &p.Stock, &p.IsActive,
		&expiry, &ingredients, &storage, &allergens,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if expiry != nil || ingredients != nil || storage != nil || allergens != nil {
		p.Food = &models.FoodInfo{}
		if expiry != nil {
			p.Food.ExpiryDate = *expiry
		}
		if ingredients != nil {
			p.Food.Ingredients = *ingredients
		}
		if storage != nil {
			p.Food.StorageInstructions = *storage
		}
		if allergens != nil {
			p.Food.Allergens = *allergens
		}
	}

	return &p, nil
}

func (r *ProductRepository) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(config.DB.QueryRow(ctx, query, id))
}

// ListProducts returns active products matching the filters, newest
// first, with the total match count for pagination.
func (r *ProductRepository) ListProducts(ctx context.Context, page, limit int, search, category, subcategory string) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	where := []string{"is_active = true"}
	args := []interface{}{}
	argIndex := 1

	if search != "" {
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR brand ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}
	if category != "" {
		where = append(where, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, category)
		argIndex++
	}
	if subcategory != "" {
		where = append(where, fmt.Sprintf("subcategory = $%d", argIndex))
		args = append(args, subcategory)
		argIndex++
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT "+productColumns+" FROM products"+whereClause+
		" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (name, brand, description, category, subcategory, price, member_price, stock, is_active,
			expiry_date, ingredients, storage_instructions, allergens, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()

	var expiry, ingredients, storage, allergens *string
	if p.Food != nil {
		expiry = &p.Food.ExpiryDate
		ingredients = &p.Food.Ingredients
		storage = &p.Food.StorageInstructions
		allergens = &p.Food.Allergens
	}

	return config.DB.QueryRow(ctx, query,
		p.Name, p.Brand, p.Description, p.Category, p.Subcategory,
		p.Price, p.MemberPrice, p.Stock,
		expiry, ingredients, storage, allergens, now, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, p *models.Product) error {
	query := `UPDATE products SET name = $1, brand = $2, description = $3, category = $4, subcategory = $5,
		price = $6, member_price = $7, stock = $8, is_active = $9,
		expiry_date = $10, ingredients = $11, storage_instructions = $12, allergens = $13, updated_at = $14
		WHERE id = $15`

	var expiry, ingredients, storage, allergens *string
	if p.Food != nil {
		expiry = &p.Food.ExpiryDate
		ingredients = &p.Food.Ingredients
		storage = &p.Food.StorageInstructions
		allergens = &p.Food.Allergens
	}

	_, err := config.DB.Exec(ctx, query,
		p.Name, p.Brand, p.Description, p.Category, p.Subcategory,
		p.Price, p.MemberPrice, p.Stock, p.IsActive,
		expiry, ingredients, storage, allergens, time.Now(), p.ID,
	)
	return err
}

// DeleteProduct soft-deletes: committed orders keep referencing the
// row.
func (r *ProductRepository) DeleteProduct(ctx context.Context, id int) error {
	_, err := config.DB.Exec(ctx, `UPDATE products SET is_active = false, updated_at = $1 WHERE id = $2`, time.Now(), id)
	return err
}

// ListCategories returns the distinct category/subcategory pairs of
// active products.
func (r *ProductRepository) ListCategories(ctx context.Context) (map[string][]string, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT DISTINCT category, subcategory FROM products WHERE is_active = true ORDER BY category, subcategory`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := map[string][]string{}
	for rows.Next() {
		var cat, sub string
		if err := rows.Scan(&cat, &sub); err != nil {
			return nil, err
		}
		if sub != "" {
			categories[cat] = append(categories[cat], sub)
		} else if _, ok := categories[cat]; !ok {
			categories[cat] = []string{}
		}
	}
	return categories, nil
}
