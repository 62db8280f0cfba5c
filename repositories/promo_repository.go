package repositories

import (
	"context"
	"strings"
	"time"

	"mmoss/config"
	"mmoss/models"
)

type PromoRepository struct{}

func NewPromoRepository() *PromoRepository {
	return &PromoRepository{}
}

const promoColumns = `id, code, description, discount_percent, min_order, vip_only, student_only, pickup_only,
	delivery_only, first_pickup_only, is_active, created_at, updated_at`

func scanPromo(row interface{ Scan(dest ...any) error }) (*models.PromoCode, error) {
	var p models.PromoCode
	err := row.Scan(
		&p.ID, &p.Code, &p.Description, &p.DiscountPercent, &p.MinOrder,
		&p.VIPOnly, &p.StudentOnly, &p.PickupOnly, &p.DeliveryOnly, &p.FirstPickupOnly,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromoRepository) GetPromoByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	query := `SELECT ` + promoColumns + ` FROM promo_codes WHERE code = $1`
	return scanPromo(config.DB.QueryRow(ctx, query, strings.ToUpper(code)))
}

func (r *PromoRepository) ListPromos(ctx context.Context, activeOnly bool) ([]models.PromoCode, error) {
	query := `SELECT ` + promoColumns + ` FROM promo_codes`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	promos := []models.PromoCode{}
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			return nil, err
		}
		promos = append(promos, *p)
	}
	return promos, nil
}

func (r *PromoRepository) CreatePromo(ctx context.Context, p *models.PromoCode) error {
	query := `
		INSERT INTO promo_codes (code, description, discount_percent, min_order, vip_only, student_only,
			pickup_only, delivery_only, first_pickup_only, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true, $10, $11)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		strings.ToUpper(p.Code), p.Description, p.DiscountPercent, p.MinOrder,
		p.VIPOnly, p.StudentOnly, p.PickupOnly, p.DeliveryOnly, p.FirstPickupOnly, now, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PromoRepository) UpdatePromo(ctx context.Context, p *models.PromoCode) error {
	query := `UPDATE promo_codes SET description = $1, discount_percent = $2, min_order = $3,
		vip_only = $4, student_only = $5, pickup_only = $6, delivery_only = $7, first_pickup_only = $8,
		is_active = $9, updated_at = $10 WHERE id = $11`
	_, err := config.DB.Exec(ctx, query,
		p.Description, p.DiscountPercent, p.MinOrder,
		p.VIPOnly, p.StudentOnly, p.PickupOnly, p.DeliveryOnly, p.FirstPickupOnly,
		p.IsActive, time.Now(), p.ID,
	)
	return err
}

func (r *PromoRepository) GetPromoByID(ctx context.Context, id int) (*models.PromoCode, error) {
	query := `SELECT ` + promoColumns + ` FROM promo_codes WHERE id = $1`
	return scanPromo(config.DB.QueryRow(ctx, query, id))
}

func (r *PromoRepository) DeletePromo(ctx context.Context, id int) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM promo_codes WHERE id = $1`, id)
	return err
}
