package repositories

import (
	"context"
	"time"

	"mmoss/config"
	"mmoss/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const userColumns = `id, email, password, role, balance, is_student, is_vip, vip_expiry, has_pickup_order, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.Role, &u.Balance,
		&u.IsStudent, &u.IsVIP, &u.VIPExpiry, &u.HasPickupOrder,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password, role, is_student, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		user.Email, user.Password, user.Role, user.IsStudent, now, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(config.DB.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetUser(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(config.DB.QueryRow(ctx, query, id))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int, hashed string) error {
	_, err := config.DB.Exec(ctx,
		`UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`, hashed, time.Now(), id)
	return err
}

// TopUp credits the balance. Amount bounds are enforced by the
// service layer.
func (r *UserRepository) TopUp(ctx context.Context, id int, amount int64) (int64, error) {
	var balance int64
	err := config.DB.QueryRow(ctx,
		`UPDATE users SET balance = balance + $1, updated_at = $2 WHERE id = $3 RETURNING balance`,
		amount, time.Now(), id).Scan(&balance)
	return balance, err
}

func (r *UserRepository) SetVIP(ctx context.Context, id int, isVIP bool, expiry *time.Time) error {
	_, err := config.DB.Exec(ctx,
		`UPDATE users SET is_vip = $1, vip_expiry = $2, updated_at = $3 WHERE id = $4`,
		isVIP, expiry, time.Now(), id)
	return err
}

// DebitVIPCost charges the membership fee, guarded against
// overdraft.
func (r *UserRepository) DebitVIPCost(ctx context.Context, id int, cost int64) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE users SET balance = balance - $1, updated_at = $2 WHERE id = $3 AND balance >= $1`,
		cost, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrInsufficientFunds
	}
	return nil
}

func (r *UserRepository) GetProfile(ctx context.Context, userID int) (*models.UserProfile, error) {
	query := `SELECT id, user_id, full_name, phone, address, created_at, updated_at
		FROM user_profiles WHERE user_id = $1`

	var p models.UserProfile
	err := config.DB.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Phone, &p.Address, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) GetProfileAddress(ctx context.Context, userID int) (string, error) {
	var address string
	err := config.DB.QueryRow(ctx,
		`SELECT COALESCE(address, '') FROM user_profiles WHERE user_id = $1`, userID).Scan(&address)
	if err != nil {
		return "", err
	}
	return address, nil
}

func (r *UserRepository) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (user_id, full_name, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.Phone, profile.Address, now, now,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	_, err := config.DB.Exec(ctx,
		`UPDATE user_profiles SET full_name = $1, phone = $2, address = $3, updated_at = $4 WHERE user_id = $5`,
		profile.FullName, profile.Phone, profile.Address, time.Now(), profile.UserID)
	return err
}

func (r *UserRepository) GetUserWithProfile(ctx context.Context, userID int) (*models.UserWithProfile, error) {
	query := `
		SELECT u.id, u.email, u.role, u.balance, u.is_student, u.is_vip, u.vip_expiry,
			COALESCE(p.full_name, ''), COALESCE(p.phone, ''), COALESCE(p.address, ''), u.created_at
		FROM users u
		LEFT JOIN user_profiles p ON u.id = p.user_id
		WHERE u.id = $1
	`
	var u models.UserWithProfile
	err := config.DB.QueryRow(ctx, query, userID).Scan(
		&u.ID, &u.Email, &u.Role, &u.Balance, &u.IsStudent, &u.IsVIP, &u.VIPExpiry,
		&u.FullName, &u.Phone, &u.Address, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns users newest first with the total count.
func (r *UserRepository) ListUsers(ctx context.Context, page, limit int) ([]models.UserWithProfile, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT u.id, u.email, u.role, u.balance, u.is_student, u.is_vip, u.vip_expiry,
			COALESCE(p.full_name, ''), COALESCE(p.phone, ''), COALESCE(p.address, ''), u.created_at
		FROM users u
		LEFT JOIN user_profiles p ON u.id = p.user_id
		ORDER BY u.created_at DESC LIMIT $1 OFFSET $2
	`
	rows, err := config.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []models.UserWithProfile{}
	for rows.Next() {
		var u models.UserWithProfile
		err := rows.Scan(
			&u.ID, &u.Email, &u.Role, &u.Balance, &u.IsStudent, &u.IsVIP, &u.VIPExpiry,
			&u.FullName, &u.Phone, &u.Address, &u.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, nil
}
