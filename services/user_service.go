package services

import (
	"context"
	"errors"
	"time"

	"mmoss/models"
	"mmoss/repositories"
)

type UserService struct {
	userRepo *repositories.UserRepository
}

func NewUserService() *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(),
	}
}

// TopUp credits the account balance. A single top-up is capped at
// MaxTopUp; the number of top-ups is unbounded.
func (s *UserService) TopUp(ctx context.Context, userID int, amount int64) (int64, error) {
	if amount <= 0 || amount > MaxTopUp {
		return 0, errors.New("top-up amount must be between 1 cent and " + models.FormatCents(MaxTopUp))
	}
	return s.userRepo.TopUp(ctx, userID, amount)
}

// VIPCost returns the membership fee in cents for the given term.
// Students get a percentage off.
func VIPCost(years int, isStudent bool) int64 {
	cost := VIPYearCost * int64(years)
	if isStudent {
		cost -= percentOf(cost, VIPStudentDiscountPercent)
	}
	return cost
}

// PurchaseVIP buys or extends VIP membership, debiting the fee from
// the balance. Extension stacks onto the remaining term.
func (s *UserService) PurchaseVIP(ctx context.Context, userID, years int) (*models.User, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, models.ErrNotFound
	}

	cost := VIPCost(years, user.IsStudent)
	if err := s.userRepo.DebitVIPCost(ctx, userID, cost); err != nil {
		return nil, err
	}

	now := time.Now()
	start := now
	if user.IsVIPActive(now) {
		start = *user.VIPExpiry
	}
	expiry := start.AddDate(years, 0, 0)

	if err := s.userRepo.SetVIP(ctx, userID, true, &expiry); err != nil {
		return nil, err
	}

	return s.userRepo.GetUser(ctx, userID)
}

// CancelVIP drops the membership immediately. No refund.
func (s *UserService) CancelVIP(ctx context.Context, userID int) error {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return models.ErrNotFound
	}
	if !user.IsVIP {
		return errors.New("no active VIP membership")
	}
	return s.userRepo.SetVIP(ctx, userID, false, nil)
}

func (s *UserService) ListUsers(ctx context.Context, page, limit int) ([]models.UserWithProfile, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.userRepo.ListUsers(ctx, page, limit)
}
