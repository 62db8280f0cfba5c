package models

import "time"

type User struct {
	ID             int        `json:"id"`
	Email          string     `json:"email"`
	Password       string     `json:"-"`
	Role           string     `json:"role"`
	Balance        int64      `json:"balance"`
	IsStudent      bool       `json:"is_student"`
	IsVIP          bool       `json:"is_vip"`
	VIPExpiry      *time.Time `json:"vip_expiry,omitempty"`
	HasPickupOrder bool       `json:"has_pickup_order"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsVIPActive reports whether the account is currently entitled to
// member pricing. An expired membership counts as non-VIP.
func (u *User) IsVIPActive(now time.Time) bool {
	if !u.IsVIP {
		return false
	}
	if u.VIPExpiry == nil {
		return false
	}
	return now.Before(*u.VIPExpiry)
}

type UserProfile struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserWithProfile struct {
	ID        int        `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Balance   int64      `json:"balance"`
	IsStudent bool       `json:"is_student"`
	IsVIP     bool       `json:"is_vip"`
	VIPExpiry *time.Time `json:"vip_expiry,omitempty"`
	FullName  string     `json:"full_name"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	CreatedAt time.Time  `json:"created_at"`
}
