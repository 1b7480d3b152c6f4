package model

import "time"

// User 帳號模型；BookingIDs 由 booking ledger 推導
type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsAdmin      bool      `json:"isAdmin" db:"is_admin"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	BookingIDs []int `json:"bookingIds,omitempty" db:"-"`
}

// Role 給回應使用的角色名稱
func (u *User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "user"
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
	IsAdmin  bool
}

// Profile 個人頁面：已確認的訂位與候補中的訂位
type Profile struct {
	*User
	ConfirmedBookings []*Booking `json:"confirmedBookings"`
	WaitingList       []*Booking `json:"waitingList"`
}
