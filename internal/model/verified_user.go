package model

import "time"

// VerifiedUser is a subscriber whose identity and payment were approved by
// the admin. Keyed by the Telegram user id; re-approval overwrites all fields.
type VerifiedUser struct {
	UserID       int64     `gorm:"primaryKey" json:"user_id"`
	Phone        string    `gorm:"not null" json:"phone"`
	FullName     string    `gorm:"not null" json:"full_name"`
	NationalID   string    `gorm:"not null" json:"national_id"`
	RegisteredAt time.Time `gorm:"not null" json:"registered_at"`
}

func (VerifiedUser) TableName() string {
	return "verified_users"
}
