package model

import "time"

// PendingVerification is a submitted registration waiting for an admin
// decision. Exactly one approve/reject consumes it.
type PendingVerification struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	UserID         int64     `gorm:"not null;index" json:"user_id"`
	Phone          string    `gorm:"not null" json:"phone"`
	FullName       string    `gorm:"not null" json:"full_name"`
	NationalID     string    `gorm:"not null" json:"national_id"`
	PaymentPhotoID string    `gorm:"not null" json:"payment_photo_id"`
	SubmittedAt    time.Time `gorm:"not null" json:"submitted_at"`
}

func (PendingVerification) TableName() string {
	return "pending_verifications"
}
