package models

import (
	"gorm.io/gorm"
)

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
)

type Donation struct {
	gorm.Model
	UserID          uint           `json:"user_id" gorm:"index"`
	User            User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	UserName        string         `json:"user_name"`
	CharityID       uint           `json:"charity_id" gorm:"index"`
	Charity         Charity        `json:"charity,omitempty" gorm:"foreignKey:CharityID"`
	CharityName     string         `json:"charity_name"`
	Amount          float64        `json:"amount"`
	Status          DonationStatus `json:"status" gorm:"default:pending"`
	PaymentMethod   string         `json:"payment_method" gorm:"default:esewa"` // card, esewa, khalti
	TransactionUUID string         `json:"transaction_uuid" gorm:"uniqueIndex"`
	EsewaRefID      string         `json:"esewa_ref_id,omitempty"`
}
