package models

import (
	"gorm.io/gorm"
)

// Charity is a donation campaign run by a shelter.
type Charity struct {
	gorm.Model
	OwnerID     uint    `json:"owner_id" gorm:"index"`
	Owner       User    `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Goal        float64 `json:"goal"`
	Raised      float64 `json:"raised"`
	Image       Image   `json:"image" gorm:"type:jsonb"`
}

// BeforeSave keeps the raised amount within the campaign goal.
func (ch *Charity) BeforeSave(tx *gorm.DB) error {
	if ch.Raised > ch.Goal {
		ch.Raised = ch.Goal
	}
	return nil
}

// RefreshRaisedAmount recomputes the raised total from completed donations.
func (ch *Charity) RefreshRaisedAmount(tx *gorm.DB) error {
	var total float64
	err := tx.Model(&Donation{}).
		Where("charity_id = ? AND status = ?", ch.ID, DonationCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return err
	}
	ch.Raised = total
	return tx.Save(ch).Error
}
