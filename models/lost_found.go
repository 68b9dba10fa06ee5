package models

import (
	"database/sql/driver"

	"gorm.io/gorm"
)

type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

func (c ContactInfo) Value() (driver.Value, error)  { return jsonValue(c) }
func (c *ContactInfo) Scan(value interface{}) error { return jsonScan(c, value) }

type ReportDetails struct {
	Color               string `json:"color,omitempty"`
	Size                string `json:"size,omitempty"`
	Age                 string `json:"age,omitempty"`
	Gender              string `json:"gender,omitempty"`
	Microchipped        bool   `json:"microchipped,omitempty"`
	Collar              bool   `json:"collar,omitempty"`
	DistinctiveFeatures string `json:"distinctive_features,omitempty"`
}

func (d ReportDetails) Value() (driver.Value, error)  { return jsonValue(d) }
func (d *ReportDetails) Scan(value interface{}) error { return jsonScan(d, value) }

// LostFoundReport is a lost or found pet listing. Matching reports against
// each other is a manual affair; there is no geospatial index here.
type LostFoundReport struct {
	gorm.Model
	UserID      uint          `json:"user_id" gorm:"index"`
	User        User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Type        string        `json:"type"` // lost, found
	PetType     string        `json:"pet_type"`
	Breed       string        `json:"breed,omitempty"`
	Location    string        `json:"location"`
	Date        string        `json:"date"` // free-form, as reported
	Description string        `json:"description"`
	Images      ImageList     `json:"images" gorm:"type:jsonb"`
	Status      string        `json:"status" gorm:"default:open"` // open, resolved, closed
	Contact     ContactInfo   `json:"contact" gorm:"type:jsonb"`
	Details     ReportDetails `json:"additional_details" gorm:"type:jsonb"`
}
