package models

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
)

type Vaccination struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

type VaccinationList []Vaccination

func (l VaccinationList) Value() (driver.Value, error)  { return jsonValue(l) }
func (l *VaccinationList) Scan(value interface{}) error { return jsonScan(l, value) }

// Pet is an owned pet profile. TagID is the printable identifier that ends up
// on the physical collar tag QR code.
type Pet struct {
	gorm.Model
	OwnerID      uint            `json:"owner_id"`
	Owner        User            `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	TagID        string          `json:"tag_id" gorm:"uniqueIndex"`
	Name         string          `json:"name"`
	Species      string          `json:"species"` // dog, cat, bird, rabbit, other
	Breed        string          `json:"breed,omitempty"`
	Age          int             `json:"age,omitempty"`
	Gender       string          `json:"gender,omitempty"` // male, female, unknown
	Color        string          `json:"color,omitempty"`
	Microchipped bool            `json:"microchipped"`
	Vaccinations VaccinationList `json:"vaccinations,omitempty" gorm:"type:jsonb"`
	Notes        string          `json:"notes,omitempty"`
}
