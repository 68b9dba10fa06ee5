package models

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"` // Food, Toys, Accessories, Health, Grooming
	Stock       int       `json:"stock"`
	Images      ImageList `json:"images" gorm:"type:jsonb"`
	Featured    bool      `json:"featured"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
}

// ValidCategory reports whether c is a known storefront category.
func ValidCategory(c string) bool {
	switch c {
	case "Food", "Toys", "Accessories", "Health", "Grooming":
		return true
	}
	return false
}
