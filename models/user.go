package models

import (
	"time"
)

const (
	RoleUser         = "user"
	RoleVeterinarian = "veterinarian"
	RolePharmacy     = "pharmacy"
	RoleShelter      = "shelter"
	RoleAdmin        = "admin"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"unique"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role" gorm:"default:user"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Status    string    `json:"status" gorm:"default:active"`
	Verified  bool      `json:"verified"`
	Pets      []Pet     `json:"pets,omitempty" gorm:"foreignKey:OwnerID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Name joins first and last name for emails and listings.
func (u *User) Name() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ValidRole reports whether the given role is one this platform knows about.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleVeterinarian, RolePharmacy, RoleShelter, RoleAdmin:
		return true
	}
	return false
}
