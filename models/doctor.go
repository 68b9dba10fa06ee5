package models

import (
	"gorm.io/gorm"
)

// Doctor is a veterinarian profile. Login happens against the User record;
// the profile only carries scheduling and practice details.
type Doctor struct {
	gorm.Model
	UserID              uint       `json:"user_id" gorm:"index"`
	User                User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Email               string     `json:"email" gorm:"unique"`
	Specialization      string     `json:"specialization"`
	Experience          int        `json:"experience"`
	Bio                 string     `json:"bio"`
	Availability        StringList `json:"availability" gorm:"type:jsonb"` // entries like "Monday 9-17"
	IsActive            bool       `json:"is_active" gorm:"default:true"`
	LocationPreference  string     `json:"location_preference" gorm:"default:clinic"` // clinic, home_visit, both
	ClinicAddress       string     `json:"clinic_address"`
	AppointmentDuration int        `json:"appointment_duration" gorm:"default:30"` // minutes
	BookingFee          float64    `json:"booking_fee" gorm:"default:500"`
	ProfileImage        Image      `json:"profile_image" gorm:"type:jsonb"`
}

// Duration returns the appointment duration in minutes, falling back to the
// platform default when the profile predates the setting.
func (d *Doctor) Duration() int {
	if d.AppointmentDuration <= 0 {
		return 30
	}
	return d.AppointmentDuration
}
