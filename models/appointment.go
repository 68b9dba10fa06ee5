package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Payment is embedded into Appointment; the gateway itself is a black box,
// we only record its outcome.
type Payment struct {
	Status        PaymentStatus `json:"status" gorm:"default:pending"`
	Amount        float64       `json:"amount"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Method        string        `json:"method,omitempty"` // cash, card, khalti, esewa
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
}

// Appointment is the durable booking record. The partial unique index is what
// closes the book-twice race: two concurrent inserts for the same doctor, day
// and slot cannot both commit while neither is cancelled.
type Appointment struct {
	gorm.Model
	UserID              uint              `json:"user_id"`
	User                User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	DoctorID            uint              `json:"doctor_id" gorm:"uniqueIndex:udx_doctor_day_slot,priority:1,where:status <> 'cancelled'"`
	Doctor              Doctor            `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	Date                time.Time         `json:"date" gorm:"uniqueIndex:udx_doctor_day_slot,priority:2,where:status <> 'cancelled'"`
	TimeSlot            string            `json:"time_slot" gorm:"uniqueIndex:udx_doctor_day_slot,priority:3,where:status <> 'cancelled'"` // "HH:MM-HH:MM"
	PetName             string            `json:"pet_name"`
	PetType             string            `json:"pet_type"`
	Reason              string            `json:"reason"`
	Status              AppointmentStatus `json:"status" gorm:"default:pending"`
	Notes               string            `json:"notes,omitempty"`
	CancellationReason  string            `json:"cancellation_reason,omitempty"`
	LocationPreference  string            `json:"location_preference"` // clinic, home_visit
	Address             string            `json:"address,omitempty"`
	AppointmentDuration int               `json:"appointment_duration"` // minutes, copied from the doctor at booking time
	Payment             Payment           `json:"payment" gorm:"embedded;embeddedPrefix:payment_"`
	ReminderSent        bool              `json:"reminder_sent"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.Payment.Status == "" {
		a.Payment.Status = PaymentPending
	}
	return nil
}

// ValidStatus reports whether s is one of the appointment lifecycle states.
// There is deliberately no transition graph: any state may follow any other,
// the gate is authorization only.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}
