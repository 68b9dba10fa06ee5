package models

import (
	"database/sql/driver"

	"gorm.io/gorm"
)

type OrderItem struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type OrderItemList []OrderItem

func (l OrderItemList) Value() (driver.Value, error)  { return jsonValue(l) }
func (l *OrderItemList) Scan(value interface{}) error { return jsonScan(l, value) }

type ShippingAddress struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

func (a ShippingAddress) Value() (driver.Value, error)  { return jsonValue(a) }
func (a *ShippingAddress) Scan(value interface{}) error { return jsonScan(a, value) }

type Order struct {
	gorm.Model
	UserID          uint            `json:"user_id"`
	User            User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	UserName        string          `json:"user_name"`
	Items           OrderItemList   `json:"items" gorm:"type:jsonb"`
	TotalAmount     float64         `json:"total_amount"`
	Status          string          `json:"status" gorm:"default:pending"`         // pending, processing, shipped, delivered, cancelled
	PaymentStatus   string          `json:"payment_status" gorm:"default:pending"` // pending, completed, failed, refunded
	PaymentMethod   string          `json:"payment_method,omitempty"`              // card, esewa, khalti, cash
	ShippingAddress ShippingAddress `json:"shipping_address" gorm:"type:jsonb"`
	EsewaRefID      string          `json:"esewa_ref_id,omitempty"`
	KhaltiReference string          `json:"khalti_reference,omitempty"`
}
