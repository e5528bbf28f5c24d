package models

import "time"

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Price and name are snapshotted from the catalog at creation time and
	// never recomputed afterwards.
	ServiceID   uint    `json:"service_id"`
	ServiceName string  `gorm:"size:100" json:"service_name"`
	Price       float64 `json:"price"`

	// Date is "2006-01-02", TimeLabel the caller's slot label ("08:00 AM").
	// SlotKey is the canonical "2006-01-02 15:04" form; it sorts
	// chronologically and carries the partial unique index that enforces
	// slot exclusivity for occupying statuses.
	Date      string `gorm:"size:10;not null" json:"date"`
	TimeLabel string `gorm:"size:10;not null" json:"time"`
	SlotKey   string `gorm:"size:16;index;not null" json:"-"`

	VehicleType   string `gorm:"size:50" json:"vehicle_type"`
	VehicleNumber string `gorm:"size:20" json:"vehicle_number"`

	CustomerName  string `gorm:"size:100" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
