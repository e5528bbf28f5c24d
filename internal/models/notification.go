package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`

	Title   string `gorm:"size:255;not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`

	// info | success | warning | error
	Type string `gorm:"size:20;default:'info'" json:"type"`

	// Link is a client-side navigation hint; BookingID a weak reference,
	// lookup only. Both optional.
	Link      string         `gorm:"size:255" json:"link,omitempty"`
	BookingID *string        `gorm:"type:uuid" json:"booking_id,omitempty"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`

	Read bool `gorm:"default:false;index" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
