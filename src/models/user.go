package models

import "ers/src/types"

type User struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Email    string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password string `json:"-"`

	Bookings []Booking `gorm:"foreignKey:user_id" json:"bookings,omitempty"`
	Sessions []Session `gorm:"foreignKey:user_id" json:"-"`

	types.Timestamps
}
