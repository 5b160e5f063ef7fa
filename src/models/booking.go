package models

import "ers/src/types"

type Booking struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `json:"user_id,omitempty"`
	RoomID uint `json:"room_id,omitempty"`

	User User `gorm:"foreignKey:user_id" json:"-"`
	Room Room `gorm:"foreignKey:room_id" json:"Room,omitempty"`

	types.Timestamps
}
