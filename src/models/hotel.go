package models

import "ers/src/types"

type Hotel struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`

	Rooms []Room `gorm:"foreignKey:hotel_id" json:"Rooms,omitempty"`

	types.Timestamps
}

type Room struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `json:"name,omitempty"`
	Capacity uint   `json:"capacity"`
	HotelID  uint   `json:"hotel_id,omitempty"`

	Hotel Hotel `json:"-"`

	types.Timestamps
}
