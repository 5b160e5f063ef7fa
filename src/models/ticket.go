package models

import (
	"database/sql/driver"
	"ers/src/types"
)

type TicketStatus types.TicketStatus

func (self *TicketStatus) Scan(value interface{}) error {
	*self = TicketStatus(value.([]byte))
	return nil
}

func (self TicketStatus) Value() (driver.Value, error) {
	return string(self), nil
}

type TicketType struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	Name          string  `json:"name,omitempty"`
	Price         float32 `json:"price"`
	IsRemote      bool    `json:"isRemote"`
	IncludesHotel bool    `json:"includesHotel"`

	types.Timestamps
}

type Ticket struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Status       string `gorm:"default:'RESERVED'" json:"status,omitempty"`
	TicketTypeID uint   `json:"ticket_type_id,omitempty"`
	EnrollmentID uint   `json:"enrollment_id,omitempty"`

	TicketType TicketType `json:"TicketType,omitempty"`
	Enrollment Enrollment `json:"-"`

	types.Timestamps
}
