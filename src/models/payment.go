package models

import "ers/src/types"

type Payment struct {
	ID             uint    `gorm:"primarykey" json:"id"`
	TicketID       uint    `json:"ticketId,omitempty"`
	Value          float32 `json:"value"`
	CardIssuer     string  `json:"cardIssuer,omitempty"`
	CardLastDigits string  `json:"cardLastDigits,omitempty"`

	Ticket Ticket `json:"-"`

	types.Timestamps
}
