package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type TicketStatus string

const (
	TICKET_RESERVED TicketStatus = "RESERVED"
	TICKET_PAID     TicketStatus = "PAID"
)

type SignUpRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignInRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpsertEnrollmentRequestBody struct {
	Name     string `json:"name" binding:"required"`
	CPF      string `json:"cpf" binding:"required,len=11"`
	Birthday string `json:"birthday" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Address  struct {
		CEP           string  `json:"cep" binding:"required"`
		Street        string  `json:"street" binding:"required"`
		City          string  `json:"city" binding:"required"`
		State         string  `json:"state" binding:"required,len=2"`
		Number        string  `json:"number" binding:"required"`
		Neighborhood  string  `json:"neighborhood" binding:"required"`
		AddressDetail *string `json:"addressDetail,omitempty"`
	} `json:"address" binding:"required"`
}

type CreateTicketRequestBody struct {
	TicketTypeID uint `json:"ticketTypeId" binding:"required"`
}

type ProcessPaymentRequestBody struct {
	TicketID uint `json:"ticketId" binding:"required"`
	CardData struct {
		Issuer         string `json:"issuer" binding:"required"`
		Number         string `json:"number" binding:"required,numeric,min=13,max=19"`
		Name           string `json:"name" binding:"required"`
		ExpirationDate string `json:"expirationDate" binding:"required,expirydate"`
		CVV            string `json:"cvv" binding:"required,numeric,min=3,max=4"`
	} `json:"cardData" binding:"required"`
}

type CreateBookingRequestBody struct {
	RoomID int `json:"roomId"`
}

type UpdateBookingRequestBody struct {
	RoomID int `json:"roomId"`
}
