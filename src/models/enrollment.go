package models

import (
	"ers/src/types"
	"time"
)

type Enrollment struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	Name     string    `json:"name,omitempty"`
	CPF      string    `gorm:"column:cpf" json:"cpf,omitempty"`
	Birthday time.Time `json:"birthday,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	UserID   uint      `gorm:"uniqueIndex" json:"user_id,omitempty"`

	User    User     `gorm:"foreignKey:user_id" json:"-"`
	Address *Address `gorm:"foreignKey:enrollment_id" json:"address,omitempty"`

	types.Timestamps
}

type Address struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	CEP           string  `gorm:"column:cep" json:"cep,omitempty"`
	Street        string  `json:"street,omitempty"`
	City          string  `json:"city,omitempty"`
	State         string  `json:"state,omitempty"`
	Number        string  `json:"number,omitempty"`
	Neighborhood  string  `json:"neighborhood,omitempty"`
	AddressDetail *string `json:"addressDetail,omitempty"`
	EnrollmentID  uint    `gorm:"uniqueIndex" json:"enrollment_id,omitempty"`

	types.Timestamps
}
