package models

import "ers/src/types"

type Session struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	UserID uint   `json:"user_id,omitempty"`
	Token  string `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:user_id" json:"-"`

	types.Timestamps
}
