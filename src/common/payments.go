package common

import (
	"ers/src/db"
	"ers/src/models"
	"ers/src/types"
	"errors"

	"gorm.io/gorm"
)

func GetPayment(userId uint, ticketId uint) (*models.Payment, error) {
	db := db.GetDb()
	var ticket models.Ticket
	err := db.
		Model(&models.Ticket{}).
		Where(&models.Ticket{ID: ticketId}).
		Preload("Enrollment").
		First(&ticket).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if ticket.Enrollment.UserID != userId {
		return nil, ErrUnauthorized
	}
	var payment models.Payment
	err = db.
		Model(&models.Payment{}).
		Where(&models.Payment{TicketID: ticketId}).
		First(&payment).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// ProcessPayment records the card payment for a ticket and marks the
// ticket PAID. Card data is never stored beyond issuer and last digits.
func ProcessPayment(userId uint, params *types.ProcessPaymentRequestBody) (*models.Payment, error) {
	var payment models.Payment
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var ticket models.Ticket
		err := tx.
			Model(&models.Ticket{}).
			Where(&models.Ticket{ID: params.TicketID}).
			Preload("Enrollment").
			Preload("TicketType").
			First(&ticket).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if ticket.Enrollment.UserID != userId {
			return ErrUnauthorized
		}
		lastDigits := params.CardData.Number
		if len(lastDigits) > 4 {
			lastDigits = lastDigits[len(lastDigits)-4:]
		}
		payment = models.Payment{
			TicketID:       ticket.ID,
			Value:          ticket.TicketType.Price,
			CardIssuer:     params.CardData.Issuer,
			CardLastDigits: lastDigits,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		err = tx.
			Model(&models.Ticket{}).
			Where("id = ?", ticket.ID).
			Update("status", types.TICKET_PAID).
			Error
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
