package common

import (
	"ers/src/db"
	"ers/src/models"
	"ers/src/types"
	"errors"

	"gorm.io/gorm"
)

func ListTicketTypes() ([]models.TicketType, error) {
	db := db.GetDb()
	var ticketTypes []models.TicketType
	if err := db.Model(&models.TicketType{}).Find(&ticketTypes).Error; err != nil {
		return nil, err
	}
	return ticketTypes, nil
}

func GetUserTicket(userId uint) (*models.Ticket, error) {
	db := db.GetDb()
	var enrollment models.Enrollment
	err := db.
		Model(&models.Enrollment{}).
		Where(&models.Enrollment{UserID: userId}).
		First(&enrollment).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var ticket models.Ticket
	err = db.
		Model(&models.Ticket{}).
		Where(&models.Ticket{EnrollmentID: enrollment.ID}).
		Preload("TicketType").
		First(&ticket).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

// CreateTicket reserves a ticket of the given type for the caller's
// enrollment. The ticket starts RESERVED and flips to PAID on payment.
func CreateTicket(userId uint, ticketTypeId uint) (*models.Ticket, error) {
	db := db.GetDb()
	var ticket models.Ticket
	err := db.Transaction(func(tx *gorm.DB) error {
		var enrollment models.Enrollment
		err := tx.
			Model(&models.Enrollment{}).
			Where(&models.Enrollment{UserID: userId}).
			First(&enrollment).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var ticketType models.TicketType
		err = tx.
			Model(&models.TicketType{}).
			Where(&models.TicketType{ID: ticketTypeId}).
			First(&ticketType).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		ticket = models.Ticket{
			EnrollmentID: enrollment.ID,
			TicketTypeID: ticketType.ID,
			Status:       string(types.TICKET_RESERVED),
		}
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}
		ticket.TicketType = ticketType
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
