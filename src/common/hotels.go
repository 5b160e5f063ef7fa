package common

import (
	"ers/src/db"
	"ers/src/models"
	"ers/src/types"
	"errors"

	"gorm.io/gorm"
)

// checkHotelAccess gates the hotel listings: the caller needs an
// enrollment and a paid, in-person ticket that includes lodging.
func checkHotelAccess(tx *gorm.DB, userId uint) error {
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
	var ticket models.Ticket
	err = tx.
		Model(&models.Ticket{}).
		Where(&models.Ticket{EnrollmentID: enrollment.ID}).
		Preload("TicketType").
		First(&ticket).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if ticket.Status != string(types.TICKET_PAID) || ticket.TicketType.IsRemote || !ticket.TicketType.IncludesHotel {
		return ErrPaymentRequired
	}
	return nil
}

func CheckHotelAccess(userId uint) error {
	return checkHotelAccess(db.GetDb(), userId)
}

func ListHotels(userId uint) ([]models.Hotel, error) {
	db := db.GetDb()
	if err := checkHotelAccess(db, userId); err != nil {
		return nil, err
	}
	var hotels []models.Hotel
	if err := db.Model(&models.Hotel{}).Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func GetHotelWithRooms(userId uint, hotelId uint) (*models.Hotel, error) {
	db := db.GetDb()
	if err := checkHotelAccess(db, userId); err != nil {
		return nil, err
	}
	var hotel models.Hotel
	err := db.
		Model(&models.Hotel{}).
		Where(&models.Hotel{ID: hotelId}).
		Preload("Rooms").
		First(&hotel).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &hotel, nil
}
