package common

import (
	"ers/src/db"
	"ers/src/models"
	"ers/src/types"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetUserBooking returns the caller's booking joined with its Room.
func GetUserBooking(userId uint) (*models.Booking, error) {
	db := db.GetDb()
	var booking models.Booking
	err := db.
		Model(&models.Booking{}).
		Where(&models.Booking{UserID: userId}).
		Preload("Room").
		First(&booking).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// CreateBooking runs the eligibility checks in order and persists a new
// booking. The first failing check wins. The whole sequence runs inside
// one transaction with the target room locked, so the occupancy count
// cannot be raced past by a concurrent request on the same room.
func CreateBooking(userId uint, roomId uint) (uint, error) {
	var bookingId uint
	db := db.GetDb()
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

		var ticket models.Ticket
		err = tx.
			Model(&models.Ticket{}).
			Where(&models.Ticket{EnrollmentID: enrollment.ID}).
			Preload("TicketType").
			First(&ticket).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentRequired
			}
			return err
		}
		if ticket.Status == string(types.TICKET_RESERVED) {
			return ErrPaymentRequired
		}
		if ticket.TicketType.IsRemote || !ticket.TicketType.IncludesHotel {
			return ErrUnauthorized
		}

		var room models.Room
		err = tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&models.Room{ID: roomId}).
			First(&room).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrForbidden
			}
			return err
		}

		var count int64
		err = tx.
			Model(&models.Booking{}).
			Where(&models.Booking{RoomID: roomId}).
			Count(&count).
			Error
		if err != nil {
			return err
		}
		if count >= int64(room.Capacity) {
			return ErrForbidden
		}

		booking := models.Booking{UserID: userId, RoomID: roomId}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		bookingId = booking.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	log.Printf("Created booking [%d] for user [%d] on room [%d]\n", bookingId, userId, roomId)
	return bookingId, nil
}

// UpdateBooking moves the caller's booking to another room, gated by the
// ownership and occupancy checks. Same transactional locking as create.
func UpdateBooking(userId uint, bookingId uint, roomId uint) (uint, error) {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var current models.Booking
		err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{UserID: userId}).
			First(&current).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var room models.Room
		err = tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&models.Room{ID: roomId}).
			First(&room).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if current.ID != bookingId {
			return ErrUnauthorized
		}

		var addressed models.Booking
		err = tx.
			Model(&models.Booking{}).
			Where("id = ?", bookingId).
			First(&addressed).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if addressed.UserID != userId {
			return ErrForbidden
		}

		var count int64
		err = tx.
			Model(&models.Booking{}).
			Where(&models.Booking{RoomID: roomId}).
			Count(&count).
			Error
		if err != nil {
			return err
		}
		if count >= int64(room.Capacity) {
			return ErrForbidden
		}

		err = tx.
			Model(&models.Booking{}).
			Where("id = ?", bookingId).
			Update("room_id", roomId).
			Error
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	log.Printf("Moved booking [%d] of user [%d] to room [%d]\n", bookingId, userId, roomId)
	return bookingId, nil
}
