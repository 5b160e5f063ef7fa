package common

import (
	"ers/src/db"
	"ers/src/models"
	"ers/src/types"
	"errors"
	"time"

	"gorm.io/gorm"
)

func GetEnrollment(userId uint) (*models.Enrollment, error) {
	db := db.GetDb()
	var enrollment models.Enrollment
	err := db.
		Model(&models.Enrollment{}).
		Where(&models.Enrollment{UserID: userId}).
		Preload("Address").
		First(&enrollment).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

// UpsertEnrollment creates or replaces the caller's enrollment and its
// address in one transaction.
func UpsertEnrollment(userId uint, birthday time.Time, params *types.UpsertEnrollmentRequestBody) (uint, error) {
	var enrollmentId uint
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var enrollment models.Enrollment
		err := tx.
			Model(&models.Enrollment{}).
			Where(&models.Enrollment{UserID: userId}).
			First(&enrollment).
			Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		enrollment.Name = params.Name
		enrollment.CPF = params.CPF
		enrollment.Birthday = birthday
		enrollment.Phone = params.Phone
		enrollment.UserID = userId
		if err := tx.Save(&enrollment).Error; err != nil {
			return err
		}
		address := models.Address{
			CEP:           params.Address.CEP,
			Street:        params.Address.Street,
			City:          params.Address.City,
			State:         params.Address.State,
			Number:        params.Address.Number,
			Neighborhood:  params.Address.Neighborhood,
			AddressDetail: params.Address.AddressDetail,
			EnrollmentID:  enrollment.ID,
		}
		var existing models.Address
		err = tx.
			Model(&models.Address{}).
			Where(&models.Address{EnrollmentID: enrollment.ID}).
			First(&existing).
			Error
		if err == nil {
			address.ID = existing.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Save(&address).Error; err != nil {
			return err
		}
		enrollmentId = enrollment.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return enrollmentId, nil
}
