package boot

import (
	"ers/src/db"
	"ers/src/models"
	"log"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Enrollment{},
		&models.Address{},
		&models.TicketType{},
		&models.Ticket{},
		&models.Payment{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}
