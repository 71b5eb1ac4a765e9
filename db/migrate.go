package db

import (
	"fmt"
	"log"

	"github.com/salonflow/salonflow/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Salon{},
		&models.Service{},
		&models.Stylist{},
		&models.Promotion{},
		&models.Client{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
