package db

import (
	"fmt"
	"log"

	"github.com/petconnect/petconnect/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Pet{},
		&models.Appointment{},
		&models.Product{},
		&models.Order{},
		&models.Charity{},
		&models.Donation{},
		&models.LostFoundReport{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedCharities()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedCharities creates the starter campaigns on an empty database.
func seedCharities() {
	initial := []models.Charity{
		{
			Name:        "Nepal Animal Shelter",
			Description: "Supporting stray animals with food, shelter, and medical care. Your donation helps us provide essential care for abandoned pets.",
			Image:       models.Image{PublicID: "charity_placeholder", URL: "https://placehold.co/300x300"},
			Goal:        50000,
		},
		{
			Name:        "Street Dog Welfare",
			Description: "Providing vaccinations and medical treatment for street dogs. Help us create a healthier environment for street animals.",
			Image:       models.Image{PublicID: "charity_placeholder", URL: "https://placehold.co/300x300"},
			Goal:        25000,
		},
		{
			Name:        "Cat Shelter",
			Description: "Meoww!",
			Image:       models.Image{PublicID: "charity_placeholder", URL: "https://placehold.co/300x300"},
			Goal:        20000,
		},
	}

	for _, charity := range initial {
		var existing models.Charity
		if DB.Where("name = ?", charity.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&charity)
		}
	}
}
