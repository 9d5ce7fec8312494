package database

import (
	"log"

	"workpass/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Credential{},
		&models.Job{},
		&models.JobApplication{},
		&models.UserActivity{},
		&models.OtpVerification{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
