package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"workpass/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultNumJobs is how many listings the seeder creates when no count
// is given.
const DefaultNumJobs = 20

var seedCompanies = []string{
	"Hutchinson Builders", "Multiplex", "CPB Contractors",
	"Lendlease", "BESIX Watpac", "Built",
}

var seedTrades = []struct {
	title        string
	requirements []string
	payRange     string
	jobType      string
}{
	{"Commercial Electrician", []string{"white_card", "license"}, "$45-$55/hr", models.JobTypeContract},
	{"Formwork Carpenter", []string{"white_card", "trade_certificate"}, "$40-$48/hr", models.JobTypeCasual},
	{"Site Supervisor", []string{"white_card", "first_aid"}, "$110k-$130k", models.JobTypePermanent},
	{"Plumber", []string{"white_card", "license"}, "$42-$50/hr", models.JobTypeContract},
	{"Apprentice Carpenter", []string{"white_card"}, "$22-$28/hr", models.JobTypeCasual},
}

var seedLocations = []string{
	"Sydney, NSW", "Brisbane, QLD", "Melbourne, VIC", "Perth, WA",
}

// SeedJobs inserts dummy job listings. Jobs normally arrive through the
// ingestion pipeline; the seeder stands in for it in development.
func SeedJobs(db *gorm.DB, count int) error {
	if count <= 0 {
		count = DefaultNumJobs
	}

	for i := 0; i < count; i++ {
		trade := seedTrades[i%len(seedTrades)]
		requirements, err := json.Marshal(trade.requirements)
		if err != nil {
			return fmt.Errorf("failed to marshal requirements: %w", err)
		}

		start := time.Now().AddDate(0, 0, 7+i)
		end := start.AddDate(0, 6, 0)

		job := models.Job{
			Title:        trade.title,
			Company:      seedCompanies[i%len(seedCompanies)],
			Location:     seedLocations[i%len(seedLocations)],
			Description:  fmt.Sprintf("%s needed for an upcoming project.", trade.title),
			Requirements: datatypes.JSON(requirements),
			PayRange:     trade.payRange,
			StartDate:    &start,
			EndDate:      &end,
			JobType:      trade.jobType,
			IsActive:     true,
		}

		if err := db.Create(&job).Error; err != nil {
			return fmt.Errorf("failed to create job %d: %w", i, err)
		}
	}

	log.Printf("Seeded %d jobs", count)
	return nil
}

// SeedDemoUser creates a demo worker with a profile and a verified
// credential set worth a 70-point work-readiness score.
func SeedDemoUser(db *gorm.DB) error {
	user := models.User{
		ID:              "usr_demo",
		Email:           "worker@example.com",
		FirstName:       "Dale",
		LastName:        "Harper",
		Phone:           "+61400123456",
		Role:            models.RoleTradesperson,
		ExperienceLevel: "mid",
		IsEmailVerified: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	years := 7
	rate := 52.5
	skills, _ := json.Marshal([]string{"switchboards", "cable pulling", "testing"})
	profile := models.UserProfile{
		UserID:             user.ID,
		Trade:              "electrician",
		YearsExperience:    &years,
		Location:           "Brisbane, QLD",
		AvailabilityStatus: models.AvailabilityAvailable,
		HourlyRate:         &rate,
		Bio:                "Licensed sparky, commercial fit-outs.",
		Skills:             datatypes.JSON(skills),
	}
	if err := db.Create(&profile).Error; err != nil {
		return fmt.Errorf("failed to create demo profile: %w", err)
	}

	expiry := time.Now().AddDate(3, 0, 0)
	credentials := []models.Credential{
		{
			UserID:             user.ID,
			Type:               models.CredentialTypeWhiteCard,
			Category:           models.CredentialCategorySafety,
			Name:               "General Construction Induction Card",
			IssuingAuthority:   "SafeWork NSW",
			VerificationStatus: models.VerificationVerified,
			IsActive:           true,
		},
		{
			UserID:             user.ID,
			Type:               models.CredentialTypeFirstAid,
			Category:           models.CredentialCategoryMedical,
			Name:               "Provide First Aid",
			ExpiryDate:         &expiry,
			VerificationStatus: models.VerificationVerified,
			IsActive:           true,
		},
		{
			UserID:             user.ID,
			Type:               models.CredentialTypeLicense,
			Category:           models.CredentialCategoryLicense,
			Name:               "Electrical Licence",
			ExpiryDate:         &expiry,
			VerificationStatus: models.VerificationVerified,
			IsActive:           true,
		},
	}
	for i := range credentials {
		if err := db.Create(&credentials[i]).Error; err != nil {
			return fmt.Errorf("failed to create demo credential: %w", err)
		}
	}

	log.Println("Seeded demo user usr_demo with profile and credentials")
	return nil
}
