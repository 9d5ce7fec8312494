package main

import (
	"flag"
	"log"
	"os"

	"workpass/database"
	"workpass/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	jobsCmd := flag.NewFlagSet("jobs", flag.ExitOnError)
	numJobs := jobsCmd.Int("count", utils.DefaultNumJobs, "Number of dummy job listings to create")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "jobs":
		jobsCmd.Parse(os.Args[2:])
		if err := utils.SeedJobs(database.DB, *numJobs); err != nil {
			log.Fatalf("Error seeding jobs: %v", err)
		}
	case "demo":
		if err := utils.SeedDemoUser(database.DB); err != nil {
			log.Fatalf("Error seeding demo user: %v", err)
		}
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	log.Println("Usage: seed <command> [flags]")
	log.Println("  jobs [--count N]   seed dummy job listings")
	log.Println("  demo               seed the demo worker with profile and credentials")
}
