package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/BG-legacy/HabitChain-sub001/internal/adapters/repository/postgres"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/services"
)

// One-shot job that re-evaluates badge eligibility for every user. Run after
// seeding new badges so existing streaks pick them up.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var databaseURL string
	flag.StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Database connection string")
	flag.Parse()

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	userRepo := postgres.NewUserRepository(db)
	habitRepo := postgres.NewHabitRepository(db)
	badgeRepo := postgres.NewBadgeRepository(db)

	badgeService := services.NewBadgeService(userRepo, habitRepo, badgeRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("Starting badge sweep...")

	if err := badgeService.SweepAll(ctx); err != nil {
		log.Fatalf("Error sweeping badges: %v", err)
	}

	log.Println("Badge sweep completed successfully.")
}
