package main

import (
	"context"
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"fitbook/internal/database"
	"fitbook/internal/domain"
	"fitbook/internal/pkg/timezone"
	"fitbook/internal/repository"
)

const seedTZ = "Asia/Kolkata"

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "fitness.db"
	}

	db, err := database.Connect(dsn, zerolog.Nop())
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM fitness_classes")

	classRepo := repository.NewClassRepository(db)
	ctx := context.Background()

	// Wall-clock IST schedule, stored as UTC instants.
	classes := []struct {
		name       string
		local      time.Time
		instructor string
		slots      int
	}{
		{"Yoga", time.Date(2025, 10, 6, 9, 0, 0, 0, time.UTC), "Anjali", 20},
		{"Yoga", time.Date(2025, 10, 7, 10, 0, 0, 0, time.UTC), "Rahul", 10},
		{"Zumba", time.Date(2025, 10, 8, 8, 30, 0, 0, time.UTC), "Priya", 5},
		{"HIIT", time.Date(2025, 6, 20, 7, 0, 0, 0, time.UTC), "Shreyas", 2},
		{"HRX", time.Date(2025, 6, 10, 6, 0, 0, 0, time.UTC), "Shreyas", 5},
	}

	for _, c := range classes {
		utc, err := timezone.ToUTC(c.local, seedTZ)
		if err != nil {
			log.Fatal("seed time conversion failed:", err)
		}

		cls := domain.FitnessClass{
			Name:           c.name,
			DateTime:       utc,
			Instructor:     c.instructor,
			AvailableSlots: c.slots,
		}
		if err := classRepo.Create(ctx, &cls); err != nil {
			log.Fatal("seed insert failed:", err)
		}
		log.Printf("Created class %s (%s) at %s, %d slots",
			cls.Name, cls.Instructor, cls.DateTime.Format(time.RFC3339), cls.AvailableSlots)
	}

	log.Println("Seed data inserted successfully!")
}
