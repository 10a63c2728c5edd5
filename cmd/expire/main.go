package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"joyit/internal/config"
	"joyit/internal/database"
	"joyit/internal/repository"
)

// Housekeeping job, intended for cron. Marks past schedules completed and
// closes orders and subscriptions whose validity window has passed.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	now := time.Now()

	schedules := repository.NewScheduleRepository(db)
	orders := repository.NewServiceOrderRepository(db)
	subscriptions := repository.NewSubscriptionRepository(db)

	n, err := schedules.CompletePast(ctx, now)
	if err != nil {
		log.Fatalf("complete schedules: %v", err)
	}
	log.Printf("schedules completed: %d", n)

	n, err = orders.ExpirePast(ctx, now)
	if err != nil {
		log.Fatalf("expire orders: %v", err)
	}
	log.Printf("orders expired: %d", n)

	n, err = subscriptions.ExpirePast(ctx, now)
	if err != nil {
		log.Fatalf("expire subscriptions: %v", err)
	}
	log.Printf("subscriptions expired: %d", n)
}
