package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"fileportal/internal/config"
	"fileportal/internal/database"
	"fileportal/internal/domain"
	"fileportal/internal/repository"
)

// Removes expired sessions. Intended to run from cron; expired sessions
// are also deleted lazily on use, so this only reclaims abandoned rows.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := db.AutoMigrate(&domain.Session{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	sessions := repository.NewSessionRepository(db)
	removed, err := sessions.DeleteExpired(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("delete expired sessions: %v", err)
	}
	log.Printf("removed %d expired sessions", removed)
}
