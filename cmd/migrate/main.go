package main

import (
	"flag"
	"log"

	"github.com/callcoachhq/call-coach/internal/infrastructure/database"
	"github.com/callcoachhq/call-coach/pkg/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory containing SQL migrations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("🔄 Applying migrations...")
	if err := database.Migrate(db, *dir); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
}
