package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/johnquangdev/discussion-planner/internal/infrastructure/database"
	"github.com/johnquangdev/discussion-planner/pkg/config"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up, down or status")
	dir := flag.String("dir", "", "migrations directory (defaults to DB_MIGRATION_DIR)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	migrationDir := cfg.Database.MigrationDir
	if *dir != "" {
		migrationDir = *dir
	}

	// Initialize database using GORM
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	switch *direction {
	case "up":
		err = database.Migrate(db, migrationDir, database.Up)
	case "down":
		err = database.Migrate(db, migrationDir, database.Down)
	case "status":
		var lines []string
		lines, err = database.MigrationStatus(db, migrationDir)
		for _, line := range lines {
			fmt.Println(line)
		}
	default:
		log.Printf("❌ Unknown direction %q", *direction)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
}
