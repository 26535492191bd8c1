package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ArenaBookingService/internal/config"
	"github.com/m04kA/SMC-ArenaBookingService/migrations"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/logger"
)

func main() {
	var (
		configPath = flag.String("config", "config.toml", "Path to config file")
		command    = flag.String("command", "up", "Command to run (up, down, version)")
		steps      = flag.Int("steps", 0, "Number of migrations to roll back for down (0 = all)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	m, err := migrations.New(db)
	if err != nil {
		log.Fatal("Migration init failed: %v", err)
	}

	switch *command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("Migration up failed: %v", err)
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("Migration down failed: %v", err)
		}
	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal("Get version failed: %v", err)
		}
		log.Info("Migration version=%d dirty=%t", version, dirty)
		return
	default:
		log.Fatal("Unknown command: %s", *command)
	}

	log.Info("Migration %s completed", *command)
}
