package main

import (
	"fmt"
	"os"

	"asabig-talent-platform/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
)

// Applies the SQL migrations under migrations/. Usage:
//
//	go run ./cmd/migrate        # up
//	go run ./cmd/migrate down   # down
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
	)

	m, err := migrate.New("file://migrations", dbURL)
	if err != nil {
		logrus.Fatalf("Failed to initialize migrations: %v", err)
	}

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	if cmd == "down" {
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			logrus.Fatalf("Migration down failed: %v", err)
		}
		logrus.Info("Migration down successful")
		return
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		logrus.Fatalf("Migration up failed: %v", err)
	}
	logrus.Info("Migration up successful")
}
