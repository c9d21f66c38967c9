package main

import (
	"context"
	"flag"
	"time"

	"hospital-admin-console/config"
	"hospital-admin-console/internal/client"
	"hospital-admin-console/internal/console"
	"hospital-admin-console/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

func main() {
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "login password")
	sync := flag.Bool("sync", false, "refresh the offline snapshot before starting")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	snapshotDir := cfg.Console.SnapshotDir
	if snapshotDir == "" {
		snapshotDir = "data"
	}
	storage, err := store.NewFileStorage(snapshotDir)
	if err != nil {
		log.Fatalf("Failed to open snapshot dir: %v", err)
	}

	snapshotStore := store.New(storage, log)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := snapshotStore.Hydrate(ctx); err != nil {
		// A broken snapshot should not block the console; offline mode just
		// starts empty until the next sync.
		log.Warnf("Snapshot hydrate failed, starting empty: %v", err)
	}

	apiClient := client.New(cfg.Console.APIBaseURL)
	if *email != "" {
		if _, err := apiClient.Login(ctx, *email, *password); err != nil {
			log.Fatalf("Login failed: %v", err)
		}
	}

	if *sync {
		if err := console.Sync(ctx, apiClient, snapshotStore); err != nil {
			log.Warnf("Snapshot sync failed: %v", err)
		}
	}

	app := console.NewApp(apiClient, snapshotStore, log)
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("Console exited with error: %v", err)
	}
}
