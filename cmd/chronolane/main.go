package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rowanveldt/chronolane/internal/cli"
	"github.com/rowanveldt/chronolane/internal/db"
	"github.com/rowanveldt/chronolane/internal/repository"
	"github.com/rowanveldt/chronolane/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.chronolane/chronolane.db
	dbPath := os.Getenv("CHRONOLANE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".chronolane", "chronolane.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	repo := repository.NewSQLiteTimelineRepo(database)

	var observers []service.Observer
	if os.Getenv("CHRONOLANE_LOG") != "" {
		observers = append(observers, service.NewLogObserver(os.Stderr))
	}

	app := &cli.App{
		Timeline: service.NewTimelineService(repo, observers...),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
