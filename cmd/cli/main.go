package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pthana/linkshort/pkg/adapters/repository/sqlite"
	"github.com/pthana/linkshort/pkg/config"
	"github.com/pthana/linkshort/pkg/core/services"
	"github.com/pthana/linkshort/pkg/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	listLimit := listCmd.Int("limit", 50, "max links to print")
	listOffset := listCmd.Int("offset", 0, "links to skip")

	cleanupCmd := flag.NewFlagSet("cleanup", flag.ExitOnError)
	cleanupDays := cleanupCmd.Int("days", 30, "delete links inactive for more than this many days")

	if len(os.Args) < 2 {
		fmt.Println("expected 'list' or 'cleanup' subcommands")
		os.Exit(1)
	}

	cfg := config.Load()
	logger.Initialize(cfg.LogLevel, "")

	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer repo.Close()

	switch os.Args[1] {
	case "list":
		listCmd.Parse(os.Args[2:])
		doList(repo, *listLimit, *listOffset)
	case "cleanup":
		cleanupCmd.Parse(os.Args[2:])
		doCleanup(repo, *cleanupDays)
	default:
		fmt.Println("expected 'list' or 'cleanup' subcommands")
		os.Exit(1)
	}
}

func doList(repo *sqlite.SQLiteRepository, limit, offset int) {
	service := services.NewLinkService(repo, nil)
	links, err := service.List(context.Background(), limit, offset)
	if err != nil {
		log.Fatal().Err(err).Msg("list failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(links); err != nil {
		log.Fatal().Err(err).Msg("encode failed")
	}
}

func doCleanup(repo *sqlite.SQLiteRepository, days int) {
	cleanup := services.NewCleanupService(repo)
	deleted, err := cleanup.Cleanup(context.Background(), time.Duration(days)*24*time.Hour)
	if err != nil {
		log.Fatal().Err(err).Msg("cleanup failed")
	}
	fmt.Printf("deleted %d inactive links\n", deleted)
}
