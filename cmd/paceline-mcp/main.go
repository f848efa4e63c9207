package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/paceline/internal/config"
	"github.com/claude/paceline/internal/mcp"
	"github.com/claude/paceline/internal/plan"
	"github.com/claude/paceline/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "remote Paceline server URL; when set, tools call its REST API instead of a local database")
	apiKey := flag.String("api-key", "", "API key for the remote server (or PACELINE_API_KEY)")
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("paceline-mcp", Version)
		return
	}

	// stdout carries the MCP stdio transport; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource

	if *serverURL != "" {
		key := *apiKey
		if key == "" {
			key = os.Getenv("PACELINE_API_KEY")
		}
		if key == "" {
			log.Error("remote mode requires -api-key or PACELINE_API_KEY")
			os.Exit(1)
		}
		ds = mcp.NewHTTPClient(*serverURL, key)
		log.Info("remote mode", "server", *serverURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		ds = mcp.NewLocal(db, plan.NewGenerator(log, Version))
		log.Info("local mode", "database", cfg.Database.Name)
	}

	s := mcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
