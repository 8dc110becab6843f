package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomoki/misuki/internal/config"
	"github.com/tomoki/misuki/internal/database"
	"github.com/tomoki/misuki/internal/lifecycle"
	"github.com/tomoki/misuki/internal/processor"
	"github.com/tomoki/misuki/internal/prompt"
	"github.com/tomoki/misuki/internal/server"
	"github.com/tomoki/misuki/internal/status"
	"github.com/tomoki/misuki/internal/timeutil"
)

func main() {
	cfg := config.LoadFromEnv()

	db, err := database.New(cfg.DBPath)
	if err != nil {
		fatal("creating database", err)
	}
	defer db.Close()

	if err := db.SeedDefaultWeek(); err != nil {
		fatal("seeding default schedule", err)
	}

	homeTZ, fallback := timeutil.ResolveLocation(cfg.HomeTimezone)
	if fallback {
		fmt.Printf("Warning: unknown home timezone %q, using UTC\n", cfg.HomeTimezone)
	}
	localTZ, fallback := timeutil.ResolveLocation(cfg.LocalTimezone)
	if fallback {
		fmt.Printf("Warning: unknown local timezone %q, using UTC\n", cfg.LocalTimezone)
	}

	resolver := status.NewResolver(db, homeTZ, localTZ, time.Duration(cfg.WokenWindowMinutes)*time.Minute)
	events := lifecycle.NewManager(db)
	proc := processor.New(db, events, localTZ, cfg.StaleEventDays)
	builder := prompt.NewBuilder(db, resolver, localTZ)

	srv := server.New(server.ServerConfig{
		DB:        db,
		Resolver:  resolver,
		Processor: proc,
		Events:    events,
		Builder:   builder,
		LocalTZ:   localTZ,
		Port:      cfg.HTTPPort,
	})
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "HTTP server error: %v\n", err)
		}
	}()

	waitForShutdown(srv)
}

func fatal(context string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}

func waitForShutdown(srv *server.Server) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	fmt.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
	}
}
