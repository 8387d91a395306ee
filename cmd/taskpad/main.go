// Package main is the entry point for the taskpad CLI.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"taskpad/internal/cli"
	"taskpad/internal/commands"
	"taskpad/internal/config"
	"taskpad/internal/service"
	"taskpad/internal/store"
	"taskpad/internal/storage/bolt"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Store factory: open the bolt database and load state into the
	// reducer store.
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		if err := cfg.EnsureDir(); err != nil {
			return nil, err
		}
		db, err := bolt.Open(cfg.DBPath())
		if err != nil {
			return nil, err
		}
		st := store.New(ctx, db)
		if cfg.Debug {
			st.Logf = log.New(os.Stderr, "taskpad: ", 0).Printf
		}
		return st, nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
