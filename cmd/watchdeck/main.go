package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"watchdeck/internal/config"
	"watchdeck/internal/share"
	"watchdeck/internal/storage"
	"watchdeck/internal/store"
)

// app bundles the wired-up components the subcommands operate on.
type app struct {
	store *store.Store
	codec *share.Codec
}

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	repo, err := storage.NewBadgerRepository(cfg.BadgerDBPath, log)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.WithError(err).Error("Error closing database")
		}
	}()

	st := store.New(repo, log)
	a := &app{
		store: st,
		codec: share.NewCodec(st, log),
	}

	if err := newRootCommand(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}
