package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/scores"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Store kinds accepted by --store.
const (
	storeFile   = "file"
	storeSQLite = "sqlite"
)

// openStore opens the score store selected by --store and --scores.
func openStore(logger *log.Logger) (scores.Store, error) {
	switch flagStore {
	case storeFile:
		path := flagScoresPath
		if path == "" {
			path = "~/.tetris/scores.json"
		}
		expanded, err := config.ExpandHome(path)
		if err != nil {
			return nil, err
		}
		store, err := scores.OpenFileStore(expanded, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case storeSQLite:
		path := flagScoresPath
		if path == "" {
			path = "~/.tetris/scores.db"
		}
		store, err := storage.Open(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store %q (want %s or %s)", flagStore, storeFile, storeSQLite)
	}
}
