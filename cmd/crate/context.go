package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"crate/internal/config"
	"crate/internal/library"
	"crate/internal/logging"
	"crate/internal/trackstore"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// withStore opens the track store for the duration of fn.
func (c *commandContext) withStore(fn func(*trackstore.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := trackstore.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

// snapshot loads all stored rows and runs the indexer over them.
func (c *commandContext) snapshot(ctx context.Context) (*library.Snapshot, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	var snap *library.Snapshot
	err = c.withStore(func(store *trackstore.Store) error {
		rows, err := store.Rows(ctx)
		if err != nil {
			return err
		}
		snap = library.NewIndexer(indexerConfig(cfg)).Index(rows)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func indexerConfig(cfg *config.Config) library.Config {
	return library.Config{
		UnknownArtistLabel: cfg.Library.UnknownArtistLabel,
		UnknownGenreLabel:  cfg.Library.UnknownGenreLabel,
		ArtworkBasePath:    cfg.Paths.ArtworkDir,
	}
}
