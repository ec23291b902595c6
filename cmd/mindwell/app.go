package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mindwell/mindwell/internal/kvstore"
	"github.com/mindwell/mindwell/internal/logging"
	"github.com/mindwell/mindwell/pkg/config"
	"github.com/mindwell/mindwell/pkg/surface"
)

// app is what a command needs once configuration has been resolved.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	store  kvstore.Store
	color  surface.ColorMode
}

func openApp(ctx context.Context, v *viper.Viper) (*app, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Logging)
	slog.SetDefault(logger)

	color, err := surface.ParseColorMode(v.GetString("color"))
	if err != nil {
		return nil, err
	}

	store, err := kvstore.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened", "backend", cfg.Store.Backend)

	return &app{cfg: cfg, logger: logger, store: store, color: color}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func (a *app) renderer(format string) (surface.Renderer, error) {
	return surface.ForFormat(format, a.color)
}

// loadConfig reads the config file and applies flag and environment
// overrides on top of it.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	path := v.GetString("config")
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.FindConfigFile(wd)
		}
	}

	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if dir := v.GetString("data-dir"); dir != "" {
		cfg.Store.Dir = filepath.Join(dir, "store")
		cfg.Store.SQLite.Path = filepath.Join(dir, "mindwell.db")
	}
	if level := v.GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if backend := v.GetString("store"); backend != "" {
		cfg.Store.Backend = backend
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// withApp adapts a command body that needs an opened app into a cobra RunE.
func withApp(v *viper.Viper, fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), v)
		if err != nil {
			return err
		}
		defer func() {
			if err := a.Close(); err != nil {
				a.logger.Warn("closing store", "error", err)
			}
		}()
		return fn(cmd, a, args)
	}
}
