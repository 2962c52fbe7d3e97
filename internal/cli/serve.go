package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardpress/internal/config"
	"github.com/matzehuels/cardpress/internal/server"
	"github.com/matzehuels/cardpress/pkg/ai"
	"github.com/matzehuels/cardpress/pkg/cache"
	"github.com/matzehuels/cardpress/pkg/storage"
	"github.com/matzehuels/cardpress/pkg/upload"
)

// newServeCmd creates the serve command that runs the HTTP API.
func newServeCmd() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the card authoring HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return runServer(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.toml")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func runServer(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	store, err := newStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn("close storage", "err", err)
		}
	}()

	byteCache, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer byteCache.Close()

	uploads, err := upload.NewStore(cfg.Server.UploadDir)
	if err != nil {
		return err
	}

	var aiClient *ai.Client
	if cfg.AI.APIKey != "" {
		aiClient = ai.NewClient(ai.Config{
			APIKey:   cfg.AI.APIKey,
			BaseURL:  cfg.AI.BaseURL,
			Model:    cfg.AI.Model,
			CacheTTL: cfg.Cache.TTL.Duration,
		}, byteCache)
	} else {
		logger.Warn("no AI api key configured, suggestion routes disabled")
	}

	logger.Info("starting server",
		"addr", cfg.Server.Addr,
		"storage", cfg.Storage.Backend,
		"cache", cfg.Cache.Backend,
	)
	return server.New(store, uploads, aiClient, logger).Run(ctx, cfg.Server.Addr)
}

func newStore(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case "mongo":
		return storage.NewMongo(ctx, cfg.MongoURI, cfg.Database)
	default:
		return storage.NewMemory(), nil
	}
}

func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "file":
		dir := cfg.Dir
		if dir == "" {
			dir = ".cardpress-cache"
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
	default:
		return cache.NewNullCache(), nil
	}
}
