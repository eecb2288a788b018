package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fkhayef/partymatch/internal/config"
	"github.com/fkhayef/partymatch/internal/database"
	"github.com/fkhayef/partymatch/internal/group"
	"github.com/fkhayef/partymatch/internal/notification"
	"github.com/fkhayef/partymatch/internal/profile"
)

// @title                       Party Match API
// @version                     1.0
// @description                 Group invites, membership and raid readiness for matchmaking.
// @BasePath                    /
// @securityDefinitions.apikey  session
// @in                          header
// @name                        X-Session-ID
func main() {
	// Load .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	if envErr != nil {
		logger.Info("No .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Profile feature
	store, closeStore, err := openProfileStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open profile store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	profileService := profile.NewService(store, cfg.ProfileCacheTTL)
	profileHandler := profile.NewHandler(profileService)

	// Notifier: local hub, optionally fanned out through redis
	hub := notification.NewHub(logger, cfg.WSSendBuffer, cfg.WSPingInterval)
	defer hub.Close()
	notifierHandler := notification.NewHandler(hub, profileService)

	var notifier group.Notifier = hub
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		relay := notification.NewRelay(rdb, cfg.RedisChannel, hub, cfg.WSSendBuffer*64, logger)
		go func() {
			if err := relay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Redis relay stopped", "error", err)
			}
		}()
		notifier = relay
		logger.Info("Redis relay enabled", "addr", cfg.RedisAddr, "channel", cfg.RedisChannel)
	}

	// Group feature
	groupService := group.NewService(profileService, notifier, group.UUIDGenerator{}, logger)
	groupHandler := group.NewHandler(groupService)

	r := newRouter(cfg, routeHandlers{
		group:    groupHandler,
		profile:  profileHandler,
		notifier: notifierHandler,
	})
	if cfg.DebugRoutes {
		logger.Warn("Debug routes enabled, /debug/groups exposes session ids")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown failed", "error", err)
		}
	}()

	logger.Info("Server starting", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

// openProfileStore selects Postgres when a DSN is configured, otherwise an
// in-memory store seeded from PROFILE_SEED.
func openProfileStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (profile.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		store := profile.NewMemoryStore()
		if cfg.ProfileSeed != "" {
			identities, err := profile.LoadSeed(cfg.ProfileSeed)
			if err != nil {
				return nil, nil, err
			}
			for _, identity := range identities {
				store.Put(identity)
			}
			logger.Info("Loaded profile seed", "path", cfg.ProfileSeed, "profiles", len(identities))
		} else {
			logger.Warn("No DATABASE_URL or PROFILE_SEED, profile store starts empty")
		}
		return store, func() {}, nil
	}

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	logger.Info("Connected to database successfully")
	return profile.NewRepository(db), func() { db.Close() }, nil
}
