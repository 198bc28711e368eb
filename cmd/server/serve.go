package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/yukikurage/skillswap-api/internal/config"
	"github.com/yukikurage/skillswap-api/internal/constants"
	"github.com/yukikurage/skillswap-api/internal/database"
	"github.com/yukikurage/skillswap-api/internal/lock"
	"github.com/yukikurage/skillswap-api/internal/repository"
	"github.com/yukikurage/skillswap-api/internal/security"
	"github.com/yukikurage/skillswap-api/internal/server"
	"github.com/yukikurage/skillswap-api/internal/services"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	if err := database.Migrate(db, log); err != nil {
		return err
	}

	store, err := newSessionStore(cfg)
	if err != nil {
		return err
	}

	locker, closeLocker, err := newRatingLocker(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer closeLocker()

	router := server.NewRouter(buildServices(cfg, db, locker, log), store, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func buildServices(cfg *config.Config, db *gorm.DB, locker lock.Locker, log zerolog.Logger) server.Services {
	userRepo := repository.NewUserRepository(db)
	swapRepo := repository.NewSwapRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	reportRepo := repository.NewReportRepository(db)
	messageRepo := repository.NewAdminMessageRepository(db)

	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	feedback := services.NewFeedbackService(feedbackRepo, userRepo, swapRepo, locker, log)

	return server.Services{
		Auth:      services.NewAuthService(userRepo, tokens, log),
		Users:     services.NewUserService(userRepo),
		Swaps:     services.NewSwapService(swapRepo, userRepo, feedback, log),
		Feedback:  feedback,
		Reports:   services.NewReportService(reportRepo, userRepo, log),
		Broadcast: services.NewBroadcastService(messageRepo, cfg.BroadcastCacheTTL, log),
		UserAdmin: services.NewUserAdminService(userRepo, log),
		Analytics: services.NewAnalyticsService(userRepo, swapRepo, reportRepo),
	}
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	store, err := redisStore.NewStore(
		10,                        // Redis pool size
		"tcp",                     // network type
		cfg.RedisAddr(),           // Redis address from config
		"",                        // username (empty for default user)
		cfg.RedisPassword,         // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis session store: %w", err)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}

// newRatingLocker picks the lock that serializes rating recomputes. The
// in-process lock is enough for a single instance.
func newRatingLocker(ctx context.Context, cfg *config.Config, log zerolog.Logger) (lock.Locker, func(), error) {
	if cfg.RatingLock != "redis" {
		return lock.NewKeyedMutex(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info().Str("addr", cfg.RedisAddr()).Msg("using redis rating lock")
	return lock.NewRedisLocker(client, "skillswap:lock:", cfg.RatingLockTTL), func() {
		_ = client.Close()
	}, nil
}
