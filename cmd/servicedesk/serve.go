package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/servicedesk/service-desk/internal/api"
	"github.com/servicedesk/service-desk/internal/api/handler"
	"github.com/servicedesk/service-desk/internal/core/service"
	redisdb "github.com/servicedesk/service-desk/internal/infrastructure/db/redis"
	"github.com/servicedesk/service-desk/internal/infrastructure/richtext"
	"github.com/servicedesk/service-desk/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Get()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	st, err := openStores(ctx, true)
	if err != nil {
		return err
	}
	defer st.close()

	text := richtext.New()
	denylist := redisdb.NewTokenDenylist(st.redis)
	idempotency := redisdb.NewIdempotencyStore(st.redis, cfg.Redis.IdempotencyTTL)
	limiter := redisdb.NewRateLimiter(st.redis, redisdb.RateLimitConfig{
		PerMinute: cfg.RateLimit.PerMinute,
		PerHour:   cfg.RateLimit.PerHour,
	})

	e := api.NewRouter(api.Deps{
		Auth:      service.NewAuthService(st.users, denylist, cfg.JWTSecret, cfg.TokenTTL, log.With().Str("component", "auth").Logger()),
		Catalog:   service.NewCatalogService(st.services, st.incidents, text, log.With().Str("component", "catalog").Logger()),
		Incidents: service.NewIncidentService(st.incidents, st.services, st.users, idempotency, limiter, text, log.With().Str("component", "incidents").Logger()),
		Messages:  service.NewMessageService(st.messages, st.messages, st.users, text, loc, log.With().Str("component", "messages").Logger()),
		Checks: map[string]handler.Check{
			"mongo": st.pingMongo,
			"redis": st.pingRedis,
		},
		Logger:       log,
		SecureCookie: !cfg.IsDevelopment(),
	})

	serveErr := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("address", addr).Msg("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
