// Command portal serves the glass-order portal API in front of the backend.
//
// @title       Vidros portal API
// @version     1.0
// @description Role-aware order workflow between stores and the glass department.
// @BasePath    /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
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

	"github.com/gin-gonic/gin"

	_ "github.com/MikeMC777/vidros-portal/docs"
	"github.com/MikeMC777/vidros-portal/internal/backend"
	"github.com/MikeMC777/vidros-portal/internal/config"
	"github.com/MikeMC777/vidros-portal/internal/kafka"
	"github.com/MikeMC777/vidros-portal/internal/redisx"
	"github.com/MikeMC777/vidros-portal/internal/session"
	"github.com/MikeMC777/vidros-portal/internal/user"
)

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	var h slog.Handler
	if cfg.LogFormat == "text" {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(h).With("service", cfg.ServiceName)
}

func main() {
	cfg := config.Load()
	slog.SetDefault(newLogger(cfg))
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis not reachable; logout and stats cache will fail until it is", "addr", cfg.RedisAddr, "error", err)
	}

	be := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout)

	var pub kafka.Publisher = kafka.Discard{}
	var producer *kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewProducer(cfg.KafkaBrokers, cfg.TopicActivity, 256)
		producer.Start(ctx)
		pub = producer
	} else {
		slog.Info("no kafka brokers configured; activity events disabled")
	}

	r := newRouter(deps{
		Orders:     be,
		Auth:       be,
		Stores:     be.Stores(),
		Users:      user.NewService(be.Users()),
		Stats:      be,
		StatsCache: redisx.NewStatsCache(rdb, cfg.StatsCacheTTL),
		Sessions:   session.NewManager(cfg.JWTSecret, cfg.SessionTTL, redisx.NewRevocations(rdb)),
		Events:     activityEmitter{pub: pub, producer: cfg.ServiceName},
		Origins:    cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("portal listening", "addr", cfg.Addr, "backend", cfg.BackendBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown", "error", err)
	}
	if producer != nil {
		producer.WaitClosed()
	}
}
