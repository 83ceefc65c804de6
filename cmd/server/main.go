package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redislib "github.com/redis/go-redis/v9"

	"github.com/aciky/community-api/internal/api"
	"github.com/aciky/community-api/internal/core/ports"
	"github.com/aciky/community-api/internal/infrastructure/config"
	"github.com/aciky/community-api/internal/infrastructure/db/postgres"
	"github.com/aciky/community-api/internal/infrastructure/db/redis"
	"github.com/aciky/community-api/internal/infrastructure/mail"
	"github.com/aciky/community-api/internal/ratelimit"
	"github.com/aciky/community-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		lg := logger.Init(logger.Options{})
		lg.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	db, err := postgres.Connect(ctx, postgres.Config{
		URL:          cfg.Database.URL,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	// Redis is optional: without it the rate limiter counts in process
	// memory, which is fine for a single instance.
	var rdb *redislib.Client
	var limitStore ratelimit.Store = ratelimit.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		defer rdb.Close()
		limitStore = redis.NewRateLimitStore(rdb)
	}

	var mailer ports.Mailer = mail.NewLogMailer(log)
	if cfg.SMTP.Host != "" {
		mailer = mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}

	e := api.NewRouter(cfg, db, rdb, limitStore, mailer, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("community API listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
