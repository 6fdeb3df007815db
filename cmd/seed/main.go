package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/config"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/repository"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/seed"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/shifts"

	_ "modernc.org/sqlite"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		return
	}

	if cfg.Environment == "production" {
		logger.Error("refusing to seed a production database")
		return
	}

	if cfg.Seed.User.Password == "" {
		logger.Error("SEED_USER_PASSWORD is not set")
		return
	}

	clock, err := shifts.NewClock(cfg.Timezone)
	if err != nil {
		logger.Error("cannot load timezone", "error", err)
		return
	}

	dbpool, err := repository.Open(cfg)
	if err != nil {
		logger.Error("cannot open database", "error", err)
		return
	}
	defer dbpool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("cannot reach database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.Migrate(); err != nil {
		logger.Error("cannot migrate database", "error", err)
		return
	}

	seed.Seed(repo, clock, cfg.Seed.User.Password)
}
