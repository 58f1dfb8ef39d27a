package main

import (
	"context"

	"github.com/GlebRadaev/coinkids/internal/app"
	"github.com/GlebRadaev/coinkids/internal/cache"
	"github.com/GlebRadaev/coinkids/internal/config"
	"github.com/GlebRadaev/coinkids/internal/pg"
	achievementrepo "github.com/GlebRadaev/coinkids/internal/repo/achievement-repo"
	"github.com/GlebRadaev/coinkids/internal/service/achievementservice"
	"github.com/GlebRadaev/coinkids/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	cfg := config.New()
	if err := logger.InitLogger(cfg); err != nil {
		log.Fatal().Err(err).Msg("Can't init logger")
	}

	pool, err := app.GetPgxpool(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Can't connect to database")
	}
	defer pool.Close()
	if err := pg.RunMigrations(pool); err != nil {
		log.Fatal().Err(err).Msg("Can't run migrations")
	}

	repo := achievementrepo.New(pg.New(pool))
	created, updated, err := achievementservice.New(repo, repo, nil, nil).SeedDefaults(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Can't seed achievements")
	}

	if client := app.ConnectRedis(ctx, cfg); client != nil {
		defer client.Close()
		if err := cache.NewAchievementCatalog(repo, client, cfg.CatalogTTL).Invalidate(ctx); err != nil {
			zap.L().Warn("catalog cache not invalidated", zap.Error(err))
		}
	}

	log.Info().Int("created", created).Int("updated", updated).Msg("Default achievements seeded")
}
