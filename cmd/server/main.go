package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/DavidIQ/onlytimer/internal/clock"
	"github.com/DavidIQ/onlytimer/internal/db"
	"github.com/DavidIQ/onlytimer/internal/feed"
	"github.com/DavidIQ/onlytimer/internal/redis"
	"github.com/DavidIQ/onlytimer/internal/report"
	"github.com/DavidIQ/onlytimer/internal/timing"
)

func main() {
	// load .env in development; real deployments set the environment
	_ = godotenv.Load()
	env := LoadEnvironment()

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	if env.RedisAddress != "" {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	store := db.NewLogStore()
	registry := timing.NewRegistry(clock.System{}, store)

	var source feed.Source = feed.SampleSource()
	if env.FeedURL != "" {
		source = feed.NewHTTPSource(env.FeedURL)
	}

	// regenerate the timing report on a schedule; generation only
	// reads saved logs so it can run alongside a live meeting
	c := cron.New()
	if _, err := c.AddFunc(env.ReportCron, func() {
		if _, err := report.Generate(context.Background(), store, env.ReportDir); err != nil {
			log.Error().Err(err).Msg("scheduled report generation failed")
		}
	}); err != nil {
		log.Fatal().Err(err).Str("spec", env.ReportCron).Msg("invalid report cron spec")
	}
	c.Start()

	// set up gin router
	r := gin.Default()
	RegisterRoutes(r, env, registry, source)

	// start
	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
