package main

import (
	"context"
	"log"
	"path/filepath"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/transit-design-lab/snd-backend/config"
	"github.com/transit-design-lab/snd-backend/internal/auth"
	"github.com/transit-design-lab/snd-backend/internal/bootstrap"
	"github.com/transit-design-lab/snd-backend/internal/feeds"
	cronjob "github.com/transit-design-lab/snd-backend/internal/feeds/cron"
	"github.com/transit-design-lab/snd-backend/internal/snd/catalog"
	sndhttp "github.com/transit-design-lab/snd-backend/internal/snd/http"
	"github.com/transit-design-lab/snd-backend/internal/snd/repository"
	"github.com/transit-design-lab/snd-backend/internal/snd/service"
	"github.com/transit-design-lab/snd-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
	if err != nil {
		log.Fatalf("postgres pool: %v", err)
	}
	defer pool.Close()

	sqlDB, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer sqlDB.Close()

	redisClient, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	cat, err := catalog.Load(catalog.FilesInDir(filepath.Join(cfg.Feeds.DataDir, "lookups")))
	if err != nil {
		log.Fatalf("bus catalog: %v", err)
	}

	runRepo := repository.NewRunRepository(redisClient)
	summaryRepo := repository.NewSummaryRepository(sqlDB)
	evalService := service.NewEvaluationService(runRepo, summaryRepo, cat, cfg.Engine.OperatorSalary)
	evalHandler := sndhttp.New(evalService)

	authClient := authClientFromConfig(cfg)

	fetcher := feeds.NewFetcher(cfg.Feeds.TransitlandAPIKey, cfg.Feeds.DataDir, feeds.DefaultFetchConfig())
	scheduler := cronjob.NewScheduler(fetcher, cfg.Feeds.FeedID, cfg.Feeds.LodesState)
	scheduler.Start()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "snd-backend",
		Version:     cfg.App.Version,
		DB:          pool,
		Evaluations: evalHandler,
		AuthClient:  authClient,
		Fetcher:     fetcher,
		FeedID:      cfg.Feeds.FeedID,
		LodesState:  cfg.Feeds.LodesState,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// authClientFromConfig initializes Firebase when credentials are configured.
// Without credentials the API falls back to header-based user identification,
// which is only meant for local development.
func authClientFromConfig(cfg *config.Config) *fbauth.Client {
	if cfg.Firebase.CredentialsPath == "" {
		return nil
	}
	client, err := auth.InitializeFirebase(&cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	return client
}
