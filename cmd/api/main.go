package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/influmatch/influmatch-backend/api/routes"
	"github.com/influmatch/influmatch-backend/internal/auth"
	"github.com/influmatch/influmatch-backend/internal/companies"
	"github.com/influmatch/influmatch-backend/internal/favorites"
	"github.com/influmatch/influmatch-backend/internal/influencers"
	"github.com/influmatch/influmatch-backend/internal/users"
	"github.com/influmatch/influmatch-backend/pkg/config"
	"github.com/influmatch/influmatch-backend/pkg/db"
	"github.com/influmatch/influmatch-backend/pkg/instance"
	"github.com/influmatch/influmatch-backend/pkg/logger"
	"github.com/influmatch/influmatch-backend/pkg/migrate"
	"github.com/influmatch/influmatch-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	userRepo := users.NewRepository(dbClient.DB())
	influencerRepo := influencers.NewRepository(dbClient.DB())
	companyRepo := companies.NewRepository(dbClient.DB())
	favoritesRepo := favorites.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		InfluencerRepo: influencerRepo,
		CompanyRepo:    companyRepo,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		TxRunner:       dbClient,
		PasswordConfig: cfg.Password,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	influencersService, err := influencers.NewService(influencers.ServiceParams{Repo: influencerRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create influencers service", err)
		os.Exit(1)
	}

	favoritesService, err := favorites.NewService(favorites.ServiceParams{
		FavoritesRepo:  favoritesRepo,
		CompanyRepo:    companyRepo,
		InfluencerRepo: influencerRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create favorites service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			authService,
			registerService,
			influencersService,
			favoritesService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
