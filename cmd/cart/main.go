package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"shopping/config"
	"shopping/controllers"
	"shopping/database"
	"shopping/logger"
	"shopping/repository"
	"shopping/routes"
	"shopping/server"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load(config.ServiceCart)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	l := logger.New(cfg)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	store, err := database.Connect(connectCtx, cfg.MongoURL, cfg.DBName, cfg.ConnectTimeout)
	cancel()
	if err != nil {
		l.Fatal().Err(err).Str("url", cfg.MongoURL).Msg("MongoDB connection failed")
	}
	l.Info().Str("url", cfg.MongoURL).Str("db", cfg.DBName).Msg("connected to MongoDB")

	cart := controllers.NewCartController(
		repository.NewCartRepository(store.Collection(cfg.Collection)),
		cfg.RequestTimeout,
		cfg.StrictValidation,
	)

	r := routes.NewEngine(l, cfg.CORSAllowedOrigins)
	routes.RegisterCartRoutes(r, cart, controllers.NewHealthController(store, cfg.RequestTimeout))

	srv := server.New(cfg.Port, r, l, cfg.ShutdownTimeout)
	runErr := srv.Run(ctx)

	closeCtx, cancelClose := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelClose()
	if err := store.Close(closeCtx); err != nil {
		l.Error().Err(err).Msg("failed to close store")
	}

	if runErr != nil {
		l.Fatal().Err(runErr).Msg("server stopped")
	}
	l.Info().Msg("server stopped")
}
