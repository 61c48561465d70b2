package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/faturh/product-service/internal/cache"
	"github.com/faturh/product-service/internal/clients"
	"github.com/faturh/product-service/internal/config"
	"github.com/faturh/product-service/internal/database"
	"github.com/faturh/product-service/internal/handlers"
	"github.com/faturh/product-service/internal/logging"
	"github.com/faturh/product-service/internal/recommend"
	"github.com/faturh/product-service/internal/repository"
	"github.com/faturh/product-service/internal/routes"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to mongo")
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	repo := repository.NewProductRepository(client.Database(cfg.MongoDB))

	productCache := cache.New(5 * time.Minute)
	defer productCache.Stop()

	orderClient := clients.NewOrderClient(cfg.OrderServiceURL, cfg.PeerTimeout)
	userClient := clients.NewUserClient(cfg.UserServiceURL, cfg.PeerTimeout)

	engine := recommend.NewEngine(
		repo,
		recommend.DefaultSimilarityTable(),
		recommend.DefaultHistoryStore(),
		orderClient,
	)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), handlers.RequestLogger())

	routes.Register(
		router,
		handlers.NewProductHandler(repo, productCache),
		handlers.NewRecommendationHandler(engine),
		handlers.NewUserHandler(userClient, repo),
		handlers.NewHealthHandler(repo),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
