package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/fundflow/collection-service/internal/app/background"
	"github.com/fundflow/collection-service/internal/config"
	"github.com/fundflow/collection-service/internal/delivery/http/handlers"
	"github.com/fundflow/collection-service/internal/infrastructure/cashfree"
	publisher "github.com/fundflow/collection-service/internal/infrastructure/kafka"
	"github.com/fundflow/collection-service/internal/infrastructure/logger"
	"github.com/fundflow/collection-service/internal/infrastructure/metrics"
	"github.com/fundflow/collection-service/internal/infrastructure/migrate"
	"github.com/fundflow/collection-service/internal/infrastructure/postgres"
	"github.com/fundflow/collection-service/internal/infrastructure/postgres/repository"
	"github.com/fundflow/collection-service/internal/usecase"
	donationusecase "github.com/fundflow/collection-service/internal/usecase/donation"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	logger.Setup(cfg.LogConfig)
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.CollectionDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.CollectionDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repositories
	collectionRepo := repository.NewDefaultCollectionRepository(db)
	donationRepo := repository.NewDefaultDonationRepository(db)

	// Init payment gateway client
	gatewayClient := cashfree.NewClient(cfg.Cashfree)

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	donationPublisher := publisher.NewDefaultKafkaPublisher(brokers, cfg.KafkaService.Topic)

	// Init metrics and audit log
	donationMetrics := metrics.NewDonationMetrics()
	eventLogger := logger.NewPGDonationEventLogger(db)

	// Init usecases
	collectionUsecase := usecase.NewDefaultCollectionUsecase(collectionRepo, donationRepo)
	donationUC := donationusecase.NewDefaultDonationUsecase(
		donationRepo,
		collectionRepo,
		gatewayClient,
		donationPublisher,
		eventLogger,
		donationMetrics,
		"INR",
		cfg.Cashfree.ReturnBaseURL,
		cfg.Cashfree.NotifyBaseURL,
		donationusecase.ReconcilerSettings{
			PendingTimeout: cfg.Reconciler.PendingTimeout,
			BatchLimit:     cfg.Reconciler.BatchLimit,
		},
	)

	// Init handlers
	collectionHandler := handlers.NewCollectionHandler(collectionUsecase, donationUC)
	donationHandler := handlers.NewDonationHandler(donationUC, cfg.Cashfree.WebhookSecret)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "FundFlow API - Group Collection Platform"})
		})

		api.POST("/collections", collectionHandler.CreateCollection)
		api.GET("/collections", collectionHandler.ListCollections)
		api.GET("/collections/:id", collectionHandler.GetCollection)
		api.GET("/collections/:id/donations", collectionHandler.GetCollectionDonations)
		api.GET("/categories", collectionHandler.GetCategories)
		api.GET("/stats", collectionHandler.GetPlatformStats)

		api.POST("/payments/create-order", donationHandler.CreatePaymentOrder)
		api.GET("/payments/verify/:order_id", donationHandler.VerifyPayment)
		api.POST("/webhooks/payment", donationHandler.HandlePaymentWebhook)
	}

	// Fallback poll for orders stuck in pending
	tasks := background.NewTasks(donationUC, cfg.Reconciler.PollInterval, cfg.Reconciler.SweepInterval)
	go tasks.StartStuckPendingPoller(context.Background())

	// Collection totals consistency sweep
	go tasks.StartConsistencySweep(context.Background())

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
