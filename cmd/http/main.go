package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"caregate-service/internal/app/config"
	"caregate-service/internal/app/delivery/http/routers"
	"caregate-service/internal/app/drivers/database"
	"caregate-service/internal/app/drivers/logger"
	"caregate-service/internal/app/drivers/messaging"
	"caregate-service/internal/app/drivers/storage"
	"caregate-service/internal/app/services/datasets"
	"caregate-service/internal/app/services/fhirstore"
	"caregate-service/internal/app/services/fixtures"
	"caregate-service/internal/app/services/mapping"
	"caregate-service/internal/app/services/modes"
	"caregate-service/internal/app/services/shared/audit"
	sharedredis "caregate-service/internal/app/services/shared/redis"
	sharedstorage "caregate-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Printf("Error closing drivers: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	// Audit trail
	auditRepository := audit.NewAuditMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	auditPublisher, err := audit.NewAuditQueuePublisher(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to initialize audit publisher: %v", err)
	}

	// Object storage
	objectStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	// Data sources
	liveSource := fhirstore.NewFhirClient(
		bootstrap.InternalConfig.FHIR.BaseUrl,
		time.Second*time.Duration(bootstrap.InternalConfig.FHIR.RequestTimeoutInSeconds),
		bootstrap.Logger,
	)
	fixtureSource := fixtures.NewFixtureSource(bootstrap.Logger)
	sourceResolver := modes.NewSourceResolver(bootstrap.InternalConfig.Gateway, liveSource, fixtureSource, bootstrap.Logger)

	// Mapping
	mapperRegistry := mapping.NewRegistry(bootstrap.InternalConfig.Gateway.Defaults)

	// Datasets
	datasetUsecase := datasets.NewDatasetUsecase(
		sourceResolver,
		mapperRegistry,
		redisRepository,
		auditRepository,
		auditPublisher,
		objectStorage,
		bootstrap.Logger,
	)
	datasetController := datasets.NewDatasetController(datasetUsecase, bootstrap.Logger)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, bootstrap.Logger, datasetController)
}
