package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"symptomix-service/internal/app/config"
	"symptomix-service/internal/app/contracts"
	"symptomix-service/internal/app/delivery/http/controllers"
	"symptomix-service/internal/app/delivery/http/middlewares"
	"symptomix-service/internal/app/delivery/http/routers"
	"symptomix-service/internal/app/drivers/database"
	"symptomix-service/internal/app/drivers/logger"
	"symptomix-service/internal/app/drivers/messaging"
	"symptomix-service/internal/app/drivers/storage"
	"symptomix-service/internal/app/models"
	"symptomix-service/internal/app/services/core/assessments"
	"symptomix-service/internal/app/services/core/diagnostics"
	"symptomix-service/internal/app/services/core/users"
	"symptomix-service/internal/app/services/shared/events"
	"symptomix-service/internal/app/services/shared/locker"
	"symptomix-service/internal/app/services/shared/recordstore"
	"symptomix-service/internal/app/services/shared/redis"
	"symptomix-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	requestLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		RequestLogger:  requestLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	openDrivers(bootstrap)

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	bootstrap.Shutdown(shutdownCtx)

	log.Info("Server exiting")
}

// openDrivers connects only the drivers the configured backends need.
func openDrivers(bootstrap *config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig
	driverConfig := bootstrap.DriverConfig

	switch internalConfig.Store.Backend {
	case constvars.StoreBackendMinio:
		bootstrap.Minio = storage.NewMinio(driverConfig)
	case constvars.StoreBackendMongoDB:
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	case constvars.StoreBackendPostgres:
		bootstrap.PostgresDB = database.NewPostgresDB(driverConfig)
	}

	if internalConfig.Store.LockBackend == constvars.LockBackendRedis {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}

	if internalConfig.Events.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	ctx := context.Background()
	storeConfig := bootstrap.InternalConfig.Store

	// Record store
	backend, err := newDocumentBackend(ctx, bootstrap)
	if err != nil {
		return err
	}
	collectionLocker := newCollectionLocker(bootstrap)
	assessmentStore := recordstore.NewRecordStore[*models.Assessment](backend, collectionLocker, bootstrap.Logger)
	userStore := recordstore.NewRecordStore[*models.User](backend, collectionLocker, bootstrap.Logger)

	bootstrap.Logger.Info("Record store initialized",
		zap.String(constvars.LoggingBackendKey, backend.Name()),
		zap.String("lock_backend", storeConfig.LockBackend),
	)

	// Events
	var eventPublisher contracts.AssessmentEventPublisher = events.NewNoopEventPublisher()
	if bootstrap.RabbitMQ != nil {
		eventPublisher, err = events.NewAssessmentEventPublisher(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Events.Queue)
		if err != nil {
			return err
		}
	}

	// Diagnostics
	diagnosticsConfig := bootstrap.InternalConfig.Diagnostics
	engine := diagnostics.NewEngine(diagnostics.DefaultRuleCatalog(), diagnostics.AnswerFields{
		Symptoms:    diagnosticsConfig.SymptomsField,
		Duration:    diagnosticsConfig.DurationField,
		Severity:    diagnosticsConfig.SeverityField,
		Temperature: diagnosticsConfig.TemperatureField,
	})

	// Usecases
	assessmentUsecase := assessments.NewAssessmentUsecase(assessmentStore, eventPublisher, engine, bootstrap.Logger)
	userUsecase := users.NewUserUsecase(userStore, bootstrap.Logger)

	// Controllers
	requestTimeout := bootstrap.InternalConfig.App.RequestTimeoutInSeconds
	assessmentController := controllers.NewAssessmentController(bootstrap.Logger, assessmentUsecase, requestTimeout)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase, requestTimeout)
	healthController := controllers.NewHealthController()

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.RequestLogger,
		middlewares,
		assessmentController,
		userController,
		healthController,
	)
	return nil
}

func newDocumentBackend(ctx context.Context, bootstrap *config.Bootstrap) (contracts.DocumentBackend, error) {
	storeConfig := bootstrap.InternalConfig.Store

	switch storeConfig.Backend {
	case constvars.StoreBackendFile:
		return recordstore.NewFileBackend(storeConfig.DataDir), nil
	case constvars.StoreBackendMinio:
		backend := recordstore.NewMinioBackend(bootstrap.Minio, storeConfig.MinioBucketName, storeConfig.MinioObjectPrefix)
		if err := backend.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return backend, nil
	case constvars.StoreBackendMongoDB:
		return recordstore.NewMongoBackend(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName), nil
	case constvars.StoreBackendPostgres:
		backend := recordstore.NewPostgresBackend(bootstrap.PostgresDB)
		if err := backend.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return backend, nil
	default:
		return nil, fmt.Errorf(constvars.ErrDevUnknownStoreBackend, storeConfig.Backend)
	}
}

func newCollectionLocker(bootstrap *config.Bootstrap) contracts.CollectionLocker {
	storeConfig := bootstrap.InternalConfig.Store
	acquireTimeout := time.Duration(storeConfig.LockAcquireTimeoutInMs) * time.Millisecond

	if storeConfig.LockBackend == constvars.LockBackendRedis {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
		return locker.NewRedisLocker(
			lockService,
			bootstrap.Logger,
			acquireTimeout,
			time.Duration(storeConfig.LockExpirationInSeconds)*time.Second,
			time.Duration(storeConfig.LockPollIntervalInMs)*time.Millisecond,
		)
	}
	return locker.NewLocalLocker(acquireTimeout)
}
