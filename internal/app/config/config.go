package config

import (
	"symptomix-service/internal/pkg/constvars"
	"symptomix-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "symptomix"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		PostgresDB: PostgresDB{
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "symptomix"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "defaultPassword"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			AssessRequestsPerMinute:    utils.GetEnvInt("APP_ASSESS_REQUESTS_PER_MINUTE", 30),
			AssessBurst:                utils.GetEnvInt("APP_ASSESS_BURST", 5),
			AssessBlockTimeInSeconds:   utils.GetEnvInt("APP_ASSESS_BLOCK_TIME_IN_SECONDS", 60),
		},
		Store: Store{
			Backend:                 utils.GetEnvString("STORE_BACKEND", constvars.StoreBackendFile),
			DataDir:                 utils.GetEnvString("STORE_DATA_DIR", "data"),
			LockBackend:             utils.GetEnvString("STORE_LOCK_BACKEND", constvars.LockBackendLocal),
			LockAcquireTimeoutInMs:  utils.GetEnvInt("STORE_LOCK_ACQUIRE_TIMEOUT_IN_MS", 5000),
			LockPollIntervalInMs:    utils.GetEnvInt("STORE_LOCK_POLL_INTERVAL_IN_MS", 50),
			LockExpirationInSeconds: utils.GetEnvInt("STORE_LOCK_EXPIRATION_IN_SECONDS", 30),
			MinioBucketName:         utils.GetEnvString("STORE_MINIO_BUCKET_NAME", "symptomix"),
			MinioObjectPrefix:       utils.GetEnvString("STORE_MINIO_OBJECT_PREFIX", "collections/"),
		},
		Diagnostics: Diagnostics{
			SymptomsField:    utils.GetEnvString("DIAGNOSTICS_SYMPTOMS_FIELD", "primary_symptoms"),
			DurationField:    utils.GetEnvString("DIAGNOSTICS_DURATION_FIELD", "duration"),
			SeverityField:    utils.GetEnvString("DIAGNOSTICS_SEVERITY_FIELD", "severity"),
			TemperatureField: utils.GetEnvString("DIAGNOSTICS_TEMPERATURE_FIELD", "fever_temp"),
		},
		Events: Events{
			Enabled: utils.GetEnvBool("EVENTS_ENABLED", false),
			Queue:   utils.GetEnvString("EVENTS_RABBITMQ_QUEUE", "symptomix_assessment_events"),
		},
	}
}
