package config

import (
	"context"
	"database/sql"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries everything main wires together. Drivers that the
// configured backends do not need stay nil.
type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	PostgresDB     *sql.DB
	Redis          *redis.Client
	Minio          *minio.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	RequestLogger  *logrus.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}

// Shutdown closes every opened driver connection.
func (b *Bootstrap) Shutdown(ctx context.Context) {
	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			b.Logger.Error("Failed to close rabbitMQ connection", zap.Error(err))
		}
	}
	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			b.Logger.Error("Failed to close redis client", zap.Error(err))
		}
	}
	if b.PostgresDB != nil {
		if err := b.PostgresDB.Close(); err != nil {
			b.Logger.Error("Failed to close postgres database", zap.Error(err))
		}
	}
	if b.MongoDB != nil {
		if err := b.MongoDB.Disconnect(ctx); err != nil {
			b.Logger.Error("Failed to disconnect mongo database", zap.Error(err))
		}
	}
	b.Logger.Sync()
}
