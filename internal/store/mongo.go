package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
)

const usersCollection = "users"

// NewConnectMongo connects to MongoDB and pings the primary.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongo")
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongo (ping)")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging mongo: %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Database).Msg("connected to mongo successfully")

	return client, nil
}
