package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
)

// Storages groups the repositories handed to the service layer together with
// the connections they own.
type Storages struct {
	UserRepository UserRepository

	db    *DB
	mongo *mongo.Client
	redis *redis.Client
}

// NewStorages opens the backend selected by cfg.Driver, applies migrations
// for SQL drivers, wraps persistent backends with the Redis cache when one is
// configured and seeds the fixture user unless cfg.SkipSeed is set.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	var repo UserRepository
	switch cfg.Driver {
	case "", config.DriverMemory:
		repo = NewMemoryUserRepository(log)
	case config.DriverSQLite, config.DriverPostgres:
		db, err := connectSQL(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		s.db = db

		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = s.Close(ctx)
			return nil, err
		}
		repo = NewUserRepository(db, log)
	case config.DriverMongo:
		client, err := NewConnectMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		s.mongo = client
		repo = NewMongoUserRepository(client.Database(cfg.Mongo.Database), log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	if cfg.Cache.RedisAddress != "" {
		if cfg.Driver == "" || cfg.Driver == config.DriverMemory {
			log.Warn().Msg("user cache ignored for the in-memory store")
		} else {
			s.redis = NewRedisClient(cfg.Cache)
			if err := s.redis.Ping(ctx).Err(); err != nil {
				log.Err(err).Str("func", "NewStorages").Msg("error connecting to redis")
				_ = s.Close(ctx)
				return nil, fmt.Errorf("error connecting to redis: %w", err)
			}
			repo = NewCachedUserRepository(repo, NewRedisUserCache(s.redis, cfg.Cache.TTL), log)
		}
	}

	s.UserRepository = repo

	if !cfg.SkipSeed {
		if err := Seed(ctx, repo, log); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
	}

	return s, nil
}

func connectSQL(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if cfg.Driver == config.DriverPostgres {
		return NewConnectPostgres(ctx, cfg.DB, log)
	}
	return NewConnectSQLite(ctx, cfg.DB, log)
}

// Close releases every connection opened by [NewStorages].
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.mongo != nil {
		errs = append(errs, s.mongo.Disconnect(ctx))
	}
	return errors.Join(errs...)
}
