package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/models"
)

// cachedUserRepository is a read-through cache in front of another
// [UserRepository]. Cache failures are logged and never fail a request.
type cachedUserRepository struct {
	next   UserRepository
	cache  UserCache
	logger *logger.Logger
}

// NewCachedUserRepository decorates next with cache.
func NewCachedUserRepository(next UserRepository, cache UserCache, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("enabling user cache")
	return &cachedUserRepository{next: next, cache: cache, logger: logger}
}

func userCacheKey(uid int64) string {
	return "user:" + strconv.FormatInt(uid, 10)
}

func (c *cachedUserRepository) CreateUser(ctx context.Context, claimed models.UID, user models.User) (models.User, error) {
	return c.next.CreateUser(ctx, claimed, user)
}

func (c *cachedUserRepository) FindUserByUID(ctx context.Context, uid int64) (models.User, error) {
	log := logger.FromContext(ctx)
	key := userCacheKey(uid)

	data, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var user models.User
		if err = json.Unmarshal(data, &user); err == nil {
			return user, nil
		}
		log.Warn().Err(err).Str("key", key).Msg("dropping undecodable cache entry")
	case !errors.Is(err, ErrCacheMiss):
		log.Warn().Err(err).Str("key", key).Msg("user cache unavailable")
	}

	user, err := c.next.FindUserByUID(ctx, uid)
	if err != nil {
		return models.User{}, err
	}

	if data, err = json.Marshal(user); err == nil {
		err = c.cache.Set(ctx, key, data)
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("error caching user")
	}

	return user, nil
}

func (c *cachedUserRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	user, err := c.next.UpdateUser(ctx, update)
	if err != nil {
		return models.User{}, err
	}

	if err = c.cache.Delete(ctx, userCacheKey(user.UserUID)); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_uid", user.UserUID).Msg("error invalidating cached user")
	}

	return user, nil
}

func (c *cachedUserRepository) CountUsers(ctx context.Context) (int64, error) {
	return c.next.CountUsers(ctx)
}
