package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/models"
)

// mongoUserRepository stores one document per account in the "users"
// collection, keyed by the account identifier in _id.
type mongoUserRepository struct {
	users    *mongo.Collection
	createMu sync.Mutex
	logger   *logger.Logger
}

// NewMongoUserRepository constructs a [UserRepository] on top of db.
func NewMongoUserRepository(db *mongo.Database, logger *logger.Logger) UserRepository {
	logger.Debug().Str("database", db.Name()).Msg("creating mongo user repository")
	return &mongoUserRepository{
		users:  db.Collection(usersCollection),
		logger: logger,
	}
}

func (m *mongoUserRepository) CreateUser(ctx context.Context, claimed models.UID, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	m.createMu.Lock()
	defer m.createMu.Unlock()

	if claimed.Present && claimed.Value != 0 {
		taken, err := m.users.CountDocuments(ctx, bson.D{{Key: "_id", Value: claimed.Value}})
		if err != nil {
			log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("lookup of claimed identifier failed")
			return models.User{}, fmt.Errorf("lookup of claimed identifier failed: %w", err)
		}
		if taken > 0 {
			return models.User{}, ErrUserAlreadyExists
		}
	}

	total, err := m.users.CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("counting users failed")
		return models.User{}, fmt.Errorf("counting users failed: %w", err)
	}

	user.UserUID = total + 1
	user = withEmptyLists(user)
	if _, err = m.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Int64("user_uid", user.UserUID).Msg("assigned identifier collides")
			return models.User{}, fmt.Errorf("%w: %d", ErrUIDAssignmentConflict, user.UserUID)
		}
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("insert failed")
		return models.User{}, fmt.Errorf("insert failed: %w", err)
	}

	return user, nil
}

func (m *mongoUserRepository) FindUserByUID(ctx context.Context, uid int64) (models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.D{{Key: "_id", Value: uid}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.FindUserByUID").Int64("user_uid", uid).Msg("find failed")
		return models.User{}, fmt.Errorf("find failed: %w", err)
	}

	return withEmptyLists(user), nil
}

func (m *mongoUserRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	if !update.UserUID.Present || update.UserUID.Value == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	current, err := m.FindUserByUID(ctx, update.UserUID.Value)
	if err != nil {
		return models.User{}, err
	}

	if !update.HasChanges() {
		return current, nil
	}

	updated := withEmptyLists(update.Apply(current))
	result, err := m.users.ReplaceOne(ctx, bson.D{{Key: "_id", Value: updated.UserUID}}, updated)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.UpdateUser").Int64("user_uid", updated.UserUID).Msg("replace failed")
		return models.User{}, fmt.Errorf("replace failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return updated, nil
}

func (m *mongoUserRepository) CountUsers(ctx context.Context) (int64, error) {
	total, err := m.users.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("counting users failed: %w", err)
	}

	return total, nil
}
