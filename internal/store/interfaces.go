package store

import (
	"context"

	"github.com/MKhiriev/go-mission-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists mission hub accounts.
//
// Every implementation assigns identifiers sequentially: a new user gets the
// current number of users plus one, decided atomically with the insert.
type UserRepository interface {
	// CreateUser stores user under a freshly assigned identifier. When claimed
	// matches an existing account [ErrUserAlreadyExists] is returned and
	// nothing is written.
	CreateUser(ctx context.Context, claimed models.UID, user models.User) (models.User, error)

	// FindUserByUID returns [ErrNoUserWasFound] when no account has uid.
	FindUserByUID(ctx context.Context, uid int64) (models.User, error)

	// UpdateUser applies update to the account it names and returns the
	// stored result, or [ErrNoUserWasFound].
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// CountUsers returns the number of stored accounts.
	CountUsers(ctx context.Context) (int64, error)
}

// UserCache is a key-value cache of serialized users used by the
// read-through decorator.
type UserCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
