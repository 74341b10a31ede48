package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/store"
	"github.com/MKhiriev/go-mission-hub/models"
)

type accountService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewAccountService(userRepository store.UserRepository, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Signup stores a new account holding only the password; the team and
// mission lists start empty.
func (a *accountService) Signup(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.NewUser(0, credentials.UserPassword)

	created, err := a.userRepository.CreateUser(ctx, credentials.UserUID, user)
	if err != nil {
		log.Err(err).
			Str("func", "*accountService.Signup").
			Any("claimed_uid", credentials.UserUID).
			Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_uid", created.UserUID).Msg("user signed up")
	return created, nil
}

// Signin compares the plaintext password of the addressed account.
func (a *accountService) Signin(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if !credentials.UserUID.Present || credentials.UserUID.Value == 0 {
		return models.User{}, ErrWrongCredentials
	}

	found, err := a.userRepository.FindUserByUID(ctx, credentials.UserUID.Value)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.Signin").Msg("user search by uid failed")
		return models.User{}, fmt.Errorf("user search by uid failed: %w", err)
	}

	if found.UserPassword != credentials.UserPassword {
		log.Debug().Int64("user_uid", found.UserUID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return found, nil
}

func (a *accountService) GetUser(ctx context.Context, uid models.UID) (models.User, error) {
	if !uid.Present || uid.Value == 0 {
		return models.User{}, store.ErrNoUserWasFound
	}

	found, err := a.userRepository.FindUserByUID(ctx, uid.Value)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by uid failed: %w", err)
	}

	return found, nil
}

// UpdateUser merges the provided fields into the addressed account.
func (a *accountService) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if !update.UserUID.Present || update.UserUID.Value == 0 {
		return models.User{}, store.ErrNoUserWasFound
	}

	updated, err := a.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).
			Str("func", "*accountService.UpdateUser").
			Int64("user_uid", update.UserUID.Value).
			Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}
