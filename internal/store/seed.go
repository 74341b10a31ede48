package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/models"
)

// Seed inserts [models.FixtureUser] when repo is empty. It is a no-op on a
// store that already holds accounts, so restarts never duplicate the fixture.
func Seed(ctx context.Context, repo UserRepository, log *logger.Logger) error {
	total, err := repo.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("error counting users before seeding: %w", err)
	}
	if total > 0 {
		log.Debug().Int64("users", total).Msg("store already populated, skipping seed")
		return nil
	}

	user, err := repo.CreateUser(ctx, models.UID{}, models.FixtureUser())
	if err != nil {
		return fmt.Errorf("error seeding fixture user: %w", err)
	}

	log.Info().Int64("user_uid", user.UserUID).Msg("seeded fixture user")
	return nil
}
