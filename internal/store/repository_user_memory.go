package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/models"
)

// memoryUserRepository keeps accounts in process memory in creation order.
// Contents are lost on restart.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	logger *logger.Logger
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:  make([]models.User, 0),
		logger: logger,
	}
}

func (m *memoryUserRepository) CreateUser(ctx context.Context, claimed models.UID, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(claimed) >= 0 {
		return models.User{}, ErrUserAlreadyExists
	}

	user.UserUID = int64(len(m.users)) + 1
	user = cloneUser(user)
	m.users = append(m.users, user)

	logger.FromContext(ctx).Debug().
		Str("func", "*memoryUserRepository.CreateUser").
		Int64("user_uid", user.UserUID).
		Msg("user created")

	return cloneUser(user), nil
}

func (m *memoryUserRepository) FindUserByUID(ctx context.Context, uid int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(models.NewUID(uid))
	if i < 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return cloneUser(m.users[i]), nil
}

func (m *memoryUserRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(update.UserUID)
	if i < 0 {
		return models.User{}, ErrNoUserWasFound
	}

	m.users[i] = cloneUser(update.Apply(m.users[i]))
	return cloneUser(m.users[i]), nil
}

func (m *memoryUserRepository) CountUsers(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.users)), nil
}

// indexOf must be called with mu held.
func (m *memoryUserRepository) indexOf(uid models.UID) int {
	return slices.IndexFunc(m.users, func(u models.User) bool {
		return uid.Matches(u.UserUID)
	})
}

// cloneUser copies the list fields so callers never share backing arrays
// with the stored value.
func cloneUser(user models.User) models.User {
	user = withEmptyLists(user)
	user.TeamsBelong = slices.Clone(user.TeamsBelong)
	user.Missions = slices.Clone(user.Missions)
	user.TeamsOwn = slices.Clone(user.TeamsOwn)
	return user
}
