package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/models"
)

const maxTxAttempts = 3

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// userRepository is the SQL implementation of [UserRepository] shared by the
// PostgreSQL and SQLite drivers. It works against the "users" table created
// by the embedded migrations.
//
// Creation is serialized in-process so the count+1 identifier is never handed
// out twice; transient driver errors are retried up to [maxTxAttempts] times.
type userRepository struct {
	db         *DB
	queries    userQueries
	createMu   sync.Mutex
	retryDelay time.Duration
	logger     *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating user repository")
	return &userRepository{
		db:         db,
		queries:    newUserQueries(db.dialect),
		retryDelay: 50 * time.Millisecond,
		logger:     logger,
	}
}

// CreateUser checks the claimed identifier, counts the accounts and inserts
// the new one inside a single transaction.
//
// Error handling:
//   - claimed identifier already stored → [ErrUserAlreadyExists].
//   - retryable driver errors and key collisions → transaction retried.
//   - any other driver-level error → wrapped low-level sentinel.
func (r *userRepository) CreateUser(ctx context.Context, claimed models.UID, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.createMu.Lock()
	defer r.createMu.Unlock()

	var created models.User
	err := r.withRetry(ctx, func() error {
		var err error
		created, err = r.createUser(ctx, claimed, user)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrUserAlreadyExists) {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		}
		return models.User{}, err
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Int64("user_uid", created.UserUID).Msg("user created")
	return created, nil
}

func (r *userRepository) createUser(ctx context.Context, claimed models.UID, user models.User) (models.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if claimed.Present && claimed.Value != 0 {
		taken, err := r.count(ctx, tx, func() (string, []any, error) {
			return r.queries.countByUID(claimed.Value)
		})
		if err != nil {
			return models.User{}, err
		}
		if taken > 0 {
			return models.User{}, ErrUserAlreadyExists
		}
	}

	total, err := r.count(ctx, tx, r.queries.countAll)
	if err != nil {
		return models.User{}, err
	}

	user.UserUID = total + 1
	row, err := newUserRow(user)
	if err != nil {
		return models.User{}, err
	}

	query, args, err := r.queries.insert(row)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return withEmptyLists(user), nil
}

// FindUserByUID reads one account.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByUID(ctx context.Context, uid int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := r.findUser(ctx, r.db, uid)
	if err != nil {
		if !errors.Is(err, ErrNoUserWasFound) {
			log.Err(err).Str("func", "*userRepository.FindUserByUID").Int64("user_uid", uid).Msg("error finding user")
		}
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser reads, merges and writes the account inside one transaction.
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if !update.UserUID.Present || update.UserUID.Value == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	var updated models.User
	err := r.withRetry(ctx, func() error {
		var err error
		updated, err = r.updateUser(ctx, update)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNoUserWasFound) {
			log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_uid", update.UserUID.Value).Msg("error updating user")
		}
		return models.User{}, err
	}

	return updated, nil
}

func (r *userRepository) updateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	current, err := r.findUser(ctx, tx, update.UserUID.Value)
	if err != nil {
		return models.User{}, err
	}

	if !update.HasChanges() {
		return current, nil
	}

	updated := update.Apply(current)
	row, err := newUserRow(updated)
	if err != nil {
		return models.User{}, err
	}

	query, args, err := r.queries.update(row)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return withEmptyLists(updated), nil
}

// CountUsers returns the number of rows in the users table.
func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	total, err := r.count(ctx, r.db, r.queries.countAll)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.CountUsers").Msg("error counting users")
		return 0, err
	}

	return total, nil
}

func (r *userRepository) findUser(ctx context.Context, q queryRower, uid int64) (models.User, error) {
	query, args, err := r.queries.selectByUID(uid)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row userRow
	err = q.QueryRowContext(ctx, query, args...).
		Scan(&row.UserUID, &row.UserPassword, &row.TeamsBelong, &row.Missions, &row.TeamsOwn)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return row.user()
}

func (r *userRepository) count(ctx context.Context, q queryRower, build func() (string, []any, error)) (int64, error) {
	query, args, err := build()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = q.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// withRetry runs op again while the driver reports a transient failure or a
// key collision with a concurrent writer.
func (r *userRepository) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}

		switch r.db.errorClassificator.Classify(err) {
		case Retryable, Duplicate:
		default:
			return err
		}

		if attempt == maxTxAttempts {
			break
		}

		r.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying user transaction")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * r.retryDelay):
		}
	}

	return err
}
