package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mission-hub/models"
)

const usersTable = "users"

var userColumns = []string{"user_uid", "user_password", "teams_belong", "missions", "teams_own"}

// userQueries builds the statements of the user repository with the
// placeholder format of the target dialect.
type userQueries struct {
	sb sq.StatementBuilderType
}

func newUserQueries(dialect string) userQueries {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == dialectPostgres {
		format = sq.Dollar
	}

	return userQueries{sb: sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q userQueries) countAll() (string, []any, error) {
	return q.sb.Select("COUNT(*)").From(usersTable).ToSql()
}

func (q userQueries) countByUID(uid int64) (string, []any, error) {
	return q.sb.Select("COUNT(*)").From(usersTable).Where(sq.Eq{"user_uid": uid}).ToSql()
}

func (q userQueries) selectByUID(uid int64) (string, []any, error) {
	return q.sb.Select(userColumns...).From(usersTable).Where(sq.Eq{"user_uid": uid}).ToSql()
}

func (q userQueries) insert(row userRow) (string, []any, error) {
	return q.sb.Insert(usersTable).
		Columns(userColumns...).
		Values(row.UserUID, row.UserPassword, row.TeamsBelong, row.Missions, row.TeamsOwn).
		ToSql()
}

func (q userQueries) update(row userRow) (string, []any, error) {
	return q.sb.Update(usersTable).
		Set("user_password", row.UserPassword).
		Set("teams_belong", row.TeamsBelong).
		Set("missions", row.Missions).
		Set("teams_own", row.TeamsOwn).
		Where(sq.Eq{"user_uid": row.UserUID}).
		ToSql()
}

// userRow is the relational shape of [models.User]: list fields are kept as
// JSON text so the same schema works on PostgreSQL and SQLite.
type userRow struct {
	UserUID      int64
	UserPassword string
	TeamsBelong  string
	Missions     string
	TeamsOwn     string
}

func newUserRow(user models.User) (userRow, error) {
	user = withEmptyLists(user)

	teams, err := json.Marshal(user.TeamsBelong)
	if err != nil {
		return userRow{}, fmt.Errorf("error encoding teams: %w", err)
	}
	missions, err := json.Marshal(user.Missions)
	if err != nil {
		return userRow{}, fmt.Errorf("error encoding missions: %w", err)
	}
	owned, err := json.Marshal(user.TeamsOwn)
	if err != nil {
		return userRow{}, fmt.Errorf("error encoding owned teams: %w", err)
	}

	return userRow{
		UserUID:      user.UserUID,
		UserPassword: user.UserPassword,
		TeamsBelong:  string(teams),
		Missions:     string(missions),
		TeamsOwn:     string(owned),
	}, nil
}

func (r userRow) user() (models.User, error) {
	user := models.User{
		UserUID:      r.UserUID,
		UserPassword: r.UserPassword,
	}

	if err := json.Unmarshal([]byte(r.TeamsBelong), &user.TeamsBelong); err != nil {
		return models.User{}, fmt.Errorf("error decoding teams of user %d: %w", r.UserUID, err)
	}
	if err := json.Unmarshal([]byte(r.Missions), &user.Missions); err != nil {
		return models.User{}, fmt.Errorf("error decoding missions of user %d: %w", r.UserUID, err)
	}
	if err := json.Unmarshal([]byte(r.TeamsOwn), &user.TeamsOwn); err != nil {
		return models.User{}, fmt.Errorf("error decoding owned teams of user %d: %w", r.UserUID, err)
	}

	return withEmptyLists(user), nil
}

// withEmptyLists replaces nil lists with empty ones so they encode as [].
func withEmptyLists(user models.User) models.User {
	if user.TeamsBelong == nil {
		user.TeamsBelong = []models.TeamMembership{}
	}
	if user.Missions == nil {
		user.Missions = []int64{}
	}
	if user.TeamsOwn == nil {
		user.TeamsOwn = []int64{}
	}
	return user
}
