// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mission-hub/models"
)

func TestUserQueries_PlaceholdersPerDialect(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		want    string
	}{
		{name: "postgres", dialect: dialectPostgres, want: "SELECT COUNT(*) FROM users WHERE user_uid = $1"},
		{name: "sqlite", dialect: dialectSQLite, want: "SELECT COUNT(*) FROM users WHERE user_uid = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := newUserQueries(tt.dialect).countByUID(5)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{int64(5)}, args)
		})
	}
}

func TestUserQueries_CountAll(t *testing.T) {
	query, args, err := newUserQueries(dialectPostgres).countAll()
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM users", query)
	assert.Empty(t, args)
}

func TestUserQueries_SelectByUID(t *testing.T) {
	query, args, err := newUserQueries(dialectPostgres).selectByUID(3)
	require.NoError(t, err)
	assert.Equal(t, "SELECT user_uid, user_password, teams_belong, missions, teams_own FROM users WHERE user_uid = $1", query)
	assert.Equal(t, []any{int64(3)}, args)
}

func TestUserQueries_Insert(t *testing.T) {
	row, err := newUserRow(models.FixtureUser())
	require.NoError(t, err)

	query, args, err := newUserQueries(dialectPostgres).insert(row)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (user_uid,user_password,teams_belong,missions,teams_own) VALUES ($1,$2,$3,$4,$5)", query)
	assert.Equal(t, []any{
		int64(1),
		"123456",
		`[{"teamUID":1,"score":85,"percentComplete":75}]`,
		"[1]",
		"[1]",
	}, args)
}

func TestUserQueries_Update(t *testing.T) {
	row, err := newUserRow(models.NewUser(2, "pw"))
	require.NoError(t, err)

	query, args, err := newUserQueries(dialectSQLite).update(row)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET user_password = ?, teams_belong = ?, missions = ?, teams_own = ? WHERE user_uid = ?", query)
	assert.Equal(t, []any{"pw", "[]", "[]", "[]", int64(2)}, args)
}

func TestUserQueries_UpdatePostgres(t *testing.T) {
	row, err := newUserRow(models.NewUser(2, "pw"))
	require.NoError(t, err)

	query, args, err := newUserQueries(dialectPostgres).update(row)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET user_password = $1, teams_belong = $2, missions = $3, teams_own = $4 WHERE user_uid = $5", query)
	assert.Len(t, args, 5)
}

func TestUserRow_RoundTrip(t *testing.T) {
	row, err := newUserRow(models.FixtureUser())
	require.NoError(t, err)

	user, err := row.user()
	require.NoError(t, err)
	assert.Equal(t, models.FixtureUser(), user)
}

func TestUserRow_NilListsBecomeEmpty(t *testing.T) {
	row, err := newUserRow(models.User{UserUID: 4, UserPassword: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "[]", row.Missions)

	user, err := row.user()
	require.NoError(t, err)
	assert.NotNil(t, user.TeamsBelong)
	assert.NotNil(t, user.Missions)
	assert.NotNil(t, user.TeamsOwn)
}

func TestUserRow_CorruptColumn(t *testing.T) {
	row := userRow{UserUID: 1, TeamsBelong: "not json", Missions: "[]", TeamsOwn: "[]"}
	_, err := row.user()
	assert.Error(t, err)
}
