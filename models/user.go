package models

// User is a mission hub account.
//
// The password is kept exactly as the client sent it: accounts here are test
// fixtures for front-end work and are compared by plain equality on signin.
type User struct {
	// UserUID is the server-assigned sequential identifier (1, 2, 3, ...).
	UserUID int64 `json:"userUID" bson:"_id"`

	// UserPassword is the plaintext password supplied at signup or update.
	// It is never exposed through [UserView].
	UserPassword string `json:"userPassword" bson:"user_password"`

	// TeamsBelong lists the teams the user is a member of together with the
	// user's progress in each of them.
	TeamsBelong []TeamMembership `json:"teamsBelong" bson:"teams_belong"`

	// Missions lists identifiers of missions assigned to the user.
	Missions []int64 `json:"missions" bson:"missions"`

	// TeamsOwn lists identifiers of teams the user created.
	TeamsOwn []int64 `json:"teamsOwn" bson:"teams_own"`
}

// TeamMembership is a reference to a team the user belongs to.
// No separate team entity exists; the reference carries the per-user figures.
type TeamMembership struct {
	TeamUID         int64   `json:"teamUID" bson:"team_uid"`
	Score           float64 `json:"score" bson:"score"`
	PercentComplete float64 `json:"percentComplete" bson:"percent_complete"`
}

// NewUser returns a freshly registered user with empty team and mission lists.
func NewUser(uid int64, password string) User {
	return User{
		UserUID:      uid,
		UserPassword: password,
		TeamsBelong:  []TeamMembership{},
		Missions:     []int64{},
		TeamsOwn:     []int64{},
	}
}

// Score returns the score of the first team the user belongs to, or 0 when
// the user belongs to no team.
func (u User) Score() float64 {
	if len(u.TeamsBelong) == 0 {
		return 0
	}
	return u.TeamsBelong[0].Score
}

// FixtureUser returns the account every fresh store starts with.
func FixtureUser() User {
	return User{
		UserUID:      1,
		UserPassword: "123456",
		TeamsBelong: []TeamMembership{
			{TeamUID: 1, Score: 85, PercentComplete: 75},
		},
		Missions: []int64{1},
		TeamsOwn: []int64{1},
	}
}
