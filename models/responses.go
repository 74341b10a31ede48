package models

// AccountResponse is returned by signup, signin and update.
//
// Failures are reported in Error and Message, and UserUID is then null.
// Signup and signin answer with HTTP 200 even on failure.
type AccountResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	UserUID *int64 `json:"userUID"`
}

// NewAccountSuccess builds a successful [AccountResponse] for uid.
func NewAccountSuccess(message string, uid int64) AccountResponse {
	return AccountResponse{Message: message, UserUID: &uid}
}

// NewAccountFailure builds a failed [AccountResponse]; the reason is used for
// both the error and the message fields.
func NewAccountFailure(reason string) AccountResponse {
	return AccountResponse{Error: reason, Message: reason}
}

// UserView is the public projection of a [User] returned by the get endpoint.
// The password is deliberately absent.
type UserView struct {
	UserUID     int64            `json:"userUID"`
	TeamsBelong []TeamMembership `json:"teamsBelong"`
	Score       float64          `json:"score"`
	Missions    []int64          `json:"missions"`
	TeamsOwn    []int64          `json:"teamsOwn"`
}

// NewUserView projects user, rendering missing lists as empty JSON arrays.
func NewUserView(user User) UserView {
	view := UserView{
		UserUID:     user.UserUID,
		TeamsBelong: user.TeamsBelong,
		Score:       user.Score(),
		Missions:    user.Missions,
		TeamsOwn:    user.TeamsOwn,
	}
	if view.TeamsBelong == nil {
		view.TeamsBelong = []TeamMembership{}
	}
	if view.Missions == nil {
		view.Missions = []int64{}
	}
	if view.TeamsOwn == nil {
		view.TeamsOwn = []int64{}
	}
	return view
}

// UserEnvelope wraps a [UserView] as {"user": {...}}.
type UserEnvelope struct {
	User UserView `json:"user"`
}

// ErrorResponse is the body of 4xx/5xx answers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
