package models

import "encoding/json"

// Credentials is the body of the signup and signin requests.
type Credentials struct {
	UserUID      UID    `json:"userUID"`
	UserPassword string `json:"userPassword"`
}

// UnmarshalJSON implements [json.Unmarshaler]. Members are decoded one by
// one, so a member of the wrong type is dropped without losing the others.
func (c *Credentials) UnmarshalJSON(b []byte) error {
	fields, err := objectFields(b)
	if err != nil {
		return err
	}

	*c = Credentials{
		UserUID:      decodeField[UID](fields, "userUID"),
		UserPassword: decodeField[string](fields, "userPassword"),
	}
	return nil
}

// UserUpdate is the body of the update request.
//
// Only provided fields are applied: an empty UserPassword and nil slices
// (field absent or null) keep the stored value, while any provided slice,
// including an empty one, replaces it.
type UserUpdate struct {
	UserUID      UID              `json:"userUID"`
	UserPassword string           `json:"userPassword,omitempty"`
	TeamsBelong  []TeamMembership `json:"teamsBelong,omitempty"`
	Missions     []int64          `json:"missions,omitempty"`
	TeamsOwn     []int64          `json:"teamsOwn,omitempty"`
}

// UnmarshalJSON implements [json.Unmarshaler]. A member of the wrong type,
// such as a mission list holding strings, is treated as absent.
func (u *UserUpdate) UnmarshalJSON(b []byte) error {
	fields, err := objectFields(b)
	if err != nil {
		return err
	}

	*u = UserUpdate{
		UserUID:      decodeField[UID](fields, "userUID"),
		UserPassword: decodeField[string](fields, "userPassword"),
		TeamsBelong:  decodeField[[]TeamMembership](fields, "teamsBelong"),
		Missions:     decodeField[[]int64](fields, "missions"),
		TeamsOwn:     decodeField[[]int64](fields, "teamsOwn"),
	}
	return nil
}

// HasChanges reports whether the update carries at least one field to apply.
func (u UserUpdate) HasChanges() bool {
	return u.UserPassword != "" || u.TeamsBelong != nil || u.Missions != nil || u.TeamsOwn != nil
}

// Apply returns a copy of user with the provided fields overwritten.
func (u UserUpdate) Apply(user User) User {
	if u.UserPassword != "" {
		user.UserPassword = u.UserPassword
	}
	if u.TeamsBelong != nil {
		user.TeamsBelong = append([]TeamMembership{}, u.TeamsBelong...)
	}
	if u.Missions != nil {
		user.Missions = append([]int64{}, u.Missions...)
	}
	if u.TeamsOwn != nil {
		user.TeamsOwn = append([]int64{}, u.TeamsOwn...)
	}
	return user
}

func objectFields(b []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// decodeField decodes the named member of an object. A missing member, or
// one whose value does not fit T, yields the zero value.
func decodeField[T any](fields map[string]json.RawMessage, name string) T {
	var v T
	raw, ok := fields[name]
	if !ok {
		return v
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero
	}
	return v
}
