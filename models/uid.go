package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// UID is a user identifier as received from clients.
//
// Clients send it either as a JSON number (1) or as a string ("1"); both
// forms address the same user. Present is false when the field was absent or
// null. A value that is not an integer decodes to Present with Value 0, which
// never matches a stored user.
type UID struct {
	Value   int64
	Present bool
}

// NewUID returns a present UID holding v.
func NewUID(v int64) UID {
	return UID{Value: v, Present: true}
}

// ParseUID converts a textual identifier (for example a query parameter).
// An empty string yields an absent UID.
func ParseUID(s string) UID {
	s = strings.TrimSpace(s)
	if s == "" {
		return UID{}
	}
	return UID{Value: parseIntegral(s), Present: true}
}

// Matches reports whether the identifier addresses the user with the given uid.
func (u UID) Matches(uid int64) bool {
	return u.Present && u.Value != 0 && u.Value == uid
}

// UnmarshalJSON implements [json.Unmarshaler].
func (u *UID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*u = UID{}
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*u = UID{Value: parseIntegral(strings.TrimSpace(s)), Present: true}
		return nil
	}

	*u = UID{Value: parseIntegral(string(b)), Present: true}
	return nil
}

// MarshalJSON implements [json.Marshaler]. Absent identifiers encode as null.
func (u UID) MarshalJSON() ([]byte, error) {
	if !u.Present {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(u.Value, 10)), nil
}

func parseIntegral(s string) int64 {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}

	// 1.0 and 1e0 address user 1 as well
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}
