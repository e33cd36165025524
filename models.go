package session

import (
	"github.com/google/uuid"
)

// User is the identity record resolved by the identity service. Apart from
// Role it is opaque to the session core; the remaining fields exist for
// display only and pass through untouched.
type User struct {
	ID        uuid.UUID      `json:"id,omitempty"`
	Role      Role           `json:"role"`
	FirstName string         `json:"first_name,omitempty"`
	LastName  string         `json:"last_name,omitempty"`
	Username  string         `json:"username,omitempty"`
	Email     string         `json:"email,omitempty"`
	AvatarURL string         `json:"avatar_url,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// AddMetadata will append information to a metadata attribute
func (u *User) AddMetadata(key string, val any) *User {
	if u.Metadata == nil {
		u.Metadata = make(map[string]any)
	}
	u.Metadata[key] = val
	return u
}

// FullName joins first and last name for display
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// HomePath resolves the user's home screen from the static redirect table.
func (u *User) HomePath() string {
	return HomePathFor(u.Role)
}
