package entity

import (
	"time"
)

// User is the operator account as the backend reports it.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	FirstName string    `json:"firstname,omitempty"`
	LastName  string    `json:"lastname,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// DisplayName returns the best human-readable name for the user.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.FirstName != "" || u.LastName != "" {
		if u.LastName == "" {
			return u.FirstName
		}
		if u.FirstName == "" {
			return u.LastName
		}

		return u.FirstName + " " + u.LastName
	}

	return u.Username
}

// Credentials is a login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is a new operator account request.
type Registration struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstname,omitempty"`
	LastName  string `json:"lastname,omitempty"`
}

// AuthResult is the backend's answer to a successful login or registration.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// AuthStatus reports whether the backend enforces authentication.
type AuthStatus struct {
	AuthEnabled bool `json:"authEnabled"`
}

// SessionState is the auth state machine position.
type SessionState string

const (
	SessionUnknown         SessionState = "unknown"
	SessionDisabled        SessionState = "disabled"
	SessionUnauthenticated SessionState = "unauthenticated"
	SessionAuthenticated   SessionState = "authenticated"
)

// SessionInfo is a snapshot of the operator session.
type SessionInfo struct {
	State     SessionState `json:"state"`
	User      *User        `json:"user,omitempty"`
	ExpiresAt *time.Time   `json:"expiresAt,omitempty"`

	// Assumed marks a disabled state inferred from a failed status check.
	// It is re-checked on the next gated request.
	Assumed bool `json:"assumed,omitempty"`
}

// IsPublic reports whether gated routes may be served without a login.
func (s SessionInfo) IsPublic() bool {
	return s.State == SessionDisabled
}
