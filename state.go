package session

import (
	"fmt"
)

// Phase identifies where the session lifecycle currently stands.
type Phase string

const (
	// PhaseBooting means the very first resolution has not started yet
	PhaseBooting Phase = "booting"
	// PhaseResolving means a user resolution is in flight
	PhaseResolving Phase = "resolving"
	// PhaseAuthenticated means a user record is present
	PhaseAuthenticated Phase = "authenticated"
	// PhaseAnonymous means the session resolved to nobody
	PhaseAnonymous Phase = "anonymous"
)

// State is an immutable snapshot of the session. Token is the sole authority
// for "might be authenticated"; User is the authority for "is authenticated".
// The two may disagree only while a resolution is in flight.
type State struct {
	User         *User  `json:"user,omitempty"`
	Token        string `json:"-"`
	Loading      bool   `json:"loading"`
	Initializing bool   `json:"initializing"`
}

// Phase collapses the snapshot into the lifecycle state machine. No consumer
// may treat the session as resolved before Initializing turns false.
func (s State) Phase() Phase {
	switch {
	case s.Initializing && !s.Loading:
		return PhaseBooting
	case s.Loading:
		return PhaseResolving
	case s.Initializing:
		return PhaseBooting
	case s.User != nil:
		return PhaseAuthenticated
	default:
		return PhaseAnonymous
	}
}

// Authenticated reports whether a user record is present
func (s State) Authenticated() bool {
	return s.User != nil
}

// Role returns the current user's role when authenticated
func (s State) Role() (Role, bool) {
	if s.User == nil {
		return 0, false
	}
	return s.User.Role, true
}

func (s State) String() string {
	user := "<nil>"
	if s.User != nil {
		user = s.User.ID.String()
	}
	return fmt.Sprintf(
		"user=%s token_set=%t loading=%t initializing=%t phase=%s",
		user,
		s.Token != "",
		s.Loading,
		s.Initializing,
		s.Phase(),
	)
}
