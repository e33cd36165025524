package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	session "github.com/edukit/go-session"
)

func TestStatePhase(t *testing.T) {
	tests := []struct {
		name  string
		state session.State
		phase session.Phase
	}{
		{
			name:  "process start",
			state: session.State{Initializing: true},
			phase: session.PhaseBooting,
		},
		{
			name:  "first resolution in flight",
			state: session.State{Initializing: true, Loading: true, Token: "abc"},
			phase: session.PhaseResolving,
		},
		{
			name:  "refresh in flight",
			state: session.State{Loading: true, Token: "abc", User: testUser(session.RoleStudent)},
			phase: session.PhaseResolving,
		},
		{
			name:  "authenticated",
			state: session.State{Token: "abc", User: testUser(session.RoleStudent)},
			phase: session.PhaseAuthenticated,
		},
		{
			name:  "anonymous",
			state: session.State{},
			phase: session.PhaseAnonymous,
		},
		{
			name:  "token without user is not authenticated",
			state: session.State{Token: "abc"},
			phase: session.PhaseAnonymous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.phase, tt.state.Phase())
		})
	}
}

func TestStateAccessors(t *testing.T) {
	user := testUser(session.RoleInstructor)
	state := session.State{User: user, Token: "abc"}

	assert.True(t, state.Authenticated())

	role, ok := state.Role()
	assert.True(t, ok)
	assert.Equal(t, session.RoleInstructor, role)

	_, ok = session.State{}.Role()
	assert.False(t, ok)
	assert.False(t, session.State{}.Authenticated())
}

func TestStateString(t *testing.T) {
	user := testUser(session.RoleStudent)
	str := session.State{User: user, Token: "abc"}.String()

	assert.Contains(t, str, user.ID.String())
	assert.Contains(t, str, "token_set=true")
	assert.NotContains(t, str, "abc", "the opaque token never leaks into logs")
}
