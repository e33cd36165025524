package session

// GateAction is the outcome of evaluating a route guard.
type GateAction string

const (
	// GateLoading means the session is not resolved yet; render a loading
	// placeholder and make no routing decision.
	GateLoading GateAction = "loading"
	// GateAllow means the requested screen may render
	GateAllow GateAction = "allow"
	// GateRedirect means the user must be sent to Target instead
	GateRedirect GateAction = "redirect"
)

// GateDecision is what a route guard resolved for the current request.
type GateDecision struct {
	Action GateAction
	Target string
}

func allow() GateDecision {
	return GateDecision{Action: GateAllow}
}

func loading() GateDecision {
	return GateDecision{Action: GateLoading}
}

func redirect(target string) GateDecision {
	return GateDecision{Action: GateRedirect, Target: target}
}

// AuthenticatedGate guards role-restricted screens. While the session is
// still initializing it returns GateLoading so no redirect can flash before
// the session is known. Anonymous users go to the login screen; a user whose
// role is not in the allow-list is routed to their own home path, never to an
// error page.
func AuthenticatedGate(state State, allowed RoleSet, loginPath string) GateDecision {
	if state.Initializing {
		return loading()
	}

	if state.User == nil {
		if loginPath == "" {
			loginPath = DefaultLoginPath
		}
		return redirect(loginPath)
	}

	if !allowed.Contains(state.User.Role) {
		return redirect(HomePathFor(state.User.Role))
	}

	return allow()
}

// AnonymousGate guards screens for signed-out users (login, registration,
// password reset). Authenticated users are routed to their role's home path.
func AnonymousGate(state State) GateDecision {
	if state.Initializing {
		return loading()
	}

	if state.User != nil {
		return redirect(HomePathFor(state.User.Role))
	}

	return allow()
}
