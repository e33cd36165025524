// Package fibergate adapts the session route guards to fiber handlers.
package fibergate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-print"

	session "github.com/edukit/go-session"
)

// StateProvider is the read-only view of the session store the gates need.
type StateProvider interface {
	State() session.State
}

// Config customizes gate behavior. Zero values fall back to sane defaults.
type Config struct {
	// LoginPath is where anonymous users are sent from guarded screens.
	LoginPath string
	// LoadingHandler renders the placeholder while the session is still
	// initializing. The default replies 503 with a Retry-After hint.
	LoadingHandler fiber.Handler
	// Logger receives gate decisions at debug level.
	Logger session.Logger
}

func (c Config) withDefaults() Config {
	if c.LoginPath == "" {
		c.LoginPath = session.DefaultLoginPath
	}
	if c.LoadingHandler == nil {
		c.LoadingHandler = defaultLoadingHandler
	}
	return c
}

func defaultLoadingHandler(c *fiber.Ctx) error {
	c.Set(fiber.HeaderRetryAfter, "1")
	return c.SendStatus(fiber.StatusServiceUnavailable)
}

// Protected guards an authenticated-area route. Only the listed roles may
// render it; everyone else is redirected per the gate policy.
func Protected(store StateProvider, cfg Config, allowed ...session.Role) fiber.Handler {
	cfg = cfg.withDefaults()
	roles := session.Roles(allowed...)

	return func(c *fiber.Ctx) error {
		decision := session.AuthenticatedGate(store.State(), roles, cfg.LoginPath)
		return apply(c, cfg, decision)
	}
}

// Anonymous guards a signed-out-area route (login, registration, password
// reset). Authenticated users are redirected to their role's home path.
func Anonymous(store StateProvider, cfg Config) fiber.Handler {
	cfg = cfg.withDefaults()

	return func(c *fiber.Ctx) error {
		decision := session.AnonymousGate(store.State())
		return apply(c, cfg, decision)
	}
}

func apply(c *fiber.Ctx, cfg Config, decision session.GateDecision) error {
	switch decision.Action {
	case session.GateAllow:
		return c.Next()
	case session.GateLoading:
		return cfg.LoadingHandler(c)
	default:
		if cfg.Logger != nil {
			cfg.Logger.Debug(
				"gate redirect",
				"detail", print.MaybePrettyJSON(map[string]any{
					"from": c.OriginalURL(),
					"to":   decision.Target,
				}),
			)
		}
		return c.Redirect(decision.Target, redirectStatus(c))
	}
}

// GET redirects use 302 so the browser replays the request as a GET; every
// other method gets 303.
func redirectStatus(c *fiber.Ctx) int {
	if c.Method() == fiber.MethodGet {
		return fiber.StatusFound
	}
	return fiber.StatusSeeOther
}
