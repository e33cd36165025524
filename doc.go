// Package session provides the client-side session core for role-segmented
// front ends: an injectable session store, persistence adapters for the
// session token, an identity-service client boundary, and route guards.
//
// Session lifecycle:
//   - A Store owns the authentication state machine. Initialize restores a
//     persisted token and resolves the current user; Login, Logout, and
//     RefreshUser mutate state from there. Nothing else may write session
//     state.
//   - Resolutions are sequence-tagged. When calls overlap, only the most
//     recently issued resolution may commit its result, so a logout or a
//     fresh login can never be clobbered by a stale in-flight response.
//
// Route guards:
//   - AuthenticatedGate and AnonymousGate are pure policies over a State
//     snapshot. They either allow rendering, redirect to a role's home path,
//     or report that the session is still resolving. The fibergate middleware
//     adapts both policies to HTTP handlers.
//
// Activity sinks:
//   - ActivitySink is a light-weight audit emitter notified on login, logout,
//     and forced-logout events. Sinks run best-effort (errors are logged) so
//     you can forward to a database or queue without blocking session work.
package session
