// Package sessionauth provides secure cookie and bearer-token session
// authentication for go-router based applications.
//
// All session state lives inside a signed, tamper-evident token; there is no
// server-side session table. A Scope owns one authentication track (cookie
// name, salt, transport mode) and resolves the current user lazily, once per
// request, caching it in the request's Locals bag. Handlers mutate the session
// through LoginUser, LogoutUser, and RenewLogin; the scope middleware
// reconciles the pending action into a Set-Cookie directive after the handler
// returns.
//
// Multiple scopes (for example a staff track and an admin track) can run in
// one process through a Registry, which warns when two scopes share an
// attribute name, cookie name, or salt, and exposes the singleton scope's
// user via CurrentUser.
//
// Guards:
//   - Scope.LoginRequired rejects anonymous requests with ErrUnauthorized
//     before the handler runs.
//   - BasicAuthRequired checks static HTTP Basic credentials with a
//     constant-time comparison, independent of the token system.
package sessionauth
