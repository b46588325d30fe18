package sessionauth

import (
	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to the rich errors so hosts can map them without
// string-matching messages.
const (
	TextCodeUnauthorized      = "UNAUTHORIZED"
	TextCodeUnauthorizedBasic = "UNAUTHORIZED_BASIC_AUTH"
	TextCodeTokenInvalid      = "AUTH_TOKEN_INVALID"
	TextCodeTokenExpired      = "AUTH_TOKEN_EXPIRED"
	TextCodeNoRequestContext  = "NO_REQUEST_CONTEXT"
)

// ErrUnauthorized is returned by LoginRequired when the resolved user is
// anonymous. It carries no challenge; redirecting or rendering is the host
// error handler's concern.
var ErrUnauthorized = goerrors.New("authentication required", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode(TextCodeUnauthorized)

// ErrUnauthorizedBasicAuth is returned by BasicAuthRequired. Unlike
// ErrUnauthorized it instructs the client to retry with Basic credentials;
// the guard sets the WWW-Authenticate challenge header before returning it.
var ErrUnauthorizedBasicAuth = goerrors.New("basic authentication required", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode(TextCodeUnauthorizedBasic).
	WithMetadata(map[string]any{"www_authenticate": "Basic"})

// ErrTokenInvalid reports a signature mismatch: tampering, a different
// secret or salt, or malformed input. Resolution treats it the same as
// ErrTokenExpired (anonymous); it is exported for out-of-band LoadToken use.
var ErrTokenInvalid = goerrors.New("auth token signature is invalid", goerrors.CategoryAuth).
	WithTextCode(TextCodeTokenInvalid)

// ErrTokenExpired reports a token whose issue time plus the max age has
// elapsed.
var ErrTokenExpired = goerrors.New("auth token has expired", goerrors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired)

// ErrNoRequestContext is returned when a session mutation is attempted with
// no active request or connection. It indicates a host integration bug, not
// a runtime condition to retry.
var ErrNoRequestContext = goerrors.New("no active request or connection", goerrors.CategoryOperation).
	WithTextCode(TextCodeNoRequestContext)

// IsUnauthorizedError reports whether err is one of the guard rejections.
func IsUnauthorizedError(err error) bool {
	return goerrors.Is(err, ErrUnauthorized) || goerrors.Is(err, ErrUnauthorizedBasicAuth)
}
