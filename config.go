package sessionauth

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
)

// Mode selects how a scope's credential travels.
type Mode string

const (
	// ModeCookie stores the token in a cookie the server sets and clears.
	ModeCookie Mode = "cookie"
	// ModeBearer expects the client to send the token in the Authorization
	// header; the server never writes a credential back.
	ModeBearer Mode = "bearer"
)

// Configuration defaults. DefaultSalt exists so the package works out of the
// box; production deployments must override it, and NewScope warns when they
// have not.
const (
	DefaultAttributeName = "_session_auth_user"
	DefaultCookieName    = "QUART_AUTH"
	DefaultCookiePath    = "/"
	DefaultSameSite      = "Lax"
	DefaultSalt          = "session auth salt"
	DefaultDuration      = 365 * 24 * time.Hour
)

// Config holds one scope's settings. Start from DefaultConfig and override
// fields; a zero Config fails validation. Config is read-only once a Scope is
// built: scopes never mutate it and it must not change for the process's
// lifetime.
type Config struct {
	// SecretKey signs every token the scope mints. Required.
	SecretKey string
	// Salt namespaces the signing key so concurrent scopes sharing
	// SecretKey cannot verify each other's tokens.
	Salt string
	// AttributeName keys the memoized user in the request Locals bag and
	// must be unique per registered scope.
	AttributeName string

	CookieName     string
	CookieDomain   string
	CookiePath     string
	CookieHTTPOnly bool
	// CookieSameSite is "Lax", "Strict", or "None".
	CookieSameSite string
	CookieSecure   bool

	// Duration bounds token age at resolution and is the max age of
	// permanent cookies.
	Duration time.Duration

	Mode Mode

	// Singleton marks the scope that feeds Registry.CurrentUser when
	// several scopes are registered. At most one per registry.
	Singleton bool
}

// DefaultConfig returns the stock configuration: cookie mode, HTTP-only
// secure Lax cookie named QUART_AUTH, one-year duration, singleton.
func DefaultConfig(secretKey string) Config {
	return Config{
		SecretKey:      secretKey,
		Salt:           DefaultSalt,
		AttributeName:  DefaultAttributeName,
		CookieName:     DefaultCookieName,
		CookiePath:     DefaultCookiePath,
		CookieHTTPOnly: true,
		CookieSameSite: DefaultSameSite,
		CookieSecure:   true,
		Duration:       DefaultDuration,
		Mode:           ModeCookie,
		Singleton:      true,
	}
}

// Validate checks the fields a scope cannot function without.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.SecretKey, validation.Required),
		validation.Field(&c.Salt, validation.Required),
		validation.Field(&c.AttributeName, validation.Required),
		validation.Field(&c.CookieName, validation.Required),
		validation.Field(&c.Mode, validation.Required, validation.In(ModeCookie, ModeBearer)),
		validation.Field(&c.CookieSameSite, validation.In("Lax", "Strict", "None")),
		validation.Field(&c.Duration, validation.Min(time.Duration(0))),
	)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid scope configuration")
	}
	return nil
}

// withDefaults fills unset optional fields so a Config built from a literal
// still gets the stock names and duration. Boolean cookie flags are taken
// as-is; use DefaultConfig to start from the secure defaults.
func (c Config) withDefaults() Config {
	if c.AttributeName == "" {
		c.AttributeName = DefaultAttributeName
	}
	if c.CookieName == "" {
		c.CookieName = DefaultCookieName
	}
	if c.CookiePath == "" {
		c.CookiePath = DefaultCookiePath
	}
	if c.CookieSameSite == "" {
		c.CookieSameSite = DefaultSameSite
	}
	if c.Salt == "" {
		c.Salt = DefaultSalt
	}
	if c.Duration == 0 {
		c.Duration = DefaultDuration
	}
	if c.Mode == "" {
		c.Mode = ModeCookie
	}
	return c
}
