package sessionauth

import (
	"crypto/sha512"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

// TokenSerializer turns an auth id into a signed, URL-safe token and back.
// Implementations must guarantee that LoadToken either recovers exactly the
// auth id that was encoded or fails; it never substitutes another identity.
type TokenSerializer interface {
	DumpToken(authID string) (string, error)
	// LoadToken verifies token and returns the embedded auth id. A maxAge
	// greater than zero rejects tokens whose issue time is older than maxAge
	// with ErrTokenExpired; any signature or format problem fails with
	// ErrTokenInvalid.
	LoadToken(token string, maxAge time.Duration) (string, error)
}

var _ TokenSerializer = &SignedSerializer{}

// SignedSerializer is the default TokenSerializer: a compact HS512 JWS
// carrying the auth id as subject plus an issue timestamp. The signing key is
// derived from the secret and salt with HKDF-SHA512, so two scopes sharing a
// process secret still mint mutually unverifiable tokens.
type SignedSerializer struct {
	key    []byte
	now    func() time.Time
	logger Logger
}

// NewSignedSerializer derives the scope signing key from secret and salt.
func NewSignedSerializer(secret, salt []byte) *SignedSerializer {
	return &SignedSerializer{
		key:    deriveSigningKey(secret, salt),
		now:    time.Now,
		logger: defLogger{},
	}
}

// WithTimeFunc overrides the clock used for issue timestamps and age checks.
func (s *SignedSerializer) WithTimeFunc(now func() time.Time) *SignedSerializer {
	s.now = now
	return s
}

func (s *SignedSerializer) WithLogger(logger Logger) *SignedSerializer {
	s.logger = logger
	return s
}

// DumpToken signs authID into a fresh token. Tokens are not deterministic:
// each carries its issue time and a unique jti.
func (s *SignedSerializer) DumpToken(authID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  authID,
		IssuedAt: jwt.NewNumericDate(s.now()),
		ID:       uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to sign auth token")
	}

	return signed, nil
}

// LoadToken verifies the signature and, when maxAge is positive, the token
// age. Expiry is checked against the embedded issue time, not an exp claim,
// so the verification window is the caller's choice at decode time.
func (s *SignedSerializer) LoadToken(token string, maxAge time.Duration) (string, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return "", goerrors.Wrap(err, ErrTokenInvalid.Category, ErrTokenInvalid.Message).
			WithTextCode(ErrTokenInvalid.TextCode)
	}

	if !parsed.Valid || claims.IssuedAt == nil {
		return "", ErrTokenInvalid
	}

	if maxAge > 0 && s.now().After(claims.IssuedAt.Time.Add(maxAge)) {
		return "", ErrTokenExpired
	}

	return claims.Subject, nil
}

// deriveSigningKey stretches secret into a 64-byte HMAC key bound to salt.
// The salt acts as the token's purpose: the same secret under a different
// salt yields a key that verifies none of this scope's tokens.
func deriveSigningKey(secret, salt []byte) []byte {
	reader := hkdf.New(sha512.New, secret, salt, []byte("go-session-auth.token.v1"))

	key := make([]byte, sha512.Size)
	if _, err := io.ReadFull(reader, key); err != nil {
		// hkdf only errors once the output limit is exceeded, far above 64 bytes
		panic(fmt.Sprintf("sessionauth: key derivation failed: %v", err))
	}

	return key
}
