package sessionauth

import (
	"net/http"
)

// GenerateAuthToken mints a token for authID with the scope's serializer.
// Scope.DumpToken is the same operation; this form reads better in test
// fixtures.
func GenerateAuthToken(scope *Scope, authID string) (string, error) {
	return scope.DumpToken(authID)
}

// AuthenticateRequest plants a valid credential for authID on an outbound
// request: the scope's cookie in cookie mode, an Authorization bearer header
// in bearer mode. Intended for tests driving a server with httptest or a
// framework test client.
func AuthenticateRequest(req *http.Request, scope *Scope, authID string) error {
	token, err := scope.DumpToken(authID)
	if err != nil {
		return err
	}

	if scope.cfg.Mode == ModeBearer {
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}

	req.AddCookie(&http.Cookie{
		Name:  scope.cfg.CookieName,
		Value: token,
		Path:  scope.cfg.CookiePath,
	})
	return nil
}
