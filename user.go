package sessionauth

import "fmt"

// User holds the attributes of the identity resolved for the current request.
// The empty auth id means anonymous. A User is owned by a single request and
// must not be shared across requests.
type User interface {
	AuthID() string
	IsAuthenticated() bool
	Action() Action
	SetAction(Action)
}

// UserFactory builds the User a scope hands to handlers. Hosts can supply
// their own factory via Scope.WithUserFactory to return a richer user type,
// for example one that lazily loads profile data keyed by the auth id.
type UserFactory func(authID string) User

var _ User = &AuthUser{}

// AuthUser is the default User implementation: an auth id plus the pending
// credential action.
type AuthUser struct {
	authID string
	action Action
}

// NewAuthUser returns a user for authID with no pending action.
func NewAuthUser(authID string) *AuthUser {
	return &AuthUser{authID: authID, action: ActionPass}
}

func (u *AuthUser) AuthID() string {
	return u.authID
}

func (u *AuthUser) IsAuthenticated() bool {
	return u.authID != ""
}

func (u *AuthUser) Action() Action {
	return u.action
}

func (u *AuthUser) SetAction(action Action) {
	u.action = action
}

func (u *AuthUser) String() string {
	return fmt.Sprintf("AuthUser(auth_id=%s, action=%s)", u.authID, u.action)
}
