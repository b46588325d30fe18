package sessionauth

// Action is the pending credential mutation carried by a User for the
// lifetime of a request. The scope reconciles it into the outgoing response
// exactly once; last write wins within a single request.
type Action int

const (
	// ActionPass leaves the client credential untouched.
	ActionPass Action = iota
	// ActionDelete clears the client credential.
	ActionDelete
	// ActionWrite sets a session-lifetime (non-persistent) credential.
	ActionWrite
	// ActionWritePermanent sets a credential that lasts the scope's Duration.
	ActionWritePermanent
)

func (a Action) String() string {
	switch a {
	case ActionPass:
		return "pass"
	case ActionDelete:
		return "delete"
	case ActionWrite:
		return "write"
	case ActionWritePermanent:
		return "write_permanent"
	default:
		return "unknown"
	}
}
