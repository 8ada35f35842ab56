package models

// GuardState is the state a protected route is in while its session and
// role are being checked on entry.
type GuardState int

const (
	GuardUnauthenticated GuardState = iota
	GuardChecking
	GuardAuthorized
	GuardRejected
)

func (s GuardState) String() string {
	switch s {
	case GuardUnauthenticated:
		return "unauthenticated"
	case GuardChecking:
		return "checking"
	case GuardAuthorized:
		return "authorized"
	case GuardRejected:
		return "rejected"
	}
	return "unknown"
}

// GuardDecision is the outcome of evaluating a protected route entry.
// RedirectTo is empty on a role mismatch: the session may still be valid
// for another role's dashboard, so the user stays where they are.
type GuardDecision struct {
	State      GuardState
	SessionID  string
	Session    *Session
	Message    string
	RedirectTo string
}
