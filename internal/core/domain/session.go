package domain

// SessionCookieName is the name of the signed cookie carrying the session ID.
const SessionCookieName = "portal_session"

// Keys under which session state is stored in the session values map.
const (
	SessionKeyAuthenticated = "authenticated"
	SessionKeyUsername      = "username"
	SessionKeyUserType      = "user_type"
)

// Session is the decoded per-request view of a server-side session.
// Authenticated implies Username referred to a stored user at login time;
// the user may have been mutated since (stale sessions are possible).
type Session struct {
	Authenticated bool
	Username      string
	UserType      string
}

// SessionFromValues decodes a session values map as populated at login.
// Missing or mistyped entries yield the zero (anonymous) session.
func SessionFromValues(values map[interface{}]interface{}) Session {
	s := Session{}
	s.Authenticated, _ = values[SessionKeyAuthenticated].(bool)
	s.Username, _ = values[SessionKeyUsername].(string)
	s.UserType, _ = values[SessionKeyUserType].(string)
	return s
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool {
	return s.Authenticated && s.UserType == RoleAdmin
}
