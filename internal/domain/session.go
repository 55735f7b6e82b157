package domain

type SessionState string

const (
	SessionAnonymous     SessionState = "anonymous"
	SessionHydrating     SessionState = "hydrating"
	SessionAuthenticated SessionState = "authenticated"
)

// Session is the client-held view of the current authentication state.
// IsAuthenticated and IsAdmin are derived, never stored, so the invariants
// (authenticated iff a token is held, admin only via roles) hold by
// construction.
type Session struct {
	Token        string
	RefreshToken string
	User         *User
	Error        string
}

func (s Session) State() SessionState {
	switch {
	case s.Token == "":
		return SessionAnonymous
	case s.User == nil:
		return SessionHydrating
	default:
		return SessionAuthenticated
	}
}

func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

func (s Session) IsAdmin() bool {
	return s.User != nil && s.User.IsAdmin()
}

// TokenPair carries the credentials returned by the login endpoint.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// StoredSession mirrors what survives on disk between runs: the two tokens
// plus the UI language preference, which lives in the same file but is not a
// credential.
type StoredSession struct {
	AuthToken    string
	RefreshToken string
	Language     string
}

// Registration is the sign-up payload. Username falls back to the local part
// of the email when left empty.
type Registration struct {
	Email    string
	Password string
	Username string
}
