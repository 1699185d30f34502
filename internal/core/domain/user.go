package domain

const RoleAdmin = "admin"

// User is the operator profile returned by the catalog API.
type User struct {
	ID       string `json:"_id,omitempty"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session is a point-in-time view of the operator's authentication state.
type Session struct {
	Token   string `json:"-"`
	User    *User  `json:"user,omitempty"`
	Loading bool   `json:"loading"`
}

// LoggedIn reports whether the session holds both a token and a resolved user.
func (s Session) LoggedIn() bool {
	return !s.Loading && s.Token != "" && s.User != nil
}
