package model

const (
	RoleAdmin   = "admin"
	RoleAnalyst = "analyst"
	RoleViewer  = "viewer"
)

// Scope identifies the caller of a request.
type Scope struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	JTI    string `json:"jti"`
}

func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsAnonymous reports whether the request carried no verified token.
func (s Scope) IsAnonymous() bool {
	return s.UserID == ""
}
