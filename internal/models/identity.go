package models

// Identity is the authenticated caller attached to a request context by the
// session middleware. A nil *Identity means the caller is anonymous.
type Identity struct {
	UserID   int64
	Username string
	IsAdmin  bool
}
