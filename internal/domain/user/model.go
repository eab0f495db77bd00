package user

import "time"

// Principal identifies the authenticated caller of a request.
type Principal struct {
	UserID   string
	Username string
	Email    string
}

// Account is the locally known profile for an authenticated user. The
// identity provider owns credentials; we only mirror display data.
type Account struct {
	ID        string
	Username  string
	Email     string
	CreatedAt time.Time
}
