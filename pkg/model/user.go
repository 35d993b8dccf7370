package model

// User represents a user in the system. Users are created out-of-band; this
// service only ever reads them.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"` // Never include in JSON responses
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest represents the request payload for token renewal
type RefreshRequest struct {
	Token string `json:"token"`
}
