package model

// Token is an opaque bearer credential tied to a user and an expiry
// timestamp. The value is 30 random alphanumeric characters.
type Token struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	Token      string    `json:"token" db:"token"`
	ValidUntil Timestamp `json:"valid_until" db:"valid_until"`
}

// TokenGrant is the public shape returned by /login and /token.
type TokenGrant struct {
	Token      string    `json:"token"`
	ValidUntil Timestamp `json:"valid_until"`
}

// Grant converts a Token row to its public response shape.
func (t *Token) Grant() TokenGrant {
	return TokenGrant{
		Token:      t.Token,
		ValidUntil: t.ValidUntil,
	}
}
