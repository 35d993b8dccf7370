package token

import (
	"context"
	"database/sql"
	"time"
	"wallpost/pkg/model"
)

// Repository defines the token repository interface. This is the only
// component that writes token rows.
type Repository interface {
	GetAnyByUserID(ctx context.Context, userID int64) (*model.Token, error)
	GetByValue(ctx context.Context, value string) (*model.Token, error)
	Create(ctx context.Context, userID int64, value string, validUntil model.Timestamp) (*model.Token, error)
	UpdateValidUntil(ctx context.Context, id int64, validUntil model.Timestamp) error
	GetUserByValidToken(ctx context.Context, value string, now time.Time) (*model.User, error)
}

// repository implements the token repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new token repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// GetAnyByUserID retrieves a token row for the user with no validity filter.
// Expired rows are returned just the same; issuance reuses whatever exists.
func (r *repository) GetAnyByUserID(ctx context.Context, userID int64) (*model.Token, error) {
	tok := &model.Token{}
	query := `
		SELECT id, user_id, token, valid_until
		FROM "token"
		WHERE user_id = $1`

	row := r.db.QueryRowContext(ctx, query, userID)
	err := row.Scan(&tok.ID, &tok.UserID, &tok.Token, &tok.ValidUntil)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No token for this user
		}
		return nil, err
	}

	return tok, nil
}

// GetByValue retrieves a token row by exact string match
func (r *repository) GetByValue(ctx context.Context, value string) (*model.Token, error) {
	tok := &model.Token{}
	query := `
		SELECT id, user_id, token, valid_until
		FROM "token"
		WHERE token = $1`

	row := r.db.QueryRowContext(ctx, query, value)
	err := row.Scan(&tok.ID, &tok.UserID, &tok.Token, &tok.ValidUntil)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Token not found
		}
		return nil, err
	}

	return tok, nil
}

// Create inserts a new token row and returns it
func (r *repository) Create(ctx context.Context, userID int64, value string, validUntil model.Timestamp) (*model.Token, error) {
	tok := &model.Token{}
	query := `
		INSERT INTO "token" (user_id, token, valid_until)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, token, valid_until`

	row := r.db.QueryRowContext(ctx, query, userID, value, validUntil)
	err := row.Scan(&tok.ID, &tok.UserID, &tok.Token, &tok.ValidUntil)
	if err != nil {
		return nil, err
	}

	return tok, nil
}

// UpdateValidUntil bumps the expiry of an existing token row
func (r *repository) UpdateValidUntil(ctx context.Context, id int64, validUntil model.Timestamp) error {
	query := `UPDATE "token" SET valid_until = $2 WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id, validUntil)
	return err
}

// GetUserByValidToken joins token to user where the token string matches and
// the expiry has not passed. The comparison is inclusive: a token expiring
// exactly at now is still valid.
func (r *repository) GetUserByValidToken(ctx context.Context, value string, now time.Time) (*model.User, error) {
	user := &model.User{}
	query := `
		SELECT u.id, u.username, u.password
		FROM "user" u
		JOIN "token" t ON t.user_id = u.id
		WHERE t.token = $1 AND t.valid_until >= $2`

	row := r.db.QueryRowContext(ctx, query, value, now.UTC())
	err := row.Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No matching valid token
		}
		return nil, err
	}

	return user, nil
}
