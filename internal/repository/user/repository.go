package user

import (
	"context"
	"database/sql"
	"wallpost/pkg/model"
)

// Repository defines the user repository interface. Users are created
// out-of-band, so this repository is read-only.
type Repository interface {
	GetByCredentials(ctx context.Context, username, password string) (*model.User, error)
}

// repository implements the user repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new user repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// GetByCredentials retrieves a user by exact username and password match.
// Case-sensitive, no hashing; the password column holds the plain value.
func (r *repository) GetByCredentials(ctx context.Context, username, password string) (*model.User, error) {
	user := &model.User{}
	query := `
		SELECT id, username, password
		FROM "user"
		WHERE username = $1 AND password = $2`

	row := r.db.QueryRowContext(ctx, query, username, password)
	err := row.Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, err
	}

	return user, nil
}
