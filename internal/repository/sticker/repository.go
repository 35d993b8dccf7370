package sticker

import (
	"context"
	"database/sql"
	"fmt"
	"wallpost/pkg/model"
)

// Repository defines the sticker repository interface
type Repository interface {
	GetAll(ctx context.Context) ([]model.Sticker, error)
	GetByID(ctx context.Context, id int64) (*model.Sticker, error)
	Create(ctx context.Context, req *model.StickerRequest) (*model.Sticker, error)
	Update(ctx context.Context, id int64, req *model.StickerRequest) (*model.Sticker, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// repository implements the sticker repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new sticker repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// GetAll retrieves all stickers
func (r *repository) GetAll(ctx context.Context) ([]model.Sticker, error) {
	query := `
		SELECT id, title, description
		FROM sticker
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stickers: %w", err)
	}
	defer rows.Close()

	stickers := []model.Sticker{}
	for rows.Next() {
		var s model.Sticker
		err := rows.Scan(&s.ID, &s.Title, &s.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sticker: %w", err)
		}
		stickers = append(stickers, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return stickers, nil
}

// GetByID retrieves a sticker by ID
func (r *repository) GetByID(ctx context.Context, id int64) (*model.Sticker, error) {
	s := &model.Sticker{}
	query := `
		SELECT id, title, description
		FROM sticker
		WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	err := row.Scan(&s.ID, &s.Title, &s.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Sticker not found
		}
		return nil, err
	}

	return s, nil
}

// Create inserts a new sticker and returns it
func (r *repository) Create(ctx context.Context, req *model.StickerRequest) (*model.Sticker, error) {
	s := &model.Sticker{}
	query := `
		INSERT INTO sticker (title, description)
		VALUES ($1, $2)
		RETURNING id, title, description`

	row := r.db.QueryRowContext(ctx, query, req.Title, req.Description)
	err := row.Scan(&s.ID, &s.Title, &s.Description)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Update replaces a sticker's fields and returns the updated row
func (r *repository) Update(ctx context.Context, id int64, req *model.StickerRequest) (*model.Sticker, error) {
	s := &model.Sticker{}
	query := `
		UPDATE sticker
		SET title = $2, description = $3
		WHERE id = $1
		RETURNING id, title, description`

	row := r.db.QueryRowContext(ctx, query, id, req.Title, req.Description)
	err := row.Scan(&s.ID, &s.Title, &s.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Sticker not found
		}
		return nil, err
	}

	return s, nil
}

// Delete removes a sticker. It reports whether a row was actually deleted.
func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM sticker WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
