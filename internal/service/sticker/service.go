package sticker

import (
	"context"
	"errors"
	stickerRepo "wallpost/internal/repository/sticker"
	"wallpost/pkg/model"
)

var (
	ErrStickerNotFound = errors.New("sticker not found")
)

// Service defines the sticker service interface
type Service interface {
	List(ctx context.Context) ([]model.Sticker, error)
	Get(ctx context.Context, id int64) (*model.Sticker, error)
	Create(ctx context.Context, req *model.StickerRequest) (*model.Sticker, error)
	Update(ctx context.Context, id int64, req *model.StickerRequest) (*model.Sticker, error)
	Delete(ctx context.Context, id int64) error
}

// stickerService provides sticker-related services.
type stickerService struct {
	stickerRepo stickerRepo.Repository
}

// NewStickerService creates a new sticker service instance.
func NewStickerService(stickerRepo stickerRepo.Repository) Service {
	return &stickerService{
		stickerRepo: stickerRepo,
	}
}

// List returns all stickers on the wall
func (s *stickerService) List(ctx context.Context) ([]model.Sticker, error) {
	return s.stickerRepo.GetAll(ctx)
}

// Get returns a single sticker by ID
func (s *stickerService) Get(ctx context.Context, id int64) (*model.Sticker, error) {
	sticker, err := s.stickerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sticker == nil {
		return nil, ErrStickerNotFound
	}

	return sticker, nil
}

// Create adds a new sticker to the wall
func (s *stickerService) Create(ctx context.Context, req *model.StickerRequest) (*model.Sticker, error) {
	return s.stickerRepo.Create(ctx, req)
}

// Update replaces an existing sticker's fields
func (s *stickerService) Update(ctx context.Context, id int64, req *model.StickerRequest) (*model.Sticker, error) {
	sticker, err := s.stickerRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if sticker == nil {
		return nil, ErrStickerNotFound
	}

	return sticker, nil
}

// Delete removes a sticker from the wall
func (s *stickerService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.stickerRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrStickerNotFound
	}

	return nil
}
