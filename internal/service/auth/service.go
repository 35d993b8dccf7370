package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"
	tokenRepo "wallpost/internal/repository/token"
	userRepo "wallpost/internal/repository/user"
	"wallpost/pkg/model"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrTokenNotFound = errors.New("token not found")
	ErrUnauthorized  = errors.New("unauthorized")
)

const (
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tokenLength   = 30
	tokenValidity = 60 * time.Minute
)

// Service defines the token authority interface. It controls the full
// lifecycle of authentication tokens: issuance, reuse, renewal, validation.
type Service interface {
	Authenticate(ctx context.Context, req *model.LoginRequest) (*model.Token, error)
	RenewToken(ctx context.Context, req *model.RefreshRequest) (*model.Token, error)
	ValidateToken(ctx context.Context, value string) (*model.User, error)
}

// authService provides auth-related services.
type authService struct {
	userRepo  userRepo.Repository
	tokenRepo tokenRepo.Repository
}

// NewAuthService creates a new auth service instance.
func NewAuthService(
	userRepo userRepo.Repository,
	tokenRepo tokenRepo.Repository,
) Service {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// Authenticate looks up a user by exact username+password match and returns
// a token for it. Unknown credentials yield ErrUserNotFound.
func (s *authService) Authenticate(ctx context.Context, req *model.LoginRequest) (*model.Token, error) {
	user, err := s.userRepo.GetByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return s.issueOrReuseToken(ctx, user.ID)
}

// issueOrReuseToken returns the user's existing token row if one exists, in
// whatever expiry state it is in. Only when the user has no token row at all
// is a fresh one minted. Two concurrent calls for a tokenless user may both
// mint; each caller still gets a usable token.
func (s *authService) issueOrReuseToken(ctx context.Context, userID int64) (*model.Token, error) {
	existing, err := s.tokenRepo.GetAnyByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	value, err := generateTokenValue()
	if err != nil {
		return nil, err
	}

	validUntil := model.NewTimestamp(time.Now().UTC().Add(tokenValidity))
	return s.tokenRepo.Create(ctx, userID, value, validUntil)
}

// RenewToken extends an existing token's validity by 60 minutes from now,
// regardless of its current expiry state. Unknown tokens yield
// ErrTokenNotFound.
func (s *authService) RenewToken(ctx context.Context, req *model.RefreshRequest) (*model.Token, error) {
	tok, err := s.tokenRepo.GetByValue(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, ErrTokenNotFound
	}

	tok.ValidUntil = model.NewTimestamp(time.Now().UTC().Add(tokenValidity))
	err = s.tokenRepo.UpdateValidUntil(ctx, tok.ID, tok.ValidUntil)
	if err != nil {
		return nil, err
	}

	return tok, nil
}

// ValidateToken resolves a token string to its user. Unknown, mismatched and
// expired tokens all yield ErrUnauthorized; the expiry comparison happens in
// the store and is inclusive.
func (s *authService) ValidateToken(ctx context.Context, value string) (*model.User, error) {
	user, err := s.tokenRepo.GetUserByValidToken(ctx, value, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	return user, nil
}

// generateTokenValue mints 30 characters drawn uniformly at random from
// [A-Za-z0-9].
func generateTokenValue() (string, error) {
	alphabetSize := big.NewInt(int64(len(tokenAlphabet)))
	buf := make([]byte, tokenLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		buf[i] = tokenAlphabet[n.Int64()]
	}
	return string(buf), nil
}
