package auth

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"
	"testing"
	"time"
	tokenRepo "wallpost/internal/repository/token"
	userRepo "wallpost/internal/repository/user"
	"wallpost/pkg/database"
	"wallpost/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *sql.DB

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "wallpost-auth-test")
	if err != nil {
		log.Fatalf("failed to create temp dir: %v", err)
	}

	embedded, err := database.StartEmbedded(15501, dir)
	if err != nil {
		log.Fatalf("failed to start embedded PostgreSQL: %v", err)
	}
	testDB = embedded.DB

	code := m.Run()

	embedded.Stop()
	os.RemoveAll(dir)
	os.Exit(code)
}

func newService(t *testing.T) Service {
	t.Helper()
	require.NoError(t, database.InitSchema(testDB))
	return NewAuthService(userRepo.NewRepository(testDB), tokenRepo.NewRepository(testDB))
}

func seedUser(t *testing.T, username, password string) int64 {
	t.Helper()
	var id int64
	err := testDB.QueryRow(
		`INSERT INTO "user" (username, password) VALUES ($1, $2) RETURNING id`,
		username, password,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedToken(t *testing.T, userID int64, value string, validUntil time.Time) {
	t.Helper()
	_, err := testDB.Exec(
		`INSERT INTO "token" (user_id, token, valid_until) VALUES ($1, $2, $3)`,
		userID, value, validUntil.UTC(),
	)
	require.NoError(t, err)
}

func countTokens(t *testing.T) int {
	t.Helper()
	var n int
	require.NoError(t, testDB.QueryRow(`SELECT COUNT(*) FROM "token"`).Scan(&n))
	return n
}

func TestAuthenticateCreatesToken(t *testing.T) {
	svc := newService(t)
	seedUser(t, "TestUserName", "a")

	tok, err := svc.Authenticate(context.Background(), &model.LoginRequest{Username: "TestUserName", Password: "a"})
	require.NoError(t, err)

	assert.Len(t, tok.Token, 30)
	for _, r := range tok.Token {
		assert.Contains(t, tokenAlphabet, string(r))
	}
	assert.WithinDuration(t, time.Now().UTC().Add(60*time.Minute), tok.ValidUntil.Time, time.Second)
	assert.Equal(t, 1, countTokens(t))
}

func TestAuthenticateReusesExistingToken(t *testing.T) {
	svc := newService(t)
	userID := seedUser(t, "TestUserName", "a")

	// the existing row is already expired; issuance hands it back anyway
	seedToken(t, userID, "TestToken", time.Now().UTC().Add(-time.Hour))

	tok, err := svc.Authenticate(context.Background(), &model.LoginRequest{Username: "TestUserName", Password: "a"})
	require.NoError(t, err)

	assert.Equal(t, "TestToken", tok.Token)
	assert.True(t, tok.ValidUntil.Before(time.Now().UTC()))
	assert.Equal(t, 1, countTokens(t))
}

func TestAuthenticateUnknownCredentials(t *testing.T) {
	svc := newService(t)
	seedUser(t, "TestUserName", "a")

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown user", username: "nobody", password: "a"},
		{name: "wrong password", username: "TestUserName", password: "b"},
		{name: "case sensitive", username: "testusername", password: "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), &model.LoginRequest{Username: tt.username, Password: tt.password})
			assert.ErrorIs(t, err, ErrUserNotFound)
		})
	}
}

func TestRenewTokenBumpsExpiry(t *testing.T) {
	svc := newService(t)
	userID := seedUser(t, "TestUserName", "a")
	seedToken(t, userID, "TestToken", time.Now().UTC().Add(-time.Hour))

	tok, err := svc.RenewToken(context.Background(), &model.RefreshRequest{Token: "TestToken"})
	require.NoError(t, err)

	assert.Equal(t, "TestToken", tok.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(60*time.Minute), tok.ValidUntil.Time, time.Second)

	// the bump is persisted
	var persisted time.Time
	require.NoError(t, testDB.QueryRow(
		`SELECT valid_until FROM "token" WHERE token = $1`, "TestToken",
	).Scan(&persisted))
	assert.WithinDuration(t, time.Now().UTC().Add(60*time.Minute), persisted.UTC(), time.Second)
}

func TestRenewTokenUnknown(t *testing.T) {
	svc := newService(t)

	_, err := svc.RenewToken(context.Background(), &model.RefreshRequest{Token: "NoSuchToken"})
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestValidateToken(t *testing.T) {
	svc := newService(t)
	userID := seedUser(t, "TestUserName", "a")
	seedToken(t, userID, "ValidToken", time.Now().UTC().Add(time.Hour))
	seedUser(t, "OtherUser", "b")
	seedToken(t, userID, "ExpiredToken", time.Now().UTC().Add(-time.Second))

	user, err := svc.ValidateToken(context.Background(), "ValidToken")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "TestUserName", user.Username)

	_, err = svc.ValidateToken(context.Background(), "ExpiredToken")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.ValidateToken(context.Background(), "WrongToken")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGenerateTokenValue(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		value, err := generateTokenValue()
		require.NoError(t, err)
		assert.Len(t, value, 30)
		assert.False(t, seen[value], "token values must not repeat")
		seen[value] = true
		for _, r := range value {
			assert.True(t, strings.ContainsRune(tokenAlphabet, r))
		}
	}
}
