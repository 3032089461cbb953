package auth

import (
	"errors"
	"testing"
	"time"

	"storage-auctions/internal/markerrors"
	"storage-auctions/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newService() *AuthService {
	return NewAuthService(repository.NewMemoryRepo(), "test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	service := newService()

	user, err := service.Register("bidder", "bidder@example.com", "correct horse battery")
	require.NoError(t, err)
	require.Equal(t, "bidder", user.Username)
	require.Equal(t, "bidder@example.com", user.Email)
	require.NotEqual(t, "correct horse battery", user.PasswordHash, "password must be stored hashed")
	_, parseErr := uuid.Parse(user.UserID)
	require.NoError(t, parseErr)

	// same username again is rejected
	_, err = service.Register("bidder", "other@example.com", "another password")
	require.True(t, errors.Is(err, markerrors.ErrDuplicateUser))
}

func TestRegister_Validation(t *testing.T) {
	service := newService()

	_, err := service.Register("", "bidder@example.com", "password123")
	require.True(t, errors.Is(err, markerrors.ErrInvalidInput))

	_, err = service.Register("bidder", "", "password123")
	require.True(t, errors.Is(err, markerrors.ErrInvalidInput))

	_, err = service.Register("bidder", "bidder@example.com", "")
	require.True(t, errors.Is(err, markerrors.ErrInvalidInput))
}

func TestLogin_RoundTrip(t *testing.T) {
	service := newService()

	registered, err := service.Register("bidder", "bidder@example.com", "correct horse battery")
	require.NoError(t, err)

	token, user, err := service.Login("bidder", "correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, registered.UserID, user.UserID)

	// the issued token verifies back to the same user
	userID, err := service.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, registered.UserID, userID)
}

func TestLogin_BadCredentials(t *testing.T) {
	service := newService()

	_, err := service.Register("bidder", "bidder@example.com", "correct horse battery")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong_password", username: "bidder", password: "wrong password"},
		{name: "unknown_username", username: "ghost", password: "correct horse battery"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := service.Login(tc.username, tc.password)
			require.True(t, errors.Is(err, markerrors.ErrInvalidCredentials))
		})
	}
}

func TestVerifyToken_Rejections(t *testing.T) {
	service := newService()

	_, err := service.VerifyToken("not-a-token")
	require.True(t, errors.Is(err, markerrors.ErrInvalidCredentials))

	// token signed with a different secret
	other := NewAuthService(repository.NewMemoryRepo(), "other-secret", time.Hour)
	_, err = other.Register("bidder", "bidder@example.com", "password123")
	require.NoError(t, err)
	token, _, err := other.Login("bidder", "password123")
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	require.True(t, errors.Is(err, markerrors.ErrInvalidCredentials))
}

func TestVerifyToken_Expired(t *testing.T) {
	repo := repository.NewMemoryRepo()
	service := NewAuthService(repo, "test-secret", -time.Minute)

	_, err := service.Register("bidder", "bidder@example.com", "password123")
	require.NoError(t, err)
	token, _, err := service.Login("bidder", "password123")
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	require.True(t, errors.Is(err, markerrors.ErrInvalidCredentials))
}
