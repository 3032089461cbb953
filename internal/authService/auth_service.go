package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"storage-auctions/internal/markerrors"
	"storage-auctions/internal/models"
	"storage-auctions/internal/repository"
	"storage-auctions/utils"
)

// AuthService handles registration, login and session token verification
type AuthService struct {
	repo     repository.UserDB
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService instance
func NewAuthService(repo repository.UserDB, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Register creates a new account with a bcrypt-hashed password
func (s *AuthService) Register(username, email, password string) (models.User, error) {
	if username == "" || email == "" || password == "" {
		return models.User{}, fmt.Errorf("service: %w - missing username, email or password", markerrors.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       utils.GenerateID(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.repo.SaveUser(user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to register user %s: %w", username, err)
	}

	return user, nil
}

// Login verifies credentials and issues a signed session token. Unknown
// usernames and wrong passwords both come back as ErrInvalidCredentials so
// the response does not leak which half was wrong.
func (s *AuthService) Login(username, password string) (string, models.User, error) {
	if username == "" || password == "" {
		return "", models.User{}, fmt.Errorf("service: %w - missing username or password", markerrors.ErrInvalidInput)
	}

	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, markerrors.ErrUserNotFound) {
			return "", models.User{}, fmt.Errorf("service: %w", markerrors.ErrInvalidCredentials)
		}
		return "", models.User{}, fmt.Errorf("service: failed to load user %s: %w", username, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, fmt.Errorf("service: %w", markerrors.ErrInvalidCredentials)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.UserID,
		"username": user.Username,
		"exp":      now.Add(s.tokenTTL).Unix(),
		"iat":      now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", models.User{}, fmt.Errorf("service: failed to sign token: %w", err)
	}

	return token, user, nil
}

// VerifyToken parses a session token and returns the user id it carries
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("service: %w - bad session token", markerrors.ErrInvalidCredentials)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("service: %w - malformed claims", markerrors.ErrInvalidCredentials)
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("service: %w - missing subject", markerrors.ErrInvalidCredentials)
	}
	return sub, nil
}
