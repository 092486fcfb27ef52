package auth

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Zackrieg/PruebaImagineApps/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	// ErrInvalidCredentials covers both an unknown username and a
	// password mismatch; callers must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInvalidToken covers malformed, unsigned, expired, and
	// subject-less tokens.
	ErrInvalidToken = errors.New("could not validate credentials")
)

type UserGetter interface {
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
}

// TokenService issues and validates bearer tokens. Validation is a pure
// function of the token and the signing secret; only issuance touches
// the user store.
type TokenService struct {
	users    UserGetter
	secret   []byte
	tokenTTL time.Duration
}

// NewTokenService creates a new instance of TokenService.
func NewTokenService(users UserGetter, secret []byte, tokenTTL time.Duration) *TokenService {
	return &TokenService{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// IssueToken verifies the credentials against the user store and, on
// success, signs a token carrying the username as subject.
func (s *TokenService) IssueToken(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		logger.Error().Err(err).Msgf("Error getting user %s", username)
		return "", err
	}

	if !VerifyPassword(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := tkn.SignedString(s.secret)
	if err != nil {
		logger.Error().Err(err).Msg("Error signing token")
		return "", err
	}

	return t, nil
}

// ValidateToken checks signature, expiry and subject claim, and returns
// the username the token was issued for.
func (s *TokenService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
