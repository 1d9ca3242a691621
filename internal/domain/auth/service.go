package auth

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrInvalidCredentials is the single credential-rejected outcome: blank
// input, unknown username and wrong password all collapse into it.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	Store    StoreAPI
	Secret   string
	TokenTTL time.Duration
}

func NewService(store StoreAPI, secret string, tokenTTL time.Duration) *Service {
	return &Service{Store: store, Secret: secret, TokenTTL: tokenTTL}
}

// Authenticate verifies the username/password pair and issues a signed token.
// Blank credentials are rejected before the store is consulted.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.Store.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUnknownUser) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := CheckPassword(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return GenerateToken(s.Secret, user.ID, s.TokenTTL)
}
