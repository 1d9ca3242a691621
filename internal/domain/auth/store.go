package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnknownUser reports that no user record matched the username. Callers
// must not surface it verbatim; the credential-rejected outcome never reveals
// which part of the credential was wrong.
var ErrUnknownUser = errors.New("unknown user")

type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

type StoreAPI interface {
	FindUserByUsername(ctx context.Context, username string) (User, error)
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (User, error) {
	var out User
	err := s.DB.QueryRow(ctx, `
    SELECT id, username, password_hash
    FROM users
    WHERE username = $1
  `, username).Scan(&out.ID, &out.Username, &out.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUnknownUser
	}
	return out, err
}
