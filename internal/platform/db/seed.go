package db

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"ems/internal/domain/auth"
	"ems/internal/platform/config"
)

// Seed provisions the admin user. There is no self-registration endpoint, so
// this is the only way users come into existence besides manual SQL.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	username := strings.TrimSpace(cfg.SeedAdminUsername)
	if username == "" || cfg.SeedAdminPassword == "" {
		slog.Info("seed skipped, no admin credentials configured")
		return nil
	}
	return ensureUser(ctx, pool, username, cfg.SeedAdminPassword)
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, username, password string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE username = $1", username).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, "INSERT INTO users (username, password_hash) VALUES ($1, $2)", username, hash); err != nil {
		return err
	}
	slog.Info("seeded admin user", "username", username)
	return nil
}
