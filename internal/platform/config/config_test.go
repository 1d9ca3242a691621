package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Addr:               ":8080",
		DatabaseURL:        "postgres://localhost/ems",
		JWTSecret:          "secret",
		TokenTTL:           8 * time.Hour,
		Environment:        "development",
		MaxBodyBytes:       1048576,
		LoginRatePerMinute: 15,
		RequestTimeout:     30 * time.Second,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing database url",
			mutate:  func(c *Config) { c.DatabaseURL = " " },
			wantErr: true,
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.JWTSecret = "" },
			wantErr: true,
		},
		{
			name: "production seed without password",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.RunSeed = true
				c.SeedAdminPassword = ""
			},
			wantErr: true,
		},
		{
			name:    "non-positive token ttl",
			mutate:  func(c *Config) { c.TokenTTL = 0 },
			wantErr: true,
		},
		{
			name:    "tiny body limit",
			mutate:  func(c *Config) { c.MaxBodyBytes = 16 },
			wantErr: true,
		},
		{
			name:    "zero login rate",
			mutate:  func(c *Config) { c.LoginRatePerMinute = 0 },
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
