package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("Server.Env = %q, want development", cfg.Server.Env)
	}
	if cfg.JWT.ExpirationMins != 60 {
		t.Errorf("JWT.ExpirationMins = %d, want 60", cfg.JWT.ExpirationMins)
	}
	if cfg.Database.Namespace != "waypost" {
		t.Errorf("Database.Namespace = %q, want waypost", cfg.Database.Namespace)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRATION_MINS", "120")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.JWT.ExpirationMins != 120 {
		t.Errorf("JWT.ExpirationMins = %d, want 120", cfg.JWT.ExpirationMins)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v, want 2 entries", cfg.Server.AllowedOrigins)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, _ := Load()
		cfg.JWT.Secret = "test-secret"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid development config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing server port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: "SERVER_PORT",
		},
		{
			name:    "invalid env",
			mutate:  func(c *Config) { c.Server.Env = "staging" },
			wantErr: "SERVER_ENV",
		},
		{
			name: "missing jwt secret in production",
			mutate: func(c *Config) {
				c.Server.Env = "production"
				c.JWT.Secret = ""
				c.Geocoding.APIKey = "key"
			},
			wantErr: "JWT_SECRET",
		},
		{
			name:   "jwt secret optional in development",
			mutate: func(c *Config) { c.JWT.Secret = "" },
		},
		{
			name:    "non-positive expiration",
			mutate:  func(c *Config) { c.JWT.ExpirationMins = 0 },
			wantErr: "JWT_EXPIRATION_MINS",
		},
		{
			name: "missing geocoding key in production",
			mutate: func(c *Config) {
				c.Server.Env = "production"
				c.Geocoding.APIKey = ""
			},
			wantErr: "GEOCODING_API_KEY",
		},
		{
			name:    "missing uploads dir",
			mutate:  func(c *Config) { c.Uploads.Dir = "" },
			wantErr: "UPLOADS_DIR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg, _ := Load()
	cfg.Server.Port = ""
	cfg.Database.Host = ""
	cfg.JWT.ExpirationMins = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want joined errors")
	}
	for _, want := range []string{"SERVER_PORT", "DB_HOST", "JWT_EXPIRATION_MINS"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error missing %q: %v", want, err)
		}
	}
}
