package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"identity": map[string]any{
			"anonKey":    "",
			"serviceKey": "",
		},
		"session": map[string]any{
			"cookieName": "sb:token",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "IDENTITY_ANONKEY", want: "identity.anonKey"},
		{envKey: "IDENTITY_SERVICEKEY", want: "identity.serviceKey"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestValidate_RequiredValues(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{
			Identity: &IdentityConfig{URL: "https://example.supabase.co", AnonKey: "anon", ServiceKey: "service"},
			Session:  &SessionConfig{Secret: "s3cret"},
			Postgres: &PostgresConfig{},
		}

		return cfg
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{name: "missing identity url", mutate: func(cfg *Config) { cfg.Identity.URL = "" }},
		{name: "missing anon key", mutate: func(cfg *Config) { cfg.Identity.AnonKey = "" }},
		{name: "missing service key", mutate: func(cfg *Config) { cfg.Identity.ServiceKey = "" }},
		{name: "missing session secret", mutate: func(cfg *Config) { cfg.Session.Secret = "" }},
		{name: "missing postgres", mutate: func(cfg *Config) { cfg.Postgres = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected a fatal configuration error, got nil")
			}
		})
	}
}
