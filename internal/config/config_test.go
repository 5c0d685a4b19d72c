package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET", "secret")

	cfg := Load()
	if cfg.JWTIssuer != "learnhub" {
		t.Fatalf("unexpected issuer: %q", cfg.JWTIssuer)
	}
	if cfg.StorageLimitBytes != 10*1024*1024*1024 {
		t.Fatalf("unexpected storage limit: %d", cfg.StorageLimitBytes)
	}
	if cfg.AccessTTLSeconds != 14400 || cfg.RefreshTTLSeconds != 1209600 {
		t.Fatalf("unexpected ttls: %d %d", cfg.AccessTTLSeconds, cfg.RefreshTTLSeconds)
	}
	if cfg.ModerationModel != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %q", cfg.ModerationModel)
	}
	if cfg.CorsOrigins != nil {
		t.Fatalf("expected no cors origins, got %v", cfg.CorsOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORAGE_LIMIT_BYTES", "1048576")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()
	if cfg.StorageLimitBytes != 1048576 {
		t.Fatalf("override ignored: %d", cfg.StorageLimitBytes)
	}
	if len(cfg.CorsOrigins) != 2 || cfg.CorsOrigins[0] != "https://a.example" || cfg.CorsOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CorsOrigins)
	}
}

func TestEnvOrIntBadValueFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	if got := envOrInt("SOME_INT", 7); got != 7 {
		t.Fatalf("expected fallback, got %d", got)
	}
}
