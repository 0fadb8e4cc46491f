package config

import (
	"context"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.TokenTTL.Hours() != 1 {
		t.Fatalf("expected default ttl 1h, got %v", cfg.TokenTTL)
	}
	if cfg.MySQL.Host != "localhost" || cfg.MySQL.Port != 3306 {
		t.Fatalf("unexpected mysql defaults: %+v", cfg.MySQL)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("redis must be disabled by default, got %q", cfg.Redis.Addr)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when JWT_SECRET is empty")
	}
}

func TestMySQLConfig_DSN(t *testing.T) {
	c := MySQLConfig{Host: "db", Port: 3307, User: "app", Password: "pw", Database: "immunization"}
	want := "app:pw@tcp(db:3307)/immunization?parseTime=true&charset=utf8mb4"
	if got := c.DSN(); got != want {
		t.Fatalf("dsn mismatch:\n got %s\nwant %s", got, want)
	}
}
