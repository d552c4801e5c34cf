package config_test

import (
	"testing"
	"time"

	"campus-services-client/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "http://localhost:3000/api" {
		t.Errorf("api url: got %q", cfg.APIURL)
	}
	if cfg.DBPath != "campusapp.db" {
		t.Errorf("db path: got %q", cfg.DBPath)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("timeout: got %v", cfg.Timeout)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CAMPUS_API_URL", "https://campus.example.com/api")
	t.Setenv("CAMPUS_TIMEOUT", "3s")

	cfg, err := config.Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "https://campus.example.com/api" {
		t.Errorf("api url: got %q", cfg.APIURL)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("timeout: got %v", cfg.Timeout)
	}
}
