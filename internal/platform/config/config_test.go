package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"tempo/internal/platform/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, "tempo.db") {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
	if cfg.DefaultUser != "local" {
		t.Fatalf("unexpected default user: %s", cfg.DefaultUser)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	raw := "default_user: maria\nlearner:\n  binary: /usr/local/bin/tempo-learner\n"
	if err := os.WriteFile(filepath.Join(dir, "tempo.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultUser != "maria" {
		t.Fatalf("expected user from file, got %s", cfg.DefaultUser)
	}
	if cfg.Learner.Binary != "/usr/local/bin/tempo-learner" {
		t.Fatalf("expected learner binary from file, got %s", cfg.Learner.Binary)
	}
	if cfg.DBPath != filepath.Join(dir, "tempo.db") {
		t.Fatalf("db path must backfill from data dir, got %s", cfg.DBPath)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tempo.yaml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(dir); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLoadRequiresDataDir(t *testing.T) {
	t.Parallel()
	if _, err := config.Load(""); err == nil {
		t.Fatalf("expected error for empty data dir")
	}
}
