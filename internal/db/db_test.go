package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hpungsan/seer/internal/config"
)

func TestInit_CreatesDatabase(t *testing.T) {
	tmpDir := t.TempDir()

	conn, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer conn.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, "seer.db")); err != nil {
		t.Fatalf("database file missing: %v", err)
	}

	version, err := GetUserVersion(conn)
	if err != nil {
		t.Fatalf("GetUserVersion() error = %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("user_version = %d, want %d", version, CurrentSchemaVersion)
	}
}

func TestInit_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	conn, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("first Init() error = %v", err)
	}
	conn.Close()

	conn, err = Init(tmpDir)
	if err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	conn.Close()
}

func TestConfigurePool(t *testing.T) {
	tmpDir := t.TempDir()

	conn, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer conn.Close()

	// Nil config and zero values must be no-ops; non-zero values apply.
	ConfigurePool(conn, nil)
	ConfigurePool(conn, &config.Config{})
	ConfigurePool(conn, &config.Config{DBMaxOpenConns: 1, DBMaxIdleConns: 1})

	if got := conn.Stats().MaxOpenConnections; got != 1 {
		t.Errorf("MaxOpenConnections = %d, want 1", got)
	}
}
