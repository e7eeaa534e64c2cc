// internal/config/loader_test.go
//
// Loader tests run against a throwaway root built with t.TempDir(); the
// PICOHOST_ROOT override keeps discovery away from the real tree.

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const goodYAML = `http:
  listen_addr: "127.0.0.1:8080"
database:
  dsn: "picohost:%s@tcp(127.0.0.1:3306)/picohost?parseTime=true"
storage:
  root: "/srv/storage"
themes:
  dir: "/srv/themes"
log:
  debug: true
`

// writeRoot lays out <tmp>/conf/picohost.yaml and points PICOHOST_ROOT at it.
func writeRoot(t *testing.T, yaml string) string {
	t.Helper()
	root := t.TempDir()
	confDir := filepath.Join(root, "conf")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatalf("mkdir conf: %v", err)
	}
	if err := os.WriteFile(filepath.Join(confDir, "picohost.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	t.Setenv("PICOHOST_ROOT", root)
	return root
}

func TestLoadHappyPath(t *testing.T) {
	root := writeRoot(t, goodYAML)

	cfg, err := Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.ListenAddr != "127.0.0.1:8080" {
		t.Errorf("ListenAddr = %q", cfg.HTTP.ListenAddr)
	}
	if cfg.Storage.Root != "/srv/storage" {
		t.Errorf("Storage.Root = %q", cfg.Storage.Root)
	}
	if !cfg.Log.Debug {
		t.Error("Log.Debug = false, want true")
	}
	if cfg.Paths.Root != root {
		t.Errorf("Paths.Root = %q, want %q", cfg.Paths.Root, root)
	}
	if Get() != cfg {
		t.Error("Get() did not return the loaded config")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	writeRoot(t, goodYAML)
	t.Setenv("PICOHOST_HTTP__LISTEN_ADDR", "0.0.0.0:9090")

	cfg, err := Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.ListenAddr != "0.0.0.0:9090" {
		t.Errorf("ListenAddr = %q, want env override", cfg.HTTP.ListenAddr)
	}
}

func TestLoadValidationFailure(t *testing.T) {
	writeRoot(t, "http:\n  listen_addr: \"127.0.0.1:8080\"\n")

	if _, err := Load(context.Background(), nil); err == nil {
		t.Fatal("Load succeeded without required fields")
	}
}

const vaultYAML = `http:
  listen_addr: "127.0.0.1:8080"
database:
  dsn: "picohost:%s@tcp(127.0.0.1:3306)/picohost?parseTime=true"
  password: "vault:secret/picohost#db_password"
storage:
  root: "/srv/storage"
themes:
  dir: "/srv/themes"
`

type fakeSecrets struct {
	path, key string
	value     string
	err       error
}

func (f *fakeSecrets) GetKV(_ context.Context, secretPath, key string, _ time.Duration) (string, error) {
	f.path, f.key = secretPath, key
	return f.value, f.err
}

func TestLoadResolvesVaultReference(t *testing.T) {
	writeRoot(t, vaultYAML)

	src := &fakeSecrets{value: "s3cret"}
	cfg, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Password != "s3cret" {
		t.Errorf("Password = %q", cfg.Database.Password)
	}
	if src.path != "secret/picohost" || src.key != "db_password" {
		t.Errorf("secret lookup = (%q, %q)", src.path, src.key)
	}
}

func TestLoadVaultReferenceWithoutSource(t *testing.T) {
	writeRoot(t, vaultYAML)

	if _, err := Load(context.Background(), nil); err == nil {
		t.Fatal("Load succeeded with unresolvable vault reference")
	}
}

func TestLoadSecretSourceError(t *testing.T) {
	writeRoot(t, vaultYAML)

	boom := errors.New("sealed")
	if _, err := Load(context.Background(), &fakeSecrets{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}
