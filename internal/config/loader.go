// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from three layers (highest
precedence last):

  1. Optional `.env` file at `<root>/conf/.env`.
  2. `conf/picohost.yaml`.
  3. Environment variables prefixed `PICOHOST_`, where `__` maps to “.”
     (e.g., `PICOHOST_HTTP__LISTEN_ADDR → http.listen_addr`).

After merging, the tree is unmarshalled into strongly-typed structs,
validated, enriched with the runtime root path, and cached in an
`atomic.Pointer` for lock-free reads.  `Reload()` simply calls `Load()`
again and swaps the pointer.

Database passwords may be `vault:<mount/path>#<key>` references; when a
SecretSource is supplied they are resolved in place before the config is
published, so nothing downstream ever sees a Vault URI.

Instrumentation
---------------
  • DEBUG spans — root discovery, YAML read, env overlay.
  • ERROR spans — YAML parse, env overlay, unmarshal, validation failures.
  • INFO  span  — final “config loaded” with key highlights.
  • Logs use the global *sugared* logger (`zap.S()`) so early boot issues
    surface even before the file logger is installed (bootstrap console).

Notes
-----
  • `rootDir()` climbs the cwd tree until it finds `conf/picohost.yaml`;
    this lets `go run ./cmd/web` work from any sub-directory.
  • Oxford commas, two spaces after periods.
*/
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

var current atomic.Pointer[Config]

// SecretSource resolves one key from a named secret.  Satisfied by
// *vault.Client; nil disables `vault:` indirection.
type SecretSource interface {
	GetKV(ctx context.Context, secretPath, key string, ttl time.Duration) (string, error)
}

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves PICOHOST_ROOT or climbs directories until
// conf/picohost.yaml is found.  Falls back to executable heuristic for
// production layout.
func rootDir() string {
	if r := os.Getenv("PICOHOST_ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", "picohost.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}

	exe, _ := os.Executable()
	if filepath.Base(filepath.Dir(exe)) == "bin" {
		return filepath.Dir(filepath.Dir(exe))
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads .env, YAML, env overrides, resolves secrets, validates, and
// caches Config.
func Load(ctx context.Context, secrets SecretSource) (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	yamlPath := filepath.Join(root, "conf", "picohost.yaml")
	if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
		zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
		return nil, err
	}
	zap.S().Debugw("config yaml loaded", "file", yamlPath)

	// Env overrides: PICOHOST_HTTP__LISTEN_ADDR → http.listen_addr.  The
	// provider filters by prefix but leaves it on the key, so it must be
	// stripped here or the override lands on a dead branch of the tree.
	if err := k.Load(env.Provider("PICOHOST_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "PICOHOST_")
		return strings.ToLower(strings.ReplaceAll(s, "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}

	cfg.Paths.Root = root

	if err := resolveSecrets(ctx, secrets, &cfg); err != nil {
		zap.S().Errorw("config secret resolution failed", "err", err)
		return nil, err
	}

	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"storage_root", cfg.Storage.Root,
		"themes_dir", cfg.Themes.Dir,
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

// resolveSecrets rewrites `vault:mount/path#key` values in place.
func resolveSecrets(ctx context.Context, secrets SecretSource, cfg *Config) error {
	ref := cfg.Database.Password
	if !strings.HasPrefix(ref, "vault:") {
		return nil
	}
	if secrets == nil {
		return fmt.Errorf("config: %q needs a secret source, none configured", ref)
	}

	spec := strings.TrimPrefix(ref, "vault:")
	path, key, ok := strings.Cut(spec, "#")
	if !ok {
		return fmt.Errorf("config: malformed vault reference %q", ref)
	}

	val, err := secrets.GetKV(ctx, path, key, 5*time.Minute)
	if err != nil {
		return err
	}
	cfg.Database.Password = val
	return nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

func Get() *Config { return current.Load() }

func Reload(ctx context.Context, secrets SecretSource) error {
	_, err := Load(ctx, secrets)
	return err
}
