// internal/config/model.go
//
// Typed configuration model for Picohost.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                             – dotenv values,
//   • `conf/picohost.yaml`                        – primary static file,
//   • `PICOHOST_`-prefixed environment overrides  – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the Vault client *after* unmarshalling, so callers never see
// Vault URIs—only plain strings.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
}

//
// Database section
//

// Database holds the DSN for the platform database.  The DSN template is
// kept in YAML so operators can tweak host, port, or flags without touching
// Vault; `Password` may carry a `vault:mount/path#key` reference that the
// loader resolves before anything connects.
type Database struct {
	DSN      string `koanf:"dsn" validate:"required"`
	Password string `koanf:"password"`
}

//
// Storage section
//

// Storage describes the host filesystem layout: every user's files live
// under `<root>/<user>/files/`, and websites point into that tree.
type Storage struct {
	Root string `koanf:"root" validate:"required"`
}

//
// Themes section
//

// Themes locates the on-disk themes root scanned by the theme service.
type Themes struct {
	Dir string `koanf:"dir" validate:"required"`
}

//
// Geo section (optional)
//

// Geo points at a local GeoLite2 database.  Empty path disables lookups.
type Geo struct {
	DBPath string `koanf:"db_path"`
}

//
// Log section
//

// Log carries logger tunables not derivable from the environment.
type Log struct {
	Debug bool `koanf:"debug"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or PICOHOST_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // PICOHOST_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Storage  Storage  `koanf:"storage"`
	Themes   Themes   `koanf:"themes"`
	Geo      Geo      `koanf:"geo"`
	Log      Log      `koanf:"log"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}
