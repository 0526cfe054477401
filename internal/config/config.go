// Package config handles runtime configuration: defaults, an optional JSON
// overlay, and command-line flags, applied in that order.
package config

// DefaultEncryptionKey protects secrets at rest when no key is configured.
//
// SECURITY: a fixed, source-embedded key means anyone with this binary and
// the database file can decrypt every secret. It exists so the tool works out
// of the box; real deployments must override it with -k or the JSON config.
// There is deliberately no key derivation or rotation scheme here.
const DefaultEncryptionKey = "insecure-dev-key"

// Config holds runtime settings for the passkeeper CLI.
//
// Fields:
//   - DatabasePath: path to the SQLite database file. A lock file with a
//     ".lock" suffix is created next to it.
//   - EncryptionKey: 16-byte AES-128 key protecting the secret column.
type Config struct {
	DatabasePath  string
	EncryptionKey string
}

// LoadDefaults populates c with development defaults.
// NOTE: the default key is insecure by design; see DefaultEncryptionKey.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "passkeeper.db"
	c.EncryptionKey = DefaultEncryptionKey
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
