// Package config provides configuration management for ncbitax.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Eutils: url, database, tool, email, api_key, timeout_sec
//   - Import: term, page_size, with_canonical
//   - Store: type, path, host, port, user, password, database, ssl_mode,
//     namespace
//   - Log: level, format, destination
//   - General: metrics_file
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use NCBITAX_ prefix with underscores for nesting:
//
//	NCBITAX_EUTILS_API_KEY=0123456789abcdef
//	NCBITAX_IMPORT_PAGE_SIZE=100
//	NCBITAX_STORE_TYPE=postgres
//	NCBITAX_LOG_LEVEL=info
package config

// Config represents the complete ncbitax configuration.
type Config struct {
	// Eutils contains settings of NCBI E-utilities access.
	Eutils EutilsConfig `mapstructure:"eutils" yaml:"eutils"`

	// Import contains settings specific to the import command.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	// Store contains settings of the tag store the data is written to.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// MetricsFile is a path where run metrics are written in Prometheus
	// text format at the end of a run. Empty value disables the export.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `yaml:"-"`
}

// EutilsConfig contains NCBI E-utilities parameters.
type EutilsConfig struct {
	// URL is the base URL of E-utilities, esearch.fcgi, efetch.fcgi and
	// elink.fcgi are resolved against it.
	URL string `mapstructure:"url" yaml:"url"`

	// Database is the Entrez database to query.
	Database string `mapstructure:"database" yaml:"database"`

	// Tool identifies the software to NCBI, as recommended by
	// E-utilities usage guidelines.
	Tool string `mapstructure:"tool" yaml:"tool"`

	// Email of the person responsible for the requests.
	Email string `mapstructure:"email" yaml:"email"`

	// APIKey raises NCBI rate limit from 3 to 10 requests per second.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`

	// TimeoutSec is the timeout of one HTTP request in seconds.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// ImportConfig contains settings of the import command.
type ImportConfig struct {
	// Term is an Entrez query that selects taxa to import.
	Term string `mapstructure:"term" yaml:"term"`

	// PageSize is the number of records requested per ESearch/EFetch
	// round trip. Larger pages amortize request overhead.
	PageSize int `mapstructure:"page_size" yaml:"page_size"`

	// WithCanonical adds canonical forms of scientific names, generated
	// by GNparser, to the imported tags.
	WithCanonical bool `mapstructure:"with_canonical" yaml:"with_canonical"`
}

// StoreConfig contains settings of the tag store.
type StoreConfig struct {
	// Type of the store backend: "sqlite" or "postgres".
	Type string `mapstructure:"type" yaml:"type"`

	// Path is the SQLite file. Empty means the default location in the
	// data directory.
	Path string `mapstructure:"path" yaml:"path"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// Namespace is the root of all tag paths. If empty, the username from
	// the credentials file is used, and if there is none, AppName.
	Namespace string `mapstructure:"namespace" yaml:"namespace"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Eutils: EutilsConfig{
			URL:        "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/",
			Database:   "taxonomy",
			Tool:       AppName,
			TimeoutSec: 60,
		},
		Import: ImportConfig{
			Term:     "species[Rank] AND PRI[TXDV]",
			PageSize: 100,
		},
		Store: StoreConfig{
			Type:     "sqlite",
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: AppName,
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

// NamespacePrefix returns the root namespace of tag paths.
func (c *Config) NamespacePrefix() string {
	if c.Store.Namespace != "" {
		return c.Store.Namespace
	}
	return AppName
}

// SQLitePath returns the location of the SQLite store file.
func (c *Config) SQLitePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return SQLiteFilePath(c.HomeDir)
}
