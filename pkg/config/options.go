package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptEutilsURL sets the base URL of NCBI E-utilities.
// A trailing slash is added if missing.
func OptEutilsURL(s string) Option {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return func(c *Config) {
		if isValidString("Eutils URL", s) {
			c.Eutils.URL = s
		}
	}
}

// OptEutilsDatabase sets the Entrez database name.
func OptEutilsDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Eutils Database", s) {
			c.Eutils.Database = s
		}
	}
}

// OptEutilsTool sets the tool name reported to NCBI.
func OptEutilsTool(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Eutils Tool", s) {
			c.Eutils.Tool = s
		}
	}
}

// OptEutilsEmail sets the contact email reported to NCBI.
func OptEutilsEmail(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Eutils Email", s) {
			c.Eutils.Email = s
		}
	}
}

// OptEutilsAPIKey sets the NCBI API key.
func OptEutilsAPIKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Eutils API Key", s) {
			c.Eutils.APIKey = s
		}
	}
}

// OptEutilsTimeoutSec sets the HTTP request timeout in seconds.
func OptEutilsTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Eutils Timeout", i) {
			c.Eutils.TimeoutSec = i
		}
	}
}

// OptImportTerm sets the Entrez query of the import.
func OptImportTerm(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Import Term", s) {
			c.Import.Term = s
		}
	}
}

// OptImportPageSize sets the number of records per search/fetch batch.
func OptImportPageSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Import Page Size", i) {
			c.Import.PageSize = i
		}
	}
}

// OptImportWithCanonical toggles canonical-form tags.
func OptImportWithCanonical(b bool) Option {
	return func(c *Config) {
		c.Import.WithCanonical = b
	}
}

// OptStoreType sets the store backend.
// Valid values: "sqlite", "postgres".
func OptStoreType(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Store.Type", s) {
			c.Store.Type = s
		}
	}
}

// OptStorePath sets the SQLite store file.
func OptStorePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Path", s) {
			c.Store.Path = s
		}
	}
}

// OptStoreHost sets the PostgreSQL server hostname or IP address.
func OptStoreHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Host", s) {
			c.Store.Host = s
		}
	}
}

// OptStorePort sets the PostgreSQL server port number.
func OptStorePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Store Port", i) {
			c.Store.Port = i
		}
	}
}

// OptStoreUser sets the PostgreSQL database username.
func OptStoreUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store User", s) {
			c.Store.User = s
		}
	}
}

// OptStorePassword sets the PostgreSQL database password.
func OptStorePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Password", s) {
			c.Store.Password = s
		}
	}
}

// OptStoreDatabase sets the PostgreSQL database name to connect to.
func OptStoreDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Database", s) {
			c.Store.Database = s
		}
	}
}

// OptStoreSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptStoreSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Store.SSLMode", s) {
			c.Store.SSLMode = s
		}
	}
}

// OptStoreNamespace sets the root namespace of tag paths.
// Slashes at the ends are removed.
func OptStoreNamespace(s string) Option {
	s = strings.Trim(strings.TrimSpace(s), "/")
	return func(c *Config) {
		if isValidString("Store Namespace", s) {
			c.Store.Namespace = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptMetricsFile sets the file for Prometheus text-format metrics.
func OptMetricsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Metrics File", s) {
			c.MetricsFile = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
