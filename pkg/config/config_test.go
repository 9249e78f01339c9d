package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/ncbitax/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "ncbitax"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "ncbitax"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "ncbitax", "logs"),
		},
		{
			msg: "credentials",
			fn:  config.CredentialsFilePath,
			res: filepath.Join(tempHome, ".config", "ncbitax", "credentials"),
		},
		{
			msg: "sqlite",
			fn:  config.SQLiteFilePath,
			res: filepath.Join(tempHome, ".local", "share", "ncbitax",
				"ncbitax.sqlite"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/",
			cfg.Eutils.URL)
		assert.Equal(t, "taxonomy", cfg.Eutils.Database)
		assert.Equal(t, "ncbitax", cfg.Eutils.Tool)
		assert.Equal(t, 60, cfg.Eutils.TimeoutSec)

		assert.Equal(t, 100, cfg.Import.PageSize)
		assert.NotEmpty(t, cfg.Import.Term)
		assert.False(t, cfg.Import.WithCanonical)

		assert.Equal(t, "sqlite", cfg.Store.Type)
		assert.Equal(t, "localhost", cfg.Store.Host)
		assert.Equal(t, 5432, cfg.Store.Port)
		assert.Equal(t, "disable", cfg.Store.SSLMode)
		assert.Empty(t, cfg.Store.Namespace)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)
	})
}

func TestNamespacePrefix(t *testing.T) {
	cfg := config.New()
	assert.Equal(t, "ncbitax", cfg.NamespacePrefix())

	cfg.Update([]config.Option{config.OptStoreNamespace(" /axeloide/ ")})
	assert.Equal(t, "axeloide", cfg.NamespacePrefix())
}

func TestSQLitePath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/user")})
	assert.Equal(t,
		filepath.Join("/home/user", ".local", "share", "ncbitax",
			"ncbitax.sqlite"),
		cfg.SQLitePath(),
	)

	cfg.Update([]config.Option{config.OptStorePath("/tmp/tags.sqlite")})
	assert.Equal(t, "/tmp/tags.sqlite", cfg.SQLitePath())
}

func TestOptionEutilsURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps trailing slash",
			input:    "http://localhost:8080/eutils/",
			expected: "http://localhost:8080/eutils/",
		},
		{
			name:     "adds trailing slash",
			input:    " http://localhost:8080/eutils ",
			expected: "http://localhost:8080/eutils/",
		},
		{
			name:     "ignores empty string",
			input:    "   ",
			expected: "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptEutilsURL(tt.input)})
			assert.Equal(t, tt.expected, cfg.Eutils.URL)
		})
	}
}

func TestOptionImportPageSize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid size", 20, 20},
		{"ignores zero", 0, 100},
		{"ignores negative", -5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptImportPageSize(tt.input)})
			assert.Equal(t, tt.expected, cfg.Import.PageSize)
		})
	}
}

func TestOptionStoreType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets postgres", "postgres", "postgres"},
		{"normalizes case", " PostgreS ", "postgres"},
		{"ignores unknown", "fluidinfo", "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptStoreType(tt.input)})
			assert.Equal(t, tt.expected, cfg.Store.Type)
		})
	}
}

func TestOptionStoreSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets require", "require", "require"},
		{"sets verify-full", "VERIFY-FULL", "verify-full"},
		{"ignores invalid", "maybe", "disable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptStoreSSLMode(tt.input)})
			assert.Equal(t, tt.expected, cfg.Store.SSLMode)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets debug", "debug", "debug"},
		{"normalizes case", "WARN", "warn"},
		{"ignores invalid", "verbose", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		opts := []config.Option{
			config.OptEutilsURL("http://localhost/eutils/"),
			config.OptEutilsDatabase("taxonomy"),
			config.OptEutilsEmail("me@example.org"),
			config.OptEutilsAPIKey("key"),
			config.OptEutilsTimeoutSec(5),
			config.OptImportTerm("9606[UID]"),
			config.OptImportPageSize(20),
			config.OptImportWithCanonical(true),
			config.OptStoreType("postgres"),
			config.OptStoreHost("db.example.org"),
			config.OptStorePort(5433),
			config.OptStoreUser("tester"),
			config.OptStorePassword("secret"),
			config.OptStoreDatabase("tags"),
			config.OptStoreSSLMode("require"),
			config.OptStoreNamespace("axeloide"),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptMetricsFile("/tmp/ncbitax.prom"),
		}
		original.Update(opts)

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Eutils, newCfg.Eutils)
		assert.Equal(t, original.Import, newCfg.Import)
		assert.Equal(t, original.Store, newCfg.Store)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.MetricsFile, newCfg.MetricsFile)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptHomeDir("/custom/home")})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())
		assert.Equal(t, "", newCfg.HomeDir)
	})
}
