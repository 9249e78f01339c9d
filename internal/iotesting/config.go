// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/ncbitax/pkg/config"
	"github.com/spf13/viper"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "ncbitax_test"
)

// GetTestConfig returns a configuration suitable for PostgreSQL integration
// tests. Connection settings come from NCBITAX_STORE_* environment
// variables or defaults, the database name is always TestDatabaseName.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	v := viper.New()
	v.SetEnvPrefix("NCBITAX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := config.New()
	opts := []config.Option{config.OptStoreType("postgres")}
	if s := v.GetString("store.host"); s != "" {
		opts = append(opts, config.OptStoreHost(s))
	}
	if i := v.GetInt("store.port"); i > 0 {
		opts = append(opts, config.OptStorePort(i))
	}
	if s := v.GetString("store.user"); s != "" {
		opts = append(opts, config.OptStoreUser(s))
	}
	if s := v.GetString("store.password"); s != "" {
		opts = append(opts, config.OptStorePassword(s))
	}
	if s := v.GetString("store.ssl_mode"); s != "" {
		opts = append(opts, config.OptStoreSSLMode(s))
	}
	opts = append(opts, config.OptStoreDatabase(TestDatabaseName))
	cfg.Update(opts)
	return cfg
}

// GetTestStoreConfig returns only the store configuration for tests.
func GetTestStoreConfig() *config.StoreConfig {
	cfg := GetTestConfig()
	return &cfg.Store
}

// GetSQLiteConfig returns a configuration of an SQLite store in a
// temporary directory. HomeDir points to the same directory, so tests
// never touch real config, cache or log files.
func GetSQLiteConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(dir),
		config.OptStoreType("sqlite"),
		config.OptStorePath(filepath.Join(dir, "tags.sqlite")),
		config.OptStoreNamespace("test"),
	})
	return cfg
}
