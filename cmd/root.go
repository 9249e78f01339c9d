/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/internal/iofs"
	"github.com/gnames/ncbitax/internal/iologger"
	ncbitax "github.com/gnames/ncbitax/pkg"
	"github.com/gnames/ncbitax/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command when called without any
// subcommands.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			ncbitax.Version, ncbitax.Build),
		Use:   "ncbitax",
		Short: "Imports NCBI Taxonomy records into a tag store",
		Long: `ncbitax copies taxa from the NCBI Taxonomy database into a tag store.

Records are found by an Entrez query, downloaded page by page with
NCBI E-utilities and saved as tags of objects named by their lower-case
scientific names. Names with digits or colons are skipped.

The tag store is an SQLite file by default, PostgreSQL is supported as
well. Settings are read from ~/.config/ncbitax/config.yaml and
NCBITAX_* environment variables.

Examples:
  ncbitax create
  ncbitax import --term "Primates[Subtree] AND species[Rank]"
  ncbitax linkout`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "ncbitax version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for ncbitax")

	rootCmd.AddCommand(
		getCreateCmd(),
		getImportCmd(),
		getLinkOutCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	cred, found, err := iofs.ReadCredentials(homeDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if found {
		cfg.Update(cred.Options(cfg))
	}

	// Reconfigure logging with user's settings, appending to the log
	// file started above.
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"credentials", found,
		"store", cfg.Store.Type,
		"namespace", cfg.NamespacePrefix(),
	)
	return nil
}

// runRoot shows the effective configuration.
func runRoot(cmd *cobra.Command, _ []string) error {
	out, err := configYAML(cfg)
	if err != nil {
		return err
	}
	gn.Info("Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir))
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// configYAML renders configuration with secrets masked.
func configYAML(c *config.Config) (string, error) {
	res := *c
	if res.Store.Password != "" {
		res.Store.Password = "*****"
	}
	if res.Eutils.APIKey != "" {
		res.Eutils.APIKey = "*****"
	}
	bs, err := yaml.Marshal(&res)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runContext returns a context that is cancelled by Ctrl-C or SIGTERM.
func runContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("NCBITAX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// E-utilities configuration
	v.BindEnv("eutils.url", "NCBITAX_EUTILS_URL")
	v.BindEnv("eutils.database", "NCBITAX_EUTILS_DATABASE")
	v.BindEnv("eutils.tool", "NCBITAX_EUTILS_TOOL")
	v.BindEnv("eutils.email", "NCBITAX_EUTILS_EMAIL")
	v.BindEnv("eutils.api_key", "NCBITAX_EUTILS_API_KEY")
	v.BindEnv("eutils.timeout_sec", "NCBITAX_EUTILS_TIMEOUT_SEC")

	// Import configuration
	v.BindEnv("import.term", "NCBITAX_IMPORT_TERM")
	v.BindEnv("import.page_size", "NCBITAX_IMPORT_PAGE_SIZE")
	v.BindEnv("import.with_canonical", "NCBITAX_IMPORT_WITH_CANONICAL")

	// Store configuration
	v.BindEnv("store.type", "NCBITAX_STORE_TYPE")
	v.BindEnv("store.path", "NCBITAX_STORE_PATH")
	v.BindEnv("store.host", "NCBITAX_STORE_HOST")
	v.BindEnv("store.port", "NCBITAX_STORE_PORT")
	v.BindEnv("store.user", "NCBITAX_STORE_USER")
	v.BindEnv("store.password", "NCBITAX_STORE_PASSWORD")
	v.BindEnv("store.database", "NCBITAX_STORE_DATABASE")
	v.BindEnv("store.ssl_mode", "NCBITAX_STORE_SSL_MODE")
	v.BindEnv("store.namespace", "NCBITAX_STORE_NAMESPACE")

	// Log configuration
	v.BindEnv("log.level", "NCBITAX_LOG_LEVEL")
	v.BindEnv("log.format", "NCBITAX_LOG_FORMAT")
	v.BindEnv("log.destination", "NCBITAX_LOG_DESTINATION")

	// General configuration
	v.BindEnv("metrics_file", "NCBITAX_METRICS_FILE")

	v.AutomaticEnv()
}
