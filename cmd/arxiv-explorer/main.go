// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-explorer CLI.
// Subcommands search arXiv, list recent papers, show a single paper,
// and run the web front-end.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/arxiv-explorer/internal/search"
	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// envReplacer maps config keys such as search.page_size to
// ARXIV_EXPLORER_SEARCH_PAGE_SIZE.
var envReplacer = strings.NewReplacer(".", "_")

// logger is built in PersistentPreRunE once --verbose is known.
var logger = zap.NewNop()

// rootCmd is the base command for the arxiv-explorer CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-explorer",
	Short: "Search and browse arXiv papers",
	Long: `arxiv-explorer queries the public arXiv API by keyword, author and
category, ranks keyword results by relevance, and lists recent submissions.
The serve subcommand runs the same searches behind an HTTP front-end.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Info("using config file", zap.String("path", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-explorer.yaml or ~/.config/arxiv-explorer/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log requests and pagination to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-explorer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-explorer"))
		}
	}

	setDefaults(viper.GetViper())
	viper.SetEnvPrefix("ARXIV_EXPLORER")
	viper.SetEnvKeyReplacer(envReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

// setDefaults registers every config key so env vars and Unmarshal see them.
func setDefaults(v *viper.Viper) {
	d := types.DefaultConfig()
	v.SetDefault("search.base_url", d.Search.BaseURL)
	v.SetDefault("search.timeout", d.Search.Timeout)
	v.SetDefault("search.user_agent", d.Search.UserAgent)
	v.SetDefault("search.max_results", d.Search.MaxResults)
	v.SetDefault("search.page_size", d.Search.PageSize)
	v.SetDefault("search.page_delay", d.Search.PageDelay)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.history_size", d.Server.HistorySize)
	v.SetDefault("server.secrets_dir", d.Server.SecretsDir)
}

// loadConfig decodes the merged defaults, file, and environment into a Config.
func loadConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// newClient builds an arXiv client from the loaded configuration.
func newClient() (*search.Client, types.Config, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, cfg, err
	}
	return search.NewClient(cfg.Search, logger), cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.DisableStacktrace = true
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
