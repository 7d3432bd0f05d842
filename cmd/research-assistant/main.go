// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-assistant CLI.
// The ask and repl commands route free-form input; search, fetch, lookup
// and assistant invoke each service directly; serve exposes the same
// operations over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/research-assistant/internal/assistant"
	"github.com/pdiddy/research-assistant/internal/logging"
	"github.com/pdiddy/research-assistant/internal/secrets"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultUserAgent = "research-assistant/0.1"

// Process-wide state populated by PersistentPreRunE.
var (
	appConfig types.AppConfig
	logger    = zap.NewNop()
)

// rootCmd is the base command for the research-assistant CLI.
var rootCmd = &cobra.Command{
	Use:   "research-assistant",
	Short: "Search arXiv, cache paper metadata, and ask research questions",
	Long: `research-assistant searches arXiv for papers on a topic and caches their
metadata under papers/<topic>/papers_info.json. A single input can be a
paper ID (looked up in the cache, then on arXiv) or a question, which is
forwarded to Gemini.

Use "ask" for one-off input, "repl" for an interactive session, and
"serve" for the HTTP API. The search, fetch, lookup and assistant
subcommands call each service directly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		l, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		logger = l

		key, err := secrets.GeminiKey(cfg.Assistant.APIKey, ".secrets/", logger)
		if err != nil {
			return err
		}
		cfg.Assistant.APIKey = key
		appConfig = cfg

		if cfgFile := viper.ConfigFileUsed(); cfgFile != "" {
			logger.Debug("using config file", zap.String("path", cfgFile))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./research-assistant.yaml or ~/.config/research-assistant/config.yaml)")
	rootCmd.PersistentFlags().String("papers-dir", "", "root directory of the topic cache (default \"papers\")")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	viper.BindPFlag("papers_dir", rootCmd.PersistentFlags().Lookup("papers-dir"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// setDefaults registers every config key so environment overrides are
// visible to Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("papers_dir", "papers")
	v.SetDefault("search.max_results", 5)
	v.SetDefault("search.timeout", 60*time.Second)
	v.SetDefault("search.user_agent", defaultUserAgent)
	v.SetDefault("assistant.model", assistant.DefaultModel)
	v.SetDefault("assistant.api_key", "")
	v.SetDefault("assistant.hate_speech_threshold", assistant.DefaultThreshold)
	v.SetDefault("assistant.harassment_threshold", assistant.DefaultThreshold)
	v.SetDefault("assistant.rate_limit_cooldown", assistant.DefaultCooldown)
	v.SetDefault("assistant.locale", assistant.DefaultLocale)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("server.addr", ":8080")
}

// bindEnv sets the env prefix and the provider-standard key variables.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("RESEARCH_ASSISTANT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("assistant.api_key", "RESEARCH_ASSISTANT_ASSISTANT_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-assistant")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-assistant"))
		}
	}

	setDefaults(viper.GetViper())
	bindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

// loadConfig decodes the global viper state into an AppConfig.
func loadConfig() (types.AppConfig, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return types.AppConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
