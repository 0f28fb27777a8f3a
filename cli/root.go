// Package cli wires the heartcheck commands.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"heartcheck/config"
)

const version = "heartcheck v0.3.0"

const (
	defaultConfigFile = "config.yaml"
	envFile           = ".env"
)

// options is shared by every subcommand of one root command.
type options struct {
	configFile string
	v          *viper.Viper
	prompter   Prompter
}

// NewRootCommand builds the command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	return newRootCommand(surveyPrompter{})
}

func newRootCommand(prompter Prompter) *cobra.Command {
	opts := &options{v: viper.New(), prompter: prompter}

	root := &cobra.Command{
		Use:   "heartcheck",
		Short: "Heart disease risk prediction form",
		Long: `heartcheck serves a single-page form that collects eleven clinical
attributes and shows the risk of heart disease predicted by a pre-trained
classifier, together with the probability of each outcome.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (HEARTCHECK_*, also read from ./.env)
3. Config file (config.yaml)
4. Defaults`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: ./config.yaml when present)")
	root.PersistentFlags().String("model", "", "path to the model artifact")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = opts.v.BindPFlag("model.path", root.PersistentFlags().Lookup("model"))
	_ = opts.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))

	opts.v.SetEnvPrefix("HEARTCHECK")
	opts.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	opts.v.AutomaticEnv()

	root.AddCommand(
		newServeCommand(opts),
		newPredictCommand(opts),
		newConfigCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// loadConfig reads the YAML file over the defaults, then applies environment
// variables (including ./.env) and flags.
func (o *options) loadConfig() (*config.Config, error) {
	cfg := config.Default()

	path := o.configFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// Variables already in the environment win over the file.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}
	o.applyOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (o *options) applyOverrides(cfg *config.Config) {
	v := o.v
	if v.IsSet("http.port") {
		cfg.HTTP.Port = v.GetInt("http.port")
	}
	if v.IsSet("http.timeout") {
		cfg.HTTP.Timeout = v.GetDuration("http.timeout")
	}
	if v.IsSet("http.rate_limit") {
		cfg.HTTP.RateLimit = v.GetFloat64("http.rate_limit")
	}
	if v.IsSet("model.type") {
		cfg.Model.Type = v.GetString("model.type")
	}
	if v.IsSet("model.path") {
		cfg.Model.Path = v.GetString("model.path")
	}
	if v.IsSet("ui.header_image") {
		cfg.UI.HeaderImage = v.GetString("ui.header_image")
	}
	if v.IsSet("ui.locale") {
		cfg.UI.Locale = v.GetString("ui.locale")
	}
	if v.IsSet("log.level") {
		cfg.Log.Level = v.GetString("log.level")
	}
	if v.IsSet("log.format") {
		cfg.Log.Format = v.GetString("log.format")
	}
	if v.IsSet("log.file") {
		cfg.Log.File = v.GetString("log.file")
	}
}
