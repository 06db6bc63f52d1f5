package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config path and environment constants used by the CLI and loaders.
const (
	ConfigName       = ".atomikwiz"
	ConfigType       = "yaml"
	EnvPrefix        = "ATOMIKWIZ"
	DotEnvFile       = ".env"
	DefaultSiteDir   = "website"
	DefaultWorkers   = 4
	EnvProduction    = "production"
	DefaultUIMode    = "auto"
	defaultEnvString = "local"
)

// Config holds settings loaded from the config file, .env and environment variables.
type Config struct {
	Env       string `mapstructure:"env"`        // local or production; selects the log format
	OutputDir string `mapstructure:"output_dir"` // where build writes the website
	Shuffle   bool   `mapstructure:"shuffle"`    // shuffle questions and their options
	Markdown  bool   `mapstructure:"markdown"`   // render question text as Markdown
	Workers   int    `mapstructure:"workers"`    // concurrent question page renders
	NoColor   bool   `mapstructure:"no_color"`   // disable styled console output
	AssumeYes bool   `mapstructure:"assume_yes"` // overwrite an existing website without asking
	Verbose   bool   `mapstructure:"verbose"`    // write debug logs to stderr
	UI        string `mapstructure:"ui"`         // build progress: auto, live or plain

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// Load reads configuration. An explicit path must exist; otherwise
// .atomikwiz.yml is looked up in the working directory and then in home.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType(ConfigType)
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetDefault("env", defaultEnvString)
	v.SetDefault("output_dir", defaultOutputDir())
	v.SetDefault("shuffle", false)
	v.SetDefault("markdown", false)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("no_color", false)
	v.SetDefault("assume_yes", false)
	v.SetDefault("verbose", false)
	v.SetDefault("ui", DefaultUIMode)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv loads variables from a .env file when one exists.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// defaultOutputDir returns ~/website, falling back to ./website without a home.
func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultSiteDir
	}
	return filepath.Join(home, DefaultSiteDir)
}
