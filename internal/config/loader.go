package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the compiler reads,
// e.g. MONTHLY_COMPILER_OUTPUT_FORMAT.
const EnvPrefix = "MONTHLY_COMPILER"

// NewViper prepares a viper instance with defaults, environment binding and
// an optional config file. A missing config file is not an error.
func NewViper(cfgFile string) (*viper.Viper, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("monthly-compiler")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

// SetDefaults registers every known key so environment overrides apply.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input.root", "")
	v.SetDefault("input.extensions", DefaultExtensions)
	v.SetDefault("output.dir", "")
	v.SetDefault("output.suffix", DefaultSuffix)
	v.SetDefault("output.format", FormatXLSX)
	v.SetDefault("output.max_sheet_name", DefaultMaxSheetName)
	v.SetDefault("output.summary", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Defaults returns the configuration built from defaults alone. It is not
// validated, so input.root may still be empty.
func Defaults() (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}
	return &cfg, nil
}
