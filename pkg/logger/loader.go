package logger

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// LoadConfig loads logger configuration from a JSON file, with ROTALOG_*
// environment variables taking precedence over file values. A missing file
// is not an error: the defaults still apply and environment variables still
// override them, so callers can ship without a config file and still log.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix("ROTALOG")
	v.AutomaticEnv()

	v.SetDefault("format", cfg.Format.String())
	v.SetDefault("console_style", cfg.ConsoleStyle.String())
	v.SetDefault("level", "debug")
	v.SetDefault("directory", cfg.Directory)
	v.SetDefault("max_bytes", cfg.MaxBytes)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("json")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	format, err := ParseFormat(v.GetString("format"))
	if err != nil {
		return Config{}, err
	}
	style, err := ParseConsoleStyle(v.GetString("console_style"))
	if err != nil {
		return Config{}, err
	}
	level, err := ParseLevel(v.GetString("level"))
	if err != nil {
		return Config{}, err
	}

	cfg.Format = format
	cfg.ConsoleStyle = style
	cfg.Level = level
	cfg.DisableConsole = v.GetBool("disable_console")
	cfg.DisableFile = v.GetBool("disable_file")
	cfg.Label = v.GetString("label")
	cfg.Directory = v.GetString("directory")
	cfg.MaxBytes = v.GetInt64("max_bytes")
	cfg.Redaction = v.GetBool("redaction")

	return cfg, nil
}
