package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Planner PlannerConfig `mapstructure:"planner"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
}

// PlannerConfig points at the planning documents
type PlannerConfig struct {
	ConfDir        string `mapstructure:"conf_dir"`
	VacationConfig string `mapstructure:"vacation_config"`
	HolidayConfig  string `mapstructure:"holiday_config"`
}

// OutputConfig controls generated artifacts
type OutputConfig struct {
	Dir             string `mapstructure:"dir"`
	IncludeWeekends bool   `mapstructure:"include_weekends"`
}

// LogConfig controls logging destination and verbosity
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads application configuration from file. A missing config file is
// not an error; defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("planner.conf_dir", "conf")
	v.SetDefault("output.dir", "vacationplans")
	v.SetDefault("output.include_weekends", true)
	v.SetDefault("log.level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.vacation-planer")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Planner.ConfDir == "" {
		return fmt.Errorf("planner.conf_dir is required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	return nil
}
