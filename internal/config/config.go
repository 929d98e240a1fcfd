package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the config file and
// environment variables.
type Config struct {
	Env             string `mapstructure:"env"`               // local, dev, production
	DBPath          string `mapstructure:"db_path"`           // SQLite path; empty = XDG default
	User            string `mapstructure:"user"`              // history owner; single-user installs keep the default
	Section         string `mapstructure:"section"`           // default exam section (far, aud, reg)
	ExamDate        string `mapstructure:"exam_date"`         // ISO date, optional
	DailyGoalPoints int    `mapstructure:"daily_goal_points"` // drives the plan's time budget
	ListenAddr      string `mapstructure:"listen_addr"`       // serve command bind address

	// CurriculumFilter restricts practice to topics covered by completed
	// lessons; PreviewMode additionally allows a small lookahead.
	CurriculumFilter bool `mapstructure:"curriculum_filter"`
	PreviewMode      bool `mapstructure:"preview_mode"`
}

// Load reads configuration from an optional config.yaml and CPAPREP_*
// environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	// Every key needs a default registered so AutomaticEnv can bind it
	// during Unmarshal, even the ones that default to empty.
	v.SetDefault("env", "local")
	v.SetDefault("db_path", "")
	v.SetDefault("user", "local")
	v.SetDefault("section", "far")
	v.SetDefault("exam_date", "")
	v.SetDefault("daily_goal_points", 30)
	v.SetDefault("listen_addr", ":8337")
	v.SetDefault("curriculum_filter", true)
	v.SetDefault("preview_mode", true)

	v.SetEnvPrefix("cpaprep")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// configDir resolves $XDG_CONFIG_HOME/cpaprep (or ~/.config/cpaprep).
func configDir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "cpaprep"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cpaprep"), nil
}
