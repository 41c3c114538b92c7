package config

import (
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_dashboard/environment"

	"go.uber.org/config"
)

// directory holding the YAML config files, relative to the working directory
var configDir = "."

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name  string      `yaml:"name"`
	API   APIConfig   `yaml:"api"`
	Toast ToastConfig `yaml:"toast"`
	Auth  AuthConfig  `yaml:"auth"`
}

// APIConfig stores the configuration of the connection to the backend REST API
type APIConfig struct {
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// ToastConfig stores the configuration of the toast notifications
type ToastConfig struct {
	// HideAfter is how long a toast stays visible before it is hidden automatically
	HideAfter time.Duration `yaml:"hide_after"`
	// SessionIdleTimeout is how long a visitor's notifier is kept without any listener
	SessionIdleTimeout time.Duration `yaml:"session_idle_timeout"`
	PruneInterval      time.Duration `yaml:"prune_interval"`
}

// AuthConfig stores the configuration of the authentication cookie
type AuthConfig struct {
	CookieMaxAge int `yaml:"cookie_max_age"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	configFiles := []config.YAMLOption{config.File(filepath.Join(configDir, "base.yaml"))}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, config.File(filepath.Join(configDir, "production.yaml")))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.File(filepath.Join(configDir, "development.yaml")))
	}

	configProvider, err := config.NewYAML(configFiles...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load config files")
	}

	var cfg AppConfig
	err = configProvider.Get(config.Root).Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate app config")
	}

	return &cfg, nil
}
