package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level tend configuration.
type Config struct {
	DBPath        string `mapstructure:"db_path"`
	ModelPath     string `mapstructure:"model_path"`
	DefaultWindow string `mapstructure:"default_window"`
	ListenAddr    string `mapstructure:"listen_addr"`
	Output        Output `mapstructure:"output"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. Environment variables
// prefixed TEND_ override file values; TEND_MODEL_PATH in particular
// relocates the model artifact without touching the config file.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", filepath.Join(DefaultConfigDir, DefaultDBName))
	v.SetDefault("model_path", filepath.Join(DefaultConfigDir, DefaultModelName))
	v.SetDefault("default_window", DefaultWindow)
	v.SetDefault("listen_addr", DefaultListenAddr)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	v.SetEnvPrefix("TEND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.ModelPath = expandPath(cfg.ModelPath)

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
