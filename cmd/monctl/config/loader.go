package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/concave-dev/monctl/internal/config"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// GlobalConfigDir is the directory for the per-user config file.
	GlobalConfigDir = ".config/monctl"
	// GlobalConfigFile is the per-user config file name.
	GlobalConfigFile = "config.yaml"
)

// fileKeys are the options that may come from a config file or environment.
// Flags given on the command line always win.
var fileKeys = []string{"host", "port", "user", "password", "url", "log-level", "timeout", "output"}

// Load fills opts from flags, MONCTL_* environment variables and the config
// file, in that order of precedence.
func Load(flags *pflag.FlagSet, opts *Options) error {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range fileKeys {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag --%s: %w", key, err)
			}
		}
	}

	path, err := FindConfigFile(opts.ConfigFile)
	if err != nil {
		return err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	opts.Host = v.GetString("host")
	opts.Port = v.GetInt("port")
	opts.User = v.GetString("user")
	opts.Password = v.GetString("password")
	opts.URL = v.GetString("url")
	opts.LogLevel = v.GetString("log-level")
	opts.Timeout = v.GetInt("timeout")
	opts.Output = v.GetString("output")
	return nil
}

// FindConfigFile returns the explicit path if given (it must exist), otherwise
// ~/.config/monctl/config.yaml when present, otherwise "".
func FindConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", nil
	}
	global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}
	return "", nil
}
