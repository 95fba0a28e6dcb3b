// Package config provides loading and parsing of the mslc configuration
// files using Viper. It defines the launcher.yaml schema, the named
// server profiles of servers.yaml, and the path resolution both share.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/OrzMiku/minecraft-server-launcher-core/internal/logging"
)

// Config represents the full structure of the launcher configuration file.
type Config struct {
	Server  ServerConfig   `mapstructure:"server"`
	Java    JavaConfig     `mapstructure:"java"`
	Console ConsoleConfig  `mapstructure:"console"`
	Log     logging.Config `mapstructure:"log"`
}

// ServerConfig locates the server installation to launch.
type ServerConfig struct {
	Dir      string `mapstructure:"dir"`      // server working directory
	Jar      string `mapstructure:"jar"`      // jar path relative to dir
	Headless bool   `mapstructure:"headless"` // run without the server GUI
}

// JavaConfig selects the JVM used to run the server.
type JavaConfig struct {
	Path string   `mapstructure:"path"` // java binary; empty resolves "java" via PATH
	Args []string `mapstructure:"args"` // JVM arguments
}

// ConsoleConfig selects how the server console is wired to the terminal.
type ConsoleConfig struct {
	Mode string `mapstructure:"mode"` // "inherit" or "proxy"
}

// defaults registers every config key with its default value. Registering
// a key, even empty, is what makes AutomaticEnv pick it up.
func defaults(v *viper.Viper) {
	v.SetDefault("server.dir", "")
	v.SetDefault("server.jar", "")
	v.SetDefault("server.headless", false)
	v.SetDefault("java.path", "")
	v.SetDefault("java.args", []string{})
	v.SetDefault("console.mode", "inherit")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.to_stdout", false)
	v.SetDefault("log.to_stderr", true)
	v.SetDefault("log.to_file", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.compress", false)
}

// Load reads the launcher configuration. With an explicit path the file
// must exist; otherwise the usual locations are searched and a missing
// file just means defaults plus environment.
func Load(path string) (*Config, error) {
	// A .env in the working directory feeds the environment first.
	// Variables already present in the real environment win.
	_ = godotenv.Load()

	v := viper.New()
	defaults(v)

	// Map environment variables to nested keys (MSLC_SERVER_DIR -> server.dir).
	v.SetEnvPrefix("MSLC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("launcher")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".mslc"))
		}
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/mslc")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return &cfg, nil
}

// ResolveConfigPath returns the best path for a named config file.
// It checks, in order:
// 1. $MSLC_CONFIG_DIR/<file> if the variable is set
// 2. ~/.mslc/<file>
// 3. /etc/mslc/<file>
// 4. ./<file>
// Only existing files resolve; a set $MSLC_CONFIG_DIR pins the search
// to that directory.
func ResolveConfigPath(file string) (string, error) {
	if env := os.Getenv("MSLC_CONFIG_DIR"); env != "" {
		envPath := filepath.Join(env, file)
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("no config found for %s in %s", file, env)
	}
	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".mslc", file)
		if _, err := os.Stat(userPath); err == nil {
			return userPath, nil
		}
	}
	systemPath := filepath.Join("/etc/mslc", file)
	if _, err := os.Stat(systemPath); err == nil {
		return systemPath, nil
	}
	if _, err := os.Stat(file); err == nil {
		return file, nil
	}
	return "", fmt.Errorf("no config found for %s", file)
}
