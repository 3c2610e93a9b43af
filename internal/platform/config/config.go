package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"

	// FileEnv carries the config file path from the client to the blocker
	// plugin process.
	FileEnv = "FOCUSFLOW_CONFIG"

	envPrefix = "FOCUSFLOW"
	fileName  = "focusflow"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Log       LogConfig       `mapstructure:"log"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Client    ClientConfig    `mapstructure:"client"`

	// File is the config file that was read, empty when only defaults and
	// environment were used.
	File string `mapstructure:"-"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type StoreConfig struct {
	Driver        string `mapstructure:"driver"`
	SQLitePath    string `mapstructure:"sqlite_path"`
	MongoURI      string `mapstructure:"mongo_uri"`
	MongoDatabase string `mapstructure:"mongo_database"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type AnalyticsConfig struct {
	Timezone string `mapstructure:"timezone"`
}

type ClientConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	Token      string `mapstructure:"token"`
	UserID     string `mapstructure:"user_id"`
	StateDir   string `mapstructure:"state_dir"`
	PluginsDir string `mapstructure:"plugins_dir"`
}

// SettingsPath is the per-user settings file kept next to the client state.
func (c ClientConfig) SettingsPath() string {
	return filepath.Join(c.StateDir, "settings.yaml")
}

// ActiveSessionPath caches the running session between invocations.
func (c ClientConfig) ActiveSessionPath() string {
	return filepath.Join(c.StateDir, "active-session.json")
}

// ExtensionStatePath is where the blocker plugin persists its rule state.
func (c ClientConfig) ExtensionStatePath() string {
	return filepath.Join(c.StateDir, "extension-state.json")
}

// DefaultPath returns ~/.config/focusflow/focusflow.yaml.
func DefaultPath() string {
	return filepath.Join(configHome(), "focusflow", fileName+".yaml")
}

// Load reads configuration from path (or the default location when path is
// empty), then applies FOCUSFLOW_* environment overrides. A missing default
// file is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	cfg.Store.SQLitePath = expandPath(cfg.Store.SQLitePath)
	cfg.Client.StateDir = expandPath(cfg.Client.StateDir)
	cfg.Client.PluginsDir = expandPath(cfg.Client.PluginsDir)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by FileEnv, falling back to the default
// location when it is unset.
func LoadFromEnv() (Config, error) {
	return Load(os.Getenv(FileEnv))
}

// WriteDefault writes the default configuration to path, creating parent
// directories as needed.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	v := newViper()
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("store.sqlite_path is required")
		}
	case DriverMongo:
		if c.Store.MongoURI == "" || c.Store.MongoDatabase == "" {
			return fmt.Errorf("store.mongo_uri and store.mongo_database are required")
		}
	default:
		return fmt.Errorf("unknown store driver: %q", c.Store.Driver)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.sqlite_path", "~/.local/share/focusflow/focusflow.db")
	v.SetDefault("store.mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("store.mongo_database", "focusflow")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("analytics.timezone", "")
	v.SetDefault("client.base_url", "http://127.0.0.1:8080")
	v.SetDefault("client.token", "")
	v.SetDefault("client.user_id", "")
	v.SetDefault("client.state_dir", "~/.local/state/focusflow")
	v.SetDefault("client.plugins_dir", filepath.Join(configHome(), "focusflow", "plugins"))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func configHome() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return expandPath("~/.config")
}

func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
