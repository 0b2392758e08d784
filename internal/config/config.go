// Package config loads settings from an optional YAML file, YAHTZEE_*
// environment variables and command line flags, in rising precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Game    GameConfig    `mapstructure:"game"`
	Storage StorageConfig `mapstructure:"storage"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
}

type GameConfig struct {
	// Seed drives every roll; 0 derives one from the clock.
	Seed uint64 `mapstructure:"seed"`
	// Human selects who plays the human seat: console, computer or random.
	Human string `mapstructure:"human"`
}

type StorageConfig struct {
	// Driver is one of file, sqlite, redis or none.
	Driver     string      `mapstructure:"driver"`
	Dir        string      `mapstructure:"dir"`
	SQLitePath string      `mapstructure:"sqlite_path"`
	Redis      RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

const envPrefix = "YAHTZEE"

var (
	humanModes     = []string{"console", "computer", "random"}
	storageDrivers = []string{"file", "sqlite", "redis", "none"}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "yahtzee")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.human", "console")
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.dir", "saves")
	v.SetDefault("storage.sqlite_path", "yahtzee.db")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.prefix", "yahtzee:")
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.Uint64("seed", 0, "random seed, 0 for a time based seed")
	fs.String("human", "", "who plays the human seat: console, computer or random")
	fs.String("storage", "", "storage driver: file, sqlite, redis or none")
	fs.String("storage-dir", "", "directory for the file storage driver")
	fs.String("sqlite-path", "", "database file for the sqlite storage driver")
	fs.String("redis-addr", "", "address for the redis storage driver")
}

var flagKeys = map[string]string{
	"log-level":   "app.log_level",
	"seed":        "game.seed",
	"human":       "game.human",
	"storage":     "storage.driver",
	"storage-dir": "storage.dir",
	"sqlite-path": "storage.sqlite_path",
	"redis-addr":  "storage.redis.addr",
}

// Load reads configPath, if not empty, then applies the environment and
// any flags set on fs. fs may be nil.
func Load(configPath string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if !slices.Contains(humanModes, c.Game.Human) {
		return fmt.Errorf("%w: game.human %q not one of %v", ErrInvalid, c.Game.Human, humanModes)
	}
	if !slices.Contains(storageDrivers, c.Storage.Driver) {
		return fmt.Errorf("%w: storage.driver %q not one of %v", ErrInvalid, c.Storage.Driver, storageDrivers)
	}
	return nil
}
