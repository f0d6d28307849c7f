package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Storage backends for the identity stores.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	APIURL      string        `mapstructure:"api_url"`      // danted base URL, e.g. http://127.0.0.1:5000
	Home        string        `mapstructure:"home"`         // state directory, e.g. $HOME/.dante
	Backend     string        `mapstructure:"backend"`      // file, redis or memory
	RedisAddr   string        `mapstructure:"redis_addr"`   // used when Backend is redis
	RedisPrefix string        `mapstructure:"redis_prefix"` // key prefix in redis
	Passphrase  string        `mapstructure:"passphrase"`   // seals stored state when set
	Timeout     time.Duration `mapstructure:"timeout"`      // per-request HTTP timeout
	Color       string        `mapstructure:"color"`        // auto, always or never
	Verbose     bool          `mapstructure:"verbose"`
}

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"api_url":    "api-url",
	"home":       "home",
	"backend":    "backend",
	"redis_addr": "redis-addr",
	"passphrase": "passphrase",
	"timeout":    "timeout",
	"color":      "color",
	"verbose":    "verbose",
}

// LoadConfig reads configuration from cfgFile (or $HOME/.dante/config.yaml),
// DANTE_* environment variables and flags, in increasing precedence.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.dante")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("DANTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".dante")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_url", "http://127.0.0.1:5000")
	v.SetDefault("home", "")
	v.SetDefault("backend", BackendFile)
	v.SetDefault("redis_addr", "127.0.0.1:6379")
	v.SetDefault("redis_prefix", "dante:")
	v.SetDefault("passphrase", "")
	v.SetDefault("timeout", 15*time.Second)
	v.SetDefault("color", "auto")
	v.SetDefault("verbose", false)
}

// Validate checks the fields LoadConfig cannot default.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q: must be file, redis or memory", c.Backend)
	}
	if c.APIURL == "" {
		return errors.New("api_url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Backend == BackendRedis && c.RedisAddr == "" {
		return errors.New("redis_addr is required for the redis backend")
	}
	return nil
}
