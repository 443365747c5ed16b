package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Code4GovTech/FAQ-Discord-Bot/internal/logging"
	"github.com/spf13/viper"
)

// ErrConfiguration is wrapped by every ConfigurationError.
var ErrConfiguration = errors.New("invalid configuration")

// ConfigurationError lists every problem found while validating a Config.
// It is fatal: the bot must not connect with an invalid configuration.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrConfiguration, strings.Join(e.Problems, "; "))
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// Config is loaded once at process start and never reloaded.
type Config struct {
	DiscordToken string        `mapstructure:"discord_token"`
	ChannelID    string        `mapstructure:"channel_id"`
	APIURL       string        `mapstructure:"api_url"`
	APITimeout   time.Duration `mapstructure:"api_timeout"`
	LogLevel     string        `mapstructure:"log_level"`
	MetricsAddr  string        `mapstructure:"metrics_addr"`
	RedisAddr    string        `mapstructure:"redis_addr"`
}

// envNames maps config keys to the environment variables that set them.
// The first name of each list is the historical one.
var envNames = map[string][]string{
	"discord_token": {"DISCORD_TOKEN"},
	"channel_id":    {"CHANNELID", "CHANNEL_ID"},
	"api_url":       {"API_URL"},
	"api_timeout":   {"API_TIMEOUT"},
	"log_level":     {"LOG_LEVEL"},
	"metrics_addr":  {"METRICS_ADDR"},
	"redis_addr":    {"REDIS_ADDR"},
}

// Options selects the optional sources merged under the environment.
type Options struct {
	// ConfigFile is an optional yaml/toml/json file. Missing is an error.
	ConfigFile string
	// EnvFile is an optional dotenv file. Missing is ignored.
	EnvFile string
}

// Load reads the configuration. Precedence, lowest first:
// defaults, ConfigFile, EnvFile, process environment.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("api_timeout", "0s")

	for key, names := range envNames {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if opts.EnvFile != "" {
		values, err := readEnvFile(opts.EnvFile)
		if err != nil {
			return nil, err
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", opts.EnvFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigurationError{Problems: []string{err.Error()}}
	}
	cfg.DiscordToken = strings.TrimSpace(cfg.DiscordToken)
	cfg.ChannelID = strings.TrimSpace(cfg.ChannelID)
	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	return &cfg, nil
}

// readEnvFile parses a dotenv file into config keys. A missing file yields no values.
func readEnvFile(path string) (map[string]any, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	values := make(map[string]any)
	for key, names := range envNames {
		for _, name := range names {
			// viper lower-cases keys read from dotenv files.
			if env.IsSet(strings.ToLower(name)) {
				values[key] = env.Get(strings.ToLower(name))
				break
			}
		}
	}
	return values, nil
}

// Validate checks everything the bot needs before connecting.
func (c *Config) Validate() error {
	var problems []string
	if c.DiscordToken == "" {
		problems = append(problems, "discord_token (DISCORD_TOKEN) is required")
	}
	if c.ChannelID == "" {
		problems = append(problems, "channel_id (CHANNELID) is required")
	} else if _, err := strconv.ParseUint(c.ChannelID, 10, 64); err != nil {
		problems = append(problems, fmt.Sprintf("channel_id %q must be a numeric channel id", c.ChannelID))
	}
	problems = append(problems, c.commonProblems()...)
	if len(problems) > 0 {
		return &ConfigurationError{Problems: problems}
	}
	return nil
}

// ValidateAPI checks only what talking to the decision API needs (the preview command).
func (c *Config) ValidateAPI() error {
	if problems := c.commonProblems(); len(problems) > 0 {
		return &ConfigurationError{Problems: problems}
	}
	return nil
}

func (c *Config) commonProblems() []string {
	var problems []string
	if c.APIURL == "" {
		problems = append(problems, "api_url (API_URL) is required")
	} else if u, err := url.Parse(c.APIURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, fmt.Sprintf("api_url %q must be an absolute http(s) URL", c.APIURL))
	}
	if c.APITimeout < 0 {
		problems = append(problems, "api_timeout must not be negative")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	return problems
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.DiscordToken != "" {
		c.DiscordToken = "***"
	}
	return c
}
