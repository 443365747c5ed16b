package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Code4GovTech/FAQ-Discord-Bot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv isolates tests from the developer's shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"DISCORD_TOKEN", "CHANNELID", "CHANNEL_ID", "API_URL", "API_TIMEOUT",
		"LOG_LEVEL", "METRICS_ADDR", "REDIS_ADDR",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", " secret ")
	t.Setenv("CHANNELID", "123456789012345678")
	t.Setenv("API_URL", "https://faq.example.org/api")
	t.Setenv("API_TIMEOUT", "5s")

	cfg, err := config.Load(config.Options{})
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.DiscordToken)
	assert.Equal(t, "123456789012345678", cfg.ChannelID)
	assert.Equal(t, "https://faq.example.org/api", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_AlternateChannelVariable(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHANNEL_ID", "42")

	cfg, err := config.Load(config.Options{})
	require.NoError(t, err)
	assert.Equal(t, "42", cfg.ChannelID)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "DISCORD_TOKEN=from-file\nCHANNELID=1\nAPI_URL=http://localhost:8000/choice\n")
	t.Setenv("API_URL", "http://override:9000/choice")

	cfg, err := config.Load(config.Options{EnvFile: envFile})
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.DiscordToken)
	assert.Equal(t, "1", cfg.ChannelID)
	assert.Equal(t, "http://override:9000/choice", cfg.APIURL, "process env wins over .env")
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(config.Options{EnvFile: filepath.Join(t.TempDir(), ".env")})
	assert.NoError(t, err)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "faqbot.yaml", `
discord_token: yaml-token
channel_id: 987
api_url: https://faq.example.org/api
log_level: debug
metrics_addr: ":9090"
`)
	cfg, err := config.Load(config.Options{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "yaml-token", cfg.DiscordToken)
	assert.Equal(t, "987", cfg.ChannelID)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingConfigFile(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(config.Options{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		DiscordToken: "t",
		ChannelID:    "123",
		APIURL:       "https://faq.example.org/api",
		LogLevel:     "info",
	}
	require.NoError(t, valid.Validate())

	tests := map[string]func(c *config.Config){
		"missing token":     func(c *config.Config) { c.DiscordToken = "" },
		"missing channel":   func(c *config.Config) { c.ChannelID = "" },
		"non-numeric chan":  func(c *config.Config) { c.ChannelID = "general" },
		"missing api url":   func(c *config.Config) { c.APIURL = "" },
		"relative api url":  func(c *config.Config) { c.APIURL = "/api" },
		"ftp api url":       func(c *config.Config) { c.APIURL = "ftp://example.org" },
		"negative timeout":  func(c *config.Config) { c.APITimeout = -time.Second },
		"unknown log level": func(c *config.Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			mutate(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, config.ErrConfiguration)

			var ce *config.ConfigurationError
			require.ErrorAs(t, err, &ce)
			assert.Len(t, ce.Problems, 1)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	err := (&config.Config{}).Validate()
	var ce *config.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Len(t, ce.Problems, 3)
}

func TestValidateAPI_IgnoresPlatformSettings(t *testing.T) {
	cfg := config.Config{APIURL: "http://localhost:8000"}
	assert.NoError(t, cfg.ValidateAPI())
	assert.Error(t, cfg.Validate())
}

func TestRedacted(t *testing.T) {
	cfg := config.Config{DiscordToken: "secret", ChannelID: "1"}
	r := cfg.Redacted()
	assert.Equal(t, "***", r.DiscordToken)
	assert.Equal(t, "secret", cfg.DiscordToken, "original untouched")
}
