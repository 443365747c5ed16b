package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Code4GovTech/FAQ-Discord-Bot/internal/config"
	"github.com/Code4GovTech/FAQ-Discord-Bot/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "faqbot",
	Short: "faqbot answers FAQs in Discord through a menu of buttons",
	Long: `faqbot posts a menu of questions into a Discord channel. Every button press asks the
decision API for the next menu or the final answer, so the whole FAQ tree lives in the API.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Optional config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional dotenv file, ignored when missing")
	rootCmd.PersistentFlags().String("log-level", "", "Override the configured log level (debug, info, warn, error)")
}

// loadConfig reads the configuration selected by the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.Load(config.Options{ConfigFile: configFile, EnvFile: envFile})
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

// newLogger builds the process logger. The level was validated with the config.
func newLogger(cfg *config.Config) *slog.Logger {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return logging.New(level)
}
