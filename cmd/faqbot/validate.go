package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration",
	Long:  `Loads the configuration from the environment, the dotenv file and --config, and reports every problem found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		r := cfg.Redacted()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Configuration is valid")
		fmt.Fprintf(out, "  channel_id:   %s\n", r.ChannelID)
		fmt.Fprintf(out, "  api_url:      %s\n", r.APIURL)
		fmt.Fprintf(out, "  api_timeout:  %s\n", r.APITimeout)
		fmt.Fprintf(out, "  log_level:    %s\n", r.LogLevel)
		fmt.Fprintf(out, "  metrics_addr: %s\n", orNone(r.MetricsAddr))
		fmt.Fprintf(out, "  redis_addr:   %s\n", orNone(r.RedisAddr))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func orNone(s string) string {
	if s == "" {
		return "(disabled)"
	}
	return s
}
