package main

import (
	"fmt"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/adapters/console"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/adapters/memory"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/navigation"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/ports"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the FAQ menu in the terminal",
	Long: `Walks the FAQ tree in the terminal exactly as the bot would post it in Discord.
Choices are read from stdin. Uses the configured API unless --fixture points at a YAML menu file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture, _ := cmd.Flags().GetString("fixture")
		return runPreview(cmd, fixture)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringP("fixture", "f", "", "YAML file of canned API responses, keyed by navigation key")
}

func runPreview(cmd *cobra.Command, fixture string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	var fetcher ports.Fetcher
	if fixture != "" {
		f, err := memory.LoadFixtureFile(fixture)
		if err != nil {
			return err
		}
		logger.Debug("serving fixture", "path", fixture, "keys", f.Keys())
		fetcher = f
	} else {
		if err := cfg.ValidateAPI(); err != nil {
			return fmt.Errorf("%w (or pass --fixture)", err)
		}
		fetcher = newAPIClient(cfg, logger)
	}

	out := cmd.OutOrStdout()
	var opts []console.SinkOption
	if console.IsTerminal(out) {
		renderer, err := console.NewMarkdownRenderer()
		if err != nil {
			return err
		}
		profile := termenv.ColorProfile()
		opts = append(opts,
			console.WithRenderer(renderer),
			console.WithColorProfile(profile),
		)
		console.PrintBanner(out, profile)
	}
	sink := console.NewSink(out, opts...)

	controller := navigation.NewController(fetcher, sink,
		navigation.WithPromptStore(memory.NewStore()),
		navigation.WithLogger(logger),
	)
	dispatcher := navigation.NewDispatcher(controller, console.Channel,
		navigation.WithDispatcherLogger(logger),
	)
	return console.NewPreview(dispatcher, sink, cmd.InOrStdin(), out).Run(cmd.Context())
}
