package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Code4GovTech/FAQ-Discord-Bot/internal/metrics"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/adapters/discord"
	httpAdapter "github.com/Code4GovTech/FAQ-Discord-Bot/pkg/adapters/http"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/adapters/memory"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/navigation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Discord and serve the FAQ menu",
	Long: `Connects to the Discord gateway, registers the /menu command and posts the main menu
into the configured channel. Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		guild, _ := cmd.Flags().GetString("guild")
		return runBot(cmd, guild)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("guild", "", "Register /menu in this guild only (propagates immediately)")
}

func runBot(cmd *cobra.Command, guild string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := newLogger(cfg)
	logger.Debug("configuration loaded", "config", fmt.Sprintf("%+v", cfg.Redacted()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	sessions, closeSessions, err := newSessions(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSessions()

	bot, err := discord.New(cfg.DiscordToken,
		discord.WithGuild(guild),
		discord.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	client := newAPIClient(cfg, logger)
	controller := navigation.NewController(client, discord.NewSink(bot.Session()),
		navigation.WithPromptStore(memory.NewStore()),
		navigation.WithLifecycleHooks(m.Hooks()),
		navigation.WithLogger(logger),
	)
	dispatcher := navigation.NewDispatcher(controller, cfg.ChannelID,
		navigation.WithSessions(sessions),
		navigation.WithDispatcherLogger(logger),
	)

	// Channel to listen for errors coming from the ops listener.
	serverErrors := make(chan error, 1)
	var srv *http.Server
	if cfg.MetricsAddr != "" {
		srv = &http.Server{
			Addr: cfg.MetricsAddr,
			Handler: httpAdapter.NewHandler(&httpAdapter.Server{
				Fetcher:  client,
				Ready:    bot.Ready,
				Gatherer: reg,
				Logger:   logger,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("ops server listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErrors <- err
			}
		}()
	}

	if err := bot.Open(ctx, dispatcher); err != nil {
		return err
	}
	logger.Info("faqbot running", "channel_id", cfg.ChannelID, "api_url", cfg.APIURL)

	// Blocking main and waiting for shutdown.
	var runErr error
	select {
	case err := <-serverErrors:
		runErr = fmt.Errorf("ops server: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	if err := bot.Close(); err != nil {
		logger.Warn("failed to close discord session", "err", err)
	}
	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("ops server did not shut down cleanly", "timeout", shutdownTimeout, "err", err)
			_ = srv.Close()
		}
	}
	return runErr
}
