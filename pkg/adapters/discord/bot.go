package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/Code4GovTech/FAQ-Discord-Bot/internal/logging"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/bwmarrin/discordgo"
)

// MenuCommand is the slash command that opens a fresh root menu.
var MenuCommand = &discordgo.ApplicationCommand{
	Name:        "menu",
	Description: "Show the FAQ main menu",
}

// Intents the bot needs: guild membership and message posting.
const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

// CommandSyncError reports a failed slash command registration.
// It is logged and never stops the bot: buttons keep working without the command.
type CommandSyncError struct {
	Err error
}

func (e *CommandSyncError) Error() string {
	return fmt.Sprintf("failed to sync application commands: %v", e.Err)
}

func (e *CommandSyncError) Unwrap() error { return e.Err }

// Dispatcher receives domain events decoded from the gateway.
type Dispatcher interface {
	Dispatch(ctx context.Context, ev domain.Event) error
}

// Bot owns the gateway connection and translates its events.
type Bot struct {
	session    *discordgo.Session
	api        Session
	dispatcher Dispatcher
	guildID    string
	logger     *slog.Logger

	ctx   context.Context
	ready atomic.Bool
}

// Option configures the Bot.
type Option func(*Bot)

// WithGuild registers the slash command in one guild instead of globally.
// Guild commands propagate immediately, which is convenient during development.
func WithGuild(guildID string) Option {
	return func(b *Bot) {
		b.guildID = guildID
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		b.logger = logger
	}
}

// New creates a bot for token. The connection is opened by Open.
func New(token string, opts ...Option) (*Bot, error) {
	if token == "" {
		return nil, errors.New("discord token is required")
	}
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	s.Identify.Intents = Intents

	b := newBot(s, nil, opts...)
	b.session = s
	s.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.handleReady(b.ctx, r.User.ID)
	})
	s.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handleInteraction(b.ctx, i.Interaction)
	})
	return b, nil
}

func newBot(api Session, dispatcher Dispatcher, opts ...Option) *Bot {
	b := &Bot{
		api:        api,
		dispatcher: dispatcher,
		logger:     logging.NewNop(),
		ctx:        context.Background(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Session exposes the underlying session, for building a Sink.
func (b *Bot) Session() Session { return b.api }

// Open connects to the gateway and starts feeding events to dispatcher.
// Handlers run with ctx until Close.
func (b *Bot) Open(ctx context.Context, dispatcher Dispatcher) error {
	b.ctx = ctx
	b.dispatcher = dispatcher
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}
	return nil
}

// Close disconnects from the gateway.
func (b *Bot) Close() error {
	b.ready.Store(false)
	return b.session.Close()
}

// Ready reports whether the gateway handshake has completed.
func (b *Bot) Ready() bool { return b.ready.Load() }

func (b *Bot) handleReady(ctx context.Context, appID string) {
	b.logger.Info("discord gateway ready", "app_id", appID)
	if err := b.syncCommands(ctx, appID); err != nil {
		b.logger.Warn("slash command unavailable", "err", err)
	}
	b.ready.Store(true)
	if err := b.dispatcher.Dispatch(ctx, domain.Event{Type: domain.EventReady}); err != nil {
		b.logger.Error("failed to post root menu", "err", err)
	}
}

func (b *Bot) syncCommands(ctx context.Context, appID string) error {
	_, err := b.api.ApplicationCommandBulkOverwrite(appID, b.guildID,
		[]*discordgo.ApplicationCommand{MenuCommand}, discordgo.WithContext(ctx))
	if err != nil {
		return &CommandSyncError{Err: err}
	}
	return nil
}

func (b *Bot) handleInteraction(ctx context.Context, i *discordgo.Interaction) {
	log := b.logger.With("interaction_id", i.ID, "channel_id", i.ChannelID)

	switch i.Type {
	case discordgo.InteractionMessageComponent:
		key, ok := DecodeCustomID(i.MessageComponentData().CustomID)
		if !ok {
			log.Debug("ignoring foreign component", "custom_id", i.MessageComponentData().CustomID)
			return
		}
		// Acknowledge first: the API round trip can exceed the 3s interaction deadline.
		if err := b.api.InteractionRespond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredMessageUpdate,
		}, discordgo.WithContext(ctx)); err != nil {
			log.Warn("failed to acknowledge interaction", "err", err)
		}
		ev := domain.Event{
			Type:          domain.EventSelect,
			ChannelID:     i.ChannelID,
			Key:           key,
			InteractionID: i.ID,
		}
		if i.Message != nil {
			ev.MessageID = i.Message.ID
		}
		if err := b.dispatcher.Dispatch(ctx, ev); err != nil {
			log.Error("failed to handle selection", "key", key, "err", err)
		}

	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name != MenuCommand.Name {
			return
		}
		if err := b.api.InteractionRespond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		}, discordgo.WithContext(ctx)); err != nil {
			log.Warn("failed to acknowledge command", "err", err)
		}
		err := b.dispatcher.Dispatch(ctx, domain.Event{
			Type:          domain.EventInvoke,
			ChannelID:     i.ChannelID,
			InteractionID: i.ID,
		})
		if err != nil {
			log.Error("failed to handle menu command", "err", err)
		}
		// The menu is posted as a regular message; drop the "thinking" placeholder.
		if err := b.api.InteractionResponseDelete(i, discordgo.WithContext(ctx)); err != nil {
			log.Debug("failed to delete command placeholder", "err", err)
		}
	}
}
