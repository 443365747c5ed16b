package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Code4GovTech/FAQ-Discord-Bot/internal/logging"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/session"
)

// ErrNoChannel is returned when an event cannot be routed to a channel.
var ErrNoChannel = errors.New("no destination channel")

// ErrUnknownEvent is returned for event types the dispatcher does not handle.
var ErrUnknownEvent = errors.New("unknown event type")

// Navigator is the subset of Controller the dispatcher needs.
type Navigator interface {
	Start(ctx context.Context, channelID string) (domain.NavigationState, error)
	Select(ctx context.Context, channelID, promptID, key string) (domain.NavigationState, error)
	Fail(ctx context.Context, channelID, key string, cause error) (domain.NavigationState, error)
}

// Dispatcher is the single entry point for platform events.
type Dispatcher struct {
	nav         Navigator
	homeChannel string
	sessions    *session.Manager
	logger      *slog.Logger

	readyOnce sync.Once
}

// DispatcherOption configures the Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithSessions serializes presses on the same prompt.
func WithSessions(m *session.Manager) DispatcherOption {
	return func(d *Dispatcher) {
		d.sessions = m
	}
}

// WithDispatcherLogger configures the structured logger.
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher routes events to nav. homeChannel receives the root menu on ready.
func NewDispatcher(nav Navigator, homeChannel string, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		nav:         nav,
		homeChannel: homeChannel,
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch handles one event to completion.
// Per-interaction failures are already reported to the user by the controller; the
// returned error only signals that the channel could not be reached at all.
func (d *Dispatcher) Dispatch(ctx context.Context, ev domain.Event) error {
	switch ev.Type {
	case domain.EventReady:
		return d.ready(ctx)

	case domain.EventInvoke:
		if ev.ChannelID == "" {
			return fmt.Errorf("%w for invoke %s", ErrNoChannel, ev.InteractionID)
		}
		_, err := d.nav.Start(ctx, ev.ChannelID)
		return err

	case domain.EventSelect:
		if ev.ChannelID == "" {
			return fmt.Errorf("%w for select %s", ErrNoChannel, ev.InteractionID)
		}
		run := func(ctx context.Context) error {
			_, err := d.nav.Select(ctx, ev.ChannelID, ev.MessageID, ev.Key)
			return err
		}
		if d.sessions == nil {
			return run(ctx)
		}
		err := d.sessions.WithLock(ctx, ev.ChannelID+"/"+ev.MessageID, run)
		if errors.Is(err, session.ErrLockUnavailable) {
			// The press was already acknowledged; the user must still see an outcome.
			d.logger.Warn("selection not run, lock unavailable", "channel_id", ev.ChannelID, "key", ev.Key, "err", err)
			_, err = d.nav.Fail(ctx, ev.ChannelID, ev.Key, err)
		}
		return err

	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

// ready posts the root menu into the home channel, once per process.
// Gateway reconnects emit ready again; they must not post a second menu.
func (d *Dispatcher) ready(ctx context.Context) error {
	if d.homeChannel == "" {
		return ErrNoChannel
	}
	var err error
	fired := false
	d.readyOnce.Do(func() {
		fired = true
		_, err = d.nav.Start(ctx, d.homeChannel)
	})
	if !fired {
		d.logger.Debug("ready event ignored, root menu already posted", "channel_id", d.homeChannel)
	}
	return err
}
