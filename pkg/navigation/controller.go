package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Code4GovTech/FAQ-Discord-Bot/internal/logging"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/ports"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/render"
	"github.com/google/uuid"
)

// Controller drives the key -> fetch -> render -> post cycle.
// It holds no per-interaction state and is safe for concurrent use.
type Controller struct {
	fetcher ports.Fetcher
	sink    ports.Sink
	store   ports.PromptStore
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures the Controller.
type Option func(*Controller)

// WithPromptStore records the state behind every posted prompt.
func WithPromptStore(store ports.PromptStore) Option {
	return func(c *Controller) {
		c.store = store
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController wires a fetcher (the decision API) to a sink (the channel).
func NewController(fetcher ports.Fetcher, sink ports.Sink, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		sink:    sink,
		logger:  logging.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start renders the root menu into channelID.
func (c *Controller) Start(ctx context.Context, channelID string) (domain.NavigationState, error) {
	return c.step(ctx, channelID, "", domain.RootKey)
}

// Select handles a press on promptID whose action targets key.
// Forward and back navigation are the same operation: back simply targets the root key.
func (c *Controller) Select(ctx context.Context, channelID, promptID, key string) (domain.NavigationState, error) {
	return c.step(ctx, channelID, c.origin(ctx, promptID), key)
}

// Fail reports a step that could not run at all (for example a lock that could not be
// taken) the same way as a failed fetch: hooks fire and the failure notice is posted.
func (c *Controller) Fail(ctx context.Context, channelID, key string, cause error) (domain.NavigationState, error) {
	log := c.logger.With(
		"trace_id", uuid.NewString(),
		"channel_id", channelID,
		"key", key,
	)
	return c.fail(ctx, log, &domain.StepEvent{
		Timestamp: c.now(),
		ChannelID: channelID,
		Key:       key,
	}, cause)
}

// origin returns the key that produced promptID, for logs only.
func (c *Controller) origin(ctx context.Context, promptID string) string {
	if c.store == nil || promptID == "" {
		return ""
	}
	state, err := c.store.Load(ctx, promptID)
	if err != nil {
		if !errors.Is(err, domain.ErrPromptNotFound) {
			c.logger.Debug("prompt store lookup failed", "prompt_id", promptID, "err", err)
		}
		return ""
	}
	return state.CurrentKey
}

// step runs AwaitingResponse(key) to completion.
// Fetch and render failures are converted into the failure notice; the returned error is
// non-nil only when nothing at all could be delivered to the channel.
func (c *Controller) step(ctx context.Context, channelID, fromKey, key string) (domain.NavigationState, error) {
	log := c.logger.With(
		"trace_id", uuid.NewString(),
		"channel_id", channelID,
		"key", key,
	)
	if fromKey != "" {
		log = log.With("from_key", fromKey)
	}
	log.Debug("navigation step", "phase", domain.PhaseAwaitingResponse)

	event := &domain.StepEvent{
		Timestamp: c.now(),
		ChannelID: channelID,
		FromKey:   fromKey,
		Key:       key,
	}

	resp, err := c.fetcher.Fetch(ctx, key)
	event.Duration = c.now().Sub(event.Timestamp)
	event.Err = err
	if c.hooks.OnFetch != nil {
		c.hooks.OnFetch(ctx, event)
	}

	var prompt domain.Prompt
	if err == nil {
		prompt, err = render.Render(resp, key == domain.RootKey)
	}
	if err != nil {
		return c.fail(ctx, log, event, err)
	}

	promptID, err := c.sink.Post(ctx, channelID, prompt)
	if err != nil {
		return c.fail(ctx, log, event, fmt.Errorf("failed to post prompt: %w", err))
	}

	next := domain.Displayed(key, resp.Kind)
	event.Kind = resp.Kind
	if c.store != nil && promptID != "" {
		if err := c.store.Save(ctx, promptID, next); err != nil {
			log.Warn("failed to record prompt state", "prompt_id", promptID, "err", err)
		}
	}
	if c.hooks.OnDisplay != nil {
		c.hooks.OnDisplay(ctx, event)
	}
	log.Info("prompt displayed", "phase", next.Phase, "prompt_id", promptID, "actions", len(prompt.Actions))
	return next, nil
}

func (c *Controller) fail(ctx context.Context, log *slog.Logger, event *domain.StepEvent, cause error) (domain.NavigationState, error) {
	event.Err = cause
	log.Warn("navigation step failed", "error_kind", domain.ErrorKind(cause), "err", cause)
	if c.hooks.OnFailure != nil {
		c.hooks.OnFailure(ctx, event)
	}

	state := domain.Failed(event.Key)
	if _, err := c.sink.Post(ctx, event.ChannelID, render.FailureNotice()); err != nil {
		log.Error("failed to post failure notice", "err", err)
		return state, fmt.Errorf("failed to post failure notice: %w", err)
	}
	return state, nil
}
