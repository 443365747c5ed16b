package domain

import (
	"context"
	"time"
)

// EventType defines the category of a platform event.
type EventType string

const (
	// EventReady is emitted once the platform connection is established.
	EventReady EventType = "ready"

	// EventInvoke is a fresh root invocation (e.g. a slash command) in a channel.
	EventInvoke EventType = "invoke"

	// EventSelect is a button press carrying the navigation key of the action.
	EventSelect EventType = "select"
)

// Event is a platform event normalized for the dispatcher.
type Event struct {
	Type          EventType `json:"type"`
	ChannelID     string    `json:"channel_id,omitempty"`
	MessageID     string    `json:"message_id,omitempty"` // prompt the action was pressed on
	Key           string    `json:"key,omitempty"`
	InteractionID string    `json:"interaction_id,omitempty"`
}

// StepEvent describes one navigation step for observability hooks.
type StepEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	ChannelID string        `json:"channel_id"`
	FromKey   string        `json:"from_key,omitempty"`
	Key       string        `json:"key"`
	Kind      ResponseKind  `json:"kind,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
	Err       error         `json:"-"`
}

// LifecycleHooks defines callbacks for navigation observability.
type LifecycleHooks struct {
	OnFetch   func(context.Context, *StepEvent)
	OnDisplay func(context.Context, *StepEvent)
	OnFailure func(context.Context, *StepEvent)
}
