package ports

import (
	"context"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
)

// Sink posts rendered prompts into a destination channel.
// Every call is an independent append; prior messages are never mutated.
type Sink interface {
	// Post sends the prompt and returns the platform identifier of the new message.
	Post(ctx context.Context, channelID string, prompt domain.Prompt) (string, error)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(ctx context.Context, channelID string, prompt domain.Prompt) (string, error)

// Post calls f(ctx, channelID, prompt).
func (f SinkFunc) Post(ctx context.Context, channelID string, prompt domain.Prompt) (string, error) {
	return f(ctx, channelID, prompt)
}
