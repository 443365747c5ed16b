package ports

import (
	"context"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
)

// PromptStore keeps the NavigationState that produced each posted prompt.
// It is diagnostic only: navigation never depends on it, and it is not durable.
type PromptStore interface {
	// Save records the state for a posted prompt, replacing any previous entry.
	Save(ctx context.Context, promptID string, state domain.NavigationState) error

	// Load retrieves the state for a prompt.
	// Returns domain.ErrPromptNotFound if the prompt is unknown.
	Load(ctx context.Context, promptID string) (domain.NavigationState, error)

	// Delete forgets a prompt.
	Delete(ctx context.Context, promptID string) error
}
