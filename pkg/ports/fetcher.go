package ports

import (
	"context"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
)

// Fetcher resolves a navigation key into a Response.
type Fetcher interface {
	// Fetch performs exactly one lookup for key.
	// It returns either a valid Response or an error, never a partially populated Response.
	Fetch(ctx context.Context, key string) (domain.Response, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, key string) (domain.Response, error)

// Fetch calls f(ctx, key).
func (f FetcherFunc) Fetch(ctx context.Context, key string) (domain.Response, error) {
	return f(ctx, key)
}
