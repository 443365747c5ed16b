package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/ports"
)

// FetcherContractTest is a reusable test suite that verifies if an adapter complies with ports.Fetcher.
// setupData maps navigation keys to the Response the adapter is expected to serve for them.
func FetcherContractTest(t *testing.T, fetcher ports.Fetcher, setupData map[string]domain.Response) {
	t.Helper()
	ctx := context.Background()

	t.Run("Fetch_Success", func(t *testing.T) {
		for key, want := range setupData {
			got, err := fetcher.Fetch(ctx, key)
			if err != nil {
				t.Fatalf("unexpected error fetching %q: %v", key, err)
			}
			if got.Kind != want.Kind {
				t.Fatalf("kind mismatch for %q. got %q, want %q", key, got.Kind, want.Kind)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("fetched response for %q is invalid: %v", key, err)
			}
			switch want.Kind {
			case domain.KindMenu:
				if got.Menu.Question != want.Menu.Question {
					t.Errorf("question mismatch for %q. got %q, want %q", key, got.Menu.Question, want.Menu.Question)
				}
				if len(got.Menu.Options) != len(want.Menu.Options) {
					t.Fatalf("options mismatch for %q. got %v, want %v", key, got.Menu.Options, want.Menu.Options)
				}
				for i := range want.Menu.Options {
					if got.Menu.Options[i] != want.Menu.Options[i] {
						t.Errorf("option %d mismatch for %q. got %q, want %q", i+1, key, got.Menu.Options[i], want.Menu.Options[i])
					}
				}
			case domain.KindAnswer:
				if got.Answer.Answer != want.Answer.Answer {
					t.Errorf("answer mismatch for %q. got %q, want %q", key, got.Answer.Answer, want.Answer.Answer)
				}
			}
		}
	})

	t.Run("Fetch_EmptyKey", func(t *testing.T) {
		_, err := fetcher.Fetch(ctx, "")
		if !errors.Is(err, domain.ErrInvalidKey) {
			t.Errorf("expected ErrInvalidKey for empty key, got %v", err)
		}
	})
}
