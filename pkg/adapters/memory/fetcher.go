package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/api"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/ports"
)

// Fetcher implements ports.Fetcher over an in-memory map of raw decision API bodies.
// Bodies go through the same parser as the HTTP client, so fixtures obey the wire contract.
type Fetcher struct {
	mu     sync.RWMutex
	bodies map[string][]byte
}

// Ensure Fetcher implements ports.Fetcher
var _ ports.Fetcher = (*Fetcher)(nil)

// NewFetcher creates a Fetcher from raw JSON bodies keyed by navigation key.
func NewFetcher(data map[string]string) *Fetcher {
	bodies := make(map[string][]byte, len(data))
	for k, v := range data {
		bodies[k] = []byte(v)
	}
	return &Fetcher{bodies: bodies}
}

// NewFromResponses creates a Fetcher from domain objects.
// This handles serialization automatically, improving DX for tests.
func NewFromResponses(responses ...domain.Response) (*Fetcher, error) {
	bodies := make(map[string][]byte, len(responses))
	for _, r := range responses {
		var (
			key     string
			payload any
		)
		switch r.Kind {
		case domain.KindMenu:
			key, payload = r.Menu.Key, r.Menu
		case domain.KindAnswer:
			key, payload = r.Answer.Key, r.Answer
		default:
			return nil, fmt.Errorf("cannot serve %q response", r.Kind)
		}
		if key == "" {
			return nil, fmt.Errorf("response missing key")
		}
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", key, err)
		}
		bodies[key] = b
	}
	return &Fetcher{bodies: bodies}, nil
}

// Fetch serves the body stored for key. Unknown keys behave like an HTTP 404.
func (f *Fetcher) Fetch(ctx context.Context, key string) (domain.Response, error) {
	if key == "" {
		return domain.Response{}, domain.ErrInvalidKey
	}
	if err := ctx.Err(); err != nil {
		return domain.Response{}, &domain.TransportError{Err: err}
	}

	f.mu.RLock()
	body, ok := f.bodies[key]
	f.mu.RUnlock()
	if !ok {
		return domain.Response{}, &domain.TransportError{StatusCode: 404}
	}
	return api.ParseResponse(key, body)
}

// Set replaces the body served for key.
func (f *Fetcher) Set(key, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies[key] = []byte(body)
}

// Keys returns all served navigation keys.
func (f *Fetcher) Keys() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	keys := make([]string, 0, len(f.bodies))
	for k := range f.bodies {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys
}
