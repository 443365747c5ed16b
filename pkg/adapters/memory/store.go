package memory

import (
	"container/list"
	"context"
	"sync"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/ports"
)

// DefaultCapacity is how many prompts the Store remembers before evicting the least recently used.
const DefaultCapacity = 4096

type entry struct {
	promptID string
	state    domain.NavigationState
}

// Store implements ports.PromptStore in memory.
// Safe for concurrent use. Once the capacity is reached the least recently saved or loaded
// entry is evicted, so prompts that are still being pressed keep their state.
type Store struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	data     map[string]*list.Element
}

// Ensure Store implements ports.PromptStore
var _ ports.PromptStore = (*Store)(nil)

// StoreOption configures the Store.
type StoreOption func(*Store)

// WithCapacity bounds the number of remembered prompts. Values < 1 are ignored.
func WithCapacity(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// NewStore creates a new in-memory store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		capacity: DefaultCapacity,
		order:    list.New(),
		data:     make(map[string]*list.Element),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save records the state in memory.
func (s *Store) Save(ctx context.Context, promptID string, state domain.NavigationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.data[promptID]; ok {
		el.Value.(*entry).state = state
		s.order.MoveToBack(el)
		return nil
	}

	s.data[promptID] = s.order.PushBack(&entry{promptID: promptID, state: state})
	for s.order.Len() > s.capacity {
		oldest := s.order.Front()
		s.order.Remove(oldest)
		delete(s.data, oldest.Value.(*entry).promptID)
	}
	return nil
}

// Load retrieves the state from memory.
func (s *Store) Load(ctx context.Context, promptID string) (domain.NavigationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.data[promptID]
	if !ok {
		return domain.NavigationState{}, domain.ErrPromptNotFound
	}
	s.order.MoveToBack(el)
	return el.Value.(*entry).state, nil
}

// Delete removes the state.
func (s *Store) Delete(ctx context.Context, promptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.data[promptID]; ok {
		s.order.Remove(el)
		delete(s.data, promptID)
	}
	return nil
}

// Len returns the number of remembered prompts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
