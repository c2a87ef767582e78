package memory

import (
	"context"
	"sync"
)

type SubscriberStore struct {
	mu     sync.Mutex
	emails map[string]struct{}
}

func NewSubscriberStore() *SubscriberStore {
	return &SubscriberStore{emails: make(map[string]struct{})}
}

func (s *SubscriberStore) Add(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emails[email]; ok {
		return false, nil
	}
	s.emails[email] = struct{}{}
	return true, nil
}
