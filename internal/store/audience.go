package store

import (
	"fmt"
	"sync"

	"voltline/internal/domain"
)

// AudienceStore tracks which storefront segment the visitor is browsing.
// It only drives catalog display, never order semantics.
type AudienceStore struct {
	mu      sync.Mutex
	current domain.Audience
	subs    map[int]func(domain.Audience)
	next    int
}

func NewAudienceStore() *AudienceStore {
	return &AudienceStore{
		current: domain.AudienceParticulier,
		subs:    make(map[int]func(domain.Audience)),
	}
}

func (s *AudienceStore) Current() domain.Audience {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *AudienceStore) Set(a domain.Audience) error {
	if a != domain.AudiencePro && a != domain.AudienceParticulier {
		return fmt.Errorf("unknown audience %q", a)
	}

	s.mu.Lock()
	s.current = a
	subs := make([]func(domain.Audience), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(a)
	}
	return nil
}

func (s *AudienceStore) Subscribe(fn func(domain.Audience)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
