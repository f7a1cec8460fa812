// Package store holds the process-wide working set: the single
// current conversation. Uploads are ephemeral; each new upload
// replaces the previous conversation wholesale and nothing is ever
// persisted.
package store

import (
	"sync"

	"github.com/kotonoha-lab/talklog/internal/conversation"
)

type Store struct {
	mu      sync.RWMutex
	current *conversation.Conversation
}

func New() *Store {
	return &Store{}
}

// Put replaces the working set with conv.
func (s *Store) Put(conv *conversation.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = conv
}

// Current returns the working set, or nil when nothing is loaded.
// The returned conversation is immutable; callers only read it.
func (s *Store) Current() *conversation.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
