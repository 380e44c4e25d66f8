package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/user-admin-panel/internal/model"
)

// MemoryStore is a map-backed UserStore used by the test suite. It
// enforces the same username uniqueness and returns the same sentinel
// errors as the MySQL implementation.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]model.User // keyed by id
}

// NewMemoryStore builds an empty in-memory user store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]model.User)}
}

func (s *MemoryStore) Create(_ context.Context, u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, other := range s.users {
		if other.Username == u.Username {
			return ErrUsernameExists
		}
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = u
	return nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) GetByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

func (s *MemoryStore) List(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.users[u.ID]
	if !ok {
		return ErrNotFound
	}
	for id, other := range s.users {
		if id != u.ID && other.Username == u.Username {
			return ErrUsernameExists
		}
	}
	u.CreatedAt = prev.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	s.users[u.ID] = u
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}
