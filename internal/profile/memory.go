package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// MemoryStore keeps identities in process memory. It backs local runs without
// a database and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*Identity
}

// NewMemoryStore creates a store preloaded with the given identities
func NewMemoryStore(identities ...*Identity) *MemoryStore {
	s := &MemoryStore{profiles: make(map[string]*Identity)}
	for _, identity := range identities {
		s.Put(identity)
	}
	return s
}

// Put inserts or replaces an identity
func (s *MemoryStore) Put(identity *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *identity
	s.profiles[identity.ProfileID] = &copied
}

// GetByID retrieves an identity by profile id
func (s *MemoryStore) GetByID(_ context.Context, id string) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identity, ok := s.profiles[id]
	if !ok {
		return nil, nil
	}
	copied := *identity
	return &copied, nil
}

// GetByAccountID scans every identity for the account id
func (s *MemoryStore) GetByAccountID(_ context.Context, aid int64) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, identity := range s.profiles {
		if identity.AccountID == aid {
			copied := *identity
			return &copied, nil
		}
	}
	return nil, nil
}

// LoadSeed reads a JSON array of identities from path
func LoadSeed(path string) ([]*Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile seed: %w", err)
	}

	var identities []*Identity
	if err := json.Unmarshal(data, &identities); err != nil {
		return nil, fmt.Errorf("decode profile seed %s: %w", path, err)
	}
	for i, identity := range identities {
		if identity == nil || identity.ProfileID == "" {
			return nil, fmt.Errorf("profile seed entry %d has no _id", i)
		}
	}
	return identities, nil
}
