package profile

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Common errors
var (
	ErrProfileNotFound = errors.New("profile not found")
)

// Service resolves sessions and account ids to identities, caching hits
type Service struct {
	store Store
	cache *cache.Cache
}

// NewService creates a new profile service with a TTL cache in front of the store
func NewService(store Store, ttl time.Duration) *Service {
	return &Service{
		store: store,
		cache: cache.New(ttl, 2*ttl),
	}
}

// BySession resolves the caller's session id to an identity
func (s *Service) BySession(ctx context.Context, sessionID string) (*Identity, error) {
	key := "sid:" + sessionID
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*Identity), nil
	}

	identity, err := s.store.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, ErrProfileNotFound
	}

	s.remember(identity)
	return identity, nil
}

// ByAccountID resolves an account id to an identity
func (s *Service) ByAccountID(ctx context.Context, aid int64) (*Identity, error) {
	key := "aid:" + strconv.FormatInt(aid, 10)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*Identity), nil
	}

	identity, err := s.store.GetByAccountID(ctx, aid)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, ErrProfileNotFound
	}

	s.remember(identity)
	return identity, nil
}

func (s *Service) remember(identity *Identity) {
	s.cache.SetDefault("sid:"+identity.ProfileID, identity)
	s.cache.SetDefault("aid:"+strconv.FormatInt(identity.AccountID, 10), identity)
}
