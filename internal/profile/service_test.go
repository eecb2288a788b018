package profile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	*MemoryStore
	byID  int
	byAID int
}

func (s *countingStore) GetByID(ctx context.Context, id string) (*Identity, error) {
	s.byID++
	return s.MemoryStore.GetByID(ctx, id)
}

func (s *countingStore) GetByAccountID(ctx context.Context, aid int64) (*Identity, error) {
	s.byAID++
	return s.MemoryStore.GetByAccountID(ctx, aid)
}

func newIdentity(pid string, aid int64, nickname string) *Identity {
	return &Identity{
		ProfileID: pid,
		AccountID: aid,
		Edition:   "Standard",
		PMC:       Character{Nickname: nickname, Side: "Usec", Level: 10},
		Scav:      Character{Nickname: nickname + " scav"},
	}
}

func TestService_BySession(t *testing.T) {
	store := &countingStore{MemoryStore: NewMemoryStore(newIdentity("pid-a", 10, "Alpha"))}
	svc := NewService(store, time.Minute)
	ctx := context.Background()

	identity, err := svc.BySession(ctx, "pid-a")
	require.NoError(t, err)
	assert.Equal(t, int64(10), identity.AccountID)
	assert.Equal(t, "Alpha", identity.PMC.Nickname)

	// Second call is served from cache, including the aid index
	_, err = svc.BySession(ctx, "pid-a")
	require.NoError(t, err)
	_, err = svc.ByAccountID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, store.byID)
	assert.Equal(t, 0, store.byAID)
}

func TestService_NotFound(t *testing.T) {
	svc := NewService(NewMemoryStore(), time.Minute)
	ctx := context.Background()

	_, err := svc.BySession(ctx, "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = svc.ByAccountID(ctx, 99)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore(newIdentity("pid-a", 10, "Alpha"))

	identity, err := store.GetByID(context.Background(), "pid-a")
	require.NoError(t, err)
	identity.PMC.Nickname = "mutated"

	again, err := store.GetByID(context.Background(), "pid-a")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", again.PMC.Nickname)
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	seed := `[{"_id":"pid-a","aid":10,"edition":"Standard","pmc":{"Nickname":"Alpha","Side":"Bear","Level":12}}]`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	identities, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, identities, 1)
	assert.Equal(t, int64(10), identities[0].AccountID)
	assert.Equal(t, "Alpha", identities[0].PMC.Nickname)
}

func TestLoadSeed_MissingProfileID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"aid":10}]`), 0o600))

	_, err := LoadSeed(path)
	assert.Error(t, err)
}
