package group

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/partymatch/internal/profile"
)

type delivery struct {
	ProfileID string
	Event     Event
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []delivery
}

func (n *recordingNotifier) Send(profileID string, evt Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, delivery{ProfileID: profileID, Event: evt})
}

func (n *recordingNotifier) to(profileID string) []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	var events []Event
	for _, d := range n.sent {
		if d.ProfileID == profileID {
			events = append(events, d.Event)
		}
	}
	return events
}

func (n *recordingNotifier) ofType(t EventType) []delivery {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []delivery
	for _, d := range n.sent {
		if d.Event.Type() == t {
			out = append(out, d)
		}
	}
	return out
}

func (n *recordingNotifier) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = nil
}

type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("inv-%d", g.next)
}

type fixedIDs struct {
	ids []string
	i   int
}

func (g *fixedIDs) NewID() string {
	id := g.ids[g.i%len(g.ids)]
	g.i++
	return id
}

func identity(pid string, aid int64, nickname string) *profile.Identity {
	return &profile.Identity{
		ProfileID: pid,
		AccountID: aid,
		Edition:   "Edge Of Darkness",
		PMC:       profile.Character{Nickname: nickname, Side: "Bear", Level: 42, MemberCategory: 2},
		Scav:      profile.Character{Nickname: nickname + " Scav", SavageLockTime: 1700000000},
	}
}

type fixture struct {
	svc      *Service
	notifier *recordingNotifier
	store    *profile.MemoryStore
}

func newFixture(t *testing.T, ids IDGenerator) *fixture {
	t.Helper()
	store := profile.NewMemoryStore(
		identity("pid-a", 10, "Alpha"),
		identity("pid-b", 20, "Bravo"),
		identity("pid-c", 30, "Charlie"),
		identity("pid-d", 40, "Delta"),
	)
	notifier := &recordingNotifier{}
	if ids == nil {
		ids = &sequenceIDs{}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(profile.NewService(store, time.Minute), notifier, ids, logger)
	return &fixture{svc: svc, notifier: notifier, store: store}
}

// requireInvariants checks the registry-wide invariants
func requireInvariants(t *testing.T, svc *Service) {
	t.Helper()
	svc.mu.Lock()
	defer svc.mu.Unlock()

	seenMembers := make(map[int64]GroupID)
	seenInvites := make(map[string]GroupID)
	for _, g := range svc.registry.All() {
		require.NotZero(t, g.Size(), "group %d is empty but registered", g.ID)
		require.Len(t, g.members, len(g.order), "group %d order out of sync", g.ID)

		leaders := 0
		for _, m := range g.Members() {
			if other, dup := seenMembers[m.AccountID]; dup {
				t.Fatalf("account %d in groups %d and %d", m.AccountID, other, g.ID)
			}
			seenMembers[m.AccountID] = g.ID
			if m.IsLeader {
				leaders++
				require.Equal(t, g.Owner, m.AccountID, "leader is not the owner in group %d", g.ID)
			}
		}
		require.Equal(t, 1, leaders, "group %d has %d leaders", g.ID, leaders)
		require.True(t, g.HasMember(g.Owner), "owner of group %d is not a member", g.ID)

		for _, p := range g.invites.All() {
			if other, dup := seenInvites[p.ID]; dup {
				t.Fatalf("invite %s pending in groups %d and %d", p.ID, other, g.ID)
			}
			seenInvites[p.ID] = g.ID
		}
	}
}

// memberState returns a copy of one member of g, failing the test when absent
func memberState(t *testing.T, g *Group, aid int64) MemberState {
	t.Helper()
	m, ok := lo.Find(g.Members(), func(m MemberState) bool { return m.AccountID == aid })
	require.True(t, ok, "account %d is not a member of group %d", aid, g.ID)
	return m
}
