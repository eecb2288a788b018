package group

import (
	"github.com/samber/lo"

	"github.com/fkhayef/partymatch/internal/profile"
)

// GroupID addresses a group inside the registry. It is never reused.
type GroupID uint64

// CharacterInfo is the character summary captured when a member joins.
// It is not kept in sync with the profile afterwards.
type CharacterInfo struct {
	Nickname         string  `json:"Nickname"`
	Side             string  `json:"Side"`
	Level            int     `json:"Level"`
	MemberCategory   int     `json:"MemberCategory"`
	GameVersion      string  `json:"GameVersion"`
	SavageLockTime   float64 `json:"SavageLockTime"`
	SavageNickname   string  `json:"SavageNickname"`
	HasCoopExtension bool    `json:"hasCoopExtension"`
}

// MemberState is one account's membership in a group
type MemberState struct {
	ProfileID string        `json:"_id"`
	AccountID int64         `json:"aid"`
	Info      CharacterInfo `json:"Info"`
	IsLeader  bool          `json:"isLeader"`
	IsReady   bool          `json:"isReady"`
}

// Invite is a pending request from sender to recipient to join a group
type Invite struct {
	Sender    int64 `json:"sender"`
	Recipient int64 `json:"recipient"`
}

// Group is a transient party. Owner is always a member and the only leader.
type Group struct {
	ID    GroupID
	Owner int64

	members map[int64]*MemberState
	order   []int64
	invites *InviteLedger
}

// NewGroup creates a group whose sole member is its owner
func NewGroup(owner *MemberState) *Group {
	g := &Group{
		Owner:   owner.AccountID,
		members: make(map[int64]*MemberState),
		invites: NewInviteLedger(),
	}
	owner.IsLeader = true
	g.addMember(owner)
	return g
}

// newMemberState snapshots an identity into a member entry
func newMemberState(identity *profile.Identity, leader bool) *MemberState {
	return &MemberState{
		ProfileID: identity.ProfileID,
		AccountID: identity.AccountID,
		Info: CharacterInfo{
			Nickname:         identity.PMC.Nickname,
			Side:             identity.PMC.Side,
			Level:            identity.PMC.Level,
			MemberCategory:   identity.PMC.MemberCategory,
			GameVersion:      identity.Edition,
			SavageLockTime:   identity.Scav.SavageLockTime,
			SavageNickname:   identity.Scav.Nickname,
			HasCoopExtension: true,
		},
		IsLeader: leader,
	}
}

// Size returns the number of members
func (g *Group) Size() int {
	return len(g.order)
}

// HasMember reports whether the account is in the group
func (g *Group) HasMember(aid int64) bool {
	_, ok := g.members[aid]
	return ok
}

// Members returns copies of every member in join order
func (g *Group) Members() []MemberState {
	return lo.Map(g.order, func(aid int64, _ int) MemberState {
		return *g.members[aid]
	})
}

// ProfileIDs returns the push recipients for a broadcast, in join order
func (g *Group) ProfileIDs() []string {
	return lo.Map(g.order, func(aid int64, _ int) string {
		return g.members[aid].ProfileID
	})
}

func (g *Group) addMember(m *MemberState) {
	if _, exists := g.members[m.AccountID]; !exists {
		g.order = append(g.order, m.AccountID)
	}
	g.members[m.AccountID] = m
}

func (g *Group) removeMember(aid int64) (*MemberState, bool) {
	m, ok := g.members[aid]
	if !ok {
		return nil, false
	}
	delete(g.members, aid)
	g.order = lo.Without(g.order, aid)
	return m, true
}

func (g *Group) setReady(aid int64, ready bool) (MemberState, bool) {
	m, ok := g.members[aid]
	if !ok {
		return MemberState{}, false
	}
	m.IsReady = ready
	return *m, true
}

// transferOwnership moves the leader flag to aid, which must be a member
func (g *Group) transferOwnership(aid int64) error {
	next, ok := g.members[aid]
	if !ok {
		return ErrMemberNotFound
	}
	if prev, ok := g.members[g.Owner]; ok {
		prev.IsLeader = false
	}
	next.IsLeader = true
	g.Owner = aid
	return nil
}

// nextOwner is the longest-standing member, used when the owner leaves
func (g *Group) nextOwner() (int64, bool) {
	if len(g.order) == 0 {
		return 0, false
	}
	return g.order[0], true
}

// Snapshot is a read-only view of a group for operators
type Snapshot struct {
	ID             GroupID       `json:"id"`
	Owner          int64         `json:"owner"`
	Members        []MemberState `json:"members"`
	PendingInvites int           `json:"pendingInvites"`
}

func (g *Group) snapshot() Snapshot {
	return Snapshot{
		ID:             g.ID,
		Owner:          g.Owner,
		Members:        g.Members(),
		PendingInvites: g.invites.Len(),
	}
}
