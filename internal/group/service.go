package group

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/fkhayef/partymatch/internal/profile"
)

// Common errors
var (
	ErrGroupNotFound    = errors.New("group not found")
	ErrInviteNotFound   = errors.New("invite not found")
	ErrMemberNotFound   = errors.New("member not found")
	ErrNotAuthorized    = errors.New("not authorized to perform this action")
	ErrInvalidAccountID = errors.New("invalid account id")
	ErrAlreadyInGroup   = errors.New("account is already a member of this group")
	ErrDuplicateInvite  = errors.New("invite id already pending")
)

// maxIDAttempts bounds regeneration when a generated invite id is still pending
const maxIDAttempts = 8

// Service coordinates party formation. A single mutex serialises every
// operation, so membership changes and the broadcast that follows them
// observe the same member list.
type Service struct {
	mu       sync.Mutex
	registry *Registry

	identities IdentityLookup
	notifier   Notifier
	ids        IDGenerator
	logger     *slog.Logger
}

// NewService creates a new party coordinator
func NewService(identities IdentityLookup, notifier Notifier, ids IDGenerator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		registry:   NewRegistry(),
		identities: identities,
		notifier:   notifier,
		ids:        ids,
		logger:     logger.With("module", "group"),
	}
}

// SendInvite invites recipientAID into the sender's group, creating the group
// when the sender has none. A member who does not own the group may invite too.
func (s *Service) SendInvite(ctx context.Context, sessionID, recipientAID string, inLobby bool) (string, error) {
	sender, err := s.caller(ctx, "send invite", sessionID)
	if err != nil {
		return "", err
	}

	recipientID, err := parseAccountID(recipientAID)
	if err != nil {
		s.logger.Warn("send invite: bad recipient", "aid", sender.AccountID, "to", recipientAID)
		return "", err
	}

	s.logger.Info("send invite", "aid", sender.AccountID, "to", recipientID, "in_lobby", inLobby)

	// Resolved before locking; an unknown recipient still gets an invite but no push
	recipient, err := s.identities.ByAccountID(ctx, recipientID)
	if err != nil {
		s.logger.Warn("send invite: recipient unresolved, push dropped", "to", recipientID, "error", err)
		recipient = nil
	}

	s.mu.Lock()
	g, ok := s.registry.FindByOwner(sender.AccountID)
	if !ok {
		g, ok = s.registry.FindByMember(sender.AccountID)
	}
	if !ok {
		g = NewGroup(newMemberState(sender, true))
		s.registry.Add(g)
		s.logger.Info("send invite: created group", "owner", sender.AccountID, "group", g.ID, "active_groups", s.registry.Len())
	}

	inviteID, err := s.newInviteID()
	if err == nil {
		err = g.invites.Add(inviteID, Invite{Sender: sender.AccountID, Recipient: recipientID})
	}
	if err != nil {
		s.mu.Unlock()
		s.logger.Error("send invite: could not allocate invite id", "aid", sender.AccountID, "error", err)
		return "", err
	}
	members := g.Members()
	s.mu.Unlock()

	if recipient != nil {
		s.notifier.Send(recipient.ProfileID, &InviteSendEvent{
			RequestID: inviteID,
			From:      sender.AccountID,
			Members:   members,
		})
	}

	return inviteID, nil
}

// AcceptInvite joins the caller to the group holding the invite and returns
// the updated member list. The caller is not checked against the invite's
// recipient.
func (s *Service) AcceptInvite(ctx context.Context, sessionID, inviteID string) ([]MemberState, error) {
	accepter, err := s.caller(ctx, "accept invite", sessionID)
	if err != nil {
		return []MemberState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.registry.FindByInvite(inviteID)
	if !ok {
		s.logger.Warn("accept invite: invite not found", "invite_id", inviteID, "aid", accepter.AccountID)
		return []MemberState{}, ErrInviteNotFound
	}

	invite, _ := g.invites.Remove(inviteID)
	if invite.Recipient != accepter.AccountID {
		s.logger.Warn("accept invite: accepted by an account other than the recipient",
			"invite_id", inviteID, "recipient", invite.Recipient, "aid", accepter.AccountID)
	}

	if g.HasMember(accepter.AccountID) {
		s.logger.Warn("accept invite: already a member", "invite_id", inviteID, "aid", accepter.AccountID)
		return []MemberState{}, ErrAlreadyInGroup
	}

	// An account belongs to one group at a time
	if previous, ok := s.registry.FindByMember(accepter.AccountID); ok {
		s.logger.Info("accept invite: leaving previous group", "aid", accepter.AccountID, "group", previous.ID)
		s.removeMember(previous, accepter.AccountID)
	}

	member := newMemberState(accepter, false)
	g.addMember(member)

	s.broadcast(g, &InviteAcceptEvent{
		AccountID: member.AccountID,
		ProfileID: member.ProfileID,
		Info:      member.Info,
		IsReady:   false,
	})

	s.logger.Info("accept invite", "invite_id", inviteID, "aid", accepter.AccountID, "owner", g.Owner)

	return g.Members(), nil
}

// CancelInvite withdraws a pending invite and tells its recipient
func (s *Service) CancelInvite(ctx context.Context, sessionID, inviteID string) error {
	s.mu.Lock()
	g, ok := s.registry.FindByInvite(inviteID)
	if !ok {
		s.mu.Unlock()
		s.logger.Warn("cancel invite: invite not found", "invite_id", inviteID, "session", sessionID)
		return ErrInviteNotFound
	}
	invite, _ := g.invites.Remove(inviteID)
	s.mu.Unlock()

	s.notifyCancelled(ctx, invite)

	s.logger.Info("cancel invite", "invite_id", inviteID, "sender", invite.Sender, "recipient", invite.Recipient)

	return nil
}

// CancelAllInvites withdraws every pending invite of the caller's group and
// broadcasts a leave event for the owner without removing them.
func (s *Service) CancelAllInvites(ctx context.Context, sessionID string) error {
	owner, err := s.caller(ctx, "cancel all invites", sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	g, ok := s.registry.FindByOwner(owner.AccountID)
	if !ok {
		s.mu.Unlock()
		if _, member := s.memberOf(owner.AccountID); member {
			s.logger.Warn("cancel all invites: caller is not the owner", "aid", owner.AccountID)
			return ErrNotAuthorized
		}
		s.logger.Warn("cancel all invites: caller owns no group", "aid", owner.AccountID)
		return ErrGroupNotFound
	}

	pending := g.invites.Drain()
	s.broadcast(g, &UserLeaveEvent{AccountID: owner.AccountID, Nickname: owner.PMC.Nickname})
	s.mu.Unlock()

	for _, p := range pending {
		s.notifyCancelled(ctx, p.Invite)
	}

	s.logger.Info("cancel all invites", "owner", owner.AccountID, "cancelled", len(pending))

	return nil
}

// DeclineInvite rejects a pending invite and tells its sender
func (s *Service) DeclineInvite(ctx context.Context, sessionID, inviteID string) error {
	s.mu.Lock()
	g, ok := s.registry.FindByInvite(inviteID)
	if !ok {
		s.mu.Unlock()
		s.logger.Warn("decline invite: invite not found", "invite_id", inviteID, "session", sessionID)
		return ErrInviteNotFound
	}
	invite, _ := g.invites.Remove(inviteID)
	s.mu.Unlock()

	recipient, err := s.identities.ByAccountID(ctx, invite.Recipient)
	if err != nil {
		s.logger.Warn("decline invite: recipient unresolved, push dropped", "recipient", invite.Recipient, "error", err)
		return nil
	}
	sender, err := s.identities.ByAccountID(ctx, invite.Sender)
	if err != nil {
		s.logger.Warn("decline invite: sender unresolved, push dropped", "sender", invite.Sender, "error", err)
		return nil
	}

	s.notifier.Send(sender.ProfileID, &InviteDeclineEvent{
		AccountID: recipient.AccountID,
		Nickname:  recipient.PMC.Nickname,
	})

	s.logger.Info("decline invite", "invite_id", inviteID, "sender", invite.Sender, "recipient", invite.Recipient)

	return nil
}

// LeaveGroup removes the caller from their group
func (s *Service) LeaveGroup(ctx context.Context, sessionID string) error {
	leaver, err := s.caller(ctx, "leave group", sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.registry.FindByMember(leaver.AccountID)
	if !ok {
		s.logger.Warn("leave group: not in a group", "aid", leaver.AccountID)
		return ErrGroupNotFound
	}

	s.removeMember(g, leaver.AccountID)
	return nil
}

// ExitFromMenu leaves the caller's group if there is one
func (s *Service) ExitFromMenu(ctx context.Context, sessionID string) error {
	err := s.LeaveGroup(ctx, sessionID)
	if errors.Is(err, ErrGroupNotFound) {
		return nil
	}
	return err
}

// KickMember removes targetAID from its group. The kicked account is told too.
func (s *Service) KickMember(ctx context.Context, sessionID, targetAID string) error {
	kicker, err := s.caller(ctx, "kick member", sessionID)
	if err != nil {
		return err
	}

	aid, err := parseAccountID(targetAID)
	if err != nil {
		s.logger.Warn("kick member: bad target", "aid", kicker.AccountID, "target", targetAID)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.registry.FindByMember(aid)
	if !ok {
		s.logger.Warn("kick member: target is not in a group", "aid", kicker.AccountID, "target", aid)
		return ErrGroupNotFound
	}

	removed := s.removeMember(g, aid)
	s.notifier.Send(removed.ProfileID, &UserLeaveEvent{AccountID: aid, Nickname: removed.Info.Nickname})

	s.logger.Info("kick member", "aid", kicker.AccountID, "target", aid)

	return nil
}

// TransferLeadership hands ownership of the caller's group to newOwnerAID
func (s *Service) TransferLeadership(ctx context.Context, sessionID, newOwnerAID string) error {
	current, err := s.caller(ctx, "transfer leadership", sessionID)
	if err != nil {
		return err
	}

	aid, err := parseAccountID(newOwnerAID)
	if err != nil {
		s.logger.Warn("transfer leadership: bad target", "aid", current.AccountID, "target", newOwnerAID)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.registry.FindByMember(current.AccountID)
	if !ok {
		s.logger.Warn("transfer leadership: not in a group", "aid", current.AccountID)
		return ErrGroupNotFound
	}

	previous := g.Owner
	if err := g.transferOwnership(aid); err != nil {
		s.logger.Warn("transfer leadership: target is not a member", "aid", current.AccountID, "target", aid)
		return err
	}

	s.broadcast(g, &LeaderChangedEvent{Owner: aid})

	s.logger.Info("transfer leadership", "from", previous, "to", aid)

	return nil
}

// SetReady toggles the caller's ready flag and broadcasts their state
func (s *Service) SetReady(ctx context.Context, sessionID string, ready bool) error {
	player, err := s.caller(ctx, "set ready", sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.registry.FindByMember(player.AccountID)
	if !ok {
		s.logger.Warn("set ready: not in a group", "aid", player.AccountID, "ready", ready)
		return ErrGroupNotFound
	}

	member, _ := g.setReady(player.AccountID, ready)
	s.broadcast(g, &RaidReadyEvent{Ready: ready, ExtendedProfile: member})

	s.logger.Info("set ready", "aid", player.AccountID, "ready", ready)

	return nil
}

// GroupStatus returns the caller's group members
func (s *Service) GroupStatus(ctx context.Context, sessionID string) ([]MemberState, error) {
	player, err := s.caller(ctx, "group status", sessionID)
	if err != nil {
		return []MemberState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.registry.FindByMember(player.AccountID)
	if !ok {
		s.logger.Warn("group status: not in a group", "aid", player.AccountID)
		return []MemberState{}, ErrGroupNotFound
	}
	return g.Members(), nil
}

// CurrentGroup returns the caller's group members, or nothing when solo
func (s *Service) CurrentGroup(ctx context.Context, sessionID string) ([]MemberState, error) {
	members, err := s.GroupStatus(ctx, sessionID)
	if errors.Is(err, ErrGroupNotFound) {
		return []MemberState{}, nil
	}
	return members, err
}

// DisbandGroup dissolves the caller's group. Every other member gets their own
// leave event and pending invites are cancelled.
func (s *Service) DisbandGroup(ctx context.Context, sessionID string) error {
	owner, err := s.caller(ctx, "disband group", sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	g, ok := s.registry.FindByOwner(owner.AccountID)
	if !ok {
		s.mu.Unlock()
		if _, member := s.memberOf(owner.AccountID); member {
			s.logger.Warn("disband group: caller is not the owner", "aid", owner.AccountID)
			return ErrNotAuthorized
		}
		s.logger.Warn("disband group: caller owns no group", "aid", owner.AccountID)
		return ErrGroupNotFound
	}

	pending := g.invites.Drain()
	for _, m := range g.Members() {
		if m.AccountID == owner.AccountID {
			continue
		}
		s.notifier.Send(m.ProfileID, &UserLeaveEvent{AccountID: m.AccountID, Nickname: m.Info.Nickname})
	}
	s.registry.Remove(g)
	active := s.registry.Len()
	s.mu.Unlock()

	for _, p := range pending {
		s.notifyCancelled(ctx, p.Invite)
	}

	s.logger.Info("disband group", "owner", owner.AccountID, "group", g.ID, "active_groups", active)

	return nil
}

// Groups returns a snapshot of every active group
func (s *Service) Groups() []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(s.registry.All(), func(g *Group, _ int) Snapshot {
		return g.snapshot()
	})
}

// removeMember takes aid out of g, announces it to the remaining members,
// destroys g when empty and otherwise hands ownership on. Callers hold s.mu.
func (s *Service) removeMember(g *Group, aid int64) *MemberState {
	removed, ok := g.removeMember(aid)
	if !ok {
		return nil
	}

	s.broadcast(g, &UserLeaveEvent{AccountID: aid, Nickname: removed.Info.Nickname})
	s.logger.Info("member left", "aid", aid, "owner", g.Owner, "group", g.ID)

	if g.Size() == 0 {
		s.registry.Remove(g)
		s.logger.Info("group is empty, removed", "group", g.ID, "dropped_invites", g.invites.Len(), "active_groups", s.registry.Len())
		return removed
	}

	if aid == g.Owner {
		next, _ := g.nextOwner()
		_ = g.transferOwnership(next)
		s.broadcast(g, &LeaderChangedEvent{Owner: next})
		s.logger.Info("owner left, ownership reassigned", "group", g.ID, "owner", next)
	}

	return removed
}

// broadcast pushes evt to every current member. Callers hold s.mu.
func (s *Service) broadcast(g *Group, evt Event) {
	for _, profileID := range g.ProfileIDs() {
		s.notifier.Send(profileID, evt)
	}
}

// notifyCancelled tells an invite's recipient who withdrew it
func (s *Service) notifyCancelled(ctx context.Context, invite Invite) {
	sender, err := s.identities.ByAccountID(ctx, invite.Sender)
	if err != nil {
		s.logger.Warn("invite cancel: sender unresolved, push dropped", "sender", invite.Sender, "error", err)
		return
	}
	recipient, err := s.identities.ByAccountID(ctx, invite.Recipient)
	if err != nil {
		s.logger.Warn("invite cancel: recipient unresolved, push dropped", "recipient", invite.Recipient, "error", err)
		return
	}

	s.notifier.Send(recipient.ProfileID, &InviteCancelEvent{
		AccountID: sender.AccountID,
		Nickname:  sender.PMC.Nickname,
	})
}

func (s *Service) memberOf(aid int64) (*Group, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.FindByMember(aid)
}

// newInviteID draws ids until one is not pending anywhere. Callers hold s.mu.
func (s *Service) newInviteID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.ids.NewID()
		if id == "" {
			continue
		}
		if _, taken := s.registry.FindByInvite(id); !taken {
			return id, nil
		}
	}
	return "", ErrDuplicateInvite
}

func (s *Service) caller(ctx context.Context, op, sessionID string) (*profile.Identity, error) {
	identity, err := s.identities.BySession(ctx, sessionID)
	if err != nil {
		s.logger.Warn(op+": session unresolved", "session", sessionID, "error", err)
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return identity, nil
}

func parseAccountID(text string) (int64, error) {
	aid, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAccountID, text)
	}
	return aid, nil
}
