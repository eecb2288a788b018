package group

import "github.com/samber/lo"

// PendingInvite pairs an invite with its id
type PendingInvite struct {
	ID string
	Invite
}

// InviteLedger holds a group's pending invites keyed by invite id
type InviteLedger struct {
	invites map[string]Invite
	order   []string
}

// NewInviteLedger creates an empty ledger
func NewInviteLedger() *InviteLedger {
	return &InviteLedger{invites: make(map[string]Invite)}
}

// Add records a pending invite. Ids already pending are rejected.
func (l *InviteLedger) Add(id string, invite Invite) error {
	if _, exists := l.invites[id]; exists {
		return ErrDuplicateInvite
	}
	l.invites[id] = invite
	l.order = append(l.order, id)
	return nil
}

// Has reports whether id is pending
func (l *InviteLedger) Has(id string) bool {
	_, ok := l.invites[id]
	return ok
}

// Remove deletes a pending invite, returning it
func (l *InviteLedger) Remove(id string) (Invite, bool) {
	invite, ok := l.invites[id]
	if !ok {
		return Invite{}, false
	}
	delete(l.invites, id)
	l.order = lo.Without(l.order, id)
	return invite, true
}

// Len returns the number of pending invites
func (l *InviteLedger) Len() int {
	return len(l.order)
}

// All returns every pending invite in issue order
func (l *InviteLedger) All() []PendingInvite {
	return lo.Map(l.order, func(id string, _ int) PendingInvite {
		return PendingInvite{ID: id, Invite: l.invites[id]}
	})
}

// Drain removes and returns every pending invite in issue order
func (l *InviteLedger) Drain() []PendingInvite {
	pending := l.All()
	l.invites = make(map[string]Invite)
	l.order = nil
	return pending
}
