package group

import (
	"sort"

	"github.com/samber/lo"
)

// Registry holds every active group. It does no locking of its own: the
// Service serialises all access.
type Registry struct {
	groups map[GroupID]*Group
	nextID GroupID
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{groups: make(map[GroupID]*Group)}
}

// Add stores a group and assigns its id
func (r *Registry) Add(g *Group) {
	r.nextID++
	g.ID = r.nextID
	r.groups[g.ID] = g
}

// Remove drops a group from the registry
func (r *Registry) Remove(g *Group) {
	delete(r.groups, g.ID)
}

// Len returns the number of active groups
func (r *Registry) Len() int {
	return len(r.groups)
}

// FindByInvite returns the group whose ledger holds the invite id
func (r *Registry) FindByInvite(inviteID string) (*Group, bool) {
	return r.find(func(g *Group) bool { return g.invites.Has(inviteID) })
}

// FindByOwner returns the group owned by the account
func (r *Registry) FindByOwner(aid int64) (*Group, bool) {
	return r.find(func(g *Group) bool { return g.Owner == aid })
}

// FindByMember returns the group the account belongs to
func (r *Registry) FindByMember(aid int64) (*Group, bool) {
	return r.find(func(g *Group) bool { return g.HasMember(aid) })
}

// All returns every group ordered by id
func (r *Registry) All() []*Group {
	groups := lo.Values(r.groups)
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups
}

func (r *Registry) find(match func(*Group) bool) (*Group, bool) {
	for _, g := range r.groups {
		if match(g) {
			return g, true
		}
	}
	return nil, false
}
