package group

import (
	"encoding/json"
	"fmt"
)

// EventType names a push event; it is sent as both "type" and "eventId"
type EventType string

const (
	EventInviteSend    EventType = "groupMatchInviteSend"
	EventInviteAccept  EventType = "groupMatchInviteAccept"
	EventInviteCancel  EventType = "groupMatchInviteCancel"
	EventInviteDecline EventType = "groupMatchInviteDecline"
	EventUserLeave     EventType = "groupMatchUserLeave"
	EventLeaderChanged EventType = "groupMatchLeaderChanged"
	EventRaidReady     EventType = "groupMatchRaidReady"
	EventRaidNotReady  EventType = "groupMatchRaidNotReady"
)

// Event is a push notification. The set of implementations is closed.
type Event interface {
	Type() EventType
	isEvent()
}

// InviteSendEvent tells the recipient about a new invite
type InviteSendEvent struct {
	RequestID string        `json:"requestId"`
	From      int64         `json:"from"`
	Members   []MemberState `json:"members"`
}

// InviteAcceptEvent announces a new member to the whole group
type InviteAcceptEvent struct {
	AccountID                  int64           `json:"aid"`
	ProfileID                  string          `json:"_id"`
	Info                       CharacterInfo   `json:"Info"`
	IsReady                    bool            `json:"IsReady"`
	PlayerVisualRepresentation json.RawMessage `json:"PlayerVisualRepresentation"`
}

// InviteCancelEvent tells the recipient an invite was withdrawn
type InviteCancelEvent struct {
	AccountID int64  `json:"aid"`
	Nickname  string `json:"nickname"`
}

// InviteDeclineEvent tells the sender an invite was turned down
type InviteDeclineEvent struct {
	AccountID int64  `json:"aid"`
	Nickname  string `json:"Nickname"`
}

// UserLeaveEvent reports an account leaving the group
type UserLeaveEvent struct {
	AccountID int64  `json:"aid"`
	Nickname  string `json:"Nickname"`
}

// LeaderChangedEvent reports the new owner
type LeaderChangedEvent struct {
	Owner int64 `json:"owner"`
}

// RaidReadyEvent carries a member's state after a ready toggle
type RaidReadyEvent struct {
	Ready           bool        `json:"-"`
	ExtendedProfile MemberState `json:"extendedProfile"`
}

func (*InviteSendEvent) Type() EventType    { return EventInviteSend }
func (*InviteAcceptEvent) Type() EventType  { return EventInviteAccept }
func (*InviteCancelEvent) Type() EventType  { return EventInviteCancel }
func (*InviteDeclineEvent) Type() EventType { return EventInviteDecline }
func (*UserLeaveEvent) Type() EventType     { return EventUserLeave }
func (*LeaderChangedEvent) Type() EventType { return EventLeaderChanged }

func (e *RaidReadyEvent) Type() EventType {
	if e.Ready {
		return EventRaidReady
	}
	return EventRaidNotReady
}

func (*InviteSendEvent) isEvent()    {}
func (*InviteAcceptEvent) isEvent()  {}
func (*InviteCancelEvent) isEvent()  {}
func (*InviteDeclineEvent) isEvent() {}
func (*UserLeaveEvent) isEvent()     {}
func (*LeaderChangedEvent) isEvent() {}
func (*RaidReadyEvent) isEvent()     {}

// EncodeEvent renders an event as the JSON frame the client expects
func EncodeEvent(evt Event) ([]byte, error) {
	body, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", evt.Type(), err)
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("encode %s: %w", evt.Type(), err)
	}

	name, _ := json.Marshal(string(evt.Type()))
	fields["type"] = name
	fields["eventId"] = name

	return json.Marshal(fields)
}
