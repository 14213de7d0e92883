package models

import (
	"encoding/json"
	"fmt"
)

// Voting mode constants
const (
	ModeMulti  = "multi"
	ModeSingle = "single"
)

// Request types

type CommandRequest struct {
	InvokerID int64  `json:"invoker_id"`
	Text      string `json:"text"`
}

type CallbackRequest struct {
	InvokerID int64  `json:"invoker_id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Data      string `json:"data"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatePollResponse struct {
	PollID  string `json:"poll_id"`
	Message string `json:"message,omitempty"`
}

// Error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// Voter identifies the user behind a voting interaction, with the
// display fields the transport delivered alongside the event.
type Voter struct {
	ID       int64
	Username string
	Name     string
}

// UserInfo is the identity snapshot stored per poll at interaction
// time. It is intentionally never re-fetched afterwards.
type UserInfo struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// VoteSet is a user's recorded selection, stored as a sorted list of
// option indices. Legacy single-select documents stored a bare index;
// both shapes unmarshal.
type VoteSet []int

func (v *VoteSet) UnmarshalJSON(data []byte) error {
	var list []int
	if err := json.Unmarshal(data, &list); err == nil {
		*v = list
		return nil
	}
	var single int
	if err := json.Unmarshal(data, &single); err == nil {
		*v = VoteSet{single}
		return nil
	}
	return fmt.Errorf("vote record is neither an index nor a list: %s", data)
}

// Poll field names match the persisted document layout, so an existing
// votes.json keeps working across deployments.
type Poll struct {
	ID        string              `json:"poll_id"`
	Question  string              `json:"question"`
	Options   []string            `json:"options"`
	Mode      string              `json:"mode"`
	CreatedAt int64               `json:"created_at"`
	EndAt     int64               `json:"end_at"`
	ChatID    int64               `json:"chat_id"`
	MessageID int64               `json:"message_id"`
	Votes     map[string]VoteSet  `json:"votes"`
	Drafts    map[string][]int    `json:"drafts"`
	Confirmed map[string]bool     `json:"confirmed"`
	Users     map[string]UserInfo `json:"users"`
	Closed    bool                `json:"closed"`
}

// State is the full persisted document, keyed by poll id.
type State struct {
	Polls map[string]*Poll `json:"polls"`
}

// NewState returns an empty state with the polls map allocated.
func NewState() State {
	return State{Polls: make(map[string]*Poll)}
}

// Outbound messaging

// Button is one selectable control attached to an outbound message.
// Data carries the callback payload that comes back on a press.
type Button struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// Sender is the outbound message capability of the host messaging
// platform. It returns the platform message id of the sent message.
type Sender interface {
	SendMessage(chatID int64, text string, markup [][]Button) (int64, error)
}
