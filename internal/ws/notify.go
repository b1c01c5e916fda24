package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type PostingEvent struct {
	Type                      string   `json:"type"`
	PostingID                 string   `json:"postingId"`
	CreatedSkillNames         []string `json:"createdSkillNames,omitempty"`
	AlreadyExistingSkillNames []string `json:"alreadyExistingSkillNames,omitempty"`
	Timestamp                 string   `json:"timestamp"`
}

// Notifier broadcasts posting lifecycle events over the hub. It
// implements the usecase notification contract.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) PostingConfirmed(postingID uuid.UUID, created, alreadyExisting []string) {
	if n == nil || n.hub == nil {
		return
	}
	n.publish(PostingEvent{
		Type:                      "posting_confirmed",
		PostingID:                 postingID.String(),
		CreatedSkillNames:         created,
		AlreadyExistingSkillNames: alreadyExisting,
		Timestamp:                 time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *Notifier) PostingDeleted(postingID uuid.UUID) {
	if n == nil || n.hub == nil {
		return
	}
	n.publish(PostingEvent{
		Type:      "posting_deleted",
		PostingID: postingID.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *Notifier) publish(evt PostingEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(payload)
}
