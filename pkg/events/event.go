package events

import "time"

// Event is the payload carried on the in-process bus.
type Event struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func New(eventType string, data map[string]interface{}) Event {
	if data == nil {
		data = make(map[string]interface{})
	}
	return Event{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

// Event type codes emitted by the assistant service.
const (
	TypeAssistantCreated      = "ASSISTANT_CREATED"
	TypeAssistantUpdated      = "ASSISTANT_UPDATED"
	TypeAssistantDeleted      = "ASSISTANT_DELETED"
	TypeAssistantDeleteFailed = "ASSISTANT_DELETE_FAILED"
)
