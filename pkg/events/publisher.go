package events

import (
	"context"
	"encoding/json"

	"ai-assistant-admin-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Topic carrying assistant lifecycle events.
const AssistantTopic = "ASSISTANT_EVENTS"

// Publisher emits assistant events on the in-process gochannel bus.
// Publishing is fire-and-forget: a failed publish is logged, never surfaced
// to the caller (mutations do not depend on the bus).
type Publisher struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger
}

func NewPublisher(pubSub *gochannel.GoChannel, logger logger.ILogger) *Publisher {
	return &Publisher{
		pubSub: pubSub,
		logger: logger,
	}
}

func (p *Publisher) PublishAssistantCreated(ctx context.Context, id, name string) {
	p.publish(New(TypeAssistantCreated, map[string]interface{}{
		"assistant_id": id,
		"name":         name,
	}))
}

func (p *Publisher) PublishAssistantUpdated(ctx context.Context, id, name string) {
	p.publish(New(TypeAssistantUpdated, map[string]interface{}{
		"assistant_id": id,
		"name":         name,
	}))
}

func (p *Publisher) PublishAssistantDeleted(ctx context.Context, id string) {
	p.publish(New(TypeAssistantDeleted, map[string]interface{}{
		"assistant_id": id,
	}))
}

func (p *Publisher) PublishAssistantDeleteFailed(ctx context.Context, id, reason string) {
	p.publish(New(TypeAssistantDeleteFailed, map[string]interface{}{
		"assistant_id": id,
		"reason":       reason,
	}))
}

func (p *Publisher) publish(evt Event) {
	if p.pubSub == nil {
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error("EVENTS", "Failed to marshal event", map[string]interface{}{
			"type":  evt.Type,
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(AssistantTopic, msg); err != nil {
		p.logger.Error("EVENTS", "Failed to publish event", map[string]interface{}{
			"type":  evt.Type,
			"error": err.Error(),
		})
	}
}
