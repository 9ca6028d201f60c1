package console

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fatih/color"
)

// ToastTopic carries user-facing notifications from the mutation runner to
// whatever surface renders them.
const ToastTopic = "TOAST_EVENTS"

type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

type Toast struct {
	Level   ToastLevel `json:"level"`
	Message string     `json:"message"`
}

// Notifier emits user-visible notifications for mutation outcomes.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// BusNotifier publishes toasts on the gochannel bus. Fire-and-forget: a
// failed publish must not fail the mutation that triggered it.
type BusNotifier struct {
	pubSub *gochannel.GoChannel
}

func NewBusNotifier(pubSub *gochannel.GoChannel) *BusNotifier {
	return &BusNotifier{pubSub: pubSub}
}

func (n *BusNotifier) Success(msg string) {
	n.publish(Toast{Level: ToastSuccess, Message: msg})
}

func (n *BusNotifier) Error(msg string) {
	n.publish(Toast{Level: ToastError, Message: msg})
}

func (n *BusNotifier) publish(t Toast) {
	payload, err := json.Marshal(t)
	if err != nil {
		log.Printf("[WARN] Failed to marshal toast: %v", err)
		return
	}
	if err := n.pubSub.Publish(ToastTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		log.Printf("[WARN] Failed to publish toast: %v", err)
	}
}

// ConsoleToaster subscribes to the toast topic and renders to the terminal,
// the closest thing a headless console gets to the browser toast stack.
type ConsoleToaster struct {
	pubSub *gochannel.GoChannel
}

func NewConsoleToaster(pubSub *gochannel.GoChannel) *ConsoleToaster {
	return &ConsoleToaster{pubSub: pubSub}
}

func (t *ConsoleToaster) Run(ctx context.Context) error {
	messages, err := t.pubSub.Subscribe(ctx, ToastTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			t.render(msg)
			msg.Ack()
		}
	}()

	return nil
}

func (t *ConsoleToaster) render(msg *message.Message) {
	var toast Toast
	if err := json.Unmarshal(msg.Payload, &toast); err != nil {
		log.Printf("[WARN] Dropping malformed toast: %v", err)
		return
	}

	switch toast.Level {
	case ToastError:
		color.New(color.FgRed).Printf("✖ %s\n", toast.Message)
	default:
		color.New(color.FgGreen).Printf("✔ %s\n", toast.Message)
	}
}
