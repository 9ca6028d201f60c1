package console

import (
	"context"
	"sync"
	"time"

	"ai-assistant-admin-be/internal/dto"
	"ai-assistant-admin-be/pkg/console/query"
)

// Action identifies a logical mutation for status tracking. The UI disables
// the control that triggered an action while it is pending; mutations for
// different records are independent and are not serialized here.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type MutationStatus string

const (
	MutationIdle      MutationStatus = "idle"
	MutationPending   MutationStatus = "pending"
	MutationSucceeded MutationStatus = "succeeded"
	MutationFailed    MutationStatus = "failed"
)

// Client coordinates the console's reads and mutations: reads go through the
// staleness-window list cache, every successful mutation invalidates it, and
// every outcome is reported through the Notifier. Failures are never retried
// automatically; the user re-triggers the action.
type Client struct {
	gateway  Gateway
	list     *query.ListQuery
	notifier Notifier

	mu        sync.Mutex
	mutations map[Action]MutationStatus
}

func NewClient(gateway Gateway, notifier Notifier, stalenessWindow time.Duration) *Client {
	return &Client{
		gateway:   gateway,
		list:      query.NewListQuery(gateway.ListAssistants, stalenessWindow),
		notifier:  notifier,
		mutations: make(map[Action]MutationStatus),
	}
}

// Assistants serves the list from cache while fresh, refetching otherwise.
func (c *Client) Assistants(ctx context.Context) ([]*dto.AssistantResponse, error) {
	return c.list.Get(ctx)
}

func (c *Client) ListStatus() query.Status {
	return c.list.Status()
}

func (c *Client) InvalidateAssistants() {
	c.list.Invalidate()
}

func (c *Client) CreateAssistant(ctx context.Context, req *dto.AssistantRequest) (*dto.AssistantResponse, error) {
	c.begin(ActionCreate)
	created, err := c.gateway.CreateAssistant(ctx, req)
	if err != nil {
		c.finish(ActionCreate, err, "")
		return nil, err
	}
	c.finish(ActionCreate, nil, "Assistant created")
	return created, nil
}

func (c *Client) UpdateAssistant(ctx context.Context, id string, req *dto.AssistantRequest) (*dto.AssistantResponse, error) {
	c.begin(ActionUpdate)
	updated, err := c.gateway.UpdateAssistant(ctx, id, req)
	if err != nil {
		c.finish(ActionUpdate, err, "")
		return nil, err
	}
	c.finish(ActionUpdate, nil, "Assistant updated")
	return updated, nil
}

func (c *Client) DeleteAssistant(ctx context.Context, id string) error {
	c.begin(ActionDelete)
	if err := c.gateway.DeleteAssistant(ctx, id); err != nil {
		c.finish(ActionDelete, err, "")
		return err
	}
	c.finish(ActionDelete, nil, "Assistant deleted")
	return nil
}

// Pending reports whether an action is in flight, for disabling controls.
func (c *Client) Pending(action Action) bool {
	return c.MutationStatus(action) == MutationPending
}

func (c *Client) MutationStatus(action Action) MutationStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.mutations[action]; ok {
		return s
	}
	return MutationIdle
}

func (c *Client) begin(action Action) {
	c.mu.Lock()
	c.mutations[action] = MutationPending
	c.mu.Unlock()
}

// finish records the outcome, invalidates the list on success, and emits the
// toast. Error toasts carry the underlying error's message.
func (c *Client) finish(action Action, err error, successMsg string) {
	c.mu.Lock()
	if err != nil {
		c.mutations[action] = MutationFailed
	} else {
		c.mutations[action] = MutationSucceeded
	}
	c.mu.Unlock()

	if err != nil {
		c.notifier.Error(err.Error())
		return
	}
	c.list.Invalidate()
	c.notifier.Success(successMsg)
}
