// Package console is the non-presentation core of the admin console: the
// list-query cache, the mutation runner with toast notifications, and (in the
// wizard subpackage) the two-step creation dialog state machine. A UI layer
// renders from this state; none of it depends on any rendering concern.
package console

import (
	"context"

	"ai-assistant-admin-be/internal/dto"
	"ai-assistant-admin-be/internal/service"
)

// Gateway is the logical service boundary the console talks through. The
// transport is assumed reliable; in-process and HTTP bindings look the same
// from here.
type Gateway interface {
	ListAssistants(ctx context.Context) ([]*dto.AssistantResponse, error)
	CreateAssistant(ctx context.Context, req *dto.AssistantRequest) (*dto.AssistantResponse, error)
	UpdateAssistant(ctx context.Context, id string, req *dto.AssistantRequest) (*dto.AssistantResponse, error)
	DeleteAssistant(ctx context.Context, id string) error
}

type serviceGateway struct {
	svc service.IAssistantService
}

// NewServiceGateway binds the console directly to the assistant service.
func NewServiceGateway(svc service.IAssistantService) Gateway {
	return &serviceGateway{svc: svc}
}

func (g *serviceGateway) ListAssistants(ctx context.Context) ([]*dto.AssistantResponse, error) {
	return g.svc.GetAll(ctx)
}

func (g *serviceGateway) CreateAssistant(ctx context.Context, req *dto.AssistantRequest) (*dto.AssistantResponse, error) {
	return g.svc.Create(ctx, req)
}

func (g *serviceGateway) UpdateAssistant(ctx context.Context, id string, req *dto.AssistantRequest) (*dto.AssistantResponse, error) {
	return g.svc.Update(ctx, id, req)
}

func (g *serviceGateway) DeleteAssistant(ctx context.Context, id string) error {
	return g.svc.Delete(ctx, id)
}
