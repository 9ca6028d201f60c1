package contract

import (
	"context"

	"ai-assistant-admin-be/internal/entity"
)

// AssistantRepository owns the authoritative, ordered collection of assistant
// records. Implementations simulate network latency on every operation and an
// unreliable channel on Delete; see internal/repository/memory.
type AssistantRepository interface {
	FindAll(ctx context.Context) ([]*entity.Assistant, error)
	FindById(ctx context.Context, id string) (*entity.Assistant, error)
	Create(ctx context.Context, assistant *entity.Assistant) error
	Update(ctx context.Context, assistant *entity.Assistant) error
	Delete(ctx context.Context, id string) error
}
