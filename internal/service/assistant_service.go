// FILE: internal/service/assistant_service.go
package service

import (
	"context"

	"ai-assistant-admin-be/internal/dto"
	"ai-assistant-admin-be/internal/mapper"
	"ai-assistant-admin-be/internal/pkg/logger"
	"ai-assistant-admin-be/internal/pkg/validation"
	"ai-assistant-admin-be/internal/repository/contract"
	"ai-assistant-admin-be/pkg/events"
)

type IAssistantService interface {
	GetAll(ctx context.Context) ([]*dto.AssistantResponse, error)
	GetById(ctx context.Context, id string) (*dto.AssistantResponse, error)
	Create(ctx context.Context, req *dto.AssistantRequest) (*dto.AssistantResponse, error)
	Update(ctx context.Context, id string, req *dto.AssistantRequest) (*dto.AssistantResponse, error)
	Delete(ctx context.Context, id string) error
}

type assistantService struct {
	repo      contract.AssistantRepository
	validator *validation.AssistantValidator
	publisher *events.Publisher
	logger    logger.ILogger
}

func NewAssistantService(
	repo contract.AssistantRepository,
	validator *validation.AssistantValidator,
	publisher *events.Publisher,
	sysLogger logger.ILogger,
) IAssistantService {
	return &assistantService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		logger:    sysLogger,
	}
}

func (s *assistantService) GetAll(ctx context.Context) ([]*dto.AssistantResponse, error) {
	assistants, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AssistantResponse, 0, len(assistants))
	for _, a := range assistants {
		result = append(result, mapper.AssistantToResponse(a))
	}
	return result, nil
}

func (s *assistantService) GetById(ctx context.Context, id string) (*dto.AssistantResponse, error) {
	assistant, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.AssistantToResponse(assistant), nil
}

func (s *assistantService) Create(ctx context.Context, req *dto.AssistantRequest) (*dto.AssistantResponse, error) {
	// Validation happens here so nothing invalid ever reaches the store.
	if err := s.validator.ValidateFull(req); err != nil {
		return nil, err
	}

	assistant := mapper.RequestToAssistant("", req)
	if err := s.repo.Create(ctx, assistant); err != nil {
		return nil, err
	}

	s.logger.Info("ASSISTANT", "Assistant created", map[string]interface{}{
		"assistant_id": assistant.Id,
		"name":         assistant.Name,
	})
	s.publisher.PublishAssistantCreated(ctx, assistant.Id, assistant.Name)

	return mapper.AssistantToResponse(assistant), nil
}

func (s *assistantService) Update(ctx context.Context, id string, req *dto.AssistantRequest) (*dto.AssistantResponse, error) {
	if err := s.validator.ValidateFull(req); err != nil {
		return nil, err
	}

	assistant := mapper.RequestToAssistant(id, req)
	if err := s.repo.Update(ctx, assistant); err != nil {
		return nil, err
	}

	s.logger.Info("ASSISTANT", "Assistant updated", map[string]interface{}{
		"assistant_id": id,
	})
	s.publisher.PublishAssistantUpdated(ctx, id, assistant.Name)

	return mapper.AssistantToResponse(assistant), nil
}

func (s *assistantService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("ASSISTANT", "Assistant delete failed", map[string]interface{}{
			"assistant_id": id,
			"error":        err.Error(),
		})
		s.publisher.PublishAssistantDeleteFailed(ctx, id, err.Error())
		return err
	}

	s.logger.Info("ASSISTANT", "Assistant deleted", map[string]interface{}{
		"assistant_id": id,
	})
	s.publisher.PublishAssistantDeleted(ctx, id)
	return nil
}
