package mapper

import (
	"ai-assistant-admin-be/internal/dto"
	"ai-assistant-admin-be/internal/entity"
)

func AssistantToResponse(a *entity.Assistant) *dto.AssistantResponse {
	return &dto.AssistantResponse{
		Id:       a.Id,
		Name:     a.Name,
		Language: a.Language,
		Tone:     a.Tone,
		ResponseLength: dto.ResponseLengthResponse{
			Short:  a.ResponseLength.Short,
			Medium: a.ResponseLength.Medium,
			Long:   a.ResponseLength.Long,
		},
		AudioEnabled: a.AudioEnabled,
		Rules:        a.Rules,
	}
}

// RequestToAssistant builds the full replacement record. An empty id means
// the store assigns one on create.
func RequestToAssistant(id string, req *dto.AssistantRequest) *entity.Assistant {
	return &entity.Assistant{
		Id:       id,
		Name:     req.Name,
		Language: req.Language,
		Tone:     req.Tone,
		ResponseLength: entity.ResponseLength{
			Short:  req.ResponseLength.Short,
			Medium: req.ResponseLength.Medium,
			Long:   req.ResponseLength.Long,
		},
		AudioEnabled: req.AudioEnabled,
		Rules:        req.Rules,
	}
}

func ChatMessageToResponse(m *entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Id:        m.Id,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
