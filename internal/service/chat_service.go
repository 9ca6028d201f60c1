// FILE: internal/service/chat_service.go
// Chat preview with canned responses. The replies are rotating stock text and
// are intentionally not derived from the assistant's rules; this is a demo
// surface, not an LLM integration.
package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"ai-assistant-admin-be/internal/dto"
	"ai-assistant-admin-be/internal/entity"
	"ai-assistant-admin-be/internal/mapper"
	"ai-assistant-admin-be/internal/pkg/apperr"
	"ai-assistant-admin-be/internal/pkg/logger"
	"ai-assistant-admin-be/internal/pkg/validation"
	"ai-assistant-admin-be/internal/repository/contract"

	"github.com/google/uuid"
)

const chatGreeting = "¡Hola! Soy tu asistente IA. ¿En qué puedo ayudarte hoy?"

// cannedReplies is the fixed rotation the preview chat answers from.
var cannedReplies = []string{
	"Comprendido. Basado en los parámetros configurados, he procesado su solicitud. ¿Desea que profundice en algún punto específico?",
	"Entendido. He analizado la información proporcionada. Aquí tiene un resumen preliminar de acuerdo a las instrucciones del sistema.",
	"Gracias por su consulta. Siguiendo las directrices de tono y estilo establecidas, sugiero el siguiente enfoque para resolver el problema planteado.",
	"He registrado esa instrucción. Procederé a generar la respuesta solicitada manteniendo el formato formal requerido.",
	"Perfecto. Estoy consultando mi base de conocimiento para ofrecerle la respuesta más precisa posible dentro del contexto definido.",
	"De acuerdo. He adaptado mi respuesta para cumplir con los criterios de longitud y tono que ha especificado en el panel de entrenamiento.",
}

type IChatService interface {
	CreateSession(ctx context.Context, assistantId string) (*dto.CreateChatSessionResponse, error)
	SendMessage(ctx context.Context, sessionId string, req *dto.SendChatMessageRequest) (*dto.SendChatMessageResponse, error)
}

type chatService struct {
	assistantRepo contract.AssistantRepository
	sessionRepo   contract.ChatSessionRepository
	validator     *validation.AssistantValidator
	logger        logger.ILogger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewChatService(
	assistantRepo contract.AssistantRepository,
	sessionRepo contract.ChatSessionRepository,
	validator *validation.AssistantValidator,
	sysLogger logger.ILogger,
	rng *rand.Rand,
) IChatService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &chatService{
		assistantRepo: assistantRepo,
		sessionRepo:   sessionRepo,
		validator:     validator,
		logger:        sysLogger,
		rng:           rng,
	}
}

func (s *chatService) CreateSession(ctx context.Context, assistantId string) (*dto.CreateChatSessionResponse, error) {
	// The assistant must exist; expired previews against deleted assistants
	// surface as NotFound, same as the CRUD surface.
	assistant, err := s.assistantRepo.FindById(ctx, assistantId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.ChatSession{
		Id:          uuid.NewString(),
		AssistantId: assistant.Id,
		CreatedAt:   now,
		Messages: []entity.ChatMessage{
			{
				Id:        uuid.NewString(),
				Role:      entity.ChatRoleAssistant,
				Content:   chatGreeting,
				CreatedAt: now,
			},
		},
	}
	s.sessionRepo.Save(session)

	s.logger.Info("CHAT", "Chat preview session started", map[string]interface{}{
		"session_id":   session.Id,
		"assistant_id": assistant.Id,
	})

	messages := make([]dto.ChatMessageResponse, 0, len(session.Messages))
	for i := range session.Messages {
		messages = append(messages, mapper.ChatMessageToResponse(&session.Messages[i]))
	}

	return &dto.CreateChatSessionResponse{
		SessionId:   session.Id,
		AssistantId: session.AssistantId,
		Messages:    messages,
	}, nil
}

func (s *chatService) SendMessage(ctx context.Context, sessionId string, req *dto.SendChatMessageRequest) (*dto.SendChatMessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, apperr.ErrChatSessionNotFound
	}

	now := time.Now()
	userMsg := entity.ChatMessage{
		Id:        uuid.NewString(),
		Role:      entity.ChatRoleUser,
		Content:   req.Content,
		CreatedAt: now,
	}
	reply := entity.ChatMessage{
		Id:        uuid.NewString(),
		Role:      entity.ChatRoleAssistant,
		Content:   s.pickReply(),
		CreatedAt: now,
	}

	session.Messages = append(session.Messages, userMsg, reply)
	s.sessionRepo.Save(session)

	return &dto.SendChatMessageResponse{
		UserMessage: mapper.ChatMessageToResponse(&userMsg),
		Reply:       mapper.ChatMessageToResponse(&reply),
	}, nil
}

func (s *chatService) pickReply() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cannedReplies[s.rng.Intn(len(cannedReplies))]
}
