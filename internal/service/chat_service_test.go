package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"ai-assistant-admin-be/internal/dto"
	"ai-assistant-admin-be/internal/entity"
	"ai-assistant-admin-be/internal/pkg/apperr"
	"ai-assistant-admin-be/internal/pkg/logger"
	"ai-assistant-admin-be/internal/pkg/validation"
	"ai-assistant-admin-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatTestService() IChatService {
	repo := memory.NewAssistantRepository(memory.AssistantRepositoryOptions{})
	repo.Seed(memory.DemoAssistants()...)
	return NewChatService(
		repo,
		memory.NewChatSessionRepository(time.Hour),
		validation.NewAssistantValidator(),
		logger.NewNopLogger(),
		rand.New(rand.NewSource(7)),
	)
}

func TestCreateSessionStartsWithGreeting(t *testing.T) {
	svc := newChatTestService()

	session, err := svc.CreateSession(context.Background(), "1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionId)
	assert.Equal(t, "1", session.AssistantId)
	require.Len(t, session.Messages, 1)
	assert.Equal(t, entity.ChatRoleAssistant, session.Messages[0].Role)
	assert.Equal(t, chatGreeting, session.Messages[0].Content)
}

func TestCreateSessionUnknownAssistant(t *testing.T) {
	svc := newChatTestService()

	_, err := svc.CreateSession(context.Background(), "nope")
	assert.ErrorIs(t, err, apperr.ErrAssistantNotFound)
}

func TestSendMessageRepliesFromCannedSet(t *testing.T) {
	svc := newChatTestService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "1")
	require.NoError(t, err)

	res, err := svc.SendMessage(ctx, session.SessionId, &dto.SendChatMessageRequest{Content: "Hola"})
	require.NoError(t, err)
	assert.Equal(t, entity.ChatRoleUser, res.UserMessage.Role)
	assert.Equal(t, "Hola", res.UserMessage.Content)
	assert.Equal(t, entity.ChatRoleAssistant, res.Reply.Role)
	assert.Contains(t, cannedReplies, res.Reply.Content)
}

func TestSendMessageUnknownSession(t *testing.T) {
	svc := newChatTestService()

	_, err := svc.SendMessage(context.Background(), "nope", &dto.SendChatMessageRequest{Content: "Hola"})
	assert.ErrorIs(t, err, apperr.ErrChatSessionNotFound)
}

func TestSendMessageRequiresContent(t *testing.T) {
	svc := newChatTestService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "1")
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, session.SessionId, &dto.SendChatMessageRequest{})
	var ve *validation.ValidationError
	assert.True(t, errors.As(err, &ve))
}
