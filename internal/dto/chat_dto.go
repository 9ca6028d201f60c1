package dto

import "time"

// ============================================================================
// Chat Preview DTOs
// ============================================================================

type CreateChatSessionResponse struct {
	SessionId   string                `json:"sessionId"`
	AssistantId string                `json:"assistantId"`
	Messages    []ChatMessageResponse `json:"messages"`
}

type SendChatMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type SendChatMessageResponse struct {
	UserMessage ChatMessageResponse `json:"userMessage"`
	Reply       ChatMessageResponse `json:"reply"`
}

type ChatMessageResponse struct {
	Id        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
