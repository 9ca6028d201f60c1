package contract

import "ai-assistant-admin-be/internal/entity"

// ChatSessionRepository stores chat preview sessions. Sessions are transient
// and expire on their own; there is no listing operation.
type ChatSessionRepository interface {
	Save(session *entity.ChatSession)
	Get(sessionId string) (*entity.ChatSession, bool)
	Delete(sessionId string)
}
