package entity

import "time"

// ChatSession is a single-session chat preview against one assistant. Sessions
// live only in memory and expire after a configurable idle TTL.
type ChatSession struct {
	Id          string
	AssistantId string
	Messages    []ChatMessage
	CreatedAt   time.Time
}

type ChatMessage struct {
	Id        string
	Role      string // "user" | "assistant"
	Content   string
	CreatedAt time.Time
}

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)
