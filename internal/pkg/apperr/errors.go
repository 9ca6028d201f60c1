// FILE: internal/pkg/apperr/errors.go
// Sentinel errors shared between the repository, service, and transport layers.
package apperr

import "errors"

var (
	// ErrAssistantNotFound is returned when a mutation targets an id that is
	// not present in the store.
	ErrAssistantNotFound = errors.New("assistant not found")

	// ErrChatSessionNotFound is returned for expired or unknown chat sessions.
	ErrChatSessionNotFound = errors.New("chat session not found")

	// ErrTransientFailure models the unreliable delete channel. The record is
	// left untouched when this is returned.
	ErrTransientFailure = errors.New("connection error while deleting (simulated)")
)
