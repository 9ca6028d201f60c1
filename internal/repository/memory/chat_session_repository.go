package memory

import (
	"time"

	"ai-assistant-admin-be/internal/entity"
	"ai-assistant-admin-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// ChatSessionRepository keeps chat preview sessions in a TTL cache so
// abandoned previews clean themselves up.
type ChatSessionRepository struct {
	cache *cache.Cache
}

func NewChatSessionRepository(ttl time.Duration) *ChatSessionRepository {
	// Purge expired sessions every tenth of the TTL, floored at a minute.
	purge := ttl / 10
	if purge < time.Minute {
		purge = time.Minute
	}
	return &ChatSessionRepository{
		cache: cache.New(ttl, purge),
	}
}

func (r *ChatSessionRepository) Save(session *entity.ChatSession) {
	r.cache.Set(session.Id, session, cache.DefaultExpiration)
}

func (r *ChatSessionRepository) Get(sessionId string) (*entity.ChatSession, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*entity.ChatSession), true
	}
	return nil, false
}

func (r *ChatSessionRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}

var _ contract.ChatSessionRepository = (*ChatSessionRepository)(nil)
