package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"ai-assistant-admin-be/internal/entity"
	"ai-assistant-admin-be/internal/pkg/apperr"
	"ai-assistant-admin-be/internal/repository/contract"

	"github.com/google/uuid"
)

// AssistantRepositoryOptions tunes the simulated-network behavior. Zero
// latency and a pinned failure rate make the repository fully synchronous and
// deterministic for tests.
type AssistantRepositoryOptions struct {
	Latency           time.Duration
	DeleteLatency     time.Duration
	DeleteFailureRate float64
	Rand              *rand.Rand // nil means time-seeded
}

// AssistantRepository keeps the canonical record collection in an ordered
// slice. It is the only component that mutates the collection; callers get
// snapshot copies.
type AssistantRepository struct {
	mu      sync.Mutex
	records []*entity.Assistant
	rng     *rand.Rand
	opts    AssistantRepositoryOptions
}

func NewAssistantRepository(opts AssistantRepositoryOptions) *AssistantRepository {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &AssistantRepository{
		records: make([]*entity.Assistant, 0),
		rng:     rng,
		opts:    opts,
	}
}

// Seed appends records directly, bypassing latency. Ids are kept as given.
func (r *AssistantRepository) Seed(assistants ...*entity.Assistant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range assistants {
		clone := *a
		r.records = append(r.records, &clone)
	}
}

// DemoAssistants returns the two records the admin console ships with.
func DemoAssistants() []*entity.Assistant {
	return []*entity.Assistant{
		{
			Id:             "1",
			Name:           "Asistente de Ventas",
			Language:       entity.LanguageSpanish,
			Tone:           entity.ToneProfessional,
			ResponseLength: entity.ResponseLength{Short: 30, Medium: 50, Long: 20},
			AudioEnabled:   true,
			Rules:          "Eres un experto en ventas B2B. Sé cordial y persuasivo.",
		},
		{
			Id:             "2",
			Name:           "Soporte Técnico",
			Language:       entity.LanguageEnglish,
			Tone:           entity.ToneFriendly,
			ResponseLength: entity.ResponseLength{Short: 20, Medium: 30, Long: 50},
			AudioEnabled:   false,
			Rules:          "Ayuda paso a paso a resolver problemas técnicos.",
		},
	}
}

// FindAll returns a snapshot copy in insertion order. Never fails.
func (r *AssistantRepository) FindAll(ctx context.Context) ([]*entity.Assistant, error) {
	r.delay(r.opts.Latency)

	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*entity.Assistant, 0, len(r.records))
	for _, a := range r.records {
		clone := *a
		result = append(result, &clone)
	}
	return result, nil
}

func (r *AssistantRepository) FindById(ctx context.Context, id string) (*entity.Assistant, error) {
	r.delay(r.opts.Latency)

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return nil, apperr.ErrAssistantNotFound
	}
	clone := *r.records[i]
	return &clone, nil
}

// Create assigns a fresh id when none is set and appends the record. The
// caller is responsible for having validated the input.
func (r *AssistantRepository) Create(ctx context.Context, assistant *entity.Assistant) error {
	r.delay(r.opts.Latency)

	r.mu.Lock()
	defer r.mu.Unlock()

	if assistant.Id == "" {
		assistant.Id = uuid.NewString()
	}
	clone := *assistant
	r.records = append(r.records, &clone)
	return nil
}

// Update replaces every field except the id. Full-record semantics: the
// incoming value wins wholesale, last writer wins.
func (r *AssistantRepository) Update(ctx context.Context, assistant *entity.Assistant) error {
	r.delay(r.opts.Latency)

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(assistant.Id)
	if i == -1 {
		return apperr.ErrAssistantNotFound
	}
	clone := *assistant
	r.records[i] = &clone
	return nil
}

// Delete simulates an unreliable channel: the transient-failure roll happens
// before the lookup, so even a valid id can fail. The record is untouched on
// any failure path.
func (r *AssistantRepository) Delete(ctx context.Context, id string) error {
	r.delay(r.opts.DeleteLatency)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rng.Float64() < r.opts.DeleteFailureRate {
		return apperr.ErrTransientFailure
	}

	i := r.indexOf(id)
	if i == -1 {
		return apperr.ErrAssistantNotFound
	}
	r.records = append(r.records[:i], r.records[i+1:]...)
	return nil
}

// indexOf must be called with the lock held.
func (r *AssistantRepository) indexOf(id string) int {
	for i, a := range r.records {
		if a.Id == id {
			return i
		}
	}
	return -1
}

func (r *AssistantRepository) delay(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

var _ contract.AssistantRepository = (*AssistantRepository)(nil)
