package memory

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"ai-assistant-admin-be/internal/entity"
	"ai-assistant-admin-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo returns a seeded repository with zero latency so tests run
// synchronously.
func newTestRepo(opts AssistantRepositoryOptions) *AssistantRepository {
	repo := NewAssistantRepository(opts)
	repo.Seed(DemoAssistants()...)
	return repo
}

func TestFindAllReturnsSeedsInInsertionOrder(t *testing.T) {
	repo := newTestRepo(AssistantRepositoryOptions{})
	ctx := context.Background()

	assistants, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, assistants, 2)
	assert.Equal(t, "1", assistants[0].Id)
	assert.Equal(t, "Asistente de Ventas", assistants[0].Name)
	assert.Equal(t, "2", assistants[1].Id)
	assert.Equal(t, "Soporte Técnico", assistants[1].Name)
}

func TestFindAllIsIdempotentAndSnapshotIsolated(t *testing.T) {
	repo := newTestRepo(AssistantRepositoryOptions{})
	ctx := context.Background()

	first, err := repo.FindAll(ctx)
	require.NoError(t, err)
	second, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Mutating a snapshot must not leak into the store.
	first[0].Name = "Hacked"
	third, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asistente de Ventas", third[0].Name)
}

func TestCreateAssignsFreshUniqueId(t *testing.T) {
	repo := newTestRepo(AssistantRepositoryOptions{})
	ctx := context.Background()

	botX := &entity.Assistant{
		Name:           "Bot X",
		Language:       entity.LanguageEnglish,
		Tone:           entity.ToneCasual,
		ResponseLength: entity.ResponseLength{Short: 40, Medium: 40, Long: 20},
	}
	require.NoError(t, repo.Create(ctx, botX))
	assert.NotEmpty(t, botX.Id)
	assert.NotEqual(t, "1", botX.Id)
	assert.NotEqual(t, "2", botX.Id)

	assistants, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, assistants, 3)
	assert.Equal(t, "Bot X", assistants[2].Name)
	assert.Equal(t, botX.Id, assistants[2].Id)
}

func TestUpdateReplacesFieldsAndKeepsId(t *testing.T) {
	repo := newTestRepo(AssistantRepositoryOptions{})
	ctx := context.Background()

	original, err := repo.FindById(ctx, "1")
	require.NoError(t, err)

	updated := *original
	updated.Tone = entity.ToneCasual
	require.NoError(t, repo.Update(ctx, &updated))

	got, err := repo.FindById(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.ToneCasual, got.Tone)
	assert.Equal(t, original.Name, got.Name)
	assert.Equal(t, original.Language, got.Language)
	assert.Equal(t, original.ResponseLength, got.ResponseLength)
}

func TestUpdateUnknownIdFailsAndLeavesCollectionUnchanged(t *testing.T) {
	repo := newTestRepo(AssistantRepositoryOptions{})
	ctx := context.Background()

	err := repo.Update(ctx, &entity.Assistant{Id: "nope", Name: "Ghost"})
	assert.ErrorIs(t, err, apperr.ErrAssistantNotFound)

	assistants, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, assistants, 2)
}

func TestDeleteUnknownIdFails(t *testing.T) {
	repo := newTestRepo(AssistantRepositoryOptions{})

	err := repo.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, apperr.ErrAssistantNotFound)
}

func TestDeleteTransientFailureLeavesRecordUntouched(t *testing.T) {
	repo := newTestRepo(AssistantRepositoryOptions{DeleteFailureRate: 1.0})
	ctx := context.Background()

	err := repo.Delete(ctx, "1")
	assert.ErrorIs(t, err, apperr.ErrTransientFailure)

	assistants, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, assistants, 2)
}

func TestDeleteRemovesRecordOnSuccess(t *testing.T) {
	repo := newTestRepo(AssistantRepositoryOptions{DeleteFailureRate: 0})
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "1"))

	assistants, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, assistants, 1)
	assert.Equal(t, "2", assistants[0].Id)
}

// The transient roll happens before the lookup, so even a bogus id can fail
// with TransientFailure rather than NotFound.
func TestDeleteTransientFailurePrecedesNotFound(t *testing.T) {
	repo := newTestRepo(AssistantRepositoryOptions{DeleteFailureRate: 1.0})

	err := repo.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, apperr.ErrTransientFailure)
}

func TestDeleteFailureRateIsRoughlyTenPercent(t *testing.T) {
	repo := NewAssistantRepository(AssistantRepositoryOptions{
		DeleteFailureRate: 0.10,
		Rand:              rand.New(rand.NewSource(42)),
	})
	ctx := context.Background()

	const trials = 1000
	failures := 0
	for i := 0; i < trials; i++ {
		id := fmt.Sprintf("trial-%d", i)
		repo.Seed(&entity.Assistant{Id: id, Name: "Trial"})

		before, _ := repo.FindAll(ctx)
		err := repo.Delete(ctx, id)
		after, _ := repo.FindAll(ctx)

		if err != nil {
			assert.ErrorIs(t, err, apperr.ErrTransientFailure)
			assert.Len(t, after, len(before))
			failures++
		} else {
			assert.Len(t, after, len(before)-1)
		}
	}

	// ~100 expected; the seeded generator keeps this stable, the wide band
	// keeps it honest.
	assert.Greater(t, failures, 60)
	assert.Less(t, failures, 140)
}
