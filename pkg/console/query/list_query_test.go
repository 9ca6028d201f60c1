package query

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"ai-assistant-admin-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingFetch(calls *atomic.Int64, err error) FetchFunc {
	return func(ctx context.Context) ([]*dto.AssistantResponse, error) {
		calls.Add(1)
		if err != nil {
			return nil, err
		}
		return []*dto.AssistantResponse{{Id: "1", Name: "Asistente de Ventas"}}, nil
	}
}

func TestGetServesFromCacheWhileFresh(t *testing.T) {
	var calls atomic.Int64
	q := NewListQuery(countingFetch(&calls, nil), time.Hour)
	ctx := context.Background()

	first, err := q.Get(ctx)
	require.NoError(t, err)
	second, err := q.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, StatusSuccess, q.Status())
}

func TestGetRefetchesAfterStalenessWindow(t *testing.T) {
	var calls atomic.Int64
	q := NewListQuery(countingFetch(&calls, nil), 10*time.Millisecond)
	ctx := context.Background()

	_, err := q.Get(ctx)
	require.NoError(t, err)
	time.Sleep(30 * time.Millisecond)
	_, err = q.Get(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 2, calls.Load())
}

func TestInvalidateForcesRefetch(t *testing.T) {
	var calls atomic.Int64
	q := NewListQuery(countingFetch(&calls, nil), time.Hour)
	ctx := context.Background()

	_, err := q.Get(ctx)
	require.NoError(t, err)
	q.Invalidate()
	_, err = q.Get(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 2, calls.Load())
}

func TestGetSurfacesFetchErrorAndRetries(t *testing.T) {
	var calls atomic.Int64
	boom := errors.New("backend down")
	q := NewListQuery(countingFetch(&calls, boom), time.Hour)
	ctx := context.Background()

	assert.Equal(t, StatusIdle, q.Status())

	_, err := q.Get(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StatusError, q.Status())
	assert.ErrorIs(t, q.LastError(), boom)

	// Errors are not cached; the next read tries again.
	_, err = q.Get(ctx)
	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 2, calls.Load())
}
