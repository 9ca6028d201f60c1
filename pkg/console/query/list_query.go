// Package query implements the console's list-query state machine:
// idle -> loading -> {success, error}, with the fetched snapshot held in a
// TTL cache so repeat reads inside the staleness window skip the fetch.
package query

import (
	"context"
	"sync"
	"time"

	"ai-assistant-admin-be/internal/dto"

	"github.com/patrickmn/go-cache"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const listKey = "assistants"

// FetchFunc loads the assistant list from the gateway.
type FetchFunc func(ctx context.Context) ([]*dto.AssistantResponse, error)

type ListQuery struct {
	mu      sync.Mutex
	status  Status
	lastErr error
	cache   *cache.Cache
	fetch   FetchFunc
}

func NewListQuery(fetch FetchFunc, stalenessWindow time.Duration) *ListQuery {
	return &ListQuery{
		status: StatusIdle,
		cache:  cache.New(stalenessWindow, cache.NoExpiration),
		fetch:  fetch,
	}
}

// Get returns the cached snapshot while it is fresh; otherwise it fetches,
// caches the result under the staleness window, and returns it. A fetch
// failure leaves no cached value, so the next Get retries.
func (q *ListQuery) Get(ctx context.Context) ([]*dto.AssistantResponse, error) {
	q.mu.Lock()
	if x, found := q.cache.Get(listKey); found {
		q.mu.Unlock()
		return x.([]*dto.AssistantResponse), nil
	}
	q.status = StatusLoading
	q.mu.Unlock()

	data, err := q.fetch(ctx)

	q.mu.Lock()
	defer q.mu.Unlock()
	if err != nil {
		q.status = StatusError
		q.lastErr = err
		return nil, err
	}

	q.cache.Set(listKey, data, cache.DefaultExpiration)
	q.status = StatusSuccess
	q.lastErr = nil
	return data, nil
}

// Invalidate discards the cached snapshot; the next Get refetches even if the
// staleness window has not elapsed.
func (q *ListQuery) Invalidate() {
	q.cache.Delete(listKey)
}

func (q *ListQuery) Status() Status {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.status
}

func (q *ListQuery) LastError() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lastErr
}
