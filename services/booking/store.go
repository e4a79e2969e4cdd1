package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"fittribe/models"

	"github.com/go-redis/redis/v8"
)

const draftKeyPrefix = "bookingDraft:"

// DraftStore is the transient store for booking drafts, keyed per client.
// At most one draft exists per client; writes are last-writer-wins per key.
type DraftStore interface {
	Put(ctx context.Context, clientID string, draft models.BookingDraft) error
	Get(ctx context.Context, clientID string) (*models.BookingDraft, error)
	Delete(ctx context.Context, clientID string) error
}

// RedisDraftStore stores drafts in Redis with a TTL.
type RedisDraftStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisDraftStore creates a Redis-backed draft store.
func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{Client: client, TTL: ttl}
}

func (s *RedisDraftStore) Put(ctx context.Context, clientID string, draft models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.Client.Set(ctx, draftKeyPrefix+clientID, data, s.TTL).Err(); err != nil {
		return &TransientError{Op: "failed to store booking draft", Err: err}
	}
	return nil
}

func (s *RedisDraftStore) Get(ctx context.Context, clientID string) (*models.BookingDraft, error) {
	data, err := s.Client.Get(ctx, draftKeyPrefix+clientID).Result()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, &TransientError{Op: "failed to read booking draft", Err: err}
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, clientID string) error {
	if err := s.Client.Del(ctx, draftKeyPrefix+clientID).Err(); err != nil {
		return &TransientError{Op: "failed to delete booking draft", Err: err}
	}
	return nil
}

// MemoryDraftStore is an in-process DraftStore used in tests and local
// development without Redis.
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string]models.BookingDraft
}

// NewMemoryDraftStore creates an empty in-memory draft store.
func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]models.BookingDraft)}
}

func (s *MemoryDraftStore) Put(ctx context.Context, clientID string, draft models.BookingDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[clientID] = draft
	return nil
}

func (s *MemoryDraftStore) Get(ctx context.Context, clientID string) (*models.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[clientID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return &draft, nil
}

func (s *MemoryDraftStore) Delete(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, clientID)
	return nil
}
