package assessment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionRegistry binds client editing-session keys to assessment ids so a
// repeated first save of one session reuses the same record.
type SessionRegistry interface {
	// Claim reserves key. When another caller holds it, claimed is false and
	// id is the bound assessment, or uuid.Nil while that caller is still
	// creating it.
	Claim(ctx context.Context, key string, ttl time.Duration) (claimed bool, id uuid.UUID, err error)
	// Bind records the assessment created under a claimed key.
	Bind(ctx context.Context, key string, id uuid.UUID, ttl time.Duration) error
	// Release drops a claim whose creation failed.
	Release(ctx context.Context, key string) error
}

func sessionKey(owner uuid.UUID, key string) string {
	return fmt.Sprintf("assessment:session:%s:%s", owner, key)
}

// ---------------------------------------------------------------------------
// Redis
// ---------------------------------------------------------------------------

type redisRegistry struct {
	rdb *redis.Client
}

func NewRedisRegistry(rdb *redis.Client) SessionRegistry {
	return &redisRegistry{rdb: rdb}
}

func (r *redisRegistry) Claim(ctx context.Context, key string, ttl time.Duration) (bool, uuid.UUID, error) {
	ok, err := r.rdb.SetNX(ctx, key, "", ttl).Result()
	if err != nil {
		return false, uuid.Nil, fmt.Errorf("claim session key: %w", err)
	}
	if ok {
		return true, uuid.Nil, nil
	}

	val, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET
		return r.Claim(ctx, key, ttl)
	}
	if err != nil {
		return false, uuid.Nil, fmt.Errorf("read session key: %w", err)
	}
	if val == "" {
		return false, uuid.Nil, nil
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return false, uuid.Nil, fmt.Errorf("session key holds %q: %w", val, err)
	}
	return false, id, nil
}

func (r *redisRegistry) Bind(ctx context.Context, key string, id uuid.UUID, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, key, id.String(), ttl).Err(); err != nil {
		return fmt.Errorf("bind session key: %w", err)
	}
	return nil
}

func (r *redisRegistry) Release(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("release session key: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// In-memory
// ---------------------------------------------------------------------------

type memoryEntry struct {
	id      uuid.UUID
	expires time.Time
}

type memoryRegistry struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryRegistry keeps session keys in process. It serves single-instance
// deployments without Redis and tests.
func NewMemoryRegistry(now func() time.Time) SessionRegistry {
	if now == nil {
		now = time.Now
	}
	return &memoryRegistry{now: now, entries: map[string]memoryEntry{}}
}

func (m *memoryRegistry) Claim(_ context.Context, key string, ttl time.Duration) (bool, uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if e, ok := m.entries[key]; ok && now.Before(e.expires) {
		return false, e.id, nil
	}
	m.entries[key] = memoryEntry{expires: now.Add(ttl)}
	return true, uuid.Nil, nil
}

func (m *memoryRegistry) Bind(_ context.Context, key string, id uuid.UUID, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{id: id, expires: m.now().Add(ttl)}
	return nil
}

func (m *memoryRegistry) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
