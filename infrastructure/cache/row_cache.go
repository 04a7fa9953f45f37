package cache

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

// RowCache guarda o último snapshot de linhas lido de cada tabela
type RowCache interface {
	Get(ctx context.Context, table string) ([]domain.Row, bool)
	Set(ctx context.Context, table string, rows []domain.Row)
	Invalidate(ctx context.Context, table string)
}

// Clock retorna o instante atual
type Clock func() time.Time

type memoryEntry struct {
	rows      []domain.Row
	expiresAt time.Time
}

// MemoryRowCache é um cache em memória com TTL e relógio injetado
type MemoryRowCache struct {
	ttl     time.Duration
	now     Clock
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryRowCache(ttl time.Duration, clock Clock) *MemoryRowCache {
	if clock == nil {
		clock = time.Now
	}
	return &MemoryRowCache{
		ttl:     ttl,
		now:     clock,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryRowCache) Get(_ context.Context, table string) ([]domain.Row, bool) {
	c.mu.RLock()
	entry, ok := c.entries[table]
	c.mu.RUnlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, false
	}

	return entry.rows, true
}

func (c *MemoryRowCache) Set(_ context.Context, table string, rows []domain.Row) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[table] = memoryEntry{rows: rows, expiresAt: c.now().Add(c.ttl)}
}

func (c *MemoryRowCache) Invalidate(_ context.Context, table string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, table)
}
