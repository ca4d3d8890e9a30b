package semantic

import (
	"context"
	"sync"
	"time"
)

// Embedder turns text into an embedding vector. It must be a pure function of
// its input. A nil vector with a nil error means the embedder declined the
// text; both nil-vector and error results leave the semantic dimension
// unavailable without failing the scoring call.
type Embedder func(ctx context.Context, text string) ([]float64, error)

// VectorStore is the persistent cache tier, keyed by (entity ID, model).
type VectorStore interface {
	GetVector(ctx context.Context, entityID, model string) ([]float64, error)
	PutVector(ctx context.Context, entityID, model string, vector []float64) error
}

// EntityType distinguishes cache keys for resumes and job descriptions.
type EntityType string

// Entity types for cache keys.
const (
	EntityResume EntityType = "resume"
	EntityJob    EntityType = "job"
)

type cacheKey struct {
	entityType EntityType
	id         string
}

type cacheEntry struct {
	vector   []float64
	storedAt time.Time
}

// VectorCache is the two-tier embedding cache: an in-process TTL map in front
// of a persistent store. A miss on both tiers triggers exactly one embedder
// call, after which both tiers are populated. The cache is an explicit
// dependency of the engine rather than package state, so tests construct
// their own.
type VectorCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]cacheEntry
	store   VectorStore
	model   string
	ttl     time.Duration
	embed   Embedder
	now     func() time.Time
}

// CacheOptions configures a VectorCache.
type CacheOptions struct {
	Store VectorStore   // optional persistent tier
	Model string        // embedding model identifier used in store keys
	TTL   time.Duration // in-process entry lifetime; 0 means no expiry
	Embed Embedder      // required unless every lookup hits a cache tier
	Now   func() time.Time
}

// NewVectorCache builds a VectorCache.
func NewVectorCache(opts CacheOptions) *VectorCache {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &VectorCache{
		entries: make(map[cacheKey]cacheEntry),
		store:   opts.Store,
		model:   opts.Model,
		ttl:     opts.TTL,
		embed:   opts.Embed,
		now:     now,
	}
}

// Get returns the embedding vector for an entity, consulting the in-process
// tier, then the persistent store, then the embedder. Embedding failures
// return a nil vector and the error; callers treat that as "dimension
// unavailable", not as a scoring failure.
func (c *VectorCache) Get(ctx context.Context, entityType EntityType, id, text string) ([]float64, error) {
	key := cacheKey{entityType: entityType, id: id}

	if vector, ok := c.fresh(key); ok {
		return vector, nil
	}

	if c.store != nil {
		vector, err := c.store.GetVector(ctx, id, c.model)
		if err == nil && len(vector) > 0 {
			c.put(key, vector)
			return vector, nil
		}
	}

	if c.embed == nil {
		return nil, nil
	}
	vector, err := c.embed(ctx, text)
	if err != nil || len(vector) == 0 {
		return nil, err
	}

	c.put(key, vector)
	if c.store != nil {
		// Persist best-effort; a failed write only costs a future re-embed.
		_ = c.store.PutVector(ctx, id, c.model, vector)
	}
	return vector, nil
}

// Invalidate drops one entity from the in-process tier.
func (c *VectorCache) Invalidate(entityType EntityType, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, cacheKey{entityType: entityType, id: id})
}

func (c *VectorCache) fresh(key cacheKey) ([]float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(entry.storedAt) > c.ttl {
		return nil, false
	}
	return entry.vector, true
}

func (c *VectorCache) put(key cacheKey, vector []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{vector: vector, storedAt: c.now()}
}
