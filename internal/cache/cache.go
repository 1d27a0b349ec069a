// Package cache keeps recent analysis results so repeated inputs skip the
// divisor and factorization work.
package cache

import (
	"crypto/md5"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/number-o-meter/internal/analysis"
	"github.com/ZanzyTHEbar/number-o-meter/internal/monitoring"
)

const (
	DefaultTTL        = 5 * time.Minute
	DefaultMaxEntries = 1000

	cleanupInterval = time.Minute
)

// Engine produces the results being cached
type Engine interface {
	Analyze(raw string) (analysis.Report, error)
	Compare(rawA, rawB string) (analysis.Comparison, error)
}

type item struct {
	report     *analysis.Report
	comparison *analysis.Comparison
	expiresAt  time.Time
}

func (i *item) expired(now time.Time) bool {
	return now.After(i.expiresAt)
}

// ReportCache wraps an Engine with a TTL cache. Failed analyses are not
// cached.
type ReportCache struct {
	engine     Engine
	ttl        time.Duration
	maxEntries int
	metrics    *monitoring.Metrics
	now        func() time.Time

	mu    sync.RWMutex
	items map[string]*item

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// New creates a cache in front of engine and starts its cleanup loop. Close
// stops the loop. A nil metrics disables hit and miss counting.
func New(engine Engine, ttl time.Duration, maxEntries int, metrics *monitoring.Metrics) *ReportCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	c := &ReportCache{
		engine:     engine,
		ttl:        ttl,
		maxEntries: maxEntries,
		metrics:    metrics,
		now:        time.Now,
		items:      make(map[string]*item),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}

	go c.cleanupLoop()

	return c
}

// Close stops the cleanup loop
func (c *ReportCache) Close() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	<-c.done
}

// Analyze returns the cached report for raw or computes and stores it
func (c *ReportCache) Analyze(raw string) (analysis.Report, error) {
	key := generateKey("analyze", raw)
	if it, ok := c.get(key); ok && it.report != nil {
		return *it.report, nil
	}

	r, err := c.engine.Analyze(raw)
	if err != nil {
		return analysis.Report{}, err
	}
	c.set(key, &item{report: &r})
	return r, nil
}

// Compare returns the cached comparison for the pair or computes and stores it
func (c *ReportCache) Compare(rawA, rawB string) (analysis.Comparison, error) {
	key := generateKey("compare", rawA, rawB)
	if it, ok := c.get(key); ok && it.comparison != nil {
		return *it.comparison, nil
	}

	cmp, err := c.engine.Compare(rawA, rawB)
	if err != nil {
		return analysis.Comparison{}, err
	}
	c.set(key, &item{comparison: &cmp})
	return cmp, nil
}

// generateKey hashes the operation and its raw inputs. The separator keeps
// ("1", "23") and ("12", "3") apart.
func generateKey(op string, raws ...string) string {
	h := md5.New()
	h.Write([]byte(op))
	for _, raw := range raws {
		h.Write([]byte{0})
		h.Write([]byte(raw))
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (c *ReportCache) get(key string) (*item, bool) {
	c.mu.RLock()
	it, exists := c.items[key]
	c.mu.RUnlock()

	if !exists || it.expired(c.now()) {
		if c.metrics != nil {
			c.metrics.IncrementCacheMiss()
		}
		return nil, false
	}

	if c.metrics != nil {
		c.metrics.IncrementCacheHit()
	}
	return it, true
}

func (c *ReportCache) set(key string, it *item) {
	now := c.now()
	it.expiresAt = now.Add(c.ttl)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxEntries {
		c.evictExpired(now)
		if len(c.items) >= c.maxEntries {
			slog.Debug("Report cache full, not storing", "entries", len(c.items))
			return
		}
	}
	c.items[key] = it
}

func (c *ReportCache) cleanupLoop() {
	defer close(c.done)

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.evictExpired(c.now())
			c.mu.Unlock()
		case <-c.stop:
			return
		}
	}
}

// evictExpired must be called with mu held
func (c *ReportCache) evictExpired(now time.Time) {
	for key, it := range c.items {
		if it.expired(now) {
			delete(c.items, key)
		}
	}
}

// Stats returns cache statistics
func (c *ReportCache) Stats() map[string]interface{} {
	now := c.now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	totalItems := len(c.items)
	expiredItems := 0
	for _, it := range c.items {
		if it.expired(now) {
			expiredItems++
		}
	}

	return map[string]interface{}{
		"total_items":   totalItems,
		"expired_items": expiredItems,
		"active_items":  totalItems - expiredItems,
		"max_entries":   c.maxEntries,
		"ttl_seconds":   c.ttl.Seconds(),
	}
}
