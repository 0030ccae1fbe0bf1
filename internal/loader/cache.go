package loader

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/staykit/stay/internal/model"
)

// Cache holds the loaded dataset for the lifetime of the process and
// reloads it when a source file changes on disk. This replaces an
// unconditional memoize-forever: the cache key is the pair of source
// modification times, so touching either file invalidates the entry on
// the next Get. Reads are guarded so concurrent callers are safe; the
// dataset itself is immutable.
type Cache struct {
	mtimes map[string]time.Time
	ds     model.Dataset
	src    Source
	opts   []Option
	mu     sync.RWMutex
	loaded bool
}

// NewCache creates a cache over the given sources. Nothing is loaded
// until the first Get.
func NewCache(src Source, opts ...Option) *Cache {
	return &Cache{src: src, opts: opts}
}

// Get returns the cached dataset, loading or reloading it first when
// the cache is cold or a source file changed.
func (c *Cache) Get(ctx context.Context) (model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return model.Dataset{}, err
	}

	mtimes, err := c.stat()
	if err != nil {
		return model.Dataset{}, err
	}

	c.mu.RLock()
	if c.loaded && mtimesEqual(c.mtimes, mtimes) {
		ds := c.ds
		c.mu.RUnlock()
		return ds, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another caller may have reloaded while we waited for the lock.
	if c.loaded && mtimesEqual(c.mtimes, mtimes) {
		return c.ds, nil
	}

	ds, err := Load(c.src, c.opts...)
	if err != nil {
		return model.Dataset{}, err
	}
	c.ds = ds
	c.mtimes = mtimes
	c.loaded = true
	return ds, nil
}

// Invalidate drops the cached dataset; the next Get reloads.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
}

func (c *Cache) stat() (map[string]time.Time, error) {
	mtimes := make(map[string]time.Time, 2)
	for _, path := range []string{c.src.Bookings, c.src.Reviews} {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("source file unavailable: %w", err)
		}
		mtimes[path] = info.ModTime()
	}
	return mtimes, nil
}

func mtimesEqual(a, b map[string]time.Time) bool {
	if len(a) != len(b) {
		return false
	}
	for path, t := range a {
		if !b[path].Equal(t) {
			return false
		}
	}
	return true
}
