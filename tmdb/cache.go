package tmdb

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/cinemind-cli/cinemind/filesystem"
	"github.com/cinemind-cli/cinemind/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

type cacheEntry[T any] struct {
	Value    T         `json:"value"`
	CachedAt time.Time `json:"cached_at"`
}

type cacheData[T any] struct {
	Entries map[string]cacheEntry[T] `json:"entries"`
}

// cacher is a keyed view over a single gache file. Every write restarts the
// file lifetime, so each entry also expires on its own.
type cacher[T any] struct {
	internal *gache.Cache[*cacheData[T]]
	lifetime time.Duration
	mu       sync.RWMutex
}

func newCacher[T any](name string, lifetime time.Duration) *cacher[T] {
	return &cacher[T]{
		lifetime: lifetime,
		internal: gache.New[*cacheData[T]](
			&gache.Options{
				Path:       filepath.Join(where.Cache(), name),
				Lifetime:   lifetime,
				FileSystem: &filesystem.GacheFs{},
			},
		),
	}
}

func (c *cacher[T]) Get(key string) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	if entry, ok := data.Entries[key]; ok && time.Since(entry.CachedAt) <= c.lifetime {
		return mo.Some(entry.Value)
	}

	return mo.None[T]()
}

func (c *cacher[T]) Set(key string, t T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil || data.Entries == nil {
		data = &cacheData[T]{Entries: make(map[string]cacheEntry[T])}
	}

	now := time.Now()
	for k, entry := range data.Entries {
		if now.Sub(entry.CachedAt) > c.lifetime {
			delete(data.Entries, k)
		}
	}

	data.Entries[key] = cacheEntry[T]{Value: t, CachedAt: now}
	return c.internal.Set(data)
}

func (c *cacher[T]) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		return nil
	}

	delete(data.Entries, key)
	return c.internal.Set(data)
}

var (
	detailsCacher = newCacher[*MediaDetail]("tmdb_details_cache.json", time.Hour*24)
	personCacher  = newCacher[*PersonDetail]("tmdb_person_cache.json", time.Hour*24)
	seasonCacher  = newCacher[[]*Episode]("tmdb_season_cache.json", time.Hour*24)
)
