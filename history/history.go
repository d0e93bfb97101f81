// Package history remembers the titles the user opened recently.
package history

import (
	"sync"
	"time"

	"github.com/cinemind-cli/cinemind/filesystem"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/cinemind-cli/cinemind/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Entry is one viewed title.
type Entry struct {
	Item     *tmdb.MediaItem `json:"item"`
	ViewedAt time.Time       `json:"viewed_at"`
}

func (e *Entry) String() string {
	return e.Item.DisplayTitle() + " (" + e.ViewedAt.Format("2006-01-02 15:04") + ")"
}

var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var (
	now = time.Now
	mu  sync.Mutex
)

func load() (map[string]*Entry, error) {
	saved, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || saved == nil {
		return make(map[string]*Entry), nil
	}
	return saved, nil
}

// Get returns the viewed titles, most recent first, capped at history.limit.
func Get() ([]*Entry, error) {
	mu.Lock()
	defer mu.Unlock()

	saved, err := load()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	slices.SortFunc(entries, func(a, b *Entry) int {
		return b.ViewedAt.Compare(a.ViewedAt)
	})

	if limit := viper.GetInt(key.HistoryLimit); limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}

// Save records item as viewed now. Viewing it again moves it to the top.
// Entries beyond history.limit are dropped.
func Save(item *tmdb.MediaItem) error {
	mu.Lock()
	defer mu.Unlock()

	saved, err := load()
	if err != nil {
		return err
	}

	saved[item.Key()] = &Entry{Item: item, ViewedAt: now()}

	if limit := viper.GetInt(key.HistoryLimit); limit > 0 && len(saved) > limit {
		entries := lo.Values(saved)
		slices.SortFunc(entries, func(a, b *Entry) int {
			return b.ViewedAt.Compare(a.ViewedAt)
		})
		for _, stale := range entries[limit:] {
			delete(saved, stale.Item.Key())
		}
	}

	return cacher.Set(saved)
}

// Remove forgets item.
func Remove(item *tmdb.MediaItem) error {
	mu.Lock()
	defer mu.Unlock()

	saved, err := load()
	if err != nil {
		return err
	}

	delete(saved, item.Key())
	return cacher.Set(saved)
}

// Clear forgets everything.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()

	return cacher.Set(make(map[string]*Entry))
}
