// Package library persists the favorites and the watchlist.
package library

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cinemind-cli/cinemind/filesystem"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/cinemind-cli/cinemind/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
)

// List names one of the user's lists.
type List string

const (
	Favorites List = "favorites"
	Watchlist List = "watchlist"
)

// Lists enumerates every list in display order.
var Lists = []List{Favorites, Watchlist}

// ErrNotListable is returned for episodes and people.
var ErrNotListable = errors.New("only movies and shows can be saved")

// ParseList accepts a list name in any case.
func ParseList(s string) (List, error) {
	switch List(strings.ToLower(strings.TrimSpace(s))) {
	case Favorites, "favorite", "favs":
		return Favorites, nil
	case Watchlist, "watch":
		return Watchlist, nil
	default:
		return "", fmt.Errorf("unknown list %q, expected favorites or watchlist", s)
	}
}

// Title is the display name of the list.
func (l List) Title() string {
	if l == Watchlist {
		return "Watchlist"
	}
	return "Favorites"
}

// Other returns the list that is not l.
func (l List) Other() List {
	if l == Favorites {
		return Watchlist
	}
	return Favorites
}

var (
	cacher = gache.New[map[List][]*tmdb.MediaItem](
		&gache.Options{
			Path:       where.Library(),
			FileSystem: &filesystem.GacheFs{},
		},
	)
	mu sync.Mutex
)

func load() (map[List][]*tmdb.MediaItem, error) {
	saved, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || saved == nil {
		return make(map[List][]*tmdb.MediaItem), nil
	}
	return saved, nil
}

// Get returns the items of list in the order they were added.
func Get(list List) ([]*tmdb.MediaItem, error) {
	mu.Lock()
	defer mu.Unlock()

	saved, err := load()
	if err != nil {
		return nil, err
	}
	return saved[list], nil
}

// Contains reports whether item is in list.
func Contains(list List, item *tmdb.MediaItem) bool {
	items, err := Get(list)
	if err != nil {
		log.Error(err)
		return false
	}

	return lo.ContainsBy(items, func(saved *tmdb.MediaItem) bool {
		return saved.Key() == item.Key()
	})
}

// Toggle removes item from list when present and appends it otherwise.
// It reports whether the item was added.
func Toggle(list List, item *tmdb.MediaItem) (added bool, err error) {
	if item.IsEpisode() || item.MediaType == tmdb.Person {
		return false, ErrNotListable
	}

	mu.Lock()
	defer mu.Unlock()

	saved, err := load()
	if err != nil {
		return false, err
	}

	items := saved[list]
	kept := lo.Reject(items, func(saved *tmdb.MediaItem, _ int) bool {
		return saved.Key() == item.Key()
	})

	if added = len(kept) == len(items); added {
		kept = append(kept, item)
	}

	saved[list] = kept
	log.Infof("%s %s in %s", lo.Ternary(added, "added", "removed"), item.Key(), list)
	return added, cacher.Set(saved)
}

// Remove drops item from list.
func Remove(list List, item *tmdb.MediaItem) error {
	mu.Lock()
	defer mu.Unlock()

	saved, err := load()
	if err != nil {
		return err
	}

	saved[list] = lo.Reject(saved[list], func(saved *tmdb.MediaItem, _ int) bool {
		return saved.Key() == item.Key()
	})
	return cacher.Set(saved)
}

// Clear empties list.
func Clear(list List) error {
	mu.Lock()
	defer mu.Unlock()

	saved, err := load()
	if err != nil {
		return err
	}

	delete(saved, list)
	return cacher.Set(saved)
}
