package discovery

import (
	"context"
	"sync"

	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/cinemind-cli/cinemind/util"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// MaxRankedSeasons caps how many seasons of a long-running show are fetched.
const MaxRankedSeasons = 15

// RankEpisodes returns the highest rated episodes of the named show.
// Seasons are fetched in parallel and all of them are awaited.
func (s *Service) RankEpisodes(ctx context.Context, show string, limit int) ([]*tmdb.MediaItem, error) {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	found, err := s.catalog.FindIDByName(ctx, tmdb.TV, show)
	if err != nil {
		return nil, err
	}

	showID, ok := found.Get()
	if !ok {
		return nil, ErrShowNotFound
	}

	seasons, err := s.catalog.ShowSeasons(ctx, showID)
	if err != nil {
		return nil, err
	}

	seasons = lo.Filter(seasons, func(season *tmdb.Season, _ int) bool {
		return season.SeasonNumber > 0
	})
	if len(seasons) > MaxRankedSeasons {
		seasons = seasons[:MaxRankedSeasons]
	}

	log.Infof("ranking episodes of %q across %s", show, util.Quantify(len(seasons), "season", "seasons"))

	var (
		perSeason = make([][]*tmdb.Episode, len(seasons))
		wg        = sync.WaitGroup{}
		mutex     = sync.Mutex{}
		firstErr  error
	)

	wg.Add(len(seasons))
	for i, season := range seasons {
		go func(i int, number int) {
			defer wg.Done()

			episodes, err := s.catalog.SeasonEpisodes(ctx, showID, number)

			mutex.Lock()
			defer mutex.Unlock()

			if err != nil {
				log.Error(err)
				if firstErr == nil {
					firstErr = err
				}
				return
			}

			perSeason[i] = episodes
		}(i, season.SeasonNumber)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	episodes := lo.Flatten(perSeason)
	slices.SortStableFunc(episodes, func(a, b *tmdb.Episode) int {
		switch {
		case a.VoteAverage > b.VoteAverage:
			return -1
		case a.VoteAverage < b.VoteAverage:
			return 1
		default:
			return 0
		}
	})

	if len(episodes) > limit {
		episodes = episodes[:limit]
	}

	return lo.Map(episodes, func(e *tmdb.Episode, _ int) *tmdb.MediaItem {
		return e.Item(showID)
	}), nil
}
