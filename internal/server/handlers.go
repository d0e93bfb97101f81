package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/library"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/query"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/gorilla/mux"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Error(err)
		}
	}
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}

// respondFailure maps service errors onto status codes.
func respondFailure(w http.ResponseWriter, err error) {
	var displayErr *discovery.Error

	switch {
	case errors.Is(err, discovery.ErrEmptyQuery),
		errors.Is(err, discovery.ErrEpisodeItem),
		errors.Is(err, discovery.ErrPersonItem),
		errors.Is(err, library.ErrNotListable):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, discovery.ErrShowNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, discovery.ErrNoAnalyzer):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &displayErr):
		log.Error(displayErr.Err)
		respondError(w, http.StatusBadGateway, displayErr.Message)
	default:
		log.Error(err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func pathInt(r *http.Request, name string) int {
	// routes only match digits
	n, _ := strconv.Atoi(mux.Vars(r)[name])
	return n
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) trending(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.Trending(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		respondError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	_ = query.Remember(q, query.Typed)

	result, err := s.service.Search(r.Context(), q)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) details(w http.ResponseWriter, r *http.Request) {
	item := &tmdb.MediaItem{
		ID:        pathInt(r, "id"),
		MediaType: tmdb.MediaType(mux.Vars(r)["type"]),
	}

	detail, err := s.service.Details(r.Context(), item)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

func (s *Server) season(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.Season(r.Context(), pathInt(r, "id"), pathInt(r, "season"))
	if err != nil {
		respondFailure(w, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (s *Server) ranking(w http.ResponseWriter, r *http.Request) {
	show := strings.TrimSpace(r.URL.Query().Get("show"))
	if show == "" {
		respondError(w, http.StatusBadRequest, "missing query parameter show")
		return
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil || limit <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive number")
			return
		}
	}

	items, err := s.service.RankEpisodes(r.Context(), show, limit)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (s *Server) person(w http.ResponseWriter, r *http.Request) {
	person, err := s.service.Person(r.Context(), pathInt(r, "id"))
	if err != nil {
		respondFailure(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		*tmdb.PersonDetail
		KnownFor   []*tmdb.MediaItem `json:"known_for"`
		Letterboxd string            `json:"letterboxd_url"`
	}{
		PersonDetail: person,
		KnownFor:     person.KnownFor(),
		Letterboxd:   discovery.PersonLetterboxdURL(person.ID),
	})
}

func (s *Server) listLibrary(w http.ResponseWriter, r *http.Request) {
	list, err := library.ParseList(mux.Vars(r)["list"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	filter := library.All
	if raw := r.URL.Query().Get("filter"); raw != "" {
		if filter, err = library.ParseFilter(raw); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	items, err := library.Get(list)
	if err != nil {
		respondFailure(w, err)
		return
	}

	items = library.Apply(items, filter)
	if items == nil {
		items = []*tmdb.MediaItem{}
	}

	respondJSON(w, http.StatusOK, items)
}

func (s *Server) toggleLibrary(w http.ResponseWriter, r *http.Request) {
	list, err := library.ParseList(mux.Vars(r)["list"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	var item tmdb.MediaItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil || item.ID == 0 {
		respondError(w, http.StatusBadRequest, "body must be a media item with an id")
		return
	}

	if item.MediaType, err = tmdb.ParseMediaType(string(item.MediaType)); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	added, err := library.Toggle(list, &item)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"list": list, "key": item.Key(), "added": added})
}
