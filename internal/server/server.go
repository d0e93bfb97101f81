// Package server exposes discovery and the library as a local JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cinemind-cli/cinemind/discovery"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Service is the part of the discovery layer served over HTTP.
type Service interface {
	Trending(ctx context.Context) (*discovery.Result, error)
	Search(ctx context.Context, query string) (*discovery.Result, error)
	Details(ctx context.Context, item *tmdb.MediaItem) (*tmdb.MediaDetail, error)
	Person(ctx context.Context, id int) (*tmdb.PersonDetail, error)
	Season(ctx context.Context, showID, season int) ([]*tmdb.MediaItem, error)
	RankEpisodes(ctx context.Context, show string, limit int) ([]*tmdb.MediaItem, error)
}

// RequestIDHeader carries the id of a request in both directions.
const RequestIDHeader = "X-Request-ID"

type Server struct {
	service    Service
	httpServer *http.Server
}

func New(service Service) *Server {
	return &Server{service: service}
}

// Handler returns the router with every route mounted under /api/v1.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(requestID)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", s.health).Methods(http.MethodGet)
	api.HandleFunc("/trending", s.trending).Methods(http.MethodGet)
	api.HandleFunc("/search", s.search).Methods(http.MethodGet)
	api.HandleFunc("/tv/ranking", s.ranking).Methods(http.MethodGet)
	api.HandleFunc("/tv/{id:[0-9]+}/season/{season:[0-9]+}", s.season).Methods(http.MethodGet)
	api.HandleFunc("/{type:movie|tv}/{id:[0-9]+}", s.details).Methods(http.MethodGet)
	api.HandleFunc("/person/{id:[0-9]+}", s.person).Methods(http.MethodGet)
	api.HandleFunc("/library/{list}", s.listLibrary).Methods(http.MethodGet)
	api.HandleFunc("/library/{list}", s.toggleLibrary).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})

	return router
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		log.Infof("serving on %s", addr)
		errC <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestID tags every request with an id and logs its outcome.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		start := time.Now()
		next.ServeHTTP(recorder, r)

		log.With(log.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     recorder.status,
			"duration":   time.Since(start).String(),
		}).Info("request served")
	})
}
