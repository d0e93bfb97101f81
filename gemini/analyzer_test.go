package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinemind-cli/cinemind/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func answer(w http.ResponseWriter, text string) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
}

func TestAnalyze(t *testing.T) {
	Convey("Given a model server", t, func() {
		var (
			calls   int
			path    string
			apiKey  string
			request generateRequest
			reply   = func(w http.ResponseWriter) {
				answer(w, `{"searchType":"general","media_type":"movie","genres":[27],"year":2022,"sort_by":"vote_average.desc","explanation":"Top horror of 2022."}`)
			}
		)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			path = r.URL.Path
			apiKey = r.Header.Get("x-goog-api-key")
			_ = json.NewDecoder(r.Body).Decode(&request)
			reply(w)
		}))
		defer server.Close()

		analyzer := func(options ...Option) *Analyzer {
			return New("gkey", append([]Option{WithBaseURL(server.URL), WithCache(false)}, options...)...)
		}

		Convey("A structured answer is decoded into a filter", func() {
			filter, err := analyzer().Analyze(context.Background(), "best horror 2022")
			So(err, ShouldBeNil)
			So(filter.SearchType, ShouldEqual, General)
			So(filter.MediaType, ShouldEqual, "movie")
			So(filter.Genres, ShouldResemble, []int{27})
			So(filter.Year, ShouldEqual, 2022)

			So(path, ShouldEqual, "/models/"+DefaultModel+":generateContent")
			So(apiKey, ShouldEqual, "gkey")
			So(request.SystemInstruction.Parts[0].Text, ShouldEqual, SystemPrompt)
			So(request.Contents[0].Parts[0].Text, ShouldEqual, "best horror 2022")
			So(request.GenerationConfig.ResponseMimeType, ShouldEqual, "application/json")
		})

		Convey("A quoted year and limit still decode", func() {
			reply = func(w http.ResponseWriter) {
				answer(w, `{"searchType":"general","media_type":"tv","genres":[16],"year":"2022","limit":"5"}`)
			}

			filter, err := analyzer().Analyze(context.Background(), "animated shows from 2022")
			So(err, ShouldBeNil)
			So(filter.Year, ShouldEqual, 2022)
			So(filter.Limit, ShouldEqual, 5)
			So(filter.Genres, ShouldResemble, []int{16})
			So(filter.Explanation, ShouldNotEqual, FallbackExplanation)
		})

		Convey("The model can be overridden", func() {
			_, _ = analyzer(WithModel("gemini-pro")).Analyze(context.Background(), "x")
			So(path, ShouldEqual, "/models/gemini-pro:generateContent")
		})

		Convey("A missing key fails without a request", func() {
			_, err := New(" ", WithBaseURL(server.URL)).Analyze(context.Background(), "x")
			So(err, ShouldEqual, ErrMissingKey)
			So(calls, ShouldEqual, 0)
		})

		Convey("A server error falls back to a keyword search", func() {
			reply = func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota"}}`))
			}

			filter, err := analyzer().Analyze(context.Background(), "cozy mysteries")
			So(err, ShouldBeNil)
			So(filter, ShouldResemble, Fallback("cozy mysteries"))
			So(filter.Explanation, ShouldEqual, FallbackExplanation)
		})

		Convey("Non-JSON text falls back too", func() {
			reply = func(w http.ResponseWriter) { answer(w, "sure! here you go") }

			filter, err := analyzer().Analyze(context.Background(), "q")
			So(err, ShouldBeNil)
			So(filter.SearchType, ShouldEqual, General)
			So(filter.Query, ShouldEqual, "q")
		})

		Convey("Cached analyses skip the model and fallbacks are not cached", func() {
			cached := analyzer(WithCache(true))

			_, _ = cached.Analyze(context.Background(), "cached query")
			_, _ = cached.Analyze(context.Background(), "Cached  Query")
			So(calls, ShouldEqual, 1)

			reply = func(w http.ResponseWriter) { w.WriteHeader(http.StatusInternalServerError) }
			_, _ = cached.Analyze(context.Background(), "broken")
			_, _ = cached.Analyze(context.Background(), "broken")
			So(calls, ShouldEqual, 3)
		})
	})
}
