package sources

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const duckDuckGoPage = `<html><body><div class="results">
<div class="result results_links web-result">
  <h2><a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.nba.com%2Flakers%2Fschedule&amp;rut=abc">Lakers <b>Schedule</b></a></h2>
  <a class="result__snippet" href="#">The Lakers host the Golden State Warriors on Tuesday at 7:00 PM PT, the game airs nationally on TNT.</a>
</div>
<div class="result results_links web-result">
  <h2><a class="result__a" href="https://www.espn.com/nba/team/_/name/lal">Lakers on ESPN</a></h2>
  <a class="result__snippet">Short</a>
</div>
<div class="result results_links web-result">
  <h2><a class="result__a" href="https://example.com/third">Third</a></h2>
</div>
</div></body></html>`

type extractorFunc func(ctx context.Context, pageURL string) (string, error)

func (f extractorFunc) Extract(ctx context.Context, pageURL string) (string, error) { return f(ctx, pageURL) }

func TestDuckDuckGo_Search(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "Lakers next game", r.PostForm.Get("q"))
		_, _ = w.Write([]byte(duckDuckGoPage))
	}))
	defer ts.Close()

	d := NewDuckDuckGo(SearchParams{Endpoint: ts.URL, MaxResults: 2, Timeout: time.Second})
	res, err := d.Search(context.Background(), "Lakers next game")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Lakers Schedule", res[0].Title)
	assert.Equal(t, "https://www.nba.com/lakers/schedule", res[0].URL)
	assert.Equal(t, "The Lakers host the Golden State Warriors on Tuesday at 7:00 PM PT, the game airs nationally on TNT.", res[0].Snippet)
	assert.Equal(t, "https://www.espn.com/nba/team/_/name/lal", res[1].URL)
	assert.Equal(t, "Short", res[1].Snippet)
}

func TestDuckDuckGo_Enrich(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(duckDuckGoPage))
	}))
	defer ts.Close()

	var extracted []string
	ext := extractorFunc(func(_ context.Context, pageURL string) (string, error) {
		extracted = append(extracted, pageURL)
		if strings.Contains(pageURL, "example.com") {
			return "", errors.New("blocked")
		}
		return "Lakers are 7-3 and lead the Pacific division.", nil
	})

	d := NewDuckDuckGo(SearchParams{Endpoint: ts.URL, MaxResults: 5, Extractor: ext})
	res, err := d.Search(context.Background(), "Lakers")
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, []string{"https://www.espn.com/nba/team/_/name/lal", "https://example.com/third"}, extracted)
	assert.Equal(t, "Lakers are 7-3 and lead the Pacific division.", res[1].Snippet)
	assert.Empty(t, res[2].Snippet, "failed extraction keeps the original snippet")
}

func TestDuckDuckGo_NoResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="results">nothing</div></body></html>`))
	}))
	defer ts.Close()

	_, err := NewDuckDuckGo(SearchParams{Endpoint: ts.URL}).Search(context.Background(), "zzz")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSerper_Search(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "NBA standings", body["q"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"answerBox": {"title": "NBA standings", "answer": "Thunder lead the West", "snippet": ""},
			"organic": [
				{"title": "NBA Standings &amp; Tables", "link": "https://www.nba.com/standings", "snippet": "<b>Oklahoma City</b> 9-1"},
				{"title": "ESPN", "link": "https://espn.com/nba/standings", "snippet": "Lakers 7-3"}
			]}`))
	}))
	defer ts.Close()

	s := NewSerper(SearchParams{Endpoint: ts.URL, APIKey: "secret", MaxResults: 2})
	res, err := s.Search(context.Background(), "NBA standings")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Thunder lead the West", res[0].Snippet)
	assert.Equal(t, "NBA Standings & Tables", res[1].Title)
	assert.Equal(t, "Oklahoma City 9-1", res[1].Snippet)
}

func TestSerper_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	_, err := NewSerper(SearchParams{Endpoint: ts.URL, APIKey: "bad"}).Search(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestResultURL(t *testing.T) {
	assert.Equal(t, "https://example.com/a b", resultURL("//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fa%20b"))
	assert.Equal(t, "https://example.com", resultURL("https://example.com"))
}
