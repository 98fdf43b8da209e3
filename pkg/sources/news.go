package sources

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"
)

// Headline is a news item found for a query
type Headline struct {
	Title     string
	Source    string
	Link      string
	Summary   string
	Published time.Time
}

// News searches an rss news endpoint, google news by default
type News struct {
	client   *resty.Client
	endpoint string
	maxItems int
}

// NewsParams configures News
type NewsParams struct {
	Endpoint string
	MaxItems int
	Timeout  time.Duration
}

// NewNews makes a news search client
func NewNews(params NewsParams) *News {
	if params.Timeout <= 0 {
		params.Timeout = 10 * time.Second
	}
	if params.MaxItems <= 0 {
		params.MaxItems = 5
	}
	client := resty.New().
		SetTimeout(params.Timeout).
		SetHeader("User-Agent", "Mozilla/5.0 (compatible; SportDigest/1.0)").
		SetHeader("Accept", "application/rss+xml, application/xml;q=0.9, */*;q=0.8")
	return &News{client: client, endpoint: params.Endpoint, maxItems: params.MaxItems}
}

// Headlines returns the most recent items matching the query, newest first
func (n *News) Headlines(ctx context.Context, query string) ([]Headline, error) {
	resp, err := n.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"q": query, "hl": "en-US", "gl": "US", "ceid": "US:en"}).
		Get(n.endpoint)
	if err != nil {
		return nil, fmt.Errorf("news request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("news: unexpected status %d", resp.StatusCode())
	}

	feed, err := gofeed.NewParser().ParseString(resp.String())
	if err != nil {
		return nil, fmt.Errorf("parse news feed: %w", err)
	}

	res := make([]Headline, 0, len(feed.Items))
	for _, item := range feed.Items {
		title, source := splitSource(cleanText(item.Title))
		if title == "" {
			continue
		}
		h := Headline{Title: title, Source: source, Link: item.Link, Summary: cleanText(item.Description)}
		if h.Summary == item.Title || strings.HasPrefix(h.Summary, title) {
			h.Summary = "" // google news repeats the title as description
		}
		if item.PublishedParsed != nil {
			h.Published = item.PublishedParsed.UTC()
		} else if item.UpdatedParsed != nil {
			h.Published = item.UpdatedParsed.UTC()
		}
		res = append(res, h)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("news %q: %w", query, ErrNoData)
	}

	sort.SliceStable(res, func(i, j int) bool { return res[i].Published.After(res[j].Published) })
	if len(res) > n.maxItems {
		res = res[:n.maxItems]
	}
	return res, nil
}

// splitSource splits "Title - Source" as used by news aggregators
func splitSource(title string) (string, string) {
	idx := strings.LastIndex(title, " - ")
	if idx <= 0 {
		return title, ""
	}
	return strings.TrimSpace(title[:idx]), strings.TrimSpace(title[idx+3:])
}
