package sources

import (
	"context"
	"errors"
	"fmt"
	stdhtml "html"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-resty/resty/v2"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

const (
	duckDuckGoURL = "https://html.duckduckgo.com/html/"
	serperURL     = "https://google.serper.dev/search"
	thinSnippet   = 80 // snippets shorter than this are enriched with page text when an extractor is set
)

// SearchResult is a single web search hit
type SearchResult struct {
	Title   string
	URL     string
	Snippet string
}

// PageExtractor returns readable text of a web page
type PageExtractor interface {
	Extract(ctx context.Context, pageURL string) (string, error)
}

// SearchParams configures web search clients
type SearchParams struct {
	Endpoint   string
	APIKey     string
	MaxResults int
	Timeout    time.Duration
	Extractor  PageExtractor // optional, enriches thin snippets
}

var strictPolicy = bluemonday.StrictPolicy()

// DuckDuckGo searches the html version of duckduckgo
type DuckDuckGo struct {
	client     *resty.Client
	endpoint   string
	maxResults int
	extractor  PageExtractor
}

// NewDuckDuckGo makes a duckduckgo html search client
func NewDuckDuckGo(params SearchParams) *DuckDuckGo {
	if params.Endpoint == "" {
		params.Endpoint = duckDuckGoURL
	}
	return &DuckDuckGo{
		client:     newSearchClient(params.Timeout),
		endpoint:   params.Endpoint,
		maxResults: maxResults(params.MaxResults),
		extractor:  params.Extractor,
	}
}

// Search posts the query form and parses result blocks out of the page
func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]SearchResult, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"q": query}).
		Post(d.endpoint)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo: unexpected status %d", resp.StatusCode())
	}

	results, err := parseDuckDuckGo(resp.String(), d.maxResults)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("duckduckgo %q: %w", query, ErrNoData)
	}
	return enrich(ctx, d.extractor, results), nil
}

// Serper searches google through the serper.dev api
type Serper struct {
	client     *resty.Client
	endpoint   string
	apiKey     string
	maxResults int
	extractor  PageExtractor
}

// NewSerper makes a serper.dev search client
func NewSerper(params SearchParams) *Serper {
	if params.Endpoint == "" {
		params.Endpoint = serperURL
	}
	return &Serper{
		client:     newSearchClient(params.Timeout),
		endpoint:   params.Endpoint,
		apiKey:     params.APIKey,
		maxResults: maxResults(params.MaxResults),
		extractor:  params.Extractor,
	}
}

// Search runs the query, a direct answer box goes first when present
func (s *Serper) Search(ctx context.Context, query string) ([]SearchResult, error) {
	var out struct {
		AnswerBox *struct {
			Title   string `json:"title"`
			Answer  string `json:"answer"`
			Snippet string `json:"snippet"`
			Link    string `json:"link"`
		} `json:"answerBox"`
		Organic []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"organic"`
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("X-API-KEY", s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"q": query, "num": s.maxResults}).
		SetResult(&out).
		Post(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("serper request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("serper: unexpected status %d", resp.StatusCode())
	}

	var results []SearchResult
	if ab := out.AnswerBox; ab != nil && (ab.Answer != "" || ab.Snippet != "") {
		snippet := strings.TrimSpace(ab.Answer + " " + ab.Snippet)
		results = append(results, SearchResult{Title: cleanText(ab.Title), URL: ab.Link, Snippet: cleanText(snippet)})
	}
	for _, o := range out.Organic {
		if len(results) >= s.maxResults {
			break
		}
		results = append(results, SearchResult{Title: cleanText(o.Title), URL: o.Link, Snippet: cleanText(o.Snippet)})
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("serper %q: %w", query, ErrNoData)
	}
	return enrich(ctx, s.extractor, results), nil
}

func newSearchClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200*time.Millisecond).
		SetHeader("User-Agent", "Mozilla/5.0 (compatible; SportDigest/1.0)").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				var netErr net.Error
				return errors.As(err, &netErr) && netErr.Timeout()
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
		})
}

func maxResults(n int) int {
	if n <= 0 {
		return 5
	}
	return min(n, 10)
}

// enrich replaces thin snippets with extracted page text, failures keep the snippet
func enrich(ctx context.Context, extractor PageExtractor, results []SearchResult) []SearchResult {
	if extractor == nil {
		return results
	}
	for i, r := range results {
		if len(r.Snippet) >= thinSnippet || r.URL == "" {
			continue
		}
		text, err := extractor.Extract(ctx, r.URL)
		if err != nil {
			lgr.Printf("[DEBUG] can't enrich search result %s: %v", r.URL, err)
			continue
		}
		results[i].Snippet = text
	}
	return results
}

// cleanText strips markup and entities and collapses whitespace
func cleanText(s string) string {
	return strings.Join(strings.Fields(stdhtml.UnescapeString(strictPolicy.Sanitize(s))), " ")
}

func parseDuckDuckGo(page string, limit int) ([]SearchResult, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse duckduckgo page: %w", err)
	}

	var results []SearchResult
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(results) >= limit {
			return
		}
		if n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "result") {
			if r, ok := duckDuckGoResult(n); ok {
				results = append(results, r)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return results, nil
}

func duckDuckGoResult(n *html.Node) (SearchResult, bool) {
	var res SearchResult
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch {
			case node.Data == "a" && hasClass(node, "result__a"):
				res.Title = cleanText(textContent(node))
				res.URL = resultURL(attr(node, "href"))
			case hasClass(node, "result__snippet"):
				res.Snippet = cleanText(textContent(node))
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return res, res.Title != "" && res.URL != ""
}

// hasClass checks for an exact class token, "results" container does not match "result"
func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			sb.WriteString(" ")
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// resultURL unwraps duckduckgo redirect links like //duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com
func resultURL(raw string) string {
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return raw
}
