package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/markusmobius/go-trafilatura"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; SportDigest/1.0)"

// ErrNoContent is returned when a page has no extractable article text
var ErrNoContent = errors.New("no content")

// Extractor pulls readable article text out of web pages, used to enrich thin search snippets
type Extractor struct {
	client   *resty.Client
	minChars int
}

// ExtractorParams configures Extractor
type ExtractorParams struct {
	Timeout   time.Duration
	UserAgent string
	MinChars  int // pages with less text than this are reported as ErrNoContent
}

// NewExtractor makes an extractor with its own http client
func NewExtractor(params ExtractorParams) *Extractor {
	if params.Timeout <= 0 {
		params.Timeout = 10 * time.Second
	}
	if params.UserAgent == "" {
		params.UserAgent = defaultUserAgent
	}
	client := resty.New().
		SetTimeout(params.Timeout).
		SetHeader("User-Agent", params.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	return &Extractor{client: client, minChars: params.MinChars}
}

// Extract fetches the page and returns its main text with whitespace collapsed
func (e *Extractor) Extract(ctx context.Context, pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("invalid url %q", pageURL)
	}

	resp, err := e.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", pageURL, resp.StatusCode())
	}

	res, err := trafilatura.Extract(bytes.NewReader(resp.Body()), trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
		OriginalURL:     parsed,
	})
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", pageURL, err)
	}
	if res == nil {
		return "", fmt.Errorf("extract %s: %w", pageURL, ErrNoContent)
	}

	text := strings.Join(strings.Fields(res.ContentText), " ")
	if text == "" || len([]rune(text)) < e.minChars {
		return "", fmt.Errorf("extract %s: %w", pageURL, ErrNoContent)
	}
	return text, nil
}
