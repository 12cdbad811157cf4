package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultAPIURL is the Azerbaijani Wikipedia MediaWiki endpoint.
const DefaultAPIURL = "https://az.wikipedia.org/w/api.php"

const (
	defaultUserAgent = "azpipe-corpus-collector/1.0"
	titleBatchSize   = 25 // keeps the titles= parameter well under URL limits
	randomPageLimit  = 500
)

// ClientOptions configures a Client. The zero value targets az.wikipedia.org
// at one request per second with five retries.
type ClientOptions struct {
	APIURL            string
	UserAgent         string
	HTTPClient        *http.Client
	RequestsPerSecond float64
	Retries           int
	Backoff           time.Duration
	Logger            *slog.Logger
}

// Client talks to a MediaWiki API. It rate-limits and retries every request,
// so callers can hand it large title lists without worrying about the remote
// end. Safe for concurrent use.
type Client struct {
	apiURL    string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	retries   int
	backoff   time.Duration
	log       *slog.Logger
}

// NewClient builds a Client from opts.
func NewClient(opts ClientOptions) *Client {
	if opts.APIURL == "" {
		opts.APIURL = DefaultAPIURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 1
	}
	if opts.Retries <= 0 {
		opts.Retries = 5
	}
	if opts.Backoff <= 0 {
		opts.Backoff = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		apiURL:    opts.APIURL,
		userAgent: opts.UserAgent,
		http:      opts.HTTPClient,
		limiter:   rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		retries:   opts.Retries,
		backoff:   opts.Backoff,
		log:       opts.Logger,
	}
}

// RandomTitles fetches n random main-namespace article titles.
func (c *Client) RandomTitles(ctx context.Context, n int) ([]string, error) {
	titles := make([]string, 0, n)
	for len(titles) < n {
		limit := n - len(titles)
		if limit > randomPageLimit {
			limit = randomPageLimit
		}
		var resp struct {
			Query struct {
				Random []struct {
					Title string `json:"title"`
				} `json:"random"`
			} `json:"query"`
		}
		params := url.Values{
			"action":      {"query"},
			"format":      {"json"},
			"list":        {"random"},
			"rnnamespace": {"0"},
			"rnlimit":     {strconv.Itoa(limit)},
		}
		if err := c.get(ctx, params, &resp); err != nil {
			return nil, err
		}
		if len(resp.Query.Random) == 0 {
			break
		}
		for _, it := range resp.Query.Random {
			titles = append(titles, it.Title)
		}
	}
	if len(titles) > n {
		titles = titles[:n]
	}
	return titles, nil
}

// CategoryTitles fetches up to n main-namespace titles from a category,
// following continuation cursors. The category name may carry a
// "Kateqoriya:" or "Category:" prefix.
func (c *Client) CategoryTitles(ctx context.Context, category string, n int) ([]string, error) {
	category = strings.TrimPrefix(category, "Kateqoriya:")
	category = strings.TrimPrefix(category, "Category:")
	category = strings.TrimSpace(category)

	var titles []string
	cont := ""
	for len(titles) < n {
		var resp struct {
			Continue struct {
				CMContinue string `json:"cmcontinue"`
			} `json:"continue"`
			Query struct {
				CategoryMembers []struct {
					Title string `json:"title"`
				} `json:"categorymembers"`
			} `json:"query"`
		}
		params := url.Values{
			"action":      {"query"},
			"format":      {"json"},
			"list":        {"categorymembers"},
			"cmtitle":     {"Kateqoriya:" + category},
			"cmnamespace": {"0"},
			"cmlimit":     {"500"},
		}
		if cont != "" {
			params.Set("cmcontinue", cont)
		}
		if err := c.get(ctx, params, &resp); err != nil {
			return nil, err
		}
		for _, m := range resp.Query.CategoryMembers {
			titles = append(titles, m.Title)
			if len(titles) >= n {
				break
			}
		}
		cont = resp.Continue.CMContinue
		if cont == "" {
			break
		}
	}
	if len(titles) > n {
		titles = titles[:n]
	}
	return titles, nil
}

// FetchPages downloads the latest revision wikitext for every title, cleans
// it to plain text, and drops documents shorter than minChars (0 selects
// DefaultMinChars). Missing pages are skipped, not errors.
func (c *Client) FetchPages(ctx context.Context, titles []string, minChars int) ([]Page, error) {
	if minChars <= 0 {
		minChars = DefaultMinChars
	}

	var pages []Page
	for start := 0; start < len(titles); start += titleBatchSize {
		end := start + titleBatchSize
		if end > len(titles) {
			end = len(titles)
		}

		var resp struct {
			Query struct {
				Pages []struct {
					PageID    int64  `json:"pageid"`
					Title     string `json:"title"`
					Missing   bool   `json:"missing"`
					Revisions []struct {
						RevID     int64  `json:"revid"`
						Timestamp string `json:"timestamp"`
						Slots     struct {
							Main struct {
								Content string `json:"content"`
							} `json:"main"`
						} `json:"slots"`
					} `json:"revisions"`
				} `json:"pages"`
			} `json:"query"`
		}
		params := url.Values{
			"action":        {"query"},
			"format":        {"json"},
			"formatversion": {"2"},
			"prop":          {"revisions"},
			"rvprop":        {"ids|timestamp|content"},
			"rvslots":       {"main"},
			"titles":        {strings.Join(titles[start:end], "|")},
		}
		if err := c.get(ctx, params, &resp); err != nil {
			return nil, err
		}

		for _, p := range resp.Query.Pages {
			if p.Missing || len(p.Revisions) == 0 {
				continue
			}
			rev := p.Revisions[0]
			text := CleanWikitext(rev.Slots.Main.Content)
			if len(text) < minChars {
				c.log.Debug("dropping short document", "title", p.Title, "chars", len(text))
				continue
			}
			pages = append(pages, Page{
				PageID:     p.PageID,
				Title:      p.Title,
				RevisionID: rev.RevID,
				Timestamp:  rev.Timestamp,
				URL:        PageURL(p.Title),
				Text:       text,
			})
		}
		c.log.Info("fetched batch", "done", end, "total", len(titles), "kept", len(pages))
	}
	return pages, nil
}

// get performs one rate-limited API call with bounded exponential backoff
// and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 {
			delay := c.backoff << (attempt - 1)
			c.log.Warn("retrying request", "attempt", attempt, "delay", delay, "err", lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		lastErr = c.doOnce(ctx, params, out)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return fmt.Errorf("corpus: request failed after %d attempts: %w", c.retries, lastErr)
}

func (c *Client) doOnce(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
